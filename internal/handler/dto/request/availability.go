package request

import (
	"time"

	"hotelops/internal/domain/booking"
	"hotelops/internal/domain/room"
	"hotelops/internal/pkg/errs"
	"hotelops/internal/usecase/queries"

	"github.com/google/uuid"
)

// Stay dates travel as calendar dates, never timestamps.
const dateLayout = "2006-01-02"

var errInvalidDate = errs.New("date must be formatted as YYYY-MM-DD")

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

type CheckAvailabilityQuery struct {
	RoomID           string  `form:"room_id" binding:"required,uuid"`
	CheckIn          string  `form:"check_in" binding:"required"`
	CheckOut         string  `form:"check_out" binding:"required"`
	Units            int32   `form:"units,default=1"`
	ExcludeBookingID *string `form:"exclude_booking_id" binding:"omitempty,uuid"`
}

func (r CheckAvailabilityQuery) RoomUUID() uuid.UUID {
	id, _ := uuid.Parse(r.RoomID)
	return id
}

func (r CheckAvailabilityQuery) ExcludeBookingUUID() *uuid.UUID {
	return parseOptionalUUID(r.ExcludeBookingID)
}

func (r CheckAvailabilityQuery) StayRange() (booking.DateRange, error) {
	checkIn, err := parseDate(r.CheckIn)
	if err != nil {
		return booking.DateRange{}, err
	}
	checkOut, err := parseDate(r.CheckOut)
	if err != nil {
		return booking.DateRange{}, err
	}
	return booking.NewDateRange(checkIn, checkOut)
}

type StayRange struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

func (r StayRange) ToDomain() (booking.DateRange, error) {
	checkIn, err := parseDate(r.CheckIn)
	if err != nil {
		return booking.DateRange{}, err
	}
	checkOut, err := parseDate(r.CheckOut)
	if err != nil {
		return booking.DateRange{}, err
	}
	return booking.NewDateRange(checkIn, checkOut)
}

type SearchAvailabilityRequest struct {
	HotelID       *uuid.UUID  `json:"hotel_id,omitempty"`
	RoomID        *uuid.UUID  `json:"room_id,omitempty"`
	BoardType     *string     `json:"board_type,omitempty"`
	MinCapacity   *int32      `json:"min_capacity,omitempty" binding:"omitempty,gt=0"`
	AvailableOnly bool        `json:"available_only,omitempty"`
	Units         int32       `json:"units,omitempty"`
	Ranges        []StayRange `json:"ranges" binding:"required,min=1,dive"`
}

func (r SearchAvailabilityRequest) ToFilter() (queries.RoomFilter, error) {
	filter := queries.RoomFilter{
		HotelID:       r.HotelID,
		RoomID:        r.RoomID,
		MinCapacity:   r.MinCapacity,
		AvailableOnly: r.AvailableOnly,
	}
	if r.BoardType != nil {
		bt, err := room.NewBoardType(*r.BoardType)
		if err != nil {
			return queries.RoomFilter{}, err
		}
		s := string(bt)
		filter.BoardType = &s
	}
	return filter, nil
}

func (r SearchAvailabilityRequest) ToRanges() ([]booking.DateRange, error) {
	ranges := make([]booking.DateRange, 0, len(r.Ranges))
	for _, sr := range r.Ranges {
		rng, err := sr.ToDomain()
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, rng)
	}
	return ranges, nil
}

func (r SearchAvailabilityRequest) RequestedUnits() int32 {
	if r.Units <= 0 {
		return 1
	}
	return r.Units
}
