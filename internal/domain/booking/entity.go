package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidUnitCount = errors.New("number of rooms must be positive")
	ErrInvalidRate      = errors.New("room rate must be positive")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

// Booking is one reservation of N units of a room type over a stay range.
// totalCents is always roomRateCents × nights × units; the factory and every
// mutating method maintain that invariant.
type Booking struct {
	id              uuid.UUID
	resID           string
	hotelID         uuid.UUID
	roomID          uuid.UUID
	guestID         uuid.UUID
	units           int32
	stay            DateRange
	roomRateCents   int64
	altRateCents    *int64
	useAltRate      bool
	totalCents      int64
	status          Status
	assignedRoomNo  *string
	specialRequests []string
	notes           *string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(
	resID string,
	hotelID, roomID, guestID uuid.UUID,
	units int32,
	stay DateRange,
	roomRateCents int64,
	altRateCents *int64,
	useAltRate bool,
	specialRequests []string,
	notes *string,
) (*Booking, error) {
	if units <= 0 {
		return nil, ErrInvalidUnitCount
	}
	if roomRateCents <= 0 {
		return nil, ErrInvalidRate
	}

	return &Booking{
		id:              uuid.New(),
		resID:           resID,
		hotelID:         hotelID,
		roomID:          roomID,
		guestID:         guestID,
		units:           units,
		stay:            stay,
		roomRateCents:   roomRateCents,
		altRateCents:    altRateCents,
		useAltRate:      useAltRate,
		totalCents:      TotalCents(roomRateCents, stay.Nights(), units),
		status:          StatusPending,
		specialRequests: specialRequests,
		notes:           notes,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	resID string,
	hotelID, roomID, guestID uuid.UUID,
	units int32,
	stay DateRange,
	roomRateCents int64,
	altRateCents *int64,
	useAltRate bool,
	totalCents int64,
	status Status,
	assignedRoomNo *string,
	specialRequests []string,
	notes *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		resID:           resID,
		hotelID:         hotelID,
		roomID:          roomID,
		guestID:         guestID,
		units:           units,
		stay:            stay,
		roomRateCents:   roomRateCents,
		altRateCents:    altRateCents,
		useAltRate:      useAltRate,
		totalCents:      totalCents,
		status:          status,
		assignedRoomNo:  assignedRoomNo,
		specialRequests: specialRequests,
		notes:           notes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TotalCents is the single definition of a booking's financial total.
func TotalCents(rateCents int64, nights, units int32) int64 {
	return rateCents * int64(nights) * int64(units)
}

// Reprice replaces stay, rate, and unit count, recomputing the total.
func (b *Booking) Reprice(stay DateRange, rateCents int64, units int32) error {
	if units <= 0 {
		return ErrInvalidUnitCount
	}
	if rateCents <= 0 {
		return ErrInvalidRate
	}
	b.stay = stay
	b.roomRateCents = rateCents
	b.units = units
	b.totalCents = TotalCents(rateCents, stay.Nights(), units)
	return nil
}

func (b *Booking) Cancel() error {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidStatus
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) ResID() string             { return b.resID }
func (b *Booking) HotelID() uuid.UUID        { return b.hotelID }
func (b *Booking) RoomID() uuid.UUID         { return b.roomID }
func (b *Booking) GuestID() uuid.UUID        { return b.guestID }
func (b *Booking) Units() int32              { return b.units }
func (b *Booking) Stay() DateRange           { return b.stay }
func (b *Booking) Nights() int32             { return b.stay.Nights() }
func (b *Booking) RoomRateCents() int64      { return b.roomRateCents }
func (b *Booking) AltRateCents() *int64      { return b.altRateCents }
func (b *Booking) UseAltRate() bool          { return b.useAltRate }
func (b *Booking) TotalCents() int64         { return b.totalCents }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) AssignedRoomNo() *string   { return b.assignedRoomNo }
func (b *Booking) SpecialRequests() []string { return b.specialRequests }
func (b *Booking) Notes() *string            { return b.notes }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
