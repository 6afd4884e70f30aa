//go:build unit || e2e

package builder

import (
	"time"

	"hotelops/internal/domain/booking"
	reqdto "hotelops/internal/handler/dto/request"
	"hotelops/internal/usecase/commands"
	"hotelops/internal/usecase/queries"
	"hotelops/internal/usecase/shared"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingBuilder struct {
	ID              uuid.UUID
	ResID           string
	HotelID         uuid.UUID
	RoomID          uuid.UUID
	RoomName        string
	GuestID         uuid.UUID
	GuestProfileID  string
	GuestName       string
	Units           int32
	CheckIn         time.Time
	CheckOut        time.Time
	RoomRateCents   int64
	AltRateCents    *int64
	UseAltRate      bool
	Status          booking.Status
	SpecialRequests []string
	Notes           *string
	PaymentMethod   string
	PaidCents       *int64
	DueDate         *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:             uuid.New(),
		ResID:          "RES-2026-0a1b2c3d4e",
		HotelID:        uuid.New(),
		RoomID:         uuid.New(),
		RoomName:       "Deluxe Double",
		GuestID:        uuid.New(),
		GuestProfileID: "GP-0123456789abcdef0123456789abcdef",
		GuestName:      "Ada Lovelace",
		Units:          1,
		CheckIn:        date(2026, 9, 10),
		CheckOut:       date(2026, 9, 13),
		RoomRateCents:  12000,
		Status:         booking.StatusPending,
		PaymentMethod:  "CASH",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Stay() booking.DateRange {
	rng, err := booking.NewDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return rng
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(
		b.ResID, b.HotelID, b.RoomID, b.GuestID,
		b.Units, stay, b.RoomRateCents, b.AltRateCents, b.UseAltRate,
		b.SpecialRequests, b.Notes,
	)
}

func (b *BookingBuilder) BuildCreateCommand() commands.CreateBookingRequest {
	firstName := "Ada"
	lastName := "Lovelace"
	return commands.CreateBookingRequest{
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Units:      b.Units,
		UseAltRate: b.UseAltRate,
		Guest: commands.GuestInput{
			FirstName: &firstName,
			LastName:  &lastName,
		},
		Payment: &commands.PaymentInput{
			Method:    b.PaymentMethod,
			PaidCents: b.PaidCents,
			DueDate:   b.DueDate,
		},
		SpecialRequests: b.SpecialRequests,
		Notes:           b.Notes,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	firstName := "Ada"
	lastName := "Lovelace"
	return reqdto.CreateBookingRequest{
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn.Format(dateLayout),
		CheckOut: b.CheckOut.Format(dateLayout),
		Units:    b.Units,
		Guest: reqdto.GuestPayload{
			FirstName: &firstName,
			LastName:  &lastName,
		},
		Payment: &reqdto.PaymentPayload{
			Method:    b.PaymentMethod,
			PaidCents: b.PaidCents,
		},
		SpecialRequests: b.SpecialRequests,
		Notes:           b.Notes,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	stay := b.Stay()
	return &queries.BookingListItem{
		ID:         b.ID,
		ResID:      b.ResID,
		RoomName:   b.RoomName,
		GuestName:  b.GuestName,
		CheckIn:    stay.CheckIn(),
		CheckOut:   stay.CheckOut(),
		Units:      b.Units,
		TotalCents: booking.TotalCents(b.RoomRateCents, stay.Nights(), b.Units),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:              b.ID,
		ResID:           b.ResID,
		HotelID:         b.HotelID,
		RoomID:          b.RoomID,
		GuestID:         b.GuestID,
		Units:           b.Units,
		CheckIn:         b.Stay().CheckIn(),
		CheckOut:        b.Stay().CheckOut(),
		RoomRateCents:   b.RoomRateCents,
		AltRateCents:    b.AltRateCents,
		UseAltRate:      b.UseAltRate,
		TotalCents:      booking.TotalCents(b.RoomRateCents, b.Stay().Nights(), b.Units),
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	stay := b.Stay()
	return &queries.BookingView{
		ID:              b.ID,
		ResID:           b.ResID,
		HotelID:         b.HotelID,
		RoomID:          b.RoomID,
		RoomName:        b.RoomName,
		GuestID:         b.GuestID,
		GuestProfileID:  b.GuestProfileID,
		GuestName:       b.GuestName,
		CheckIn:         stay.CheckIn(),
		CheckOut:        stay.CheckOut(),
		Nights:          stay.Nights(),
		Units:           b.Units,
		RoomRateCents:   b.RoomRateCents,
		AltRateCents:    b.AltRateCents,
		UseAltRate:      b.UseAltRate,
		TotalCents:      booking.TotalCents(b.RoomRateCents, stay.Nights(), b.Units),
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
