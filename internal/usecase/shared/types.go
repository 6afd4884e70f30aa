package shared

import (
	"time"

	"hotelops/internal/domain/payment"

	"github.com/google/uuid"
)

type RoomSnapshot struct {
	ID             uuid.UUID
	HotelID        uuid.UUID
	Name           string
	BoardType      string
	Quantity       int32
	Capacity       *int32
	BasePriceCents int64
	AltPriceCents  *int64
	AvailableFrom  *time.Time
	AvailableTo    *time.Time
	IsActive       bool
	HotelActive    bool
}

type GuestSnapshot struct {
	ID        uuid.UUID
	ProfileID string
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
	Notes     *string
	IsVIP     bool
}

type BookingSnapshot struct {
	ID              uuid.UUID
	ResID           string
	HotelID         uuid.UUID
	RoomID          uuid.UUID
	GuestID         uuid.UUID
	Units           int32
	CheckIn         time.Time
	CheckOut        time.Time
	RoomRateCents   int64
	AltRateCents    *int64
	UseAltRate      bool
	TotalCents      int64
	Status          string
	AssignedRoomNo  *string
	SpecialRequests []string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PaymentSnapshot struct {
	ID             uuid.UUID
	BookingID      uuid.UUID
	Method         string
	TotalCents     int64
	PaidCents      int64
	RemainingCents int64
	DueDate        *time.Time
	Status         string
	CreatedAt      time.Time
}

// PaymentEntry is the write model handed to the payment repository.
type PaymentEntry struct {
	Method         payment.Method
	TotalCents     int64
	PaidCents      int64
	RemainingCents int64
	DueDate        *time.Time
	Status         payment.Status
}

// GuestUpdate carries the optional patch fields for an existing guest.
type GuestUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Notes     *string
	IsVIP     *bool
}
