package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	ID             uuid.UUID  `json:"id"`
	HotelID        uuid.UUID  `json:"hotel_id"`
	HotelName      string     `json:"hotel_name"`
	Name           string     `json:"name"`
	BoardType      string     `json:"board_type"`
	Quantity       int32      `json:"quantity"`
	Capacity       *int32     `json:"capacity,omitempty"`
	BasePriceCents int64      `json:"base_price_cents"`
	AltPriceCents  *int64     `json:"alt_price_cents,omitempty"`
	AvailableFrom  *time.Time `json:"available_from,omitempty"`
	AvailableTo    *time.Time `json:"available_to,omitempty"`
	IsActive       bool       `json:"is_active"`
}

type SlotView struct {
	Date           time.Time `json:"date"`
	AvailableCount int32     `json:"available_count"`
	BlockedCount   int32     `json:"blocked_count"`
}

type ConflictView struct {
	BookingID uuid.UUID `json:"booking_id"`
	ResID     string    `json:"res_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Units     int32     `json:"units"`
	Status    string    `json:"status"`
}

// AvailabilityReport is the admission verdict for one room over one range.
type AvailabilityReport struct {
	RoomID         uuid.UUID      `json:"room_id"`
	RoomName       string         `json:"room_name"`
	CheckIn        time.Time      `json:"check_in"`
	CheckOut       time.Time      `json:"check_out"`
	RequestedUnits int32          `json:"requested_units"`
	Available      bool           `json:"available"`
	AvailableUnits int32          `json:"available_units"`
	BookedUnits    int32          `json:"booked_units"`
	RoomActive     bool           `json:"room_active"`
	WindowOK       bool           `json:"window_ok"`
	Conflicts      []ConflictView `json:"conflicts,omitempty"`
	Slots          []SlotView     `json:"slots,omitempty"`
}

type SearchSummary struct {
	TotalRooms       int `json:"total_rooms"`
	AvailableRooms   int `json:"available_rooms"`
	UnavailableRooms int `json:"unavailable_rooms"`
}

type RangeReport struct {
	CheckIn  time.Time            `json:"check_in"`
	CheckOut time.Time            `json:"check_out"`
	Rooms    []AvailabilityReport `json:"rooms"`
	Summary  SearchSummary        `json:"summary"`
}

type MultiRangeReport struct {
	Ranges  []RangeReport `json:"ranges"`
	Overall SearchSummary `json:"overall"`
}

type PaymentView struct {
	ID             uuid.UUID  `json:"id"`
	Method         string     `json:"method"`
	TotalCents     int64      `json:"total_cents"`
	PaidCents      int64      `json:"paid_cents"`
	RemainingCents int64      `json:"remaining_cents"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

type BookingView struct {
	ID              uuid.UUID    `json:"id"`
	ResID           string       `json:"res_id"`
	HotelID         uuid.UUID    `json:"hotel_id"`
	RoomID          uuid.UUID    `json:"room_id"`
	RoomName        string       `json:"room_name"`
	GuestID         uuid.UUID    `json:"guest_id"`
	GuestProfileID  string       `json:"guest_profile_id"`
	GuestName       string       `json:"guest_name"`
	CheckIn         time.Time    `json:"check_in"`
	CheckOut        time.Time    `json:"check_out"`
	Nights          int32        `json:"nights"`
	Units           int32        `json:"units"`
	RoomRateCents   int64        `json:"room_rate_cents"`
	AltRateCents    *int64       `json:"alt_rate_cents,omitempty"`
	UseAltRate      bool         `json:"use_alt_rate"`
	TotalCents      int64        `json:"total_cents"`
	Status          string       `json:"status"`
	AssignedRoomNo  *string      `json:"assigned_room_no,omitempty"`
	SpecialRequests []string     `json:"special_requests,omitempty"`
	Notes           *string      `json:"notes,omitempty"`
	Payment         *PaymentView `json:"payment,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	ResID      string    `json:"res_id"`
	RoomName   string    `json:"room_name"`
	GuestName  string    `json:"guest_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Units      int32     `json:"units"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	HotelID  *uuid.UUID `json:"hotel_id,omitempty"`
	IsActive bool       `json:"is_active"`
}
