package request

import (
	"time"

	"hotelops/internal/usecase/commands"

	"github.com/google/uuid"
)

type GuestPayload struct {
	GuestID   *uuid.UUID `json:"guest_id,omitempty"`
	FirstName *string    `json:"first_name,omitempty"`
	LastName  *string    `json:"last_name,omitempty"`
	Email     *string    `json:"email,omitempty" binding:"omitempty,email"`
	Phone     *string    `json:"phone,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	IsVIP     *bool      `json:"is_vip,omitempty"`
}

type PaymentPayload struct {
	Method    string  `json:"method" binding:"required,oneof=CASH CREDIT"`
	PaidCents *int64  `json:"paid_cents,omitempty"`
	DueDate   *string `json:"due_date,omitempty"`
}

func (p PaymentPayload) toInput() (commands.PaymentInput, error) {
	in := commands.PaymentInput{
		Method:    p.Method,
		PaidCents: p.PaidCents,
	}
	if p.DueDate != nil {
		due, err := parseDate(*p.DueDate)
		if err != nil {
			return commands.PaymentInput{}, err
		}
		in.DueDate = &due
	}
	return in, nil
}

type CreateBookingRequest struct {
	RoomID               uuid.UUID       `json:"room_id" binding:"required"`
	CheckIn              string          `json:"check_in" binding:"required"`
	CheckOut             string          `json:"check_out" binding:"required"`
	Units                int32           `json:"units,omitempty"`
	UseAltRate           bool            `json:"use_alt_rate,omitempty"`
	OverrideRateCents    *int64          `json:"override_rate_cents,omitempty"`
	OverrideAltRateCents *int64          `json:"override_alt_rate_cents,omitempty"`
	Guest                GuestPayload    `json:"guest" binding:"required"`
	Payment              *PaymentPayload `json:"payment,omitempty"`
	SpecialRequests      []string        `json:"special_requests,omitempty"`
	Notes                *string         `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	checkIn, err := parseDate(r.CheckIn)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	checkOut, err := parseDate(r.CheckOut)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	units := r.Units
	if units <= 0 {
		units = 1
	}

	cmd := commands.CreateBookingRequest{
		RoomID:               r.RoomID,
		CheckIn:              checkIn,
		CheckOut:             checkOut,
		Units:                units,
		UseAltRate:           r.UseAltRate,
		OverrideRateCents:    r.OverrideRateCents,
		OverrideAltRateCents: r.OverrideAltRateCents,
		Guest: commands.GuestInput{
			GuestID:   r.Guest.GuestID,
			FirstName: r.Guest.FirstName,
			LastName:  r.Guest.LastName,
			Email:     r.Guest.Email,
			Phone:     r.Guest.Phone,
			Notes:     r.Guest.Notes,
			IsVIP:     r.Guest.IsVIP,
		},
		SpecialRequests: r.SpecialRequests,
		Notes:           r.Notes,
	}
	if r.Payment != nil {
		paymentInput, err := r.Payment.toInput()
		if err != nil {
			return commands.CreateBookingRequest{}, err
		}
		cmd.Payment = &paymentInput
	}
	return cmd, nil
}

type UpdateBookingRequest struct {
	CheckIn        *string         `json:"check_in,omitempty"`
	CheckOut       *string         `json:"check_out,omitempty"`
	Units          *int32          `json:"units,omitempty" binding:"omitempty,gt=0"`
	UseAltRate     *bool           `json:"use_alt_rate,omitempty"`
	RateCents      *int64          `json:"rate_cents,omitempty" binding:"omitempty,gt=0"`
	AltRateCents   *int64          `json:"alt_rate_cents,omitempty"`
	Status         *string         `json:"status,omitempty"`
	AssignedRoomNo *string         `json:"assigned_room_no,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	Guest          *GuestPayload   `json:"guest,omitempty"`
	Payment        *PaymentPayload `json:"payment,omitempty"`
}

func (r UpdateBookingRequest) ToCommand() (commands.UpdateBookingRequest, error) {
	cmd := commands.UpdateBookingRequest{
		Units:          r.Units,
		UseAltRate:     r.UseAltRate,
		RateCents:      r.RateCents,
		AltRateCents:   r.AltRateCents,
		Status:         r.Status,
		AssignedRoomNo: r.AssignedRoomNo,
		Notes:          r.Notes,
	}
	if r.CheckIn != nil {
		checkIn, err := parseDate(*r.CheckIn)
		if err != nil {
			return commands.UpdateBookingRequest{}, err
		}
		cmd.CheckIn = &checkIn
	}
	if r.CheckOut != nil {
		checkOut, err := parseDate(*r.CheckOut)
		if err != nil {
			return commands.UpdateBookingRequest{}, err
		}
		cmd.CheckOut = &checkOut
	}
	if r.Guest != nil {
		cmd.Guest = &commands.GuestInput{
			GuestID:   r.Guest.GuestID,
			FirstName: r.Guest.FirstName,
			LastName:  r.Guest.LastName,
			Email:     r.Guest.Email,
			Phone:     r.Guest.Phone,
			Notes:     r.Guest.Notes,
			IsVIP:     r.Guest.IsVIP,
		}
	}
	if r.Payment != nil {
		paymentInput, err := r.Payment.toInput()
		if err != nil {
			return commands.UpdateBookingRequest{}, err
		}
		cmd.Payment = &paymentInput
	}
	return cmd, nil
}

type ListBookingsQuery struct {
	HotelID   *string `form:"hotel_id" binding:"omitempty,uuid"`
	RoomID    *string `form:"room_id" binding:"omitempty,uuid"`
	GuestID   *string `form:"guest_id" binding:"omitempty,uuid"`
	Status    *string `form:"status"`
	StayFrom  *string `form:"stay_from"`
	StayUntil *string `form:"stay_until"`
	Limit     int     `form:"limit,default=50"`
	Offset    int     `form:"offset,default=0"`
}

// HotelUUID, RoomUUID and GuestUUID assume the binding validator already
// vetted the values.
func (r ListBookingsQuery) HotelUUID() *uuid.UUID { return parseOptionalUUID(r.HotelID) }
func (r ListBookingsQuery) RoomUUID() *uuid.UUID  { return parseOptionalUUID(r.RoomID) }
func (r ListBookingsQuery) GuestUUID() *uuid.UUID { return parseOptionalUUID(r.GuestID) }

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func (r ListBookingsQuery) StayWindow() (*time.Time, *time.Time, error) {
	var from, until *time.Time
	if r.StayFrom != nil {
		t, err := parseDate(*r.StayFrom)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if r.StayUntil != nil {
		t, err := parseDate(*r.StayUntil)
		if err != nil {
			return nil, nil, err
		}
		until = &t
	}
	return from, until, nil
}
