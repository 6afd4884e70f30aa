package response

import (
	"time"

	"hotelops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	ID             uuid.UUID `json:"id"`
	Method         string    `json:"method"`
	TotalCents     int64     `json:"totalCents"`
	PaidCents      int64     `json:"paidCents"`
	RemainingCents int64     `json:"remainingCents"`
	DueDate        *string   `json:"dueDate,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type BookingResponse struct {
	ID              uuid.UUID        `json:"id"`
	ResID           string           `json:"resId"`
	HotelID         uuid.UUID        `json:"hotelId"`
	RoomID          uuid.UUID        `json:"roomId"`
	RoomName        string           `json:"roomName"`
	GuestID         uuid.UUID        `json:"guestId"`
	GuestProfileID  string           `json:"guestProfileId"`
	GuestName       string           `json:"guestName"`
	CheckIn         string           `json:"checkIn"`
	CheckOut        string           `json:"checkOut"`
	Nights          int32            `json:"nights"`
	Units           int32            `json:"units"`
	RoomRateCents   int64            `json:"roomRateCents"`
	AltRateCents    *int64           `json:"altRateCents,omitempty"`
	UseAltRate      bool             `json:"useAltRate"`
	TotalCents      int64            `json:"totalCents"`
	Status          string           `json:"status"`
	AssignedRoomNo  *string          `json:"assignedRoomNo,omitempty"`
	SpecialRequests []string         `json:"specialRequests,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	Payment         *PaymentResponse `json:"payment,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	ResID      string    `json:"resId"`
	RoomName   string    `json:"roomName"`
	GuestName  string    `json:"guestName"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Units      int32     `json:"units"`
	TotalCents int64     `json:"totalCents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	// Same-named scalar fields copy mechanically; dates and the nested
	// payment need explicit treatment.
	_ = copier.Copy(&resp, view)
	resp.CheckIn = formatDate(view.CheckIn)
	resp.CheckOut = formatDate(view.CheckOut)
	resp.Payment = fromPaymentView(view.Payment)
	return &resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, item)
	resp.CheckIn = formatDate(item.CheckIn)
	resp.CheckOut = formatDate(item.CheckOut)
	return &resp
}

func fromPaymentView(view *queries.PaymentView) *PaymentResponse {
	if view == nil {
		return nil
	}
	var resp PaymentResponse
	_ = copier.Copy(&resp, view)
	if view.DueDate != nil {
		due := formatDate(*view.DueDate)
		resp.DueDate = &due
	}
	return &resp
}
