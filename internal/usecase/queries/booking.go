package queries

import (
	"context"
	"time"

	"hotelops/internal/infra"
	"hotelops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

const defaultBookingPageSize = 50

// BookingFilter narrows the back-office booking list. Zero values mean no
// filtering on that axis.
type BookingFilter struct {
	HotelID   *uuid.UUID
	RoomID    *uuid.UUID
	GuestID   *uuid.UUID
	Status    *string
	StayFrom  *time.Time
	StayUntil *time.Time
	Limit     int
	Offset    int
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetByResID(ctx context.Context, resID string) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByResID(ctx context.Context, resID string) (*BookingView, error)
	FindByFilter(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByResID(ctx context.Context, resID string) (*BookingView, error) {
	view, err := q.readStore.FindByResID(ctx, resID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultBookingPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	items, err := q.readStore.FindByFilter(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return items, nil
}
