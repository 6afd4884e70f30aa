package commands

import (
	"context"
	"encoding/json"
	"time"

	"hotelops/internal/domain/availability"
	"hotelops/internal/domain/booking"
	"hotelops/internal/domain/payment"
	"hotelops/internal/domain/room"
	"hotelops/internal/infra"
	"hotelops/internal/pkg/clock"
	"hotelops/internal/pkg/errs"
	"hotelops/internal/pkg/patch"
	"hotelops/internal/usecase/queries"
	"hotelops/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrRoomUnavailable         = errs.New("room unavailable for the requested stay")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingImmutable        = errs.New("booking is in a terminal state")
	ErrInvalidStatusChange     = errs.New("invalid booking status change")
	ErrCheckedInDelete         = errs.New("checked-in booking cannot be deleted")
	ErrInvalidStay             = errs.New("invalid stay range")
	ErrInvalidPayment          = errs.New("invalid payment instruction")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingRequest struct {
	RoomID               uuid.UUID
	CheckIn              time.Time
	CheckOut             time.Time
	Units                int32
	UseAltRate           bool
	OverrideRateCents    *int64
	OverrideAltRateCents *int64
	Guest                GuestInput
	// Payment is optional; a booking may be admitted before any payment
	// instruction exists.
	Payment              *PaymentInput
	SpecialRequests      []string
	Notes                *string
}

type UpdateBookingRequest struct {
	CheckIn        *time.Time
	CheckOut       *time.Time
	Units          *int32
	UseAltRate     *bool
	RateCents      *int64
	AltRateCents   *int64
	Status         *string
	AssignedRoomNo *string
	Notes          *string
	Guest          *GuestInput
	Payment        *PaymentInput
}

type PaymentInput struct {
	Method    string
	PaidCents *int64
	DueDate   *time.Time
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*queries.BookingView, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	guestResolver  *GuestResolver
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	guestResolver *GuestResolver,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		guestResolver:  guestResolver,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*queries.BookingView, error) {
	stay, err := booking.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, derr := uc.loadRoom(ctx, tx, req.RoomID)
		if derr != nil {
			return derr
		}

		// The advisory lock serializes admission per room so the capacity
		// recheck below cannot race a concurrent create.
		if derr = tx.Rooms().AcquireAdmissionLock(ctx, tx.DB(), rm.ID()); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if derr = uc.recheckCapacity(ctx, tx, rm, stay, req.Units, nil); derr != nil {
			return derr
		}

		guestID, derr := uc.guestResolver.Resolve(ctx, tx, req.Guest)
		if derr != nil {
			return derr
		}

		rate, derr := booking.SelectRate(booking.RateInput{
			RoomBaseCents:        rm.BasePriceCents(),
			RoomAlternativeCents: rm.AltPriceCents(),
			OverrideBaseCents:    req.OverrideRateCents,
			OverrideAltCents:     req.OverrideAltRateCents,
			UseAlternativeRate:   req.UseAltRate,
		})
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		altRate := booking.AlternativeRateSnapshot(booking.RateInput{
			RoomAlternativeCents: rm.AltPriceCents(),
			OverrideAltCents:     req.OverrideAltRateCents,
		})

		entity, derr := booking.NewBooking(
			booking.NewReservationCode(uc.clock.Now()),
			rm.HotelID(), rm.ID(), guestID,
			req.Units, stay,
			rate, altRate, req.UseAltRate,
			req.SpecialRequests, req.Notes,
		)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id

		if req.Payment != nil {
			entry, perr := payment.Build(entity.TotalCents(), payment.Instruction{
				Method:    payment.Method(req.Payment.Method),
				PaidCents: req.Payment.PaidCents,
				DueDate:   req.Payment.DueDate,
			})
			if perr != nil {
				return errs.Mark(perr, ErrInvalidPayment)
			}
			if _, perr = tx.Payments().Create(ctx, tx.DB(), id, toPaymentEntry(entry)); perr != nil {
				return errs.Mark(perr, ErrDatabaseOperationFailed)
			}
		}

		return uc.enqueueBookingEvent(ctx, tx, "booking_created", id)
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write so the response carries the joined view.
	return uc.bookingQueries.GetByID(ctx, createdID)
}

func (uc *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.loadBooking(ctx, tx, id)
		if derr != nil {
			return derr
		}
		current, derr := booking.NewStatus(snap.Status)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if current.IsTerminal() {
			return ErrBookingImmutable
		}

		stay, derr := booking.NewDateRange(
			patch.Coalesce(req.CheckIn, snap.CheckIn),
			patch.Coalesce(req.CheckOut, snap.CheckOut),
		)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidStay)
		}
		units := patch.Coalesce(req.Units, snap.Units)
		rate := patch.Coalesce(req.RateCents, snap.RoomRateCents)
		altRate := patch.CoalescePtr(req.AltRateCents, snap.AltRateCents)
		useAlt := patch.Coalesce(req.UseAltRate, snap.UseAltRate)

		footprintChanged := patch.Changed(req.CheckIn, snap.CheckIn) ||
			patch.Changed(req.CheckOut, snap.CheckOut) ||
			patch.Changed(req.Units, snap.Units)
		// Flipping the rate preference without an explicit rate means the
		// nightly rate must be re-selected from the room's prices.
		rateFlipped := req.RateCents == nil && patch.Changed(req.UseAltRate, snap.UseAltRate)

		if footprintChanged || rateFlipped {
			rm, rerr := uc.loadRoom(ctx, tx, snap.RoomID)
			if rerr != nil {
				return rerr
			}
			if footprintChanged {
				if rerr = tx.Rooms().AcquireAdmissionLock(ctx, tx.DB(), rm.ID()); rerr != nil {
					return errs.Mark(rerr, ErrDatabaseOperationFailed)
				}
				// The booking's own footprint must not block its own move.
				if rerr = uc.recheckCapacity(ctx, tx, rm, stay, units, &snap.ID); rerr != nil {
					return rerr
				}
			}
			if rateFlipped {
				rate, rerr = booking.SelectRate(booking.RateInput{
					RoomBaseCents:        rm.BasePriceCents(),
					RoomAlternativeCents: rm.AltPriceCents(),
					OverrideAltCents:     altRate,
					UseAlternativeRate:   useAlt,
				})
				if rerr != nil {
					return errs.Mark(rerr, ErrDomainValidation)
				}
			}
		}

		guestID := snap.GuestID
		if req.Guest != nil {
			in := *req.Guest
			if in.GuestID == nil {
				in.GuestID = &snap.GuestID
			}
			guestID, derr = uc.guestResolver.Resolve(ctx, tx, in)
			if derr != nil {
				return derr
			}
		}

		next := current
		if req.Status != nil {
			next, derr = booking.NewStatus(*req.Status)
			if derr != nil {
				return errs.Mark(derr, ErrInvalidStatusChange)
			}
			if next != current && !current.CanTransitionTo(next) {
				return ErrInvalidStatusChange
			}
		}

		entity := booking.ReconstructBooking(
			snap.ID, snap.ResID,
			snap.HotelID, snap.RoomID, guestID,
			snap.Units, stay,
			snap.RoomRateCents, altRate, useAlt,
			snap.TotalCents, next,
			patch.CoalescePtr(req.AssignedRoomNo, snap.AssignedRoomNo),
			snap.SpecialRequests,
			patch.CoalescePtr(req.Notes, snap.Notes),
			snap.CreatedAt, uc.clock.Now(),
		)
		if derr = entity.Reprice(stay, rate, units); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		if derr = tx.Bookings().Update(ctx, tx.DB(), entity); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		return uc.repriceLedger(ctx, tx, snap.ID, entity.TotalCents(), req.Payment)
	})
	if err != nil {
		return nil, err
	}

	return uc.bookingQueries.GetByID(ctx, id)
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.loadBooking(ctx, tx, id)
		if derr != nil {
			return derr
		}
		current, derr := booking.NewStatus(snap.Status)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if !current.CanTransitionTo(booking.StatusCancelled) {
			return ErrInvalidStatusChange
		}
		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), id, booking.StatusCancelled); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return uc.enqueueBookingEvent(ctx, tx, "booking_cancelled", id)
	})
}

func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.loadBooking(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if snap.Status == string(booking.StatusCheckedIn) {
			return ErrCheckedInDelete
		}
		if derr = tx.Payments().DeleteByBooking(ctx, tx.DB(), id); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if derr = tx.Bookings().Delete(ctx, tx.DB(), id); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// loadRoom rehydrates the snapshot through the room factory; a snapshot that
// fails the factory's invariants surfaces as a domain validation error.
func (uc *bookingUseCaseImpl) loadRoom(ctx context.Context, tx shared.Tx, id uuid.UUID) (*room.Room, error) {
	snap, err := tx.Reads().RoomByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !snap.IsActive || !snap.HotelActive {
		return nil, ErrRoomUnavailable
	}
	entity, err := room.NewRoom(
		snap.ID, snap.HotelID, snap.Name, room.BoardType(snap.BoardType),
		snap.Quantity, snap.Capacity, snap.BasePriceCents, snap.AltPriceCents,
		snap.AvailableFrom, snap.AvailableTo, snap.IsActive,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return entity, nil
}

func (uc *bookingUseCaseImpl) loadBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := tx.Reads().BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (uc *bookingUseCaseImpl) recheckCapacity(
	ctx context.Context,
	tx shared.Tx,
	rm *room.Room,
	stay booking.DateRange,
	units int32,
	excludeBookingID *uuid.UUID,
) error {
	slots, err := tx.Reads().SlotsInRange(ctx, rm.ID(), stay)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	conflicts, err := tx.Reads().ConflictingBookings(ctx, rm.ID(), stay, excludeBookingID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := availability.Compute(availability.RoomInfo{
		ID:            rm.ID(),
		Quantity:      rm.Quantity(),
		AvailableFrom: rm.AvailableFrom(),
		AvailableTo:   rm.AvailableTo(),
		IsActive:      rm.IsActive(),
	}, stay, units, slots, conflicts)
	if !result.Available {
		return ErrRoomUnavailable
	}
	return nil
}

// repriceLedger appends a fresh ledger entry for the new total. Explicit
// payment fields win; otherwise the previous instruction carries over so a
// date change does not silently reset method or paid amount.
func (uc *bookingUseCaseImpl) repriceLedger(
	ctx context.Context,
	tx shared.Tx,
	bookingID uuid.UUID,
	totalCents int64,
	override *PaymentInput,
) error {
	prev, err := tx.Reads().LatestPaymentByBooking(ctx, bookingID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	instr := payment.Instruction{}
	if prev != nil {
		instr.Method = payment.Method(prev.Method)
		instr.PaidCents = &prev.PaidCents
		instr.DueDate = prev.DueDate
	}
	if override != nil {
		instr.Method = payment.Method(override.Method)
		instr.PaidCents = override.PaidCents
		instr.DueDate = override.DueDate
	}
	if instr.Method == "" {
		return nil
	}

	entry, err := payment.Build(totalCents, instr)
	if err != nil {
		return errs.Mark(err, ErrInvalidPayment)
	}
	if _, err = tx.Payments().Create(ctx, tx.DB(), bookingID, toPaymentEntry(entry)); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *bookingUseCaseImpl) enqueueBookingEvent(ctx context.Context, tx shared.Tx, topic string, bookingID uuid.UUID) error {
	payloadBytes, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err = tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payloadBytes, uc.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func toPaymentEntry(entry payment.Entry) shared.PaymentEntry {
	return shared.PaymentEntry{
		Method:         entry.Method,
		TotalCents:     entry.TotalCents,
		PaidCents:      entry.PaidCents,
		RemainingCents: entry.RemainingCents,
		DueDate:        entry.DueDate,
		Status:         entry.Status,
	}
}
