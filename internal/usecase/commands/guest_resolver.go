package commands

import (
	"context"

	"hotelops/internal/domain/guest"
	"hotelops/internal/infra"
	"hotelops/internal/pkg/errs"
	"hotelops/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrGuestNotFound     = errs.New("guest not found")
	ErrGuestNameRequired = errs.New("guest first and last name are required")
	ErrGuestConflict     = errs.New("guest profile id collision")
)

// GuestInput either references an existing guest by id or describes a new
// one. When GuestID is set the remaining fields act as an optional patch.
type GuestInput struct {
	GuestID   *uuid.UUID
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Notes     *string
	IsVIP     *bool
}

// GuestResolver maps a GuestInput to a persisted guest id inside the
// caller's transaction. Resolving the same input twice is idempotent for
// the existing-guest path.
type GuestResolver struct{}

func NewGuestResolver() *GuestResolver {
	return &GuestResolver{}
}

func (r *GuestResolver) Resolve(ctx context.Context, tx shared.Tx, in GuestInput) (uuid.UUID, error) {
	if in.GuestID != nil {
		return r.patchExisting(ctx, tx, *in.GuestID, in)
	}
	return r.createNew(ctx, tx, in)
}

func (r *GuestResolver) patchExisting(ctx context.Context, tx shared.Tx, id uuid.UUID, in GuestInput) (uuid.UUID, error) {
	if _, err := tx.Reads().GuestByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrGuestNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !hasPatchFields(in) {
		return id, nil
	}
	err := tx.Guests().Update(ctx, tx.DB(), id, shared.GuestUpdate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Notes:     in.Notes,
		IsVIP:     in.IsVIP,
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (r *GuestResolver) createNew(ctx context.Context, tx shared.Tx, in GuestInput) (uuid.UUID, error) {
	if in.FirstName == nil || in.LastName == nil {
		return uuid.Nil, ErrGuestNameRequired
	}
	isVIP := false
	if in.IsVIP != nil {
		isVIP = *in.IsVIP
	}

	profileID, err := r.freshProfileID(ctx, tx)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := r.insert(ctx, tx, profileID, in, isVIP)
	if err != nil {
		// A concurrent insert can still win the unique index between the
		// probe and the write.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrGuestConflict
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

// freshProfileID probes the candidate id before the insert; a duplicate-key
// failure inside the transaction would abort it, so collisions are resolved
// ahead of the write. One retry with the wider form, then give up.
func (r *GuestResolver) freshProfileID(ctx context.Context, tx shared.Tx) (string, error) {
	candidate := guest.NewProfileID()
	taken, err := tx.Reads().GuestProfileIDTaken(ctx, candidate)
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !taken {
		return candidate, nil
	}

	candidate = guest.NewWideProfileID()
	taken, err = tx.Reads().GuestProfileIDTaken(ctx, candidate)
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if taken {
		return "", ErrGuestConflict
	}
	return candidate, nil
}

func (r *GuestResolver) insert(ctx context.Context, tx shared.Tx, profileID string, in GuestInput, isVIP bool) (uuid.UUID, error) {
	entity, err := guest.NewGuest(profileID, *in.FirstName, *in.LastName, in.Email, in.Phone, isVIP, in.Notes)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrGuestNameRequired)
	}
	return tx.Guests().Create(ctx, tx.DB(), entity)
}

func hasPatchFields(in GuestInput) bool {
	return in.FirstName != nil || in.LastName != nil || in.Email != nil ||
		in.Phone != nil || in.Notes != nil || in.IsVIP != nil
}
