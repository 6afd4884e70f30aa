package repository

import (
	"context"

	"hotelops/internal/domain/booking"
	"hotelops/internal/infra"
	"hotelops/internal/infra/db"
	"hotelops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
    id, res_id, hotel_id, room_id, guest_id, units,
    check_in, check_out, room_rate_cents, alt_rate_cents, use_alt_rate,
    total_cents, status, assigned_room_no, special_requests, notes
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10, $11,
    $12, $13, $14, $15, $16
)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	row := dbtx.QueryRow(ctx, createBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		b.ResID(),
		pgconv.UUIDToPgtype(b.HotelID()),
		pgconv.UUIDToPgtype(b.RoomID()),
		pgconv.UUIDToPgtype(b.GuestID()),
		b.Units(),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.RoomRateCents(),
		pgconv.Int64PtrToPgtype(b.AltRateCents()),
		b.UseAltRate(),
		b.TotalCents(),
		string(b.Status()),
		pgconv.StringPtrToPgtype(b.AssignedRoomNo()),
		b.SpecialRequests(),
		pgconv.StringPtrToPgtype(b.Notes()),
	)
	var pgID pgtype.UUID
	if err := row.Scan(&pgID); err != nil {
		return uuid.Nil, wrapWriteErr("failed to create booking", err)
	}
	return uuid.UUID(pgID.Bytes), nil
}

const updateBookingSQL = `
UPDATE bookings SET
    units = $2,
    check_in = $3,
    check_out = $4,
    room_rate_cents = $5,
    alt_rate_cents = $6,
    use_alt_rate = $7,
    total_cents = $8,
    status = $9,
    assigned_room_no = $10,
    notes = $11,
    updated_at = now()
WHERE id = $1`

func (r *BookingRepository) Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	tag, err := dbtx.Exec(ctx, updateBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		b.Units(),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.RoomRateCents(),
		pgconv.Int64PtrToPgtype(b.AltRateCents()),
		b.UseAltRate(),
		b.TotalCents(),
		string(b.Status()),
		pgconv.StringPtrToPgtype(b.AssignedRoomNo()),
		pgconv.StringPtrToPgtype(b.Notes()),
	)
	if err != nil {
		return wrapWriteErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		pgconv.UUIDToPgtype(id), string(status),
	)
	if err != nil {
		return wrapWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
