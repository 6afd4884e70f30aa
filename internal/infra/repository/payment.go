package repository

import (
	"context"

	"hotelops/internal/infra/db"
	"hotelops/internal/pkg/pgconv"
	"hotelops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

// The ledger is append-only; readers resolve the booking's effective payment
// as the most recently created row.
const createPaymentSQL = `
INSERT INTO payments (
    id, booking_id, method, total_cents, paid_cents, remaining_cents, due_date, status
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8
)
RETURNING id`

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, entry shared.PaymentEntry) (uuid.UUID, error) {
	row := dbtx.QueryRow(ctx, createPaymentSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		pgconv.UUIDToPgtype(bookingID),
		string(entry.Method),
		entry.TotalCents,
		entry.PaidCents,
		entry.RemainingCents,
		pgconv.DatePtrToPgtype(entry.DueDate),
		string(entry.Status),
	)
	var pgID pgtype.UUID
	if err := row.Scan(&pgID); err != nil {
		return uuid.Nil, wrapWriteErr("failed to create payment", err)
	}
	return uuid.UUID(pgID.Bytes), nil
}

func (r *PaymentRepository) DeleteByBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, `DELETE FROM payments WHERE booking_id = $1`, pgconv.UUIDToPgtype(bookingID)); err != nil {
		return wrapWriteErr("failed to delete payments", err)
	}
	return nil
}
