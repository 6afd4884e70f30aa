package repository

import (
	"context"

	"hotelops/internal/domain/guest"
	"hotelops/internal/infra"
	"hotelops/internal/infra/db"
	"hotelops/internal/pkg/pgconv"
	"hotelops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GuestRepository struct{}

func NewGuestRepository() *GuestRepository {
	return &GuestRepository{}
}

const createGuestSQL = `
INSERT INTO guests (
    id, profile_id, first_name, last_name, email, phone, is_vip, notes
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8
)
RETURNING id`

func (r *GuestRepository) Create(ctx context.Context, dbtx db.DBTX, g *guest.Guest) (uuid.UUID, error) {
	row := dbtx.QueryRow(ctx, createGuestSQL,
		pgconv.UUIDToPgtype(g.ID()),
		g.ProfileID(),
		g.FirstName(),
		g.LastName(),
		pgconv.StringPtrToPgtype(g.Email()),
		pgconv.StringPtrToPgtype(g.Phone()),
		g.IsVIP(),
		pgconv.StringPtrToPgtype(g.Notes()),
	)
	var pgID pgtype.UUID
	if err := row.Scan(&pgID); err != nil {
		return uuid.Nil, wrapWriteErr("failed to create guest", err)
	}
	return uuid.UUID(pgID.Bytes), nil
}

// COALESCE keeps unset patch fields at their stored values so a partial
// update never blanks a column.
const updateGuestSQL = `
UPDATE guests SET
    first_name = COALESCE($2, first_name),
    last_name = COALESCE($3, last_name),
    email = COALESCE($4, email),
    phone = COALESCE($5, phone),
    notes = COALESCE($6, notes),
    is_vip = COALESCE($7, is_vip),
    updated_at = now()
WHERE id = $1`

func (r *GuestRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, fields shared.GuestUpdate) error {
	tag, err := dbtx.Exec(ctx, updateGuestSQL,
		pgconv.UUIDToPgtype(id),
		pgconv.StringPtrToPgtype(fields.FirstName),
		pgconv.StringPtrToPgtype(fields.LastName),
		pgconv.StringPtrToPgtype(fields.Email),
		pgconv.StringPtrToPgtype(fields.Phone),
		pgconv.StringPtrToPgtype(fields.Notes),
		boolPtrToPgtype(fields.IsVIP),
	)
	if err != nil {
		return wrapWriteErr("failed to update guest", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

func boolPtrToPgtype(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}
