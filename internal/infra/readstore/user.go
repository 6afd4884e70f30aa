package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"hotelops/internal/infra"
	"hotelops/internal/infra/db"
	"hotelops/internal/pkg/pgconv"
	"hotelops/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByIDSQL = `
SELECT id, email, role, hotel_id, is_active
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx, findUserByIDSQL, pgconv.UUIDToPgtype(id))
	view, _, err := scanAuthorizedUser(row, false)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

const findUserByEmailSQL = `
SELECT id, email, role, hotel_id, is_active, password_hash
FROM users
WHERE email = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx, findUserByEmailSQL, email)
	view, passwordHash, err := scanAuthorizedUser(row, true)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, passwordHash, nil
}

type userScanner interface {
	Scan(dest ...any) error
}

func scanAuthorizedUser(row userScanner, withPassword bool) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		id           pgtype.UUID
		hotelID      pgtype.UUID
		passwordHash string
	)
	dest := []any{&id, &view.Email, &view.Role, &hotelID, &view.IsActive}
	if withPassword {
		dest = append(dest, &passwordHash)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, "", err
	}
	view.ID = uuid.UUID(id.Bytes)
	view.HotelID = pgconv.UUIDPtrFromPgtype(hotelID)
	return &view, passwordHash, nil
}
