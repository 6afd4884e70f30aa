package repository

import (
	"context"

	"hotelops/internal/infra/db"
	"hotelops/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	_, err := dbtx.Exec(ctx,
		`UPDATE users SET last_login_at = now(), updated_at = now() WHERE id = $1`,
		pgconv.UUIDToPgtype(userID),
	)
	if err != nil {
		return wrapWriteErr("failed to update user last login", err)
	}
	return nil
}
