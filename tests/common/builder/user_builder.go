//go:build unit || e2e

package builder

import (
	"hotelops/internal/domain/user"
	"hotelops/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	HotelID      *uuid.UUID
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	hotelID := uuid.New()
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		PasswordHash: "hashed_password",
		Role:         "manager",
		HotelID:      &hotelID,
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.HotelID), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		HotelID:  u.HotelID,
		IsActive: u.IsActive,
	}
}
