//go:build unit || e2e

package builder

import (
	"hotelops/internal/domain/guest"
	"hotelops/internal/usecase/commands"
	"hotelops/internal/usecase/shared"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	ID        uuid.UUID
	ProfileID string
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
	IsVIP     bool
	Notes     *string
}

func NewGuestBuilder() *GuestBuilder {
	email := "ada@example.com"
	return &GuestBuilder{
		ID:        uuid.New(),
		ProfileID: guest.NewProfileID(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     &email,
	}
}

func (g *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(g)
	return g
}

func (g *GuestBuilder) BuildDomain() (*guest.Guest, error) {
	return guest.NewGuest(g.ProfileID, g.FirstName, g.LastName, g.Email, g.Phone, g.IsVIP, g.Notes)
}

func (g *GuestBuilder) BuildSnapshot() *shared.GuestSnapshot {
	return &shared.GuestSnapshot{
		ID:        g.ID,
		ProfileID: g.ProfileID,
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Email:     g.Email,
		Phone:     g.Phone,
		Notes:     g.Notes,
		IsVIP:     g.IsVIP,
	}
}

func (g *GuestBuilder) BuildInput() commands.GuestInput {
	return commands.GuestInput{
		FirstName: &g.FirstName,
		LastName:  &g.LastName,
		Email:     g.Email,
		Phone:     g.Phone,
		Notes:     g.Notes,
	}
}

func (g *GuestBuilder) BuildExistingInput() commands.GuestInput {
	return commands.GuestInput{GuestID: &g.ID}
}
