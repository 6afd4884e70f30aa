package guest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNameRequired = errors.New("guest first and last name are required")

// Guest is a reusable guest profile. Its lifetime is independent of any
// booking: the same guest is referenced across stays via profileID.
type Guest struct {
	id        uuid.UUID
	profileID string
	firstName string
	lastName  string
	email     *string
	phone     *string
	isVIP     bool
	notes     *string
	createdAt time.Time
	updatedAt time.Time
}

func NewGuest(profileID, firstName, lastName string, email, phone *string, isVIP bool, notes *string) (*Guest, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrNameRequired
	}

	return &Guest{
		id:        uuid.New(),
		profileID: profileID,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		isVIP:     isVIP,
		notes:     notes,
	}, nil
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) ProfileID() string    { return g.profileID }
func (g *Guest) FirstName() string    { return g.firstName }
func (g *Guest) LastName() string     { return g.lastName }
func (g *Guest) FullName() string     { return g.firstName + " " + g.lastName }
func (g *Guest) Email() *string       { return g.email }
func (g *Guest) Phone() *string       { return g.phone }
func (g *Guest) IsVIP() bool          { return g.isVIP }
func (g *Guest) Notes() *string       { return g.notes }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time { return g.updatedAt }
