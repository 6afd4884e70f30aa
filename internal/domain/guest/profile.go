package guest

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// Profile identifiers are external-facing and must be unique across guests.
// They are derived from random UUIDs, so a collision is already vanishingly
// unlikely; the resolver still probes the index and regenerates once before
// giving up.

// NewProfileID returns a fresh external profile identifier, e.g.
// "GP-9f2c4b...".
func NewProfileID() string {
	id := uuid.New()
	return fmt.Sprintf("GP-%s", hex.EncodeToString(id[:]))
}

// NewWideProfileID widens the random space with a second UUID. Used only on
// the single retry after a profile id collision.
func NewWideProfileID() string {
	a := uuid.New()
	b := uuid.New()
	return fmt.Sprintf("GP-%s%s", hex.EncodeToString(a[:]), hex.EncodeToString(b[:8]))
}
