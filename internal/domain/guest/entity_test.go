//go:build unit

package guest_test

import (
	"regexp"
	"testing"

	"hotelops/internal/domain/guest"
	"hotelops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Ada Lovelace", actual.FullName())
		assert.False(t, actual.IsVIP())
	})

	t.Run("names are trimmed", func(t *testing.T) {
		actual, err := builder.NewGuestBuilder().
			With(func(b *builder.GuestBuilder) {
				b.FirstName = "  Ada "
				b.LastName = " Lovelace  "
			}).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Ada", actual.FirstName())
		assert.Equal(t, "Lovelace", actual.LastName())
	})

	t.Run("missing names are rejected", func(t *testing.T) {
		for _, mutate := range []func(*builder.GuestBuilder){
			func(b *builder.GuestBuilder) { b.FirstName = "" },
			func(b *builder.GuestBuilder) { b.LastName = "" },
			func(b *builder.GuestBuilder) { b.FirstName = "   " },
		} {
			_, err := builder.NewGuestBuilder().With(mutate).BuildDomain()
			require.ErrorIs(t, err, guest.ErrNameRequired)
		}
	})
}

func TestProfileIDs(t *testing.T) {
	narrow := regexp.MustCompile(`^GP-[0-9a-f]{32}$`)
	wide := regexp.MustCompile(`^GP-[0-9a-f]{48}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := guest.NewProfileID()
		assert.Regexp(t, narrow, id)
		_, dup := seen[id]
		assert.False(t, dup, "profile ids must not repeat: %s", id)
		seen[id] = struct{}{}
	}

	assert.Regexp(t, wide, guest.NewWideProfileID())
}
