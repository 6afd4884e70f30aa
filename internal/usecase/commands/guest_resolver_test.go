//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotelops/internal/usecase/commands"
	"hotelops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestResolver(t *testing.T) {
	newEnv := func() (*fakeUoW, *commands.GuestResolver) {
		return newFakeUoW(), commands.NewGuestResolver()
	}

	t.Run("creates a new guest with a fresh profile id", func(t *testing.T) {
		uow, resolver := newEnv()

		id, err := resolver.Resolve(context.Background(), uow.tx, builder.NewGuestBuilder().BuildInput())
		require.NoError(t, err)

		snap := uow.tx.reads.guests[id]
		require.NotNil(t, snap)
		assert.Equal(t, "Ada", snap.FirstName)
		assert.Regexp(t, `^GP-[0-9a-f]{32}$`, snap.ProfileID)
	})

	t.Run("requires both names for a new guest", func(t *testing.T) {
		uow, resolver := newEnv()
		in := builder.NewGuestBuilder().BuildInput()
		in.LastName = nil

		_, err := resolver.Resolve(context.Background(), uow.tx, in)
		require.ErrorIs(t, err, commands.ErrGuestNameRequired)
	})

	t.Run("retries once with a wide profile id when the probe finds a collision", func(t *testing.T) {
		uow, resolver := newEnv()
		uow.tx.reads.takenProfileIDs = 1

		id, err := resolver.Resolve(context.Background(), uow.tx, builder.NewGuestBuilder().BuildInput())
		require.NoError(t, err)
		assert.Regexp(t, `^GP-[0-9a-f]{48}$`, uow.tx.reads.guests[id].ProfileID)
	})

	t.Run("second collision surfaces as ErrGuestConflict", func(t *testing.T) {
		uow, resolver := newEnv()
		uow.tx.reads.takenProfileIDs = 2

		_, err := resolver.Resolve(context.Background(), uow.tx, builder.NewGuestBuilder().BuildInput())
		require.ErrorIs(t, err, commands.ErrGuestConflict)
	})

	t.Run("losing the index race to a concurrent insert surfaces as ErrGuestConflict", func(t *testing.T) {
		uow, resolver := newEnv()
		uow.tx.guests.failCreates = 1

		_, err := resolver.Resolve(context.Background(), uow.tx, builder.NewGuestBuilder().BuildInput())
		require.ErrorIs(t, err, commands.ErrGuestConflict)
	})

	t.Run("resolves an existing guest without touching it", func(t *testing.T) {
		uow, resolver := newEnv()
		g := builder.NewGuestBuilder()
		uow.tx.reads.guests[g.ID] = g.BuildSnapshot()

		id, err := resolver.Resolve(context.Background(), uow.tx, g.BuildExistingInput())
		require.NoError(t, err)
		assert.Equal(t, g.ID, id)
		assert.Empty(t, uow.tx.guests.updates, "no patch fields means no update")
	})

	t.Run("patches an existing guest when fields are set", func(t *testing.T) {
		uow, resolver := newEnv()
		g := builder.NewGuestBuilder()
		uow.tx.reads.guests[g.ID] = g.BuildSnapshot()

		phone := "+44 20 7946 0000"
		in := g.BuildExistingInput()
		in.Phone = &phone

		id, err := resolver.Resolve(context.Background(), uow.tx, in)
		require.NoError(t, err)
		assert.Equal(t, g.ID, id)
		require.Len(t, uow.tx.guests.updates, 1)
		require.NotNil(t, uow.tx.guests.updates[0].Phone)
		assert.Equal(t, phone, *uow.tx.guests.updates[0].Phone)
	})

	t.Run("unknown guest id maps to ErrGuestNotFound", func(t *testing.T) {
		uow, resolver := newEnv()
		missing := uuid.New()

		_, err := resolver.Resolve(context.Background(), uow.tx, commands.GuestInput{GuestID: &missing})
		require.ErrorIs(t, err, commands.ErrGuestNotFound)
	})
}
