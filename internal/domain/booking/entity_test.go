//go:build unit

package booking_test

import (
	"testing"

	"hotelops/internal/domain/booking"
	"hotelops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, int32(3), actual.Stay().Nights())
		assert.Equal(t, int64(36000), actual.TotalCents(), "total is rate x nights x units")
	})

	t.Run("total scales with units", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.Units = 3 }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(108000), actual.TotalCents())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero units rejected",
				mutate: func(b *builder.BookingBuilder) { b.Units = 0 },
				errIs:  booking.ErrInvalidUnitCount,
			},
			{
				name:   "negative units rejected",
				mutate: func(b *builder.BookingBuilder) { b.Units = -1 },
				errIs:  booking.ErrInvalidUnitCount,
			},
			{
				name:   "zero rate rejected",
				mutate: func(b *builder.BookingBuilder) { b.RoomRateCents = 0 },
				errIs:  booking.ErrInvalidRate,
			},
			{
				name:   "negative rate rejected",
				mutate: func(b *builder.BookingBuilder) { b.RoomRateCents = -500 },
				errIs:  booking.ErrInvalidRate,
			},
		})
	})
}

func TestBookingReprice(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	newStay := builder.NewBookingBuilder().
		With(func(bb *builder.BookingBuilder) {
			bb.CheckOut = bb.CheckIn.AddDate(0, 0, 5)
		}).
		Stay()

	require.NoError(t, b.Reprice(newStay, 10000, 2))
	assert.Equal(t, int64(100000), b.TotalCents())
	assert.Equal(t, int32(2), b.Units())

	assert.ErrorIs(t, b.Reprice(newStay, 0, 2), booking.ErrInvalidRate)
	assert.ErrorIs(t, b.Reprice(newStay, 10000, 0), booking.ErrInvalidUnitCount)
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusConfirmed, booking.StatusCheckedIn, true},
		{booking.StatusCheckedIn, booking.StatusCheckedOut, true},
		{booking.StatusPending, booking.StatusCheckedIn, false},
		{booking.StatusConfirmed, booking.StatusCheckedOut, false},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusCheckedIn, booking.StatusCancelled, true},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusCheckedOut, booking.StatusCancelled, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestStatusConsumesCapacity(t *testing.T) {
	assert.False(t, booking.StatusPending.ConsumesCapacity(), "pending is a soft hold")
	assert.True(t, booking.StatusConfirmed.ConsumesCapacity())
	assert.True(t, booking.StatusCheckedIn.ConsumesCapacity())
	assert.False(t, booking.StatusCheckedOut.ConsumesCapacity())
	assert.False(t, booking.StatusCancelled.ConsumesCapacity())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
