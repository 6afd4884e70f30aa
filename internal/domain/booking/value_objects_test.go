//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotelops/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, checkIn, checkOut time.Time) booking.DateRange {
	t.Helper()
	rng, err := booking.NewDateRange(checkIn, checkOut)
	require.NoError(t, err)
	return rng
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		rng, err := booking.NewDateRange(day(2026, 9, 10), day(2026, 9, 13))
		require.NoError(t, err)
		assert.Equal(t, int32(3), rng.Nights())
	})

	t.Run("check-in equal to check-out is rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(day(2026, 9, 10), day(2026, 9, 10))
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("reversed dates are rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(day(2026, 9, 13), day(2026, 9, 10))
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("time of day is normalized to midnight UTC", func(t *testing.T) {
		in := time.Date(2026, 9, 10, 15, 30, 0, 0, time.UTC)
		out := time.Date(2026, 9, 12, 11, 0, 0, 0, time.UTC)
		rng, err := booking.NewDateRange(in, out)
		require.NoError(t, err)
		assert.Equal(t, day(2026, 9, 10), rng.CheckIn())
		assert.Equal(t, day(2026, 9, 12), rng.CheckOut())
		assert.Equal(t, int32(2), rng.Nights())
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, day(2026, 9, 10), day(2026, 9, 13))

	cases := []struct {
		name     string
		other    booking.DateRange
		overlaps bool
	}{
		{
			name:     "identical range overlaps",
			other:    mustRange(t, day(2026, 9, 10), day(2026, 9, 13)),
			overlaps: true,
		},
		{
			name:     "partial overlap at the tail",
			other:    mustRange(t, day(2026, 9, 12), day(2026, 9, 15)),
			overlaps: true,
		},
		{
			name:     "containing range overlaps",
			other:    mustRange(t, day(2026, 9, 8), day(2026, 9, 20)),
			overlaps: true,
		},
		{
			name:     "back-to-back stay starting at check-out does not overlap",
			other:    mustRange(t, day(2026, 9, 13), day(2026, 9, 16)),
			overlaps: false,
		},
		{
			name:     "back-to-back stay ending at check-in does not overlap",
			other:    mustRange(t, day(2026, 9, 7), day(2026, 9, 10)),
			overlaps: false,
		},
		{
			name:     "disjoint range does not overlap",
			other:    mustRange(t, day(2026, 9, 20), day(2026, 9, 22)),
			overlaps: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, base.Overlaps(c.other))
			assert.Equal(t, c.overlaps, c.other.Overlaps(base))
		})
	}
}

func TestDateRangeContainsAndDays(t *testing.T) {
	rng := mustRange(t, day(2026, 9, 10), day(2026, 9, 13))

	assert.True(t, rng.Contains(day(2026, 9, 10)))
	assert.True(t, rng.Contains(day(2026, 9, 12)))
	assert.False(t, rng.Contains(day(2026, 9, 13)), "check-out day is not an occupied night")
	assert.False(t, rng.Contains(day(2026, 9, 9)))

	days := rng.Days()
	require.Len(t, days, 3)
	assert.Equal(t, day(2026, 9, 10), days[0])
	assert.Equal(t, day(2026, 9, 12), days[2])
}
