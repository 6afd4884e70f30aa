//go:build unit

package availability_test

import (
	"testing"
	"time"

	"hotelops/internal/domain/availability"
	"hotelops/internal/domain/booking"

	"github.com/google/uuid"
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

func activeRoom(quantity int32) availability.RoomInfo {
	return availability.RoomInfo{
		ID:       uuid.New(),
		Quantity: quantity,
		IsActive: true,
	}
}

func conflict(t *testing.T, units int32, status booking.Status, checkIn, checkOut time.Time) availability.Conflict {
	t.Helper()
	return availability.Conflict{
		BookingID: uuid.New(),
		ResID:     "RES-2026-0000000000",
		Units:     units,
		Stay:      mustRange(t, checkIn, checkOut),
		Status:    status,
	}
}

func TestCompute(t *testing.T) {
	rng := mustRange(t, day(2026, 9, 10), day(2026, 9, 13))

	t.Run("empty room admits any request within quantity", func(t *testing.T) {
		res := availability.Compute(activeRoom(5), rng, 5, nil, nil)
		assert.True(t, res.Available)
		assert.Equal(t, int32(5), res.AvailableUnits)
		assert.Equal(t, int32(0), res.BookedUnits)
	})

	t.Run("overlapping confirmed bookings reduce capacity", func(t *testing.T) {
		conflicts := []availability.Conflict{
			conflict(t, 2, booking.StatusConfirmed, day(2026, 9, 9), day(2026, 9, 12)),
			conflict(t, 1, booking.StatusCheckedIn, day(2026, 9, 11), day(2026, 9, 14)),
		}

		res := availability.Compute(activeRoom(5), rng, 2, nil, conflicts)
		assert.True(t, res.Available)
		assert.Equal(t, int32(3), res.BookedUnits)
		assert.Equal(t, int32(2), res.AvailableUnits)
		assert.Len(t, res.Conflicts, 2)

		res = availability.Compute(activeRoom(5), rng, 3, nil, conflicts)
		assert.False(t, res.Available, "3 requested but only 2 left")
		assert.Equal(t, int32(2), res.AvailableUnits)
	})

	t.Run("pending and cancelled bookings do not consume capacity", func(t *testing.T) {
		conflicts := []availability.Conflict{
			conflict(t, 5, booking.StatusPending, day(2026, 9, 10), day(2026, 9, 13)),
			conflict(t, 5, booking.StatusCancelled, day(2026, 9, 10), day(2026, 9, 13)),
			conflict(t, 5, booking.StatusCheckedOut, day(2026, 9, 10), day(2026, 9, 13)),
		}

		res := availability.Compute(activeRoom(5), rng, 5, nil, conflicts)
		assert.True(t, res.Available)
		assert.Equal(t, int32(0), res.BookedUnits)
		assert.Empty(t, res.Conflicts)
	})

	t.Run("back-to-back stays do not collide", func(t *testing.T) {
		conflicts := []availability.Conflict{
			conflict(t, 5, booking.StatusConfirmed, day(2026, 9, 13), day(2026, 9, 16)),
			conflict(t, 5, booking.StatusConfirmed, day(2026, 9, 7), day(2026, 9, 10)),
		}

		res := availability.Compute(activeRoom(5), rng, 5, nil, conflicts)
		assert.True(t, res.Available)
		assert.Empty(t, res.Conflicts)
	})

	t.Run("worst slot day governs the range", func(t *testing.T) {
		slots := []availability.Slot{
			{Date: day(2026, 9, 10), AvailableCount: 4},
			{Date: day(2026, 9, 11), AvailableCount: 1, BlockedCount: 3},
			{Date: day(2026, 9, 12), AvailableCount: 4},
		}

		res := availability.Compute(activeRoom(5), rng, 2, slots, nil)
		assert.False(t, res.Available)
		assert.Equal(t, int32(1), res.AvailableUnits)

		res = availability.Compute(activeRoom(5), rng, 1, slots, nil)
		assert.True(t, res.Available)
	})

	t.Run("slot outside the range is ignored", func(t *testing.T) {
		slots := []availability.Slot{
			{Date: day(2026, 9, 13), AvailableCount: 0},
		}

		res := availability.Compute(activeRoom(5), rng, 5, slots, nil)
		assert.True(t, res.Available, "check-out day slot must not count")
		assert.Empty(t, res.Slots)
	})

	t.Run("inactive room is never available", func(t *testing.T) {
		room := activeRoom(5)
		room.IsActive = false

		res := availability.Compute(room, rng, 1, nil, nil)
		assert.False(t, res.Available)
		assert.False(t, res.RoomActive)
	})

	t.Run("availability window is enforced", func(t *testing.T) {
		from := day(2026, 9, 1)
		to := day(2026, 9, 12)
		room := activeRoom(5)
		room.AvailableFrom = &from
		room.AvailableTo = &to

		res := availability.Compute(room, rng, 1, nil, nil)
		assert.False(t, res.Available)
		assert.False(t, res.WindowOK, "range ends past the window")

		to = day(2026, 9, 13)
		res = availability.Compute(room, rng, 1, nil, nil)
		assert.True(t, res.WindowOK, "window closing on check-out day is fine")
		assert.True(t, res.Available)
	})

	t.Run("zero requested units is not admissible", func(t *testing.T) {
		res := availability.Compute(activeRoom(5), rng, 0, nil, nil)
		assert.False(t, res.Available)
	})

	t.Run("overbooked room reports zero not negative", func(t *testing.T) {
		conflicts := []availability.Conflict{
			conflict(t, 7, booking.StatusConfirmed, day(2026, 9, 10), day(2026, 9, 13)),
		}

		res := availability.Compute(activeRoom(5), rng, 1, nil, conflicts)
		assert.False(t, res.Available)
		assert.Equal(t, int32(0), res.AvailableUnits)
	})
}
