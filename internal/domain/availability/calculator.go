// Package availability computes how many units of a room are free over a
// stay range, reconciling three sources of truth: the room's default
// quantity, per-date slot overrides, and existing capacity-consuming
// bookings. The computation is pure; data access belongs to callers.
package availability

import (
	"time"

	"hotelops/internal/domain/booking"

	"github.com/google/uuid"
)

// RoomInfo is the slice of the room entity the calculator needs.
type RoomInfo struct {
	ID            uuid.UUID
	Quantity      int32
	AvailableFrom *time.Time
	AvailableTo   *time.Time
	IsActive      bool
}

// Slot is a per-date override of the room's sellable capacity.
type Slot struct {
	Date           time.Time
	AvailableCount int32
	BlockedCount   int32
}

// Conflict is an existing booking that overlaps the requested range.
type Conflict struct {
	BookingID uuid.UUID
	ResID     string
	Units     int32
	Stay      booking.DateRange
	Status    booking.Status
}

// Result carries the admission decision plus everything the UI and audit
// trail need to explain it.
type Result struct {
	Available      bool
	RoomActive     bool
	WindowOK       bool
	RequestedUnits int32
	AvailableUnits int32
	BookedUnits    int32
	Slots          []Slot
	Conflicts      []Conflict
}

// Compute decides whether requestedUnits of the room are free over rng.
//
// Rules, in order:
//  1. An inactive room is never available.
//  2. If the room declares an availability window, the whole range must lie
//     inside it; a window miss is flagged separately from a capacity miss.
//  3. Only CONFIRMED and CHECKED_IN bookings consume capacity (soft-hold
//     model); conflicts are detected with the half-open overlap test, so
//     back-to-back stays do not collide.
//  4. If any slot rows exist for dates in range, the worst day governs: the
//     range's capacity is the minimum availableCount across them. Otherwise
//     capacity is quantity minus booked units.
//
// Zero availability is a valid result, not an error.
func Compute(room RoomInfo, rng booking.DateRange, requestedUnits int32, slots []Slot, conflicts []Conflict) Result {
	res := Result{
		RoomActive:     room.IsActive,
		WindowOK:       withinWindow(room, rng),
		RequestedUnits: requestedUnits,
	}

	for _, c := range conflicts {
		if !c.Status.ConsumesCapacity() {
			continue
		}
		if !c.Stay.Overlaps(rng) {
			continue
		}
		res.Conflicts = append(res.Conflicts, c)
		res.BookedUnits += c.Units
	}

	inRange := slotsInRange(slots, rng)
	res.Slots = inRange

	if len(inRange) > 0 {
		res.AvailableUnits = minAvailable(inRange)
	} else {
		res.AvailableUnits = room.Quantity - res.BookedUnits
		if res.AvailableUnits < 0 {
			res.AvailableUnits = 0
		}
	}

	res.Available = res.RoomActive &&
		res.WindowOK &&
		requestedUnits > 0 &&
		res.AvailableUnits >= requestedUnits

	return res
}

func withinWindow(room RoomInfo, rng booking.DateRange) bool {
	if room.AvailableFrom != nil && rng.CheckIn().Before(*room.AvailableFrom) {
		return false
	}
	if room.AvailableTo != nil && rng.CheckOut().After(*room.AvailableTo) {
		return false
	}
	return true
}

func slotsInRange(slots []Slot, rng booking.DateRange) []Slot {
	var out []Slot
	for _, s := range slots {
		if rng.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}

func minAvailable(slots []Slot) int32 {
	min := slots[0].AvailableCount
	for _, s := range slots[1:] {
		if s.AvailableCount < min {
			min = s.AvailableCount
		}
	}
	return min
}
