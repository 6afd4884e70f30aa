package booking

import "errors"

var ErrNoUsableRate = errors.New("no usable nightly rate resolves to a positive amount")

// RateInput carries the room's catalog prices plus any caller overrides.
// All amounts are cents.
type RateInput struct {
	RoomBaseCents        int64
	RoomAlternativeCents *int64
	OverrideBaseCents    *int64
	OverrideAltCents     *int64
	UseAlternativeRate   bool
}

// SelectRate picks the nightly unit rate. When the alternate-rate preference
// is set and an alternate rate is available (caller override first, room
// default second), that rate wins; otherwise the base rate (same precedence)
// applies. A non-positive winner is an error, never a silent zero.
func SelectRate(in RateInput) (int64, error) {
	if in.UseAlternativeRate {
		if in.OverrideAltCents != nil && *in.OverrideAltCents > 0 {
			return *in.OverrideAltCents, nil
		}
		if in.RoomAlternativeCents != nil && *in.RoomAlternativeCents > 0 {
			return *in.RoomAlternativeCents, nil
		}
	}

	if in.OverrideBaseCents != nil {
		if *in.OverrideBaseCents > 0 {
			return *in.OverrideBaseCents, nil
		}
		return 0, ErrNoUsableRate
	}
	if in.RoomBaseCents > 0 {
		return in.RoomBaseCents, nil
	}
	return 0, ErrNoUsableRate
}

// AlternativeRateSnapshot returns the alternate rate to store alongside the
// booking, caller override first. Nil when neither source provides one.
func AlternativeRateSnapshot(in RateInput) *int64 {
	if in.OverrideAltCents != nil {
		return in.OverrideAltCents
	}
	return in.RoomAlternativeCents
}
