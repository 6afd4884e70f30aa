package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("check-in date must be before check-out date")
)

// DateRange is a half-open stay interval [checkIn, checkOut): the check-out
// date itself is not an occupied night.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	checkIn = toDay(checkIn)
	checkOut = toDay(checkOut)
	if !checkIn.Before(checkOut) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func (r DateRange) CheckIn() time.Time {
	return r.checkIn
}

func (r DateRange) CheckOut() time.Time {
	return r.checkOut
}

func (r DateRange) Nights() int32 {
	return int32(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Overlaps implements the half-open interval test: adjacent ranges where one
// check-out equals the other check-in do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.checkIn.Before(other.checkOut) && r.checkOut.After(other.checkIn)
}

// Contains reports whether day falls on an occupied night of the range.
func (r DateRange) Contains(day time.Time) bool {
	day = toDay(day)
	return !day.Before(r.checkIn) && day.Before(r.checkOut)
}

// Days returns every occupied night, check-in inclusive, check-out exclusive.
func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0, r.Nights())
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format(time.DateOnly), r.checkOut.Format(time.DateOnly))
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
