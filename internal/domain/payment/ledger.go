package payment

import (
	"errors"
	"time"
)

var (
	ErrUnknownMethod   = errors.New("unrecognized payment method")
	ErrDueDateRequired = errors.New("due date required for a partially paid credit payment")
	ErrInvalidPaid     = errors.New("paid amount must be between zero and the booking total")
)

// Instruction is the caller's payment intent. PaidCents is optional: cash
// settles in full regardless, credit defaults to nothing paid.
type Instruction struct {
	Method    Method
	PaidCents *int64
	DueDate   *time.Time
}

// Entry is the derived ledger row. remaining == total − paid always; cash
// entries never carry a remainder.
type Entry struct {
	Method         Method
	TotalCents     int64
	PaidCents      int64
	RemainingCents int64
	DueDate        *time.Time
	Status         Status
}

// Build derives a ledger entry from a booking total and an instruction.
// Pure computation; persistence belongs to the caller's transaction.
func Build(totalCents int64, in Instruction) (Entry, error) {
	if !in.Method.IsValid() {
		return Entry{}, ErrUnknownMethod
	}

	switch in.Method {
	case MethodCash:
		// Cash bookings are never partially paid.
		return Entry{
			Method:         MethodCash,
			TotalCents:     totalCents,
			PaidCents:      totalCents,
			RemainingCents: 0,
			Status:         StatusCompleted,
		}, nil

	case MethodCredit:
		var paid int64
		if in.PaidCents != nil {
			paid = *in.PaidCents
		}
		if paid < 0 || paid > totalCents {
			return Entry{}, ErrInvalidPaid
		}

		remaining := totalCents - paid
		if remaining > 0 && in.DueDate == nil {
			return Entry{}, ErrDueDateRequired
		}

		status := StatusCompleted
		var dueDate *time.Time
		if remaining > 0 {
			status = StatusPartiallyPaid
			dueDate = in.DueDate
		}

		return Entry{
			Method:         MethodCredit,
			TotalCents:     totalCents,
			PaidCents:      paid,
			RemainingCents: remaining,
			DueDate:        dueDate,
			Status:         status,
		}, nil
	}

	return Entry{}, ErrUnknownMethod
}
