package booking

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// ConsumesCapacity reports whether a booking in this status holds inventory.
// PENDING is a soft hold and does not block capacity; CANCELLED and
// CHECKED_OUT release it.
func (s Status) ConsumesCapacity() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// IsTerminal reports whether no further status transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCheckedOut
}

var forwardTransitions = map[Status]Status{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusCheckedIn,
	StatusCheckedIn: StatusCheckedOut,
}

// CanTransitionTo allows the single forward operational step, plus
// cancellation from any non-terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return forwardTransitions[s] == next
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
