package payment

type Method string

const (
	MethodCash   Method = "CASH"
	MethodCredit Method = "CREDIT"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodCredit:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusCompleted     Status = "COMPLETED"
	StatusPartiallyPaid Status = "PARTIALLY_PAID"
)

func (s Status) String() string {
	return string(s)
}
