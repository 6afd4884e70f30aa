package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr returns ptr unless it is nil, otherwise fallback. Used for
// partial updates where the stored value is itself optional.
func CoalescePtr[T any](ptr *T, fallback *T) *T {
	if ptr != nil {
		return ptr
	}
	return fallback
}

// Changed reports whether ptr carries a value different from current.
func Changed[T comparable](ptr *T, current T) bool {
	return ptr != nil && *ptr != current
}
