package ptr

// To returns a pointer to the given value
func To[T any](v T) *T {
	return &v
}

// From returns the value behind the given pointer, or fallback if the pointer is nil
func From[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
