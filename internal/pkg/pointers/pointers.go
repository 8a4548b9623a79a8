package pointers

// Ptr returns a pointer to v. Handy for optional response fields.
func Ptr[T any](v T) *T { return &v }
