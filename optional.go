package vivy

// Optional holds a value that may be absent.
//
// The zero Optional is absent. An Optional holding the zero value of T
// (for example the empty string) is present and never equal to an absent one.
type Optional[T any] struct {
	value T    // Held value, meaningful only when set
	set   bool // Whether the value is present
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or returns the held value, or def when absent.
func (o Optional[T]) Or(def T) T {
	if !o.set {
		return def
	}

	return o.value
}
