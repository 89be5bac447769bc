package singular

// Option is an optional result. Parse returns one so that an unmatched
// member name reads as an absence, never as an error.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Ok reports whether a value is present.
func (o Option[T]) Ok() bool {
	return o.ok
}

// Value returns the present value. It panics when the Option is empty.
func (o Option[T]) Value() T {
	if !o.ok {
		panic("not set")
	}
	return o.value
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the present value, or fallback when the Option is empty.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}
