/*
Package maybe provides an optional-value type.

A Maybe either holds a value ("just") or it doesn't ("nothing"). It is the
result type for lookups where absence is an ordinary outcome, not an error.
*/
package maybe

// Maybe wraps an optional value of type T. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing is the absent Maybe for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust reports whether m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// Value unwraps m, reporting presence alongside. For an absent m the zero
// value for type T is returned.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.just
}

// WithDefault unwraps m, falling back to def for an absent m.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Map applies f to a present value; an absent m passes through unchanged.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself come up empty.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}
