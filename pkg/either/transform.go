package either

// Map transforms the payload of a Right and rewraps it as Right. A Left is
// returned unchanged and fn is not called.
func (e *Either[T]) Map(fn func(T) T) *Either[T] {
	if e.IsLeft() {
		return e
	}
	return Right(fn(e.value))
}

// MapLeft transforms the payload of a Left. A Right is returned unchanged.
func (e *Either[T]) MapLeft(fn func(T) T) *Either[T] {
	if e.IsRight() {
		return e
	}
	return Left(fn(e.value))
}

// FlatMap passes the payload of a Right to fn and returns fn's container as
// is. Use it instead of Map when fn can fail itself.
func (e *Either[T]) FlatMap(fn func(T) *Either[T]) *Either[T] {
	if e.IsLeft() {
		return e
	}
	return fn(e.value)
}

// Step is the result of a Then callback: either a plain value, which Then
// wraps in Right, or a container, which Then returns unchanged.
type Step[T any] struct {
	value  T
	nested *Either[T]
}

// Plain makes a Step that Then wraps in Right.
func Plain[T any](value T) Step[T] {
	return Step[T]{value: value}
}

// Nested makes a Step that Then returns as is. A nil container counts as
// Plain of the zero value.
func Nested[T any](e *Either[T]) Step[T] {
	return Step[T]{nested: e}
}

func (s Step[T]) either() *Either[T] {
	if s.nested != nil {
		return s.nested
	}
	return Right(s.value)
}

// Then merges Map and FlatMap: on a Right it calls fn and either wraps the
// plain result or returns the nested container.
func (e *Either[T]) Then(fn func(T) Step[T]) *Either[T] {
	if e.IsLeft() {
		return e
	}
	return fn(e.value).either()
}

// Flatten collapses a Right whose payload is itself a *Either[T] into that
// inner container. Anything else is returned unchanged.
func (e *Either[T]) Flatten() *Either[T] {
	if e.IsLeft() {
		return e
	}
	if inner, ok := any(e.value).(*Either[T]); ok && inner != nil {
		return inner
	}
	return e
}

// Fold calls onLeft or onRight on the payload, chosen by tag, and returns the
// result unwrapped.
func (e *Either[T]) Fold(onLeft func(T) T, onRight func(T) T) T {
	return FoldTo(e, onLeft, onRight)
}

// FoldTo is Fold for results of another type.
func FoldTo[T, U any](e *Either[T], onLeft func(T) U, onRight func(T) U) U {
	if e.IsRight() {
		return onRight(e.value)
	}
	return onLeft(e.value)
}

// Map is the curried form of (*Either[T]).Map, for point-free composition.
func Map[T any](fn func(T) T) func(*Either[T]) *Either[T] {
	return func(e *Either[T]) *Either[T] {
		return e.Map(fn)
	}
}

// Lift turns fn into a function over containers. It behaves as Map.
func Lift[T any](fn func(T) T) func(*Either[T]) *Either[T] {
	return Map(fn)
}

// FlatMap is the curried form of (*Either[T]).FlatMap.
func FlatMap[T any](fn func(T) *Either[T]) func(*Either[T]) *Either[T] {
	return func(e *Either[T]) *Either[T] {
		return e.FlatMap(fn)
	}
}
