package either

// Either holds one payload tagged Left or Right. Containers are passed by
// pointer: Swap is the one operation that changes a container in place.
type Either[T any] struct {
	value T
	tag   Tag
}

// Left builds a Left-tagged container. Any value is accepted, nil included.
func Left[T any](value T) *Either[T] {
	return &Either[T]{value: value, tag: TagLeft}
}

// Right builds a Right-tagged container.
func Right[T any](value T) *Either[T] {
	return &Either[T]{value: value, tag: TagRight}
}

// Of builds a container whose tag is decided at runtime. Any tag other than
// TagRight yields a Left.
func Of[T any](value T, tag Tag) *Either[T] {
	if tag == TagRight {
		return Right(value)
	}
	return Left(value)
}

func (e *Either[T]) IsLeft() bool {
	return e.tag == TagLeft
}

func (e *Either[T]) IsRight() bool {
	return e.tag == TagRight
}

func (e *Either[T]) Tag() Tag {
	return e.tag
}

// Get returns the payload whatever the tag is. Check the tag first when it
// matters.
func (e *Either[T]) Get() T {
	return e.value
}

// Unwrap returns the payload and whether the container is Right.
func (e *Either[T]) Unwrap() (T, bool) {
	return e.value, e.IsRight()
}

// Exists reports whether the container is Right and its payload satisfies
// predicate. The predicate is never called on a Left.
func (e *Either[T]) Exists(predicate func(T) bool) bool {
	if e.IsLeft() {
		return false
	}
	return predicate(e.value)
}

// GetOrElse returns the payload of a Right, fallback otherwise.
func (e *Either[T]) GetOrElse(fallback T) T {
	if e.IsRight() {
		return e.value
	}
	return fallback
}

// OrElse returns the receiver if it is Right and other verbatim otherwise,
// so that e.OrElse(a).OrElse(b) yields the first Right.
func (e *Either[T]) OrElse(other *Either[T]) *Either[T] {
	if e.IsRight() {
		return e
	}
	return other
}

// FilterOrElse keeps a Right whose payload satisfies predicate and replaces
// any other Right with otherLeft. A Left is returned unchanged.
func (e *Either[T]) FilterOrElse(predicate func(T) bool, otherLeft *Either[T]) *Either[T] {
	if e.IsLeft() {
		return e
	}
	if predicate(e.value) {
		return e
	}
	return otherLeft
}

// Guard turns a Right whose payload fails predicate into Left(onFail(v)).
func (e *Either[T]) Guard(predicate func(T) bool, onFail func(T) T) *Either[T] {
	if e.IsLeft() || predicate(e.value) {
		return e
	}
	return Left(onFail(e.value))
}

// Recover turns a Left into Right(fn(v)). A Right is returned unchanged.
func (e *Either[T]) Recover(fn func(T) T) *Either[T] {
	if e.IsRight() {
		return e
	}
	return Right(fn(e.value))
}

// Tap runs fn on a Right payload and returns the receiver.
func (e *Either[T]) Tap(fn func(T)) *Either[T] {
	if e.IsRight() {
		fn(e.value)
	}
	return e
}

// Peek runs exactly one of onLeft or onRight, chosen by tag, and returns
// the receiver. Nil handlers are skipped.
func (e *Either[T]) Peek(onLeft func(T), onRight func(T)) *Either[T] {
	if e.IsRight() {
		if onRight != nil {
			onRight(e.value)
		}
		return e
	}
	if onLeft != nil {
		onLeft(e.value)
	}
	return e
}
