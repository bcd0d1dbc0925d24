package either

// FromTuple converts a Go (value, error) pair: Left(err) when err is non-nil,
// Right(value) otherwise.
func FromTuple[T any](value T, err error) *Either[any] {
	if err != nil {
		return Left[any](err)
	}
	return Right[any](value)
}

// Attempt calls fn and converts its result with FromTuple.
func Attempt[T any](fn func() (T, error)) *Either[any] {
	return FromTuple(fn())
}
