package either

import "github.com/samber/lo"

// Func marks a payload as a unary function for Ap. Plain func(T) T payloads
// are accepted as well.
type Func[T any] func(T) T

func callable[T any](v T) (func(T) T, bool) {
	switch fn := any(v).(type) {
	case func(T) T:
		return fn, fn != nil
	case Func[T]:
		return fn, fn != nil
	default:
		return nil, false
	}
}

// Ap applies the function carried by a Right receiver to the payload of
// other.
//
// A Left receiver is returned unchanged and other is ignored. A Right
// receiver whose payload is not a func(T) T or Func[T] is also returned
// unchanged; no error is raised. Otherwise a Left other is returned as is
// and a Right other yields Right(fn(other payload)).
func (e *Either[T]) Ap(other *Either[T]) *Either[T] {
	if e.IsLeft() {
		return e
	}
	fn, ok := callable(e.value)
	if !ok {
		return e
	}
	if other.IsLeft() {
		return other
	}
	return Right(fn(other.value))
}

// LiftN applies a curried function to the payloads of args, one argument per
// step, and returns the first Left it meets. The accumulator starts as
// args[0] mapped to fn, so a Left first argument is returned as is.
//
// fn must be curried down to func(any) any at every step, for example
// func(a any) any { return func(b any) any { ... } }. Argument and
// parameter types are not checked: a non-curried fn stops applying at the
// first step that does not yield a callable and that container is returned.
func LiftN(fn any, args ...*Either[any]) *Either[any] {
	if len(args) == 0 {
		return Right(fn)
	}
	start := args[0].Map(func(any) any { return fn })
	return lo.Reduce(args, func(acc *Either[any], arg *Either[any], _ int) *Either[any] {
		return acc.Ap(arg)
	}, start)
}

// Lift2 applies fn to the payloads of a and b, returning the first Left.
func Lift2[T any](fn func(a, b T) T, a, b *Either[T]) *Either[T] {
	if a.IsLeft() {
		return a
	}
	if b.IsLeft() {
		return b
	}
	return Right(fn(a.value, b.value))
}

// Lift3 applies fn to the payloads of a, b and c, returning the first Left.
func Lift3[T any](fn func(a, b, c T) T, a, b, c *Either[T]) *Either[T] {
	if a.IsLeft() {
		return a
	}
	return Lift2(func(b, c T) T { return fn(a.value, b, c) }, b, c)
}

// Curry2 adapts a binary function to the shape LiftN expects.
func Curry2(fn func(a, b any) any) func(any) any {
	return func(a any) any {
		return func(b any) any {
			return fn(a, b)
		}
	}
}

// Curry3 adapts a ternary function to the shape LiftN expects.
func Curry3(fn func(a, b, c any) any) func(any) any {
	return func(a any) any {
		return Curry2(func(b, c any) any {
			return fn(a, b, c)
		})
	}
}
