package either

import "github.com/samber/lo"

// Lefts returns the payloads of the Left containers in order. Nil entries
// are skipped.
func Lefts[T any](es []*Either[T]) []T {
	return lo.FilterMap(es, func(e *Either[T], _ int) (T, bool) {
		if e == nil || e.IsRight() {
			var zero T
			return zero, false
		}
		return e.value, true
	})
}

// Rights returns the payloads of the Right containers in order. Nil entries
// are skipped.
func Rights[T any](es []*Either[T]) []T {
	return lo.FilterMap(es, func(e *Either[T], _ int) (T, bool) {
		if e == nil || e.IsLeft() {
			var zero T
			return zero, false
		}
		return e.value, true
	})
}

func Partition[T any](es []*Either[T]) (lefts []T, rights []T) {
	return Lefts(es), Rights(es)
}

// FirstRight returns the first Right of es, the last element when none is
// Right, and nil for an empty list. It is OrElse over many alternatives.
func FirstRight[T any](es ...*Either[T]) *Either[T] {
	if len(es) == 0 {
		return nil
	}
	acc := es[0]
	for _, e := range es[1:] {
		acc = acc.OrElse(e)
	}
	return acc
}
