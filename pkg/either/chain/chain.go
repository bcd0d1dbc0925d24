package chain

import (
	"context"

	"github.com/ib-77/either/pkg/either"
)

type Chain[T any] struct {
	ctx context.Context
	e   *either.Either[T]
}

func Start[T any](ctx context.Context, e *either.Either[T]) Chain[T] {
	return Chain[T]{ctx: ctx, e: e}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, either.Right(v))
}

func (c Chain[T]) Either() *either.Either[T] {
	return c.e
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Then composes functions that already return a container
func (c Chain[T]) Then(onRight func(ctx context.Context, v T) *either.Either[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, e: c.e.FlatMap(func(v T) *either.Either[T] {
		return onRight(c.ctx, v)
	})}
}

// Map transforms the Right payload to a new value
func (c Chain[T]) Map(onRight func(ctx context.Context, v T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, e: c.e.Map(func(v T) T {
		return onRight(c.ctx, v)
	})}
}

// Try composes functions that return (T, error), like repo calls. An error,
// or a context that is already done, becomes Left(onErr(err)).
func (c Chain[T]) Try(try func(ctx context.Context, v T) (T, error), onErr func(err error) T) Chain[T] {
	if c.e.IsLeft() {
		return c
	}
	if err := c.ctx.Err(); err != nil {
		return Chain[T]{ctx: c.ctx, e: either.Left(onErr(err))}
	}

	v, err := try(c.ctx, c.e.Get())
	if err != nil {
		return Chain[T]{ctx: c.ctx, e: either.Left(onErr(err))}
	}
	return Chain[T]{ctx: c.ctx, e: either.Right(v)}
}

// Ensure triggers side effects for Right/Left without changing the container
func (c Chain[T]) Ensure(onRight func(context.Context, T), onLeft func(context.Context, T)) Chain[T] {
	var left, right func(T)
	if onLeft != nil {
		left = func(v T) { onLeft(c.ctx, v) }
	}
	if onRight != nil {
		right = func(v T) { onRight(c.ctx, v) }
	}
	c.e.Peek(left, right)
	return c
}

// Or returns the first Right chain among c and alternatives, or the last
// one when none is Right.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	res := c
	for _, alt := range alternatives {
		if res.e.IsRight() {
			return res
		}
		res = alt
	}
	return res
}

// And returns the first Left chain among c and required, or the last one
// when all of them are Right.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	res := c
	for _, ch := range required {
		if res.e.IsLeft() {
			return res
		}
		res = ch
	}
	return res
}

// RepeatUntil runs onRight at least once and keeps running it while the
// chain is Right and until reports true for the new payload.
func (c Chain[T]) RepeatUntil(onRight func(ctx context.Context, v T) *either.Either[T],
	until func(ctx context.Context, v T) bool) Chain[T] {

	if c.e.IsLeft() {
		return c
	}

	for {
		c = c.Then(onRight)

		if c.e.IsLeft() || !until(c.ctx, c.e.Get()) {
			return c
		}
	}
}

// While runs onRight as long as the chain is Right and while holds.
func (c Chain[T]) While(onRight func(ctx context.Context, v T) *either.Either[T],
	while func(ctx context.Context, v T) bool) Chain[T] {

	for c.e.IsRight() && while(c.ctx, c.e.Get()) {
		c = c.Then(onRight)
	}
	return c
}

// Finally collapses the chain to a plain value
func (c Chain[T]) Finally(onLeft func(context.Context, T) T, onRight func(context.Context, T) T) T {
	return either.FoldTo(c.e,
		func(v T) T { return onLeft(c.ctx, v) },
		func(v T) T { return onRight(c.ctx, v) })
}

// FinallyTo is Finally for a result of another type.
func FinallyTo[T, U any](c Chain[T], onLeft func(context.Context, T) U, onRight func(context.Context, T) U) U {
	return either.FoldTo(c.e,
		func(v T) U { return onLeft(c.ctx, v) },
		func(v T) U { return onRight(c.ctx, v) })
}
