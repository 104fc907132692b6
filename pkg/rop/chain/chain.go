package chain

import (
	"context"

	"github.com/ib-77/trisolve/pkg/rop"
	"github.com/ib-77/trisolve/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, solo.Succeed(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch[T, U](c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Validate fails the chain with the error returned by validate
func (c *Chain[T]) Validate(validate func(context.Context, T) error) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.AndValidate(c.ctx, c.result, validate),
	}
}

// ValidateAll runs validators in order; see solo.ValidateAll
func (c *Chain[T]) ValidateAll(breakOnError bool, validators ...func(context.Context, T) error) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.ValidateAll(c.ctx, c.result, breakOnError, validators...),
	}
}

// Tee hands the result to onSuccess or onError without changing it.
// Either handler may be nil.
func (c *Chain[T]) Tee(onSuccess, onError func(context.Context, rop.Result[T])) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.DoubleTee(c.ctx, c.result, onSuccess, onError),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.result, onSuccess, onFailure)
}
