package solo

import (
	"context"

	"github.com/ib-77/trisolve/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) error) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	if err := validate(ctx, input.Result()); err != nil {
		return rop.Inherit(rop.Fail[T](err), input)
	}
	return input
}

// ValidateAll runs validators in order. With breakOnError the first failure
// is returned as is; otherwise every failure is collected into one joined error.
func ValidateAll[T any](ctx context.Context, input rop.Result[T],
	breakOnError bool,
	validators ...func(ctx context.Context, in T) error) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	var err error
	for _, validate := range validators {
		e := validate(ctx, input.Result())
		if e == nil {
			continue
		}
		if breakOnError {
			return rop.Inherit(rop.Fail[T](e), input)
		}
		err = rop.JoinErrors(err, e)
	}

	if !rop.IsNil(err) {
		return rop.Inherit(rop.Fail[T](err), input)
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Inherit(onSuccess(ctx, input.Result()), input)
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.FailFrom[In, Out](input)
	}

	out, err := onTryExecute(ctx, input.Result())
	if err != nil {
		return rop.Inherit(rop.Fail[Out](err), input)
	}
	return rop.Inherit(rop.Success(out), input)
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T]),
	onError func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx, input)
		}
	} else if onError != nil {
		onError(ctx, input)
	}

	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
