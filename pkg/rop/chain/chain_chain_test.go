package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/trisolve/pkg/rop"
)

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := rop.Success(10)
	c := Start(ctx, base)
	out := c.Result()
	if !out.IsSuccess() || out.Result() != 10 {
		t.Fatalf("expected success with 10, got success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := FromValue(ctx, 7)
	out := c.Result()
	if !out.IsSuccess() || out.Result() != 7 {
		t.Fatalf("expected success with 7, got success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")
	c := Start(ctx, rop.Fail[int](err))
	called := false
	c2 := Then(c, func(ctx context.Context, v int) rop.Result[string] {
		called = true
		return rop.Success("ok")
	})
	out := c2.Result()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got success=%v err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on failure input")
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// success path
	c := FromValue(ctx, 3)
	c2 := ThenTry(c, func(ctx context.Context, v int) (string, error) {
		return "val_" + strconv.Itoa(v), nil
	})
	out := c2.Result()
	if !out.IsSuccess() || out.Result() != "val_3" {
		t.Fatalf("expected success 'val_3', got success=%v val=%v err=%v", out.IsSuccess(), out.Result(), out.Err())
	}

	// error path
	c3 := FromValue(ctx, 9)
	c4 := ThenTry(c3, func(ctx context.Context, v int) (string, error) {
		return "", errors.New("try-error")
	})
	out2 := c4.Result()
	if out2.IsSuccess() || out2.Err() == nil || out2.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got success=%v err=%v", out2.IsSuccess(), out2.Err())
	}

	// short-circuit on failure input
	c5 := Start(ctx, rop.Fail[int](errors.New("bad")))
	c6 := ThenTry(c5, func(ctx context.Context, v int) (string, error) { return "ignored", nil })
	out3 := c6.Result()
	if out3.IsSuccess() || out3.Err() == nil || out3.Err().Error() != "bad" {
		t.Fatalf("expected failure 'bad', got success=%v err=%v", out3.IsSuccess(), out3.Err())
	}
}

func TestTee_BothTracks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var successes, failures int
	onSuccess := func(context.Context, rop.Result[int]) { successes++ }
	onError := func(context.Context, rop.Result[int]) { failures++ }

	out := FromValue(ctx, 11).Tee(onSuccess, onError).Result()
	if !out.IsSuccess() || out.Result() != 11 {
		t.Fatalf("expected success with 11, got success=%v val=%v err=%v", out.IsSuccess(), out.Result(), out.Err())
	}

	out2 := Start(ctx, rop.Fail[int](errors.New("x"))).Tee(onSuccess, onError).Result()
	if out2.IsSuccess() || out2.Err() == nil || out2.Err().Error() != "x" {
		t.Fatalf("expected failure 'x', got success=%v err=%v", out2.IsSuccess(), out2.Err())
	}

	if successes != 1 || failures != 1 {
		t.Fatalf("expected 1 success and 1 failure call, got %d and %d", successes, failures)
	}
}

func TestFinally_SuccessFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := Finally(FromValue(ctx, 2),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err error) string { return "fail" },
	)
	if s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}

	f := Finally(Start(ctx, rop.Fail[int](errors.New("e"))),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err error) string { return "fail" },
	)
	if f != "fail" {
		t.Fatalf("expected 'fail', got %q", f)
	}
}

func TestChain_KeepsFirstStageId(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	start := FromValue(ctx, "21")
	first := start.Result()

	parsed := ThenTry(start, func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) })
	doubled := Then(parsed, func(_ context.Context, v int) rop.Result[int] { return rop.Success(v * 2) })
	ok := doubled.Validate(validateEven).Result()
	if !ok.IsSuccess() || ok.Result() != 42 {
		t.Fatalf("expected success with 42, got success=%v val=%v err=%v", ok.IsSuccess(), ok.Result(), ok.Err())
	}
	if ok.Id() != first.Id() || !ok.CreatedAt().Equal(first.CreatedAt()) {
		t.Fatalf("expected id %v carried to the end, got %v", first.Id(), ok.Id())
	}

	failed := Then(parsed, func(_ context.Context, v int) rop.Result[int] { return rop.Success(v) }).
		Validate(validateEven).Result()
	if failed.IsSuccess() || failed.Id() != first.Id() {
		t.Fatalf("expected failure carrying id %v, got success=%v id=%v", first.Id(), failed.IsSuccess(), failed.Id())
	}
}
