package triangle

import (
	"context"
	"fmt"
	"math"

	"github.com/ib-77/trisolve/pkg/rop"
	"github.com/ib-77/trisolve/pkg/rop/chain"
)

// SolvedTriangle holds legs A and B, hypotenuse C and the acute angles
// Alpha (opposite A) and Beta (opposite B) in degrees.
type SolvedTriangle struct {
	A     float64
	B     float64
	C     float64
	Alpha float64
	Beta  float64
}

type request struct {
	values [2]float64
	kinds  [2]string
}

// Solve computes the missing sides and angles from two tagged values.
// The order of the two arguments does not matter.
func Solve(ctx context.Context, value1 float64, kind1 string, value2 float64, kind2 string) rop.Result[SolvedTriangle] {
	req := request{
		values: [2]float64{value1, value2},
		kinds:  [2]string{kind1, kind2},
	}

	checked := chain.FromValue(ctx, req).ValidateAll(true, requireFinite, requirePositive)
	pair := chain.Then(checked, normalize)
	ordered := chain.ThenTry(pair, func(_ context.Context, p [2]Measurement) (classified, error) {
		return classify(p[0], p[1])
	})
	solved := chain.ThenTry(ordered, func(_ context.Context, c classified) (SolvedTriangle, error) {
		return c.config.solve(c.first.Value, c.second.Value)
	})
	return solved.Validate(requireTriangle).Result()
}

func requireFinite(_ context.Context, req request) error {
	for _, v := range req.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrNonNumericInput, v)
		}
	}
	return nil
}

func requirePositive(_ context.Context, req request) error {
	for _, v := range req.values {
		if v <= 0 {
			return fmt.Errorf("%w: %v", ErrNonPositiveInput, v)
		}
	}
	return nil
}

func normalize(_ context.Context, req request) rop.Result[[2]Measurement] {
	var pair [2]Measurement
	for i, raw := range req.kinds {
		kind, ok := ParseKind(raw)
		if !ok {
			return rop.Fail[[2]Measurement](fmt.Errorf("%w: %q", ErrUnknownKind, raw))
		}
		pair[i] = Measurement{Value: req.values[i], Kind: kind}
	}
	return rop.Success(pair)
}

func requireTriangle(_ context.Context, t SolvedTriangle) error {
	if !IsTriangle(t.A, t.B, t.C) {
		return fmt.Errorf("%w: sides %v, %v, %v", ErrDegenerateTriangle, t.A, t.B, t.C)
	}
	return nil
}

// IsTriangle reports whether x, y and z are positive and satisfy the strict
// triangle inequality.
func IsTriangle(x, y, z float64) bool {
	if !(x > 0 && y > 0 && z > 0) {
		return false
	}
	return x+y > z && x+z > y && y+z > x
}
