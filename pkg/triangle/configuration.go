package triangle

import (
	"fmt"
	"math"
)

type kindPair struct {
	first, second Kind
}

// configuration is one solvable pair of kinds. solve receives the values in
// the order of the pair key.
type configuration struct {
	solve func(first, second float64) (SolvedTriangle, error)
}

// configurations is keyed by the canonical order of each pair, which is the
// ascending order of the kind names.
var configurations = map[kindPair]configuration{
	{Angle, Hypotenuse}:  {solve: solveAngleHypotenuse},
	{AdjacentAngle, Leg}: {solve: solveAdjacentAngleLeg},
	{Leg, Leg}:           {solve: solveLegs},
	{Hypotenuse, Leg}:    {solve: solveHypotenuseLeg},
	{Leg, OppositeAngle}: {solve: solveLegOppositeAngle},
}

// classified is a measurement pair in canonical order with its configuration.
type classified struct {
	first, second Measurement
	config        configuration
}

// classify puts the pair into canonical order. Equal kinds keep call order.
func classify(m1, m2 Measurement) (classified, error) {
	if c, ok := configurations[kindPair{m1.Kind, m2.Kind}]; ok {
		return classified{first: m1, second: m2, config: c}, nil
	}
	if c, ok := configurations[kindPair{m2.Kind, m1.Kind}]; ok {
		return classified{first: m2, second: m1, config: c}, nil
	}
	return classified{}, fmt.Errorf("%w: %q and %q", ErrIncompatibleKinds, m1.Kind, m2.Kind)
}

func toRad(d float64) float64 { return d * math.Pi / 180 }
func toDeg(r float64) float64 { return r * 180 / math.Pi }

func isAcute(x float64) bool {
	return x > 0 && x < 90
}

func requireAcute(angle float64) error {
	if !isAcute(angle) {
		return fmt.Errorf("%w: got %v", ErrAngleOutOfRange, angle)
	}
	return nil
}

func solveAngleHypotenuse(alpha, c float64) (SolvedTriangle, error) {
	if err := requireAcute(alpha); err != nil {
		return SolvedTriangle{}, err
	}
	r := toRad(alpha)
	return SolvedTriangle{A: c * math.Sin(r), B: c * math.Cos(r), C: c, Alpha: alpha, Beta: 90 - alpha}, nil
}

func solveAdjacentAngleLeg(beta, a float64) (SolvedTriangle, error) {
	if err := requireAcute(beta); err != nil {
		return SolvedTriangle{}, err
	}
	r := toRad(beta)
	return SolvedTriangle{A: a, B: a * math.Tan(r), C: a / math.Cos(r), Alpha: 90 - beta, Beta: beta}, nil
}

func solveLegs(a, b float64) (SolvedTriangle, error) {
	alpha := toDeg(math.Atan2(a, b))
	return SolvedTriangle{A: a, B: b, C: math.Hypot(a, b), Alpha: alpha, Beta: 90 - alpha}, nil
}

func solveHypotenuseLeg(c, a float64) (SolvedTriangle, error) {
	if a >= c {
		return SolvedTriangle{}, fmt.Errorf("%w: leg %v, hypotenuse %v", ErrLegNotLessThanHypotenuse, a, c)
	}
	alpha := toDeg(math.Asin(a / c))
	return SolvedTriangle{A: a, B: math.Sqrt(c*c - a*a), C: c, Alpha: alpha, Beta: 90 - alpha}, nil
}

func solveLegOppositeAngle(a, alpha float64) (SolvedTriangle, error) {
	if err := requireAcute(alpha); err != nil {
		return SolvedTriangle{}, err
	}
	r := toRad(alpha)
	return SolvedTriangle{A: a, B: a / math.Tan(r), C: a / math.Sin(r), Alpha: alpha, Beta: 90 - alpha}, nil
}
