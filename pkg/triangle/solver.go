package triangle

import (
	"context"

	"github.com/ib-77/trisolve/pkg/rop"
	"github.com/ib-77/trisolve/pkg/rop/chain"
)

// Solver runs Solve and hands every outcome to its Reporter.
type Solver struct {
	reporter Reporter
}

// NewSolver returns a Solver reporting to r. A nil r discards reports.
func NewSolver(r Reporter) *Solver {
	if r == nil {
		r = NopReporter{}
	}
	return &Solver{reporter: r}
}

// Triangle solves and reports. No partial triangle is returned on error.
func (s *Solver) Triangle(ctx context.Context, value1 float64, kind1 string, value2 float64, kind2 string) (SolvedTriangle, error) {
	res := s.solve(ctx, value1, kind1, value2, kind2).Result()
	if !res.IsSuccess() {
		return SolvedTriangle{}, res.Err()
	}
	return res.Result(), nil
}

// Status solves, reports, and returns one of the Status* strings.
func (s *Solver) Status(ctx context.Context, value1 float64, kind1 string, value2 float64, kind2 string) string {
	return chain.Finally(s.solve(ctx, value1, kind1, value2, kind2),
		func(context.Context, SolvedTriangle) string { return StatusSuccess },
		func(_ context.Context, err error) string { return StatusOf(err) })
}

func (s *Solver) solve(ctx context.Context, value1 float64, kind1 string, value2 float64, kind2 string) *chain.Chain[SolvedTriangle] {
	return chain.Start(ctx, Solve(ctx, value1, kind1, value2, kind2)).Tee(s.report, s.report)
}

func (s *Solver) report(ctx context.Context, res rop.Result[SolvedTriangle]) {
	s.reporter.Report(ctx, res)
}
