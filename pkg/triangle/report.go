package triangle

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ib-77/trisolve/pkg/rop"
)

// Output labels of the five solved quantities.
const (
	LabelA     = "a (leg)"
	LabelB     = "b (leg)"
	LabelC     = "c (hypotenuse)"
	LabelAlpha = "alpha (acute angle)"
	LabelBeta  = "beta (acute angle)"
)

// Reporter receives the outcome of every Solver call.
type Reporter interface {
	Report(ctx context.Context, res rop.Traceable[SolvedTriangle])
}

type NopReporter struct{}

func (NopReporter) Report(context.Context, rop.Traceable[SolvedTriangle]) {}

// LogReporter writes outcomes as structured zap entries.
type LogReporter struct {
	logger *zap.Logger
}

func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(_ context.Context, res rop.Traceable[SolvedTriangle]) {
	if res.IsSuccess() {
		t := res.Result()
		r.logger.Info("triangle solved",
			zap.Stringer("id", res.Id()),
			zap.Float64("a", t.A),
			zap.Float64("b", t.B),
			zap.Float64("c", t.C),
			zap.Float64("alpha", t.Alpha),
			zap.Float64("beta", t.Beta))
		return
	}

	kind, _ := KindOf(res.Err())
	r.logger.Warn("triangle not solved",
		zap.Stringer("id", res.Id()),
		zap.Stringer("code", kind),
		zap.String("status", kind.Status()),
		zap.Error(res.Err()))
}

// WriterReporter prints one labeled line per quantity. A negative precision
// prints values unrounded.
type WriterReporter struct {
	w         io.Writer
	precision int32
}

func NewWriterReporter(w io.Writer, precision int32) *WriterReporter {
	return &WriterReporter{w: w, precision: precision}
}

func (r *WriterReporter) Report(_ context.Context, res rop.Traceable[SolvedTriangle]) {
	if !res.IsSuccess() {
		_, _ = fmt.Fprintf(r.w, "error: %v\n", res.Err())
		return
	}

	t := res.Result()
	for _, line := range []struct {
		label string
		value float64
	}{
		{LabelA, t.A},
		{LabelB, t.B},
		{LabelC, t.C},
		{LabelAlpha, t.Alpha},
		{LabelBeta, t.Beta},
	} {
		_, _ = fmt.Fprintf(r.w, "%s = %s\n", line.label, FormatValue(line.value, r.precision))
	}
}

// FormatValue renders v with precision decimal places, or in its shortest
// exact form when precision is negative. v must be finite.
func FormatValue(v float64, precision int32) string {
	d := decimal.NewFromFloat(v)
	if precision < 0 {
		return d.String()
	}
	return d.StringFixed(precision)
}

// Reporters fans one outcome out to several reporters in order.
type Reporters []Reporter

func (rs Reporters) Report(ctx context.Context, res rop.Traceable[SolvedTriangle]) {
	for _, r := range rs {
		r.Report(ctx, res)
	}
}
