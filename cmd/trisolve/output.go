package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/trisolve/internal/config"
	"github.com/ib-77/trisolve/pkg/triangle"
)

type triangleView struct {
	A     float64 `json:"a" yaml:"a"`
	B     float64 `json:"b" yaml:"b"`
	C     float64 `json:"c" yaml:"c"`
	Alpha float64 `json:"alpha" yaml:"alpha"`
	Beta  float64 `json:"beta" yaml:"beta"`
}

type view struct {
	Status   string        `json:"status" yaml:"status"`
	Code     string        `json:"code,omitempty" yaml:"code,omitempty"`
	Message  string        `json:"message,omitempty" yaml:"message,omitempty"`
	Triangle *triangleView `json:"triangle,omitempty" yaml:"triangle,omitempty"`
}

func newView(t triangle.SolvedTriangle, err error, precision int32) view {
	if err != nil {
		v := view{Status: triangle.StatusOf(err), Message: err.Error()}
		if kind, ok := triangle.KindOf(err); ok {
			v.Code = kind.String()
		}
		return v
	}

	round := func(f float64) float64 {
		if precision < 0 {
			return f
		}
		return decimal.NewFromFloat(f).Round(precision).InexactFloat64()
	}
	return view{
		Status: triangle.StatusSuccess,
		Triangle: &triangleView{
			A:     round(t.A),
			B:     round(t.B),
			C:     round(t.C),
			Alpha: round(t.Alpha),
			Beta:  round(t.Beta),
		},
	}
}

func render(w io.Writer, out config.OutputConfig, v view) error {
	switch out.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", out.Format)
	}
}
