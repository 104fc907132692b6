package main

import (
	"fmt"
	"strings"

	"github.com/ib-77/trisolve/pkg/triangle"
)

const examples = `  trisolve 7 leg 18 hypotenuse
  trisolve 30 angle 10 hypotenuse --format json
  trisolve 40 "adjacent angle" 3 leg --precision 3`

func usage() string {
	quoted := make([]string, 0, len(triangle.Kinds()))
	for _, k := range triangle.Kinds() {
		quoted = append(quoted, fmt.Sprintf("%q", string(k)))
	}

	var b strings.Builder
	b.WriteString("Solve a right triangle from two known measurements, each tagged with its kind.\n\n")
	b.WriteString("Kinds: " + strings.Join(quoted, ", ") + "\n")
	b.WriteString("Kinds are matched ignoring case and surrounding spaces.\n")
	b.WriteString("Angles are given in degrees.\n")
	b.WriteString("Put -- before the arguments when a value is negative.")
	return b.String()
}
