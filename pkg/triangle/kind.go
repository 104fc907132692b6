package triangle

import "strings"

// Kind is the geometric role of a measurement.
type Kind string

const (
	Leg           Kind = "leg"
	Hypotenuse    Kind = "hypotenuse"
	AdjacentAngle Kind = "adjacent angle"
	OppositeAngle Kind = "opposite angle"
	Angle         Kind = "angle"
)

var kinds = [...]Kind{Leg, Hypotenuse, AdjacentAngle, OppositeAngle, Angle}

// Kinds lists the accepted kinds.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds[:])
	return out
}

// ParseKind normalizes s (trim, lowercase) and reports whether it names a kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range kinds {
		if k == known {
			return k, true
		}
	}
	return k, false
}

// Measurement is one known value tagged with its role.
type Measurement struct {
	Value float64
	Kind  Kind
}
