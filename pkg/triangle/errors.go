package triangle

import (
	"errors"
	"fmt"
)

// ErrorKind is the stable code of a solving failure.
type ErrorKind int

const (
	NonNumericInput ErrorKind = iota + 1
	NonPositiveInput
	UnknownKind
	IncompatibleKinds
	AngleOutOfRange
	LegNotLessThanHypotenuse
	DegenerateTriangle
)

// Status strings returned by Solver.Status.
const (
	StatusSuccess         = "success"
	StatusNonNumeric      = "Non-numeric input"
	StatusNonPositive     = "Zero or negative input"
	StatusFailed          = "failed"
	StatusInvalidInput    = "Invalid input"
	StatusInvalidTriangle = "Invalid triangle"
)

var errorKindNames = map[ErrorKind]string{
	NonNumericInput:          "NonNumericInput",
	NonPositiveInput:         "NonPositiveInput",
	UnknownKind:              "UnknownKind",
	IncompatibleKinds:        "IncompatibleKinds",
	AngleOutOfRange:          "AngleOutOfRange",
	LegNotLessThanHypotenuse: "LegNotLessThanHypotenuse",
	DegenerateTriangle:       "DegenerateTriangle",
}

var errorKindStatuses = map[ErrorKind]string{
	NonNumericInput:          StatusNonNumeric,
	NonPositiveInput:         StatusNonPositive,
	UnknownKind:              StatusFailed,
	IncompatibleKinds:        StatusFailed,
	AngleOutOfRange:          StatusInvalidInput,
	LegNotLessThanHypotenuse: StatusInvalidInput,
	DegenerateTriangle:       StatusInvalidTriangle,
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Status is the short status string for k. Unknown kinds map to "failed".
func (k ErrorKind) Status() string {
	if status, ok := errorKindStatuses[k]; ok {
		return status
	}
	return StatusFailed
}

// Error is a solving failure with a stable Kind and a readable Message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrNonNumericInput          = &Error{Kind: NonNumericInput, Message: "non-numeric value"}
	ErrNonPositiveInput         = &Error{Kind: NonPositiveInput, Message: "values must be positive"}
	ErrUnknownKind              = &Error{Kind: UnknownKind, Message: "unknown measurement kind"}
	ErrIncompatibleKinds        = &Error{Kind: IncompatibleKinds, Message: "incompatible pair of measurement kinds"}
	ErrAngleOutOfRange          = &Error{Kind: AngleOutOfRange, Message: "angle must be within (0°, 90°)"}
	ErrLegNotLessThanHypotenuse = &Error{Kind: LegNotLessThanHypotenuse, Message: "a leg cannot be greater than or equal to the hypotenuse"}
	ErrDegenerateTriangle       = &Error{Kind: DegenerateTriangle, Message: "no triangle exists for these values"}
)

// KindOf returns the ErrorKind wrapped somewhere in err.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// StatusOf maps err to its status string; nil is success.
func StatusOf(err error) string {
	if err == nil {
		return StatusSuccess
	}
	kind, _ := KindOf(err)
	return kind.Status()
}
