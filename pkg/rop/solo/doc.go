// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. A stage runs only when its input succeeded; a failure skips
// every following stage and reaches the end of the pipeline unchanged.
// Every stage keeps the id of its input, so one pipeline has one id.
//
// Highlights:
// - Succeed: construct Result[T]
// - AndValidate/ValidateAll: turn a check into a failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Try: call a function (Out, error) and convert error to failure
// - DoubleTee: side effects for both tracks
// - Finally: reduce to a concrete value via success/error handlers
package solo
