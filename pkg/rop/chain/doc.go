// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes Switch, Try, AndValidate, ValidateAll, DoubleTee and Finally
// behind a Chain[T] type, so a pipeline reads top to bottom without
// branching on each intermediate result.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Validate/ValidateAll: fail the chain when a check returns an error
// - Tee: run side effects on both tracks without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
