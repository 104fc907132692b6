// Package triangle solves right triangles from two tagged measurements.
//
// Solve is pure: it validates the inputs, orders the pair canonically,
// picks one of five supported configurations, computes the three unknowns
// and checks the result is a real triangle. Every stage is a rop stage, so
// the first failure is what the caller gets back.
//
// Solver adds an injected Reporter on top of Solve for callers that want
// the outcome printed or logged.
package triangle
