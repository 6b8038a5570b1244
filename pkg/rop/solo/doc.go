// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T, E]. These functions form the building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In, E] to Result[Out, E] (and_then)
// - Recover: replace a failure with the outcome of a handler (or_else)
// - Map/MapErr: transform the success value or the error
// - Try/FailOnError: bridge functions returning error into erased failures
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
// - Join: fold a sequence of steps with optional break on first failure
package solo
