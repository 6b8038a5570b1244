// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Switch, Recover, Map, Try, Tee, and Finally
// behind a convenient Chain[T, E] type. This enables ergonomic pipelines
// without dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then/AndThen: switch to a new Result via a function
// - ThenTry: call a function (U, error) and convert error to an erased failure
// - OrElse: recover or re-signal a failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally/Match: collapse the chain into a final value via handlers
package chain
