// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent pipelines. It is designed for simple fan-out/fan-in
// flows without custom cancellation handling.
//
// Common usage:
// - Run: execute an engine over an input channel with a fixed number of lines
// - Validate/Try/Switch/Map/OrElse/Tee: lift solo operations over channels
// - Turnout: compose stages with configurable parallelism
// - Finally: fold Result[In, E] to Out on completion
// - Match: fold every result with a compiled matcher
// - Evaluate: one result through an engine and a matcher
//
// With more than one line the output order is not the input order.
package lite
