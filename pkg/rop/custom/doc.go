// Package custom runs pipelines with explicit cancellation strategies. Where
// package lite simply stops on cancel, custom hands unprocessed, processed and
// remaining results to core.CancellationHandlers.
//
// Key constructs:
// - Run/RunSingle/Turnout: orchestrate engines with handlers and success callbacks
// - CancelHandlers: fail everything left over with the Cancelled kind
// - CancelRemaining*: the individual handlers, gated by core.WithProcessOptions
// - Collect: read a pipeline to the end regardless of cancellation
package custom
