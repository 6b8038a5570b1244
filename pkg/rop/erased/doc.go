// Package erased provides Error, a container for one error value of any kind
// with its concrete type erased, and the ordered matcher over it.
//
// Key operations:
// - New: wrap a kind value; nil gives an empty container
// - Is/Downcast: read-only query and copy-out by exact kind
// - Take: move the value out, leaving the container taken
// - On/OnCategory/OnEmpty/OnAny: handlers by exact kind, by category, for
//   an empty container, catch-all
// - Match/Cases: dispatch to the first accepting handler in declaration order
//
// Handler order is significant. An OnAny or OnCategory handler declared before
// an exact On handler absorbs the values that On was meant for:
//
//	erased.Match(e,
//		erased.OnAny(func(erased.Error) int { return 0 }),        // always wins
//		erased.On(func(kind.InvalidArgument) int { return 1 }),   // never reached
//	)
//
// The set of kinds is open, so Cases demands an OnAny handler. CasesOver
// accepts a kind.Set instead and checks every member is handled, plus the
// empty container through OnEmpty. Both checks
// run when the handler list is compiled and panic on failure.
package erased
