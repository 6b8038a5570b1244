// Package tiny provides a minimal fluent Chain[T, E] for synchronous
// composition of results that keep their value type.
//
// It parallels the chain package but keeps API surface very small:
// - Start/FromValue: create a Chain
// - Then/Else: compose on the success or the failure side
// - RepeatUntil/While: loop a step over the current value
// - Or/And: pick among already evaluated chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
package tiny
