// Package pattern holds the dispatch machinery shared by erased.Match and
// rop.Match.
//
// A Pattern pairs an accept predicate with a handler and declares its
// Coverage. Compile checks a handler list against a Space before anything is
// dispatched, so a non-exhaustive list fails at the point it is built, not
// when an unlucky value finally reaches it.
//
// Dispatch is ordered: the first accepting pattern wins and later patterns
// are ignored, even when a later one is more specific.
//
// Go cannot check coverage of an open set of kinds at compile time, so the
// check runs when the matcher is compiled. MustCompile panics instead of
// returning the NotExhaustive error. All handlers share one result type R,
// which makes incompatible handler return types a compile error.
package pattern
