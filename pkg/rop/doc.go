// Package rop provides Result, a two-variant container holding either a
// success value or an error, and the operations to chain and match it.
//
// Key operations:
// - Success/Fail/FailWith/FromTuple: construct a Result
// - HasValue/Value/Err/ValueOr: inspect it; Value and Err panic on the wrong variant
// - TakeValue/TakeValueOr/TakeErr: move the payload out, keeping the tag
// - AndThen/OrElse: short-circuit chaining on the success or error side
// - FlatMap/Map/MapErr/Recover: chaining that changes a type parameter
// - Match with OnValue/OnErr/OnKind/OnCategory/OnEmpty: ordered, exhaustive dispatch
//
// When E is erased.Error, OnKind and OnCategory select on the stored kind and
// OnErr is the catch-all. Match requires the success case plus either a
// catch-all or, through MatchOver, coverage of a declared kind.Set and an
// OnEmpty handler for a failure carrying no error value.
package rop
