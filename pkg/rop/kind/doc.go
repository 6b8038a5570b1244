// Package kind declares the concrete error kinds used with erased errors and
// the category each kind belongs to.
//
// A kind is any Go type; its identity is its reflect.Type, so two kinds never
// match each other even when they share a category. The category relation is
// declared as data through the Categorized interface instead of being derived
// from a type hierarchy:
// - LogicErrorCategory: InvalidArgument, Length, OutOfRange, DivideByZero
// - RuntimeErrorCategory: Range, Overflow
//
// Set describes a closed group of kinds that a matcher can prove coverage
// over without a catch-all handler.
package kind
