// Package core contains pipeline plumbing utilities: channel helpers, worker
// configuration via context, and the locomotive that drives stages. Results
// are values, so a stage works on its own copy and no result is shared
// between goroutines. It does not define business logic; package lite builds
// the stages on top of it.
package core
