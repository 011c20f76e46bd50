// Package result provides Result[T, E], a value that is either a success
// (Ok) carrying T or a failure (Err) carrying E.
//
// Failure is data: nothing here panics or recovers. Propagation is explicit
// through short-circuiting combinators:
// - Ok/Err: construct a Result
// - Map/Bind/MapError: transform one branch, pass the other through
// - UnwrapOr/Fold/MatchResult: leave the Result world
// - Try/ToPair: convert from and to Go's (T, error) convention
// - Tap: side effect on success
// - Chain: fluent same-type composition
package result
