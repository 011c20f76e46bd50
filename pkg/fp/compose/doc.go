// Package compose provides generic function combinators.
//
// Go has no variadic heterogeneous generics, so each combinator comes in a
// variadic form over a single type and in fixed-arity forms where each step
// may change the type (Pipe2..Pipe5, Compose2, Compose3, Partial1, Partial2).
package compose
