// Package validation provides Validation[T, E], a computation that either
// produced a value (Valid) or collected one or more errors (Invalid).
//
// Unlike result.Bind, combining validations never short-circuits: every
// input is evaluated and all of their errors are kept, in order.
//
// Highlights:
// - Valid/Invalid: construct a Validation
// - Validate: run independent checks against one value
// - Combine: turn a slice of validations into a validation of a slice
// - Lift/Lift2/Lift3/Lift4: apply a function once every argument is valid
// - ToResult/FromResult: convert from and to result.Result
// - FromError/Join: convert from and to joined Go errors
package validation
