// Package option provides Option[T], a value that is either present (Some)
// or absent (None).
//
// None carries nothing. A fallback or an error is paired with it only when
// leaving the Option world through UnwrapOr, ToResult or MatchOption.
package option
