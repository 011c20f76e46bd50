package validation

import (
	"github.com/ib-77/fpkit/pkg/fp/result"
)

// Validation is Valid(value) or Invalid(errors). The zero value is Valid
// holding the zero T; build instances with Valid or Invalid.
type Validation[T, E any] struct {
	value   T
	errs    []E
	invalid bool
}

func Valid[T, E any](value T) Validation[T, E] {
	return Validation[T, E]{value: value}
}

// Invalid copies errs into a fresh slice, keeping order and duplicates.
// It panics when errs is empty: an Invalid must carry at least one error.
func Invalid[T, E any](errs ...E) Validation[T, E] {
	if len(errs) == 0 {
		panic("validation: Invalid requires at least one error")
	}
	own := make([]E, len(errs))
	copy(own, errs)
	return Validation[T, E]{errs: own, invalid: true}
}

func (v Validation[T, E]) IsValid() bool {
	return !v.invalid
}

func (v Validation[T, E]) IsInvalid() bool {
	return v.invalid
}

// Get returns the value and true, or the zero T and false.
func (v Validation[T, E]) Get() (T, bool) {
	if v.invalid {
		var zero T
		return zero, false
	}
	return v.value, true
}

// Errors returns a copy of the collected errors; empty, never nil, when valid.
func (v Validation[T, E]) Errors() []E {
	out := make([]E, len(v.errs))
	copy(out, v.errs)
	return out
}

func IsValid[T, E any](v Validation[T, E]) bool {
	return !v.invalid
}

func Errors[T, E any](v Validation[T, E]) []E {
	return v.Errors()
}

// Map applies fn to a valid value. Invalid passes through and fn is not called.
func Map[T, U, E any](v Validation[T, E], fn func(T) U) Validation[U, E] {
	if v.invalid {
		return Validation[U, E]{errs: v.errs, invalid: true}
	}
	return Valid[U, E](fn(v.value))
}

// ToResult maps Valid(x) to Ok(x) and Invalid(errs) to Err(errs).
func ToResult[T, E any](v Validation[T, E]) result.Result[T, []E] {
	if v.invalid {
		return result.Err[T](v.Errors())
	}
	return result.Ok[T, []E](v.value)
}

func FromResult[T, E any](r result.Result[T, E]) Validation[T, E] {
	return result.Fold(r,
		func(value T) Validation[T, E] { return Valid[T, E](value) },
		func(err E) Validation[T, E] { return Invalid[T](err) },
	)
}

// MatchValidation calls exactly one of onValid or onInvalid; onInvalid
// receives every collected error.
func MatchValidation[T, E, R any](v Validation[T, E], onValid func(T) R, onInvalid func([]E) R) R {
	if v.invalid {
		return onInvalid(v.Errors())
	}
	return onValid(v.value)
}
