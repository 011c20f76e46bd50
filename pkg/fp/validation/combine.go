package validation

import (
	"github.com/ib-77/fpkit/pkg/fp/option"
)

// Combine evaluates every element in order. When any of them is invalid the
// result is Invalid with all errors concatenated in input order and the valid
// values are dropped. Otherwise it is Valid with all values in input order.
// An empty input is Valid([]). A zero-value element counts as Valid(zero T),
// so build every element with Valid or Invalid.
func Combine[T, E any](validations []Validation[T, E]) Validation[[]T, E] {
	values := make([]T, 0, len(validations))
	var errs []E

	for _, v := range validations {
		if v.invalid {
			errs = append(errs, v.errs...)
			continue
		}
		values = append(values, v.value)
	}

	if len(errs) > 0 {
		return Validation[[]T, E]{errs: errs, invalid: true}
	}
	return Valid[[]T, E](values)
}

// Lift combines validations and, when all are valid, calls fn with their
// values in order. fn must accept as many values as there are validations.
func Lift[T, R, E any](fn func([]T) R, validations []Validation[T, E]) Validation[R, E] {
	return Map(Combine(validations), fn)
}

// Lift2 is Lift for two arguments of different types.
func Lift2[A, B, R, E any](fn func(A, B) R, va Validation[A, E], vb Validation[B, E]) Validation[R, E] {
	errs := collect(va.errs, vb.errs)
	if len(errs) > 0 {
		return Validation[R, E]{errs: errs, invalid: true}
	}
	return Valid[R, E](fn(va.value, vb.value))
}

func Lift3[A, B, C, R, E any](fn func(A, B, C) R,
	va Validation[A, E], vb Validation[B, E], vc Validation[C, E]) Validation[R, E] {
	errs := collect(va.errs, vb.errs, vc.errs)
	if len(errs) > 0 {
		return Validation[R, E]{errs: errs, invalid: true}
	}
	return Valid[R, E](fn(va.value, vb.value, vc.value))
}

func Lift4[A, B, C, D, R, E any](fn func(A, B, C, D) R,
	va Validation[A, E], vb Validation[B, E], vc Validation[C, E], vd Validation[D, E]) Validation[R, E] {
	errs := collect(va.errs, vb.errs, vc.errs, vd.errs)
	if len(errs) > 0 {
		return Validation[R, E]{errs: errs, invalid: true}
	}
	return Valid[R, E](fn(va.value, vb.value, vc.value, vd.value))
}

// Validate runs every check against value and collects the errors they
// report. No check is skipped because an earlier one failed.
func Validate[T, E any](value T, checks ...func(T) option.Option[E]) Validation[T, E] {
	var errs []E
	for _, check := range checks {
		if e, failed := check(value).Get(); failed {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return Validation[T, E]{errs: errs, invalid: true}
	}
	return Valid[T, E](value)
}

func collect[E any](groups ...[]E) []E {
	var errs []E
	for _, g := range groups {
		errs = append(errs, g...)
	}
	return errs
}
