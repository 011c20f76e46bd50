package validation

import (
	"errors"

	"github.com/ib-77/fpkit/pkg/fp"
)

// FromError is Valid(value) for a nil err. Otherwise it is Invalid with the
// errors of a top-level errors.Join split apart, or with err alone.
func FromError[T any](value T, err error) Validation[T, error] {
	if fp.IsNil(err) {
		return Valid[T, error](value)
	}
	return Invalid[T](fp.GetErrors(err)...)
}

// Join folds the errors of v into a single error; nil when v is valid.
func Join[T any](v Validation[T, error]) error {
	if !v.invalid {
		return nil
	}
	return errors.Join(v.errs...)
}
