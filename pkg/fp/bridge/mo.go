package bridge

import (
	"github.com/samber/mo"

	"github.com/ib-77/fpkit/pkg/fp/option"
	"github.com/ib-77/fpkit/pkg/fp/result"
	"github.com/ib-77/fpkit/pkg/fp/validation"
)

func OptionToMo[T any](o option.Option[T]) mo.Option[T] {
	if v, ok := o.Get(); ok {
		return mo.Some(v)
	}
	return mo.None[T]()
}

func OptionFromMo[T any](o mo.Option[T]) option.Option[T] {
	if v, ok := o.Get(); ok {
		return option.Some(v)
	}
	return option.None[T]()
}

// ResultToMo converts an error-typed Result. mo.Result has no typed error
// channel, so other error types go through result.MapError first.
func ResultToMo[T any](r result.Result[T, error]) mo.Result[T] {
	return result.Fold(r, mo.Ok[T], mo.Err[T])
}

func ResultFromMo[T any](r mo.Result[T]) result.Result[T, error] {
	v, err := r.Get()
	return result.Try(v, err)
}

// ValidationToMo joins all collected errors into the mo.Result error.
func ValidationToMo[T any](v validation.Validation[T, error]) mo.Result[T] {
	if value, ok := v.Get(); ok {
		return mo.Ok(value)
	}
	return mo.Err[T](validation.Join(v))
}
