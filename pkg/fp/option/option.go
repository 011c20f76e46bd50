package option

import (
	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/result"
)

// Option is Some(value) or None. The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or the zero T and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// Filter turns Some into None when predicate rejects the value.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

func IsSome[T any](o Option[T]) bool {
	return o.present
}

// Map applies fn to a present value. None stays None and fn is not called.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// Bind chains an Option-returning step.
func Bind[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

func UnwrapOr[T any](o Option[T], defaultValue T) T {
	return o.UnwrapOr(defaultValue)
}

// FromMap is Some(m[key]) when key is present in m, whatever the stored value.
func FromMap[K comparable, V any](m map[K]V, key K) Option[V] {
	if v, ok := m[key]; ok {
		return Some(v)
	}
	return None[V]()
}

// FromIndex is Some(s[i]) when i is a valid index of s.
func FromIndex[T any](s []T, i int) Option[T] {
	if i < 0 || i >= len(s) {
		return None[T]()
	}
	return Some(s[i])
}

// FromNullable is None only for nil values (see fp.IsNil). Zero numbers,
// empty strings and false are Some.
func FromNullable[T any](value T) Option[T] {
	if fp.IsNil(value) {
		return None[T]()
	}
	return Some(value)
}

func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// ToResult maps Some(v) to Ok(v) and None to Err(errIfNone).
func ToResult[T, E any](o Option[T], errIfNone E) result.Result[T, E] {
	if o.present {
		return result.Ok[T, E](o.value)
	}
	return result.Err[T](errIfNone)
}

// MatchOption calls exactly one of onSome or onNone.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}
