package fp

import (
	"reflect"
)

// IsNil reports whether v is nil: untyped nil, or a nil pointer, map, slice,
// channel, func or interface held in an interface value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// GetErrors flattens one level of an errors.Join tree.
// A nil error yields an empty slice.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		joined := e.Unwrap()
		out := make([]error, len(joined))
		copy(out, joined)
		return out
	}

	return []error{err}
}
