package result

// Result holds either a value (Ok) or an error (Err), never both.
// The zero value is Err carrying the zero E; build instances with Ok or Err.
type Result[T, E any] struct {
	value T
	err   E
	isOk  bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		isOk:  true,
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:  err,
		isOk: false,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Get returns the success value and true, or the zero T and false.
func (r Result[T, E]) Get() (T, bool) {
	if r.isOk {
		return r.value, true
	}
	var zero T
	return zero, false
}

// Error returns the failure payload and true, or the zero E and false.
func (r Result[T, E]) Error() (E, bool) {
	if !r.isOk {
		return r.err, true
	}
	var zero E
	return zero, false
}

// UnwrapOr returns the success value or defaultValue.
func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.isOk {
		return r.value
	}
	return defaultValue
}

func IsOk[T, E any](r Result[T, E]) bool {
	return r.isOk
}

// Map transforms the success value. An Err is returned as is and fn is not called.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.isOk {
		return Ok[U, E](fn(r.value))
	}
	return Err[U](r.err)
}

// Bind chains a Result-returning step. An Err short-circuits and fn is not called.
func Bind[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.isOk {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// MapError transforms the failure payload and leaves Ok untouched.
func MapError[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.isOk {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

func UnwrapOr[T, E any](r Result[T, E], defaultValue T) T {
	return r.UnwrapOr(defaultValue)
}

// Fold calls exactly one of onOk or onErr and returns what it returns.
func Fold[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.isOk {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// MatchResult is Fold under the name used by option.MatchOption and
// validation.MatchValidation.
func MatchResult[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	return Fold(r, onOk, onErr)
}

// Tap runs onOk with the success value and returns r unchanged.
func Tap[T, E any](r Result[T, E], onOk func(T)) Result[T, E] {
	if r.isOk {
		onOk(r.value)
	}
	return r
}

// Try lifts a (value, error) pair, like repo calls return, into a Result.
func Try[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// ToPair is the inverse of Try.
func ToPair[T any](r Result[T, error]) (T, error) {
	if r.isOk {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}
