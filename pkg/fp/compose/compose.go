package compose

func Identity[T any](v T) T {
	return v
}

// Pipe applies fns to v from left to right. Without fns it returns v.
func Pipe[T any](v T, fns ...func(T) T) T {
	for _, fn := range fns {
		v = fn(v)
	}
	return v
}

func Pipe2[A, B, C any](v A, f1 func(A) B, f2 func(B) C) C {
	return f2(f1(v))
}

func Pipe3[A, B, C, D any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D) D {
	return f3(f2(f1(v)))
}

func Pipe4[A, B, C, D, E any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) E {
	return f4(f3(f2(f1(v))))
}

func Pipe5[A, B, C, D, E, F any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F) F {
	return f5(f4(f3(f2(f1(v)))))
}

// Compose returns a function applying fns from right to left.
// Without fns it is the identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	own := make([]func(T) T, len(fns))
	copy(own, fns)

	return func(v T) T {
		for i := len(own) - 1; i >= 0; i-- {
			v = own[i](v)
		}
		return v
	}
}

// Compose2 returns x => f(g(x)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(v A) C {
		return f(g(v))
	}
}

// Compose3 returns x => f(g(h(x))).
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(v A) D {
		return f(g(h(v)))
	}
}

// Tap calls sideEffect once with v and returns v.
func Tap[T any](v T, sideEffect func(T)) T {
	sideEffect(v)
	return v
}

// Partial binds leading arguments of fn. The returned function appends its
// own arguments after them; argument count is not checked.
func Partial[T, R any](fn func(...T) R, bound ...T) func(...T) R {
	own := make([]T, len(bound))
	copy(own, bound)

	return func(rest ...T) R {
		args := make([]T, 0, len(own)+len(rest))
		args = append(args, own...)
		args = append(args, rest...)
		return fn(args...)
	}
}

// Partial1 binds the first argument of a two-argument function.
func Partial1[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return fn(a, b)
	}
}

// Partial2 binds the first two arguments of a three-argument function.
func Partial2[A, B, C, R any](fn func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return fn(a, b, c)
	}
}
