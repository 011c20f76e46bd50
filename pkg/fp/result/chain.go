package result

// Chain wraps a Result to compose same-typed steps fluently.
type Chain[T, E any] struct {
	res Result[T, E]
}

func Start[T, E any](r Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func From[T, E any](v T) Chain[T, E] {
	return Start(Ok[T, E](v))
}

func (c Chain[T, E]) Result() Result[T, E] {
	return c.res
}

// Then binds the next Result-returning step; an Err skips it.
func (c Chain[T, E]) Then(onOk func(T) Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: Bind(c.res, onOk)}
}

// Map replaces an Ok value with onOk's output.
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	return Chain[T, E]{res: Map(c.res, onOk)}
}

func (c Chain[T, E]) MapError(onErr func(E) E) Chain[T, E] {
	return Chain[T, E]{res: MapError(c.res, onErr)}
}

// Ensure triggers side effects for success/failure without changing the result.
// Nil callbacks are skipped.
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	if c.res.isOk {
		if onOk != nil {
			onOk(c.res.value)
		}
		return c
	}

	if onErr != nil {
		onErr(c.res.err)
	}
	return c
}

// Or returns the first successful chain among c and alternatives.
// When none succeeded the first failure wins.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.isOk {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.isOk {
			return alt
		}
	}
	return c
}

// And returns the first failure among c and required, or the last chain
// when all succeeded.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if !ch.res.isOk {
			return ch
		}
		last = ch
	}
	return last
}

// RepeatWhile applies onOk once, then again for as long as the result stays
// Ok and cond holds for the new value.
func (c Chain[T, E]) RepeatWhile(onOk func(T) Result[T, E], cond func(T) bool) Chain[T, E] {
	if !c.res.isOk {
		return c
	}

	for {
		c = c.Then(onOk)

		if !c.res.isOk || !cond(c.res.value) {
			return c
		}
	}
}

// Fold collapses the chain to a final value.
func (c Chain[T, E]) Fold(onOk func(T) T, onErr func(E) T) T {
	return Fold(c.res, onOk, onErr)
}
