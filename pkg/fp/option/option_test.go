package option

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/fpkit/pkg/fp/result"
)

type user struct {
	name string
}

func TestOptionBasicOperations(t *testing.T) {
	t.Run("Some creates present option", func(t *testing.T) {
		o := Some(42)
		assert.True(t, o.IsSome())
		assert.False(t, o.IsNone())
		v, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("None creates empty option", func(t *testing.T) {
		o := None[int]()
		assert.False(t, IsSome(o))
		assert.True(t, o.IsNone())
		_, ok := o.Get()
		assert.False(t, ok)
	})

	t.Run("zero value is None", func(t *testing.T) {
		var o Option[string]
		assert.Equal(t, None[string](), o)
	})

	t.Run("Some(nil) differs from None", func(t *testing.T) {
		var p *user
		o := Some(p)
		assert.True(t, o.IsSome())
		assert.NotEqual(t, None[*user](), o)
	})

	t.Run("UnwrapOr", func(t *testing.T) {
		assert.Equal(t, 100, UnwrapOr(None[int](), 100))
		assert.Equal(t, 42, UnwrapOr(Some(42), 100))
	})

	t.Run("Filter", func(t *testing.T) {
		positive := func(x int) bool { return x > 0 }
		assert.Equal(t, Some(42), Some(42).Filter(positive))
		assert.Equal(t, None[int](), Some(-1).Filter(positive))
		assert.Equal(t, None[int](), None[int]().Filter(positive))
	})
}

func TestMapAndBind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("3"), Map(Some(3), strconv.Itoa))

	called := false
	out := Map(None[int](), func(x int) string {
		called = true
		return strconv.Itoa(x)
	})
	assert.False(t, called)
	assert.Equal(t, None[string](), out)

	half := func(x int) Option[int] {
		if x%2 != 0 {
			return None[int]()
		}
		return Some(x / 2)
	}
	assert.Equal(t, Some(2), Bind(Some(4), half))
	assert.Equal(t, None[int](), Bind(Some(3), half))
	assert.Equal(t, None[int](), Bind(None[int](), half))
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	m := map[string]*user{
		"ann":  {name: "Ann"},
		"null": nil,
	}

	ann := FromMap(m, "ann")
	v, ok := ann.Get()
	assert.True(t, ok)
	assert.Equal(t, "Ann", v.name)

	null := FromMap(m, "null")
	assert.True(t, null.IsSome(), "present key mapped to nil is Some")

	assert.True(t, FromMap(m, "bob").IsNone())
	assert.True(t, FromMap(map[string]int{"zero": 0}, "zero").IsSome())
	assert.True(t, FromMap[string, int](nil, "any").IsNone())
}

func TestFromIndex(t *testing.T) {
	t.Parallel()

	s := []string{"a", "", "c"}
	assert.Equal(t, Some(""), FromIndex(s, 1))
	assert.Equal(t, None[string](), FromIndex(s, 3))
	assert.Equal(t, None[string](), FromIndex(s, -1))
}

func TestFromNullable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(0), FromNullable(0))
	assert.Equal(t, Some(""), FromNullable(""))
	assert.Equal(t, Some(false), FromNullable(false))

	var p *user
	assert.Equal(t, None[*user](), FromNullable(p))

	var err error
	assert.Equal(t, None[error](), FromNullable(err))

	var m map[string]int
	assert.True(t, FromNullable(m).IsNone())

	u := &user{name: "x"}
	assert.Equal(t, Some(u), FromNullable(u))
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	n := 7
	assert.Equal(t, Some(7), FromPtr(&n))
	assert.Equal(t, None[int](), FromPtr[int](nil))
}

func TestToResult(t *testing.T) {
	t.Parallel()

	notFound := errors.New("not found")
	assert.Equal(t, result.Ok[int, error](1), ToResult(Some(1), notFound))
	assert.Equal(t, result.Err[int](notFound), ToResult(None[int](), notFound))
}

func TestMatchOption(t *testing.T) {
	t.Parallel()

	someCalls, noneCalls := 0, 0
	onSome := func(v int) string { someCalls++; return "some:" + strconv.Itoa(v) }
	onNone := func() string { noneCalls++; return "none" }

	assert.Equal(t, "some:1", MatchOption(Some(1), onSome, onNone))
	assert.Equal(t, "none", MatchOption(None[int](), onSome, onNone))
	assert.Equal(t, 1, someCalls)
	assert.Equal(t, 1, noneCalls)
}
