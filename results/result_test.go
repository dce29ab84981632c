package results

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test err")

type point struct {
	X, Y int
}

func TestOk(t *testing.T) {
	require := require.New(t)

	r := Ok[int, string](5)
	require.True(IsOk(r))
	require.False(IsErr(r))
	require.Equal(5, V(r))
	require.Equal(5, r.V())

	p := Ok[point, error](point{X: 1, Y: 2})
	require.Equal(point{X: 1, Y: 2}, V(p))

	var nilPtr *point
	np := Ok[*point, string](nilPtr)
	require.True(np.IsOk())
	require.Nil(V(np))
}

func TestErr(t *testing.T) {
	require := require.New(t)

	r := Err[int]("boom")
	require.True(IsErr(r))
	require.False(IsOk(r))
	require.Equal("boom", E(r))
	require.Equal("boom", r.E())

	er := Err[string](errTest)
	require.ErrorIs(E(er), errTest)

	// a failure carrying a nil error is still a failure
	ne := Err[int, error](nil)
	require.True(ne.IsErr())
	require.Nil(E(ne))
}

func TestZeroValueIsFailure(t *testing.T) {
	require := require.New(t)

	var r Result[int, error]
	require.True(r.IsErr())
	require.Nil(r.E())
}

func TestNew(t *testing.T) {
	require := require.New(t)

	r := New(1, nil)
	require.True(r.IsOk())
	require.Equal(1, r.V())

	r = New(2, errTest)
	require.True(r.IsErr())
	require.ErrorIs(r.E(), errTest)
	require.Equal(0, r.ValueOr(0))
}

func TestMisusePanics(t *testing.T) {
	require := require.New(t)

	require.PanicsWithError("tried to get value from an error result", func() {
		V(Err[int]("boom"))
	})

	require.PanicsWithError("tried to get error from an ok result", func() {
		E(Ok[int, string](1))
	})

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(ok)
		require.ErrorIs(err, ErrValueOfFailure)

		var unwrapErr *UnwrapError
		require.True(errors.As(err, &unwrapErr))
	}()
	Err[point](errTest).V()
}

func TestGet(t *testing.T) {
	require := require.New(t)

	v, e, ok := Ok[string, int]("x").Get()
	require.True(ok)
	require.Equal("x", v)
	require.Equal(0, e)

	v, e, ok = Err[string](7).Get()
	require.False(ok)
	require.Equal("", v)
	require.Equal(7, e)
}

func TestValueOr(t *testing.T) {
	require := require.New(t)

	require.Equal(3, Ok[int, string](3).ValueOr(9))
	require.Equal(9, Err[int]("nope").ValueOr(9))
}

func TestPredicatesIdempotent(t *testing.T) {
	require := require.New(t)

	ok := Ok[int, string](1)
	bad := Err[int]("x")

	for i := 0; i < 3; i++ {
		require.True(IsOk(ok))
		require.False(IsErr(ok))
		require.True(IsErr(bad))
		require.False(IsOk(bad))
	}

	// the result is untouched by inspection
	require.Equal(1, V(ok))
	require.Equal("x", E(bad))
}
