package calculus

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pure(f func(float64) float64) Func {
	return func(x float64) (float64, error) { return f(x), nil }
}

type mapCompiler map[string]Func

func (m mapCompiler) Compile(body string) (Func, error) {
	f, ok := m[body]
	if !ok {
		return nil, errors.New("unknown body")
	}
	return f, nil
}

func TestSimpson(t *testing.T) {
	got, err := Simpson(pure(math.Sin), 0, math.Pi)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-4)

	// Exact for cubics.
	got, err = Simpson(pure(func(x float64) float64 { return x * x * x }), 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-12)

	got, err = Simpson(pure(func(float64) float64 { return 1 }), 3, 1)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, got, 1e-12)
}

func TestSimpsonSamplesEveryPoint(t *testing.T) {
	calls := 0
	_, err := Simpson(func(x float64) (float64, error) {
		calls++
		return x, nil
	}, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, Intervals+1, calls)
}

func TestSimpsonPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := Simpson(func(x float64) (float64, error) {
		if x > 0.5 {
			return 0, boom
		}
		return x, nil
	}, 0, 1)
	assert.ErrorIs(t, err, boom)
}

func TestCentralDifference(t *testing.T) {
	got, err := CentralDifference(pure(func(x float64) float64 { return x * x }), 3)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, got, 1e-3)

	got, err = CentralDifference(pure(math.Exp), 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-6)
}

func TestHelpers(t *testing.T) {
	h := NewHelpers(mapCompiler{
		"sin(X)": pure(math.Sin),
		"X^2":    pure(func(x float64) float64 { return x * x }),
	})

	got, err := h.Integrate("sin(X)", 0, math.Pi)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-4)

	got, err = h.Deriv("X^2", 3)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, got, 1e-3)

	_, err = h.Deriv("nope", 1)
	assert.Error(t, err)
}
