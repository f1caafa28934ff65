package core

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriCalc/internal/memory"
)

func TestPipelineEvaluate(t *testing.T) {
	p := NewPipeline(nil)
	bank := memory.NewBank()
	require.NoError(t, bank.SetScalar("A", 2))
	bank.SetLastAnswer("10")

	tests := []struct {
		expr  string
		angle AngleMode
		want  string
	}{
		{"1+2", Degrees, "3"},
		{"2.0000000001", Degrees, "2"},
		{"1/3", Degrees, "0.3333333333"},
		{"A^10", Degrees, "1024"},
		{"Ans/4", Degrees, "2.5"},
		{"5P2", Degrees, "20"},
		{"AC2", Degrees, "1"},
		{"cos(180)", Degrees, "-1"},
		{"cos(pi)", Radians, "-1"},
		{"cbrt(27)", Radians, "3"},
		{"log10(1000)", Radians, "3"},
		{"2*10^3", Radians, "2000"},
		{"1e-7*1", Radians, "1e-7"},
		{"10000000000*10000000000", Degrees, "100000000000000000000"},
		{"99999999999999999999", Degrees, "100000000000000000000"},
		{`deriv("X^2",3)`, Radians, "6"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := p.Evaluate(tt.expr, bank, tt.angle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "10", bank.LastAnswer())
}

func TestPipelineErrors(t *testing.T) {
	p := NewPipeline(nil)
	bank := memory.NewBank()

	syntax := []string{"", "(2", "2+*", "5P"}
	for _, in := range syntax {
		_, err := p.Evaluate(in, bank, Degrees)
		var se *SyntaxError
		assert.True(t, errors.As(err, &se), "%q: %v", in, err)
	}

	evaluation := []string{"Q+1", "sqrt(-1)", "1/0", "log(0)", "det(A)", "2C5"}
	for _, in := range evaluation {
		_, err := p.Evaluate(in, bank, Degrees)
		var ee *EvaluationError
		assert.True(t, errors.As(err, &ee), "%q: %v", in, err)
	}
}

func TestPipelineScope(t *testing.T) {
	p := NewPipeline(nil)
	bank := memory.NewBank()
	bank.SetLastAnswer("[[1, 2]]")

	scope := p.Scope(bank, Gradians)
	assert.Equal(t, 0.0, scope.Ans)
	assert.Len(t, scope.Registers, len(memory.Scalars))
	assert.NotNil(t, scope.Integrate)
	assert.NotNil(t, scope.Deriv)
	assert.Equal(t, math.Pi/200, scope.AngleUnit)
}

func TestParseAngleMode(t *testing.T) {
	for _, a := range []AngleMode{Degrees, Radians, Gradians} {
		got, err := ParseAngleMode(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	got, err := ParseAngleMode("rad")
	require.NoError(t, err)
	assert.Equal(t, Radians, got)

	_, err = ParseAngleMode("turns")
	assert.Error(t, err)
}

func TestHistoryBounds(t *testing.T) {
	h := NewHistory()
	_, ok := h.Previous()
	assert.False(t, ok)
	_, ok = h.Next()
	assert.False(t, ok)

	for i := 0; i < MaxHistory+5; i++ {
		h.Record(Entry{Internal: string(rune('a' + i%26))})
	}
	assert.Equal(t, MaxHistory, h.Len())
	e, ok := h.Previous()
	require.True(t, ok)
	assert.Equal(t, h.Entries()[MaxHistory-1], e)
}

func TestPipelineFunction(t *testing.T) {
	p := NewPipeline(nil)
	bank := memory.NewBank()
	require.NoError(t, bank.SetScalar("A", 3))

	f, err := p.Function("A*X^2", bank, Degrees)
	require.NoError(t, err)
	y, err := f(2)
	require.NoError(t, err)
	assert.Equal(t, 12.0, y)

	g, err := p.Function("sin(X)", bank, Degrees)
	require.NoError(t, err)
	y, err = g(90)
	require.NoError(t, err)
	assert.InDelta(t, 1, y, 1e-12)

	_, err = p.Function("  ", bank, Degrees)
	var syn *SyntaxError
	assert.True(t, errors.As(err, &syn))

	h, err := p.Function("X+", bank, Degrees)
	require.NoError(t, err)
	_, err = h(1)
	assert.True(t, errors.As(err, &syn))

	_, err = bank.SaveMatrix("A", [][]float64{{1}})
	require.NoError(t, err)
	k, err := p.Function("MatA", bank, Degrees)
	require.NoError(t, err)
	_, err = k(1)
	var ev *EvaluationError
	assert.True(t, errors.As(err, &ev))
}
