package backend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Rorical/RoriCalc/internal/calculus"
)

func number(t *testing.T, v any) float64 {
	t.Helper()
	f, err := ToNumber(v)
	require.NoError(t, err)
	return f
}

func TestEvaluateArithmetic(t *testing.T) {
	b := New(nil)

	out, err := b.Evaluate("2+3*4", Scope{})
	require.NoError(t, err)
	assert.Equal(t, 14.0, number(t, out))

	out, err = b.Evaluate("2^10", Scope{})
	require.NoError(t, err)
	assert.Equal(t, 1024.0, number(t, out))

	out, err = b.Evaluate("log10(1000)+log(e)", Scope{})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, number(t, out), 1e-12)
}

func TestEvaluateLargeIntegers(t *testing.T) {
	b := New(nil)

	out, err := b.Evaluate("10000000000*10000000000", Scope{})
	require.NoError(t, err)
	assert.Equal(t, 1e20, out)

	out, err = b.Evaluate("99999999999999999999+1", Scope{})
	require.NoError(t, err)
	assert.Equal(t, 1e20, out)

	out, err = b.Evaluate("9223372036854775807+1", Scope{})
	require.NoError(t, err)
	assert.Equal(t, 9223372036854775808.0, out)

	out, err = b.Evaluate("7/2", Scope{})
	require.NoError(t, err)
	assert.Equal(t, 3.5, out)

	f, err := b.Compile("X*10000000000*10000000000")
	require.NoError(t, err)
	y, err := f(3)
	require.NoError(t, err)
	assert.Equal(t, 3e20, y)
}

func TestEvaluateAngleUnits(t *testing.T) {
	b := New(nil)

	out, err := b.Evaluate("sin(pi/2)", Scope{})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, number(t, out), 1e-12)

	deg := Scope{AngleUnit: math.Pi / 180}
	out, err = b.Evaluate("sin(90)", deg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, number(t, out), 1e-12)

	out, err = b.Evaluate("asin(1)", deg)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, number(t, out), 1e-9)

	gra := Scope{AngleUnit: math.Pi / 200}
	out, err = b.Evaluate("cos(200)", gra)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, number(t, out), 1e-12)
}

func TestEvaluateRegistersAndAnswer(t *testing.T) {
	b := New(nil)
	scope := Scope{
		Registers: map[string]any{"A": 3.0, "M": 0.5},
		Ans:       4.0,
	}

	out, err := b.Evaluate("A*2+M", scope)
	require.NoError(t, err)
	assert.Equal(t, 6.5, number(t, out))

	out, err = b.Evaluate("Ans+1", scope)
	require.NoError(t, err)
	assert.Equal(t, 5.0, number(t, out))

	out, err = b.Evaluate("Ans", Scope{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, number(t, out))
}

func TestEvaluateCombinatorics(t *testing.T) {
	b := New(nil)

	out, err := b.Evaluate("permutations(5, 2)", Scope{})
	require.NoError(t, err)
	assert.Equal(t, 20.0, out)

	out, err = b.Evaluate("combinations(5, 2)", Scope{})
	require.NoError(t, err)
	assert.Equal(t, 10.0, out)

	for _, bad := range []string{"permutations(2, 5)", "combinations(-1, 0)", "combinations(2.5, 1)"} {
		_, err = b.Evaluate(bad, Scope{})
		assert.ErrorIs(t, err, ErrEvaluation, bad)
	}
}

func TestEvaluateErrors(t *testing.T) {
	b := New(nil)

	_, err := b.Evaluate("1+", Scope{})
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = b.Evaluate("(2", Scope{})
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = b.Evaluate("Q+1", Scope{})
	assert.ErrorIs(t, err, ErrEvaluation)

	_, err = b.Evaluate("sin(1, 2)", Scope{})
	assert.ErrorIs(t, err, ErrEvaluation)

	_, err = b.Evaluate(`integrate("X", 0, 1)`, Scope{})
	assert.ErrorIs(t, err, ErrEvaluation)
}

func TestEvaluateMatrices(t *testing.T) {
	b := New(nil)
	scope := Scope{Registers: map[string]any{
		"MatA": mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
		"VctA": mat.NewVecDense(3, []float64{1, 2, 3}),
		"VctB": mat.NewVecDense(3, []float64{4, 5, 6}),
	}}

	out, err := b.Evaluate("det(MatA)", scope)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, number(t, out), 1e-12)

	out, err = b.Evaluate("det([[1, 2], [3, 4]])", scope)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, number(t, out), 1e-12)

	out, err = b.Evaluate("trn(MatA)", scope)
	require.NoError(t, err)
	m, ok := out.(*mat.Dense)
	require.True(t, ok)
	assert.Equal(t, 3.0, m.At(0, 1))

	out, err = b.Evaluate("inv(MatA)", scope)
	require.NoError(t, err)
	m, ok = out.(*mat.Dense)
	require.True(t, ok)
	assert.InDelta(t, -2.0, m.At(0, 0), 1e-12)
	assert.InDelta(t, 1.5, m.At(1, 0), 1e-12)

	out, err = b.Evaluate("dot(VctA, VctB)", scope)
	require.NoError(t, err)
	assert.Equal(t, 32.0, number(t, out))

	_, err = b.Evaluate("det(VctA)", scope)
	assert.ErrorIs(t, err, ErrEvaluation)
}

func TestEvaluateMatrixArithmetic(t *testing.T) {
	b := New(nil)
	scope := Scope{Registers: map[string]any{
		"MatA": mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
		"MatB": mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
		"MatC": mat.NewDense(1, 3, []float64{1, 2, 3}),
		"VctA": mat.NewVecDense(2, []float64{1, 2}),
		"VctB": mat.NewVecDense(2, []float64{3, 4}),
	}}

	tests := []struct {
		expr string
		want []float64
	}{
		{"MatA*MatB", []float64{1, 2, 3, 4}},
		{"MatA+MatB", []float64{2, 2, 3, 5}},
		{"MatA-MatB", []float64{0, 2, 3, 3}},
		{"2*MatA", []float64{2, 4, 6, 8}},
		{"MatA*2", []float64{2, 4, 6, 8}},
		{"MatA/2", []float64{0.5, 1, 1.5, 2}},
		{"1+MatB", []float64{2, 1, 1, 2}},
		{"10-MatA", []float64{9, 8, 7, 6}},
		{"MatA*MatA+MatB", []float64{8, 10, 15, 23}},
		{"inv(MatA)*MatA", []float64{1, 0, 0, 1}},
		{"[[1, 1], [1, 1]]+MatA", []float64{2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			out, err := b.Evaluate(tt.expr, scope)
			require.NoError(t, err)
			m, ok := out.(*mat.Dense)
			require.True(t, ok, "got %T", out)
			assert.InDeltaSlice(t, tt.want, m.RawMatrix().Data, 1e-12)
		})
	}

	out, err := b.Evaluate("MatA*VctA", scope)
	require.NoError(t, err)
	v, ok := out.(*mat.VecDense)
	require.True(t, ok)
	assert.Equal(t, []float64{5, 11}, []float64{v.AtVec(0), v.AtVec(1)})

	out, err = b.Evaluate("VctA+VctB", scope)
	require.NoError(t, err)
	v, ok = out.(*mat.VecDense)
	require.True(t, ok)
	assert.Equal(t, []float64{4, 6}, []float64{v.AtVec(0), v.AtVec(1)})

	out, err = b.Evaluate("VctA*VctB", scope)
	require.NoError(t, err)
	assert.Equal(t, 11.0, out)

	out, err = b.Evaluate("3*VctA", scope)
	require.NoError(t, err)
	v, ok = out.(*mat.VecDense)
	require.True(t, ok)
	assert.Equal(t, []float64{3, 6}, []float64{v.AtVec(0), v.AtVec(1)})

	out, err = b.Evaluate("det(MatA)*2+1", scope)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, number(t, out), 1e-12)

	for _, bad := range []string{"MatA+MatC", "MatC*MatA", "MatA/MatB", "2/MatA", "VctA+MatA"} {
		_, err := b.Evaluate(bad, scope)
		assert.ErrorIs(t, err, ErrEvaluation, bad)
	}
}

func TestEvaluateCalculus(t *testing.T) {
	b := New(nil)
	h := calculus.NewHelpers(b)
	scope := Scope{
		AngleUnit: math.Pi / 180,
		Integrate: h.Integrate,
		Deriv:     h.Deriv,
	}

	out, err := b.Evaluate(`integrate("sin(X)", 0, pi)`, scope)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, number(t, out), 1e-6)

	out, err = b.Evaluate(`deriv("X^2", 3)`, scope)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, number(t, out), 1e-6)

	_, err = b.Evaluate("integrate(1, 0, 1)", scope)
	assert.ErrorIs(t, err, ErrEvaluation)
}

func TestCompile(t *testing.T) {
	b := New(nil)

	f, err := b.Compile("X^2+pi")
	require.NoError(t, err)
	y, err := f(2)
	require.NoError(t, err)
	assert.InDelta(t, 4+math.Pi, y, 1e-12)

	_, err = b.Compile("X^")
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = b.Compile("A*X")
	assert.ErrorIs(t, err, ErrEvaluation)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(NewFunction("twice", "doubles x", func(args ...any) (any, error) {
		x, err := ToNumber(args[0])
		return 2 * x, err
	}))
	r.Register(Unary("neg", "negates x", func(x float64) float64 { return -x }))

	names := []string{}
	for _, fn := range r.List() {
		names = append(names, fn.Name())
	}
	assert.Equal(t, []string{"neg", "twice"}, names)

	out, err := r.Call("twice", 4)
	require.NoError(t, err)
	assert.Equal(t, 8.0, out)

	_, err = r.Call("missing")
	assert.Error(t, err)

	b := New(r)
	out, err = b.Evaluate("twice(neg(3))", Scope{})
	require.NoError(t, err)
	assert.Equal(t, -6.0, out)

	_, err = b.Evaluate("sin(1)", Scope{})
	assert.ErrorIs(t, err, ErrEvaluation)
}
