package backend

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// RegisterMathFunctions adds the radian-based math library, the
// combinatorics used by nPr / nCr, and the matrix functions.
func RegisterMathFunctions(r *Registry) {
	for _, u := range []struct {
		name, desc string
		fn         func(float64) float64
	}{
		{"sin", "sine (radians)", math.Sin},
		{"cos", "cosine (radians)", math.Cos},
		{"tan", "tangent (radians)", math.Tan},
		{"asin", "inverse sine (radians)", math.Asin},
		{"acos", "inverse cosine (radians)", math.Acos},
		{"atan", "inverse tangent (radians)", math.Atan},
		{"exp", "e raised to x", math.Exp},
		{"log", "natural logarithm", math.Log},
		{"log10", "base-10 logarithm", math.Log10},
		{"sqrt", "square root", math.Sqrt},
		{"cbrt", "cube root", math.Cbrt},
	} {
		r.Register(Unary(u.name, u.desc, u.fn))
	}

	r.Register(NewFunction("permutations", "nPr: ordered selections of r from n", func(args ...any) (any, error) {
		n, k, err := counts("permutations", args)
		if err != nil {
			return nil, err
		}
		return float64(combin.NumPermutations(n, k)), nil
	}))
	r.Register(NewFunction("combinations", "nCr: unordered selections of r from n", func(args ...any) (any, error) {
		n, k, err := counts("combinations", args)
		if err != nil {
			return nil, err
		}
		return float64(combin.Binomial(n, k)), nil
	}))

	r.Register(NewFunction("det", "determinant of a square matrix", func(args ...any) (any, error) {
		m, err := oneMatrix("det", args)
		if err != nil {
			return nil, err
		}
		if r, c := m.Dims(); r != c {
			return nil, fmt.Errorf("det: %dx%d matrix is not square", r, c)
		}
		return mat.Det(m), nil
	}))
	r.Register(NewFunction("inv", "inverse of a square matrix", func(args ...any) (any, error) {
		m, err := oneMatrix("inv", args)
		if err != nil {
			return nil, err
		}
		var out mat.Dense
		if err := out.Inverse(m); err != nil {
			return nil, fmt.Errorf("inv: %w", err)
		}
		return &out, nil
	}))
	r.Register(NewFunction("trn", "transpose of a matrix", func(args ...any) (any, error) {
		m, err := oneMatrix("trn", args)
		if err != nil {
			return nil, err
		}
		return mat.DenseCopyOf(m.T()), nil
	}))
	r.Register(NewFunction("dot", "dot product of two vectors", func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("dot: want 2 arguments, got %d", len(args))
		}
		u, err := ToVector(args[0])
		if err != nil {
			return nil, fmt.Errorf("dot: %w", err)
		}
		v, err := ToVector(args[1])
		if err != nil {
			return nil, fmt.Errorf("dot: %w", err)
		}
		if u.Len() != v.Len() {
			return nil, fmt.Errorf("dot: lengths %d and %d differ", u.Len(), v.Len())
		}
		return mat.Dot(u, v), nil
	}))
}

// Unary adapts a float function to the calling convention of expressions.
func Unary(name, description string, fn func(float64) float64) Function {
	return NewFunction(name, description, func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: want 1 argument, got %d", name, len(args))
		}
		x, err := ToNumber(args[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return fn(x), nil
	})
}

// ToNumber converts any numeric value produced by the evaluator to float64.
func ToNumber(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	}
	return 0, fmt.Errorf("%T is not a number", v)
}

func counts(name string, args []any) (n, k int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%s: want 2 arguments, got %d", name, len(args))
	}
	var xs [2]int
	for i, a := range args {
		f, err := ToNumber(a)
		if err != nil {
			return 0, 0, fmt.Errorf("%s: %w", name, err)
		}
		if f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
			return 0, 0, fmt.Errorf("%s: %v is not a non-negative integer", name, f)
		}
		xs[i] = int(f)
	}
	if xs[1] > xs[0] {
		return 0, 0, fmt.Errorf("%s: r=%d exceeds n=%d", name, xs[1], xs[0])
	}
	return xs[0], xs[1], nil
}

func oneMatrix(name string, args []any) (*mat.Dense, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: want 1 argument, got %d", name, len(args))
	}
	m, err := ToMatrix(args[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// ToMatrix accepts a stored matrix or a nested array literal such as the
// text of a previous matrix answer.
func ToMatrix(v any) (*mat.Dense, error) {
	switch x := v.(type) {
	case *mat.Dense:
		return x, nil
	case [][]float64:
		if len(x) == 0 || len(x[0]) == 0 {
			return nil, fmt.Errorf("empty matrix")
		}
		data := make([]float64, 0, len(x)*len(x[0]))
		for _, row := range x {
			if len(row) != len(x[0]) {
				return nil, fmt.Errorf("ragged matrix")
			}
			data = append(data, row...)
		}
		return mat.NewDense(len(x), len(x[0]), data), nil
	case []any:
		rows := make([][]float64, len(x))
		for i, row := range x {
			r, ok := row.([]any)
			if !ok {
				return nil, fmt.Errorf("row %d is %T, not an array", i+1, row)
			}
			rows[i] = make([]float64, len(r))
			for j, e := range r {
				f, err := ToNumber(e)
				if err != nil {
					return nil, err
				}
				rows[i][j] = f
			}
		}
		return ToMatrix(rows)
	}
	return nil, fmt.Errorf("%T is not a matrix", v)
}

// ToVector accepts a stored vector or a flat array literal.
func ToVector(v any) (*mat.VecDense, error) {
	switch x := v.(type) {
	case *mat.VecDense:
		return x, nil
	case []float64:
		if len(x) == 0 {
			return nil, fmt.Errorf("empty vector")
		}
		return mat.NewVecDense(len(x), x), nil
	case []any:
		xs := make([]float64, len(x))
		for i, e := range x {
			f, err := ToNumber(e)
			if err != nil {
				return nil, err
			}
			xs[i] = f
		}
		return ToVector(xs)
	}
	return nil, fmt.Errorf("%T is not a vector", v)
}
