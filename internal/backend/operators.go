package backend

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"gonum.org/v1/gonum/mat"
)

// floatLiterals turns every integer literal into a float so arithmetic
// never wraps around in int.
type floatLiterals struct{}

func (floatLiterals) Visit(node *ast.Node) {
	if n, ok := (*node).(*ast.IntegerNode); ok {
		ast.Patch(node, &ast.FloatNode{Value: float64(n.Value)})
	}
}

// Operand signatures that route + - * / to matrixArithmetic. Plain numbers
// never match, so scalar arithmetic stays native. The interface forms
// cover array literals and the untyped results of det, inv and friends.
var (
	matrixSignatures = []any{
		new(func(*mat.Dense, *mat.Dense) *mat.Dense),
		new(func(float64, *mat.Dense) *mat.Dense),
		new(func(*mat.Dense, float64) *mat.Dense),
		new(func(*mat.Dense, *mat.VecDense) *mat.VecDense),
		new(func(*mat.VecDense, *mat.VecDense) any),
		new(func(float64, *mat.VecDense) *mat.VecDense),
		new(func(*mat.VecDense, float64) *mat.VecDense),
		new(func(any, *mat.Dense) any),
		new(func(*mat.Dense, any) any),
		new(func(any, *mat.VecDense) any),
		new(func(*mat.VecDense, any) any),
	}
	overloads = map[string]string{
		"+": "matadd",
		"-": "matsub",
		"*": "matmul",
		"/": "matdiv",
	}
)

func matrixOperators() []expr.Option {
	opts := make([]expr.Option, 0, 2*len(overloads))
	for op, name := range overloads {
		op := op
		opts = append(opts,
			expr.Function(name, func(args ...any) (any, error) {
				if len(args) != 2 {
					return nil, fmt.Errorf("%s: want 2 operands, got %d", op, len(args))
				}
				return matrixArithmetic(op, args[0], args[1])
			}, matrixSignatures...),
			expr.Operator(op, name),
		)
	}
	return opts
}

// operand is a classified argument: exactly one field is set.
type operand struct {
	scalar *float64
	matrix *mat.Dense
	vector *mat.VecDense
}

func classify(v any) (operand, error) {
	switch x := v.(type) {
	case *mat.Dense:
		return operand{matrix: x}, nil
	case *mat.VecDense:
		return operand{vector: x}, nil
	case []any:
		if len(x) > 0 {
			if _, nested := x[0].([]any); nested {
				m, err := ToMatrix(x)
				return operand{matrix: m}, err
			}
		}
		vec, err := ToVector(x)
		return operand{vector: vec}, err
	}
	f, err := ToNumber(v)
	if err != nil {
		return operand{}, err
	}
	return operand{scalar: &f}, nil
}

// matrixArithmetic applies op with the usual linear-algebra meaning:
// element-wise + and -, scalar broadcasting, matrix products and the dot
// product of two vectors.
func matrixArithmetic(op string, a, b any) (any, error) {
	l, err := classify(a)
	if err != nil {
		return nil, err
	}
	r, err := classify(b)
	if err != nil {
		return nil, err
	}

	switch {
	case l.scalar != nil && r.scalar != nil:
		return scalarArithmetic(op, *l.scalar, *r.scalar)
	case l.matrix != nil && r.matrix != nil:
		return matrixMatrix(op, l.matrix, r.matrix)
	case l.vector != nil && r.vector != nil:
		return vectorVector(op, l.vector, r.vector)
	case l.matrix != nil && r.vector != nil && op == "*":
		rows, cols := l.matrix.Dims()
		if cols != r.vector.Len() {
			return nil, fmt.Errorf("*: %dx%d matrix times vector of length %d", rows, cols, r.vector.Len())
		}
		var out mat.VecDense
		out.MulVec(l.matrix, r.vector)
		return &out, nil
	case l.scalar != nil && r.matrix != nil:
		return scalarMatrix(op, *l.scalar, r.matrix, true)
	case l.matrix != nil && r.scalar != nil:
		return scalarMatrix(op, *r.scalar, l.matrix, false)
	case l.scalar != nil && r.vector != nil:
		return scalarVector(op, *l.scalar, r.vector, true)
	case l.vector != nil && r.scalar != nil:
		return scalarVector(op, *r.scalar, l.vector, false)
	}
	return nil, fmt.Errorf("%s: unsupported operands %T and %T", op, a, b)
}

func scalarArithmetic(op string, x, y float64) (any, error) {
	switch op {
	case "+":
		return x + y, nil
	case "-":
		return x - y, nil
	case "*":
		return x * y, nil
	}
	return x / y, nil
}

func matrixMatrix(op string, a, b *mat.Dense) (any, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	var out mat.Dense
	switch op {
	case "+", "-":
		if ar != br || ac != bc {
			return nil, fmt.Errorf("%s: %dx%d and %dx%d matrices differ in size", op, ar, ac, br, bc)
		}
		if op == "+" {
			out.Add(a, b)
		} else {
			out.Sub(a, b)
		}
	case "*":
		if ac != br {
			return nil, fmt.Errorf("*: cannot multiply %dx%d by %dx%d", ar, ac, br, bc)
		}
		out.Mul(a, b)
	default:
		return nil, fmt.Errorf("%s: matrices cannot be divided", op)
	}
	return &out, nil
}

func vectorVector(op string, u, v *mat.VecDense) (any, error) {
	if u.Len() != v.Len() {
		return nil, fmt.Errorf("%s: lengths %d and %d differ", op, u.Len(), v.Len())
	}
	var out mat.VecDense
	switch op {
	case "+":
		out.AddVec(u, v)
	case "-":
		out.SubVec(u, v)
	case "*":
		return mat.Dot(u, v), nil
	default:
		return nil, fmt.Errorf("%s: vectors cannot be divided", op)
	}
	return &out, nil
}

// scalarMatrix broadcasts s over m. leading reports whether s was the left
// operand, which matters for - and /.
func scalarMatrix(op string, s float64, m *mat.Dense, leading bool) (any, error) {
	var out mat.Dense
	switch op {
	case "*":
		out.Scale(s, m)
	case "/":
		if leading {
			return nil, fmt.Errorf("/: cannot divide by a matrix")
		}
		out.Scale(1/s, m)
	default:
		out.Apply(func(_, _ int, v float64) float64 {
			return broadcast(op, s, v, leading)
		}, m)
	}
	return &out, nil
}

func scalarVector(op string, s float64, v *mat.VecDense, leading bool) (any, error) {
	out := mat.NewVecDense(v.Len(), nil)
	switch op {
	case "*":
		out.ScaleVec(s, v)
	case "/":
		if leading {
			return nil, fmt.Errorf("/: cannot divide by a vector")
		}
		out.ScaleVec(1/s, v)
	default:
		for i := 0; i < v.Len(); i++ {
			out.SetVec(i, broadcast(op, s, v.AtVec(i), leading))
		}
	}
	return out, nil
}

func broadcast(op string, s, v float64, leading bool) float64 {
	if op == "+" {
		return s + v
	}
	if leading {
		return s - v
	}
	return v - s
}
