// Package solver implements the equation and table modes.
package solver

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/Rorical/RoriCalc/internal/numfmt"
)

// Messages shown in place of roots.
const (
	NoRealRoots  = "No Real Roots"
	NoSolution   = "Infinite/No Sol"
	Unsupported  = "Solver N/A"
	tableDigits  = 5
	MaxTableRows = 1000
)

// Kind selects an equation form.
type Kind int

const (
	Quadratic Kind = iota // aX² + bX + c = 0
	Cubic                 // aX³ + bX² + cX + d = 0
	Linear2               // a1X + b1Y = c1, a2X + b2Y = c2
	Linear3               // a1X + b1Y + c1Z = d1, ...
)

var kindNames = map[Kind]string{
	Quadratic: "quadratic",
	Cubic:     "cubic",
	Linear2:   "2var",
	Linear3:   "3var",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the names printed by String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown equation type %q", s)
}

// Kinds lists every equation form in menu order.
func Kinds() []Kind {
	return []Kind{Quadratic, Cubic, Linear2, Linear3}
}

// Coefficients names the inputs of k, in the order Solve expects them.
func (k Kind) Coefficients() []string {
	switch k {
	case Quadratic:
		return []string{"a", "b", "c"}
	case Cubic:
		return []string{"a", "b", "c", "d"}
	case Linear2:
		return []string{"a1", "b1", "c1", "a2", "b2", "c2"}
	case Linear3:
		return []string{"a1", "b1", "c1", "d1", "a2", "b2", "c2", "d2", "a3", "b3", "c3", "d3"}
	}
	return nil
}

// Solution holds named roots, or a message when there are none to show.
type Solution struct {
	Names   []string
	Values  []float64
	Message string
}

// Lines renders the solution one root per line, "X1 = 2".
func (s Solution) Lines() []string {
	if s.Message != "" {
		return []string{s.Message}
	}
	out := make([]string, len(s.Values))
	for i, v := range s.Values {
		text, err := numfmt.Number(v)
		if err != nil {
			text = fmt.Sprint(v)
		}
		out[i] = s.Names[i] + " = " + text
	}
	return out
}

func (s Solution) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Solve solves the equation of the given kind.
func Solve(k Kind, coeffs []float64) (Solution, error) {
	want := len(k.Coefficients())
	if want == 0 {
		return Solution{}, fmt.Errorf("unknown equation type %v", k)
	}
	if len(coeffs) != want {
		return Solution{}, fmt.Errorf("%v: want %d coefficients, got %d", k, want, len(coeffs))
	}
	switch k {
	case Quadratic:
		return solveQuadratic(coeffs[0], coeffs[1], coeffs[2]), nil
	case Cubic:
		return Solution{Message: Unsupported}, nil
	case Linear2:
		return solveLinear(2, coeffs, []string{"X", "Y"}), nil
	default:
		return solveLinear(3, coeffs, []string{"X", "Y", "Z"}), nil
	}
}

func solveQuadratic(a, b, c float64) Solution {
	if a == 0 {
		if b == 0 {
			return Solution{Message: NoSolution}
		}
		return Solution{Names: []string{"X"}, Values: []float64{-c / b}}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return Solution{Message: NoRealRoots}
	}
	sq := math.Sqrt(d)
	return Solution{
		Names:  []string{"X1", "X2"},
		Values: []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)},
	}
}

// solveLinear treats each row of coeffs as n coefficients followed by the
// right-hand side.
func solveLinear(n int, coeffs []float64, names []string) Solution {
	a := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		row := coeffs[i*(n+1) : (i+1)*(n+1)]
		a.SetRow(i, row[:n])
		rhs.SetVec(i, row[n])
	}

	var lu mat.LU
	lu.Factorize(a)
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, rhs); err != nil {
		return Solution{Message: NoSolution}
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = x.AtVec(i)
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return Solution{Message: NoSolution}
		}
	}
	return Solution{Names: names, Values: values}
}
