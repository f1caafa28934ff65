// Package calculus provides the numerical integral and derivative used by
// the integrate( and deriv( keys.
package calculus

import "fmt"

const (
	// Intervals is the fixed, even partition count for Simpson's rule.
	Intervals = 100
	// Step is the offset used by the central difference.
	Step = 1e-5
)

// Func is a compiled function of the sweeping variable X.
type Func func(x float64) (float64, error)

// Compiler turns the text of a function body into a Func.
type Compiler interface {
	Compile(body string) (Func, error)
}

// Simpson integrates f over [a, b] with the composite Simpson's rule on
// Intervals subintervals.
func Simpson(f Func, a, b float64) (float64, error) {
	h := (b - a) / Intervals
	sum := 0.0
	for i := 0; i <= Intervals; i++ {
		y, err := f(a + float64(i)*h)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		switch {
		case i == 0 || i == Intervals:
			sum += y
		case i%2 == 1:
			sum += 4 * y
		default:
			sum += 2 * y
		}
	}
	return h / 3 * sum, nil
}

// CentralDifference approximates f'(x) as (f(x+h) - f(x-h)) / 2h.
func CentralDifference(f Func, x float64) (float64, error) {
	plus, err := f(x + Step)
	if err != nil {
		return 0, err
	}
	minus, err := f(x - Step)
	if err != nil {
		return 0, err
	}
	return (plus - minus) / (2 * Step), nil
}

// Helpers compiles function bodies once per call and applies the numerical
// methods to them.
type Helpers struct {
	compiler Compiler
}

func NewHelpers(c Compiler) Helpers {
	return Helpers{compiler: c}
}

// Integrate evaluates the definite integral of body from a to b.
func (h Helpers) Integrate(body string, a, b float64) (float64, error) {
	f, err := h.compiler.Compile(body)
	if err != nil {
		return 0, fmt.Errorf("integrate %q: %w", body, err)
	}
	return Simpson(f, a, b)
}

// Deriv evaluates the derivative of body at x.
func (h Helpers) Deriv(body string, x float64) (float64, error) {
	f, err := h.compiler.Compile(body)
	if err != nil {
		return 0, fmt.Errorf("deriv %q: %w", body, err)
	}
	return CentralDifference(f, x)
}
