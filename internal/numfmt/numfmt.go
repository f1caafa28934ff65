// Package numfmt renders evaluation results for the display and converts
// between decimal and fraction forms.
package numfmt

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const (
	// SnapTolerance is how close a result must be to an integer to be shown as one.
	SnapTolerance = 1e-9
	// Digits is the number of significant digits kept for non-integers.
	Digits = 10
)

var (
	ErrNotFinite  = errors.New("result is not a finite number")
	ErrNotNumeric = errors.New("not a number")
)

// Number formats a scalar result. Values within SnapTolerance of an integer
// display as that integer, everything else is rounded to Digits significant
// digits. Magnitudes of 1e21 and above or below 1e-6 use exponent form.
func Number(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrNotFinite
	}
	if r := math.Round(v); math.Abs(v-r) < SnapTolerance {
		return shortest(r), nil
	}
	return Significant(v, Digits)
}

// Significant formats v rounded to the given number of significant digits,
// dropping trailing zeros.
func Significant(v float64, digits int) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrNotFinite
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', digits, 64), 64)
	if err != nil {
		return "", err
	}
	return shortest(rounded), nil
}

func shortest(v float64) string {
	if v == 0 {
		return "0"
	}
	if a := math.Abs(v); a >= 1e21 || a < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		// Go pads the exponent to two digits: 1e-07.
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Result formats any value the evaluator can produce: numbers, matrices,
// vectors and nested arrays.
func Result(v any) (string, error) {
	switch x := v.(type) {
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case *mat.Dense:
		r, c := x.Dims()
		rows := make([]string, r)
		for i := 0; i < r; i++ {
			s, err := list(c, func(j int) (string, error) { return Number(x.At(i, j)) })
			if err != nil {
				return "", err
			}
			rows[i] = s
		}
		return "[" + strings.Join(rows, ", ") + "]", nil
	case *mat.VecDense:
		return list(x.Len(), func(i int) (string, error) { return Number(x.AtVec(i)) })
	case []float64:
		return list(len(x), func(i int) (string, error) { return Number(x[i]) })
	case []any:
		return list(len(x), func(i int) (string, error) { return Result(x[i]) })
	}
	return "", fmt.Errorf("cannot display a %T", v)
}

func list(n int, item func(int) (string, error)) (string, error) {
	parts := make([]string, n)
	for i := range parts {
		s, err := item(i)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

// IsFraction reports whether a displayed result is in fraction form. Any
// result containing a slash counts.
func IsFraction(s string) bool {
	return strings.Contains(s, "/")
}

// ToFraction converts a decimal numeral to its exact reduced fraction,
// "0.75" to "3/4". Integers keep a denominator of 1.
func ToFraction(s string) (string, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok || IsFraction(s) {
		return "", fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return r.String(), nil
}

// ToDecimal evaluates a fraction and formats it like any other result.
func ToDecimal(s string) (string, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	f, _ := r.Float64()
	return Number(f)
}

// Toggle switches a result between decimal and fraction form.
func Toggle(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty result", ErrNotNumeric)
	}
	if IsFraction(s) {
		return ToDecimal(s)
	}
	return ToFraction(s)
}
