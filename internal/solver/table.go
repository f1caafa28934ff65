package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/Rorical/RoriCalc/internal/calculus"
	"github.com/Rorical/RoriCalc/internal/numfmt"
)

// Row is one line of a function table.
type Row struct {
	X float64
	Y float64
}

// Cells returns the row formatted for display, F(X) to five significant digits.
func (r Row) Cells() (x, y string) {
	x, err := numfmt.Number(r.X)
	if err != nil {
		x = fmt.Sprint(r.X)
	}
	y, err = numfmt.Significant(r.Y, tableDigits)
	if err != nil {
		y = "ERROR"
	}
	return x, y
}

// Table samples f from start to end inclusive. X values are computed as
// start + i*step so the last sample does not drift past end.
func Table(f calculus.Func, start, end, step float64) ([]Row, error) {
	if step <= 0 || math.IsNaN(step) {
		return nil, errors.New("step must be positive")
	}
	if end < start {
		return nil, fmt.Errorf("end %v is before start %v", end, start)
	}
	n := int(math.Floor((end-start)/step+1e-9)) + 1
	if n > MaxTableRows {
		return nil, fmt.Errorf("%d rows exceeds the limit of %d", n, MaxTableRows)
	}
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		x := start + float64(i)*step
		y, err := f(x)
		if err != nil {
			return nil, fmt.Errorf("X = %v: %w", x, err)
		}
		rows = append(rows, Row{X: x, Y: y})
	}
	return rows, nil
}
