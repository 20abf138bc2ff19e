package charts

import (
	"math"

	"gonum.org/v1/plot/plotter"

	vizerrors "github.com/akasprzok/datastory/internal/errors"
)

func invalid(op string, err error, format string, args ...any) error {
	return vizerrors.Invalid(op, err, format, args...)
}

func empty(op, what string) error {
	return vizerrors.Empty(op, what+" is empty")
}

// pairs zips x and y into plot points, rejecting length mismatches, empty
// input and non-finite values.
func pairs(op string, x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, invalid(op, nil, "x has %d values, y has %d", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, empty(op, "data")
	}
	xys := make(plotter.XYs, len(x))
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			return nil, invalid(op, nil, "point %d (%v, %v) is not finite", i, x[i], y[i])
		}
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys, nil
}

// values rejects empty or non-finite input.
func values(op, what string, vs []float64) (plotter.Values, error) {
	if len(vs) == 0 {
		return nil, empty(op, what)
	}
	for i, v := range vs {
		if !finite(v) {
			return nil, invalid(op, nil, "%s value %d (%v) is not finite", what, i, v)
		}
	}
	return plotter.Values(append([]float64(nil), vs...)), nil
}

func checkIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return invalid(op, nil, "highlight index %d out of range [0, %d)", i, n)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
