package charts

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Trend is a fitted line y = Slope*x + Intercept.
type Trend struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (t Trend) At(x float64) float64 {
	return t.Slope*x + t.Intercept
}

// Label is the legend text for the line.
func (t Trend) Label() string {
	return fmt.Sprintf("Trend: y=%.2fx%+.2f", t.Slope, t.Intercept)
}

// FitTrend fits y against x by ordinary least squares.
func FitTrend(x, y []float64) (Trend, error) {
	const op = "charts.FitTrend"
	if _, err := pairs(op, x, y); err != nil {
		return Trend{}, err
	}
	if len(x) < 2 {
		return Trend{}, invalid(op, nil, "need at least 2 points, have %d", len(x))
	}
	if stat.Variance(x, nil) == 0 {
		return Trend{}, invalid(op, nil, "x values are all equal")
	}
	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return Trend{Slope: slope, Intercept: intercept}, nil
}
