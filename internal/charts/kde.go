package charts

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Density is a Gaussian kernel density estimate.
type Density struct {
	data      []float64
	Bandwidth float64
}

// GaussianKDE estimates the density of data with a Gaussian kernel and
// Scott's rule bandwidth (sample standard deviation times n^(-1/5)).
func GaussianKDE(data []float64) (*Density, error) {
	const op = "charts.GaussianKDE"
	vs, err := values(op, "data", data)
	if err != nil {
		return nil, err
	}
	if len(vs) < 2 {
		return nil, invalid(op, nil, "need at least 2 values, have %d", len(vs))
	}
	sd := stat.StdDev(vs, nil)
	if sd == 0 {
		return nil, invalid(op, nil, "data has zero variance")
	}
	return &Density{
		data:      vs,
		Bandwidth: sd * math.Pow(float64(len(vs)), -0.2),
	}, nil
}

// At evaluates the density at x.
func (d *Density) At(x float64) float64 {
	norm := 1 / (float64(len(d.data)) * d.Bandwidth * math.Sqrt(2*math.Pi))
	sum := 0.0
	for _, xi := range d.data {
		z := (x - xi) / d.Bandwidth
		sum += math.Exp(-0.5 * z * z)
	}
	return norm * sum
}

// Curve evaluates the density at n evenly spaced points over [lo, hi],
// scaled so the curve's peak equals peak.
func (d *Density) Curve(lo, hi float64, n int, peak float64) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	if n == 1 {
		xs[0] = lo
	} else {
		floats.Span(xs, lo, hi)
	}
	for i, x := range xs {
		ys[i] = d.At(x)
	}
	if top := floats.Max(ys); top > 0 {
		floats.Scale(peak/top, ys)
	}
	return xs, ys
}
