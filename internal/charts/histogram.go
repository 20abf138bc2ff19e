package charts

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/akasprzok/datastory/internal/style"
)

// DefaultHistogramLabel is the y axis label used unless WithYLabel is given.
const DefaultHistogramLabel = "Frequency"

// Histogram bins data into WithBins bins (30 by default). With WithKDE it
// also overlays a density curve scaled so its peak matches the tallest bin.
func (c *Charter) Histogram(data []float64, opts ...Option) (*Figure, error) {
	const op = "charts.Histogram"
	o := resolve(opts)
	if !o.yLabelSet {
		o.yLabel = DefaultHistogramLabel
	}
	if o.bins <= 0 {
		return nil, invalid(op, nil, "bin count must be positive, got %d", o.bins)
	}
	vs, err := values(op, "data", data)
	if err != nil {
		return nil, err
	}

	var density *Density
	if o.kde {
		density, err = GaussianKDE(vs)
		if err != nil {
			return nil, err
		}
	}

	f := c.defaultFigure(KindHistogram, o)
	c.addGrid(f, o, AxisY)

	h, err := plotter.NewHist(vs, o.bins)
	if err != nil {
		return nil, invalid(op, err, "histogram")
	}
	h.FillColor = c.markColor(o).Alpha(fillAlpha)
	h.LineStyle.Width = 0
	f.Plot.Add(h)
	f.Hist = h

	if density != nil {
		xs, ys := density.Curve(floats.Min(vs), floats.Max(vs), KDESamples, TallestBin(h))
		xys := make(plotter.XYs, len(xs))
		for i := range xs {
			xys[i].X, xys[i].Y = xs[i], ys[i]
		}
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return nil, invalid(op, err, "density curve")
		}
		ln.LineStyle = draw.LineStyle{Color: c.color(style.Accent), Width: vg.Points(kdeWidth)}
		f.Plot.Add(ln)
		f.Plot.Legend.Add("Density (KDE)", ln)
		f.KDE = ln
	}
	return f, nil
}

// TallestBin returns the largest bin weight of h.
func TallestBin(h *plotter.Histogram) float64 {
	top := 0.0
	for _, b := range h.Bins {
		top = max(top, b.Weight)
	}
	return top
}
