package charts

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/akasprzok/datastory/internal/style"
)

// Scatter draws a point cloud. Points may be colored and sized individually;
// highlighted points are always accent colored and larger than their peers.
// WithTrend overlays the least-squares line and exposes the fit on the Figure.
func (c *Charter) Scatter(x, y []float64, opts ...Option) (*Figure, error) {
	const op = "charts.Scatter"
	o := resolve(opts)
	xys, err := pairs(op, x, y)
	if err != nil {
		return nil, err
	}
	if n := len(o.pointColors); n > 0 && n != len(xys) {
		return nil, invalid(op, nil, "%d point colors for %d points", n, len(xys))
	}
	if n := len(o.pointSizes); n > 0 && n != len(xys) {
		return nil, invalid(op, nil, "%d point sizes for %d points", n, len(xys))
	}
	for _, i := range o.highlight {
		if err := checkIndex(op, i, len(xys)); err != nil {
			return nil, err
		}
	}

	var fit Trend
	if o.trend {
		fit, err = FitTrend(x, y)
		if err != nil {
			return nil, err
		}
	}

	f := c.defaultFigure(KindScatter, o)
	c.addGrid(f, o, ParseAxis(c.style.Grid.Axis))

	pts, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, invalid(op, err, "points")
	}
	base := draw.GlyphStyle{
		Color:  c.markColor(o).Alpha(pointAlpha),
		Radius: areaRadius(pointArea),
		Shape:  draw.CircleGlyph{},
	}
	pts.GlyphStyle = base
	if len(o.pointColors) > 0 || len(o.pointSizes) > 0 {
		pointColors, pointSizes := o.pointColors, o.pointSizes
		pts.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			gs := base
			if len(pointColors) > 0 {
				gs.Color = withAlpha(pointColors[i], pointAlpha)
			}
			if len(pointSizes) > 0 {
				gs.Radius = areaRadius(pointSizes[i])
			}
			return gs
		}
	}
	f.Plot.Add(pts)
	f.Points = pts

	if len(o.highlight) > 0 {
		hl := make(plotter.XYs, len(o.highlight))
		for j, i := range o.highlight {
			hl[j] = xys[i]
		}
		peer := float64(pointArea)
		for _, a := range o.pointSizes {
			peer = max(peer, a)
		}
		if err := c.addHighlights(f, op, hl, peer); err != nil {
			return nil, err
		}
	}

	if o.trend {
		xmin, xmax := xys[0].X, xys[0].X
		for _, p := range xys {
			xmin = min(xmin, p.X)
			xmax = max(xmax, p.X)
		}
		ln, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: fit.At(xmin)}, {X: xmax, Y: fit.At(xmax)}})
		if err != nil {
			return nil, invalid(op, err, "trend line")
		}
		ln.LineStyle = draw.LineStyle{
			Color:  c.color(style.Alert).Alpha(trendAlpha),
			Width:  vg.Points(trendWidth),
			Dashes: []vg.Length{vg.Points(6), vg.Points(4)},
		}
		f.Plot.Add(ln)
		f.Plot.Legend.Add(fit.Label(), ln)
		f.Trend = &fit
		f.TrendLine = ln
	}
	return f, nil
}

func withAlpha(c color.Color, alpha float64) color.Color {
	if sc, ok := c.(style.Color); ok {
		return sc.Alpha(alpha)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}
