package charts

import (
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/akasprzok/datastory/internal/style"
)

// Series is one named line of a multi-series chart.
type Series struct {
	Name string
	X, Y []float64
}

// TimeSeries is one named line over time.
type TimeSeries struct {
	Name   string
	Times  []time.Time
	Values []float64
}

// Line draws a single trend line with point markers. WithHighlight marks one
// point in the accent color at a larger size.
func (c *Charter) Line(x, y []float64, opts ...Option) (*Figure, error) {
	const op = "charts.Line"
	o := resolve(opts)
	xys, err := pairs(op, x, y)
	if err != nil {
		return nil, err
	}
	if len(o.xTicks) > 0 && len(o.xTicks) != len(x) {
		return nil, invalid(op, nil, "%d tick labels for %d points", len(o.xTicks), len(x))
	}

	f := c.defaultFigure(KindLine, o)
	c.addGrid(f, o, ParseAxis(c.style.Grid.Axis))

	lineColor := c.markColor(o)
	ln, pts, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, invalid(op, err, "line")
	}
	ln.LineStyle = draw.LineStyle{Color: lineColor.Alpha(lineAlpha), Width: vg.Points(lineWidth)}
	pts.GlyphStyle = draw.GlyphStyle{
		Color:  lineColor.Alpha(lineAlpha),
		Radius: vg.Points(lineMarkerSize / 2.0),
		Shape:  draw.CircleGlyph{},
	}
	f.Plot.Add(ln, pts)
	f.Lines = []*plotter.Line{ln}
	f.Points = pts

	if len(o.highlight) > 0 {
		i := o.highlight[0]
		if err := checkIndex(op, i, len(xys)); err != nil {
			return nil, err
		}
		if err := c.addHighlights(f, op, plotter.XYs{xys[i]}, 0); err != nil {
			return nil, err
		}
	}

	if len(o.xTicks) > 0 {
		ticks := make([]plot.Tick, len(x))
		for i := range x {
			ticks[i] = plot.Tick{Value: x[i], Label: o.xTicks[i]}
		}
		f.Plot.X.Tick.Marker = plot.ConstantTicks(ticks)
	}
	return f, nil
}

// Lines draws several series, colored by cycling the categorical palette, with
// a legend entry each. WithHighlight draws the chosen series in the accent
// color at a heavier width.
func (c *Charter) Lines(series []Series, opts ...Option) (*Figure, error) {
	const op = "charts.Lines"
	o := resolve(opts)
	if len(series) == 0 {
		return nil, empty(op, "series")
	}
	selected := -1
	if len(o.highlight) > 0 {
		selected = o.highlight[0]
		if err := checkIndex(op, selected, len(series)); err != nil {
			return nil, err
		}
	}

	f := c.defaultFigure(KindLine, o)
	c.addGrid(f, o, ParseAxis(c.style.Grid.Axis))

	colors := c.style.CategoricalColors(len(series))
	for i, s := range series {
		xys, err := pairs(op, s.X, s.Y)
		if err != nil {
			return nil, err
		}
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return nil, invalid(op, err, "series %q", s.Name)
		}
		ln.LineStyle = draw.LineStyle{Color: colors[i], Width: vg.Points(c.style.Lines.Width)}
		if i == selected {
			ln.LineStyle.Color = c.color(style.Accent)
			ln.LineStyle.Width = vg.Points(c.style.Lines.Width * 2)
		}
		f.Plot.Add(ln)
		if s.Name != "" {
			f.Plot.Legend.Add(s.Name, ln)
		}
		f.Lines = append(f.Lines, ln)
	}
	return f, nil
}

// TimeLines is Lines with a time x axis.
func (c *Charter) TimeLines(series []TimeSeries, opts ...Option) (*Figure, error) {
	const op = "charts.TimeLines"
	if len(series) == 0 {
		return nil, empty(op, "series")
	}
	converted := make([]Series, len(series))
	var first, last time.Time
	for i, s := range series {
		if len(s.Times) != len(s.Values) {
			return nil, invalid(op, nil, "series %q has %d times and %d values", s.Name, len(s.Times), len(s.Values))
		}
		xs := make([]float64, len(s.Times))
		for j, t := range s.Times {
			xs[j] = float64(t.Unix())
			if first.IsZero() || t.Before(first) {
				first = t
			}
			if t.After(last) {
				last = t
			}
		}
		converted[i] = Series{Name: s.Name, X: xs, Y: s.Values}
	}

	f, err := c.Lines(converted, opts...)
	if err != nil {
		return nil, err
	}
	format := "15:04"
	if last.Sub(first) > 48*time.Hour {
		format = "01-02"
	}
	f.Plot.X.Tick.Marker = plot.TimeTicks{Format: format}
	return f, nil
}
