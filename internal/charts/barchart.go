package charts

import (
	"gonum.org/v1/plot/plotter"

	"github.com/akasprzok/datastory/internal/style"
)

// Bar draws one bar per category. The value axis always starts at zero.
//
// Colors follow a fixed precedence: with a highlight, every bar is neutral
// except the highlighted one, which is accent; otherwise all bars take the
// WithColor override, or primary.
func (c *Charter) Bar(categories []string, vals []float64, opts ...Option) (*Figure, error) {
	const op = "charts.Bar"
	o := resolve(opts)
	if len(categories) != len(vals) {
		return nil, invalid(op, nil, "%d categories for %d values", len(categories), len(vals))
	}
	vs, err := values(op, "values", vals)
	if err != nil {
		return nil, err
	}
	highlight := -1
	if len(o.highlight) > 0 {
		highlight = o.highlight[0]
		if err := checkIndex(op, highlight, len(vs)); err != nil {
			return nil, err
		}
	}

	f := c.defaultFigure(KindBar, o)
	c.addGrid(f, o, valueAxis(o.horizontal))

	extent := f.Width
	if o.horizontal {
		extent = f.Height
	}
	width := slotWidth(extent, len(vs), barFraction)

	colors := c.barColors(len(vs), highlight, o)
	for i, v := range vs {
		bc, err := plotter.NewBarChart(plotter.Values{v}, width)
		if err != nil {
			return nil, invalid(op, err, "bar %d", i)
		}
		bc.XMin = float64(i)
		bc.Color = colors[i]
		bc.LineStyle.Width = 0
		bc.Horizontal = o.horizontal
		f.Plot.Add(bc)
		f.Bars = append(f.Bars, bc)
	}

	p := f.Plot
	if o.horizontal {
		p.NominalY(categories...)
		p.X.Min = 0
		if p.X.Max <= 0 {
			p.X.Max = 1
		}
	} else {
		p.NominalX(categories...)
		if longest(categories) > RotateLabelsOver {
			rotateTicks(&p.X)
		}
		p.Y.Min = 0
		if p.Y.Max <= 0 {
			p.Y.Max = 1
		}
	}
	return f, nil
}

func (c *Charter) barColors(n, highlight int, o *options) []style.Color {
	colors := make([]style.Color, n)
	for i := range colors {
		switch {
		case highlight >= 0 && i == highlight:
			colors[i] = c.color(style.Accent)
		case highlight >= 0:
			colors[i] = c.color(style.Neutral)
		default:
			colors[i] = c.markColor(o)
		}
	}
	return colors
}

func longest(labels []string) int {
	n := 0
	for _, l := range labels {
		if len([]rune(l)) > n {
			n = len([]rune(l))
		}
	}
	return n
}
