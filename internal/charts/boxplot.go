package charts

import (
	"strconv"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/akasprzok/datastory/internal/style"
)

// Boxplot draws one box per group. Groups are labelled 1..n unless
// WithGroupLabels is given. Outliers are drawn in the alert color.
func (c *Charter) Boxplot(groups [][]float64, opts ...Option) (*Figure, error) {
	const op = "charts.Boxplot"
	o := resolve(opts)
	if len(groups) == 0 {
		return nil, empty(op, "groups")
	}
	labels := o.groupLabels
	if len(labels) == 0 {
		labels = make([]string, len(groups))
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
	}
	if len(labels) != len(groups) {
		return nil, invalid(op, nil, "%d labels for %d groups", len(labels), len(groups))
	}

	f := c.defaultFigure(KindBoxplot, o)
	c.addGrid(f, o, valueAxis(o.horizontal))

	extent := f.Width
	if o.horizontal {
		extent = f.Height
	}
	width := slotWidth(extent, len(groups), boxFraction)
	neutral := c.color(style.Neutral)

	for i, g := range groups {
		vs, err := values(op, "group "+labels[i], g)
		if err != nil {
			return nil, err
		}
		b, err := plotter.NewBoxPlot(width, float64(i), vs)
		if err != nil {
			return nil, invalid(op, err, "group %q", labels[i])
		}
		b.Horizontal = o.horizontal
		b.FillColor = c.markColor(o).Alpha(fillAlpha)
		b.BoxStyle.Width = 0
		b.WhiskerStyle = draw.LineStyle{Color: neutral, Width: vg.Points(whiskerWidth)}
		b.MedianStyle = draw.LineStyle{Color: style.White, Width: vg.Points(medianWidth)}
		b.GlyphStyle = draw.GlyphStyle{
			Color:  c.color(style.Alert).Alpha(fillAlpha),
			Radius: vg.Points(outlierSize / 2.0),
			Shape:  draw.CircleGlyph{},
		}
		f.Plot.Add(b)
		f.Boxes = append(f.Boxes, b)
	}

	if o.horizontal {
		f.Plot.NominalY(labels...)
	} else {
		f.Plot.NominalX(labels...)
	}
	return f, nil
}
