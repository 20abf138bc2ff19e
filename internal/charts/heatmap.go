package charts

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/akasprzok/datastory/internal/style"
)

// Colormap is an ordered color sequence usable as a gonum palette.
type Colormap []style.Color

// Colors implements palette.Palette.
func (cm Colormap) Colors() []color.Color {
	out := make([]color.Color, len(cm))
	for i, c := range cm {
		out[i] = c
	}
	return out
}

// index returns the entry v falls into over [lo, hi], rounded to the nearest
// entry the way plotter.HeatMap picks cell colors.
func (cm Colormap) index(v, lo, hi float64) int {
	if hi == lo {
		return 0
	}
	i := int((v-lo)*float64(len(cm)-1)/(hi-lo) + 0.5)
	return max(0, min(i, len(cm)-1))
}

// matrixGrid adapts a matrix to plotter.GridXYZ with row 0 drawn at the top.
type matrixGrid struct {
	m mat.Matrix
}

func (g matrixGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g matrixGrid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g matrixGrid) X(c int) float64 { return float64(c) }

func (g matrixGrid) Y(r int) float64 { return float64(r) }

// rampGrid is a single column running from lo to hi, drawn as the colorbar.
type rampGrid struct {
	n      int
	lo, hi float64
}

func (g rampGrid) Dims() (c, r int) { return 1, g.n }

func (g rampGrid) Z(_, r int) float64 { return g.Y(r) }

func (g rampGrid) X(int) float64 { return 0 }

func (g rampGrid) Y(r int) float64 {
	return g.lo + (g.hi-g.lo)*float64(r)/float64(g.n-1)
}

// Heatmap shades the cells of data, annotating each with its value, and draws
// a colorbar unless WithoutColorBar is given. Rows run top to bottom in matrix
// order. Labels default to the row and column indices.
func (c *Charter) Heatmap(data mat.Matrix, rowLabels, colLabels []string, opts ...Option) (*Figure, error) {
	const op = "charts.Heatmap"
	o := resolve(opts)
	if data == nil {
		return nil, empty(op, "matrix")
	}
	rows, cols := data.Dims()
	if rows == 0 || cols == 0 {
		return nil, empty(op, "matrix")
	}
	if rowLabels == nil {
		rowLabels = indexLabels(rows)
	}
	if colLabels == nil {
		colLabels = indexLabels(cols)
	}
	if len(rowLabels) != rows || len(colLabels) != cols {
		return nil, invalid(op, nil, "%dx%d labels for a %dx%d matrix", len(rowLabels), len(colLabels), rows, cols)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := data.At(i, j)
			if math.IsInf(v, 0) {
				return nil, invalid(op, nil, "cell (%d, %d) is infinite", i, j)
			}
			if math.IsNaN(v) {
				continue
			}
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return nil, empty(op, "matrix values")
	}
	if hi == lo {
		// A flat matrix has no color range; paint it with the first color.
		hi = lo + 1
	}

	cmap := Colormap(o.colormap)
	if len(cmap) == 0 {
		cmap = Colormap(style.Sequential(HeatmapLevels))
	}

	f := c.newFigure(KindHeatmap, o, c.style.Figure.Width, c.style.Figure.Width*0.8)
	grid := matrixGrid{m: data}
	hm := plotter.NewHeatMap(grid, cmap)
	hm.Min, hm.Max = lo, hi
	f.Plot.Add(hm)
	f.HeatMap = hm

	if !o.noAnnotate {
		cells, err := c.annotateCells(grid, cmap, lo, hi, o.format)
		if err != nil {
			return nil, invalid(op, err, "cell labels")
		}
		if cells != nil {
			f.Plot.Add(cells)
			f.Cells = cells
		}
	}

	f.Plot.NominalX(colLabels...)
	reversed := make([]string, rows)
	for i, l := range rowLabels {
		reversed[rows-1-i] = l
	}
	f.Plot.NominalY(reversed...)
	rotateTicks(&f.Plot.X)

	if !o.noColorBar {
		f.ColorBar = c.colorBar(cmap, lo, hi)
	}
	return f, nil
}

// colorBar builds the value scale drawn beside a heatmap.
func (c *Charter) colorBar(cmap Colormap, lo, hi float64) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = c.color(style.Background)
	p.HideX()
	p.Y.Padding = 0
	c.setFont(&p.Y.Tick.Label, c.style.Font.TickSize, false)
	p.Y.Tick.Label.Color = c.color(style.Text)
	p.Y.Tick.LineStyle.Color = c.color(style.Neutral)
	p.Y.LineStyle.Width = 0

	bar := plotter.NewHeatMap(rampGrid{n: max(len(cmap), 2), lo: lo, hi: hi}, cmap)
	bar.Min, bar.Max = lo, hi
	p.Add(bar)
	return p
}

// annotateCells labels each non-NaN cell, in dark text on light cells and
// white text on dark ones.
func (c *Charter) annotateCells(g matrixGrid, cmap Colormap, lo, hi float64, format string) (*plotter.Labels, error) {
	cols, rows := g.Dims()
	var xyl plotter.XYLabels
	var fills []style.Color
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			v := g.Z(col, r)
			if math.IsNaN(v) {
				continue
			}
			xyl.XYs = append(xyl.XYs, plotter.XY{X: g.X(col), Y: g.Y(r)})
			xyl.Labels = append(xyl.Labels, fmt.Sprintf(format, v))
			fills = append(fills, cmap[cmap.index(v, lo, hi)])
		}
	}
	if len(xyl.XYs) == 0 {
		return nil, nil
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		c.setFont(&labels.TextStyle[i], c.style.Font.TickSize, false)
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		if fills[i].Light() {
			labels.TextStyle[i].Color = c.color(style.Text)
		} else {
			labels.TextStyle[i].Color = style.White
		}
	}
	return labels, nil
}

func indexLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
