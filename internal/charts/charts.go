// Package charts builds styled gonum plots for the common chart types.
//
// Every constructor hangs off a Charter, which carries the style.Config the
// chart is built with. Nothing here touches global plotting state, so two
// Charters with different styles can be used side by side.
package charts

import (
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/akasprzok/datastory/internal/style"
)

// Kind names the chart type a Figure was built as.
type Kind int

const (
	KindLine Kind = iota + 1
	KindBar
	KindScatter
	KindHeatmap
	KindHistogram
	KindBoxplot
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindBar:
		return "bar"
	case KindScatter:
		return "scatter"
	case KindHeatmap:
		return "heatmap"
	case KindHistogram:
		return "histogram"
	case KindBoxplot:
		return "boxplot"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Axis selects an axis, or both, for grid lines.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisBoth
)

// ParseAxis converts a grid axis setting ("x", "y" or "both").
func ParseAxis(s string) Axis {
	switch s {
	case "x":
		return AxisX
	case "y":
		return AxisY
	case "both":
		return AxisBoth
	default:
		return AxisNone
	}
}

// Spines records which plot borders are drawn.
type Spines struct {
	Top, Right, Left, Bottom bool
}

// Figure is a built chart. It is consumed by the caller (saved or displayed)
// and then discarded.
type Figure struct {
	Plot *plot.Plot
	Kind Kind

	Width, Height vg.Length
	DPI, SaveDPI  int

	Spines   Spines
	Grid     *plotter.Grid
	GridAxis Axis

	Lines      []*plotter.Line
	Points     *plotter.Scatter
	Highlights *plotter.Scatter
	Bars       []*plotter.BarChart
	Trend      *Trend
	TrendLine  *plotter.Line
	Hist       *plotter.Histogram
	KDE        *plotter.Line
	Boxes      []*plotter.BoxPlot
	HeatMap    *plotter.HeatMap
	Cells      *plotter.Labels
	ColorBar   *plot.Plot
}

// Charter builds charts with a fixed style.
type Charter struct {
	style *style.Config
}

// New returns a Charter for cfg. A nil cfg uses style.Default().
func New(cfg *style.Config) *Charter {
	if cfg == nil {
		cfg = style.Default()
	}
	return &Charter{style: cfg}
}

// Style returns the configuration charts are built with.
func (c *Charter) Style() *style.Config {
	return c.style
}

func (c *Charter) color(role style.Role) style.Color {
	return c.style.Color(role)
}

// markColor is the color of ordinary marks: the override if one was given,
// else primary.
func (c *Charter) markColor(o *options) style.Color {
	if o.color != "" {
		return o.color
	}
	return c.color(style.Primary)
}

// newFigure returns a plot carrying the house style: fonts, colors, axis
// lines on the left and bottom only, and the title and labels from o.
func (c *Charter) newFigure(kind Kind, o *options, defaultW, defaultH float64) *Figure {
	cfg := c.style
	p := plot.New()
	p.BackgroundColor = cfg.Color(style.Background)

	textColor := cfg.Color(style.Text)
	axisColor := cfg.Color(style.Neutral)

	p.Title.Text = o.title
	p.Title.Padding = vg.Points(titlePad)
	c.setFont(&p.Title.TextStyle, cfg.Font.TitleSize, true)
	p.Title.TextStyle.Color = textColor

	p.X.Label.Text = o.xLabel
	p.Y.Label.Text = o.yLabel
	p.Legend.Top = true
	c.setFont(&p.Legend.TextStyle, cfg.Font.LegendSize, false)
	p.Legend.TextStyle.Color = textColor

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		c.setFont(&ax.Label.TextStyle, cfg.Font.LabelSize, false)
		ax.Label.TextStyle.Color = textColor
		c.setFont(&ax.Tick.Label, cfg.Font.TickSize, false)
		ax.Tick.Label.Color = textColor
		ax.Tick.LineStyle.Color = axisColor
		ax.LineStyle.Color = axisColor
		ax.LineStyle.Width = vg.Points(cfg.Lines.AxisWidth)
	}
	if !cfg.Spines.Left {
		p.Y.LineStyle.Width = 0
	}
	if !cfg.Spines.Bottom {
		p.X.LineStyle.Width = 0
	}

	w, h := defaultW, defaultH
	if o.width > 0 && o.height > 0 {
		w, h = o.width, o.height
	}

	return &Figure{
		Plot:    p,
		Kind:    kind,
		Width:   vg.Length(w) * vg.Inch,
		Height:  vg.Length(h) * vg.Inch,
		DPI:     cfg.Figure.DPI,
		SaveDPI: cfg.Figure.SaveDPI,
		Spines: Spines{
			Left:   cfg.Spines.Left,
			Bottom: cfg.Spines.Bottom,
		},
	}
}

// Blank returns an empty figure in the house style for callers that add
// their own plotters. WithTitle, the axis labels and WithSize apply.
func (c *Charter) Blank(kind Kind, opts ...Option) *Figure {
	return c.defaultFigure(kind, resolve(opts))
}

func (c *Charter) defaultFigure(kind Kind, o *options) *Figure {
	return c.newFigure(kind, o, c.style.Figure.Width, c.style.Figure.Height)
}

func (c *Charter) setFont(st *text.Style, size float64, bold bool) {
	st.Font.Typeface = "Liberation"
	st.Font.Variant = font.Variant(c.style.Font.Variant())
	st.Font.Size = vg.Points(size)
	if bold {
		st.Font.Weight = xfont.WeightBold
	} else {
		st.Font.Weight = xfont.WeightNormal
	}
}

// addGrid draws the faint background grid on the given axis. It must be
// called before any data plotter so the grid sits underneath.
func (c *Charter) addGrid(f *Figure, o *options, axis Axis) {
	if o.noGrid || !c.style.Grid.Show || axis == AxisNone {
		return
	}
	gc := c.style.Grid
	g := plotter.NewGrid()
	line := draw.LineStyle{
		Color: gc.Color.Alpha(gc.Alpha),
		Width: vg.Points(gc.Width),
	}
	g.Vertical = line
	g.Horizontal = line
	if axis == AxisY {
		g.Vertical.Color = nil
	}
	if axis == AxisX {
		g.Horizontal.Color = nil
	}
	f.Plot.Add(g)
	f.Grid = g
	f.GridAxis = axis
}

// valueAxis is the axis carrying the data values for bar-like charts.
func valueAxis(horizontal bool) Axis {
	if horizontal {
		return AxisX
	}
	return AxisY
}

// areaRadius converts a marker area in square points to a glyph radius.
func areaRadius(area float64) vg.Length {
	return vg.Points(math.Sqrt(area) / 2)
}

// slotWidth is the canvas width of a mark occupying fraction of one of n
// equal category slots along extent.
func slotWidth(extent vg.Length, n int, fraction float64) vg.Length {
	if n < 1 {
		n = 1
	}
	return extent * plotAreaFrac * vg.Length(fraction) / vg.Length(n)
}

// highlightGlyphs returns the accent dot for highlighted points and the white
// halo drawn beneath it. The dot is at least highlightArea and always larger
// than the largest peer marker of peerArea.
func (c *Charter) highlightGlyphs(peerArea float64) (dot, halo draw.GlyphStyle) {
	r := areaRadius(max(highlightArea, peerArea*highlightScale))
	dot = draw.GlyphStyle{Color: c.color(style.Accent), Radius: r, Shape: draw.CircleGlyph{}}
	halo = draw.GlyphStyle{Color: style.White, Radius: r + vg.Points(2), Shape: draw.CircleGlyph{}}
	return dot, halo
}

// addHighlights overlays accent points at xys, sized against peer markers of
// at most peerArea.
func (c *Charter) addHighlights(f *Figure, op string, xys plotter.XYs, peerArea float64) error {
	dot, halo := c.highlightGlyphs(peerArea)
	under, err := plotter.NewScatter(xys)
	if err != nil {
		return invalid(op, err, "highlight")
	}
	under.GlyphStyle = halo
	over, err := plotter.NewScatter(xys)
	if err != nil {
		return invalid(op, err, "highlight")
	}
	over.GlyphStyle = dot
	f.Plot.Add(under, over)
	f.Highlights = over
	return nil
}

// rotateTicks angles the tick labels of ax so long labels do not collide.
func rotateTicks(ax *plot.Axis) {
	ax.Tick.Label.Rotation = math.Pi / 4
	ax.Tick.Label.XAlign = draw.XRight
	ax.Tick.Label.YAlign = draw.YTop
}
