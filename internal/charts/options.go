package charts

import (
	"image/color"

	"github.com/akasprzok/datastory/internal/style"
)

// Option adjusts a single chart. Options only change cosmetics; the policy
// rules (zero-based bar axis, hidden top/right borders, accent highlights)
// always apply.
type Option func(o *options)

type options struct {
	title     string
	xLabel    string
	yLabel    string
	yLabelSet bool

	color  style.Color
	width  float64
	height float64

	highlight  []int
	horizontal bool
	noGrid     bool
	xTicks     []string

	trend       bool
	pointColors []color.Color
	pointSizes  []float64

	bins int
	kde  bool

	colormap   []style.Color
	noAnnotate bool
	noColorBar bool
	format     string

	groupLabels []string
}

func resolve(opts []Option) *options {
	o := &options{
		bins:   DefaultBins,
		format: "%.2f",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithXLabel sets the x axis label.
func WithXLabel(label string) Option {
	return func(o *options) { o.xLabel = label }
}

// WithYLabel sets the y axis label. An empty label suppresses any default.
func WithYLabel(label string) Option {
	return func(o *options) {
		o.yLabel = label
		o.yLabelSet = true
	}
}

// WithColor overrides the primary color of the chart's marks. It never
// overrides the accent color of highlighted elements.
func WithColor(c style.Color) Option {
	return func(o *options) { o.color = c }
}

// WithSize sets the figure size in inches.
func WithSize(width, height float64) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithHighlight emphasizes the elements at the given indices in the accent
// color. Bar and line charts use the first index only.
func WithHighlight(indices ...int) Option {
	return func(o *options) { o.highlight = append(o.highlight, indices...) }
}

// Horizontal lays bars or boxes out along the y axis.
func Horizontal() Option {
	return func(o *options) { o.horizontal = true }
}

// WithoutGrid disables the background grid.
func WithoutGrid() Option {
	return func(o *options) { o.noGrid = true }
}

// WithXTicks labels each x value of a line chart, for nominal x data such as
// month names.
func WithXTicks(labels ...string) Option {
	return func(o *options) { o.xTicks = labels }
}

// WithTrend overlays a least-squares line on a scatter plot.
func WithTrend() Option {
	return func(o *options) { o.trend = true }
}

// WithPointColors colors each scatter point individually.
func WithPointColors(colors ...color.Color) Option {
	return func(o *options) { o.pointColors = colors }
}

// WithPointSizes sizes each scatter point individually, as areas in square points.
func WithPointSizes(sizes ...float64) Option {
	return func(o *options) { o.pointSizes = sizes }
}

// WithBins sets the histogram bin count.
func WithBins(n int) Option {
	return func(o *options) { o.bins = n }
}

// WithKDE overlays a density estimate on a histogram.
func WithKDE() Option {
	return func(o *options) { o.kde = true }
}

// WithColormap replaces the heatmap colormap.
func WithColormap(colors []style.Color) Option {
	return func(o *options) { o.colormap = colors }
}

// WithoutAnnotations disables heatmap cell labels.
func WithoutAnnotations() Option {
	return func(o *options) { o.noAnnotate = true }
}

// WithoutColorBar disables the heatmap colorbar.
func WithoutColorBar() Option {
	return func(o *options) { o.noColorBar = true }
}

// WithFormat sets the fmt verb used for heatmap cell labels.
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithGroupLabels names the boxplot groups.
func WithGroupLabels(labels ...string) Option {
	return func(o *options) { o.groupLabels = labels }
}
