package charts

const (
	// ChartHeightRatio determines terminal preview height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for terminal preview height.
	MinChartHeight = 8

	// DefaultBins is the histogram bin count when none is given.
	DefaultBins = 30

	// KDESamples is the number of points the density curve is evaluated at.
	KDESamples = 200

	// RotateLabelsOver is the category label length past which vertical bar
	// labels are drawn at an angle.
	RotateLabelsOver = 8

	// HeatmapLevels is the number of colors sampled for a heatmap colormap.
	HeatmapLevels = 64
)

// Marker sizes follow the scatter convention of an area in square points.
const (
	pointArea      = 80
	highlightArea  = 150
	highlightScale = 1.5
)

// Fixed cosmetic parameters applied on top of the style configuration.
const (
	lineWidth      = 2.5
	lineAlpha      = 0.9
	lineMarkerSize = 5
	pointAlpha     = 0.6
	fillAlpha      = 0.7
	trendWidth     = 2
	trendAlpha     = 0.7
	kdeWidth       = 2.5
	whiskerWidth   = 1.5
	medianWidth    = 2
	outlierSize    = 6
	titlePad       = 20
	barFraction    = 0.8
	boxFraction    = 0.6
	plotAreaFrac   = 0.8
	colorBarFrac   = 0.12
)
