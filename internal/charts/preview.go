package charts

import (
	"fmt"
	"math"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/akasprzok/datastory/internal/style"
)

// LegendEntry describes one series of a terminal preview.
type LegendEntry struct {
	Name       string
	ColorIndex int
	Color      lipgloss.Color
}

// PreviewBars renders categories as a horizontal terminal bar chart using the
// same color rules as Bar: highlight >= 0 makes that bar accent and the rest
// neutral.
func PreviewBars(cfg *style.Config, categories []string, values []float64, width, highlight int) string {
	barData := make([]barchart.BarData, 0, len(values))
	for i, v := range values {
		if i >= len(categories) {
			break
		}
		role := style.Primary
		switch {
		case highlight >= 0 && i == highlight:
			role = style.Accent
		case highlight >= 0:
			role = style.Neutral
		}
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%.4g)", categories[i], v),
			Values: []barchart.BarValue{
				{Name: categories[i], Value: v, Style: RoleStyle(cfg, role)},
			},
		})
	}
	if len(barData) == 0 {
		return ""
	}

	bc := barchart.New(width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}

// PreviewTimeSeries renders series as a braille line chart and returns the
// chart and legend separately.
func PreviewTimeSeries(cfg *style.Config, series []TimeSeries, width int) (chart string, legend []LegendEntry) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
	}
	if math.IsInf(minY, 1) {
		return "", nil
	}
	if minY == maxY {
		maxY = minY + 1
	}

	height := max(width/ChartHeightRatio, MinChartHeight)

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = RoleStyle(cfg, style.Neutral)
	lc.LabelStyle = RoleStyle(cfg, style.Text)
	lc.XLabelFormatter = timeserieslinechart.HourTimeLabelFormatter()
	lc.SetYRange(minY, maxY)     // set expected Y values first
	lc.SetViewYRange(minY, maxY) // the view range must lie within the expected range
	lc.SetStyle(RoleStyle(cfg, style.Primary))
	lc.SetLineStyle(runes.ThinLineStyle)

	for i, s := range series {
		st := SeriesStyle(cfg, i)
		lc.SetDataSetStyle(s.Name, st)
		for j, t := range s.Times {
			if j >= len(s.Values) {
				break
			}
			lc.PushDataSet(s.Name, timeserieslinechart.TimePoint{Time: t, Value: s.Values[j]})
		}
		legend = append(legend, LegendEntry{Name: s.Name, ColorIndex: i, Color: SeriesColor(cfg, i)})
	}

	lc.DrawBrailleAll()

	return lc.View(), legend
}

// RenderLegend formats legend entries one per line with a color swatch.
func RenderLegend(entries []LegendEntry) string {
	out := ""
	for i, e := range entries {
		if i > 0 {
			out += "\n"
		}
		out += lipgloss.NewStyle().Foreground(e.Color).Render(fmt.Sprintf("%c %s", runes.FullBlock, e.Name))
	}
	return out
}
