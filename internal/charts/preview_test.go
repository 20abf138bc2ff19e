package charts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akasprzok/datastory/internal/style"
)

func TestPreviewBars(t *testing.T) {
	cfg := style.Default()

	out := PreviewBars(cfg, []string{"north", "south"}, []float64{3, 5}, 40, 1)
	assert.NotEmpty(t, out)

	assert.Empty(t, PreviewBars(cfg, nil, nil, 40, -1))
}

func TestPreviewTimeSeries(t *testing.T) {
	cfg := style.Default()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	series := []TimeSeries{
		{Name: "up", Times: []time.Time{start, start.Add(time.Minute)}, Values: []float64{1, 2}},
		{Name: "down", Times: []time.Time{start, start.Add(time.Minute)}, Values: []float64{2, 1}},
	}

	chart, legend := PreviewTimeSeries(cfg, series, 80)
	assert.NotEmpty(t, chart)
	require.Len(t, legend, 2)
	assert.Equal(t, "down", legend[1].Name)
	assert.Equal(t, 1, legend[1].ColorIndex)
	assert.Equal(t, SeriesColor(cfg, 1), legend[1].Color)

	rendered := RenderLegend(legend)
	assert.Contains(t, rendered, "up")
	assert.Contains(t, rendered, "down")
}

func TestPreviewTimeSeriesEmpty(t *testing.T) {
	chart, legend := PreviewTimeSeries(style.Default(), nil, 80)
	assert.Empty(t, chart)
	assert.Nil(t, legend)
}
