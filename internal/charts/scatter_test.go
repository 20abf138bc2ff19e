package charts

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vizerrors "github.com/akasprzok/datastory/internal/errors"
	"github.com/akasprzok/datastory/internal/style"
)

func TestFitTrend(t *testing.T) {
	fit, err := FitTrend([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, fit.Slope, 1e-9)
	assert.InDelta(t, 0.0, fit.Intercept, 1e-9)
	assert.InDelta(t, 12.0, fit.At(6), 1e-9)
}

func TestTrendLabel(t *testing.T) {
	assert.Equal(t, "Trend: y=2.00x+0.50", Trend{Slope: 2, Intercept: 0.5}.Label())
	assert.Equal(t, "Trend: y=-1.25x-3.00", Trend{Slope: -1.25, Intercept: -3}.Label())
}

func TestFitTrendErrors(t *testing.T) {
	_, err := FitTrend([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, vizerrors.ErrInvalidInput)

	_, err = FitTrend([]float64{3, 3, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, vizerrors.ErrInvalidInput)
}

func TestScatterTrend(t *testing.T) {
	c := New(nil)
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	f, err := c.Scatter(x, y, WithTrend())
	require.NoError(t, err)
	require.NotNil(t, f.Trend)
	require.NotNil(t, f.TrendLine)

	assert.InDelta(t, 2.0, f.Trend.Slope, 1e-9)
	assert.InDelta(t, 0.0, f.Trend.Intercept, 1e-9)
	assert.Equal(t, 1.0, f.TrendLine.XYs[0].X)
	assert.Equal(t, 5.0, f.TrendLine.XYs[1].X)
	assert.NotEmpty(t, f.TrendLine.LineStyle.Dashes)
}

func TestScatterWithoutTrend(t *testing.T) {
	c := New(nil)

	f, err := c.Scatter([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Nil(t, f.Trend)
	assert.Nil(t, f.TrendLine)
	assert.Equal(t, KindScatter, f.Kind)
}

func TestScatterPointStyles(t *testing.T) {
	c := New(nil)
	red := color.NRGBA{R: 255, A: 255}

	f, err := c.Scatter(
		[]float64{1, 2},
		[]float64{1, 2},
		WithPointColors(red, style.Color("#2E86AB")),
		WithPointSizes(20, 320),
	)
	require.NoError(t, err)
	require.NotNil(t, f.Points.GlyphStyleFunc)

	small := f.Points.GlyphStyleFunc(0)
	large := f.Points.GlyphStyleFunc(1)
	assert.Less(t, small.Radius, large.Radius)

	_, _, _, a := small.Color.RGBA()
	assert.Less(t, a, uint32(0xffff))
}

func TestScatterHighlightsAreLarger(t *testing.T) {
	c := New(nil)

	f, err := c.Scatter([]float64{1, 2, 3}, []float64{1, 2, 3}, WithHighlight(0, 2), WithColor("#06A77D"))
	require.NoError(t, err)
	require.NotNil(t, f.Highlights)
	assert.Len(t, f.Highlights.XYs, 2)
	assert.Equal(t, style.Color("#F18F01"), f.Highlights.GlyphStyle.Color)
	assert.Greater(t, f.Highlights.GlyphStyle.Radius, f.Points.GlyphStyle.Radius)
}

func TestScatterHighlightsOutgrowLargePoints(t *testing.T) {
	c := New(nil)

	f, err := c.Scatter(
		[]float64{1, 2, 3},
		[]float64{1, 2, 3},
		WithPointSizes(40, 400, 900),
		WithHighlight(0),
	)
	require.NoError(t, err)
	require.NotNil(t, f.Highlights)

	largest := f.Points.GlyphStyleFunc(2).Radius
	assert.Greater(t, f.Highlights.GlyphStyle.Radius, largest)
}

func TestScatterErrors(t *testing.T) {
	c := New(nil)

	_, err := c.Scatter([]float64{1, 2}, []float64{1, 2}, WithPointColors(color.Black))
	assert.ErrorIs(t, err, vizerrors.ErrInvalidInput)

	_, err = c.Scatter([]float64{1, 2}, []float64{1, 2}, WithPointSizes(1, 2, 3))
	assert.ErrorIs(t, err, vizerrors.ErrInvalidInput)

	_, err = c.Scatter([]float64{1, 2}, []float64{1, 2}, WithHighlight(-1))
	assert.ErrorIs(t, err, vizerrors.ErrInvalidInput)

	_, err = c.Scatter(nil, nil)
	assert.ErrorIs(t, err, vizerrors.ErrEmptyDataset)
}
