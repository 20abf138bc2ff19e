package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	vizerrors "github.com/akasprzok/datastory/internal/errors"
	"github.com/akasprzok/datastory/internal/style"
)

func TestHeatmap(t *testing.T) {
	c := New(nil)
	data := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	f, err := c.Heatmap(data, []string{"top", "bottom"}, []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, KindHeatmap, f.Kind)
	assert.Equal(t, 1.0, f.HeatMap.Min)
	assert.Equal(t, 6.0, f.HeatMap.Max)
	require.NotNil(t, f.Cells)
	assert.Len(t, f.Cells.Labels, 6)

	for i, l := range f.Cells.Labels {
		switch l {
		case "1.00":
			assert.Equal(t, c.Style().Color(style.Text), f.Cells.TextStyle[i].Color, "light cell")
		case "6.00":
			assert.Equal(t, style.White, f.Cells.TextStyle[i].Color, "dark cell")
		}
	}

	// Row 0 is drawn at the top.
	yTicks := f.Plot.Y.Tick.Marker.Ticks(0, 1)
	require.Len(t, yTicks, 2)
	assert.Equal(t, "bottom", yTicks[0].Label)
	assert.Equal(t, "top", yTicks[1].Label)

	grid := matrixGrid{m: data}
	assert.Equal(t, 4.0, grid.Z(0, 0))
	assert.Equal(t, 3.0, grid.Z(2, 1))
}

func TestHeatmapDefaultsAndOptions(t *testing.T) {
	c := New(nil)
	data := mat.NewDense(2, 2, []float64{0.5, math.NaN(), 0.25, 1})

	f, err := c.Heatmap(data, nil, nil, WithFormat("%.1f"))
	require.NoError(t, err)
	assert.Len(t, f.Cells.Labels, 3)
	assert.Contains(t, f.Cells.Labels, "0.5")

	xTicks := f.Plot.X.Tick.Marker.Ticks(0, 1)
	assert.Equal(t, "0", xTicks[0].Label)

	f, err = c.Heatmap(data, nil, nil, WithoutAnnotations(), WithColormap(style.Diverging(5)))
	require.NoError(t, err)
	assert.Nil(t, f.Cells)
}

func TestHeatmapFlatMatrixUsesFirstColor(t *testing.T) {
	c := New(nil)
	data := mat.NewDense(2, 2, []float64{5, 5, 5, 5})

	f, err := c.Heatmap(data, nil, nil, WithoutAnnotations(), WithoutColorBar(), WithSize(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 5.0, f.HeatMap.Min)
	assert.Greater(t, f.HeatMap.Max, f.HeatMap.Min)

	img := vgimg.New(3*vg.Inch, 3*vg.Inch)
	f.Draw(draw.New(img))
	bounds := img.Image().Bounds()
	// Sample inside one cell, clear of the seams between cells.
	r, g, b, _ := img.Image().At(bounds.Dx()*6/10, bounds.Dy()*4/10).RGBA()

	wr, wg, wb, _ := style.Sequential(HeatmapLevels)[0].RGBA()
	assert.InDelta(t, wr>>8, r>>8, 2)
	assert.InDelta(t, wg>>8, g>>8, 2)
	assert.InDelta(t, wb>>8, b>>8, 2)
}

func TestHeatmapColorBar(t *testing.T) {
	c := New(nil)
	data := mat.NewDense(1, 3, []float64{-2, 0, 4})

	f, err := c.Heatmap(data, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, f.ColorBar)

	ymin, ymax := f.ColorBar.Y.Min, f.ColorBar.Y.Max
	assert.LessOrEqual(t, ymin, -2.0)
	assert.GreaterOrEqual(t, ymax, 4.0)

	f, err = c.Heatmap(data, nil, nil, WithoutColorBar())
	require.NoError(t, err)
	assert.Nil(t, f.ColorBar)
}

func TestRampGrid(t *testing.T) {
	g := rampGrid{n: 5, lo: 10, hi: 20}
	cols, rows := g.Dims()
	assert.Equal(t, 1, cols)
	assert.Equal(t, 5, rows)
	assert.Equal(t, 10.0, g.Z(0, 0))
	assert.Equal(t, 20.0, g.Z(0, 4))

	var _ plotter.GridXYZ = g
}

func TestHeatmapErrors(t *testing.T) {
	c := New(nil)

	_, err := c.Heatmap(nil, nil, nil)
	assert.ErrorIs(t, err, vizerrors.ErrEmptyDataset)

	_, err = c.Heatmap(mat.NewDense(1, 2, []float64{1, 2}), []string{"a", "b"}, nil)
	assert.ErrorIs(t, err, vizerrors.ErrInvalidInput)

	_, err = c.Heatmap(mat.NewDense(1, 2, []float64{1, math.Inf(1)}), nil, nil)
	assert.ErrorIs(t, err, vizerrors.ErrInvalidInput)

	_, err = c.Heatmap(mat.NewDense(1, 1, []float64{math.NaN()}), nil, nil)
	assert.ErrorIs(t, err, vizerrors.ErrEmptyDataset)
}

func TestColormapIndex(t *testing.T) {
	cm := Colormap(style.Sequential(4))

	assert.Equal(t, 0, cm.index(0, 0, 1))
	assert.Equal(t, 3, cm.index(1, 0, 1))
	// 0.9 of the way along four entries rounds up to the last one.
	assert.Equal(t, 3, cm.index(0.9, 0, 1))
	assert.Equal(t, 1, cm.index(0.4, 0, 1))
	assert.Equal(t, 0, cm.index(5, 5, 5))
	assert.Len(t, cm.Colors(), 4)
}
