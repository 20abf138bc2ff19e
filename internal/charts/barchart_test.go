package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vizerrors "github.com/akasprzok/datastory/internal/errors"
	"github.com/akasprzok/datastory/internal/style"
)

func TestBar(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name       string
		categories []string
		values     []float64
		opts       []Option
		want       []style.Color
	}{
		{
			name:       "primary by default",
			categories: []string{"A", "B", "C"},
			values:     []float64{3, 1, 2},
			want:       []style.Color{"#2E86AB", "#2E86AB", "#2E86AB"},
		},
		{
			name:       "color override",
			categories: []string{"A", "B"},
			values:     []float64{3, 1},
			opts:       []Option{WithColor("#06A77D")},
			want:       []style.Color{"#06A77D", "#06A77D"},
		},
		{
			name:       "highlight wins over override",
			categories: []string{"A", "B", "C"},
			values:     []float64{3, 1, 2},
			opts:       []Option{WithColor("#06A77D"), WithHighlight(1)},
			want:       []style.Color{"#6C757D", "#F18F01", "#6C757D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := c.Bar(tt.categories, tt.values, tt.opts...)
			require.NoError(t, err)
			require.Len(t, f.Bars, len(tt.want))

			for i, bc := range f.Bars {
				assert.Equal(t, tt.want[i], bc.Color, "bar %d", i)
				assert.Equal(t, float64(i), bc.XMin)
			}
			assert.Equal(t, KindBar, f.Kind)
		})
	}
}

func TestBarValueAxisStartsAtZero(t *testing.T) {
	c := New(nil)

	f, err := c.Bar([]string{"A", "B"}, []float64{5, 10})
	require.NoError(t, err)
	assert.Equal(t, 0.0, f.Plot.Y.Min)
	assert.GreaterOrEqual(t, f.Plot.Y.Max, 10.0)

	f, err = c.Bar([]string{"A", "B"}, []float64{-1, -2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, f.Plot.Y.Min)
	assert.Equal(t, 1.0, f.Plot.Y.Max)
}

func TestBarHorizontal(t *testing.T) {
	c := New(nil)

	f, err := c.Bar([]string{"North", "South"}, []float64{4, 7}, Horizontal())
	require.NoError(t, err)

	for _, bc := range f.Bars {
		assert.True(t, bc.Horizontal)
	}
	assert.Equal(t, 0.0, f.Plot.X.Min)
	assert.Equal(t, AxisX, f.GridAxis)
	require.NotNil(t, f.Grid)
	assert.Nil(t, f.Grid.Horizontal.Color)
}

func TestBarGridOnValueAxis(t *testing.T) {
	c := New(nil)

	f, err := c.Bar([]string{"A"}, []float64{1})
	require.NoError(t, err)
	require.NotNil(t, f.Grid)
	assert.Equal(t, AxisY, f.GridAxis)
	assert.Nil(t, f.Grid.Vertical.Color)

	f, err = c.Bar([]string{"A"}, []float64{1}, WithoutGrid())
	require.NoError(t, err)
	assert.Nil(t, f.Grid)
}

func TestBarRotatesLongLabels(t *testing.T) {
	c := New(nil)

	f, err := c.Bar([]string{"Northeastern", "Southwestern"}, []float64{1, 2})
	require.NoError(t, err)
	assert.NotZero(t, f.Plot.X.Tick.Label.Rotation)

	f, err = c.Bar([]string{"Q1", "Q2"}, []float64{1, 2})
	require.NoError(t, err)
	assert.Zero(t, f.Plot.X.Tick.Label.Rotation)
}

func TestBarErrors(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name       string
		categories []string
		values     []float64
		opts       []Option
		kind       vizerrors.Kind
	}{
		{"length mismatch", []string{"A"}, []float64{1, 2}, nil, vizerrors.InvalidInput},
		{"empty", nil, nil, nil, vizerrors.EmptyDataset},
		{"highlight out of range", []string{"A"}, []float64{1}, []Option{WithHighlight(3)}, vizerrors.InvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Bar(tt.categories, tt.values, tt.opts...)
			require.Error(t, err)
			assert.Equal(t, tt.kind, vizerrors.KindOf(err))
		})
	}
}
