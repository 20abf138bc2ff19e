package commands

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/akasprzok/datastory/internal/charts"
	"github.com/akasprzok/datastory/internal/logger"
)

// galleryChart is one figure of the demo gallery.
type galleryChart struct {
	name  string
	build func(c *charts.Charter) (*charts.Figure, error)
}

// gallery returns the demo figures. The data is drawn from a generator seeded
// with seed, so a given seed always produces the same gallery.
func gallery(seed uint64) []galleryChart {
	r := rand.New(rand.NewPCG(seed, seed))
	normal := func(n int, mean, sd float64) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = mean + sd*r.NormFloat64()
		}
		return out
	}

	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	sales := []float64{120, 135, 125, 160, 180, 195}

	products := []string{"Product A", "Product B", "Product C", "Product D", "Product E"}
	revenues := []float64{450, 320, 580, 210, 390}

	budget := normal(100, 50, 10)
	revenue := make([]float64, len(budget))
	for i, b := range budget {
		revenue[i] = b*1.5 + 15*r.NormFloat64() + 20
	}

	perf := mat.NewDense(5, 6, nil)
	perf.Apply(func(_, _ int, _ float64) float64 { return r.Float64() * 100 }, perf)

	ages := normal(500, 35, 10)
	methods := [][]float64{normal(100, 100, 15), normal(100, 110, 20), normal(100, 95, 12)}

	monthX := make([]float64, len(months))
	for i := range monthX {
		monthX[i] = float64(i)
	}

	return []galleryChart{
		{"line", func(c *charts.Charter) (*charts.Figure, error) {
			return c.Line(monthX, sales,
				charts.WithTitle("Sales Trend (2024)"),
				charts.WithXLabel("Month"),
				charts.WithYLabel("Sales (K€)"),
				charts.WithXTicks(months...),
				charts.WithHighlight(5),
			)
		}},
		{"bar", func(c *charts.Charter) (*charts.Figure, error) {
			return c.Bar(products, revenues,
				charts.WithTitle("Revenue by Product"),
				charts.WithYLabel("Revenue (K€)"),
				charts.Horizontal(),
				charts.WithHighlight(2),
			)
		}},
		{"scatter", func(c *charts.Charter) (*charts.Figure, error) {
			return c.Scatter(budget, revenue,
				charts.WithTitle("Correlation: Marketing Budget vs. Sales"),
				charts.WithXLabel("Marketing Budget (K€)"),
				charts.WithYLabel("Sales (K€)"),
				charts.WithTrend(),
			)
		}},
		{"heatmap", func(c *charts.Charter) (*charts.Figure, error) {
			return c.Heatmap(perf,
				[]string{"Team A", "Team B", "Team C", "Team D", "Team E"},
				[]string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q6"},
				charts.WithTitle("Performance by Team and Quarter"),
				charts.WithXLabel("Quarter"),
				charts.WithYLabel("Team"),
				charts.WithFormat("%.0f"),
			)
		}},
		{"histogram", func(c *charts.Charter) (*charts.Figure, error) {
			return c.Histogram(ages,
				charts.WithBins(30),
				charts.WithTitle("Customer Age Distribution"),
				charts.WithXLabel("Age"),
				charts.WithYLabel("Customers"),
				charts.WithKDE(),
			)
		}},
		{"boxplot", func(c *charts.Charter) (*charts.Figure, error) {
			return c.Boxplot(methods,
				charts.WithGroupLabels("Method A", "Method B", "Method C"),
				charts.WithTitle("Results by Method"),
				charts.WithYLabel("Performance Score"),
			)
		}},
	}
}

// renderGallery writes every gallery figure to dir as demo_<name>.<format>
// and returns the paths written.
func renderGallery(c *charts.Charter, dir, format string, seed uint64, log *logger.Logger) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	var paths []string
	for _, g := range gallery(seed) {
		fig, err := g.build(c)
		if err != nil {
			return paths, fmt.Errorf("building %s chart: %w", g.name, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("demo_%s.%s", g.name, format))
		if err := fig.Save(path); err != nil {
			return paths, fmt.Errorf("saving %s chart: %w", g.name, err)
		}
		log.WithFields(map[string]any{"chart": g.name, "path": path}).Info("chart written")
		paths = append(paths, path)
	}
	return paths, nil
}
