package prometheus

import (
	"math"
	"sort"

	"github.com/prometheus/common/model"

	"github.com/akasprzok/datastory/internal/charts"
)

// SeriesName is the label set of m, or "value" for an unlabelled result.
func SeriesName(m model.Metric) string {
	if len(m) == 0 {
		return "value"
	}
	return m.String()
}

// MatrixSeries converts a range query result to chart time series, ordered by
// series name. NaN and infinite samples are dropped.
func MatrixSeries(matrix model.Matrix) []charts.TimeSeries {
	out := make([]charts.TimeSeries, 0, len(matrix))
	for _, stream := range matrix {
		ts := charts.TimeSeries{Name: SeriesName(stream.Metric)}
		for _, sample := range stream.Values {
			v := float64(sample.Value)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			ts.Times = append(ts.Times, sample.Timestamp.Time())
			ts.Values = append(ts.Values, v)
		}
		if len(ts.Values) > 0 {
			out = append(out, ts)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// VectorBars converts an instant query result to bar categories and values,
// ordered by series name. NaN and infinite samples are dropped.
func VectorBars(vector model.Vector) (categories []string, values []float64) {
	sorted := make(model.Vector, 0, len(vector))
	for _, s := range vector {
		v := float64(s.Value)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sorted = append(sorted, s)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return SeriesName(sorted[i].Metric) < SeriesName(sorted[j].Metric)
	})
	for _, s := range sorted {
		categories = append(categories, SeriesName(s.Metric))
		values = append(values, float64(s.Value))
	}
	return categories, values
}
