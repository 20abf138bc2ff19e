// Package geo draws choropleth maps from GeoJSON feature collections.
package geo

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/akasprzok/datastory/internal/charts"
	vizerrors "github.com/akasprzok/datastory/internal/errors"
	"github.com/akasprzok/datastory/internal/style"
)

const (
	fillAlpha    = 0.7
	outlineWidth = 0.5
	dateLayout   = "2006-01-02"
)

// Region is one shaded feature of a map.
type Region struct {
	Label string
	Value float64
	Color style.Color

	// Geometry is in Web Mercator meters.
	Geometry   orb.Geometry
	Properties geojson.Properties
}

// Tooltip is the hover text of the region.
func (r Region) Tooltip() string {
	return fmt.Sprintf("Region: %s\nValue: %.1f", r.Label, r.Value)
}

// Map is a built choropleth.
type Map struct {
	Options MapOptions
	Mapper  ColorMapper
	Regions []Region

	// Bound covers all regions, in Web Mercator meters.
	Bound orb.Bound
	// LonLat is Bound in WGS84 degrees.
	LonLat orb.Bound

	// Figure is the static rendering. It carries no basemap.
	Figure *charts.Figure
}

// Choropleth shades each feature of fc by its valueCol property and labels it
// by labelCol. Geometries must be polygons or multipolygons in WGS84; they are
// reprojected to Web Mercator. fc is not modified.
func Choropleth(fc *geojson.FeatureCollection, valueCol, labelCol string, opts MapOptions) (*Map, error) {
	const op = "geo.Choropleth"
	if fc == nil || len(fc.Features) == 0 {
		return nil, vizerrors.Empty(op, "feature collection is empty")
	}
	o := opts.withDefaults()

	regions := make([]Region, 0, len(fc.Features))
	lo, hi := math.Inf(1), math.Inf(-1)
	var lonLat, bound orb.Bound
	for i, f := range fc.Features {
		props := dateProperties(f.Properties)
		raw, ok := props[valueCol]
		if !ok {
			return nil, vizerrors.Missing(op, valueCol)
		}
		label, ok := props[labelCol]
		if !ok {
			return nil, vizerrors.Missing(op, labelCol)
		}
		v, ok := number(raw)
		if !ok {
			return nil, vizerrors.Invalid(op, nil, "feature %d: %s value %v is not numeric", i, valueCol, raw)
		}
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			return nil, vizerrors.Invalid(op, nil, "feature %d: unsupported geometry %T", i, f.Geometry)
		}

		merc := project.Geometry(orb.Clone(f.Geometry), project.WGS84.ToMercator)
		if i == 0 {
			lonLat, bound = f.Geometry.Bound(), merc.Bound()
		} else {
			lonLat, bound = lonLat.Union(f.Geometry.Bound()), bound.Union(merc.Bound())
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
		regions = append(regions, Region{
			Label:      fmt.Sprint(label),
			Value:      v,
			Geometry:   merc,
			Properties: props,
		})
	}

	mapper := ColorMapper{Palette: o.Palette.Colors(), Low: lo, High: hi}
	for i := range regions {
		regions[i].Color = mapper.Map(regions[i].Value)
	}

	m := &Map{
		Options: o,
		Mapper:  mapper,
		Regions: regions,
		Bound:   bound,
		LonLat:  lonLat,
	}
	fig, err := m.figure()
	if err != nil {
		return nil, vizerrors.Invalid(op, err, "drawing regions")
	}
	m.Figure = fig
	return m, nil
}

func (m *Map) figure() (*charts.Figure, error) {
	o := m.Options
	dpi := float64(o.Style.Figure.DPI)
	fig := charts.New(o.Style).Blank(charts.KindMap,
		charts.WithTitle(o.Title),
		charts.WithSize(float64(o.Width)/dpi, float64(o.Height)/dpi),
	)

	outline := draw.LineStyle{Color: style.White, Width: vg.Points(outlineWidth)}
	for _, r := range m.Regions {
		for _, rings := range polygonRings(r.Geometry) {
			poly, err := plotter.NewPolygon(rings...)
			if err != nil {
				return nil, fmt.Errorf("region %q: %w", r.Label, err)
			}
			poly.Color = r.Color.Alpha(fillAlpha)
			poly.LineStyle = outline
			fig.Plot.Add(poly)
		}
	}

	fig.Plot.X.Tick.Marker = degreeTicks{lon: true}
	fig.Plot.Y.Tick.Marker = degreeTicks{}
	return fig, nil
}

// polygonRings returns the rings of each polygon in g as plot points.
func polygonRings(g orb.Geometry) [][]plotter.XYer {
	var polys []orb.Polygon
	switch g := g.(type) {
	case orb.Polygon:
		polys = []orb.Polygon{g}
	case orb.MultiPolygon:
		polys = g
	}
	out := make([][]plotter.XYer, 0, len(polys))
	for _, p := range polys {
		rings := make([]plotter.XYer, 0, len(p))
		for _, ring := range p {
			xys := make(plotter.XYs, len(ring))
			for i, pt := range ring {
				xys[i] = plotter.XY{X: pt.X(), Y: pt.Y()}
			}
			rings = append(rings, xys)
		}
		if len(rings) > 0 {
			out = append(out, rings)
		}
	}
	return out
}

// degreeTicks labels Web Mercator axes in degrees.
type degreeTicks struct {
	lon bool
}

func (t degreeTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		ticks[i].Label = degreeLabel(ticks[i].Value, t.lon)
	}
	return ticks
}

func degreeLabel(v float64, lon bool) string {
	if lon {
		deg := project.Mercator.ToWGS84(orb.Point{v, 0}).Lon()
		switch {
		case deg < 0:
			return fmt.Sprintf("%.1f°W", -deg)
		case deg > 0:
			return fmt.Sprintf("%.1f°E", deg)
		}
		return "0.0°"
	}
	deg := project.Mercator.ToWGS84(orb.Point{0, v}).Lat()
	switch {
	case deg < 0:
		return fmt.Sprintf("%.1f°S", -deg)
	case deg > 0:
		return fmt.Sprintf("%.1f°N", deg)
	}
	return "0.0°"
}

// dateProperties copies props, formatting time values as dates.
func dateProperties(props geojson.Properties) geojson.Properties {
	out := props.Clone()
	for k, v := range out {
		switch t := v.(type) {
		case time.Time:
			out[k] = t.Format(dateLayout)
		case *time.Time:
			if t != nil {
				out[k] = t.Format(dateLayout)
			}
		}
	}
	return out
}

func number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
