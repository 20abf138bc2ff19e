package geo

import (
	"fmt"
	"strings"

	"github.com/akasprzok/datastory/internal/style"
)

// PaletteKind selects the choropleth color scheme.
type PaletteKind int

const (
	Sequential PaletteKind = iota
	Diverging
)

func (k PaletteKind) String() string {
	if k == Diverging {
		return "diverging"
	}
	return "sequential"
}

// Colors returns the palette the kind maps values onto.
func (k PaletteKind) Colors() []style.Color {
	if k == Diverging {
		return append([]style.Color(nil), divergingColors...)
	}
	return append([]style.Color(nil), sequentialColors...)
}

// ParsePalette converts "sequential" or "diverging".
func ParsePalette(s string) (PaletteKind, error) {
	switch strings.ToLower(s) {
	case "", "sequential":
		return Sequential, nil
	case "diverging":
		return Diverging, nil
	default:
		return Sequential, fmt.Errorf("unknown palette %q", s)
	}
}

var (
	sequentialColors = []style.Color{"#eff3ff", "#bdd7e7", "#6baed6", "#2171b5", "#084594"}
	divergingColors  = []style.Color{"#ca0020", "#f4a582", "#f7f7f7", "#92c5de", "#0571b0"}
)

// Basemap toggles the background tile layer.
type Basemap int

const (
	BasemapOff Basemap = iota
	BasemapOn
)

// TileProvider is an XYZ raster tile source.
type TileProvider struct {
	Name        string
	URL         string // template with {z}, {x} and {y}
	Attribution string
	MaxZoom     int
}

var (
	CartoPositron = TileProvider{
		Name:        "carto-positron",
		URL:         "https://a.basemaps.cartocdn.com/light_all/{z}/{x}/{y}.png",
		Attribution: "© OpenStreetMap contributors © CARTO",
		MaxZoom:     20,
	}
	OpenStreetMap = TileProvider{
		Name:        "osm",
		URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: "© OpenStreetMap contributors",
		MaxZoom:     19,
	}
)

// ParseTiles looks up a tile provider by name.
func ParseTiles(name string) (TileProvider, error) {
	switch strings.ToLower(name) {
	case "", CartoPositron.Name:
		return CartoPositron, nil
	case OpenStreetMap.Name:
		return OpenStreetMap, nil
	default:
		return TileProvider{}, fmt.Errorf("unknown tile provider %q", name)
	}
}

// TileURL fills the provider template for one tile.
func (p TileProvider) TileURL(z, x, y uint32) string {
	return strings.NewReplacer(
		"{z}", fmt.Sprint(z),
		"{x}", fmt.Sprint(x),
		"{y}", fmt.Sprint(y),
	).Replace(p.URL)
}

const (
	DefaultTitle  = "Election Narrative"
	DefaultWidth  = 950
	DefaultHeight = 600
)

// MapOptions configures Choropleth. Zero fields take their defaults, except
// Basemap, whose zero value is off.
type MapOptions struct {
	Title   string
	Palette PaletteKind
	Basemap Basemap
	Tiles   TileProvider

	// Width and Height are in pixels.
	Width  int
	Height int

	// Style is the house style of the static figure. Nil means style.Default().
	Style *style.Config
}

// DefaultMapOptions returns the options of a sequential map over CartoDB
// Positron tiles.
func DefaultMapOptions() MapOptions {
	return MapOptions{
		Title:   DefaultTitle,
		Palette: Sequential,
		Basemap: BasemapOn,
		Tiles:   CartoPositron,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
	}
}

func (o MapOptions) withDefaults() MapOptions {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Tiles.URL == "" {
		o.Tiles = CartoPositron
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Style == nil {
		o.Style = style.Default()
	}
	return o
}
