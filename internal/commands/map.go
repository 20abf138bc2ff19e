package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akasprzok/datastory/internal/geo"
)

type MapCmd struct {
	File    string `arg:"" name:"file" help:"GeoJSON FeatureCollection." type:"existingfile"`
	Value   string `name:"value" help:"Property holding the shaded value." required:""`
	Label   string `name:"label" help:"Property holding the region name." required:""`
	Palette string `name:"palette" help:"Color scheme." default:"sequential" enum:"sequential,diverging"`
	Basemap bool   `name:"basemap" help:"Draw map tiles under the regions (HTML output only)."`
	Tiles   string `name:"tiles" help:"Tile provider." default:"carto-positron" enum:"carto-positron,osm"`
	Title   string `name:"title" help:"Map title." default:"Election Narrative"`
	Width   int    `name:"width" help:"Width in pixels." default:"950"`
	Height  int    `name:"height" help:"Height in pixels." default:"600"`
	Out     string `name:"out" short:"o" help:"Output file: .html for an interactive map, or an image format." required:"" type:"path"`
}

func (m *MapCmd) Run(ctx *Context) error {
	fc, err := geo.Load(m.File)
	if err != nil {
		return err
	}
	palette, err := geo.ParsePalette(m.Palette)
	if err != nil {
		return err
	}
	tiles, err := geo.ParseTiles(m.Tiles)
	if err != nil {
		return err
	}
	opts := geo.MapOptions{
		Title:   m.Title,
		Palette: palette,
		Tiles:   tiles,
		Width:   m.Width,
		Height:  m.Height,
		Style:   ctx.Style,
	}
	if m.Basemap {
		opts.Basemap = geo.BasemapOn
	}

	choropleth, err := geo.Choropleth(fc, m.Value, m.Label, opts)
	if err != nil {
		return fmt.Errorf("building map: %w", err)
	}
	log := ctx.Log.WithFields(map[string]any{
		"regions": len(choropleth.Regions),
		"low":     choropleth.Mapper.Low,
		"high":    choropleth.Mapper.High,
		"path":    m.Out,
	})

	if ext := strings.ToLower(filepath.Ext(m.Out)); ext == ".html" || ext == ".htm" {
		if err := writeHTML(choropleth, m.Out); err != nil {
			return err
		}
	} else {
		if m.Basemap {
			log.Warn("basemap tiles are only drawn in HTML output")
		}
		if err := choropleth.Figure.Save(m.Out); err != nil {
			return err
		}
	}
	log.Info("map written")
	fmt.Fprintln(ctx.stdout(), m.Out)
	return nil
}

func writeHTML(m *geo.Map, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return m.WriteHTML(f)
}
