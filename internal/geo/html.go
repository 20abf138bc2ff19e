package geo

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/project"

	"github.com/akasprzok/datastory/internal/style"
)

// maxTiles bounds the number of basemap tiles fetched by one page.
const maxTiles = 36

var pageTmpl = template.Must(template.New("map.html").Parse(page))

const page = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { background: {{.Background}}; color: {{.Text}}; font-family: "Liberation Sans", Arial, sans-serif; }
h1 { font-size: 16px; font-weight: bold; }
path:hover { fill-opacity: 0.9; stroke-width: 1.5; }
.attribution { font-size: 10px; color: {{.Neutral}}; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
{{- range .Tiles}}
<image href="{{.URL}}" x="{{.X}}" y="{{.Y}}" width="{{.Size}}" height="{{.Size}}" preserveAspectRatio="none"/>
{{- end}}
{{- range .Regions}}
<path d="{{.Path}}" fill="{{.Fill}}" fill-opacity="0.7" fill-rule="evenodd" stroke="#FFFFFF" stroke-width="0.5"><title>{{.Tooltip}}</title></path>
{{- end}}
</svg>
{{- if .Attribution}}
<p class="attribution">{{.Attribution}}</p>
{{- end}}
</body>
</html>
`

type pageData struct {
	Title            string
	Width, Height    int
	Background, Text string
	Neutral          string
	Attribution      string
	Tiles            []tileImage
	Regions          []regionPath
}

type tileImage struct {
	URL  string
	X, Y string
	Size string
}

type regionPath struct {
	Path    string
	Fill    string
	Tooltip string
}

// WriteHTML writes the map as a standalone HTML page holding an SVG. Each
// region shows its tooltip on hover. With the basemap on, tiles from the
// provider are placed under the regions.
func (m *Map) WriteHTML(w io.Writer) error {
	o := m.Options
	fr := newFrame(m.Bound, o.Width, o.Height)
	data := pageData{
		Title:      o.Title,
		Width:      o.Width,
		Height:     o.Height,
		Background: string(o.Style.Color(style.Background)),
		Text:       string(o.Style.Color(style.Text)),
		Neutral:    string(o.Style.Color(style.Neutral)),
	}
	if o.Basemap == BasemapOn {
		data.Tiles = m.tiles(fr)
		data.Attribution = o.Tiles.Attribution
	}
	for _, r := range m.Regions {
		data.Regions = append(data.Regions, regionPath{
			Path:    fr.path(r.Geometry),
			Fill:    string(r.Color),
			Tooltip: r.Tooltip(),
		})
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("writing map page: %w", err)
	}
	return nil
}

// tiles covers the map bound at the deepest zoom that stays within maxTiles.
func (m *Map) tiles(fr frame) []tileImage {
	nw := orb.Point{m.LonLat.Min.Lon(), m.LonLat.Max.Lat()}
	se := orb.Point{m.LonLat.Max.Lon(), m.LonLat.Min.Lat()}

	var z maptile.Zoom
	for zoom := maptile.Zoom(m.Options.Tiles.MaxZoom); zoom > 0; zoom-- {
		a, b := maptile.At(nw, zoom), maptile.At(se, zoom)
		if int(b.X-a.X+1)*int(b.Y-a.Y+1) <= maxTiles {
			z = zoom
			break
		}
	}
	a, b := maptile.At(nw, z), maptile.At(se, z)

	var out []tileImage
	for y := a.Y; y <= b.Y; y++ {
		for x := a.X; x <= b.X; x++ {
			t := maptile.New(x, y, z)
			tb := t.Bound()
			topLeft := project.WGS84.ToMercator(orb.Point{tb.Min.Lon(), tb.Max.Lat()})
			bottomRight := project.WGS84.ToMercator(orb.Point{tb.Max.Lon(), tb.Min.Lat()})
			px, py := fr.point(topLeft)
			size := (bottomRight.X() - topLeft.X()) * fr.scale
			out = append(out, tileImage{
				URL:  m.Options.Tiles.TileURL(uint32(z), x, y),
				X:    num(px),
				Y:    num(py),
				Size: num(size),
			})
		}
	}
	return out
}

// frame maps Web Mercator meters onto the page, preserving aspect ratio and
// centering the bound.
type frame struct {
	minX, maxY float64
	scale      float64
	offX, offY float64
}

func newFrame(b orb.Bound, width, height int) frame {
	dx, dy := b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y()
	fr := frame{minX: b.Min.X(), maxY: b.Max.Y(), scale: 1}
	if dx <= 0 && dy <= 0 {
		return fr
	}
	sx, sy := math.Inf(1), math.Inf(1)
	if dx > 0 {
		sx = float64(width) / dx
	}
	if dy > 0 {
		sy = float64(height) / dy
	}
	fr.scale = math.Min(sx, sy)
	fr.offX = (float64(width) - dx*fr.scale) / 2
	fr.offY = (float64(height) - dy*fr.scale) / 2
	return fr
}

func (f frame) point(p orb.Point) (x, y float64) {
	return f.offX + (p.X()-f.minX)*f.scale, f.offY + (f.maxY-p.Y())*f.scale
}

// path renders polygon rings as SVG path data.
func (f frame) path(g orb.Geometry) string {
	var sb strings.Builder
	for _, rings := range polygonRings(g) {
		for _, ring := range rings {
			for i := 0; i < ring.Len(); i++ {
				rx, ry := ring.XY(i)
				x, y := f.point(orb.Point{rx, ry})
				if i == 0 {
					sb.WriteString("M")
				} else {
					sb.WriteString("L")
				}
				sb.WriteString(num(x))
				sb.WriteString(" ")
				sb.WriteString(num(y))
			}
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func num(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
