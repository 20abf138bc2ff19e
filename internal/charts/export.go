package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Formats lists the accepted export formats.
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

// Encode writes the figure in the given format. Raster formats are rendered
// at the style's save DPI; vector formats ignore DPI. PDF output embeds its
// fonts.
func (f *Figure) Encode(w io.Writer, format string) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	var c interface {
		vg.CanvasSizer
		io.WriterTo
	}
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		img := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.SaveDPI))
		switch format {
		case "png":
			c = vgimg.PngCanvas{Canvas: img}
		case "jpg", "jpeg":
			c = vgimg.JpegCanvas{Canvas: img}
		default:
			c = vgimg.TiffCanvas{Canvas: img}
		}
	case "svg":
		c = vgsvg.New(f.Width, f.Height)
	case "pdf":
		pdf := vgpdf.New(f.Width, f.Height)
		pdf.EmbedFonts(true)
		c = pdf
	case "eps":
		c = vgeps.New(f.Width, f.Height)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	f.Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}

// Draw renders the figure onto dc. A colorbar, when present, takes a strip on
// the right.
func (f *Figure) Draw(dc draw.Canvas) {
	if f.ColorBar == nil {
		f.Plot.Draw(dc)
		return
	}
	width := dc.Max.X - dc.Min.X
	bar := width * colorBarFrac
	f.Plot.Draw(draw.Crop(dc, 0, -bar, 0, 0))
	f.ColorBar.Draw(draw.Crop(dc, width-bar, 0, 0, 0))
}

// Save writes the figure to path, choosing the format from its extension.
func (f *Figure) Save(path string) (err error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !slices.Contains(Formats, ext) {
		return fmt.Errorf("unsupported format %q for %s", ext, path)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return f.Encode(file, ext)
}
