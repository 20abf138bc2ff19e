package style

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hex color value such as "#2E86AB". It satisfies image/color.Color,
// so role colors can be handed directly to plot styles.
type Color string

// RGBA implements color.Color. Unparseable values render as opaque black.
func (c Color) RGBA() (r, g, b, a uint32) {
	cf, err := colorful.Hex(string(c))
	if err != nil {
		return 0, 0, 0, 0xffff
	}
	return cf.RGBA()
}

// Valid reports whether c parses as a hex color.
func (c Color) Valid() bool {
	_, err := colorful.Hex(string(c))
	return err == nil
}

// Alpha returns c with the given opacity in [0, 1].
func (c Color) Alpha(alpha float64) color.Color {
	cf, err := colorful.Hex(string(c))
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// Light reports whether c is light enough that dark text should be drawn on it.
func (c Color) Light() bool {
	cf, err := colorful.Hex(string(c))
	if err != nil {
		return false
	}
	l, _, _ := cf.Lab()
	return l > 0.6
}

func fromColorful(c colorful.Color) Color {
	return Color(c.Clamped().Hex())
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// White and Black are fixed colors used for median lines, outlines and labels.
const (
	White Color = "#FFFFFF"
	Black Color = "#000000"
)
