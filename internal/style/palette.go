// Package style holds the house colors and the formatting defaults that every
// chart is built with.
package style

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Role is a semantic color name, decoupling visual meaning from hue.
type Role string

const (
	Primary    Role = "primary"
	Secondary  Role = "secondary"
	Accent     Role = "accent"
	Success    Role = "success"
	Alert      Role = "alert"
	Neutral    Role = "neutral"
	Background Role = "background"
	Text       Role = "text"
)

// roleOrder is the display order of the built-in roles.
var roleOrder = []Role{Primary, Secondary, Accent, Success, Alert, Neutral, Background, Text}

// Palette maps roles to colors.
type Palette map[Role]Color

var defaultColors = Palette{
	Primary:    "#2E86AB", // blue
	Secondary:  "#A23B72", // violet, for contrast
	Accent:     "#F18F01", // orange, for highlights
	Success:    "#06A77D",
	Alert:      "#D00000",
	Neutral:    "#6C757D",
	Background: "#FFFFFF",
	Text:       "#212529",
}

// categorical is the cycle used for multiple series or categories.
var categorical = []Color{
	"#2E86AB", "#A23B72", "#F18F01",
	"#06A77D", "#C73E1D", "#6C757D",
}

// DefaultPalette returns a copy of the built-in role colors.
func DefaultPalette() Palette {
	p := make(Palette, len(defaultColors))
	for k, v := range defaultColors {
		p[k] = v
	}
	return p
}

// Color returns the color configured for role. An unrecognized role falls
// back to the primary color rather than failing; use Lookup to tell the two
// cases apart.
func (p Palette) Color(role Role) Color {
	if c, ok := p[role]; ok {
		return c
	}
	if c, ok := p[Primary]; ok {
		return c
	}
	return defaultColors[Primary]
}

// Lookup returns the color configured for role and whether it exists.
func (p Palette) Lookup(role Role) (Color, bool) {
	c, ok := p[role]
	return c, ok
}

// Roles lists the palette's roles, built-in roles first in their canonical
// order, then any extra roles alphabetically.
func (p Palette) Roles() []Role {
	roles := make([]Role, 0, len(p))
	known := make(map[Role]bool, len(roleOrder))
	for _, r := range roleOrder {
		known[r] = true
		if _, ok := p[r]; ok {
			roles = append(roles, r)
		}
	}
	extra := make([]Role, 0)
	for r := range p {
		if !known[r] {
			extra = append(extra, r)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(roles, extra...)
}

// ColorFor returns the built-in color for role, or primary when role is unknown.
func ColorFor(role Role) Color {
	return defaultColors.Color(role)
}

// CategoricalColors returns n colors from the built-in categorical cycle.
// See Cycle for the handling of n.
func CategoricalColors(n int) []Color {
	return Cycle(categorical, n)
}

// Cycle returns the first n entries of colors, wrapping around when n exceeds
// len(colors). A negative n returns a copy of the whole sequence.
func Cycle(colors []Color, n int) []Color {
	if n < 0 {
		n = len(colors)
	}
	out := make([]Color, n)
	if len(colors) == 0 {
		return out[:0]
	}
	for i := range out {
		out[i] = colors[i%len(colors)]
	}
	return out
}

// blues are the ColorBrewer "Blues" anchors, light to dark.
var blues = ramp{
	{0, "#F7FBFF"}, {0.125, "#DEEBF7"}, {0.25, "#C6DBEF"}, {0.375, "#9ECAE1"},
	{0.5, "#6BAED6"}, {0.625, "#4292C6"}, {0.75, "#2171B5"}, {0.875, "#08519C"},
	{1, "#08306B"},
}

// DefaultSequentialSize and DefaultDivergingSize are the palette lengths used
// when no explicit size is requested.
const (
	DefaultSequentialSize = 8
	DefaultDivergingSize  = 11
)

// Sequential returns n colors from the Blues ramp, sampled away from both
// ends so the lightest entry is still visible on white.
func Sequential(n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	for i := range out {
		out[i] = fromColorful(blues.at(float64(i+1) / float64(n+1)))
	}
	return out
}

// Diverging returns n colors running from blue (hue 240) through a light
// neutral to red (hue 10), blended in HSLuv space at the ends.
func Diverging(n int) []Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Color{fromColorful(divergingRamp().at(0.5))}
	}
	r := divergingRamp()
	out := make([]Color, n)
	for i := range out {
		out[i] = fromColorful(r.at(float64(i) / float64(n-1)))
	}
	return out
}

func divergingRamp() ramp {
	neg := colorful.HSLuv(240, 0.75, 0.5)
	pos := colorful.HSLuv(10, 0.75, 0.5)
	lightNeg := colorful.HSLuv(240, 0.75, 0.95)
	lightPos := colorful.HSLuv(10, 0.75, 0.95)
	mid := colorful.Color{R: 0.95, G: 0.95, B: 0.95}
	return ramp{
		{0, fromColorful(neg)},
		{0.49, fromColorful(lightNeg)},
		{0.5, fromColorful(mid)},
		{0.51, fromColorful(lightPos)},
		{1, fromColorful(pos)},
	}
}

type stop struct {
	at    float64
	color Color
}

// ramp is a piecewise-linear color map over [0, 1], blended in RGB.
type ramp []stop

func (r ramp) at(t float64) colorful.Color {
	t = clamp01(t)
	for i := 1; i < len(r); i++ {
		if t <= r[i].at {
			lo, hi := r[i-1], r[i]
			a, _ := colorful.Hex(string(lo.color))
			b, _ := colorful.Hex(string(hi.color))
			span := hi.at - lo.at
			if span == 0 {
				return b
			}
			return a.BlendRgb(b, (t-lo.at)/span)
		}
	}
	c, _ := colorful.Hex(string(r[len(r)-1].color))
	return c
}
