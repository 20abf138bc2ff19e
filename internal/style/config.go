package style

import (
	"gonum.org/v1/plot/vg"
)

// Config is the set of rendering defaults every chart is built with. It is a
// plain value: charts receive it explicitly and never read ambient state.
type Config struct {
	Font        FontConfig   `yaml:"font" toml:"font"`
	Colors      Palette      `yaml:"colors" toml:"colors" validate:"required,dive,keys,required,endkeys,hexcolor"`
	Categorical []Color      `yaml:"categorical" toml:"categorical" validate:"min=1,dive,hexcolor"`
	Grid        GridConfig   `yaml:"grid" toml:"grid"`
	Lines       LineConfig   `yaml:"lines" toml:"lines"`
	Spines      SpineConfig  `yaml:"spines" toml:"spines"`
	Figure      FigureConfig `yaml:"figure" toml:"figure"`
}

// FontConfig sizes are in points.
type FontConfig struct {
	Family     string  `yaml:"family" toml:"family" validate:"oneof=sans-serif serif monospace"`
	Size       float64 `yaml:"size" toml:"size" validate:"gt=0"`
	TitleSize  float64 `yaml:"title_size" toml:"title_size" validate:"gt=0"`
	LabelSize  float64 `yaml:"label_size" toml:"label_size" validate:"gt=0"`
	TickSize   float64 `yaml:"tick_size" toml:"tick_size" validate:"gt=0"`
	LegendSize float64 `yaml:"legend_size" toml:"legend_size" validate:"gt=0"`
}

// Variant maps the font family onto the bundled Liberation variants.
func (f FontConfig) Variant() string {
	switch f.Family {
	case "serif":
		return "Serif"
	case "monospace":
		return "Mono"
	default:
		return "Sans"
	}
}

// GridConfig describes the background grid. Axis selects which value axis
// gets grid lines when a chart has no preference of its own.
type GridConfig struct {
	Show  bool    `yaml:"show" toml:"show"`
	Color Color   `yaml:"color" toml:"color" validate:"hexcolor"`
	Width float64 `yaml:"width" toml:"width" validate:"gt=0"`
	Alpha float64 `yaml:"alpha" toml:"alpha" validate:"gte=0,lte=1"`
	Axis  string  `yaml:"axis" toml:"axis" validate:"oneof=x y both"`
}

// LineConfig sizes are in points. MarkerSize is a marker diameter.
type LineConfig struct {
	Width      float64 `yaml:"width" toml:"width" validate:"gt=0"`
	MarkerSize float64 `yaml:"marker_size" toml:"marker_size" validate:"gt=0"`
	AxisWidth  float64 `yaml:"axis_width" toml:"axis_width" validate:"gte=0"`
}

// SpineConfig controls the left and bottom axis lines. The top and right
// borders are never drawn.
type SpineConfig struct {
	Left   bool `yaml:"left" toml:"left"`
	Bottom bool `yaml:"bottom" toml:"bottom"`
}

// FigureConfig sizes are in inches.
type FigureConfig struct {
	Width   float64 `yaml:"width" toml:"width" validate:"gt=0"`
	Height  float64 `yaml:"height" toml:"height" validate:"gt=0"`
	DPI     int     `yaml:"dpi" toml:"dpi" validate:"gt=0"`
	SaveDPI int     `yaml:"save_dpi" toml:"save_dpi" validate:"gt=0"`
}

// Size returns the figure size as plot lengths.
func (f FigureConfig) Size() (w, h vg.Length) {
	return vg.Length(f.Width) * vg.Inch, vg.Length(f.Height) * vg.Inch
}

// Default returns the house style.
func Default() *Config {
	return &Config{
		Font: FontConfig{
			Family:     "sans-serif",
			Size:       11,
			TitleSize:  14,
			LabelSize:  12,
			TickSize:   10,
			LegendSize: 10,
		},
		Colors:      DefaultPalette(),
		Categorical: Cycle(categorical, -1),
		Grid: GridConfig{
			Show:  true,
			Color: "#E0E0E0",
			Width: 0.5,
			Alpha: 0.3,
			Axis:  "y",
		},
		Lines: LineConfig{
			Width:      2,
			MarkerSize: 6,
			AxisWidth:  1,
		},
		Spines: SpineConfig{Left: true, Bottom: true},
		Figure: FigureConfig{
			Width:   10,
			Height:  6,
			DPI:     100,
			SaveDPI: 300,
		},
	}
}

// Color resolves a role against the configured palette.
func (c *Config) Color(role Role) Color {
	return c.Colors.Color(role)
}

// CategoricalColors returns n colors from the configured categorical cycle.
func (c *Config) CategoricalColors(n int) []Color {
	return Cycle(c.Categorical, n)
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Colors = make(Palette, len(c.Colors))
	for k, v := range c.Colors {
		cp.Colors[k] = v
	}
	cp.Categorical = append([]Color(nil), c.Categorical...)
	return &cp
}
