// Package palette holds the color configuration for icon rendering.
//
// The default palette follows the AutoCAD-style convention of red X, green Y,
// and blue Z axes. An optional TOML file can override individual entries, for
// example:
//
//	axis_x    = "#CC0000"
//	dim_alpha = 0.25
//
// All colors are 6-digit hex strings with a leading '#'.
package palette

import (
	"image/color"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/tkoehlen/axisgen/pkg/errors"
)

// Palette maps the visual roles of an axis icon to colors. The zero value is
// not useful; start from Default and override fields as needed.
type Palette struct {
	AxisX      string  `toml:"axis_x"`     // X arrow and label
	AxisY      string  `toml:"axis_y"`     // Y arrow and label
	AxisZ      string  `toml:"axis_z"`     // Z arrow and label
	Origin     string  `toml:"origin"`     // origin marker dot
	Guide      string  `toml:"guide"`      // guide and diagonal lines
	Fill       string  `toml:"fill"`       // parallelogram interior
	Edge       string  `toml:"edge"`       // parallelogram dashed border
	Background string  `toml:"background"` // reference grid background
	DimAlpha   float64 `toml:"dim_alpha"`  // opacity for de-emphasized axes
}

// Default returns the built-in palette used by all stock variants.
func Default() Palette {
	return Palette{
		AxisX:      "#FF0000",
		AxisY:      "#00FF00",
		AxisZ:      "#0000FF",
		Origin:     "#000000",
		Guide:      "#b8860b",
		Fill:       "#fff6b3",
		Edge:       "#b8860b",
		Background: "#eeeeee",
		DimAlpha:   0.35,
	}
}

// Load reads a TOML palette file and merges it over the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (Palette, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading palette %s", path)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return p, errors.Wrap(errors.ErrCodeInvalidPalette, err, "parsing palette %s", path)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Validate checks that every color is a parseable hex string and that
// DimAlpha is within [0, 1].
func (p Palette) Validate() error {
	fields := map[string]string{
		"axis_x":     p.AxisX,
		"axis_y":     p.AxisY,
		"axis_z":     p.AxisZ,
		"origin":     p.Origin,
		"guide":      p.Guide,
		"fill":       p.Fill,
		"edge":       p.Edge,
		"background": p.Background,
	}
	for name, val := range fields {
		if _, err := ParseHex(val); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPalette, err, "%s = %q", name, val)
		}
	}
	if p.DimAlpha < 0 || p.DimAlpha > 1 {
		return errors.New(errors.ErrCodeInvalidPalette, "dim_alpha = %v, must be within [0, 1]", p.DimAlpha)
	}
	return nil
}

// ParseHex converts a "#RRGGBB" string to an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor, "%q is not a #RRGGBB color", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "%q is not a #RRGGBB color", s)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}
