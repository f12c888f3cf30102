package cli

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tkoehlen/axisgen/pkg/errors"
	"github.com/tkoehlen/axisgen/pkg/palette"
)

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to both formats.
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg", "png"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg' or 'png')", f)
		}
	}
	return nil
}

// parseVec3 parses a comma-separated coordinate triple like "1,1,0".
func parseVec3(s string) (mgl64.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, errors.New(errors.ErrCodeInvalidTarget, "%q is not an x,y,z triple", s)
	}
	var v mgl64.Vec3
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return mgl64.Vec3{}, errors.Wrap(errors.ErrCodeInvalidTarget, err, "%q is not an x,y,z triple", s)
		}
		v[i] = f
	}
	return v, nil
}

// loadPalette returns the palette for the --palette flag, falling back to the
// defaults when the flag is unset.
func loadPalette(path string) (palette.Palette, error) {
	if path == "" {
		return palette.Default(), nil
	}
	return palette.Load(path)
}
