package sink

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/tkoehlen/axisgen/pkg/errors"
	"github.com/tkoehlen/axisgen/pkg/icon"
)

func TestRenderPNGDimensions(t *testing.T) {
	data, err := RenderPNG(buildScene(t, icon.Options{}))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 400 {
		t.Errorf("PNG size = %dx%d, want 400x400", cfg.Width, cfg.Height)
	}
}

func TestRenderPNGScale(t *testing.T) {
	data, err := RenderPNG(buildScene(t, icon.Options{}), WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 800 || cfg.Height != 800 {
		t.Errorf("PNG size at 2x = %dx%d, want 800x800", cfg.Width, cfg.Height)
	}
}

func TestRenderPNGTransparentBackground(t *testing.T) {
	data, err := RenderPNG(buildScene(t, icon.Options{}))
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	// Nothing is ever drawn in the extreme top-left corner.
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner pixel alpha = %d, want fully transparent", a)
	}
}

func TestRenderPNGBackgroundFill(t *testing.T) {
	data, err := RenderPNG(buildScene(t, icon.Options{}), WithPNGBackground("#eeeeee"))
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if a == 0 || r != g || g != b {
		t.Errorf("corner pixel = %d/%d/%d/%d, want opaque gray", r, g, b, a)
	}
}

func TestRenderPNGHasInk(t *testing.T) {
	data, err := RenderPNG(buildScene(t, icon.Options{}))
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	bounds := img.Bounds()
	var inked int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 4 {
		for x := bounds.Min.X; x < bounds.Max.X; x += 4 {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("rendered icon contains no visible pixels")
	}
}

func TestRenderPNGRejectsBadScale(t *testing.T) {
	_, err := RenderPNG(buildScene(t, icon.Options{}), WithScale(0))
	if !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("RenderPNG(scale=0) error = %v, want INVALID_SIZE", err)
	}
}
