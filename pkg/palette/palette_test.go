package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tkoehlen/axisgen/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
}

func TestDefaultAxisColors(t *testing.T) {
	p := Default()
	if p.AxisX != "#FF0000" || p.AxisY != "#00FF00" || p.AxisZ != "#0000FF" {
		t.Errorf("Default() axis colors = %s/%s/%s, want red/green/blue", p.AxisX, p.AxisY, p.AxisZ)
	}
	if p.DimAlpha != 0.35 {
		t.Errorf("Default().DimAlpha = %v, want 0.35", p.DimAlpha)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.toml")
	content := "axis_x = \"#AA0000\"\ndim_alpha = 0.2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.AxisX != "#AA0000" {
		t.Errorf("AxisX = %q, want override %q", p.AxisX, "#AA0000")
	}
	if p.DimAlpha != 0.2 {
		t.Errorf("DimAlpha = %v, want 0.2", p.DimAlpha)
	}
	// Untouched fields keep defaults.
	if p.AxisY != "#00FF00" {
		t.Errorf("AxisY = %q, want default %q", p.AxisY, "#00FF00")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.toml")
	if err := os.WriteFile(path, []byte("axis_x = \"red\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidPalette) {
		t.Errorf("Load() error = %v, want INVALID_PALETTE", err)
	}
}

func TestLoadRejectsBadAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.toml")
	if err := os.WriteFile(path, []byte("dim_alpha = 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidPalette) {
		t.Errorf("Load() error = %v, want INVALID_PALETTE", err)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantErr bool
	}{
		{in: "#FF0000", wantR: 0xFF},
		{in: "#00ff00", wantG: 0xFF},
		{in: "#b8860b", wantR: 0xB8, wantG: 0x86, wantB: 0x0B},
		{in: "FF0000", wantErr: true},
		{in: "#FFF", wantErr: true},
		{in: "#GG0000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if c.R != tt.wantR || c.G != tt.wantG || c.B != tt.wantB || c.A != 0xFF {
				t.Errorf("ParseHex(%q) = %+v", tt.in, c)
			}
		})
	}
}
