package cli

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tkoehlen/axisgen/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{"svg", "png"}},
		{in: "svg", want: []string{"svg"}},
		{in: "png,svg", want: []string{"png", "svg"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("validateFormats(svg,png) error: %v", err)
	}
	if err := validateFormats([]string{"pdf"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("validateFormats(pdf) error = %v, want INVALID_FORMAT", err)
	}
}

func TestParseVec3(t *testing.T) {
	tests := []struct {
		in      string
		want    mgl64.Vec3
		wantErr bool
	}{
		{in: "1,1,0", want: mgl64.Vec3{1, 1, 0}},
		{in: "0.5, 0, 0", want: mgl64.Vec3{0.5, 0, 0}},
		{in: "1,1", wantErr: true},
		{in: "1,1,0,0", wantErr: true},
		{in: "a,b,c", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseVec3(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidTarget) {
					t.Fatalf("parseVec3(%q) error = %v, want INVALID_TARGET", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVec3(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseVec3(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadPaletteDefault(t *testing.T) {
	pal, err := loadPalette("")
	if err != nil {
		t.Fatalf("loadPalette(\"\") error: %v", err)
	}
	if pal.AxisX != "#FF0000" {
		t.Errorf("loadPalette(\"\") should return defaults, got AxisX = %q", pal.AxisX)
	}
}
