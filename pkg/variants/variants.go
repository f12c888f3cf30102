// Package variants enumerates the stock axis-icon set and renders it to disk.
//
// Every variant is a fixed, literal configuration: three axis-focus icons,
// three face-diagonal guides, six shaded parallelogram faces, one space
// diagonal, a standard icon and a high-resolution icon. Each variant is saved
// twice, as <name>.svg and <name>.png, from a single built scene so both
// files carry identical geometry.
package variants

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tkoehlen/axisgen/pkg/errors"
	"github.com/tkoehlen/axisgen/pkg/icon"
	"github.com/tkoehlen/axisgen/pkg/palette"
	"github.com/tkoehlen/axisgen/pkg/render/sink"
)

// Variant pairs a base filename with its literal drawing parameters.
type Variant struct {
	Name string
	Opts icon.Options
}

// All returns the full stock enumeration in generation order. The palette
// colors guides and faces; pass palette.Default() for the stock look.
func All(pal palette.Palette) []Variant {
	dim := icon.Options{Emphasis: icon.DimAll, Palette: pal}

	withGuide := func(target mgl64.Vec3) icon.Options {
		o := dim
		o.Guide = &icon.Guide{Target: target, Color: pal.Guide}
		return o
	}
	withPlane := func(v1, v2 mgl64.Vec3) icon.Options {
		o := dim
		o.Parallelogram = &icon.Parallelogram{
			V1: v1, V2: v2,
			FillColor: pal.Fill,
			EdgeColor: pal.Edge,
		}
		return o
	}

	diag := withGuide(mgl64.Vec3{1, 1, 1})
	diag.ExtraGuides = []icon.Segment{
		{From: mgl64.Vec3{1, 0, 0}, To: mgl64.Vec3{1, 1, 1}},
		{From: mgl64.Vec3{0, 1, 0}, To: mgl64.Vec3{1, 1, 1}},
		{From: mgl64.Vec3{0, 0, 1}, To: mgl64.Vec3{1, 1, 1}},
	}

	return []Variant{
		{Name: "axis_standard", Opts: icon.Options{Palette: pal}},
		{Name: "axis_hires", Opts: icon.Options{Palette: pal, Width: 800, Height: 800}},

		{Name: "axis_focus_x", Opts: icon.Options{Emphasis: icon.EmphasizeX, Palette: pal}},
		{Name: "axis_focus_y", Opts: icon.Options{Emphasis: icon.EmphasizeY, Palette: pal}},
		{Name: "axis_focus_z", Opts: icon.Options{Emphasis: icon.EmphasizeZ, Palette: pal}},

		{Name: "axis_dim_011", Opts: withGuide(mgl64.Vec3{0, 1, 1})},
		{Name: "axis_dim_101", Opts: withGuide(mgl64.Vec3{1, 0, 1})},
		{Name: "axis_dim_110", Opts: withGuide(mgl64.Vec3{1, 1, 0})},

		{Name: "axis_plane_001_010", Opts: withPlane(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 0})},
		{Name: "axis_plane_010_100", Opts: withPlane(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0})},
		{Name: "axis_plane_100_001", Opts: withPlane(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1})},

		{Name: "axis_plane_011_100", Opts: withPlane(mgl64.Vec3{0, 1, 1}, mgl64.Vec3{1, 0, 0})},
		{Name: "axis_plane_101_010", Opts: withPlane(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{0, 1, 0})},
		{Name: "axis_plane_110_001", Opts: withPlane(mgl64.Vec3{1, 1, 0}, mgl64.Vec3{0, 0, 1})},

		{Name: "axis_diag_111", Opts: diag},
	}
}

// Generator renders variant sets into an output directory.
type Generator struct {
	OutDir  string
	Palette palette.Palette
	Logger  *log.Logger // optional; log.Default() when nil
}

func (g *Generator) logger() *log.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return log.Default()
}

// Run renders every stock variant. The first failure aborts the remaining
// sequence; there is no skip or retry. It returns the base names rendered.
func (g *Generator) Run(ctx context.Context) ([]string, error) {
	pal := g.Palette
	if (pal == palette.Palette{}) {
		pal = palette.Default()
	}

	all := All(pal)
	names := make([]string, 0, len(all))
	for _, v := range all {
		if err := ctx.Err(); err != nil {
			return names, err
		}
		if err := g.SaveBoth(v); err != nil {
			return names, fmt.Errorf("variant %s: %w", v.Name, err)
		}
		names = append(names, v.Name)
	}
	g.logger().Infof("Rendered %d variants (%d files)", len(names), 2*len(names))
	return names, nil
}

// SaveBoth builds the variant's scene once and writes <name>.svg and
// <name>.png next to each other. Existing files are overwritten.
func (g *Generator) SaveBoth(v Variant) error {
	scene, err := icon.Build(v.Opts)
	if err != nil {
		return err
	}

	svgPath := filepath.Join(g.OutDir, v.Name+".svg")
	if err := writeFile(svgPath, sink.RenderSVG(scene)); err != nil {
		return err
	}
	g.logger().Debugf("Generated %s", svgPath)

	data, err := sink.RenderPNG(scene)
	if err != nil {
		return err
	}
	pngPath := filepath.Join(g.OutDir, v.Name+".png")
	if err := writeFile(pngPath, data); err != nil {
		return err
	}
	g.logger().Debugf("Generated %s", pngPath)
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "writing %s", path)
	}
	return nil
}
