package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tkoehlen/axisgen/pkg/icon"
	"github.com/tkoehlen/axisgen/pkg/render/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output        string  // output base path; format extensions are appended
	formatsStr    string  // comma-separated list: svg, png
	size          int     // square canvas edge in pixels
	scale         float64 // raster resolution multiplier, PNG only
	focus         string  // axis selector: x, y, z, all_dim or empty
	dimAlpha      float64
	dimAlphaSet   bool   // --dim-alpha was given, so 0 means fully transparent
	guideTo       string // guide target as "x,y,z"
	planeV1       string // parallelogram edge vector as "x,y,z"
	planeV2       string
	keepAxisEdges bool
	palettePath   string
}

// newRenderCmd creates the render command for one-off icons outside the
// stock variant set.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{size: icon.DefaultSize, scale: 1.0}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single axis icon from ad-hoc parameters",
		Long: `Render a single axis icon from ad-hoc parameters.

Examples:

  # Emphasize the Z axis
  axisgen render --focus z -o z_axis

  # Face diagonal with derived dashed guides
  axisgen render --focus all_dim --guide-to 1,1,0 -o diag

  # Shaded XZ plane
  axisgen render --focus all_dim --plane-v1 1,0,0 --plane-v2 0,0,1 -o plane`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.dimAlphaSet = cmd.Flags().Changed("dim-alpha")
			return runRenderOnce(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "axis_icon", "output base path (without extension)")
	cmd.Flags().StringVarP(&opts.formatsStr, "format", "f", "", "output format(s): svg, png (comma-separated, default both)")
	cmd.Flags().IntVar(&opts.size, "size", opts.size, "canvas edge in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster resolution multiplier (PNG only)")
	cmd.Flags().StringVar(&opts.focus, "focus", "", "axis to emphasize: x, y, z, all_dim (default all opaque)")
	cmd.Flags().Float64Var(&opts.dimAlpha, "dim-alpha", 0, "opacity for de-emphasized axes (default from palette)")
	cmd.Flags().StringVar(&opts.guideTo, "guide-to", "", "guide target point as x,y,z")
	cmd.Flags().StringVar(&opts.planeV1, "plane-v1", "", "first parallelogram edge vector as x,y,z")
	cmd.Flags().StringVar(&opts.planeV2, "plane-v2", "", "second parallelogram edge vector as x,y,z")
	cmd.Flags().BoolVar(&opts.keepAxisEdges, "keep-axis-edges", false, "stroke parallelogram edges that coincide with axes")
	cmd.Flags().StringVar(&opts.palettePath, "palette", "", "TOML file overriding the default colors")

	return cmd
}

// buildOptions translates flags into icon options.
func (o *renderOpts) buildOptions() (icon.Options, error) {
	pal, err := loadPalette(o.palettePath)
	if err != nil {
		return icon.Options{}, err
	}
	em, err := icon.ParseEmphasis(o.focus)
	if err != nil {
		return icon.Options{}, err
	}

	out := icon.Options{
		Width:    o.size,
		Height:   o.size,
		Emphasis: em,
		Palette:  pal,
	}
	if o.dimAlphaSet {
		out.DimAlpha = &o.dimAlpha
	}

	if o.guideTo != "" {
		target, err := parseVec3(o.guideTo)
		if err != nil {
			return icon.Options{}, err
		}
		out.Guide = &icon.Guide{Target: target, Color: pal.Guide}
	}

	if (o.planeV1 == "") != (o.planeV2 == "") {
		return icon.Options{}, fmt.Errorf("--plane-v1 and --plane-v2 must be given together")
	}
	if o.planeV1 != "" {
		v1, err := parseVec3(o.planeV1)
		if err != nil {
			return icon.Options{}, err
		}
		v2, err := parseVec3(o.planeV2)
		if err != nil {
			return icon.Options{}, err
		}
		out.Parallelogram = &icon.Parallelogram{
			V1: v1, V2: v2,
			FillColor:     pal.Fill,
			EdgeColor:     pal.Edge,
			KeepAxisEdges: o.keepAxisEdges,
		}
	}

	return out, nil
}

func runRenderOnce(cmd *cobra.Command, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	formats := parseFormats(opts.formatsStr)
	if err := validateFormats(formats); err != nil {
		return err
	}

	iconOpts, err := opts.buildOptions()
	if err != nil {
		return err
	}
	scene, err := icon.Build(iconOpts)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(opts.output, filepath.Ext(opts.output))
	for _, format := range formats {
		var data []byte
		switch format {
		case "svg":
			data = sink.RenderSVG(scene)
		case "png":
			if data, err = sink.RenderPNG(scene, sink.WithScale(opts.scale)); err != nil {
				return err
			}
		}
		path := base + "." + format
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		logger.Infof("Generated %s", path)
	}
	return nil
}
