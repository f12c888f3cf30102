package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tkoehlen/axisgen/pkg/render/grid"
	"github.com/tkoehlen/axisgen/pkg/variants"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	palettePath string // optional TOML palette override
	skipGrid    bool   // stop after the variants, no composite
}

// newGenerateCmd creates the generate command, which runs the full fixed
// sequence: every stock variant as SVG+PNG, then the composite reference grid.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Render the full icon set and the reference grid",
		Long: `Render the full icon set and the reference grid.

The generate command renders the fixed set of fifteen icon variants (axis
focus, face diagonals, shaded planes, space diagonal, standard and hires)
into the target directory, each as a matching SVG/PNG pair, and then tiles
the thirteen reference icons into axis_reference_grid.png/.svg.

Existing files are overwritten. A failing variant aborts the sequence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runGenerate(cmd, dir, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.palettePath, "palette", "", "TOML file overriding the default colors")
	cmd.Flags().BoolVar(&opts.skipGrid, "skip-grid", false, "render the variants only, skip the composite grid")

	return cmd
}

func runGenerate(cmd *cobra.Command, dir string, opts *generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	pal, err := loadPalette(opts.palettePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	prog := newProgress(logger)
	gen := variants.Generator{OutDir: dir, Palette: pal, Logger: logger}
	names, err := gen.Run(ctx)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d variants into %s", len(names), dir))

	if opts.skipGrid {
		return nil
	}
	return composeGrid(cmd, dir, dir, pal.Background)
}

// composeGrid writes both composite files for the icons found in srcDir.
func composeGrid(cmd *cobra.Command, srcDir, outDir, background string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	c := grid.Composer{Dir: srcDir, Background: background, Logger: logger}
	tiles := grid.DefaultTiles()

	pngData, err := c.ComposePNG(tiles)
	if err != nil {
		return err
	}
	svgData, err := c.ComposeSVG(tiles)
	if err != nil {
		return err
	}

	for ext, data := range map[string][]byte{".png": pngData, ".svg": svgData} {
		path := filepath.Join(outDir, grid.BaseName+ext)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		logger.Debugf("Generated %s", path)
	}

	prog.done(fmt.Sprintf("Composed reference grid from %d tiles", len(tiles)))
	return nil
}
