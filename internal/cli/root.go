// Package cli implements the axisgen command-line interface.
//
// axisgen procedurally renders 3D coordinate-axis icons: colored arrows for
// the X/Y/Z axes with optional guide lines and shaded faces, saved as both
// SVG and PNG. The CLI is built using cobra with structured logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render the full stock variant set plus the reference grid
//   - render: Render a single icon from ad-hoc parameters
//   - grid: Recompose the reference grid from existing icons
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tkoehlen/axisgen/pkg/buildinfo"
)

// Execute runs the axisgen CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (generate,
// render, grid), configures logging based on the --verbose flag, and executes
// the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Version information comes from
// pkg/buildinfo, injected via ldflags at build time.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "axisgen",
		Short:        "axisgen renders 3D coordinate-axis icon sets",
		Long:         `axisgen is a CLI tool that procedurally renders CAD-style 3D coordinate-axis icons (arrows, guide lines, shaded faces) as matching SVG and PNG files, plus a composite reference grid.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newGridCmd())

	return root
}
