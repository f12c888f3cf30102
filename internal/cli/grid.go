package cli

import (
	"github.com/spf13/cobra"
)

// newGridCmd creates the grid command, which recomposes the reference grid
// from icons rendered earlier.
func newGridCmd() *cobra.Command {
	var palettePath string

	cmd := &cobra.Command{
		Use:   "grid [dir]",
		Short: "Recompose the reference grid from existing icons",
		Long: `Recompose the reference grid from existing icons.

The grid command tiles the thirteen stock reference icons found in the
target directory into axis_reference_grid.png and .svg. Icons that are
missing or unreadable leave their grid slot blank.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			pal, err := loadPalette(palettePath)
			if err != nil {
				return err
			}
			return composeGrid(cmd, dir, dir, pal.Background)
		},
	}

	cmd.Flags().StringVar(&palettePath, "palette", "", "TOML file overriding the default colors")

	return cmd
}
