package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bigtext/pkg/font"
	"github.com/matzehuels/bigtext/pkg/pixel"
)

// densitiesCommand creates the densities command listing density modes.
func (c *CLI) densitiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "densities",
		Short: "List density modes",
		Long: `List density modes with their packing factors.

A mode packs cols x rows font pixels into one terminal cell. Modes whose
factors do not divide the 8x8 glyph are rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runDensities(cmd.OutOrStdout())
			return nil
		},
	}
}

// runDensities writes the density table to w.
func runDensities(w io.Writer) {
	sample := font.BitmapFor(font.Basic, 'A')

	var rows [][]string
	for _, d := range pixel.Densities() {
		cols, pixRows := d.Factors()
		size, preview := "-", ""
		valid := d.Validate() == nil
		if valid {
			size = fmt.Sprintf("%dx%d", font.Width/cols, font.Height/pixRows)
			cells, _ := pixel.Pack(sample, d)
			preview = string(cells[0])
		}
		rows = append(rows, []string{
			d.String(),
			fmt.Sprintf("%dx%d", cols, pixRows),
			size,
			validIcon(valid),
			preview,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Density", "Pixels/cell", "Cells/glyph", "Valid", "Top row of A").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return base.Inherit(styleHeader)
			}
			if col == 0 {
				return base.Foreground(colorCyan)
			}
			return base
		})

	fmt.Fprintln(w, t.Render())
}
