package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bigtext/pkg/errors"
	"github.com/matzehuels/bigtext/pkg/font"
	"github.com/matzehuels/bigtext/pkg/pixel"
)

// glyphCommand creates the glyph command for inspecting font glyphs.
func (c *CLI) glyphCommand() *cobra.Command {
	var fontPath string

	cmd := &cobra.Command{
		Use:   "glyph <char>...",
		Short: "Show the bitmap and packed forms of characters",
		Long: `Show the bitmap of each character in the text font format, followed by
its packed form at every supported density.

The bitmap output can be saved and edited to build a custom font for --font.`,
		Example: `  bigtext glyph A
  bigtext glyph '{}' > braces.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, n, err := loadFont(fontPath)
			if err != nil {
				return err
			}
			if n > 0 {
				loggerFromContext(cmd.Context()).Debugf("Loaded %d glyphs from %s", n, fontPath)
			}
			return runGlyph(cmd.OutOrStdout(), src, []rune(strings.Join(args, "")))
		},
	}

	cmd.Flags().StringVar(&fontPath, "font", "", "text font file, consulted before the built-in font")

	return cmd
}

// runGlyph writes the bitmap and packed forms of each rune to w.
func runGlyph(w io.Writer, src font.Source, runes []rune) error {
	for i, r := range runes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printInfo(w, "%s %s", StyleHighlight.Render(string(r)), StyleDim.Render(fmt.Sprintf("%U", r)))
		if _, ok := src.Glyph(r); !ok {
			printWarning(w, "no glyph, rendered blank")
		}

		if err := font.Encode(w, src, []rune{r}); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write glyph %q", r)
		}

		b := font.BitmapFor(src, r)
		for _, d := range pixel.ValidDensities() {
			cells, err := pixel.Pack(b, d)
			if err != nil {
				return err
			}
			cols, rows := d.Factors()
			printDetail(w, "%s (%dx%d pixels per cell)", d, cols, rows)
			for _, row := range cells {
				fmt.Fprintf(w, "    %s\n", string(row))
			}
		}
	}
	return nil
}
