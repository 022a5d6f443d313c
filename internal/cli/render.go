package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/bigtext/pkg/bigtext"
	"github.com/matzehuels/bigtext/pkg/errors"
	"github.com/matzehuels/bigtext/pkg/font"
	"github.com/matzehuels/bigtext/pkg/layout"
	"github.com/matzehuels/bigtext/pkg/pixel"
)

// defaultWidth is the output width when stdout is not a terminal.
const defaultWidth = 80

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	styleOpts
	width int // output width in cells, 0 for the terminal width
}

// renderCommand creates the render command for printing banners.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Print text as a big text banner",
		Long: `Print text as a big text banner.

Arguments are joined with spaces. A literal \n starts a new line. Without
arguments the text is read from stdin.`,
		Example: `  bigtext render Hello
  bigtext render -d quadrant -a center 'Hello\nWorld'
  echo hi | bigtext render --fg 205 --bold`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			s, err := opts.resolve(cmd.Flags().Changed)
			if err != nil {
				return err
			}
			width := opts.width
			if width <= 0 {
				width = terminalWidth(cmd.OutOrStdout())
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), text, s, width)
		},
	}

	addStyleFlags(cmd, &opts.styleOpts)
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "output width in cells (default: terminal width)")

	return cmd
}

// addStyleFlags registers the flags shared by render and preview.
func addStyleFlags(cmd *cobra.Command, o *styleOpts) {
	cmd.Flags().StringVarP(&o.density, "density", "d", pixel.Full.String(), "density: "+strings.Join(densityNames(), ", "))
	cmd.Flags().StringVarP(&o.align, "align", "a", layout.Left.String(), "alignment: left, center, right")
	cmd.Flags().StringVar(&o.fg, "fg", "", "foreground color (0-255 or #rrggbb)")
	cmd.Flags().StringVar(&o.bg, "bg", "", "background color (0-255 or #rrggbb)")
	cmd.Flags().BoolVar(&o.bold, "bold", false, "bold text")
	cmd.Flags().StringVar(&o.font, "font", "", "text font file, consulted before the built-in font")
	cmd.Flags().StringVar(&o.config, "config", "", "TOML config file (default ~/.config/bigtext/config.toml)")

	_ = cmd.RegisterFlagCompletionFunc("density", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return densityNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("align", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"left", "center", "right"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// densityNames lists the densities the widget accepts.
func densityNames() []string {
	var names []string
	for _, d := range pixel.ValidDensities() {
		names = append(names, d.String())
	}
	return names
}

// readText returns the banner text from args, or from r when args is empty.
func readText(r io.Reader, args []string) (string, error) {
	var text string
	if len(args) > 0 {
		text = strings.ReplaceAll(strings.Join(args, " "), `\n`, "\n")
	} else {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		text = strings.TrimRight(string(data), "\r\n")
	}
	if err := errors.ValidateText(text); err != nil {
		return "", err
	}
	return text, nil
}

// terminalWidth returns the width of w if it is a terminal, or defaultWidth.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// missingGlyphs returns the characters of text that src has no glyph for,
// each reported once.
func missingGlyphs(src font.Source, text string) []rune {
	var missing []rune
	seen := make(map[rune]bool)
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		r := g.Runes()[0]
		if r == '\n' || r == '\r' || seen[r] {
			continue
		}
		seen[r] = true
		if _, ok := src.Glyph(r); !ok {
			missing = append(missing, r)
		}
	}
	return missing
}

// newWidget builds the widget for text with the resolved settings.
func newWidget(text string, s *settings) (*bigtext.BigText, error) {
	return bigtext.New(bigtext.Config{
		Lines:     bigtext.Lines(text, s.style),
		Density:   s.density,
		Alignment: s.alignment,
		Font:      s.font,
	})
}

// runRender prints text as a banner width cells wide.
func runRender(ctx context.Context, out, errOut io.Writer, text string, s *settings, width int) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if s.config != "" {
		logger.Debugf("Using config %s", s.config)
	}
	if s.glyphs > 0 {
		logger.Debugf("Loaded %d glyphs from font file", s.glyphs)
	}
	logger.Debug("Rendering", "density", s.density, "align", s.alignment, "width", width)

	for _, r := range missingGlyphs(s.font, text) {
		printWarning(errOut, "no glyph for %q (%U), rendering blank", r, r)
	}

	bt, err := newWidget(text, s)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, bt.Render(width, 0)); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d lines", len(bigtext.Lines(text, s.style))))
	return nil
}
