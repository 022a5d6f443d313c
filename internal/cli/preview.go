package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bigtext/pkg/bigtext"
	"github.com/matzehuels/bigtext/pkg/font"
	"github.com/matzehuels/bigtext/pkg/layout"
	"github.com/matzehuels/bigtext/pkg/pixel"
)

// previewChrome is the number of rows taken by the title, status and help lines.
const previewChrome = 4

// alignments is the order the preview cycles through.
var alignments = []layout.Alignment{layout.Left, layout.Center, layout.Right}

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var opts styleOpts

	cmd := &cobra.Command{
		Use:   "preview [text...]",
		Short: "Preview big text interactively",
		Long: `Preview big text in a full-screen view.

Keys: tab / shift+tab cycle densities, a cycles alignment, q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			s, err := opts.resolve(cmd.Flags().Changed)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("Starting preview", "density", s.density, "align", s.alignment)

			p := tea.NewProgram(newPreviewModel(text, s),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	addStyleFlags(cmd, &opts)

	return cmd
}

// =============================================================================
// PreviewModel - Interactive big text preview
// =============================================================================

// PreviewModel is the bubbletea model for the preview command.
type PreviewModel struct {
	Lines     []bigtext.Line
	Font      font.Source
	Densities []pixel.Density
	Density   int // index into Densities
	Align     int // index into alignments
	Width     int
	Height    int

	widget *bigtext.BigText
}

// newPreviewModel creates a preview model starting at the resolved settings.
func newPreviewModel(text string, s *settings) PreviewModel {
	m := PreviewModel{
		Lines:     bigtext.Lines(text, s.style),
		Font:      s.font,
		Densities: pixel.ValidDensities(),
	}
	for i, d := range m.Densities {
		if d == s.density {
			m.Density = i
		}
	}
	for i, a := range alignments {
		if a == s.alignment {
			m.Align = i
		}
	}
	m.rebuild()
	return m
}

// rebuild recreates the widget after the density or alignment changed.
// Only valid densities are cycled, so New cannot fail here.
func (m *PreviewModel) rebuild() {
	m.widget = bigtext.MustNew(bigtext.Config{
		Lines:     m.Lines,
		Density:   m.Densities[m.Density],
		Alignment: alignments[m.Align],
		Font:      m.Font,
	})
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.Density = (m.Density + 1) % len(m.Densities)
			m.rebuild()
		case "shift+tab", "left", "h":
			m.Density = (m.Density + len(m.Densities) - 1) % len(m.Densities)
			m.rebuild()
		case "a":
			m.Align = (m.Align + 1) % len(alignments)
			m.rebuild()
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("bigtext preview"))
	b.WriteString("\n")
	b.WriteString(joinDim(m.Densities[m.Density].String(), alignments[m.Align].String()))
	b.WriteString("\n")

	// Before the first WindowSizeMsg the content size is used.
	width, height := m.Width, m.Height-previewChrome
	if m.Height > 0 && height <= 0 {
		height = 1
	}
	b.WriteString(m.widget.Render(width, height))

	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("tab density  a align  q quit"))

	return b.String()
}
