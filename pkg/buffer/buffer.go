// Package buffer provides the rectangular grid of styled cells that big text
// is painted into.
//
// A [Buffer] covers an [Rect] area and is addressed with absolute x, y
// coordinates inside that area. Writes outside the area are ignored.
// [Buffer.String] renders the grid with lipgloss, grouping runs of cells
// that share a style so the output stays compact.
//
// Limitation: every rune is assumed to be a single cell wide.
package buffer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/bigtext/pkg/raster"
)

// Blank is the cell a new buffer is filled with.
var Blank = raster.Cell{Rune: ' '}

// Buffer is a grid of styled cells covering Area.
type Buffer struct {
	Area  Rect
	cells []raster.Cell
}

// New returns a buffer covering area, filled with Blank cells.
func New(area Rect) *Buffer {
	area = NewRect(area.X, area.Y, area.Width, area.Height)
	b := &Buffer{Area: area, cells: make([]raster.Cell, area.Width*area.Height)}
	b.Fill(Blank)
	return b
}

func (b *Buffer) index(x, y int) (int, bool) {
	if !b.Area.Contains(x, y) {
		return 0, false
	}
	return (y-b.Area.Y)*b.Area.Width + (x - b.Area.X), true
}

// At returns the cell at x, y, or Blank outside the area.
func (b *Buffer) At(x, y int) raster.Cell {
	i, ok := b.index(x, y)
	if !ok {
		return Blank
	}
	return b.cells[i]
}

// Set writes the cell at x, y. Out-of-area writes are silently ignored.
func (b *Buffer) Set(x, y int, c raster.Cell) {
	if i, ok := b.index(x, y); ok {
		b.cells[i] = c
	}
}

// Fill resets every cell to c.
func (b *Buffer) Fill(c raster.Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Lines returns the buffer runes row by row, without styling.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.Area.Height)
	for y := range lines {
		var sb strings.Builder
		for _, c := range b.row(y) {
			sb.WriteRune(c.Rune)
		}
		lines[y] = sb.String()
	}
	return lines
}

// String renders the buffer as lines of lipgloss-styled text.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.Area.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := b.row(y)
		for start := 0; start < len(row); {
			a := attrsOf(row[start].Style)
			end := start + 1
			for end < len(row) && attrsOf(row[end].Style) == a {
				end++
			}
			var run strings.Builder
			for _, c := range row[start:end] {
				run.WriteRune(c.Rune)
			}
			if a == (attrs{}) || a == plain {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(a.style().Render(run.String()))
			}
			start = end
		}
	}
	return sb.String()
}

func (b *Buffer) row(y int) []raster.Cell {
	w := b.Area.Width
	return b.cells[y*w : (y+1)*w]
}

// attrs is the part of a lipgloss style that applies to a single cell.
// Layout properties such as padding or width are ignored.
type attrs struct {
	fg, bg        lipgloss.TerminalColor
	bold, italic  bool
	underline     bool
	strikethrough bool
	reverse       bool
	blink, faint  bool
}

// plain is the attrs of an unset lipgloss style.
var plain = attrsOf(lipgloss.NewStyle())

func attrsOf(s lipgloss.Style) attrs {
	return attrs{
		fg:            s.GetForeground(),
		bg:            s.GetBackground(),
		bold:          s.GetBold(),
		italic:        s.GetItalic(),
		underline:     s.GetUnderline(),
		strikethrough: s.GetStrikethrough(),
		reverse:       s.GetReverse(),
		blink:         s.GetBlink(),
		faint:         s.GetFaint(),
	}
}

func (a attrs) style() lipgloss.Style {
	s := lipgloss.NewStyle().
		Bold(a.bold).
		Italic(a.italic).
		Underline(a.underline).
		Strikethrough(a.strikethrough).
		Reverse(a.reverse).
		Blink(a.blink).
		Faint(a.faint)
	if a.fg != nil {
		s = s.Foreground(a.fg)
	}
	if a.bg != nil {
		s = s.Background(a.bg)
	}
	return s
}
