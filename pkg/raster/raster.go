// Package raster lays glyphs out side by side into rows of styled cells.
//
// A [Rasterizer] pairs a glyph [font.Source] with a [pixel.Packer]. Each
// grapheme cluster of a line is looked up by its first rune, packed, and
// appended to the right of the previous one; glyphs are never stacked.
// The resulting [Plan] has one row per packed glyph row and applies a single
// style to every cell of the line.
package raster

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/matzehuels/bigtext/pkg/font"
	"github.com/matzehuels/bigtext/pkg/pixel"
)

// Cell is one styled terminal cell.
type Cell struct {
	Rune  rune
	Style lipgloss.Style
}

// Plan is one rasterized text line: Rows[y][x] cells, every row the same
// width.
type Plan struct {
	Rows [][]Cell
}

// Width returns the plan width in cells.
func (p Plan) Width() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return len(p.Rows[0])
}

// Height returns the plan height in cells.
func (p Plan) Height() int {
	return len(p.Rows)
}

// String returns the plan runes without styling, rows separated by newlines.
func (p Plan) String() string {
	var sb strings.Builder
	for y, row := range p.Rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// Rasterizer turns text lines into plans.
// It holds no mutable state and is safe for concurrent use.
type Rasterizer struct {
	src    font.Source
	packer *pixel.Packer
}

// New returns a Rasterizer reading glyphs from src and packing them with p.
// A nil src uses font.Basic.
func New(src font.Source, p *pixel.Packer) *Rasterizer {
	if src == nil {
		src = font.Basic
	}
	return &Rasterizer{src: src, packer: p}
}

// GlyphWidth returns the number of cells one character occupies horizontally.
func (r *Rasterizer) GlyphWidth() int { return r.packer.Width() }

// GlyphHeight returns the number of cells one character occupies vertically,
// which is also the height of every plan.
func (r *Rasterizer) GlyphHeight() int { return r.packer.Height() }

// Graphemes returns the number of grapheme clusters in text, i.e. the number
// of glyphs a plan for text holds.
func Graphemes(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// Rasterize returns the plan for a single line of text. Every cell carries
// style. Characters without a glyph occupy blank cells so that the following
// characters keep their columns.
func (r *Rasterizer) Rasterize(text string, style lipgloss.Style) Plan {
	height := r.GlyphHeight()
	width := Graphemes(text) * r.GlyphWidth()

	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = make([]Cell, 0, width)
	}

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		glyph := r.packer.Pack(font.BitmapFor(r.src, runes[0]))
		for y, packed := range glyph {
			for _, c := range packed {
				rows[y] = append(rows[y], Cell{Rune: c, Style: style})
			}
		}
	}

	return Plan{Rows: rows}
}
