// Package bigtext renders short strings as large block-character text in a
// terminal cell grid.
//
// Glyphs come from an 8x8 bitmap font. A [pixel.Density] controls how many
// font pixels each terminal cell shows, so one character of big text takes
// 8x8 cells at Full density, 8x4 at HalfHeight, 4x4 at Quadrant or 4x2 at
// Braille.
//
// # Usage
//
// Build a widget from a [Config] and paint it into a [buffer.Buffer]:
//
//	bt, err := bigtext.New(bigtext.Config{
//	    Lines:     bigtext.Lines("Hello\nWorld", lipgloss.NewStyle()),
//	    Style:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
//	    Density:   pixel.HalfHeight,
//	    Alignment: layout.Center,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	buf := buffer.New(buffer.Rect{Width: 80, Height: 8})
//	bt.Paint(buf, buf.Area)
//	fmt.Println(buf)
//
// String based UIs such as bubbletea views can call [BigText.Render]
// instead.
//
// # Errors
//
// [New] is the only operation that fails. It returns an INVALID_DENSITY
// error when the density's packing factors do not divide the 8x8 glyph
// (ThirdHeight and Sextant) and INVALID_ALIGNMENT for unknown alignments.
// Painting never fails: characters without a glyph render blank and content
// larger than the target area is clipped.
//
// # Painting Contract
//
// Paint writes only the cells covered by rasterized glyphs. Alignment
// gutters and the area below the last line are left untouched; clearing the
// target area is the caller's responsibility.
package bigtext
