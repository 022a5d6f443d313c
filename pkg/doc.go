// Package pkg provides the libraries behind bigtext, a terminal widget that
// renders short strings as large block-character text.
//
// # Overview
//
// Each character is drawn from an 8x8 monochrome bitmap font. A density
// mode decides how many font pixels one terminal cell shows, from one pixel
// per cell (Full) up to eight (Braille). The pkg directory is organized
// leaves first:
//
//  1. [font] - Glyph bitmaps, the built-in font and the text font format
//  2. [pixel] - Density modes and packing of pixel blocks into characters
//  3. [raster] - Lines of text laid out glyph by glyph into styled cells
//  4. [layout] - Alignment and clipping of lines inside an area
//  5. [buffer] - The destination cell grid and its lipgloss rendering
//  6. [bigtext] - The widget that ties the pipeline together
//
// # Architecture
//
// The data flow for one paint call:
//
//	text lines
//	     ↓
//	[font] (one 8x8 bitmap per grapheme)
//	     ↓
//	[pixel] (bitmap packed into block, quadrant or braille cells)
//	     ↓
//	[raster] (glyphs side by side into one plan per line)
//	     ↓
//	[layout] (lines stacked, aligned and clipped to the area)
//	     ↓
//	[buffer] (cells written, rendered as styled text)
//
// # Quick Start
//
//	import (
//	    "github.com/charmbracelet/lipgloss"
//	    "github.com/matzehuels/bigtext/pkg/bigtext"
//	    "github.com/matzehuels/bigtext/pkg/layout"
//	    "github.com/matzehuels/bigtext/pkg/pixel"
//	)
//
//	bt, err := bigtext.New(bigtext.Config{
//	    Lines:     bigtext.Lines("Hello", lipgloss.NewStyle().Bold(true)),
//	    Density:   pixel.Quadrant,
//	    Alignment: layout.Center,
//	})
//	if err != nil {
//	    return err // INVALID_DENSITY or INVALID_ALIGNMENT
//	}
//	fmt.Println(bt.Render(80, 0))
//
// # Main Packages
//
// [bigtext] - The widget. [bigtext.New] validates a configuration once;
// painting never fails afterwards.
//
// [font] - [font.Basic] covers printable ASCII. [font.Decode] reads custom
// glyphs from a text file and [font.Chain] layers them over the built-in set.
//
// [pixel] - Density modes and their packing factors. Modes whose factors do
// not divide 8 (ThirdHeight, Sextant) are declared but rejected.
//
// [errors] - Coded errors shared by the libraries and the CLI.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/pixel/...       # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [font]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/font
// [pixel]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/pixel
// [raster]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/raster
// [layout]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/layout
// [buffer]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/buffer
// [bigtext]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/bigtext
// [errors]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/buildinfo
// [bigtext.New]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/bigtext#New
// [font.Basic]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/font#Basic
// [font.Decode]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/font#Decode
// [font.Chain]: https://pkg.go.dev/github.com/matzehuels/bigtext/pkg/font#Chain
package pkg
