package font

import "strings"

const (
	// Width is the glyph width in pixels.
	Width = 8

	// Height is the glyph height in pixels.
	Height = 8
)

// Bitmap is one 8x8 glyph: Height rows, each a mask of Width pixels with
// the leftmost pixel in the least significant bit.
type Bitmap [Height]uint8

// Fallback is the glyph used for characters no source covers.
var Fallback Bitmap

// Pixel reports whether the pixel at column x, row y is set.
// Coordinates outside the glyph are always clear.
func (b Bitmap) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return b[y]&(1<<uint(x)) != 0
}

// IsBlank reports whether no pixel is set.
func (b Bitmap) IsBlank() bool {
	return b == Bitmap{}
}

// String renders the glyph as Height lines of 'X' and ' '.
func (b Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(rowString(b[y]))
	}
	return sb.String()
}

func rowString(row uint8) string {
	var buf [Width]byte
	for x := 0; x < Width; x++ {
		if row&(1<<uint(x)) != 0 {
			buf[x] = 'X'
		} else {
			buf[x] = ' '
		}
	}
	return string(buf[:])
}

// Source maps characters to glyph bitmaps.
// The boolean result is false when the source has no glyph for r.
type Source interface {
	Glyph(r rune) (Bitmap, bool)
}

// BitmapFor returns the glyph for r from src, or Fallback when src has none.
// A nil src behaves like Basic.
func BitmapFor(src Source, r rune) Bitmap {
	if src == nil {
		src = Basic
	}
	if b, ok := src.Glyph(r); ok {
		return b
	}
	return Fallback
}

// Table is a Source backed by a map.
type Table map[rune]Bitmap

// Glyph implements Source.
func (t Table) Glyph(r rune) (Bitmap, bool) {
	b, ok := t[r]
	return b, ok
}

// chain consults its sources in order.
type chain []Source

func (c chain) Glyph(r rune) (Bitmap, bool) {
	for _, src := range c {
		if b, ok := src.Glyph(r); ok {
			return b, true
		}
	}
	return Bitmap{}, false
}

// Chain returns a Source that asks each source in turn and uses the first
// glyph found. Nil sources are skipped.
func Chain(sources ...Source) Source {
	c := make(chain, 0, len(sources))
	for _, src := range sources {
		if src != nil {
			c = append(c, src)
		}
	}
	return c
}
