package font

const (
	basicFirst = 0x20
	basicLast  = 0x7E
)

// basic is the built-in font8x8 basic Latin source.
type basic struct{}

// Basic is the font8x8 basic Latin set (U+0020 through U+007E).
var Basic Source = basic{}

// Glyph implements Source.
func (basic) Glyph(r rune) (Bitmap, bool) {
	if r < basicFirst || r > basicLast {
		return Bitmap{}, false
	}
	return basicGlyphs[r-basicFirst], true
}
