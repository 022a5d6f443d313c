// Package font provides the 8x8 monochrome glyph bitmaps that big text is
// built from.
//
// A [Bitmap] is eight rows of eight pixels, one byte per row with the top
// row first. Bit 1<<x of a row is pixel column x, so the least significant
// bit is the leftmost pixel (the font8x8 convention).
//
// Glyph datasets implement [Source]. The package ships [Basic], the font8x8
// basic Latin set, and [Table], a map-backed source that [Decode] fills from
// a plain-text font file. [Chain] layers sources so a custom font can
// override some glyphs and fall back to the built-in set for the rest.
//
// Lookups never fail: [BitmapFor] returns [Fallback], a blank glyph, for
// characters that no source covers.
//
// # Text Font Format
//
// The text format has one line per glyph row: the character, two spaces,
// then the row's pixels between brackets, 'X' for a set pixel and a space
// for a clear one. Consecutive lines of the same character form one glyph:
//
//	T  [XXXXXX  ]
//	T  [X XX X  ]
//	T  [  XX    ]
package font
