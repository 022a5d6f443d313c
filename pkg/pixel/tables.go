package pixel

// Pattern tables, indexed by the block pattern with bit row*cols+col set for
// each lit pixel.
var (
	fullGlyphs = []rune{' ', '█'}

	// bit 0 top, bit 1 bottom
	halfHeightGlyphs = []rune{' ', '▀', '▄', '█'}

	// bit 0 left, bit 1 right
	halfWidthGlyphs = []rune{' ', '▌', '▐', '█'}

	// bit 0 top left, bit 1 top right, bit 2 bottom left, bit 3 bottom right
	quadrantGlyphs = []rune{
		' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛',
		'▗', '▚', '▐', '▜', '▄', '▙', '▟', '█',
	}

	brailleGlyphs = buildBraille()
)

// brailleDots maps a 2x4 block bit (row*2+col) to its braille dot bit.
// Dots 1-3 and 7 run down the left column, 4-6 and 8 down the right.
var brailleDots = [8]rune{
	0x01, 0x08,
	0x02, 0x10,
	0x04, 0x20,
	0x40, 0x80,
}

func buildBraille() []rune {
	glyphs := make([]rune, 256)
	for pattern := range glyphs {
		var dots rune
		for bit, dot := range brailleDots {
			if pattern&(1<<uint(bit)) != 0 {
				dots |= dot
			}
		}
		glyphs[pattern] = 0x2800 + dots
	}
	// Blank cells are plain spaces in every table.
	glyphs[0] = ' '
	return glyphs
}

// tables holds the pattern table of every density NewPacker accepts.
var tables = map[Density][]rune{
	Full:       fullGlyphs,
	HalfHeight: halfHeightGlyphs,
	HalfWidth:  halfWidthGlyphs,
	Quadrant:   quadrantGlyphs,
	Braille:    brailleGlyphs,
}
