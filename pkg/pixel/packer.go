package pixel

import (
	"github.com/matzehuels/bigtext/pkg/errors"
	"github.com/matzehuels/bigtext/pkg/font"
)

// Packer converts glyph bitmaps to cell runes for one density.
// It holds no mutable state and is safe for concurrent use.
type Packer struct {
	density    Density
	cols, rows int
	glyphs     []rune
}

// NewPacker returns a Packer for d, or an INVALID_DENSITY error when d is
// unknown or its factors do not divide the glyph size.
func NewPacker(d Density) (*Packer, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	glyphs, ok := tables[d]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidDensity, "density %s has no glyph table", d)
	}
	cols, rows := d.Factors()
	return &Packer{density: d, cols: cols, rows: rows, glyphs: glyphs}, nil
}

// Pack validates d and packs b. See Packer.Pack.
func Pack(b font.Bitmap, d Density) ([][]rune, error) {
	p, err := NewPacker(d)
	if err != nil {
		return nil, err
	}
	return p.Pack(b), nil
}

// Density returns the packer's density.
func (p *Packer) Density() Density { return p.density }

// Width returns the number of cells one glyph occupies horizontally.
func (p *Packer) Width() int { return font.Width / p.cols }

// Height returns the number of cells one glyph occupies vertically.
func (p *Packer) Height() int { return font.Height / p.rows }

// Pack returns Height() rows of Width() runes for b. Blocks are taken in
// reading order, top to bottom and left to right.
func (p *Packer) Pack(b font.Bitmap) [][]rune {
	out := make([][]rune, p.Height())
	for cy := range out {
		row := make([]rune, p.Width())
		for cx := range row {
			row[cx] = p.glyphs[p.pattern(b, cx*p.cols, cy*p.rows)]
		}
		out[cy] = row
	}
	return out
}

// pattern reads the block with its top left pixel at x0, y0.
func (p *Packer) pattern(b font.Bitmap, x0, y0 int) int {
	idx := 0
	for dy := 0; dy < p.rows; dy++ {
		for dx := 0; dx < p.cols; dx++ {
			if b.Pixel(x0+dx, y0+dy) {
				idx |= 1 << uint(dy*p.cols+dx)
			}
		}
	}
	return idx
}
