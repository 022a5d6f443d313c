// Package pixel packs 8x8 glyph bitmaps into terminal cells.
//
// A [Density] selects how many font pixels one terminal cell represents:
//
//	Full         1x1  '█'
//	HalfHeight   1x2  '▀' '▄'
//	HalfWidth    2x1  '▌' '▐'
//	Quadrant     2x2  '▘' '▝' '▖' '▗' ...
//	ThirdHeight  1x3  (rejected: 3 does not divide 8)
//	Sextant      2x3  (rejected: 3 does not divide 8)
//	Braille      2x4  '⠁' ... '⣿'
//
// The factors are columns x rows of font pixels per cell. Each block's on/off
// pattern, read with bit row*cols+col set for a lit pixel, is a direct index
// into a fixed table of runes, so packing a block is a single lookup.
//
// [NewPacker] is the only place a density is checked: densities whose
// factors do not divide the 8x8 glyph fail with an INVALID_DENSITY error.
// A [Packer] that was built successfully never fails.
package pixel
