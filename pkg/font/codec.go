package font

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/bigtext/pkg/errors"
)

// textRowToBits transforms a row of up to Width 'X'/space characters into
// a row mask, first character in the least significant bit.
func textRowToBits(t string) uint8 {
	var o uint8
	for i := 0; i < len(t); i++ {
		if t[i] == 'X' {
			o |= 1 << uint(i)
		}
	}
	return o
}

// Decode reads a font in the text format described in the package
// documentation. Glyphs shorter than Height rows are padded with blank rows
// at the bottom.
func Decode(r io.Reader) (Table, error) {
	glyphs := make(Table)
	rows := make(map[rune]int)

	var lastCh rune = -1
	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		c, size := utf8.DecodeRuneInString(line)
		if c == utf8.RuneError && size <= 1 {
			return nil, errors.New(errors.ErrCodeInvalidFont, "line %d: invalid UTF-8", lineNo)
		}
		rest := line[size:]
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			return nil, errors.New(errors.ErrCodeInvalidFont, "line %d: missing '['", lineNo)
		}
		pixels := rest[open+1:]
		end := strings.IndexByte(pixels, ']')
		if end < 0 {
			return nil, errors.New(errors.ErrCodeInvalidFont, "line %d: missing ']'", lineNo)
		}
		pixels = pixels[:end]
		if len(pixels) > Width {
			return nil, errors.New(errors.ErrCodeInvalidFont, "line %d: row of %q is %d pixels wide (max %d)", lineNo, c, len(pixels), Width)
		}

		if c != lastCh {
			if _, seen := rows[c]; seen {
				return nil, errors.New(errors.ErrCodeInvalidFont, "line %d: glyph %q defined twice", lineNo, c)
			}
		}
		y := rows[c]
		if y >= Height {
			return nil, errors.New(errors.ErrCodeInvalidFont, "line %d: glyph %q is taller than %d rows", lineNo, c, Height)
		}

		b := glyphs[c]
		b[y] = textRowToBits(pixels)
		glyphs[c] = b
		rows[c] = y + 1
		lastCh = c
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFont, err, "read font")
	}
	return glyphs, nil
}

// Encode writes the glyphs for runes from src in the text format.
// Characters src does not cover are written as Fallback.
func Encode(w io.Writer, src Source, runes []rune) error {
	bw := bufio.NewWriter(w)
	for _, r := range runes {
		b := BitmapFor(src, r)
		for y := 0; y < Height; y++ {
			if _, err := fmt.Fprintf(bw, "%c  [%s]\n", r, rowString(b[y])); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
