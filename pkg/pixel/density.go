package pixel

import (
	"strconv"
	"strings"

	"github.com/matzehuels/bigtext/pkg/errors"
	"github.com/matzehuels/bigtext/pkg/font"
)

// Density selects how many font pixels are packed into one output cell.
type Density int

const (
	// Full maps every font pixel to one cell.
	Full Density = iota
	// HalfHeight packs two vertically adjacent pixels per cell.
	HalfHeight
	// HalfWidth packs two horizontally adjacent pixels per cell.
	HalfWidth
	// Quadrant packs a 2x2 block per cell.
	Quadrant
	// ThirdHeight packs three vertically adjacent pixels per cell.
	ThirdHeight
	// Sextant packs a 2x3 block per cell.
	Sextant
	// Braille packs a 2x4 block per cell into a braille pattern.
	Braille
)

var densityNames = [...]string{
	Full:        "full",
	HalfHeight:  "half-height",
	HalfWidth:   "half-width",
	Quadrant:    "quadrant",
	ThirdHeight: "third-height",
	Sextant:     "sextant",
	Braille:     "braille",
}

// factors holds columns x rows of font pixels per cell.
var factors = [...][2]int{
	Full:        {1, 1},
	HalfHeight:  {1, 2},
	HalfWidth:   {2, 1},
	Quadrant:    {2, 2},
	ThirdHeight: {1, 3},
	Sextant:     {2, 3},
	Braille:     {2, 4},
}

// Densities returns every declared density, including the ones that fail
// validation.
func Densities() []Density {
	return []Density{Full, HalfHeight, HalfWidth, Quadrant, ThirdHeight, Sextant, Braille}
}

// ValidDensities returns the densities accepted by NewPacker.
func ValidDensities() []Density {
	var out []Density
	for _, d := range Densities() {
		if d.Validate() == nil {
			out = append(out, d)
		}
	}
	return out
}

func (d Density) known() bool {
	return d >= 0 && int(d) < len(densityNames)
}

// String returns the density name used by ParseDensity.
func (d Density) String() string {
	if !d.known() {
		return "Density(" + strconv.Itoa(int(d)) + ")"
	}
	return densityNames[d]
}

// Factors returns the font pixels per cell: cols horizontally, rows vertically.
// Unknown densities report 0, 0.
func (d Density) Factors() (cols, rows int) {
	if !d.known() {
		return 0, 0
	}
	f := factors[d]
	return f[0], f[1]
}

// Validate checks that the density is known and that its factors divide
// the glyph width and height.
func (d Density) Validate() error {
	if !d.known() {
		return errors.New(errors.ErrCodeInvalidDensity, "unknown density %d", int(d))
	}
	cols, rows := d.Factors()
	if font.Width%cols != 0 {
		return errors.New(errors.ErrCodeInvalidDensity,
			"density %s packs %d columns per cell, which does not divide the %d pixel glyph width", d, cols, font.Width)
	}
	if font.Height%rows != 0 {
		return errors.New(errors.ErrCodeInvalidDensity,
			"density %s packs %d rows per cell, which does not divide the %d pixel glyph height", d, rows, font.Height)
	}
	return nil
}

// ParseDensity parses a density name. Matching ignores case, and "_" and
// " " are accepted in place of "-". The result is not validated.
func ParseDensity(s string) (Density, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	for d, n := range densityNames {
		if n == name {
			return Density(d), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidDensity,
		"invalid density: %q (must be one of: %s)", s, strings.Join(densityNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (d Density) MarshalText() ([]byte, error) {
	if !d.known() {
		return nil, errors.New(errors.ErrCodeInvalidDensity, "unknown density %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Density) UnmarshalText(text []byte) error {
	v, err := ParseDensity(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
