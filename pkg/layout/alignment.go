package layout

import (
	"strconv"
	"strings"

	"github.com/matzehuels/bigtext/pkg/errors"
)

// Alignment is the horizontal placement of a line within the available width.
type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

var alignmentNames = [...]string{
	Left:   "left",
	Center: "center",
	Right:  "right",
}

// String returns the alignment name used by ParseAlignment.
func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return "Alignment(" + strconv.Itoa(int(a)) + ")"
	}
	return alignmentNames[a]
}

// Validate reports an INVALID_ALIGNMENT error for unknown values.
func (a Alignment) Validate() error {
	if a < 0 || int(a) >= len(alignmentNames) {
		return errors.New(errors.ErrCodeInvalidAlignment, "unknown alignment %d", int(a))
	}
	return nil
}

// ParseAlignment parses "left", "center" or "right", ignoring case.
func ParseAlignment(s string) (Alignment, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range alignmentNames {
		if n == name {
			return Alignment(a), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidAlignment,
		"invalid alignment: %q (must be one of: left, center, right)", s)
}

// Offset returns the leading columns for content of width used placed in
// avail columns. Content as wide as or wider than avail is not offset.
func (a Alignment) Offset(avail, used int) int {
	if used >= avail {
		return 0
	}
	switch a {
	case Center:
		return (avail - used) / 2
	case Right:
		return avail - used
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
