package errors

import (
	"regexp"
	"strconv"
	"unicode"
)

// MaxTextLength bounds the banner text accepted from user input.
const MaxTextLength = 4096

// ValidateText validates banner text supplied on the command line or stdin.
//
// The rules are:
//   - No empty text
//   - Maximum length of MaxTextLength bytes
//   - No control characters other than newline and tab
//
// Characters missing from the font are not an error; they render blank.
func ValidateText(text string) error {
	if text == "" {
		return New(ErrCodeInvalidInput, "text cannot be empty")
	}

	if len(text) > MaxTextLength {
		return New(ErrCodeInvalidInput, "text too long (max %d bytes)", MaxTextLength)
	}

	for _, r := range text {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "text contains control character %U", r)
		}
	}

	return nil
}

// hexColorRegex matches #rgb and #rrggbb colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ValidateColor validates a terminal color as accepted by lipgloss.Color:
// an ANSI palette index (0-255) or a hex color. The empty string means
// "no color" and is valid.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}

	if hexColorRegex.MatchString(color) {
		return nil
	}

	n, err := strconv.Atoi(color)
	if err != nil {
		return New(ErrCodeInvalidColor, "invalid color %q (must be 0-255 or #rrggbb)", color)
	}
	if n < 0 || n > 255 {
		return New(ErrCodeInvalidColor, "color index %d out of range (0-255)", n)
	}

	return nil
}
