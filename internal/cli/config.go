package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/matzehuels/bigtext/pkg/errors"
	"github.com/matzehuels/bigtext/pkg/font"
	"github.com/matzehuels/bigtext/pkg/layout"
	"github.com/matzehuels/bigtext/pkg/pixel"
)

// Environment variables consulted when the matching flag is not set.
const (
	envConfig  = "BIGTEXT_CONFIG"
	envDensity = "BIGTEXT_DENSITY"
	envAlign   = "BIGTEXT_ALIGN"
)

// fileConfig is the TOML config file:
//
//	density = "quadrant"
//	align = "center"
//	font = "fonts/custom.txt"
//
//	[style]
//	foreground = "205"
//	background = ""
//	bold = true
type fileConfig struct {
	Density string      `toml:"density"`
	Align   string      `toml:"align"`
	Font    string      `toml:"font"`
	Style   styleConfig `toml:"style"`
}

type styleConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Bold       bool   `toml:"bold"`
}

// loadConfig reads a TOML config file. Unknown keys are rejected.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// loadDotEnv loads environment variables from path if the file exists.
// Variables already set in the environment are kept.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return nil
}

// loadFont reads a text font file and chains it before the built-in font.
// An empty path returns font.Basic.
func loadFont(path string) (font.Source, int, error) {
	if path == "" {
		return font.Basic, 0, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, errors.Wrap(errors.ErrCodeFileNotFound, err, "font file %s", path)
		}
		return nil, 0, errors.Wrap(errors.ErrCodeInvalidFont, err, "open font %s", path)
	}
	defer f.Close()

	table, err := font.Decode(f)
	if err != nil {
		return nil, 0, errors.Wrap(errors.ErrCodeInvalidFont, err, "font %s", path)
	}
	return font.Chain(table, font.Basic), len(table), nil
}

// =============================================================================
// Settings Resolution
// =============================================================================

// styleOpts holds the styling flags shared by render and preview.
type styleOpts struct {
	density string // density mode name
	align   string // alignment name
	fg      string // foreground color
	bg      string // background color
	bold    bool   // bold text
	font    string // text font file
	config  string // TOML config file
}

// settings are the resolved widget options.
type settings struct {
	density   pixel.Density
	alignment layout.Alignment
	style     lipgloss.Style
	font      font.Source
	glyphs    int    // glyphs loaded from a font file
	config    string // config file used, if any
}

// resolve merges flags, environment and config file into settings.
// changed reports whether a flag was set on the command line.
func (o *styleOpts) resolve(changed func(string) bool) (*settings, error) {
	s := &settings{config: pick(o.config, changed("config"), envConfig, defaultConfigPath())}

	var file fileConfig
	if s.config != "" {
		var err error
		if file, err = loadConfig(s.config); err != nil {
			return nil, err
		}
	}

	density, err := pixel.ParseDensity(pick(o.density, changed("density"), envDensity, file.Density))
	if err != nil {
		return nil, err
	}
	if err := density.Validate(); err != nil {
		return nil, err
	}
	s.density = density

	if s.alignment, err = layout.ParseAlignment(pick(o.align, changed("align"), envAlign, file.Align)); err != nil {
		return nil, err
	}

	fg := pick(o.fg, changed("fg"), "", file.Style.Foreground)
	bg := pick(o.bg, changed("bg"), "", file.Style.Background)
	bold := file.Style.Bold
	if changed("bold") {
		bold = o.bold
	}
	if s.style, err = buildStyle(fg, bg, bold); err != nil {
		return nil, err
	}

	if s.font, s.glyphs, err = loadFont(pick(o.font, changed("font"), "", file.Font)); err != nil {
		return nil, err
	}
	return s, nil
}

// pick returns the flag value if it was set, then the environment variable
// named env if non-empty, then fileVal if non-empty, then the flag default.
func pick(flagVal string, flagSet bool, env, fileVal string) string {
	if flagSet {
		return flagVal
	}
	if env != "" {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	if fileVal != "" {
		return fileVal
	}
	return flagVal
}

// buildStyle validates the colors and builds the widget style.
func buildStyle(fg, bg string, bold bool) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()
	if err := errors.ValidateColor(fg); err != nil {
		return style, err
	}
	if err := errors.ValidateColor(bg); err != nil {
		return style, err
	}
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	if bold {
		style = style.Bold(true)
	}
	return style, nil
}
