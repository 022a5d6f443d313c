package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/bigtext/pkg/errors"
	"github.com/matzehuels/bigtext/pkg/font"
	"github.com/matzehuels/bigtext/pkg/layout"
	"github.com/matzehuels/bigtext/pkg/pixel"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// setFlags returns a changed func reporting the given flag names as set.
func setFlags(names ...string) func(string) bool {
	set := make(map[string]bool)
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func defaultOpts() styleOpts {
	return styleOpts{density: pixel.Full.String(), align: layout.Left.String()}
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.toml", `
density = "quadrant"
align = "center"

[style]
foreground = "205"
bold = true
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Density != "quadrant" || cfg.Align != "center" {
		t.Errorf("loadConfig() = %+v", cfg)
	}
	if cfg.Style.Foreground != "205" || !cfg.Style.Bold {
		t.Errorf("loadConfig() style = %+v", cfg.Style)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr errors.Code
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			wantErr: errors.ErrCodeFileNotFound,
		},
		{
			name:    "syntax error",
			path:    func(t *testing.T) string { return writeFile(t, "bad.toml", "density = \n") },
			wantErr: errors.ErrCodeInvalidConfig,
		},
		{
			name:    "unknown key",
			path:    func(t *testing.T) string { return writeFile(t, "extra.toml", "colour = \"red\"\n") },
			wantErr: errors.ErrCodeInvalidConfig,
		},
		{
			name:    "wrong type",
			path:    func(t *testing.T) string { return writeFile(t, "type.toml", "density = 3\n") },
			wantErr: errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.path(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("loadConfig() error = %v, want code %s", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "BIGTEXT_TEST_DOTENV"
	os.Unsetenv(key)
	t.Cleanup(func() { os.Unsetenv(key) })

	if err := loadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("loadDotEnv() on a missing file error: %v", err)
	}

	path := writeFile(t, ".env", key+"=braille\n")
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv() error: %v", err)
	}
	if got := os.Getenv(key); got != "braille" {
		t.Errorf("%s = %q, want %q", key, got, "braille")
	}
}

func TestLoadDotEnvKeepsEnvironment(t *testing.T) {
	t.Setenv(envDensity, "quadrant")

	path := writeFile(t, ".env", envDensity+"=braille\n")
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv() error: %v", err)
	}
	if got := os.Getenv(envDensity); got != "quadrant" {
		t.Errorf("%s = %q, want the existing value", envDensity, got)
	}
}

func TestLoadFont(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		src, n, err := loadFont("")
		if err != nil || n != 0 || src != font.Basic {
			t.Errorf("loadFont(\"\") = %v, %d, %v", src, n, err)
		}
	})

	t.Run("custom glyph", func(t *testing.T) {
		path := writeFile(t, "font.txt", "A  [XXXXXXXX]\n")
		src, n, err := loadFont(path)
		if err != nil {
			t.Fatalf("loadFont() error: %v", err)
		}
		if n != 1 {
			t.Errorf("loaded %d glyphs, want 1", n)
		}
		if got := font.BitmapFor(src, 'A'); got[0] != 0xFF || got[1] != 0 {
			t.Errorf("custom A = %v", got)
		}
		if got := font.BitmapFor(src, 'B'); got != font.BitmapFor(font.Basic, 'B') {
			t.Error("B does not fall back to the built-in font")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := loadFont(filepath.Join(t.TempDir(), "none.txt"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("loadFont() error = %v, want FILE_NOT_FOUND", err)
		}
	})

	t.Run("invalid font", func(t *testing.T) {
		_, _, err := loadFont(writeFile(t, "bad.txt", "A  XXXX\n"))
		if !errors.Is(err, errors.ErrCodeInvalidFont) {
			t.Errorf("loadFont() error = %v, want INVALID_FONT", err)
		}
	})
}

func TestPick(t *testing.T) {
	t.Setenv("BIGTEXT_TEST_PICK", "env")

	tests := []struct {
		name    string
		flagSet bool
		env     string
		fileVal string
		want    string
	}{
		{"flag wins", true, "BIGTEXT_TEST_PICK", "file", "flag"},
		{"env beats file", false, "BIGTEXT_TEST_PICK", "file", "env"},
		{"file beats default", false, "", "file", "file"},
		{"unset env ignored", false, "BIGTEXT_TEST_UNSET", "file", "file"},
		{"default", false, "", "", "flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pick("flag", tt.flagSet, tt.env, tt.fileVal); got != tt.want {
				t.Errorf("pick() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	isolateEnv(t)
	opts := defaultOpts()

	s, err := opts.resolve(setFlags())
	if err != nil {
		t.Fatalf("resolve() error: %v", err)
	}
	if s.density != pixel.Full || s.alignment != layout.Left {
		t.Errorf("resolve() = %v/%v, want full/left", s.density, s.alignment)
	}
	if s.font != font.Basic || s.config != "" {
		t.Errorf("resolve() font = %v, config = %q", s.font, s.config)
	}
}

func TestResolvePrecedence(t *testing.T) {
	isolateEnv(t)
	path := writeFile(t, "config.toml", `
density = "quadrant"
align = "center"

[style]
foreground = "#00ff00"
bold = true
`)

	t.Run("config file", func(t *testing.T) {
		opts := defaultOpts()
		opts.config = path
		s, err := opts.resolve(setFlags("config"))
		if err != nil {
			t.Fatalf("resolve() error: %v", err)
		}
		if s.density != pixel.Quadrant || s.alignment != layout.Center {
			t.Errorf("resolve() = %v/%v, want quadrant/center", s.density, s.alignment)
		}
		if s.style.GetForeground() != lipgloss.Color("#00ff00") || !s.style.GetBold() {
			t.Error("style not taken from the config file")
		}
	})

	t.Run("env config path", func(t *testing.T) {
		t.Setenv(envConfig, path)
		opts := defaultOpts()
		s, err := opts.resolve(setFlags())
		if err != nil {
			t.Fatalf("resolve() error: %v", err)
		}
		if s.config != path || s.density != pixel.Quadrant {
			t.Errorf("resolve() config = %q, density = %v", s.config, s.density)
		}
	})

	t.Run("env beats file", func(t *testing.T) {
		t.Setenv(envDensity, "half-height")
		opts := defaultOpts()
		opts.config = path
		s, err := opts.resolve(setFlags("config"))
		if err != nil {
			t.Fatalf("resolve() error: %v", err)
		}
		if s.density != pixel.HalfHeight {
			t.Errorf("density = %v, want half-height", s.density)
		}
		if s.alignment != layout.Center {
			t.Errorf("alignment = %v, want center from the file", s.alignment)
		}
	})

	t.Run("flags beat env and file", func(t *testing.T) {
		t.Setenv(envDensity, "half-height")
		t.Setenv(envAlign, "right")
		opts := defaultOpts()
		opts.config = path
		opts.density = "braille"
		opts.align = "left"
		opts.bold = false
		s, err := opts.resolve(setFlags("config", "density", "align", "bold"))
		if err != nil {
			t.Fatalf("resolve() error: %v", err)
		}
		if s.density != pixel.Braille || s.alignment != layout.Left {
			t.Errorf("resolve() = %v/%v, want braille/left", s.density, s.alignment)
		}
		if s.style.GetBold() {
			t.Error("--bold=false did not override the config file")
		}
	})
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *styleOpts)
		flags   []string
		wantErr errors.Code
	}{
		{"unknown density", func(o *styleOpts) { o.density = "tiny" }, []string{"density"}, errors.ErrCodeInvalidDensity},
		{"indivisible density", func(o *styleOpts) { o.density = "sextant" }, []string{"density"}, errors.ErrCodeInvalidDensity},
		{"unknown alignment", func(o *styleOpts) { o.align = "justify" }, []string{"align"}, errors.ErrCodeInvalidAlignment},
		{"bad color", func(o *styleOpts) { o.fg = "pink" }, []string{"fg"}, errors.ErrCodeInvalidColor},
		{"missing font", func(o *styleOpts) { o.font = "/nonexistent/font.txt" }, []string{"font"}, errors.ErrCodeFileNotFound},
		{"missing config", func(o *styleOpts) { o.config = "/nonexistent/config.toml" }, []string{"config"}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			opts := defaultOpts()
			tt.mutate(&opts)
			_, err := opts.resolve(setFlags(tt.flags...))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("resolve() error = %v, want code %s", err, tt.wantErr)
			}
		})
	}
}

func TestBuildStyle(t *testing.T) {
	style, err := buildStyle("205", "#112233", true)
	if err != nil {
		t.Fatalf("buildStyle() error: %v", err)
	}
	if style.GetForeground() != lipgloss.Color("205") {
		t.Errorf("foreground = %v", style.GetForeground())
	}
	if style.GetBackground() != lipgloss.Color("#112233") {
		t.Errorf("background = %v", style.GetBackground())
	}
	if !style.GetBold() {
		t.Error("bold not set")
	}

	if _, err := buildStyle("", "300", false); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("buildStyle() error = %v, want INVALID_COLOR", err)
	}
}
