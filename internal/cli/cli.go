// Package cli implements the bigtext command-line interface.
//
// The CLI prints text as large block-character banners, previews them
// interactively and inspects the built-in font. It is built with cobra and
// logs through charmbracelet/log.
//
// # Commands
//
//   - render: Print text as a banner
//   - preview: Interactive preview cycling densities and alignments
//   - glyph: Dump the bitmap and packed forms of characters
//   - densities: List density modes and their packing factors
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Render settings come from flags, then BIGTEXT_* environment variables
// (a .env file in the working directory is loaded first), then a TOML
// config file. See [fileConfig] for the file format.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed to commands through context.Context.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bigtext/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "bigtext"

	// configFileName is the config file looked up in the user config directory.
	configFileName = "config.toml"

	// dotEnvFile is loaded from the working directory before each command.
	dotEnvFile = ".env"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Bigtext prints text as large block-character banners",
		Long:          `Bigtext renders short strings as big text built from terminal block, quadrant and braille characters, using an 8x8 bitmap font.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDotEnv(dotEnvFile); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.Logger.Debug("Starting", "command", cmd.Name(), "version", buildinfo.Version, "commit", buildinfo.Commit)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.glyphCommand())
	root.AddCommand(c.densitiesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/bigtext/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultConfigPath returns the user config file if it exists, or "".
func defaultConfigPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
