// Package config holds runtime configuration: defaults, optional YAML config
// file overlay, and validation.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TransferMode selects how the executor relocates files.
type TransferMode string

const (
	TransferMove TransferMode = "move" // Rename into place (default).
	TransferCopy TransferMode = "copy" // Leave sources untouched.
)

// ColorMode controls colored terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Color when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors.
)

// Config holds all runtime settings. It is populated by [Default], then
// overlaid from an optional YAML file and CLI flags before being passed (by
// pointer) to the packages that need it.
type Config struct {
	// Paths (set from positional args or config file).
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`

	// Behavior flags.
	DryRun       bool         `yaml:"dry_run"`
	Transfer     TransferMode `yaml:"transfer" validate:"oneof=move copy"`
	Rename       bool         `yaml:"rename"`        // Apply canonical names; cleared by --no-rename.
	SkipExisting bool         `yaml:"skip_existing"` // Default true; cleared by --force.

	// Watch mode.
	WatchDebounceMS int `yaml:"watch_debounce_ms" validate:"gte=50,lte=60000"`

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	ColorMode ColorMode `yaml:"color" validate:"oneof=auto always never"`
	LogFile   string    `yaml:"log_file"`
}

// Default returns a Config with the stock defaults.
func Default() Config {
	return Config{
		Transfer:        TransferMove,
		Rename:          true,
		SkipExisting:    true,
		WatchDebounceMS: 400,
		ColorMode:       ColorAuto,
	}
}

var validate = validator.New()

// Validate checks enum and range fields, then requires both directory paths.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return errors.New("invalid config field " + strings.ToLower(f.StructField()))
		}
		return err
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("need both input and output directories")
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path. The
// filesystem root is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ValidatePaths ensures the resolved output directory is not inside (or equal
// to) the resolved input directory, which would make the pipeline re-discover
// its own output. Both arguments must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
