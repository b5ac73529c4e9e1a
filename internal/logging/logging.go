// Package logging configures the process logger: a colored console writer,
// an optional file sink, and the level derived from config.
package logging

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/phuslu/log"

	"github.com/saleklar/spine-sorter/internal/config"
)

// New builds a logger from config. Console output goes to stderr; when
// cfg.LogFile is set, entries are also appended there as JSON lines.
func New(cfg *config.Config) (*log.Logger, error) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	console := &log.ConsoleWriter{
		Writer:         os.Stderr,
		ColorOutput:    colorEnabled(cfg.ColorMode),
		EndWithMessage: true,
	}

	logger := &log.Logger{
		Level:      level,
		TimeFormat: "15:04:05",
		Writer:     console,
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		logger.Writer = &log.MultiEntryWriter{
			console,
			&log.FileWriter{Filename: cfg.LogFile, FileMode: 0o644},
		}
	}
	return logger, nil
}

func colorEnabled(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}
