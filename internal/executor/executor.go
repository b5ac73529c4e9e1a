package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phuslu/log"

	"github.com/saleklar/spine-sorter/internal/config"
	"github.com/saleklar/spine-sorter/internal/planner"
)

// Result counts per-entry outcomes of one Apply call.
type Result struct {
	Moved   int
	Copied  int
	Skipped int
	Failed  int
}

// Executor applies sort plans under a fixed output root.
type Executor struct {
	cfg *config.Config
	log *log.Logger
}

// New returns an executor bound to config and logger.
func New(cfg *config.Config, logger *log.Logger) *Executor {
	return &Executor{cfg: cfg, log: logger}
}

// Apply processes every move entry in the plan. Failures are logged and
// counted; the run continues. Dry-run logs the would-be operations only.
func (e *Executor) Apply(ctx context.Context, plan *planner.SortPlan, outputDir string) Result {
	var res Result
	for _, entry := range plan.Moves {
		if ctx.Err() != nil {
			e.log.Warn().Msg("interrupted")
			break
		}
		if err := e.applyOne(entry, outputDir, &res); err != nil {
			e.log.Error().Err(err).Str("source", entry.Source).Msg("transfer failed")
			res.Failed++
		}
	}
	return res
}

func (e *Executor) applyOne(entry planner.MoveEntry, outputDir string, res *Result) error {
	name := entry.Name
	if !e.cfg.Rename {
		name = filepath.Base(entry.Source)
	}
	destDir := filepath.Join(outputDir, entry.Folder)
	dest := filepath.Join(destDir, name)

	if e.cfg.SkipExisting {
		if _, err := os.Stat(dest); err == nil {
			e.log.Debug().Str("dest", dest).Msg("destination exists, skipping")
			res.Skipped++
			return nil
		}
	}

	if e.cfg.DryRun {
		e.log.Info().Str("source", entry.Source).Str("dest", dest).
			Str("mode", string(e.cfg.Transfer)).Msg("dry run")
		res.Skipped++
		return nil
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", destDir, err)
	}

	switch e.cfg.Transfer {
	case config.TransferCopy:
		if err := copyFile(entry.Source, dest); err != nil {
			return err
		}
		res.Copied++
	default:
		if err := moveFile(entry.Source, dest); err != nil {
			return err
		}
		res.Moved++
	}
	e.log.Debug().Str("source", entry.Source).Str("dest", dest).Msg("transferred")
	return nil
}

// moveFile renames source to dest, falling back to copy-and-remove when the
// rename crosses filesystems.
func moveFile(source, dest string) error {
	if err := os.Rename(source, dest); err == nil {
		return nil
	}
	if err := copyFile(source, dest); err != nil {
		return err
	}
	return os.Remove(source)
}

func copyFile(source, dest string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	return out.Close()
}
