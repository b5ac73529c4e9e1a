package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saleklar/spine-sorter/internal/config"
	"github.com/saleklar/spine-sorter/internal/display"
	"github.com/saleklar/spine-sorter/internal/grammar"
	"github.com/saleklar/spine-sorter/internal/pipeline"
)

func newSortCmd(st *rootState) *cobra.Command {
	var useCopy bool
	var force bool
	var noRename bool

	cmd := &cobra.Command{
		Use:   "sort <input_dir> <output_dir>",
		Short: "Classify every asset in input_dir and sort into output_dir",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			applySortFlags(&st.cfg, args, useCopy, force, noRename)
			runner, err := prepareRunner(st)
			if err != nil {
				return err
			}
			stats, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			if stats.Failed > 0 {
				return fmt.Errorf("%d transfers failed", stats.Failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&st.cfg.DryRun, "dry-run", false, "plan and report only, touch nothing")
	cmd.Flags().BoolVar(&useCopy, "copy", false, "copy files instead of moving them")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing destination files")
	cmd.Flags().BoolVar(&noRename, "no-rename", false, "keep source filenames instead of canonical names")
	return cmd
}

func applySortFlags(cfg *config.Config, args []string, useCopy, force, noRename bool) {
	cfg.InputDir = config.NormalizeDirArg(args[0])
	cfg.OutputDir = config.NormalizeDirArg(args[1])
	if useCopy {
		cfg.Transfer = config.TransferCopy
	}
	if force {
		cfg.SkipExisting = false
	}
	if noRename {
		cfg.Rename = false
	}
}

// prepareRunner validates config and paths, creates the output dir, and
// builds the pipeline runner over the default grammar table.
func prepareRunner(st *rootState) (*pipeline.Runner, error) {
	if err := st.cfg.Validate(); err != nil {
		return nil, err
	}

	inputAbs, err := absPath(st.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("input not found: %s", st.cfg.InputDir)
	}
	if err := os.MkdirAll(st.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %s", st.cfg.OutputDir)
	}
	outputAbs, err := absPath(st.cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := st.cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		return nil, err
	}

	display.PrintBanner(os.Stdout, version)
	return pipeline.NewRunner(&st.cfg, st.log, grammar.Default()), nil
}

// absPath resolves symlinks and returns an absolute path.
func absPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
