package main

import (
	"github.com/spf13/cobra"

	"github.com/saleklar/spine-sorter/internal/config"
)

func newWatchCmd(st *rootState) *cobra.Command {
	var useCopy bool
	var force bool
	var noRename bool

	cmd := &cobra.Command{
		Use:   "watch <input_dir> <output_dir>",
		Short: "Sort once, then keep sorting as new assets appear in input_dir",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			applySortFlags(&st.cfg, args, useCopy, force, noRename)
			runner, err := prepareRunner(st)
			if err != nil {
				return err
			}
			return runner.Watch(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&useCopy, "copy", false, "copy files instead of moving them")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing destination files")
	cmd.Flags().BoolVar(&noRename, "no-rename", false, "keep source filenames instead of canonical names")
	cmd.Flags().IntVar(&st.cfg.WatchDebounceMS, "debounce-ms", config.Default().WatchDebounceMS,
		"quiet period before re-sorting after a filesystem event")
	return cmd
}
