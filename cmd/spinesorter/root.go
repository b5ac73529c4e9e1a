package main

import (
	"fmt"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/saleklar/spine-sorter/internal/config"
	"github.com/saleklar/spine-sorter/internal/logging"
)

// rootState carries config and logger from pre-run into subcommands.
type rootState struct {
	cfg        config.Config
	log        *log.Logger
	configPath string
}

func newRootCmd() *cobra.Command {
	st := &rootState{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "spinesorter",
		Short:         "Sort game-asset files by the studio naming convention",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := st.configPath
			required := path != ""
			if path == "" {
				path = config.DefaultPath()
			}
			if path != "" {
				if err := config.LoadFile(&st.cfg, path, required); err != nil {
					return err
				}
			}
			// Flags override the config file.
			applyFlagOverrides(cmd, &st.cfg)

			logger, err := logging.New(&st.cfg)
			if err != nil {
				return err
			}
			st.log = logger
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.configPath, "config", "", "path to YAML config file")
	pf.BoolVar(&st.cfg.Verbose, "verbose", false, "enable debug logging")
	pf.StringVar(&st.cfg.LogFile, "log-file", "", "append log entries to this file")
	pf.String("color", string(config.ColorAuto), "color output: auto, always, never")

	root.AddCommand(newSortCmd(st), newWatchCmd(st), newInspectCmd(st))
	return root
}

// applyFlagOverrides re-applies every config-backed flag the user set
// explicitly. Cobra parses flags into cfg before the config file is overlaid,
// so file values would otherwise clobber them; precedence is defaults, then
// file, then flags.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if f := flags.Lookup("color"); f != nil && f.Changed {
		cfg.ColorMode = config.ColorMode(f.Value.String())
	}
	if f := flags.Lookup("verbose"); f != nil && f.Changed {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if f := flags.Lookup("log-file"); f != nil && f.Changed {
		cfg.LogFile = f.Value.String()
	}
	if f := flags.Lookup("dry-run"); f != nil && f.Changed {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}
	if f := flags.Lookup("debounce-ms"); f != nil && f.Changed {
		cfg.WatchDebounceMS, _ = flags.GetInt("debounce-ms")
	}
}
