package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saleklar/spine-sorter/internal/grammar"
	"github.com/saleklar/spine-sorter/internal/naming"
)

func newInspectCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Show how each filename classifies, without touching anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := naming.NewParser(grammar.Default())
			bad := 0
			for _, f := range args {
				if !inspectOne(parser, f) {
					bad++
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d files did not classify", bad, len(args))
			}
			return nil
		},
	}
}

func inspectOne(parser *naming.Parser, file string) bool {
	res := parser.Parse(filepath.Base(file))
	switch res.Status {
	case naming.StatusMatched:
		dest, err := parser.Destination(res.Classification)
		if err != nil {
			fmt.Fprintf(os.Stdout, "%s: %v\n", file, err)
			return false
		}
		fmt.Fprintf(os.Stdout, "%s: category=%s -> %s/%s\n",
			file, res.Classification.Category, dest.Folder, dest.Name)
		for _, t := range res.Classification.Tokens {
			fmt.Fprintf(os.Stdout, "    %-12s %s\n", t.Role, t.Value)
		}
		return true
	case naming.StatusInvalid:
		fmt.Fprintf(os.Stdout, "%s: invalid (%s)\n", file, res.Reason)
	default:
		fmt.Fprintf(os.Stdout, "%s: unclassified\n", file)
	}
	return false
}
