// Command spinesorter classifies exported game-asset files against the
// studio naming convention and sorts them into the canonical folder tree.
package main

import (
	"fmt"
	"os"
)

// version and commit are set at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spinesorter: %v\n", err)
		os.Exit(1)
	}
}
