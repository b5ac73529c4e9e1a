// Package display renders the banner and the sort plan for the terminal.
package display

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/saleklar/spine-sorter/internal/planner"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true).
			MarginTop(1)

	folderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	renameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// PrintBanner prints the startup banner.
func PrintBanner(w io.Writer, version string) {
	fmt.Fprintln(w, bannerStyle.Render(` ____        _              ____             _
/ ___| _ __ (_)_ __   ___  / ___|  ___  _ __| |_ ___ _ __
\___ \| '_ \| | '_ \ / _ \ \___ \ / _ \| '__| __/ _ \ '__|
 ___) | |_) | | | | |  __/  ___) | (_) | |  | ||  __/ |
|____/| .__/|_|_| |_|\___| |____/ \___/|_|   \__\___|_|
      |_|`))
	fmt.Fprintln(w, dimStyle.Render("  version "+version))
}

// RenderPlan writes the full sort plan: moves grouped view, then conflicts,
// invalid, and unclassified sections. Sections with no entries are omitted.
func RenderPlan(w io.Writer, plan *planner.SortPlan) {
	if len(plan.Moves) > 0 {
		fmt.Fprintln(w, sectionStyle.Render(fmt.Sprintf("Moves (%d)", len(plan.Moves))))
		for _, m := range plan.Moves {
			base := filepath.Base(m.Source)
			line := fmt.Sprintf("  %s  %s  %s", base, dimStyle.Render("->"),
				folderStyle.Render(m.Folder+"/")+m.Name)
			if m.Renamed(base) {
				line += "  " + renameStyle.Render("(renamed)")
			}
			fmt.Fprintln(w, line)
		}
	}

	if len(plan.Conflicts) > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Conflicts (%d) - withheld, resolve by renaming", len(plan.Conflicts))))
		for _, c := range plan.Conflicts {
			fmt.Fprintf(w, "  %s  %s  %s\n", filepath.Base(c.Source),
				dimStyle.Render("=>"), folderStyle.Render(c.Folder+"/")+c.Name)
		}
	}

	if len(plan.Invalid) > 0 {
		fmt.Fprintln(w, errStyle.Render(fmt.Sprintf("Invalid (%d)", len(plan.Invalid))))
		for _, inv := range plan.Invalid {
			fmt.Fprintf(w, "  %s  %s\n", filepath.Base(inv.Source), dimStyle.Render(inv.Reason))
		}
	}

	if len(plan.Unclassified) > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Unclassified (%d) - no known category", len(plan.Unclassified))))
		for _, u := range plan.Unclassified {
			fmt.Fprintf(w, "  %s\n", filepath.Base(u))
		}
	}
}
