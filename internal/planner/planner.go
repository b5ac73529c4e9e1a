package planner

import (
	"errors"
	"path"
	"path/filepath"

	"github.com/saleklar/spine-sorter/internal/grammar"
	"github.com/saleklar/spine-sorter/internal/naming"
)

// ErrEmptyFilename signals a caller contract violation: input lists must not
// contain empty filenames.
var ErrEmptyFilename = errors.New("empty filename in input list")

// Plan parses and classifies every file and partitions the results. Sources
// may be bare filenames or full paths; classification uses the basename only.
//
// Two distinct sources landing on the same (folder, name) pair are both
// withheld from Moves and reported in Conflicts, never silently overwritten.
// All four partitions preserve the input order.
func Plan(table *grammar.Table, files []string) (*SortPlan, error) {
	parser := naming.NewParser(table)
	plan := &SortPlan{}

	type candidate struct {
		entry MoveEntry
		key   string
	}
	candidates := make([]candidate, 0, len(files))
	claims := make(map[string]int, len(files))

	for _, f := range files {
		if f == "" {
			return nil, ErrEmptyFilename
		}
		res := parser.Parse(filepath.Base(f))
		switch res.Status {
		case naming.StatusUnmatched:
			plan.Unclassified = append(plan.Unclassified, f)
		case naming.StatusInvalid:
			plan.Invalid = append(plan.Invalid, InvalidEntry{Source: f, Reason: res.Reason})
		case naming.StatusMatched:
			dest, err := parser.Destination(res.Classification)
			if err != nil {
				return nil, err
			}
			key := path.Join(dest.Folder, dest.Name)
			claims[key]++
			candidates = append(candidates, candidate{
				entry: MoveEntry{
					Source:         f,
					Folder:         dest.Folder,
					Name:           dest.Name,
					Classification: res.Classification,
				},
				key: key,
			})
		}
	}

	for _, c := range candidates {
		if claims[c.key] > 1 {
			plan.Conflicts = append(plan.Conflicts, c.entry)
		} else {
			plan.Moves = append(plan.Moves, c.entry)
		}
	}
	return plan, nil
}
