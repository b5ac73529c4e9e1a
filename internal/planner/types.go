package planner

import "github.com/saleklar/spine-sorter/internal/naming"

// MoveEntry routes one source file to its destination. Source is the path as
// supplied by the caller; Folder and Name are relative to the output root.
type MoveEntry struct {
	Source         string
	Folder         string
	Name           string
	Classification *naming.Classification
}

// Renamed reports whether applying the entry changes the file's basename.
func (e MoveEntry) Renamed(basename string) bool { return e.Name != basename }

// InvalidEntry is a file that matched a category anchor but violated a token
// constraint.
type InvalidEntry struct {
	Source string
	Reason string
}

// SortPlan partitions every input filename into exactly one of four buckets.
// Each bucket preserves the input order. A plan is created fresh per
// invocation and never mutated after being returned.
type SortPlan struct {
	Moves        []MoveEntry
	Unclassified []string
	Invalid      []InvalidEntry
	Conflicts    []MoveEntry // distinct sources claiming the same destination
}

// Total returns the number of input files the plan accounts for.
func (p *SortPlan) Total() int {
	return len(p.Moves) + len(p.Unclassified) + len(p.Invalid) + len(p.Conflicts)
}
