package pipeline

import "github.com/saleklar/spine-sorter/internal/executor"

// RunStats aggregates one batch run.
type RunStats struct {
	Total        int
	Moved        int
	Copied       int
	Skipped      int
	Failed       int
	Unclassified int
	Invalid      int
	Conflicts    int
}

func (s *RunStats) addResult(r executor.Result) {
	s.Moved += r.Moved
	s.Copied += r.Copied
	s.Skipped += r.Skipped
	s.Failed += r.Failed
}

// Clean reports whether the run completed with nothing needing attention.
func (s RunStats) Clean() bool {
	return s.Failed == 0 && s.Unclassified == 0 && s.Invalid == 0 && s.Conflicts == 0
}
