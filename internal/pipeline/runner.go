package pipeline

import (
	"context"
	"os"

	"github.com/phuslu/log"

	"github.com/saleklar/spine-sorter/internal/config"
	"github.com/saleklar/spine-sorter/internal/display"
	"github.com/saleklar/spine-sorter/internal/executor"
	"github.com/saleklar/spine-sorter/internal/grammar"
	"github.com/saleklar/spine-sorter/internal/planner"
)

// Runner wires discovery, planning, rendering, and execution for batch and
// watch runs.
type Runner struct {
	cfg   *config.Config
	log   *log.Logger
	table *grammar.Table
	exec  *executor.Executor
}

// NewRunner builds a runner over an immutable grammar table.
func NewRunner(cfg *config.Config, logger *log.Logger, table *grammar.Table) *Runner {
	return &Runner{
		cfg:   cfg,
		log:   logger,
		table: table,
		exec:  executor.New(cfg, logger),
	}
}

// Run is the top-level batch entry point: discover, plan, render, execute.
func (r *Runner) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats

	files, err := Discover(r.cfg.InputDir)
	if err != nil {
		return stats, err
	}
	stats.Total = len(files)
	if len(files) == 0 {
		r.log.Info().Str("dir", r.cfg.InputDir).Msg("no asset files found")
		return stats, nil
	}

	plan, err := planner.Plan(r.table, files)
	if err != nil {
		return stats, err
	}
	stats.Unclassified = len(plan.Unclassified)
	stats.Invalid = len(plan.Invalid)
	stats.Conflicts = len(plan.Conflicts)

	display.RenderPlan(os.Stdout, plan)

	stats.addResult(r.exec.Apply(ctx, plan, r.cfg.OutputDir))
	r.logSummary(stats)
	return stats, nil
}

func (r *Runner) logSummary(s RunStats) {
	var ev *log.Entry
	if s.Clean() {
		ev = r.log.Info()
	} else {
		ev = r.log.Warn()
	}
	ev.Int("total", s.Total).
		Int("moved", s.Moved).
		Int("copied", s.Copied).
		Int("skipped", s.Skipped).
		Int("failed", s.Failed).
		Int("unclassified", s.Unclassified).
		Int("invalid", s.Invalid).
		Int("conflicts", s.Conflicts).
		Msg("run complete")
}
