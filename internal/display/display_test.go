package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saleklar/spine-sorter/internal/planner"
)

func TestRenderPlanSections(t *testing.T) {
	plan := &planner.SortPlan{
		Moves: []planner.MoveEntry{
			{Source: "button_buy_bonus.png", Folder: "buttons", Name: "button_buy_bonus.png"},
			{Source: "in/buy_bonus_btn.png", Folder: "buttons", Name: "button_buy_bonus_2.png"},
		},
		Unclassified: []string{"mystery.png"},
		Invalid: []planner.InvalidEntry{
			{Source: "hero_001.png", Reason: `frame index "001" must be exactly two digits`},
		},
		Conflicts: []planner.MoveEntry{
			{Source: "a.png", Folder: "buttons", Name: "same.png"},
			{Source: "b.png", Folder: "buttons", Name: "same.png"},
		},
	}

	var sb strings.Builder
	RenderPlan(&sb, plan)
	out := sb.String()

	require.Contains(t, out, "Moves (2)")
	require.Contains(t, out, "button_buy_bonus.png")
	require.Contains(t, out, "(renamed)")
	require.Contains(t, out, "Conflicts (2)")
	require.Contains(t, out, "Invalid (1)")
	require.Contains(t, out, "exactly two digits")
	require.Contains(t, out, "Unclassified (1)")
	require.Contains(t, out, "mystery.png")
}

func TestRenderPlanOmitsEmptySections(t *testing.T) {
	var sb strings.Builder
	RenderPlan(&sb, &planner.SortPlan{
		Moves: []planner.MoveEntry{{Source: "ambient.skel", Folder: "ambient", Name: "ambient.skel"}},
	})
	out := sb.String()

	require.Contains(t, out, "Moves (1)")
	require.NotContains(t, out, "Conflicts")
	require.NotContains(t, out, "Invalid")
	require.NotContains(t, out, "Unclassified")
}
