package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The match order is data, not incidental code order: a pattern whose anchor
// extends another pattern's anchor must be tried first, otherwise the short
// pattern greedily matches the longer name (panel vs panel_jackpot,
// feature_screen vs feature_screen_anim).
func TestTablePriorityInvariant(t *testing.T) {
	patterns := Default().Patterns()

	anchorWords := func(p Pattern) []string {
		a := p.Anchor()
		if a == "" {
			return nil
		}
		return strings.Split(a, "_")
	}
	isStrictPrefix := func(short, long []string) bool {
		if len(short) == 0 || len(short) >= len(long) {
			return false
		}
		for i := range short {
			if short[i] != long[i] {
				return false
			}
		}
		return true
	}

	for i, earlier := range patterns {
		for _, later := range patterns[i+1:] {
			ew, lw := anchorWords(earlier), anchorWords(later)
			require.Falsef(t, isStrictPrefix(ew, lw),
				"pattern %s (anchor %q) is ordered before %s (anchor %q) which extends it",
				earlier.Category, earlier.Anchor(), later.Category, later.Anchor())
		}
	}
}

func TestTableAnchorlessPatternsLast(t *testing.T) {
	patterns := Default().Patterns()
	seenAnchorless := false
	for _, p := range patterns {
		if p.Anchor() == "" {
			seenAnchorless = true
			continue
		}
		require.Falsef(t, seenAnchorless,
			"anchored pattern %s ordered after an anchorless catch-all", p.Category)
	}
	require.True(t, seenAnchorless, "expected a frame-sequence catch-all")
}

func TestTableEveryCategoryRoutable(t *testing.T) {
	tbl := Default()
	for _, p := range tbl.Patterns() {
		_, ok := tbl.Folder(p.Category)
		require.Truef(t, ok, "category %s has no folder rule", p.Category)

		canon, ok := tbl.Canonical(p.Category)
		require.Truef(t, ok, "category %s has no canonical pattern", p.Category)
		require.False(t, canon.Drift, "canonical pattern for %s is marked drift", p.Category)
	}
}

func TestTableFolderFromRoleIsBound(t *testing.T) {
	tbl := Default()
	for _, p := range tbl.Patterns() {
		rule, _ := tbl.Folder(p.Category)
		if rule.FromRole == "" {
			continue
		}
		found := false
		for _, r := range p.Roles {
			if r.Name == rule.FromRole {
				require.False(t, r.Optional, "folder role %q of %s must be required", rule.FromRole, p.Category)
				found = true
			}
		}
		require.Truef(t, found, "folder role %q of %s not present in pattern", rule.FromRole, p.Category)
	}
}

func TestVocabulary(t *testing.T) {
	require.True(t, GameModes.Contains("free_spins"))
	require.True(t, GameModes.Contains("hold_and_win"))
	require.False(t, GameModes.Contains("bonus_round"))
	require.Equal(t, 3, GameModes.MaxWords())

	require.Equal(t, 1, Orientations.MaxWords())
	require.True(t, Orientations.Contains("landscape"))
	require.True(t, Tiers.Contains("grand"))
	require.True(t, Parts.Contains("anticipation"))
	require.True(t, States.Contains("blur"))
}
