package grammar

import "strings"

// Vocabulary is a named, immutable set of allowed values for a token role.
// Values may span multiple underscore-separated segments ("free_spins",
// "hold_and_win"); MaxWords reports the longest value so the matcher knows
// how many segments to try joining.
type Vocabulary struct {
	name     string
	values   map[string]struct{}
	maxWords int
}

// NewVocabulary builds a vocabulary from its allowed values.
func NewVocabulary(name string, values ...string) *Vocabulary {
	v := &Vocabulary{name: name, values: make(map[string]struct{}, len(values))}
	for _, val := range values {
		v.values[val] = struct{}{}
		if n := strings.Count(val, "_") + 1; n > v.maxWords {
			v.maxWords = n
		}
	}
	return v
}

// Name returns the vocabulary's role name.
func (v *Vocabulary) Name() string { return v.name }

// Contains reports whether s is an allowed value.
func (v *Vocabulary) Contains(s string) bool {
	_, ok := v.values[s]
	return ok
}

// MaxWords returns the segment count of the longest value.
func (v *Vocabulary) MaxWords() int { return v.maxWords }

// Values returns the allowed values in unspecified order.
func (v *Vocabulary) Values() []string {
	out := make([]string, 0, len(v.values))
	for val := range v.values {
		out = append(out, val)
	}
	return out
}

// Built-in vocabularies, mirrored from the naming convention document.
var (
	GameModes = NewVocabulary("game_mode",
		"free_spins", "base_game", "hold_and_win", "loading_screen", "feature_screen")

	States = NewVocabulary("state",
		"normal", "hover", "pressed", "disabled", "active", "inactive",
		"blur", "win", "static")

	Orientations = NewVocabulary("orientation", "landscape", "portrait")

	Sizes = NewVocabulary("size", "small", "medium", "large")

	Tiers = NewVocabulary("tier", "mini", "minor", "major", "grand")

	// Parts are the skeleton animation sub-parts a Spine group exports.
	Parts = NewVocabulary("part",
		"idle", "intro", "outro", "win", "anticipation", "tease",
		"collect", "land", "expand", "loop")
)
