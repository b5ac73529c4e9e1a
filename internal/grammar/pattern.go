package grammar

import "strings"

// RoleKind describes how a pattern role consumes filename segments.
type RoleKind int

const (
	// RoleLiteral consumes the role's fixed token (the category anchor).
	RoleLiteral RoleKind = iota
	// RoleVocab consumes the longest segment run found in a vocabulary.
	RoleVocab
	// RoleFree consumes one or more free-text segments (shortest run that
	// lets the rest of the pattern complete).
	RoleFree
	// RoleNumeric consumes a single pure-digit segment of any width.
	RoleNumeric
	// RoleFrame consumes a single pure-digit segment of exactly two digits.
	RoleFrame
	// RoleDimension consumes a single <digits>x<digits> segment.
	RoleDimension
)

// Role is one slot in a category pattern.
type Role struct {
	Name     string
	Kind     RoleKind
	Literal  string      // RoleLiteral: the fixed token, may contain underscores
	Vocab    *Vocabulary // RoleVocab only
	Optional bool
}

// Words returns a literal role's token split into segments.
func (r Role) Words() []string { return strings.Split(r.Literal, "_") }

// Category identifies one documented asset kind.
type Category string

const (
	CategoryFeatureScreenAnim Category = "feature_screen_anim"
	CategoryJackpotPanel      Category = "jackpot_panel"
	CategoryLoadingScreen     Category = "loading_screen"
	CategoryFeatureScreen     Category = "feature_screen"
	CategoryJackpotPanels     Category = "jackpot_panels"
	CategoryBuyBonus          Category = "buy_bonus"
	CategoryWinEvent          Category = "win_event"
	CategoryPersistence       Category = "persistence"
	CategoryAmbient           Category = "ambient"
	CategoryLogo              Category = "logo"
	CategoryBackground        Category = "background"
	CategorySymbol            Category = "symbol"
	CategoryPopup             Category = "popup"
	CategoryButton            Category = "button"
	CategoryPanel             Category = "panel"
	CategoryFrameSequence     Category = "frame_sequence"
)

// Pattern is an ordered sequence of roles identifying one asset category.
// Drift patterns accept a documented out-of-order variant of their category;
// canonicalization always follows the category's canonical pattern.
type Pattern struct {
	Category Category
	Roles    []Role
	Drift    bool
}

// Anchor returns the pattern's literal token ("" for anchorless patterns
// such as the frame-sequence catch-all).
func (p Pattern) Anchor() string {
	for _, r := range p.Roles {
		if r.Kind == RoleLiteral {
			return r.Literal
		}
	}
	return ""
}

// RequiredCount returns the number of non-optional roles.
func (p Pattern) RequiredCount() int {
	n := 0
	for _, r := range p.Roles {
		if !r.Optional {
			n++
		}
	}
	return n
}

// --- Role constructors (keep the table in table.go readable) ---

func lit(name, token string) Role { return Role{Name: name, Kind: RoleLiteral, Literal: token} }
func vocab(v *Vocabulary) Role    { return Role{Name: v.Name(), Kind: RoleVocab, Vocab: v} }
func vocabOpt(v *Vocabulary) Role { r := vocab(v); r.Optional = true; return r }
func free(name string) Role       { return Role{Name: name, Kind: RoleFree} }
func freeOpt(name string) Role    { r := free(name); r.Optional = true; return r }
func numeric(name string) Role    { return Role{Name: name, Kind: RoleNumeric} }
func numericOpt(name string) Role { r := numeric(name); r.Optional = true; return r }
func frame(name string) Role      { return Role{Name: name, Kind: RoleFrame} }
func dimensionOpt(name string) Role {
	return Role{Name: name, Kind: RoleDimension, Optional: true}
}
