package grammar

// FolderRule computes the destination folder for a category. Exactly one of
// Fixed or FromRole is set: Fixed names the folder directly, FromRole names
// the bound token whose value becomes the folder (frame sequences group
// under their base name).
type FolderRule struct {
	Fixed    string
	FromRole string
}

// Table bundles the vocabulary, the priority-ordered pattern list, and the
// folder routing rules. It is immutable after construction.
type Table struct {
	patterns  []Pattern
	canonical map[Category]Pattern
	folders   map[Category]FolderRule
}

// Patterns returns the pattern list in match priority order.
func (t *Table) Patterns() []Pattern { return t.patterns }

// Canonical returns the canonical (non-drift) pattern for a category.
func (t *Table) Canonical(c Category) (Pattern, bool) {
	p, ok := t.canonical[c]
	return p, ok
}

// Folder returns the folder rule for a category.
func (t *Table) Folder(c Category) (FolderRule, bool) {
	f, ok := t.folders[c]
	return f, ok
}

// Default builds the table mirroring the naming convention document.
//
// Pattern order is match priority: patterns whose anchor extends another
// pattern's anchor come first (feature_screen_anim before feature_screen,
// panel_jackpot before panel), Spine skeleton groups before the generic
// asset categories they could shadow, and the anchorless frame-sequence
// catch-all last. The order is asserted by TestTablePriorityInvariant.
func Default() *Table {
	patterns := []Pattern{
		{Category: CategoryFeatureScreenAnim, Roles: []Role{
			lit("type", "feature_screen_anim"), vocabOpt(Parts), numericOpt("version"),
		}},
		{Category: CategoryJackpotPanel, Roles: []Role{
			lit("type", "panel_jackpot"), vocabOpt(Tiers), numericOpt("version"), vocabOpt(Orientations),
		}},
		{Category: CategoryLoadingScreen, Roles: []Role{
			lit("type", "loading_screen"), numericOpt("version"), vocabOpt(Orientations),
		}},
		{Category: CategoryFeatureScreen, Roles: []Role{
			lit("type", "feature_screen"), numericOpt("version"), vocabOpt(Orientations),
		}},
		{Category: CategoryJackpotPanels, Roles: []Role{
			lit("type", "jackpot_panels"), vocabOpt(Parts), numericOpt("version"),
		}},
		{Category: CategoryBuyBonus, Roles: []Role{
			lit("type", "buy_bonus"), vocabOpt(Parts), numericOpt("version"),
		}},
		{Category: CategoryWinEvent, Roles: []Role{
			lit("type", "win_event"), freeOpt("feature"), vocabOpt(Parts), numericOpt("version"),
		}},
		{Category: CategoryPersistence, Roles: []Role{
			lit("type", "persistence"), numericOpt("index"), vocabOpt(Parts), numericOpt("version"),
		}},
		{Category: CategoryAmbient, Roles: []Role{
			lit("type", "ambient"), vocabOpt(Parts), numericOpt("version"),
		}},
		{Category: CategoryLogo, Roles: []Role{
			lit("type", "logo"), vocabOpt(Parts), numericOpt("version"), vocabOpt(Orientations),
		}},
		{Category: CategoryBackground, Roles: []Role{
			vocabOpt(GameModes), lit("type", "background"), numericOpt("version"), vocabOpt(Orientations),
		}},
		{Category: CategorySymbol, Roles: []Role{
			lit("type", "symbol"), numeric("index"), dimensionOpt("dimension"), vocabOpt(States),
		}},
		{Category: CategoryPopup, Roles: []Role{
			vocabOpt(GameModes), lit("type", "pop_up"), free("feature"), numericOpt("version"), vocabOpt(Orientations),
		}},
		{Category: CategoryPopup, Drift: true, Roles: []Role{
			vocabOpt(GameModes), free("feature"), lit("type", "pop_up"), numericOpt("version"), vocabOpt(Orientations),
		}},
		{Category: CategoryButton, Roles: []Role{
			vocabOpt(GameModes), lit("type", "button"), free("feature"), vocabOpt(States),
			numericOpt("version"), vocabOpt(Orientations), vocabOpt(Sizes),
		}},
		{Category: CategoryButton, Drift: true, Roles: []Role{
			vocabOpt(GameModes), free("feature"), lit("type", "button"), vocabOpt(States),
			numericOpt("version"), vocabOpt(Orientations), vocabOpt(Sizes),
		}},
		{Category: CategoryPanel, Roles: []Role{
			vocabOpt(GameModes), lit("type", "panel"), freeOpt("feature"), vocabOpt(States),
			numericOpt("version"), vocabOpt(Orientations),
		}},
		{Category: CategoryFrameSequence, Roles: []Role{
			free("base"), frame("frame"),
		}},
	}

	folders := map[Category]FolderRule{
		CategoryFeatureScreenAnim: {Fixed: "feature_screen_anim"},
		CategoryJackpotPanel:      {Fixed: "jackpot_panels"},
		CategoryLoadingScreen:     {Fixed: "loading_screen"},
		CategoryFeatureScreen:     {Fixed: "feature_screen"},
		CategoryJackpotPanels:     {Fixed: "jackpot_panels"},
		CategoryBuyBonus:          {Fixed: "buy_bonus"},
		CategoryWinEvent:          {Fixed: "win_events"},
		CategoryPersistence:       {Fixed: "persistence"},
		CategoryAmbient:           {Fixed: "ambient"},
		CategoryLogo:              {Fixed: "logo"},
		CategoryBackground:        {Fixed: "backgrounds"},
		CategorySymbol:            {Fixed: "symbols"},
		CategoryPopup:             {Fixed: "popups"},
		CategoryButton:            {Fixed: "buttons"},
		CategoryPanel:             {Fixed: "panels"},
		CategoryFrameSequence:     {FromRole: "base"},
	}

	canonical := make(map[Category]Pattern, len(patterns))
	for _, p := range patterns {
		if !p.Drift {
			canonical[p.Category] = p
		}
	}

	return &Table{patterns: patterns, canonical: canonical, folders: folders}
}
