package naming

import (
	"fmt"
	"strings"
)

// Destination is the computed routing target for a classified file.
type Destination struct {
	Folder string
	Name   string // canonical filename, extension included
}

// CanonicalName re-serializes the bound tokens in the category's canonical
// underscore order, with absent optional tokens omitted and the extension
// lowercased. Parsing a canonical name and canonicalizing again is a fixed
// point.
func CanonicalName(c *Classification) string {
	parts := make([]string, 0, len(c.Tokens))
	for _, t := range c.Tokens {
		parts = append(parts, t.Value)
	}
	return strings.Join(parts, "_") + c.Ext
}

// Destination computes the destination folder and canonical filename for a
// classification. Folder rules are data in the grammar table: either a fixed
// folder name or the value of a bound role (frame sequences group under
// their base name).
func (p *Parser) Destination(c *Classification) (Destination, error) {
	rule, ok := p.table.Folder(c.Category)
	if !ok {
		return Destination{}, fmt.Errorf("no folder rule for category %q", c.Category)
	}

	folder := rule.Fixed
	if rule.FromRole != "" {
		v, ok := c.Get(rule.FromRole)
		if !ok {
			return Destination{}, fmt.Errorf("category %q routes by role %q which is not bound", c.Category, rule.FromRole)
		}
		folder = v
	}
	return Destination{Folder: folder, Name: CanonicalName(c)}, nil
}
