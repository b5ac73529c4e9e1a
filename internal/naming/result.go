package naming

import "github.com/saleklar/spine-sorter/internal/grammar"

// Status tags a parse outcome.
type Status int

const (
	// StatusMatched means a category pattern fully consumed the filename.
	StatusMatched Status = iota
	// StatusUnmatched means no pattern aligned; the file needs manual handling.
	StatusUnmatched
	// StatusInvalid means a category anchor matched but a token constraint
	// failed; Reason carries the specific violation.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusUnmatched:
		return "unmatched"
	case StatusInvalid:
		return "invalid"
	}
	return "unknown"
}

// Token is one bound role value, in canonical role order.
type Token struct {
	Role  string
	Value string
}

// Classification is the structured result of a successful parse. It is
// immutable once produced.
type Classification struct {
	Category grammar.Category
	Tokens   []Token // canonical role order, absent optionals omitted
	Ext      string  // lowercased extension including dot, may be empty
}

// Get returns the value bound to a role, if present.
func (c *Classification) Get(role string) (string, bool) {
	for _, t := range c.Tokens {
		if t.Role == role {
			return t.Value, true
		}
	}
	return "", false
}

// ParseResult is the outcome of parsing one filename.
type ParseResult struct {
	Input          string
	Status         Status
	Classification *Classification // set only when Status is StatusMatched
	Reason         string          // set only when Status is StatusInvalid
}
