package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/saleklar/spine-sorter/internal/grammar"
)

// Parser matches filenames against an immutable grammar table.
type Parser struct {
	table *grammar.Table
}

// NewParser returns a parser over the given table.
func NewParser(t *grammar.Table) *Parser {
	return &Parser{table: t}
}

// Table returns the grammar table the parser was built with.
func (p *Parser) Table() *grammar.Table { return p.table }

// Parse classifies a single filename. The extension is stripped and the stem
// is split on underscores; patterns are tried in table priority order and the
// first full alignment wins. When no pattern matches, the deepest anchored
// constraint violation (if any) is reported as Invalid, otherwise Unmatched.
func (p *Parser) Parse(filename string) ParseResult {
	ext := filepath.Ext(filename)
	stem := strings.ToLower(strings.TrimSuffix(filename, ext))
	ext = strings.ToLower(ext)

	if stem == "" {
		return ParseResult{Input: filename, Status: StatusUnmatched}
	}
	segs := strings.Split(stem, "_")

	best := failure{depth: -1}
	for _, pat := range p.table.Patterns() {
		m := &matcher{segs: segs, pattern: pat, best: &best}
		if bound, ok := m.align(); ok {
			return ParseResult{
				Input:          filename,
				Status:         StatusMatched,
				Classification: p.toCanonical(pat.Category, bound, ext),
			}
		}
	}

	// A trailing pure-digit segment of the wrong width is a malformed frame
	// index, not an unknown name.
	if last := segs[len(segs)-1]; len(segs) >= 2 && isDigits(last) && len(last) >= 3 {
		return ParseResult{
			Input:  filename,
			Status: StatusInvalid,
			Reason: fmt.Sprintf("frame index %q must be exactly two digits", last),
		}
	}

	if best.depth >= 0 {
		return ParseResult{Input: filename, Status: StatusInvalid, Reason: best.reason()}
	}
	return ParseResult{Input: filename, Status: StatusUnmatched}
}

// toCanonical reorders bound tokens into the category's canonical role order.
// Drift patterns bind the same role names as their canonical counterpart, so
// re-serialization fixes ordering drift in the source filename.
func (p *Parser) toCanonical(cat grammar.Category, bound []Token, ext string) *Classification {
	canon, ok := p.table.Canonical(cat)
	if !ok {
		return &Classification{Category: cat, Tokens: bound, Ext: ext}
	}
	tokens := make([]Token, 0, len(bound))
	for _, role := range canon.Roles {
		for _, t := range bound {
			if t.Role == role.Name {
				tokens = append(tokens, t)
				break
			}
		}
	}
	return &Classification{Category: cat, Tokens: tokens, Ext: ext}
}

// --- Pattern alignment ---

var reDimension = regexp.MustCompile(`^[0-9]+x[0-9]+$`)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// failure records the deepest anchored constraint violation seen across all
// pattern attempts, for Invalid diagnosis. Failures where the input was
// simply exhausted are never recorded: a bare anchor with nothing after it is
// Unmatched, not Invalid.
type failure struct {
	depth int
	role  string
	kind  grammar.RoleKind
	value string
	trail bool // roles exhausted with segments left over
}

func (f *failure) record(depth int, role string, kind grammar.RoleKind, value string, trail bool) {
	if depth <= f.depth {
		return
	}
	f.depth, f.role, f.kind, f.value, f.trail = depth, role, kind, value, trail
}

func (f *failure) reason() string {
	if f.trail {
		return fmt.Sprintf("unexpected trailing token %q", f.value)
	}
	switch f.kind {
	case grammar.RoleFrame:
		return fmt.Sprintf("frame index %q must be exactly two digits", f.value)
	case grammar.RoleNumeric:
		return fmt.Sprintf("malformed %s %q", f.role, f.value)
	case grammar.RoleDimension:
		return fmt.Sprintf("malformed %s %q", f.role, f.value)
	default:
		return fmt.Sprintf("unknown %s %q", f.role, f.value)
	}
}

// matcher aligns segments against one pattern with backtracking. Vocabulary
// roles consume the longest matching run first; free roles the shortest run
// that lets the remainder complete, so trailing numeric and vocabulary
// tokens are never swallowed by free text.
type matcher struct {
	segs    []string
	pattern grammar.Pattern
	best    *failure
	bound   []Token
}

func (m *matcher) align() ([]Token, bool) {
	if m.match(0, 0, false) {
		return m.bound, true
	}
	return nil, false
}

func (m *matcher) push(role, value string) {
	m.bound = append(m.bound, Token{Role: role, Value: value})
}
func (m *matcher) pop() { m.bound = m.bound[:len(m.bound)-1] }

// fail records a violation for diagnosis. Only anchored failures with an
// actual offending segment count.
func (m *matcher) fail(si int, role string, kind grammar.RoleKind, anchored, trail bool) {
	if !anchored || si >= len(m.segs) {
		return
	}
	m.best.record(si, role, kind, m.segs[si], trail)
}

func (m *matcher) match(si, ri int, anchored bool) bool {
	if ri == len(m.pattern.Roles) {
		if si == len(m.segs) {
			return true
		}
		m.fail(si, "", 0, anchored, true)
		return false
	}

	role := m.pattern.Roles[ri]
	rem := len(m.segs) - si

	switch role.Kind {
	case grammar.RoleLiteral:
		words := role.Words()
		if rem >= len(words) && segsEqual(m.segs[si:si+len(words)], words) {
			m.push(role.Name, role.Literal)
			if m.match(si+len(words), ri+1, true) {
				return true
			}
			m.pop()
		}
		if role.Optional {
			return m.match(si, ri+1, anchored)
		}
		return false

	case grammar.RoleVocab:
		max := role.Vocab.MaxWords()
		if max > rem {
			max = rem
		}
		for k := max; k >= 1; k-- {
			val := strings.Join(m.segs[si:si+k], "_")
			if !role.Vocab.Contains(val) {
				continue
			}
			m.push(role.Name, val)
			if m.match(si+k, ri+1, anchored) {
				return true
			}
			m.pop()
		}
		m.fail(si, role.Name, role.Kind, anchored, false)
		if role.Optional {
			return m.match(si, ri+1, anchored)
		}
		return false

	case grammar.RoleNumeric, grammar.RoleFrame, grammar.RoleDimension:
		if rem >= 1 && m.segMatches(role, m.segs[si]) {
			m.push(role.Name, m.segs[si])
			if m.match(si+1, ri+1, anchored) {
				return true
			}
			m.pop()
		} else if !role.Optional {
			m.fail(si, role.Name, role.Kind, anchored, false)
		}
		if role.Optional {
			return m.match(si, ri+1, anchored)
		}
		return false

	case grammar.RoleFree:
		// Optional free roles are skipped first so that vocabulary roles
		// after them get first claim on the segments.
		if role.Optional && m.match(si, ri+1, anchored) {
			return true
		}
		for k := 1; k <= rem; k++ {
			m.push(role.Name, strings.Join(m.segs[si:si+k], "_"))
			if m.match(si+k, ri+1, anchored) {
				return true
			}
			m.pop()
		}
		return false
	}
	return false
}

func (m *matcher) segMatches(role grammar.Role, seg string) bool {
	switch role.Kind {
	case grammar.RoleNumeric:
		return isDigits(seg)
	case grammar.RoleFrame:
		return isDigits(seg) && len(seg) == 2
	case grammar.RoleDimension:
		return reDimension.MatchString(seg)
	}
	return false
}

func segsEqual(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
