// Package naming parses asset filenames against the grammar's category
// patterns and computes canonical names and destinations.
//
// Parsing is a pure function over an immutable [grammar.Table]: a filename is
// tokenized into underscore segments and aligned against each pattern in
// priority order, first full match wins. The result is a tagged
// [ParseResult] (Matched, Unmatched, or Invalid with a reason) so callers
// handle every outcome explicitly.
package naming
