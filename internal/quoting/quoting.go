// Package quoting quotes and sizes SQL identifiers.
//
// Exported column names are header labels such as "(p ⇒ q)", so identifiers
// are always quoted and may need shortening to fit an engine's limit.
package quoting

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"
)

// Quoter wraps an identifier in one dialect's quote character. Embedded
// quote characters are escaped by doubling them.
type Quoter func(name string) string

var (
	// DoubleQuote is the ANSI quoting used by PostgreSQL and SQLite.
	DoubleQuote Quoter = quoteWith(`"`)
	// Backtick is MySQL's identifier quoting.
	Backtick Quoter = quoteWith("`")
)

func quoteWith(q string) Quoter {
	return func(name string) string {
		return q + strings.ReplaceAll(name, q, q+q) + q
	}
}

// List quotes every name and joins them with ", ".
func (q Quoter) List(names ...string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = q(n)
	}
	return strings.Join(quoted, ", ")
}

// hashLen is the length of the "~xxxxxxxx" suffix added by Fit.
const hashLen = 9

// Fit shortens name to at most limit bytes. A shortened name keeps a whole
// rune prefix followed by "~" and eight hex digits of a hash of the full
// name, so distinct long names stay distinct. A limit of zero or less, or
// one too small for the suffix, leaves name unchanged.
func Fit(name string, limit int) string {
	if limit <= hashLen || len(name) <= limit {
		return name
	}
	cut := limit - hashLen
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return fmt.Sprintf("%s~%08x", name[:cut], h.Sum32())
}
