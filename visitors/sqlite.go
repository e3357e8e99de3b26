package visitors

import (
	"github.com/bawdo/gotruth/internal/quoting"
)

// SQLiteVisitor generates SQLite predicates.
// Identifiers are quoted with double quotes; booleans are the integers 1 and 0
// because that is how SQLite stores them.
type SQLiteVisitor struct {
	*baseVisitor
}

// NewSQLiteVisitor creates a SQLiteVisitor ready for use.
func NewSQLiteVisitor() *SQLiteVisitor {
	v := &SQLiteVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:      v,
		quoteIdent: quoting.DoubleQuote,
		trueLit:    "1",
		falseLit:   "0",
	}
	return v
}
