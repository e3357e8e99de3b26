package visitors

import (
	"github.com/bawdo/gotruth/internal/quoting"
)

// PostgresVisitor generates PostgreSQL predicates.
// Identifiers are quoted with double quotes: "p".
type PostgresVisitor struct {
	*baseVisitor
}

// NewPostgresVisitor creates a PostgresVisitor ready for use.
func NewPostgresVisitor() *PostgresVisitor {
	v := &PostgresVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:      v,
		quoteIdent: quoting.DoubleQuote,
		trueLit:    "TRUE",
		falseLit:   "FALSE",
	}
	return v
}
