package visitors

import (
	"github.com/bawdo/gotruth/internal/quoting"
)

// MySQLVisitor generates MySQL predicates.
// Identifiers are quoted with backticks: `p`.
type MySQLVisitor struct {
	*baseVisitor
}

// NewMySQLVisitor creates a MySQLVisitor ready for use.
func NewMySQLVisitor() *MySQLVisitor {
	v := &MySQLVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:      v,
		quoteIdent: quoting.Backtick,
		trueLit:    "TRUE",
		falseLit:   "FALSE",
	}
	return v
}
