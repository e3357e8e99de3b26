// Package visitors provides renderers that walk expression trees: header
// labels, source text, an indented outline, Graphviz DOT, and SQL predicates
// for the supported database dialects.
package visitors

import (
	"strings"

	"github.com/bawdo/gotruth/nodes"
)

// SQL operators for the n-ary connectives that SQL has natively.
var comparisonOpSQL = [...]string{
	nodes.OpAnd: " AND ",
	nodes.OpOr:  " OR ",
}

// baseVisitor renders a tree as a SQL boolean expression over a table whose
// columns are named after the variables, as written by the export package.
// Dialect visitors embed *baseVisitor and set outer to themselves so that
// recursive calls reach any dialect override.
type baseVisitor struct {
	// outer is the concrete dialect visitor. All recursive Accept calls
	// go through outer so that dialect overrides are respected.
	outer nodes.Visitor

	quoteIdent func(string) string
	trueLit    string
	falseLit   string
}

// QuoteIdent quotes a column name for this dialect.
func (v *baseVisitor) QuoteIdent(name string) string {
	return v.quoteIdent(name)
}

func (v *baseVisitor) VisitVariable(n *nodes.VariableNode) string {
	return v.quoteIdent(n.Name)
}

func (v *baseVisitor) VisitBoolean(n *nodes.BooleanNode) string {
	if n.Value {
		return v.trueLit
	}
	return v.falseLit
}

// VisitNegation always parenthesizes: NOT binds looser than = in SQL.
func (v *baseVisitor) VisitNegation(n *nodes.NegationNode) string {
	return "(NOT " + n.Expr.Accept(v.outer) + ")"
}

func (v *baseVisitor) VisitGroup(n *nodes.GroupNode) string {
	return "(" + n.Expr.Accept(v.outer) + ")"
}

// VisitComparison renders AND and OR directly. SQL has neither implication
// nor equivalence as a connective, so both fold left: a -> b becomes
// (NOT a OR b) and a <-> b becomes (a = b).
func (v *baseVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	parts := make([]string, len(n.Operands))
	for i, operand := range n.Operands {
		parts[i] = operand.Accept(v.outer)
	}

	switch n.Op {
	case nodes.OpAnd, nodes.OpOr:
		return "(" + strings.Join(parts, comparisonOpSQL[n.Op]) + ")"
	case nodes.OpConditional:
		acc := parts[0]
		for _, p := range parts[1:] {
			acc = "(NOT " + acc + " OR " + p + ")"
		}
		return acc
	default:
		acc := parts[0]
		for _, p := range parts[1:] {
			acc = "(" + acc + " = " + p + ")"
		}
		return acc
	}
}
