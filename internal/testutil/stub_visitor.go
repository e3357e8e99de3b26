// Package testutil provides shared test helpers for the gotruth project.
package testutil

import (
	"strings"

	"github.com/bawdo/gotruth/nodes"
)

// StubVisitor implements nodes.Visitor with a compact prefix notation that
// exposes tree shape: groups render as G(...), negations as N(...), and
// comparisons as OP(a,b,...). Useful for asserting parse structure.
type StubVisitor struct{}

var _ nodes.Visitor = StubVisitor{}

func (sv StubVisitor) VisitVariable(n *nodes.VariableNode) string { return n.Name }

func (sv StubVisitor) VisitBoolean(n *nodes.BooleanNode) string {
	if n.Value {
		return "T"
	}
	return "F"
}

func (sv StubVisitor) VisitNegation(n *nodes.NegationNode) string {
	return "N(" + n.Expr.Accept(sv) + ")"
}

func (sv StubVisitor) VisitGroup(n *nodes.GroupNode) string {
	return "G(" + n.Expr.Accept(sv) + ")"
}

func (sv StubVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	parts := make([]string, len(n.Operands))
	for i, op := range n.Operands {
		parts[i] = op.Accept(sv)
	}
	return n.Op.String() + "(" + strings.Join(parts, ",") + ")"
}

// Shape renders every tree in p with StubVisitor.
func Shape(p *nodes.Program) []string {
	out := make([]string, len(p.Trees))
	for i, tree := range p.Trees {
		out[i] = tree.Accept(StubVisitor{})
	}
	return out
}
