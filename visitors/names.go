package visitors

import (
	"strings"

	"github.com/bawdo/gotruth/nodes"
)

// Display symbols for header labels.
var operatorSymbol = [...]string{
	nodes.OpAnd:           "∧",
	nodes.OpOr:            "∨",
	nodes.OpConditional:   "⇒",
	nodes.OpBiconditional: "⇔",
}

// NameVisitor renders header labels in logic notation and records the label
// of every Negation and Comparison in post-order, the same order in which
// the engine records their values.
type NameVisitor struct {
	labels []string
}

var _ nodes.Visitor = (*NameVisitor)(nil)

// NewNameVisitor creates a NameVisitor with nothing recorded.
func NewNameVisitor() *NameVisitor {
	return &NameVisitor{}
}

// Labels returns a copy of the labels recorded so far.
func (nv *NameVisitor) Labels() []string {
	out := make([]string, len(nv.labels))
	copy(out, nv.labels)
	return out
}

// Reset discards recorded labels.
func (nv *NameVisitor) Reset() {
	nv.labels = nv.labels[:0]
}

func (nv *NameVisitor) record(label string) string {
	nv.labels = append(nv.labels, label)
	return label
}

func (nv *NameVisitor) VisitVariable(n *nodes.VariableNode) string {
	return n.Name
}

func (nv *NameVisitor) VisitBoolean(n *nodes.BooleanNode) string {
	if n.Value {
		return "T"
	}
	return "F"
}

func (nv *NameVisitor) VisitNegation(n *nodes.NegationNode) string {
	return nv.record("¬" + n.Expr.Accept(nv))
}

// VisitGroup parenthesizes its child but records nothing of its own.
func (nv *NameVisitor) VisitGroup(n *nodes.GroupNode) string {
	return "(" + n.Expr.Accept(nv) + ")"
}

func (nv *NameVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	parts := make([]string, len(n.Operands))
	for i, operand := range n.Operands {
		parts[i] = operand.Accept(nv)
	}
	return nv.record("(" + strings.Join(parts, " "+operatorSymbol[n.Op]+" ") + ")")
}

// Header returns the truth-table header for p: the variable names in id
// order followed by the recorded labels of every tree in program order.
func Header(p *nodes.Program) []string {
	nv := NewNameVisitor()
	for _, tree := range p.Trees {
		tree.Accept(nv)
	}
	return append(p.Variables.Names(), nv.labels...)
}
