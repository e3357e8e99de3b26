package visitors

import (
	"strings"

	"github.com/bawdo/gotruth/nodes"
)

// Binding strength of each connective; higher binds tighter.
var precedence = [...]int{
	nodes.OpBiconditional: 0,
	nodes.OpConditional:   1,
	nodes.OpOr:            2,
	nodes.OpAnd:           3,
}

// SourceOption configures a SourceVisitor at construction time.
type SourceOption func(*SourceVisitor)

// WithFatArrows spells implication and equivalence as => and <=> instead of
// -> and <->.
func WithFatArrows() SourceOption {
	return func(sv *SourceVisitor) {
		sv.spelling[nodes.OpConditional] = " => "
		sv.spelling[nodes.OpBiconditional] = " <=> "
	}
}

// SourceVisitor renders a tree back into input notation. Parsed trees come
// back out as they were written, modulo whitespace and arrow spelling.
// Trees built in code get parentheses wherever the grammar needs them, so
// the output always parses to an equivalent formula.
type SourceVisitor struct {
	spelling [4]string
}

var _ nodes.Visitor = (*SourceVisitor)(nil)

// NewSourceVisitor creates a SourceVisitor with the given options applied.
func NewSourceVisitor(opts ...SourceOption) *SourceVisitor {
	sv := &SourceVisitor{spelling: [4]string{
		nodes.OpAnd:           " AND ",
		nodes.OpOr:            " OR ",
		nodes.OpConditional:   " -> ",
		nodes.OpBiconditional: " <-> ",
	}}
	for _, opt := range opts {
		opt(sv)
	}
	return sv
}

func (sv *SourceVisitor) VisitVariable(n *nodes.VariableNode) string {
	return n.Name
}

func (sv *SourceVisitor) VisitBoolean(n *nodes.BooleanNode) string {
	if n.Value {
		return "T"
	}
	return "F"
}

func (sv *SourceVisitor) VisitNegation(n *nodes.NegationNode) string {
	if _, ok := n.Expr.(*nodes.ComparisonNode); ok {
		return "!(" + n.Expr.Accept(sv) + ")"
	}
	return "!" + n.Expr.Accept(sv)
}

func (sv *SourceVisitor) VisitGroup(n *nodes.GroupNode) string {
	return "(" + n.Expr.Accept(sv) + ")"
}

func (sv *SourceVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	parts := make([]string, len(n.Operands))
	for i, operand := range n.Operands {
		parts[i] = operand.Accept(sv)
		if child, ok := operand.(*nodes.ComparisonNode); ok && precedence[child.Op] <= precedence[n.Op] {
			parts[i] = "(" + parts[i] + ")"
		}
	}
	return strings.Join(parts, sv.spelling[n.Op])
}

// Source renders every tree of p, one line each.
func Source(p *nodes.Program, opts ...SourceOption) string {
	sv := NewSourceVisitor(opts...)
	lines := make([]string, len(p.Trees))
	for i, tree := range p.Trees {
		lines[i] = tree.Accept(sv)
	}
	return strings.Join(lines, "\n")
}
