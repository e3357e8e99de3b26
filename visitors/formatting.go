package visitors

import (
	"strings"

	"github.com/bawdo/gotruth/nodes"
)

// OutlineVisitor renders a tree as an indented outline, one node per line,
// children below their parent:
//
//	CONDITIONAL
//	  p
//	  NOT
//	    q
type OutlineVisitor struct {
	indent string
	depth  int
}

var _ nodes.Visitor = (*OutlineVisitor)(nil)

// NewOutlineVisitor constructs an OutlineVisitor. An empty indent defaults
// to two spaces.
func NewOutlineVisitor(indent string) *OutlineVisitor {
	if indent == "" {
		indent = "  "
	}
	return &OutlineVisitor{indent: indent}
}

func (o *OutlineVisitor) line(label string) string {
	return strings.Repeat(o.indent, o.depth) + label
}

// children renders each child one level deeper, each on its own line.
func (o *OutlineVisitor) children(label string, kids ...nodes.Node) string {
	lines := make([]string, 0, len(kids)+1)
	lines = append(lines, o.line(label))
	o.depth++
	for _, kid := range kids {
		lines = append(lines, kid.Accept(o))
	}
	o.depth--
	return strings.Join(lines, "\n")
}

func (o *OutlineVisitor) VisitVariable(n *nodes.VariableNode) string {
	return o.line(n.Name)
}

func (o *OutlineVisitor) VisitBoolean(n *nodes.BooleanNode) string {
	if n.Value {
		return o.line("T")
	}
	return o.line("F")
}

func (o *OutlineVisitor) VisitNegation(n *nodes.NegationNode) string {
	return o.children("NOT", n.Expr)
}

func (o *OutlineVisitor) VisitGroup(n *nodes.GroupNode) string {
	return o.children("( )", n.Expr)
}

func (o *OutlineVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	return o.children(n.Op.String(), n.Operands...)
}
