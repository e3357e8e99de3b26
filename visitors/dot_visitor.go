package visitors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bawdo/gotruth/nodes"
)

// Fill colors by node kind.
const (
	colorVariable    = "#B0D4E8" // light blue
	colorLiteral     = "#D3D3D3" // grey
	colorLogical     = "#FFEB80" // yellow: AND, OR, NOT, groups
	colorConditional = "#FFB347" // orange: implication, equivalence
	colorStatement   = "#6CA6CD" // blue: statement clusters
)

type dotNode struct {
	id      string
	label   string
	color   string
	cluster int // index into DotVisitor.clusters, -1 for top level
}

type dotEdge struct {
	from  string
	to    string
	label string
}

// DotVisitor draws expression trees as a Graphviz digraph. Each Visit method
// adds the node's subgraph and returns the node's DOT id, so a parent links
// to whatever its child returned.
type DotVisitor struct {
	nodes    []dotNode
	edges    []dotEdge
	clusters []string // statement labels
	current  int
}

var _ nodes.Visitor = (*DotVisitor)(nil)

// NewDotVisitor creates an empty DotVisitor. Trees accepted directly are
// drawn at the top level; use VisitProgram for per-statement clusters.
func NewDotVisitor() *DotVisitor {
	return &DotVisitor{current: -1}
}

func (dv *DotVisitor) node(label, color string) string {
	id := "n" + strconv.Itoa(len(dv.nodes))
	dv.nodes = append(dv.nodes, dotNode{id: id, label: label, color: color, cluster: dv.current})
	return id
}

// link visits child and draws a labelled edge to it from parent.
func (dv *DotVisitor) link(parent, label string, child nodes.Node) {
	dv.edges = append(dv.edges, dotEdge{from: parent, to: child.Accept(dv), label: label})
}

// VisitProgram draws every tree of p inside a dashed cluster labelled with
// the statement's source text.
func (dv *DotVisitor) VisitProgram(p *nodes.Program) {
	src := NewSourceVisitor()
	for _, tree := range p.Trees {
		dv.current = len(dv.clusters)
		dv.clusters = append(dv.clusters, tree.Accept(src))
		tree.Accept(dv)
	}
	dv.current = -1
}

// ToDot returns the graph accumulated so far.
func (dv *DotVisitor) ToDot() string {
	var sb strings.Builder
	sb.WriteString("digraph AST {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box, style=filled, fontname=\"Helvetica\"];\n")
	sb.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")

	dv.writeNodes(&sb, -1, "  ")
	for i, label := range dv.clusters {
		fmt.Fprintf(&sb, "  subgraph cluster_s%d {\n", i+1)
		fmt.Fprintf(&sb, "    label=\"%s\";\n", escapeLabel(label))
		sb.WriteString("    style=dashed;\n")
		fmt.Fprintf(&sb, "    color=\"%s\";\n", colorStatement)
		sb.WriteString("    fontname=\"Helvetica\";\n")
		dv.writeNodes(&sb, i, "    ")
		sb.WriteString("  }\n")
	}

	for _, e := range dv.edges {
		fmt.Fprintf(&sb, "  %s -> %s [label=\"%s\"];\n", e.from, e.to, e.label)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func (dv *DotVisitor) writeNodes(sb *strings.Builder, cluster int, indent string) {
	for _, n := range dv.nodes {
		if n.cluster == cluster {
			fmt.Fprintf(sb, "%s%s [label=\"%s\", fillcolor=\"%s\"];\n",
				indent, n.id, escapeLabel(n.label), n.color)
		}
	}
}

// escapeLabel escapes double quotes. Node labels use \n on purpose as a DOT
// line break, so backslashes are left alone.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Dot renders p as a DOT graph with one cluster per statement.
func Dot(p *nodes.Program) string {
	dv := NewDotVisitor()
	dv.VisitProgram(p)
	return dv.ToDot()
}

func (dv *DotVisitor) VisitVariable(n *nodes.VariableNode) string {
	return dv.node(fmt.Sprintf("Variable\\n%s (#%d)", n.Name, n.ID), colorVariable)
}

func (dv *DotVisitor) VisitBoolean(n *nodes.BooleanNode) string {
	if n.Value {
		return dv.node("Literal\\nT", colorLiteral)
	}
	return dv.node("Literal\\nF", colorLiteral)
}

func (dv *DotVisitor) VisitNegation(n *nodes.NegationNode) string {
	id := dv.node("NOT", colorLogical)
	dv.link(id, "EXPR", n.Expr)
	return id
}

func (dv *DotVisitor) VisitGroup(n *nodes.GroupNode) string {
	id := dv.node("Group\\n( )", colorLogical)
	dv.link(id, "EXPR", n.Expr)
	return id
}

func (dv *DotVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	color := colorLogical
	if n.Op == nodes.OpConditional || n.Op == nodes.OpBiconditional {
		color = colorConditional
	}
	id := dv.node(n.Op.String()+"\\n"+operatorSymbol[n.Op], color)
	for i, operand := range n.Operands {
		dv.link(id, "OPERAND["+strconv.Itoa(i)+"]", operand)
	}
	return id
}
