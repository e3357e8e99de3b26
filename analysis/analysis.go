// Package analysis reads properties of each statement off a finished truth
// table.
package analysis

import (
	"fmt"

	"github.com/bawdo/gotruth/engine"
	"github.com/bawdo/gotruth/nodes"
	"github.com/bawdo/gotruth/visitors"
)

// Class is the logical status of a statement across all assignments.
type Class int

const (
	Contingent Class = iota
	Tautology
	Contradiction
)

var classNames = [...]string{
	Contingent:    "contingent",
	Tautology:     "tautology",
	Contradiction: "contradiction",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Statement describes one statement of a program.
type Statement struct {
	Source string
	// Column is the table column holding the statement's value, or -1 when
	// the statement is a bare literal and so has no column.
	Column     int
	Satisfying int
	Rows       int
	Class      Class
}

// Classify reports, for every statement of p, which column of t holds its
// value and how many rows satisfy it. t must be the table built from p.
func Classify(t *engine.Table, p *nodes.Program) []Statement {
	out := make([]Statement, len(p.Trees))
	nv := visitors.NewNameVisitor()
	src := visitors.NewSourceVisitor()
	recorded := 0
	for i, tree := range p.Trees {
		tree.Accept(nv)
		before := recorded
		recorded = len(nv.Labels())

		st := Statement{Source: tree.Accept(src), Column: -1, Rows: len(t.Rows)}
		switch root := unwrap(tree).(type) {
		case *nodes.VariableNode:
			st.Column = root.ID
		case *nodes.BooleanNode:
			if root.Value {
				st.Satisfying = st.Rows
			}
		default:
			// The root is recorded last in post-order.
			if recorded > before {
				st.Column = p.Variables.Len() + recorded - 1
			}
		}
		if st.Column >= 0 {
			for _, row := range t.Rows {
				if row[st.Column] {
					st.Satisfying++
				}
			}
		}
		st.Class = classOf(st.Satisfying, st.Rows)
		out[i] = st
	}
	return out
}

func unwrap(n nodes.Node) nodes.Node {
	for {
		g, ok := n.(*nodes.GroupNode)
		if !ok {
			return n
		}
		n = g.Expr
	}
}

func classOf(satisfying, rows int) Class {
	switch satisfying {
	case rows:
		return Tautology
	case 0:
		return Contradiction
	}
	return Contingent
}
