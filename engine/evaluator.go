package engine

import "github.com/bawdo/gotruth/nodes"

// evaluator computes node values under one assignment and appends the value
// of every Negation and Comparison to row in post-order.
type evaluator struct {
	assignment assignment
	row        []bool
}

var _ nodes.Evaluator = (*evaluator)(nil)

func (e *evaluator) record(v bool) bool {
	e.row = append(e.row, v)
	return v
}

func (e *evaluator) EvalVariable(n *nodes.VariableNode) bool {
	return e.assignment[n.ID]
}

func (e *evaluator) EvalBoolean(n *nodes.BooleanNode) bool {
	return n.Value
}

func (e *evaluator) EvalNegation(n *nodes.NegationNode) bool {
	return e.record(!n.Expr.Evaluate(e))
}

func (e *evaluator) EvalGroup(n *nodes.GroupNode) bool {
	return n.Expr.Evaluate(e)
}

// EvalComparison evaluates every operand, even once the result is decided,
// so that nested records always line up with the header.
func (e *evaluator) EvalComparison(n *nodes.ComparisonNode) bool {
	acc := n.Operands[0].Evaluate(e)
	for _, operand := range n.Operands[1:] {
		v := operand.Evaluate(e)
		switch n.Op {
		case nodes.OpAnd:
			acc = acc && v
		case nodes.OpOr:
			acc = acc || v
		case nodes.OpConditional:
			acc = !acc || v
		case nodes.OpBiconditional:
			acc = (!acc || v) && (!v || acc)
		}
	}
	return e.record(acc)
}
