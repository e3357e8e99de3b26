package nodes

import "fmt"

// Operator is the connective of a ComparisonNode.
type Operator int

const (
	OpAnd Operator = iota
	OpOr
	OpConditional
	OpBiconditional
)

var operatorNames = [...]string{
	OpAnd:           "AND",
	OpOr:            "OR",
	OpConditional:   "CONDITIONAL",
	OpBiconditional: "BICONDITIONAL",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return operatorNames[op]
}

// ComparisonNode applies Op across two or more operands. A chain of the same
// operator is kept as one node: a AND b AND c has three operands.
type ComparisonNode struct {
	Op       Operator
	Operands []Node
}

func (n *ComparisonNode) Accept(v Visitor) string   { return v.VisitComparison(n) }
func (n *ComparisonNode) Evaluate(e Evaluator) bool { return e.EvalComparison(n) }
func (*ComparisonNode) isNode()                     {}
