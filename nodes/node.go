// Package nodes defines the expression tree produced by the parser and
// consumed by the truth-table engine.
//
// The tree is a closed set of five node types: VariableNode, BooleanNode,
// NegationNode, ComparisonNode and GroupNode. Callers walk it through one of
// two double-dispatch interfaces, Visitor (rendering) and Evaluator
// (evaluation); adding a node type without extending both is a compile error.
package nodes

// Node is the interface that all expression tree nodes implement.
type Node interface {
	Accept(visitor Visitor) string
	Evaluate(evaluator Evaluator) bool
	isNode()
}

// Visitor renders a tree to a string. Implementations recurse into children
// through Accept so that traversal order is under their control.
type Visitor interface {
	VisitVariable(node *VariableNode) string
	VisitBoolean(node *BooleanNode) string
	VisitNegation(node *NegationNode) string
	VisitComparison(node *ComparisonNode) string
	VisitGroup(node *GroupNode) string
}

// Evaluator computes the truth value of a tree under some assignment.
type Evaluator interface {
	EvalVariable(node *VariableNode) bool
	EvalBoolean(node *BooleanNode) bool
	EvalNegation(node *NegationNode) bool
	EvalComparison(node *ComparisonNode) bool
	EvalGroup(node *GroupNode) bool
}

// VariableNode is a propositional variable. ID indexes the program's
// VariableTable and the engine's assignment vector.
type VariableNode struct {
	Name string
	ID   int
}

func (n *VariableNode) Accept(v Visitor) string   { return v.VisitVariable(n) }
func (n *VariableNode) Evaluate(e Evaluator) bool { return e.EvalVariable(n) }
func (*VariableNode) isNode()                     {}

// BooleanNode is a T or F literal.
type BooleanNode struct {
	Value bool
}

func (n *BooleanNode) Accept(v Visitor) string   { return v.VisitBoolean(n) }
func (n *BooleanNode) Evaluate(e Evaluator) bool { return e.EvalBoolean(n) }
func (*BooleanNode) isNode()                     {}

// NegationNode is the logical complement of Expr.
type NegationNode struct {
	Expr Node
}

func (n *NegationNode) Accept(v Visitor) string   { return v.VisitNegation(n) }
func (n *NegationNode) Evaluate(e Evaluator) bool { return e.EvalNegation(n) }
func (*NegationNode) isNode()                     {}

// GroupNode records explicit parentheses in the source. It has no effect on
// the value of Expr.
type GroupNode struct {
	Expr Node
}

func (n *GroupNode) Accept(v Visitor) string   { return v.VisitGroup(n) }
func (n *GroupNode) Evaluate(e Evaluator) bool { return e.EvalGroup(n) }
func (*GroupNode) isNode()                     {}
