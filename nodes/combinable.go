package nodes

// Constructors for building trees in code. The parser uses the same
// functions, so trees built here are indistinguishable from parsed ones.

// Var returns a variable node with its id interned in vars.
func Var(vars *VariableTable, name string) *VariableNode {
	return &VariableNode{Name: name, ID: vars.Intern(name)}
}

// True returns the T literal.
func True() *BooleanNode { return &BooleanNode{Value: true} }

// False returns the F literal.
func False() *BooleanNode { return &BooleanNode{Value: false} }

// Not negates expr.
func Not(expr Node) *NegationNode {
	return &NegationNode{Expr: expr}
}

// Group wraps expr in explicit parentheses.
func Group(expr Node) *GroupNode {
	return &GroupNode{Expr: expr}
}

// Compare builds an n-ary comparison. It panics when given fewer than two
// operands, since such a node can never come out of the parser.
func Compare(op Operator, operands ...Node) *ComparisonNode {
	if len(operands) < 2 {
		panic("gotruth: comparison requires at least two operands")
	}
	ops := make([]Node, len(operands))
	copy(ops, operands)
	return &ComparisonNode{Op: op, Operands: ops}
}

// And builds an n-ary AND.
func And(operands ...Node) *ComparisonNode { return Compare(OpAnd, operands...) }

// Or builds an n-ary OR.
func Or(operands ...Node) *ComparisonNode { return Compare(OpOr, operands...) }

// Implies builds an n-ary CONDITIONAL.
func Implies(operands ...Node) *ComparisonNode { return Compare(OpConditional, operands...) }

// Iff builds an n-ary BICONDITIONAL.
func Iff(operands ...Node) *ComparisonNode { return Compare(OpBiconditional, operands...) }
