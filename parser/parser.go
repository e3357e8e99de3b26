// Package parser builds expression trees from scanner tokens.
//
// Precedence, loosest first:
//
//	<->   ->   OR   AND   !
//
// Every binary operator is left-associative, and a run of the same operator
// becomes a single n-ary nodes.ComparisonNode.
//
// As in the scanner, Error.Msg holds the bare message and Error() adds the
// "line N: " prefix.
package parser

import (
	"github.com/bawdo/gotruth/nodes"
	"github.com/bawdo/gotruth/scanner"
)

// binaryLevels maps each binary precedence level, loosest first, to the
// token that introduces it and the operator it builds.
var binaryLevels = [...]struct {
	token scanner.TokenKind
	op    nodes.Operator
}{
	{scanner.Biconditional, nodes.OpBiconditional},
	{scanner.Conditional, nodes.OpConditional},
	{scanner.Or, nodes.OpOr},
	{scanner.And, nodes.OpAnd},
}

// Parser consumes a token slice produced by scanner.Scan.
type Parser struct {
	tokens []scanner.Token
	pos    int
	vars   *nodes.VariableTable
	errs   ErrorList
}

// New returns a parser over tokens. The slice must end with an EndOfFile
// token; one is assumed if it does not.
func New(tokens []scanner.Token) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != scanner.EndOfFile {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], scanner.Token{Kind: scanner.EndOfFile, Line: line})
	}
	return &Parser{tokens: tokens, vars: nodes.NewVariableTable()}
}

// Parse builds a Program from tokens. See Parser.Parse.
func Parse(tokens []scanner.Token) (*nodes.Program, error) {
	return New(tokens).Parse()
}

// Parse parses one statement per line. A syntax error abandons the rest of
// its line and parsing resumes on the next one, so every failing line is
// reported. If any line failed, the result is nil and an ErrorList; trees
// from the lines that did parse are discarded.
func (p *Parser) Parse() (*nodes.Program, error) {
	var trees []nodes.Node

	p.skipNewLines()
	for !p.atEnd() {
		tree, err := p.parseStatement()
		if err != nil {
			p.errs = append(p.errs, err)
			p.sync()
		} else {
			trees = append(trees, tree)
		}
		p.skipNewLines()
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return nodes.NewProgram(trees, p.vars), nil
}

// --- Token cursor ---

func (p *Parser) peek() scanner.Token {
	return p.tokens[p.pos]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == scanner.EndOfFile
}

func (p *Parser) advance() scanner.Token {
	tok := p.tokens[p.pos]
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

// match consumes the next token if it has the given kind.
func (p *Parser) match(kind scanner.TokenKind) bool {
	if p.peek().Kind != kind || p.atEnd() {
		return false
	}
	p.pos++
	return true
}

func (p *Parser) skipNewLines() {
	for p.match(scanner.NewLine) {
	}
}

// sync discards tokens up to and including the next NewLine.
func (p *Parser) sync() {
	for !p.atEnd() {
		if p.advance().Kind == scanner.NewLine {
			return
		}
	}
}

func (p *Parser) errorf(msg string) *Error {
	return &Error{Line: p.peek().Line, Msg: msg}
}

// --- Grammar ---

// parseStatement parses one full line; the statement must end at a NewLine
// or the end of input.
func (p *Parser) parseStatement() (nodes.Node, *Error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	switch next := p.peek(); next.Kind {
	case scanner.NewLine, scanner.EndOfFile:
		return expr, nil
	default:
		return nil, p.errorf("Unexpected " + next.String() + " after expression")
	}
}

func (p *Parser) parseExpression() (nodes.Node, *Error) {
	return p.parseLevel(0)
}

// parseLevel parses the binary operator at binaryLevels[level], collecting
// every same-operator operand into one comparison.
func (p *Parser) parseLevel(level int) (nodes.Node, *Error) {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}
	first, err := p.parseLevel(level + 1)
	if err != nil {
		return nil, err
	}
	lvl := binaryLevels[level]
	if p.peek().Kind != lvl.token {
		return first, nil
	}

	operands := []nodes.Node{first}
	for p.match(lvl.token) {
		next, err := p.parseLevel(level + 1)
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	return nodes.Compare(lvl.op, operands...), nil
}

func (p *Parser) parseUnary() (nodes.Node, *Error) {
	if p.match(scanner.Not) {
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodes.Not(expr), nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (nodes.Node, *Error) {
	tok := p.peek()
	switch tok.Kind {
	case scanner.TrueLiteral:
		p.advance()
		return nodes.True(), nil
	case scanner.FalseLiteral:
		p.advance()
		return nodes.False(), nil
	case scanner.Variable:
		p.advance()
		return nodes.Var(p.vars, tok.Lexeme), nil
	case scanner.StartParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.match(scanner.EndParen) {
			return nil, p.errorf("Expecting ')' to close group")
		}
		return nodes.Group(expr), nil
	case scanner.NewLine:
		return nil, p.errorf("Expecting token but reached end of line")
	case scanner.EndOfFile:
		return nil, p.errorf("Expecting token but reached end of file")
	default:
		return nil, p.errorf("Unexpected end of expression")
	}
}
