// Package gotruth builds truth tables for propositional logic formulas.
//
// Text goes through three stages: scanner.Scan splits it into tokens,
// parser.Parse builds one expression tree per line, and engine.Run evaluates
// every tree under every assignment. Evaluate runs all three.
//
// This package re-exports commonly used types for convenience. Advanced
// users can import subpackages directly:
//   - github.com/bawdo/gotruth/scanner (tokens)
//   - github.com/bawdo/gotruth/parser (expression trees)
//   - github.com/bawdo/gotruth/engine (truth tables)
//   - github.com/bawdo/gotruth/visitors (rendering)
//   - github.com/bawdo/gotruth/analysis (tautologies and contradictions)
//   - github.com/bawdo/gotruth/export (SQL export)
package gotruth

import (
	"errors"
	"fmt"

	"github.com/bawdo/gotruth/engine"
	"github.com/bawdo/gotruth/managers"
	"github.com/bawdo/gotruth/nodes"
	"github.com/bawdo/gotruth/parser"
	"github.com/bawdo/gotruth/scanner"
)

// ErrTooManyVariables is returned by Evaluate when a program uses more
// distinct variables than WithMaxVariables allows.
var ErrTooManyVariables = errors.New("too many variables")

// --- Types ---

// Table is a complete truth table.
type Table = engine.Table

// Program is a parsed set of statements sharing one variable table.
type Program = nodes.Program

// FormulaManager accumulates formula lines for evaluation.
type FormulaManager = managers.FormulaManager

// NewFormulaManager creates an empty FormulaManager.
func NewFormulaManager() *managers.FormulaManager {
	return managers.NewFormulaManager()
}

// --- Pipeline ---

type config struct {
	maxVariables int
}

// Option configures Evaluate.
type Option func(*config)

// WithMaxVariables rejects programs with more than n distinct variables
// before any rows are enumerated. Zero or less means no limit.
func WithMaxVariables(n int) Option {
	return func(c *config) {
		c.maxVariables = n
	}
}

// Parse scans and parses text. The error, if any, is a scanner.ErrorList
// when scanning failed and a parser.ErrorList when parsing failed.
func Parse(text string) (*nodes.Program, error) {
	tokens, err := scanner.Scan(text)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Evaluate parses text and builds its truth table. Lex errors stop the
// pipeline before parsing, and syntax errors stop it before evaluation. A
// program over the variable limit is returned along with the error.
func Evaluate(text string, opts ...Option) (*engine.Table, *nodes.Program, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	prog, err := Parse(text)
	if err != nil {
		return nil, nil, err
	}
	if n := prog.Variables.Len(); c.maxVariables > 0 && n > c.maxVariables {
		return nil, prog, fmt.Errorf("%w: %d (limit %d)", ErrTooManyVariables, n, c.maxVariables)
	}
	return engine.Run(prog), prog, nil
}

// Messages flattens a pipeline error into user-facing lines, one per lex or
// syntax error. Other errors produce a single line; nil produces none.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var lexErrs scanner.ErrorList
	if errors.As(err, &lexErrs) {
		return lexErrs.Messages()
	}
	var syntaxErrs parser.ErrorList
	if errors.As(err, &syntaxErrs) {
		return syntaxErrs.Messages()
	}
	return []string{err.Error()}
}
