// Package scanner turns raw formula text into a flat sequence of tokens.
//
// Lexical errors are collected into an ErrorList. Error.Msg holds the bare
// message, and Error() prefixes it with "line N: ".
package scanner

import "fmt"

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	Variable TokenKind = iota
	And
	Or
	Not
	Conditional
	Biconditional
	TrueLiteral
	FalseLiteral
	StartParen
	EndParen
	NewLine
	EndOfFile
)

var tokenKindNames = [...]string{
	Variable:      "VARIABLE",
	And:           "AND",
	Or:            "OR",
	Not:           "NOT",
	Conditional:   "CONDITIONAL",
	Biconditional: "BICONDITIONAL",
	TrueLiteral:   "TRUE_LITERAL",
	FalseLiteral:  "FALSE_LITERAL",
	StartParen:    "START_PAREN",
	EndParen:      "END_PAREN",
	NewLine:       "NEW_LINE",
	EndOfFile:     "END_OF_FILE",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenKindNames[k]
}

// Token is a single lexeme. Only Variable tokens carry a Lexeme.
// Line is 1-based.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + t.Lexeme + ")"
}
