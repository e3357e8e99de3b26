package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/bawdo/gotruth/internal/testutil"
)

// kinds returns the kind sequence of tokens for compact comparison.
func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func mustScan(t *testing.T, text string) []Token {
	t.Helper()
	tokens, err := Scan(text)
	testutil.AssertNoError(t, err)
	return tokens
}

func scanErrors(t *testing.T, text string) ErrorList {
	t.Helper()
	tokens, err := Scan(text)
	testutil.AssertError(t, err)
	if tokens != nil {
		t.Errorf("expected nil tokens on error, got %v", tokens)
	}
	var list ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("expected ErrorList, got %T", err)
	}
	return list
}

// --- Single tokens ---

func TestScanOperators(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  []TokenKind
	}{
		{"!", []TokenKind{Not, EndOfFile}},
		{"(", []TokenKind{StartParen, EndOfFile}},
		{")", []TokenKind{EndParen, EndOfFile}},
		{"->", []TokenKind{Conditional, EndOfFile}},
		{"=>", []TokenKind{Conditional, EndOfFile}},
		{"<->", []TokenKind{Biconditional, EndOfFile}},
		{"<=>", []TokenKind{Biconditional, EndOfFile}},
		{"AND", []TokenKind{And, EndOfFile}},
		{"OR", []TokenKind{Or, EndOfFile}},
		{"T", []TokenKind{TrueLiteral, EndOfFile}},
		{"F", []TokenKind{FalseLiteral, EndOfFile}},
		{"p", []TokenKind{Variable, EndOfFile}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testutil.AssertSlice(t, kinds(mustScan(t, tt.input)), tt.want)
		})
	}
}

func TestScanEmptyInputYieldsOnlyEOF(t *testing.T) {
	t.Parallel()
	testutil.AssertSlice(t, kinds(mustScan(t, "")), []TokenKind{EndOfFile})
}

func TestScanVariableCarriesLexeme(t *testing.T) {
	t.Parallel()
	tokens := mustScan(t, "q")
	testutil.AssertEqual(t, tokens[0].Lexeme, "q")
	testutil.AssertEqual(t, tokens[0].String(), "VARIABLE(q)")
	testutil.AssertEqual(t, tokens[1].Lexeme, "")
	testutil.AssertEqual(t, tokens[1].String(), "END_OF_FILE")
}

// --- Whitespace and lines ---

func TestScanSkipsSpacesAndCarriageReturns(t *testing.T) {
	t.Parallel()
	got := kinds(mustScan(t, " p  AND\r\n q "))
	want := []TokenKind{Variable, And, NewLine, Variable, EndOfFile}
	testutil.AssertSlice(t, got, want)
}

func TestScanTracksLines(t *testing.T) {
	t.Parallel()
	tokens := mustScan(t, "p\n\nq")
	want := []struct {
		kind TokenKind
		line int
	}{
		{Variable, 1}, {NewLine, 1}, {NewLine, 2}, {Variable, 3}, {EndOfFile, 3},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Line != w.line {
			t.Errorf("token[%d]: expected %s@%d, got %s@%d", i, w.kind, w.line, tokens[i].Kind, tokens[i].Line)
		}
	}
}

func TestScanFullFormula(t *testing.T) {
	t.Parallel()
	got := kinds(mustScan(t, "!(p AND q) -> r <=> T OR F"))
	want := []TokenKind{
		Not, StartParen, Variable, And, Variable, EndParen, Conditional,
		Variable, Biconditional, TrueLiteral, Or, FalseLiteral, EndOfFile,
	}
	testutil.AssertSlice(t, got, want)
}

func TestScanOperatorsWithoutSpaces(t *testing.T) {
	t.Parallel()
	got := kinds(mustScan(t, "p->!q<->(r)"))
	want := []TokenKind{
		Variable, Conditional, Not, Variable, Biconditional,
		StartParen, Variable, EndParen, EndOfFile,
	}
	testutil.AssertSlice(t, got, want)
}

// --- Errors ---

func TestScanMalformedOperators(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"p - q", "Expecting > after -"},
		{"p = q", "Expecting > after ="},
		{"p < q", "Expecting -> or => after <"},
		{"p <q", "Expecting -> or => after <"},
		{"p -", "Expecting > after -"},
		{"p & q", "Unknown token: &"},
		{"p ∧ q", "Unknown token: ∧"},
		{"p\tq", "Unknown token: \t"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			list := scanErrors(t, tt.input)
			if len(list) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(list), list.Messages())
			}
			testutil.AssertEqual(t, list[0].Msg, tt.want)
		})
	}
}

func TestScanUnknownIdentifiers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"pq", "Unknown identifier 'pq'"},
		{"P", "Unknown identifier 'P'"},
		{"TRUE", "Unknown identifier 'TRUE'"},
		{"and", "Unknown identifier 'and'. Did you mean 'AND'?"},
		{"Or", "Unknown identifier 'Or'. Did you mean 'OR'?"},
		{"RO", "Unknown identifier 'RO'. Did you mean 'OR'?"},
		{"NAD", "Unknown identifier 'NAD'. Did you mean 'AND'?"},
		{"adn", "Unknown identifier 'adn'. Did you mean 'AND'?"},
		{"DNA", "Unknown identifier 'DNA'"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			list := scanErrors(t, tt.input)
			testutil.AssertEqual(t, list[0].Msg, tt.want)
		})
	}
}

func TestScanSuggestsOrForTransposition(t *testing.T) {
	t.Parallel()
	list := scanErrors(t, "a RO b")
	if !strings.Contains(list.Error(), "'OR'") {
		t.Errorf("expected suggestion of OR, got %q", list.Error())
	}
}

func TestScanAccumulatesAllErrors(t *testing.T) {
	t.Parallel()
	list := scanErrors(t, "p & q\nr - s\nxyz")
	want := []string{
		"line 1: Unknown token: &",
		"line 2: Expecting > after -",
		"line 3: Unknown identifier 'xyz'",
	}
	testutil.AssertSlice(t, list.Messages(), want)
	if !strings.Contains(list.Error(), "and 2 more errors") {
		t.Errorf("expected summary of remaining errors, got %q", list.Error())
	}
	testutil.AssertEqual(t, list.String(), strings.Join(want, "\n"))
}

func TestScanErrorDoesNotSwallowFollowingCharacter(t *testing.T) {
	t.Parallel()
	// The ( after the bad - is still scanned; only one error is reported.
	list := scanErrors(t, "-(p)")
	if len(list) != 1 {
		t.Errorf("expected 1 error, got %v", list.Messages())
	}
}

// --- Suggestions ---

func TestSuggestKeyword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		word string
		want string
	}{
		{"and", "AND"},
		{"AnD", "AND"},
		{"or", "OR"},
		{"ro", "OR"},
		{"NDA", ""},
		{"ANDD", ""},
		{"xor", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := suggestKeyword(tt.word); got != tt.want {
			t.Errorf("suggestKeyword(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, Biconditional.String(), "BICONDITIONAL")
	testutil.AssertEqual(t, TokenKind(99).String(), "TokenKind(99)")
}
