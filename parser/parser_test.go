package parser

import (
	"errors"
	"testing"

	"github.com/bawdo/gotruth/internal/testutil"
	"github.com/bawdo/gotruth/nodes"
	"github.com/bawdo/gotruth/scanner"
)

func mustParse(t *testing.T, text string) *nodes.Program {
	t.Helper()
	tokens, err := scanner.Scan(text)
	testutil.AssertNoError(t, err)
	prog, err := Parse(tokens)
	testutil.AssertNoError(t, err)
	return prog
}

func parseErrors(t *testing.T, text string) ErrorList {
	t.Helper()
	tokens, err := scanner.Scan(text)
	testutil.AssertNoError(t, err)
	prog, err := Parse(tokens)
	testutil.AssertError(t, err)
	if prog != nil {
		t.Errorf("expected nil program on error, got %v", testutil.Shape(prog))
	}
	var list ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("expected ErrorList, got %T", err)
	}
	return list
}

// --- Shape ---

func TestParseShape(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"p", "p"},
		{"T", "T"},
		{"!F", "N(F)"},
		{"!!p", "N(N(p))"},
		{"(p)", "G(p)"},
		{"p AND q", "AND(p,q)"},
		{"p AND q AND r", "AND(p,q,r)"},
		{"p OR q OR r OR s", "OR(p,q,r,s)"},
		{"p -> q => r", "CONDITIONAL(p,q,r)"},
		{"p <-> q <=> r", "BICONDITIONAL(p,q,r)"},
		{"(p AND q) AND r", "AND(G(AND(p,q)),r)"},
		{"!p AND q", "AND(N(p),q)"},
		{"!(p AND q)", "N(G(AND(p,q)))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			testutil.AssertSlice(t, testutil.Shape(mustParse(t, tt.input)), []string{tt.want})
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"a OR b AND c", "OR(a,AND(b,c))"},
		{"a AND b OR c", "OR(AND(a,b),c)"},
		{"a -> b OR c", "CONDITIONAL(a,OR(b,c))"},
		{"a <-> b -> c", "BICONDITIONAL(a,CONDITIONAL(b,c))"},
		{"a -> b <-> c -> d", "BICONDITIONAL(CONDITIONAL(a,b),CONDITIONAL(c,d))"},
		{"a OR b AND c -> d <-> e", "BICONDITIONAL(CONDITIONAL(OR(a,AND(b,c)),d),e)"},
		{"!a OR b", "OR(N(a),b)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			testutil.AssertSlice(t, testutil.Shape(mustParse(t, tt.input)), []string{tt.want})
		})
	}
}

// --- Programs ---

func TestParseMultipleStatements(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, "p AND q\n\n!r\nq -> p\n")
	testutil.AssertSlice(t, testutil.Shape(prog), []string{"AND(p,q)", "N(r)", "CONDITIONAL(q,p)"})
	testutil.AssertSlice(t, prog.Variables.Names(), []string{"p", "q", "r"})
}

func TestParseSharesVariableIDsAcrossLines(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, "q\np\nq")
	ids := make([]int, len(prog.Trees))
	for i, tree := range prog.Trees {
		ids[i] = tree.(*nodes.VariableNode).ID
	}
	testutil.AssertSlice(t, ids, []int{0, 1, 0})
	testutil.AssertEqual(t, prog.Variables.Len(), 2)
}

func TestParseBlankInputYieldsEmptyProgram(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"", "\n", "\n\n\n"} {
		prog := mustParse(t, input)
		testutil.AssertEqual(t, len(prog.Trees), 0)
		testutil.AssertEqual(t, prog.Variables.Len(), 0)
	}
}

func TestParseWithoutTrailingEOFToken(t *testing.T) {
	t.Parallel()
	tokens := []scanner.Token{
		{Kind: scanner.Variable, Lexeme: "p", Line: 1},
		{Kind: scanner.And, Line: 1},
		{Kind: scanner.Variable, Lexeme: "q", Line: 1},
	}
	prog, err := Parse(tokens)
	testutil.AssertNoError(t, err)
	testutil.AssertSlice(t, testutil.Shape(prog), []string{"AND(p,q)"})
}

// --- Errors ---

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"p AND", "line 1: Expecting token but reached end of file"},
		{"p AND\n", "line 1: Expecting token but reached end of line"},
		{"(p OR q", "line 1: Expecting ')' to close group"},
		{"(p OR q\n", "line 1: Expecting ')' to close group"},
		{"p AND )", "line 1: Unexpected end of expression"},
		{"AND p", "line 1: Unexpected end of expression"},
		{"()", "line 1: Unexpected end of expression"},
		{"p q", "line 1: Unexpected VARIABLE(q) after expression"},
		{"(p) )", "line 1: Unexpected END_PAREN after expression"},
		{"p !", "line 1: Unexpected NOT after expression"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			list := parseErrors(t, tt.input)
			testutil.AssertSlice(t, list.Messages(), []string{tt.want})
		})
	}
}

func TestParseErrorIsolatedToItsLine(t *testing.T) {
	t.Parallel()
	list := parseErrors(t, "a AND\nb OR c")
	testutil.AssertEqual(t, len(list), 1)
	testutil.AssertEqual(t, list[0].Line, 1)
}

func TestParseCollectsOneErrorPerFailedStatement(t *testing.T) {
	t.Parallel()
	list := parseErrors(t, "p AND AND q\nq\n(r\ns t u\n")
	want := []string{
		"line 1: Unexpected end of expression",
		"line 3: Expecting ')' to close group",
		"line 4: Unexpected VARIABLE(t) after expression",
	}
	testutil.AssertSlice(t, list.Messages(), want)
	testutil.AssertEqual(t, list.Error(), "line 1: Unexpected end of expression (and 2 more errors)")
}

func TestErrorListFormatting(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, ErrorList{}.Error(), "no errors")
	list := ErrorList{{Line: 2, Msg: "a"}, {Line: 5, Msg: "b"}}
	testutil.AssertEqual(t, list.String(), "line 2: a\nline 5: b")
}
