package gotruth_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/bawdo/gotruth"
	"github.com/bawdo/gotruth/internal/testutil"
	"github.com/bawdo/gotruth/parser"
	"github.com/bawdo/gotruth/scanner"
)

// TestEvaluateConditional demonstrates the full pipeline.
func TestEvaluateConditional(t *testing.T) {
	t.Parallel()
	table, prog, err := gotruth.Evaluate("p -> q")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(prog.Trees), 1)
	testutil.AssertSlice(t, table.Header, []string{"p", "q", "(p ⇒ q)"})
	testutil.AssertRows(t, table.Rows, testutil.Rows("TTT", "TFF", "FTT", "FFT"))
}

func TestEvaluateLexErrorsStopPipeline(t *testing.T) {
	t.Parallel()
	table, prog, err := gotruth.Evaluate("a RO b\np AND")
	if table != nil || prog != nil {
		t.Fatal("expected no table or program on lex error")
	}
	var lexErrs scanner.ErrorList
	if !errors.As(err, &lexErrs) {
		t.Fatalf("expected scanner.ErrorList, got %T", err)
	}
	// The dangling AND on line 2 is a syntax error and is never reported.
	testutil.AssertSlice(t, gotruth.Messages(err), []string{"line 1: Unknown identifier 'RO'. Did you mean 'OR'?"})
}

func TestEvaluateSyntaxErrorsDiscardValidLines(t *testing.T) {
	t.Parallel()
	table, prog, err := gotruth.Evaluate("a AND\nb OR c")
	if table != nil || prog != nil {
		t.Fatal("expected no table or program on syntax error")
	}
	var syntaxErrs parser.ErrorList
	if !errors.As(err, &syntaxErrs) {
		t.Fatalf("expected parser.ErrorList, got %T", err)
	}
	testutil.AssertSlice(t, gotruth.Messages(err), []string{"line 1: Expecting token but reached end of line"})
}

func TestEvaluateMaxVariables(t *testing.T) {
	t.Parallel()
	_, prog, err := gotruth.Evaluate("a AND b AND c", gotruth.WithMaxVariables(2))
	if !errors.Is(err, gotruth.ErrTooManyVariables) {
		t.Fatalf("expected ErrTooManyVariables, got %v", err)
	}
	if prog == nil {
		t.Fatal("expected the parsed program alongside the limit error")
	}
	testutil.AssertSlice(t, gotruth.Messages(err), []string{"too many variables: 3 (limit 2)"})

	_, _, err = gotruth.Evaluate("a AND b", gotruth.WithMaxVariables(2))
	testutil.AssertNoError(t, err)
	_, _, err = gotruth.Evaluate("a AND b AND c", gotruth.WithMaxVariables(0))
	testutil.AssertNoError(t, err)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	t.Parallel()
	const text = "(p <-> q) OR !r\nr -> p"
	first, _, err := gotruth.Evaluate(text)
	testutil.AssertNoError(t, err)
	second, _, err := gotruth.Evaluate(text)
	testutil.AssertNoError(t, err)
	testutil.AssertSlice(t, first.Header, second.Header)
	testutil.AssertRows(t, first.Rows, second.Rows)
}

func TestEvaluateBlankInput(t *testing.T) {
	t.Parallel()
	table, prog, err := gotruth.Evaluate("\n  \n")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(prog.Trees), 0)
	testutil.AssertEqual(t, table.Width(), 0)
}

func TestMessages(t *testing.T) {
	t.Parallel()
	if got := gotruth.Messages(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	testutil.AssertSlice(t, gotruth.Messages(errors.New("boom")), []string{"boom"})

	_, err := gotruth.Parse("p & q\nr - s")
	got := gotruth.Messages(err)
	testutil.AssertEqual(t, len(got), 2)
	if !strings.HasPrefix(got[1], "line 2: ") {
		t.Errorf("expected line 2 prefix, got %q", got[1])
	}
}

// TestFormulaManager demonstrates building a program line by line.
func TestFormulaManager(t *testing.T) {
	t.Parallel()
	m := gotruth.NewFormulaManager().Add("p").Add("p -> q")
	table, _, err := gotruth.Evaluate(m.Text())
	testutil.AssertNoError(t, err)
	testutil.AssertSlice(t, table.Header, []string{"p", "q", "(p ⇒ q)"})
}
