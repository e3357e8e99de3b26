package testutil

import (
	"slices"
	"testing"

	"github.com/bawdo/gotruth/nodes"
)

// AssertEqual checks that got == want and reports a descriptive error if not.
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("expected:\n  %v\ngot:\n  %v", want, got)
	}
}

// AssertSlice checks that two slices hold the same elements in order.
func AssertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("expected:\n  %v\ngot:\n  %v", want, got)
	}
}

// AssertRender accepts a visitor and node, renders the node, and compares it
// with the expected string.
func AssertRender(t *testing.T, v nodes.Visitor, node nodes.Node, expected string) {
	t.Helper()
	got := node.Accept(v)
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
}

// AssertRows compares a boolean matrix row by row, reporting the first
// differing row in T/F notation.
func AssertRows(t *testing.T, got, want [][]bool) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("row %d: expected %s, got %s", i, TF(want[i]), TF(got[i]))
		}
	}
}

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
}

// TF renders a row as a compact string such as "TFT".
func TF(row []bool) string {
	b := make([]byte, len(row))
	for i, v := range row {
		if v {
			b[i] = 'T'
		} else {
			b[i] = 'F'
		}
	}
	return string(b)
}

// Row parses a compact "TFT" string into a boolean row.
func Row(s string) []bool {
	row := make([]bool, len(s))
	for i := range s {
		row[i] = s[i] == 'T'
	}
	return row
}

// Rows parses several compact rows.
func Rows(ss ...string) [][]bool {
	out := make([][]bool, len(ss))
	for i, s := range ss {
		out[i] = Row(s)
	}
	return out
}
