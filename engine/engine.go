// Package engine enumerates every assignment of a program's variables and
// evaluates each statement under it, producing a truth table.
//
// Rows are produced in bit-decrement order: the first assignment is
// all-true, and each next one clears the rightmost true bit and sets every
// bit to its right. The last row is all-false.
package engine

import (
	"slices"

	"github.com/bawdo/gotruth/nodes"
	"github.com/bawdo/gotruth/visitors"
)

// Table is a complete truth table. Every row has len(Header) values: the
// assignment in variable id order, then the value of every recorded
// sub-expression in the order of the header labels.
type Table struct {
	Header []string
	Rows   [][]bool
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Header)
}

// Column returns a copy of column i.
func (t *Table) Column(i int) []bool {
	col := make([]bool, len(t.Rows))
	for r, row := range t.Rows {
		col[r] = row[i]
	}
	return col
}

// Run builds the full table for p. It allocates 2^n rows for n variables;
// callers that accept untrusted input should bound n first.
func Run(p *nodes.Program) *Table {
	t := &Table{Header: visitors.Header(p)}
	Walk(p, func(row []bool) bool {
		t.Rows = append(t.Rows, slices.Clone(row))
		return true
	})
	return t
}

// Walk evaluates p under each assignment in order and passes the resulting
// row to fn. The row is reused between calls; fn must copy it to keep it.
// Walk stops early when fn returns false.
func Walk(p *nodes.Program, fn func(row []bool) bool) {
	a := newAssignment(p.Variables.Len())
	e := &evaluator{assignment: a}
	for {
		e.row = append(e.row[:0], a...)
		for _, tree := range p.Trees {
			tree.Evaluate(e)
		}
		if !fn(e.row) || !a.next() {
			return
		}
	}
}
