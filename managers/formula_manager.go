// Package managers provides a fluent API for assembling multi-line programs.
package managers

import (
	"strings"
)

// FormulaManager accumulates formula lines. Each Add appends one statement;
// Text joins them into the program text the scanner expects.
type FormulaManager struct {
	lines []string
}

// NewFormulaManager creates an empty FormulaManager.
func NewFormulaManager() *FormulaManager {
	return &FormulaManager{}
}

// Add appends one or more lines. Embedded newlines split a value into
// several lines, and blank lines are dropped.
func (m *FormulaManager) Add(lines ...string) *FormulaManager {
	for _, l := range lines {
		for _, part := range strings.Split(l, "\n") {
			if part = strings.TrimSpace(part); part != "" {
				m.lines = append(m.lines, part)
			}
		}
	}
	return m
}

// Undo removes the most recently added line and returns it. It reports
// false when there is nothing to remove.
func (m *FormulaManager) Undo() (string, bool) {
	if len(m.lines) == 0 {
		return "", false
	}
	last := m.lines[len(m.lines)-1]
	m.lines = m.lines[:len(m.lines)-1]
	return last, true
}

// Reset removes every line.
func (m *FormulaManager) Reset() *FormulaManager {
	m.lines = nil
	return m
}

// Lines returns a copy of the accumulated lines.
func (m *FormulaManager) Lines() []string {
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// Len returns the number of lines.
func (m *FormulaManager) Len() int {
	return len(m.lines)
}

// Text joins the lines with newlines. Line numbers in scanner and parser
// errors refer to positions in this text.
func (m *FormulaManager) Text() string {
	return strings.Join(m.lines, "\n")
}
