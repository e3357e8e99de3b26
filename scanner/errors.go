package scanner

import (
	"fmt"
	"strings"
)

// Error is a single lexical error.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ErrorList is every lexical error found in one input, in source order.
type ErrorList []*Error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// Messages returns one string per error.
func (l ErrorList) Messages() []string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return msgs
}

// String joins all messages, one per line.
func (l ErrorList) String() string {
	return strings.Join(l.Messages(), "\n")
}
