package commands

import (
	"slices"
	"strings"

	"github.com/bawdo/gotruth/export"
)

// completionContext says which candidate list applies at the cursor.
type completionContext int

const (
	contextCommand   completionContext = iota // first word of the line
	contextNone                               // formulas and free-form arguments
	contextEngine                             // after engine/connect
	contextTableName                          // after export/count
	contextFormat                             // after format
)

// replCompleter implements readline's AutoCompleter interface.
type replCompleter struct {
	sess *Session
}

// candidates returns every completion for ctx, before prefix filtering.
func (c *replCompleter) candidates(ctx completionContext) []string {
	switch ctx {
	case contextCommand:
		return c.sess.commandNames()
	case contextEngine:
		return export.Names()
	case contextTableName:
		return c.tableNames()
	case contextFormat:
		return []string{"01", "tf"}
	}
	return nil
}

// Do returns, for each candidate, the text to insert after the partial word
// at the cursor, and the partial word's length in runes.
func (c *replCompleter) Do(line []rune, pos int) ([][]rune, int) {
	ctx, prefix := c.parseContext(string(line[:pos]))
	var suffixes [][]rune
	for _, cand := range filterPrefix(c.candidates(ctx), prefix) {
		suffixes = append(suffixes, []rune(cand[len(prefix):]+" "))
	}
	return suffixes, len([]rune(prefix))
}

// parseContext finds the registered command the line starts with and lets
// its completer classify the arguments typed so far.
func (c *replCompleter) parseContext(line string) (completionContext, string) {
	lower := strings.ToLower(line)
	for _, cmd := range c.sess.commands {
		if cmd.completer == nil || !strings.HasPrefix(lower, cmd.prefix) {
			continue
		}
		return cmd.completer(line[len(cmd.prefix):])
	}
	word := strings.TrimSpace(line)
	if strings.ContainsAny(word, " \t") {
		return contextNone, ""
	}
	return contextCommand, word
}

// tableNames merges tables exported this session with those in the database.
func (c *replCompleter) tableNames() []string {
	var names []string
	for name := range c.sess.exports {
		names = append(names, name)
	}
	if c.sess.conn != nil {
		names = append(names, c.sess.conn.tables...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// filterPrefix keeps the items that start with prefix, ignoring case.
func filterPrefix(items []string, prefix string) []string {
	lower := strings.ToLower(prefix)
	var out []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), lower) {
			out = append(out, item)
		}
	}
	return out
}
