package commands

import (
	"errors"
	"slices"
	"strings"
)

// commandEntry is one REPL command. A prefix ending in a space takes
// arguments; any other prefix must match the whole line.
type commandEntry struct {
	prefix    string
	handler   func(args string) error
	completer func(args string) (completionContext, string)
	hidden    bool // alias left out of completion
}

// initCommands fills the registry, longest prefix first.
func (s *Session) initCommands() {
	s.commands = []commandEntry{
		// --- formula buffer ---
		{prefix: "show", handler: func(_ string) error { return s.cmdShow() }},
		{prefix: "list", handler: func(_ string) error { return s.cmdShow() }, hidden: true},
		{prefix: "undo", handler: func(_ string) error { return s.cmdUndo() }},
		{prefix: "reset", handler: func(_ string) error { return s.cmdReset() }},

		// --- output ---
		{prefix: "table", handler: func(_ string) error { return s.cmdTable() }},
		{prefix: "summary", handler: func(_ string) error { return s.cmdSummary() }},
		{prefix: "tree", handler: func(_ string) error { return s.cmdTree() }},
		{prefix: "dot ", handler: func(a string) error { return s.cmdDot(a) }},
		{prefix: "dot", handler: func(_ string) error { return errors.New("usage: dot <filepath>") }},
		{prefix: "format ", handler: func(a string) error { return s.cmdFormat(a) }, completer: completeFormatArgs},
		{prefix: "format", handler: func(_ string) error { return errors.New("usage: format tf|01") }},

		// --- database connectivity ---
		{prefix: "engine ", handler: func(a string) error { return s.cmdEngine(a) }, completer: completeEngineArgs},
		{prefix: "engine", handler: func(_ string) error { return s.cmdEngine("") }},
		{prefix: "connect ", handler: func(a string) error { return s.cmdConnect(a) }, completer: completeConnectArgs},
		{prefix: "connect", handler: func(_ string) error { return s.cmdConnect("") }},
		{prefix: "disconnect", handler: func(_ string) error { return s.cmdDisconnect() }},
		{prefix: "tables", handler: func(_ string) error { return s.cmdTables() }},
		{prefix: "export ", handler: func(a string) error { return s.cmdExport(a) }, completer: completeTableArgs},
		{prefix: "export", handler: func(_ string) error { return errors.New("usage: export <table>") }},
		{prefix: "count ", handler: func(a string) error { return s.cmdCount(a) }, completer: completeTableArgs},
		{prefix: "count", handler: func(_ string) error { return errors.New("usage: count <table> [formula]") }},

		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},
	}

	slices.SortStableFunc(s.commands, func(a, b commandEntry) int {
		return len(b.prefix) - len(a.prefix)
	})
}

// commandNames lists what can be typed as the first word of a line.
func (s *Session) commandNames() []string {
	names := []string{"exit", "quit"}
	for _, cmd := range s.commands {
		if !cmd.hidden {
			names = append(names, strings.TrimSuffix(cmd.prefix, " "))
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// completeTableArgs completes the first argument of export and count.
func completeTableArgs(args string) (completionContext, string) {
	if strings.Contains(strings.TrimLeft(args, " "), " ") {
		return contextNone, ""
	}
	return contextTableName, strings.TrimSpace(args)
}

// completeConnectArgs completes an engine name as the first argument; the
// DSN is free-form.
func completeConnectArgs(args string) (completionContext, string) {
	if strings.Contains(strings.TrimLeft(args, " "), " ") {
		return contextNone, ""
	}
	return contextEngine, strings.TrimSpace(args)
}

func completeEngineArgs(args string) (completionContext, string) {
	return contextEngine, strings.TrimSpace(args)
}

func completeFormatArgs(args string) (completionContext, string) {
	return contextFormat, strings.TrimSpace(args)
}
