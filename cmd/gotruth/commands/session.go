package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/bawdo/gotruth"
	"github.com/bawdo/gotruth/analysis"
	"github.com/bawdo/gotruth/api"
	"github.com/bawdo/gotruth/export"
	"github.com/bawdo/gotruth/managers"
	"github.com/bawdo/gotruth/nodes"
	"github.com/bawdo/gotruth/visitors"
)

var (
	errNoFormulas   = errors.New("no formulas (type a formula to add it)")
	errNotConnected = errors.New("not connected (use 'connect [engine] <dsn>' first)")
)

const dbTimeout = 30 * time.Second

// exportRecord remembers the last batch written to a table.
type exportRecord struct {
	batch uuid.UUID
	rows  int
}

// Session holds the REPL state: the formula buffer, the export dialect, the
// database connection and the batches exported through it.
type Session struct {
	formulas     *managers.FormulaManager
	dialect      export.Dialect
	format       string
	maxVariables int
	commands     []commandEntry // sorted by prefix length desc
	conn         *dbConn        // nil when disconnected
	lastDSN      string
	exports      map[string]exportRecord
	out          io.Writer
}

// NewSession creates a session exporting with the named engine. An unknown
// engine falls back to sqlite.
func NewSession(engine string) *Session {
	s := &Session{
		formulas:     managers.NewFormulaManager(),
		dialect:      export.SQLite,
		format:       "tf",
		maxVariables: api.DefaultMaxVariables,
		exports:      make(map[string]exportRecord),
		out:          os.Stdout,
	}
	if engine != "" {
		if d, err := export.DialectFor(engine); err == nil {
			s.dialect = d
		} else {
			log.WithField("engine", engine).Warn("Unknown engine, using sqlite.")
		}
	}
	s.initCommands()
	return s
}

// Execute runs a single REPL line. Lines that are not commands are formulas
// and are added to the buffer.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(line[len(cmd.prefix):])
			}
		} else if lower == cmd.prefix {
			return cmd.handler("")
		}
	}
	return s.cmdAdd(line)
}

func (s *Session) close() {
	if s.conn != nil {
		_ = s.conn.close()
		s.conn = nil
	}
}

// formulaError flattens pipeline messages into one error.
func formulaError(err error) error {
	if errors.Is(err, gotruth.ErrTooManyVariables) {
		return err
	}
	return errors.New(strings.Join(gotruth.Messages(err), "\n  "))
}

// program parses the buffer and applies the variable limit.
func (s *Session) program() (*nodes.Program, error) {
	if s.formulas.Len() == 0 {
		return nil, errNoFormulas
	}
	prog, err := gotruth.Parse(s.formulas.Text())
	if err != nil {
		return nil, formulaError(err)
	}
	if n := prog.Variables.Len(); s.maxVariables > 0 && n > s.maxVariables {
		return nil, fmt.Errorf("%w: %d (limit %d)", gotruth.ErrTooManyVariables, n, s.maxVariables)
	}
	return prog, nil
}

func (s *Session) evaluate() (*gotruth.Table, *nodes.Program, error) {
	if s.formulas.Len() == 0 {
		return nil, nil, errNoFormulas
	}
	table, prog, err := gotruth.Evaluate(s.formulas.Text(), gotruth.WithMaxVariables(s.maxVariables))
	if err != nil {
		return nil, nil, formulaError(err)
	}
	return table, prog, nil
}

func (s *Session) dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// --- Command handlers ---

// cmdAdd checks the line against the buffer so that error line numbers match
// 'show', and only then appends it.
func (s *Session) cmdAdd(line string) error {
	text := line
	if s.formulas.Len() > 0 {
		text = s.formulas.Text() + "\n" + line
	}
	prog, err := gotruth.Parse(text)
	if err != nil {
		return formulaError(err)
	}
	s.formulas.Add(line)
	_, _ = fmt.Fprintf(s.out, "  Added line %d (%d variables)\n", s.formulas.Len(), prog.Variables.Len())
	return nil
}

func (s *Session) cmdTable() error {
	table, _, err := s.evaluate()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(s.out, formatTable(table.Header, cells(table, s.format)))
	return nil
}

func (s *Session) cmdShow() error {
	if s.formulas.Len() == 0 {
		return errNoFormulas
	}
	for i, line := range s.formulas.Lines() {
		_, _ = fmt.Fprintf(s.out, "  %d: %s\n", i+1, line)
	}
	return nil
}

func (s *Session) cmdTree() error {
	prog, err := s.program()
	if err != nil {
		return err
	}
	src := visitors.NewSourceVisitor()
	for i, tree := range prog.Trees {
		_, _ = fmt.Fprintf(s.out, "  %d. %s\n", i+1, tree.Accept(src))
		outline := tree.Accept(visitors.NewOutlineVisitor("  "))
		for _, l := range strings.Split(outline, "\n") {
			_, _ = fmt.Fprintf(s.out, "     %s\n", l)
		}
	}
	return nil
}

func (s *Session) cmdSummary() error {
	table, prog, err := s.evaluate()
	if err != nil {
		return err
	}
	writeSummary(s.out, analysis.Classify(table, prog))
	return nil
}

func (s *Session) cmdDot(args string) error {
	path := strings.TrimSpace(args)
	if path == "" {
		return errors.New("usage: dot <filepath>")
	}
	prog, err := s.program()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(visitors.Dot(prog)), 0o644); err != nil {
		return fmt.Errorf("write dot file: %w", err)
	}
	_, _ = fmt.Fprintf(s.out, "  DOT written to %s\n", path)
	return nil
}

func (s *Session) cmdReset() error {
	s.formulas.Reset()
	_, _ = fmt.Fprintln(s.out, "  Formulas cleared")
	return nil
}

func (s *Session) cmdUndo() error {
	line, ok := s.formulas.Undo()
	if !ok {
		return errors.New("nothing to undo")
	}
	_, _ = fmt.Fprintf(s.out, "  Removed: %s\n", line)
	return nil
}

func (s *Session) cmdFormat(args string) error {
	format := strings.TrimSpace(strings.ToLower(args))
	if err := validFormat(format); err != nil {
		return err
	}
	s.format = format
	_, _ = fmt.Fprintf(s.out, "  Format set to %s\n", format)
	return nil
}

func (s *Session) cmdEngine(args string) error {
	name := strings.TrimSpace(strings.ToLower(args))
	if name == "" {
		_, _ = fmt.Fprintf(s.out, "  Engine: %s\n", s.dialect.Name)
		return nil
	}
	d, err := export.DialectFor(name)
	if err != nil {
		return err
	}
	if s.conn != nil && d.Name != s.conn.dialect.Name {
		return fmt.Errorf("connected via %s (disconnect first)", s.conn.dialect.Name)
	}
	s.dialect = d
	_, _ = fmt.Fprintf(s.out, "  Engine set to %s\n", d.Name)
	return nil
}

// cmdConnect accepts "connect <dsn>", "connect <engine> <dsn>", or a bare
// "connect" to reuse the previous DSN.
func (s *Session) cmdConnect(args string) error {
	fields := strings.Fields(args)
	d := s.dialect
	var dsn string
	switch {
	case len(fields) == 0:
		if s.lastDSN == "" {
			return errors.New("usage: connect [engine] <dsn>")
		}
		dsn = s.lastDSN
	case len(fields) >= 2:
		if named, err := export.DialectFor(strings.ToLower(fields[0])); err == nil {
			d = named
			dsn = strings.TrimSpace(args[strings.Index(args, fields[0])+len(fields[0]):])
			break
		}
		fallthrough
	default:
		dsn = strings.TrimSpace(args)
	}

	// The current connection stays open until the new one is up.
	ctx, cancel := s.dbContext()
	defer cancel()
	conn, err := connect(ctx, d, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.close()
	s.dialect = d
	s.conn = conn
	s.lastDSN = dsn
	s.exports = make(map[string]exportRecord)
	_, _ = fmt.Fprintf(s.out, "  Connected to %s (%s)\n", sanitizeDSN(dsn), d.Name)
	return nil
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return errNotConnected
	}
	s.close()
	s.exports = make(map[string]exportRecord)
	_, _ = fmt.Fprintln(s.out, "  Disconnected")
	return nil
}

func (s *Session) cmdTables() error {
	if s.conn == nil {
		return errNotConnected
	}
	ctx, cancel := s.dbContext()
	defer cancel()
	if err := s.conn.loadTables(ctx); err != nil {
		return fmt.Errorf("tables: %w", err)
	}
	if len(s.conn.tables) == 0 {
		_, _ = fmt.Fprintln(s.out, "  (no tables)")
		return nil
	}
	for _, name := range s.conn.tables {
		_, _ = fmt.Fprintf(s.out, "  %s\n", name)
	}
	return nil
}

func (s *Session) cmdExport(args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: export <table>")
	}
	if s.conn == nil {
		return errNotConnected
	}
	prog, err := s.program()
	if err != nil {
		return err
	}

	ctx, cancel := s.dbContext()
	defer cancel()
	res, err := export.Write(ctx, s.conn.db, s.conn.dialect, prog, name)
	if err != nil {
		return err
	}
	s.exports[name] = exportRecord{batch: res.BatchID, rows: res.Rows}
	if err := s.conn.loadTables(ctx); err != nil {
		log.WithError(err).Debug("Schema refresh failed.")
	}
	_, _ = fmt.Fprintf(s.out, "  Exported %s rows to %q (batch %s)\n",
		humanize.Comma(int64(res.Rows)), name, res.BatchID)
	return nil
}

// cmdCount asks the database how many rows of the last batch exported to a
// table satisfy a formula. The formula defaults to the last buffered line.
func (s *Session) cmdCount(args string) error {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return errors.New("usage: count <table> [formula]")
	}
	if s.conn == nil {
		return errNotConnected
	}
	name := fields[0]
	rec, ok := s.exports[name]
	if !ok {
		return fmt.Errorf("nothing exported to %q in this session", name)
	}

	formula := strings.TrimSpace(strings.TrimSpace(args)[len(name):])
	if formula == "" {
		lines := s.formulas.Lines()
		if len(lines) == 0 {
			return errNoFormulas
		}
		formula = lines[len(lines)-1]
	}
	prog, err := gotruth.Parse(formula)
	if err != nil {
		return formulaError(err)
	}
	if len(prog.Trees) != 1 {
		return errors.New("count takes a single formula")
	}

	ctx, cancel := s.dbContext()
	defer cancel()
	n, err := export.Count(ctx, s.conn.db, s.conn.dialect, name, rec.batch, prog.Trees[0])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  %s of %s rows satisfy %s\n",
		humanize.Comma(int64(n)), humanize.Comma(int64(rec.rows)), formula)
	return nil
}

func (s *Session) cmdHelp() {
	_, _ = fmt.Fprint(s.out, `
  Formulas:
    <formula>                      Add a line (e.g. p AND q -> r)
    show                           List buffered lines
    undo                           Remove the last line
    reset                          Remove every line

  Output:
    table                          Print the truth table
    summary                        Classify each statement
    tree                           Print each statement's expression tree
    dot <file>                     Write the trees as Graphviz DOT
    format tf|01                   Cell style for 'table'

  Database:
    engine [postgres|mysql|sqlite] Show or set the export dialect
    connect [engine] <dsn>         Connect (bare 'connect' reuses the last DSN)
    disconnect                     Close the connection
    tables                         List tables in the database
    export <table>                 Insert the truth table as a new batch
    count <table> [formula]        Count rows of the last batch satisfying a formula

  Syntax: variables a-z, T, F, !, AND, OR, -> or =>, <-> or <=>, ( )

    help                           Show this help
    exit, quit                     Leave the REPL
`)
}
