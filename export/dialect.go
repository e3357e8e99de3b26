package export

import (
	"errors"
	"fmt"

	"github.com/bawdo/gotruth/internal/quoting"
	"github.com/bawdo/gotruth/nodes"
	"github.com/bawdo/gotruth/visitors"
)

// ErrUnknownDialect is returned by DialectFor for an unsupported engine name.
var ErrUnknownDialect = errors.New("export: unknown dialect")

// Dialect describes how to talk to one database engine.
type Dialect struct {
	// Name is the engine name used on the command line.
	Name string
	// Driver is the database/sql driver name registered for the engine.
	Driver string

	boolType    string
	ident       quoting.Quoter
	maxIdent    int // bytes; 0 for no limit
	placeholder func(i int) string
	visitor     func() nodes.Visitor
}

var (
	Postgres = Dialect{
		Name:        "postgres",
		Driver:      "pgx",
		boolType:    "BOOLEAN",
		ident:       quoting.DoubleQuote,
		maxIdent:    63,
		placeholder: func(i int) string { return fmt.Sprintf("$%d", i) },
		visitor:     func() nodes.Visitor { return visitors.NewPostgresVisitor() },
	}
	MySQL = Dialect{
		Name:        "mysql",
		Driver:      "mysql",
		boolType:    "BOOLEAN",
		ident:       quoting.Backtick,
		maxIdent:    64,
		placeholder: func(_ int) string { return "?" },
		visitor:     func() nodes.Visitor { return visitors.NewMySQLVisitor() },
	}
	SQLite = Dialect{
		Name:        "sqlite",
		Driver:      "sqlite",
		boolType:    "BOOLEAN",
		ident:       quoting.DoubleQuote,
		placeholder: func(_ int) string { return "?" },
		visitor:     func() nodes.Visitor { return visitors.NewSQLiteVisitor() },
	}
)

var dialects = map[string]Dialect{
	Postgres.Name: Postgres,
	MySQL.Name:    MySQL,
	SQLite.Name:   SQLite,
}

// DialectFor returns the dialect registered under name.
func DialectFor(name string) (Dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return Dialect{}, fmt.Errorf("%w %q", ErrUnknownDialect, name)
	}
	return d, nil
}

// Names lists the supported engine names in a stable order.
func Names() []string {
	return []string{Postgres.Name, MySQL.Name, SQLite.Name}
}

func (d Dialect) quote(name string) string {
	return d.ident(name)
}

// Columns returns the column names d uses for header: Columns(header) with
// names over the engine's identifier limit shortened by quoting.Fit.
func (d Dialect) Columns(header []string) []string {
	cols := Columns(header)
	for i, c := range cols {
		cols[i] = quoting.Fit(c, d.maxIdent)
	}
	return cols
}

// Predicate renders tree as a SQL boolean expression over exported columns.
func (d Dialect) Predicate(tree nodes.Node) string {
	return tree.Accept(d.visitor())
}
