// Package export writes truth tables into a SQL database, one row per
// assignment, so they can be queried alongside other data.
//
// Every exported table has a batch_id column identifying one Write call, a
// row_num column holding the row's position in enumeration order, and one
// boolean column per header label. Repeated writes to the same table append
// new batches.
package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/bawdo/gotruth/engine"
	"github.com/bawdo/gotruth/nodes"
	"github.com/bawdo/gotruth/visitors"
)

// ErrEmptyName is returned when Write is called without a table name.
var ErrEmptyName = errors.New("export: table name is empty")

const (
	batchColumn = "batch_id"
	rowColumn   = "row_num"
)

// Result summarizes one Write.
type Result struct {
	BatchID uuid.UUID
	Rows    int
}

type options struct {
	batchID uuid.UUID
	create  bool
}

// Option configures Write.
type Option func(*options)

// WithBatchID sets the batch id instead of generating a random one.
func WithBatchID(id uuid.UUID) Option {
	return func(o *options) {
		o.batchID = id
	}
}

// WithoutCreate skips CREATE TABLE; the table must already exist.
func WithoutCreate() Option {
	return func(o *options) {
		o.create = false
	}
}

// Columns returns the exported column names for header. Labels that repeat
// (the same sub-expression in two statements) get a " #n" suffix so that
// every column name is unique.
func Columns(header []string) []string {
	seen := make(map[string]int, len(header))
	cols := make([]string, len(header))
	for i, label := range header {
		seen[label]++
		if n := seen[label]; n > 1 {
			label += " #" + strconv.Itoa(n)
		}
		cols[i] = label
	}
	return cols
}

// Write evaluates p and inserts every row of its truth table into the named
// table inside a single transaction. Rows are streamed from the engine, not
// materialized first.
func Write(ctx context.Context, db *sql.DB, d Dialect, p *nodes.Program, name string, opts ...Option) (Result, error) {
	if name == "" {
		return Result{}, ErrEmptyName
	}
	o := options{create: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.batchID == uuid.Nil {
		o.batchID = uuid.New()
	}

	cols := d.Columns(visitors.Header(p))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("export: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if o.create {
		if _, err := tx.ExecContext(ctx, createTableSQL(d, name, cols)); err != nil {
			return Result{}, fmt.Errorf("export: create table %s: %w", name, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL(d, name, cols))
	if err != nil {
		return Result{}, fmt.Errorf("export: prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	res := Result{BatchID: o.batchID}
	args := make([]any, len(cols)+2)
	args[0] = o.batchID.String()
	var walkErr error
	engine.Walk(p, func(row []bool) bool {
		if walkErr = ctx.Err(); walkErr != nil {
			return false
		}
		res.Rows++
		args[1] = res.Rows
		for i, v := range row {
			args[i+2] = v
		}
		if _, walkErr = stmt.ExecContext(ctx, args...); walkErr != nil {
			walkErr = fmt.Errorf("export: insert row %d: %w", res.Rows, walkErr)
			return false
		}
		return true
	})
	if walkErr != nil {
		return Result{}, walkErr
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("export: commit: %w", err)
	}
	return res, nil
}

// Count returns how many rows of the given batch satisfy tree, evaluated by
// the database over the exported variable columns.
func Count(ctx context.Context, db *sql.DB, d Dialect, name string, batchID uuid.UUID, tree nodes.Node) (int, error) {
	query := "SELECT COUNT(*) FROM " + d.quote(name) +
		" WHERE " + d.quote(batchColumn) + " = " + d.placeholder(1) +
		" AND " + d.Predicate(tree)
	var n int
	if err := db.QueryRowContext(ctx, query, batchID.String()).Scan(&n); err != nil {
		return 0, fmt.Errorf("export: count: %w", err)
	}
	return n, nil
}

func createTableSQL(d Dialect, name string, cols []string) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(d.quote(name))
	b.WriteString(" (")
	b.WriteString(d.quote(batchColumn))
	b.WriteString(" VARCHAR(36) NOT NULL, ")
	b.WriteString(d.quote(rowColumn))
	b.WriteString(" BIGINT NOT NULL")
	for _, c := range cols {
		b.WriteString(", ")
		b.WriteString(d.quote(c))
		b.WriteByte(' ')
		b.WriteString(d.boolType)
		b.WriteString(" NOT NULL")
	}
	b.WriteByte(')')
	return b.String()
}

func insertSQL(d Dialect, name string, cols []string) string {
	names := append([]string{batchColumn, rowColumn}, cols...)
	ph := make([]string, len(names))
	for i := range ph {
		ph[i] = d.placeholder(i + 1)
	}
	return "INSERT INTO " + d.quote(name) +
		" (" + d.ident.List(names...) + ") VALUES (" + strings.Join(ph, ", ") + ")"
}
