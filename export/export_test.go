package export

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/bawdo/gotruth/analysis"
	"github.com/bawdo/gotruth/engine"
	"github.com/bawdo/gotruth/internal/testutil"
	"github.com/bawdo/gotruth/nodes"
	"github.com/bawdo/gotruth/parser"
	"github.com/bawdo/gotruth/scanner"
)

func parse(t *testing.T, text string) *nodes.Program {
	t.Helper()
	tokens, err := scanner.Scan(text)
	testutil.AssertNoError(t, err)
	prog, err := parser.Parse(tokens)
	testutil.AssertNoError(t, err)
	return prog
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), SQLite, ":memory:")
	testutil.AssertNoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// readBatch reads the exported rows of one batch in row order.
func readBatch(t *testing.T, db *sql.DB, name string, cols []string, batch uuid.UUID) [][]bool {
	t.Helper()
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = SQLite.quote(c)
	}
	query := "SELECT " + strings.Join(quoted, ", ") + " FROM " + SQLite.quote(name) +
		" WHERE batch_id = ? ORDER BY row_num"
	rows, err := db.Query(query, batch.String())
	testutil.AssertNoError(t, err)
	defer func() { _ = rows.Close() }()

	var out [][]bool
	for rows.Next() {
		row := make([]bool, len(cols))
		ptrs := make([]any, len(cols))
		for i := range row {
			ptrs[i] = &row[i]
		}
		testutil.AssertNoError(t, rows.Scan(ptrs...))
		out = append(out, row)
	}
	testutil.AssertNoError(t, rows.Err())
	return out
}

func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()
	db := openSQLite(t)
	prog := parse(t, "p -> q\n!p")

	res, err := Write(context.Background(), db, SQLite, prog, "truth")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Rows, 4)
	if res.BatchID == uuid.Nil {
		t.Fatal("expected a generated batch id")
	}

	table := engine.Run(prog)
	got := readBatch(t, db, "truth", Columns(table.Header), res.BatchID)
	testutil.AssertRows(t, got, table.Rows)
}

func TestWriteAppendsBatches(t *testing.T) {
	t.Parallel()
	db := openSQLite(t)
	prog := parse(t, "a AND b")
	ctx := context.Background()

	first, err := Write(ctx, db, SQLite, prog, "runs")
	testutil.AssertNoError(t, err)
	fixed := uuid.MustParse("7b0d8c8e-7f4e-4a49-9a43-0b5b3b0e8f11")
	second, err := Write(ctx, db, SQLite, prog, "runs", WithBatchID(fixed))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, second.BatchID, fixed)
	if first.BatchID == second.BatchID {
		t.Fatal("expected distinct batch ids")
	}

	var total, batches int
	testutil.AssertNoError(t, db.QueryRow(`SELECT COUNT(*), COUNT(DISTINCT batch_id) FROM "runs"`).Scan(&total, &batches))
	testutil.AssertEqual(t, total, 8)
	testutil.AssertEqual(t, batches, 2)
}

func TestWriteRowNumbers(t *testing.T) {
	t.Parallel()
	db := openSQLite(t)
	res, err := Write(context.Background(), db, SQLite, parse(t, "p OR q OR r"), "nums")
	testutil.AssertNoError(t, err)

	var minRow, maxRow int
	testutil.AssertNoError(t, db.QueryRow(`SELECT MIN(row_num), MAX(row_num) FROM "nums" WHERE batch_id = ?`,
		res.BatchID.String()).Scan(&minRow, &maxRow))
	testutil.AssertEqual(t, minRow, 1)
	testutil.AssertEqual(t, maxRow, 8)
}

func TestWriteWithoutCreateNeedsTable(t *testing.T) {
	t.Parallel()
	db := openSQLite(t)
	_, err := Write(context.Background(), db, SQLite, parse(t, "p"), "missing", WithoutCreate())
	testutil.AssertError(t, err)
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("expected error naming the table, got %v", err)
	}
}

func TestWriteEmptyName(t *testing.T) {
	t.Parallel()
	db := openSQLite(t)
	_, err := Write(context.Background(), db, SQLite, parse(t, "p"), "")
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestWriteCanceledContext(t *testing.T) {
	t.Parallel()
	db := openSQLite(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Write(ctx, db, SQLite, parse(t, "p"), "canceled")
	testutil.AssertError(t, err)
}

func TestCountMatchesAnalysis(t *testing.T) {
	t.Parallel()
	db := openSQLite(t)
	prog := parse(t, "p -> q\n(p -> q) <-> (!q -> !p)\np AND !p\nT\nq <-> r <-> p")
	ctx := context.Background()

	res, err := Write(ctx, db, SQLite, prog, "checked")
	testutil.AssertNoError(t, err)

	stmts := analysis.Classify(engine.Run(prog), prog)
	for i, tree := range prog.Trees {
		n, err := Count(ctx, db, SQLite, "checked", res.BatchID, tree)
		testutil.AssertNoError(t, err)
		if n != stmts[i].Satisfying {
			t.Errorf("statement %d (%s): database counts %d, table counts %d",
				i, stmts[i].Source, n, stmts[i].Satisfying)
		}
	}
}

func TestColumnsDeduplicates(t *testing.T) {
	t.Parallel()
	got := Columns([]string{"a", "(a ∧ b)", "(a ∧ b)", "b", "(a ∧ b)"})
	testutil.AssertSlice(t, got, []string{"a", "(a ∧ b)", "(a ∧ b) #2", "b", "(a ∧ b) #3"})
}

func TestDialectColumnsFitIdentifierLimit(t *testing.T) {
	t.Parallel()
	long := "(" + strings.Repeat("(p ∧ q) ∨ ", 8) + "r)"
	header := []string{"p", long, long}
	for _, d := range []Dialect{Postgres, MySQL} {
		cols := d.Columns(header)
		testutil.AssertEqual(t, cols[0], "p")
		for _, c := range cols[1:] {
			if len(c) > d.maxIdent {
				t.Errorf("%s: column %q over %d bytes", d.Name, c, d.maxIdent)
			}
		}
		if cols[1] == cols[2] {
			t.Errorf("%s: duplicate labels collapsed to %q", d.Name, cols[1])
		}
	}
	testutil.AssertSlice(t, SQLite.Columns(header), Columns(header))
}

func TestWriteDuplicateLabels(t *testing.T) {
	t.Parallel()
	db := openSQLite(t)
	res, err := Write(context.Background(), db, SQLite, parse(t, "p AND q\np AND q"), "dups")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Rows, 4)
}

// --- SQL generation ---

func TestCreateTableSQL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{Postgres, `CREATE TABLE IF NOT EXISTS "t" ("batch_id" VARCHAR(36) NOT NULL, "row_num" BIGINT NOT NULL, "p" BOOLEAN NOT NULL, "¬p" BOOLEAN NOT NULL)`},
		{MySQL, "CREATE TABLE IF NOT EXISTS `t` (`batch_id` VARCHAR(36) NOT NULL, `row_num` BIGINT NOT NULL, `p` BOOLEAN NOT NULL, `¬p` BOOLEAN NOT NULL)"},
	}
	for _, tt := range tests {
		t.Run(tt.dialect.Name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEqual(t, createTableSQL(tt.dialect, "t", []string{"p", "¬p"}), tt.want)
		})
	}
}

func TestInsertSQLPlaceholders(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, insertSQL(Postgres, "t", []string{"p"}),
		`INSERT INTO "t" ("batch_id", "row_num", "p") VALUES ($1, $2, $3)`)
	testutil.AssertEqual(t, insertSQL(MySQL, "t", []string{"p"}),
		"INSERT INTO `t` (`batch_id`, `row_num`, `p`) VALUES (?, ?, ?)")
}

func TestDialectFor(t *testing.T) {
	t.Parallel()
	for _, name := range Names() {
		d, err := DialectFor(name)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, d.Name, name)
	}
	_, err := DialectFor("oracle")
	if !errors.Is(err, ErrUnknownDialect) {
		t.Errorf("expected ErrUnknownDialect, got %v", err)
	}
}

func TestPredicate(t *testing.T) {
	t.Parallel()
	tree := parse(t, "p -> !q").Trees[0]
	testutil.AssertEqual(t, Postgres.Predicate(tree), `(NOT "p" OR (NOT "q"))`)
	testutil.AssertEqual(t, SQLite.Predicate(tree), `(NOT "p" OR (NOT "q"))`)
}
