package commands

import (
	"context"
	"database/sql"
	"net/url"
	"strings"

	"github.com/bawdo/gotruth/export"
)

// tableQueries lists user tables per engine, for completion and "tables".
var tableQueries = map[string]string{
	"postgres": "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name",
	"mysql":    "SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() ORDER BY table_name",
	"sqlite":   "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name",
}

type dbConn struct {
	db      *sql.DB
	dsn     string
	dialect export.Dialect
	tables  []string
}

func connect(ctx context.Context, d export.Dialect, dsn string) (*dbConn, error) {
	db, err := export.Open(ctx, d, dsn)
	if err != nil {
		return nil, err
	}
	conn := &dbConn{db: db, dsn: dsn, dialect: d}
	if err := conn.loadTables(ctx); err != nil {
		log.WithError(err).Debug("Schema introspection failed.")
	}
	return conn, nil
}

func (c *dbConn) close() error {
	return c.db.Close()
}

func (c *dbConn) loadTables(ctx context.Context) error {
	rows, err := c.db.QueryContext(ctx, tableQueries[c.dialect.Name])
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	c.tables = tables
	return nil
}

// sanitizeDSN masks the password of a URL or MySQL style DSN.
func sanitizeDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err == nil && u.Scheme != "" && u.User != nil {
		if _, hasPass := u.User.Password(); hasPass {
			masked := u.Scheme + "://" + u.User.Username() + ":****@" + u.Host + u.Path
			if u.RawQuery != "" {
				masked += "?" + u.RawQuery
			}
			return masked
		}
		return dsn
	}

	// user:pass@tcp(host)/db
	if at := strings.Index(dsn, "@"); at > 0 {
		userPass := dsn[:at]
		if colon := strings.Index(userPass, ":"); colon >= 0 {
			return userPass[:colon+1] + "****" + dsn[at:]
		}
	}
	return dsn
}
