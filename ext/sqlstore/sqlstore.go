// Package sqlstore adds a request-scoped store over a shared *sql.DB to a
// rhino context, grounded on the original rhino.ext.sqlalchemy.SessionProperty.
// Nothing is closed at teardown: the *sql.DB pool stays open and belongs
// to the caller. Full ORM session
// semantics (identity maps, unit-of-work) are out of scope, matching
// spec.md's "no persistent storage" non-goal for the core; this package
// is an opt-in collaborator, not part of the dispatch pipeline.
package sqlstore

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"

	"github.com/arkd0ng/rhino"
)

// PropertyName is the context property name handlers use to fetch the
// request-scoped store: rhino.Prop[*sqlstore.Store](ctx, sqlstore.PropertyName).
const PropertyName = "db"

// Store wraps *sql.DB with the two operations the source's SessionProperty
// example performs against an ORM session: a row get/put against a single
// key/value table, rhino_kv.
type Store struct {
	db *sql.DB
}

// Open opens a MySQL connection pool, grounded on the driver wired in
// go.mod (github.com/go-sql-driver/mysql).
func Open(dsn string) (*sql.DB, error) {
	return sql.Open("mysql", dsn)
}

// Install registers the "db" context property on m as a cached property.
// Each request gets its own *Store wrapping the shared *sql.DB connection
// pool. Nothing is closed at teardown; the pool stays open and belongs to
// the caller.
func Install(m *rhino.Mapper, db *sql.DB) error {
	return m.AddContextProperty(PropertyName, func(ctx *rhino.Context) (any, error) {
		return &Store{db: db}, nil
	}, true)
}

// Get reads one value for key from the rhino_kv table, ("", false) if
// absent.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT v FROM rhino_kv WHERE k = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put upserts one value for key into the rhino_kv table.
func (s *Store) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO rhino_kv (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)",
		key, value)
	return err
}
