package migrations

import (
	"context"
	"database/sql"
)

// Catalog answers existence questions about the current schema. The runner
// consults it before every statement so reruns are no-ops.
type Catalog interface {
	TableExists(ctx context.Context, table string) (bool, error)
	ColumnExists(ctx context.Context, table, column string) (bool, error)
	ConstraintExists(ctx context.Context, table, constraint string) (bool, error)
	IndexExists(ctx context.Context, table, index string) (bool, error)
}

// SQLCatalog implements Catalog over information_schema.
type SQLCatalog struct {
	db *sql.DB
}

func NewSQLCatalog(db *sql.DB) *SQLCatalog {
	return &SQLCatalog{db: db}
}

func (c *SQLCatalog) TableExists(ctx context.Context, table string) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = $1
	)`
	var exists bool
	err := c.db.QueryRowContext(ctx, q, table).Scan(&exists)
	return exists, err
}

func (c *SQLCatalog) ColumnExists(ctx context.Context, table, column string) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1 AND column_name = $2
	)`
	var exists bool
	err := c.db.QueryRowContext(ctx, q, table, column).Scan(&exists)
	return exists, err
}

func (c *SQLCatalog) ConstraintExists(ctx context.Context, table, constraint string) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM information_schema.table_constraints
		WHERE table_schema = 'public' AND table_name = $1 AND constraint_name = $2
	)`
	var exists bool
	err := c.db.QueryRowContext(ctx, q, table, constraint).Scan(&exists)
	return exists, err
}

func (c *SQLCatalog) IndexExists(ctx context.Context, table, index string) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM pg_indexes
		WHERE schemaname = 'public' AND tablename = $1 AND indexname = $2
	)`
	var exists bool
	err := c.db.QueryRowContext(ctx, q, table, index).Scan(&exists)
	return exists, err
}
