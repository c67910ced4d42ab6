// Package migrations applies additive schema changes idempotently. Every
// statement is gated by a catalog existence check, so the runner can be
// executed against any schema state without harm.
package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"legalassist_backend/internal/logger"
)

// Executor applies DDL statements and maintains the applied-groups ledger.
type Executor interface {
	// Apply runs one statement in its own transaction.
	Apply(ctx context.Context, stmt string) error
	// EnsureLedger creates the schema_migrations table when missing.
	EnsureLedger(ctx context.Context) error
	// RecordApplied upserts a ledger row for the group.
	RecordApplied(ctx context.Context, group string) error
}

// Runner walks migration groups change by change.
type Runner struct {
	catalog Catalog
	exec    Executor
}

func NewRunner(catalog Catalog, exec Executor) *Runner {
	return &Runner{catalog: catalog, exec: exec}
}

// NewSQLRunner wires a runner over a plain database handle.
func NewSQLRunner(db *sql.DB) *Runner {
	return NewRunner(NewSQLCatalog(db), NewSQLExecutor(db))
}

// RunAll applies every group in order. The first failure stops the run;
// statements committed before it stay applied.
func (r *Runner) RunAll(ctx context.Context) error {
	return r.run(ctx, Groups())
}

// RunGroup applies a single named group.
func (r *Runner) RunGroup(ctx context.Context, name string) error {
	group, ok := GroupByName(name)
	if !ok {
		return fmt.Errorf("unknown migration group %q", name)
	}
	return r.run(ctx, []Group{group})
}

func (r *Runner) run(ctx context.Context, groups []Group) error {
	if err := r.exec.EnsureLedger(ctx); err != nil {
		return fmt.Errorf("ensure migration ledger: %w", err)
	}

	for _, group := range groups {
		applied, skipped := 0, 0

		for _, change := range group.Changes {
			exists, err := r.changeExists(ctx, change)
			if err != nil {
				return fmt.Errorf("%s/%s: catalog check: %w", group.Name, change.Name, err)
			}
			if exists {
				logger.CtxInfo(ctx, "migration already applied, skipping",
					"group", group.Name, "change", change.Name)
				skipped++
				continue
			}

			if err := r.exec.Apply(ctx, change.SQL); err != nil {
				logger.CtxError(ctx, "migration statement failed",
					"group", group.Name, "change", change.Name, "sql", change.SQL, "error", err)
				return fmt.Errorf("%s/%s: %w", group.Name, change.Name, err)
			}
			logger.CtxInfo(ctx, "migration applied", "group", group.Name, "change", change.Name)
			applied++
		}

		if err := r.exec.RecordApplied(ctx, group.Name); err != nil {
			return fmt.Errorf("%s: record ledger: %w", group.Name, err)
		}
		logger.CtxInfo(ctx, "migration group done",
			"group", group.Name, "applied", applied, "skipped", skipped)
	}

	return nil
}

func (r *Runner) changeExists(ctx context.Context, change Change) (bool, error) {
	switch change.Check {
	case CheckTable:
		return r.catalog.TableExists(ctx, change.Table)
	case CheckColumn:
		return r.catalog.ColumnExists(ctx, change.Table, change.Column)
	case CheckConstraint:
		return r.catalog.ConstraintExists(ctx, change.Table, change.Constraint)
	case CheckIndex:
		return r.catalog.IndexExists(ctx, change.Table, change.Index)
	default:
		return false, fmt.Errorf("unknown check kind %d", change.Check)
	}
}

// SQLExecutor runs each statement in its own transaction against *sql.DB.
type SQLExecutor struct {
	db *sql.DB
}

func NewSQLExecutor(db *sql.DB) *SQLExecutor {
	return &SQLExecutor{db: db}
}

func (e *SQLExecutor) Apply(ctx context.Context, stmt string) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (e *SQLExecutor) EnsureLedger(ctx context.Context) error {
	const stmt = `CREATE TABLE IF NOT EXISTS schema_migrations (
		name VARCHAR(100) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`
	_, err := e.db.ExecContext(ctx, stmt)
	return err
}

func (e *SQLExecutor) RecordApplied(ctx context.Context, group string) error {
	const stmt = `INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	_, err := e.db.ExecContext(ctx, stmt, group)
	return err
}
