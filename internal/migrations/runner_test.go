package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog tracks what the fake executor has "created" so reruns see it.
type fakeCatalog struct {
	tables      map[string]bool
	columns     map[string]bool
	constraints map[string]bool
	indexes     map[string]bool
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		tables:      map[string]bool{},
		columns:     map[string]bool{},
		constraints: map[string]bool{},
		indexes:     map[string]bool{},
	}
}

func (c *fakeCatalog) TableExists(_ context.Context, table string) (bool, error) {
	return c.tables[table], nil
}

func (c *fakeCatalog) ColumnExists(_ context.Context, table, column string) (bool, error) {
	return c.columns[table+"."+column], nil
}

func (c *fakeCatalog) ConstraintExists(_ context.Context, table, constraint string) (bool, error) {
	return c.constraints[table+"."+constraint], nil
}

func (c *fakeCatalog) IndexExists(_ context.Context, table, index string) (bool, error) {
	return c.indexes[table+"."+index], nil
}

// markApplied records a change in the catalog the way applying it would.
func (c *fakeCatalog) markApplied(change Change) {
	switch change.Check {
	case CheckTable:
		c.tables[change.Table] = true
	case CheckColumn:
		c.columns[change.Table+"."+change.Column] = true
	case CheckConstraint:
		c.constraints[change.Table+"."+change.Constraint] = true
	case CheckIndex:
		c.indexes[change.Table+"."+change.Index] = true
	}
}

type fakeExecutor struct {
	catalog       *fakeCatalog
	applied       []string
	ledger        []string
	ledgerEnsured bool
	failOn        string
}

func (e *fakeExecutor) Apply(_ context.Context, stmt string) error {
	if e.failOn != "" && strings.Contains(stmt, e.failOn) {
		return errors.New("simulated DDL failure")
	}
	e.applied = append(e.applied, stmt)
	if e.catalog != nil {
		for _, g := range Groups() {
			for _, ch := range g.Changes {
				if ch.SQL == stmt {
					e.catalog.markApplied(ch)
				}
			}
		}
	}
	return nil
}

func (e *fakeExecutor) EnsureLedger(_ context.Context) error {
	e.ledgerEnsured = true
	return nil
}

func (e *fakeExecutor) RecordApplied(_ context.Context, group string) error {
	e.ledger = append(e.ledger, group)
	return nil
}

func totalChanges() int {
	n := 0
	for _, g := range Groups() {
		n += len(g.Changes)
	}
	return n
}

func TestRunnerAppliesEverythingOnFreshSchema(t *testing.T) {
	t.Parallel()

	catalog := newFakeCatalog()
	exec := &fakeExecutor{catalog: catalog}
	runner := NewRunner(catalog, exec)

	require.NoError(t, runner.RunAll(context.Background()))

	assert.True(t, exec.ledgerEnsured)
	assert.Len(t, exec.applied, totalChanges())

	groupNames := make([]string, 0, len(Groups()))
	for _, g := range Groups() {
		groupNames = append(groupNames, g.Name)
	}
	assert.Equal(t, groupNames, exec.ledger)
}

func TestRunnerSecondRunIsNoOp(t *testing.T) {
	t.Parallel()

	catalog := newFakeCatalog()
	exec := &fakeExecutor{catalog: catalog}
	runner := NewRunner(catalog, exec)

	require.NoError(t, runner.RunAll(context.Background()))
	firstCount := len(exec.applied)

	require.NoError(t, runner.RunAll(context.Background()))
	assert.Len(t, exec.applied, firstCount, "rerun must not execute any DDL")
}

func TestRunnerStopsAtFirstFailureAndKeepsPriorWork(t *testing.T) {
	t.Parallel()

	catalog := newFakeCatalog()
	exec := &fakeExecutor{catalog: catalog, failOn: "closing_date"}
	runner := NewRunner(catalog, exec)

	err := runner.RunAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "case_columns")

	// event and calendar groups ran before the failing case group
	assert.Contains(t, exec.ledger, "event_columns")
	assert.Contains(t, exec.ledger, "calendar_columns")
	assert.NotContains(t, exec.ledger, "case_columns")
	assert.NotContains(t, exec.ledger, "rulings_tables")

	// the outcome column of the failing group committed before the failure
	exists, _ := catalog.ColumnExists(context.Background(), "cases", "outcome")
	assert.True(t, exists)
}

func TestRunnerRunGroupUnknownName(t *testing.T) {
	t.Parallel()

	runner := NewRunner(newFakeCatalog(), &fakeExecutor{})
	err := runner.RunGroup(context.Background(), "no_such_group")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration group")
}

func TestRunnerRunSingleGroup(t *testing.T) {
	t.Parallel()

	catalog := newFakeCatalog()
	exec := &fakeExecutor{catalog: catalog}
	runner := NewRunner(catalog, exec)

	require.NoError(t, runner.RunGroup(context.Background(), "case_columns"))

	group, ok := GroupByName("case_columns")
	require.True(t, ok)
	assert.Len(t, exec.applied, len(group.Changes))
	assert.Equal(t, []string{"case_columns"}, exec.ledger)
}
