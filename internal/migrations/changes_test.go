package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func changeByName(t *testing.T, group Group, name string) Change {
	t.Helper()
	for _, ch := range group.Changes {
		if ch.Name == name {
			return ch
		}
	}
	t.Fatalf("group %s has no change %s", group.Name, name)
	return Change{}
}

func TestRolesGroupCreatesRoleAndPermissionTables(t *testing.T) {
	t.Parallel()

	group, ok := GroupByName("roles_tables")
	require.True(t, ok)

	for _, table := range []string{"roles", "permissions", "role_permissions"} {
		ch := changeByName(t, group, "create_"+table)
		assert.Equal(t, CheckTable, ch.Check)
		assert.Equal(t, table, ch.Table)
		assert.Contains(t, ch.SQL, "CREATE TABLE IF NOT EXISTS "+table)
	}

	assert.Contains(t, changeByName(t, group, "create_role_permissions").SQL,
		"REFERENCES permissions(id)")
}

func TestClientPortalGroupCreatesPortalSchema(t *testing.T) {
	t.Parallel()

	group, ok := GroupByName("client_portal_tables")
	require.True(t, ok)

	portal := changeByName(t, group, "create_client_portal_users")
	assert.Equal(t, CheckTable, portal.Check)
	assert.Contains(t, portal.SQL, "password_hash VARCHAR(256) NOT NULL")
	assert.Contains(t, portal.SQL, "client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE")

	access := changeByName(t, group, "add_clients_has_portal_access")
	assert.Equal(t, CheckColumn, access.Check)
	assert.Equal(t, "clients", access.Table)

	shares := changeByName(t, group, "create_document_shares")
	assert.Contains(t, shares.SQL, "PRIMARY KEY (document_id, client_portal_user_id)")

	fk := changeByName(t, group, "add_fk_document_shares_portal_user")
	assert.Equal(t, CheckConstraint, fk.Check)
	assert.Contains(t, fk.SQL, "REFERENCES client_portal_users(id) ON DELETE CASCADE")

	for _, index := range []string{"idx_client_portal_users_email", "idx_client_portal_users_client_id"} {
		ch := changeByName(t, group, "add_"+index)
		assert.Equal(t, CheckIndex, ch.Check)
		assert.Equal(t, "client_portal_users", ch.Table)
	}
}
