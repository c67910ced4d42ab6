package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	t.Parallel()

	for _, role := range ValidRoles {
		assert.True(t, IsValidRole(role), role)
	}
	assert.False(t, IsValidRole("superuser"))
	assert.False(t, IsValidRole(""))
}

func TestAdminOnlyPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, CanManageUsers(RoleAdmin))
	assert.True(t, CanTriggerSweeps(RoleAdmin))

	for _, role := range []string{RoleLegalProfessional, RoleParalegal, ""} {
		assert.False(t, CanManageUsers(role), role)
		assert.False(t, CanTriggerSweeps(role), role)
	}
}
