package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdminRole(t *testing.T) {
	assert.True(t, IsAdminRole(RoleBusinessAdmin))
	assert.True(t, IsAdminRole(RolePlatformAdmin))
	assert.True(t, IsAdminRole(RoleSuperAdmin))

	assert.False(t, IsAdminRole(RoleCustomer))
	assert.False(t, IsAdminRole(""))
	assert.False(t, IsAdminRole("admin")) // pas un rôle connu
}

func TestCanManageBusinesses(t *testing.T) {
	assert.True(t, CanManageBusinesses(RolePlatformAdmin))
	assert.True(t, CanManageBusinesses(RoleSuperAdmin))

	// business_admin est admin mais ne gère pas les businesses
	assert.False(t, CanManageBusinesses(RoleBusinessAdmin))
	assert.False(t, CanManageBusinesses(RoleCustomer))
	assert.False(t, CanManageBusinesses(""))
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{RoleCustomer, RoleBusinessAdmin, RolePlatformAdmin, RoleSuperAdmin} {
		assert.True(t, IsValidRole(role), role)
	}
	assert.False(t, IsValidRole("root"))
	assert.False(t, IsValidRole(""))
}

func TestValidOrderStatuses(t *testing.T) {
	for _, status := range []string{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusCompleted,
		OrderStatusCancelled,
	} {
		assert.True(t, ValidOrderStatuses[status], status)
	}
	assert.False(t, ValidOrderStatuses["shipped"])
	assert.False(t, ValidOrderStatuses[""])
}
