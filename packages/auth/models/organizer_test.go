package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles_ValueAndScan(t *testing.T) {
	v, err := Roles{}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["organizer"]`, string(v.([]byte)))

	v, err = Roles{RoleOrganizer, RoleAdmin}.Value()
	require.NoError(t, err)

	var scanned Roles
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, Roles{RoleOrganizer, RoleAdmin}, scanned)

	require.NoError(t, scanned.Scan(`["admin"]`))
	assert.Equal(t, Roles{RoleAdmin}, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Equal(t, GetDefaultRoles(), scanned)

	assert.Error(t, scanned.Scan(42))
}

func TestOrganizer_Roles(t *testing.T) {
	o := Organizer{Roles: GetDefaultRoles()}
	assert.True(t, o.HasRole(RoleOrganizer))
	assert.False(t, o.HasRole(RoleAdmin))

	o.AddRole(RoleAdmin)
	o.AddRole(RoleAdmin)
	assert.Equal(t, Roles{RoleOrganizer, RoleAdmin}, o.Roles)
}
