package occupation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoles_NoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, role := range Roles {
		assert.False(t, seen[role], "duplicate role entry: %s", role)
		seen[role] = true
	}
}

func TestRoles_SingularForm(t *testing.T) {
	for _, role := range Roles {
		assert.False(t, strings.HasSuffix(role, "s"), "role %s should be singular", role)
		assert.NotEmpty(t, role)
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "Managers", Plural("Manager"))
	assert.Equal(t, "Secretaries", Plural("Secretary"))
	assert.Equal(t, "Actuaries", Plural("Actuary"))
	assert.Equal(t, "Counselors", Plural("Counselor"))
}

func TestIsAcronym(t *testing.T) {
	assert.True(t, IsAcronym("HVAC"))
	assert.True(t, IsAcronym("CEO"))
	assert.False(t, IsAcronym("Hvac"), "membership is exact uppercase")
	assert.False(t, IsAcronym("WIDGET"))
}
