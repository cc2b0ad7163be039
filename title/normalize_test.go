package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_AllOther(t *testing.T) {
	c := Normalize("Life, Physical, and Social Science Technicians, All Other")
	assert.Equal(t, "Life, Physical, and Social Science Technicians", c.Title)
	assert.True(t, c.CategoryOther)
	assert.Empty(t, c.InclusionNote)
}

func TestNormalize_Including(t *testing.T) {
	c := Normalize("Postsecondary Teachers, Including Health Specialties")
	assert.Equal(t, "Postsecondary Teachers", c.Title)
	assert.False(t, c.CategoryOther)
	assert.Equal(t, "Health Specialties", c.InclusionNote)
}

func TestNormalize_BothMarkers(t *testing.T) {
	// "All Other" strips first, then "Including" applies to the result.
	c := Normalize("Teachers, Including Substitutes, All Other")
	assert.Equal(t, "Teachers", c.Title)
	assert.True(t, c.CategoryOther)
	assert.Equal(t, "Substitutes", c.InclusionNote)
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	c := Normalize("Helpers, ALL OTHER")
	assert.Equal(t, "Helpers", c.Title)
	assert.True(t, c.CategoryOther)
}

func TestNormalize_NoMatch(t *testing.T) {
	c := Normalize("Software Developers")
	assert.Equal(t, "Software Developers", c.Title)
	assert.False(t, c.CategoryOther)
	assert.Empty(t, c.InclusionNote)
}

func TestNormalize_InteriorIncludingIgnored(t *testing.T) {
	// "Including" without a preceding comma is part of the title body.
	c := Normalize("Managers of Teams Including Remote Staff")
	assert.Equal(t, "Managers of Teams Including Remote Staff", c.Title)
	assert.Empty(t, c.InclusionNote)
}
