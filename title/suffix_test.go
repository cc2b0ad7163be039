package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSuffix_Plural(t *testing.T) {
	split, ok := FindSuffix("Software Developers")
	require.True(t, ok)
	assert.Equal(t, "Software", split.Prefix)
	assert.Equal(t, "Developers", split.Suffix)
}

func TestFindSuffix_Singular(t *testing.T) {
	split, ok := FindSuffix("Chief Executive")
	require.True(t, ok)
	assert.Equal(t, "Chief", split.Prefix)
	assert.Equal(t, "Executive", split.Suffix)
}

func TestFindSuffix_IesPlural(t *testing.T) {
	split, ok := FindSuffix("Executive Secretaries")
	require.True(t, ok)
	assert.Equal(t, "Executive", split.Prefix)
	assert.Equal(t, "Secretaries", split.Suffix)
}

func TestFindSuffix_WholeInput(t *testing.T) {
	split, ok := FindSuffix("Treasurers")
	require.True(t, ok)
	assert.Empty(t, split.Prefix)
	assert.Equal(t, "Treasurers", split.Suffix)
}

func TestFindSuffix_WordBoundary(t *testing.T) {
	// "Screenwriters" embeds the role "Writers" but not at a word
	// boundary, so it must not match.
	_, ok := FindSuffix("Screenwriters")
	assert.False(t, ok)

	// "Underwriters" is its own role, listed ahead of "Writer", and
	// matches as a whole word.
	split, ok := FindSuffix("Policy Underwriters")
	require.True(t, ok)
	assert.Equal(t, "Underwriters", split.Suffix)

	_, ok = FindSuffix("Housekeeping Cleaners")
	assert.False(t, ok, "Cleaner is not in the role vocabulary")
}

func TestFindSuffix_NoMatch(t *testing.T) {
	_, ok := FindSuffix("Rail Yard Equipment")
	assert.False(t, ok)

	_, ok = FindSuffix("")
	assert.False(t, ok)
}

func TestFindSuffix_RoundTrip(t *testing.T) {
	titles := []string{
		"Software Developers",
		"Computer Systems Analysts",
		"Executive Secretaries",
		"Tax Examiners",
	}
	for _, tt := range titles {
		split, ok := FindSuffix(tt)
		require.True(t, ok, tt)

		again, ok := FindSuffix(split.Prefix + " " + split.Suffix)
		require.True(t, ok, tt)
		assert.Equal(t, split.Suffix, again.Suffix, tt)
	}
}

func TestIsRole(t *testing.T) {
	assert.True(t, IsRole("Treasurers"))
	assert.True(t, IsRole("Controller"))
	assert.True(t, IsRole("Advisors"))
	assert.False(t, IsRole("Career Counselors"), "phrase with a prefix is not itself a role")
	assert.False(t, IsRole("Systems"))
	assert.False(t, IsRole("Computer"))
}
