package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupUnknownRoleUsesDefault(t *testing.T) {
	got := Lookup("Quantum Astrologer", nil, 3)
	want := catalog[DefaultRole][:3]

	require.Len(t, got, 3)
	assert.Equal(t, want, got)
}

func TestLookupTruncatesToCount(t *testing.T) {
	got := Lookup("Backend Developer", nil, 2)
	require.Len(t, got, 2)
	assert.Equal(t, catalog["Backend Developer"][0], got[0])
	assert.Equal(t, catalog["Backend Developer"][1], got[1])
}

func TestLookupReturnsAllWhenCountExceedsBank(t *testing.T) {
	got := Lookup("Data Scientist", nil, 50)
	assert.Len(t, got, len(catalog["Data Scientist"]))
}

func TestLookupFiltersByTechnology(t *testing.T) {
	got := Lookup("Frontend Developer", []string{"react"}, 10)

	require.NotEmpty(t, got)
	for _, entry := range got {
		assert.True(t, matchesAny(entry.Technologies, []string{"react"}),
			"entry %q should carry a react tag", entry.Text)
	}
}

func TestLookupTechnologyMatchIsSubstring(t *testing.T) {
	// "postgres" is a substring of the "PostgreSQL" tag; case does not matter.
	got := Lookup("Backend Developer", []string{"postgres"}, 10)

	require.NotEmpty(t, got)
	assert.Equal(t, "What is database indexing and why is it important?", got[0].Text)
}

func TestLookupFallsBackWhenFilterMatchesNothing(t *testing.T) {
	got := Lookup("Backend Developer", []string{"zzznomatch"}, 3)

	// Over-filtering must never produce an empty result; the unfiltered
	// role list is used instead.
	require.Len(t, got, 3)
	assert.Equal(t, catalog["Backend Developer"][:3], got)
}

func TestLookupZeroCount(t *testing.T) {
	assert.Empty(t, Lookup("Backend Developer", nil, 0))
}

func TestLookupIsDeterministic(t *testing.T) {
	first := Lookup("Full Stack Developer", []string{"JavaScript"}, 4)
	second := Lookup("Full Stack Developer", []string{"JavaScript"}, 4)
	assert.Equal(t, first, second)
}
