package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPair(t *testing.T) {
	// Same length: lexicographic equals numeric.
	a, b := canonicalPair("222", "111")
	assert.Equal(t, "111", a)
	assert.Equal(t, "222", b)

	// Different lengths: the shorter decimal string is the smaller number.
	a, b = canonicalPair("1000", "999")
	assert.Equal(t, "999", a)
	assert.Equal(t, "1000", b)
}

func TestMarriageLookupIsOrderIndependent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddMarriage("g1", "200", "100"))

	married, err := s.AreMarried("g1", "100", "200")
	require.NoError(t, err)
	assert.True(t, married)

	married, err = s.AreMarried("g1", "200", "100")
	require.NoError(t, err)
	assert.True(t, married)

	// Different guild, same pair.
	married, err = s.AreMarried("g2", "100", "200")
	require.NoError(t, err)
	assert.False(t, married)
}

func TestMarriagePairIsUnique(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddMarriage("g1", "100", "200"))
	assert.Error(t, s.AddMarriage("g1", "200", "100"))
}

func TestGetPartnersAndDivorce(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddMarriage("g1", "100", "200"))
	require.NoError(t, s.AddMarriage("g1", "300", "100"))
	require.NoError(t, s.AddMarriage("g1", "200", "300"))

	partners, err := s.GetPartners("g1", "100")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"200", "300"}, partners)

	require.NoError(t, s.RemoveMarriage("g1", "200", "100"))
	partners, err = s.GetPartners("g1", "100")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"300"}, partners)

	require.NoError(t, s.RemoveAllMarriages("g1", "300"))
	partners, err = s.GetPartners("g1", "300")
	require.NoError(t, err)
	assert.Empty(t, partners)

	marriages, err := s.GetMarriages("g1")
	require.NoError(t, err)
	assert.Empty(t, marriages)
}
