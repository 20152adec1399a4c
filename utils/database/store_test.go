package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	s := newTestStore(t)

	var tables []string
	err := s.FetchAll(&tables, "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	require.NoError(t, err)
	assert.Contains(t, tables, "warnings")
	assert.Contains(t, tables, "guild_settings")
	assert.Contains(t, tables, "temp_bans")
	assert.Contains(t, tables, "marriages")
	assert.Contains(t, tables, "prison")
	assert.Contains(t, tables, "user_data")
}

func TestClosedStoreReturnsSentinel(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Execute("INSERT INTO warnings (guild_id, user_id, moderator_id, reason, timestamp) VALUES ('g', 'u', 'm', '', '')")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	var count int
	_, err = s.FetchOne(&count, "SELECT COUNT(*) FROM warnings")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	var ids []int64
	err = s.FetchAll(&ids, "SELECT id FROM warnings")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestWarningCountTracksInsertsAndClears(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.AddWarning("g1", "u1", "mod", "spam")
		require.NoError(t, err)
	}
	_, err := s.AddWarning("g1", "u2", "mod", "other user")
	require.NoError(t, err)
	_, err = s.AddWarning("g2", "u1", "mod", "other guild")
	require.NoError(t, err)

	count, err := s.CountWarnings("g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	warnings, err := s.GetWarnings("g1", "u1")
	require.NoError(t, err)
	require.Len(t, warnings, 3)
	for i := 1; i < len(warnings); i++ {
		assert.GreaterOrEqual(t, warnings[i].Timestamp, warnings[i-1].Timestamp)
	}

	removed, err := s.ClearWarnings("g1", "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)

	count, err = s.CountWarnings("g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Other scopes are untouched.
	count, err = s.CountWarnings("g1", "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
