package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarningsAccumulatePerGuild(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddWarning("g1", "u1", "mod1", "spam")
	require.NoError(t, err)
	_, err = s.AddWarning("g1", "u1", "mod2", "spam again")
	require.NoError(t, err)
	_, err = s.AddWarning("g2", "u1", "mod1", "other guild")
	require.NoError(t, err)

	count, err := s.CountWarnings("g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	warnings, err := s.GetWarnings("g1", "u1")
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, "spam", warnings[0].Reason)
	assert.Equal(t, "mod2", warnings[1].ModeratorID)
}

func TestClearWarningsReportsRemovedRows(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddWarning("g1", "u1", "mod1", "one")
	require.NoError(t, err)
	_, err = s.AddWarning("g1", "u1", "mod1", "two")
	require.NoError(t, err)

	removed, err := s.ClearWarnings("g1", "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	count, err := s.CountWarnings("g1", "u1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestModeratorWarningStatsRespectWindow(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddWarning("g1", "u1", "mod1", "recent")
	require.NoError(t, err)
	_, err = s.AddWarning("g1", "u2", "mod1", "recent too")
	require.NoError(t, err)
	_, err = s.AddWarning("g1", "u3", "mod2", "recent as well")
	require.NoError(t, err)

	// Backdate one warning beyond the query window.
	old := time.Now().Add(-48 * time.Hour).UTC().Format(time.RFC3339)
	_, err = s.Execute(
		"INSERT INTO warnings (guild_id, user_id, moderator_id, reason, timestamp) VALUES (?, ?, ?, ?, ?)",
		"g1", "u4", "mod2", "stale", old,
	)
	require.NoError(t, err)

	stats, err := s.GetModeratorWarningStats("g1", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"mod1": 2, "mod2": 1}, stats)
}
