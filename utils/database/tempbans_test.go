package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiredBanBoundaryIsInclusive(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().Unix()

	require.NoError(t, s.AddTempBan("g1", "u-past", now-60))
	require.NoError(t, s.AddTempBan("g1", "u-exact", now))
	require.NoError(t, s.AddTempBan("g1", "u-future", now+60))

	expired, err := s.GetExpiredBans(now)
	require.NoError(t, err)
	require.Len(t, expired, 2)

	var users []string
	for _, ban := range expired {
		users = append(users, ban.UserID)
	}
	assert.ElementsMatch(t, []string{"u-past", "u-exact"}, users)
}

func TestTempBanUpsertKeepsOneRowPerMember(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().Unix()

	require.NoError(t, s.AddTempBan("g1", "u1", now+100))
	require.NoError(t, s.AddTempBan("g1", "u1", now-100))

	var count int
	_, err := s.FetchOne(&count, "SELECT COUNT(*) FROM temp_bans WHERE guild_id = 'g1' AND user_id = 'u1'")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The second ban replaced the expiry, so the row is now due.
	expired, err := s.GetExpiredBans(now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "u1", expired[0].UserID)
}

func TestRemoveTempBan(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().Unix()

	require.NoError(t, s.AddTempBan("g1", "u1", now-1))
	expired, err := s.GetExpiredBans(now)
	require.NoError(t, err)
	require.Len(t, expired, 1)

	require.NoError(t, s.RemoveTempBan(expired[0].ID))
	expired, err = s.GetExpiredBans(now)
	require.NoError(t, err)
	assert.Empty(t, expired)
}
