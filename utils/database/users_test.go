package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProgressLazyCreate(t *testing.T) {
	s := newTestStore(t)

	progress, err := s.GetUserProgress("g1", "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, progress.XP)
	assert.Equal(t, 0, progress.Level)
	assert.EqualValues(t, 0, progress.Money)

	// A second read returns the same row, not a new one.
	again, err := s.GetUserProgress("g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, progress.ID, again.ID)
}

func TestUpdateXPAndMoney(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUserProgress("g1", "u1")
	require.NoError(t, err)

	require.NoError(t, s.UpdateUserXP("g1", "u1", 450, 1))
	require.NoError(t, s.AddMoney("g1", "u1", 120))
	require.NoError(t, s.AddMoney("g1", "u1", -20))

	progress, err := s.GetUserProgress("g1", "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 450, progress.XP)
	assert.Equal(t, 1, progress.Level)
	assert.EqualValues(t, 100, progress.Money)
}

func TestLeaderboardOrdering(t *testing.T) {
	s := newTestStore(t)

	seed := []struct {
		user  string
		xp    int64
		level int
		money int64
	}{
		{"u1", 100, 0, 500},
		{"u2", 900, 2, 50},
		{"u3", 700, 2, 200},
	}
	for _, row := range seed {
		_, err := s.GetUserProgress("g1", row.user)
		require.NoError(t, err)
		require.NoError(t, s.UpdateUserXP("g1", row.user, row.xp, row.level))
		require.NoError(t, s.AddMoney("g1", row.user, row.money))
	}

	byXP, err := s.GetXPLeaderboard("g1", 10)
	require.NoError(t, err)
	require.Len(t, byXP, 3)
	assert.Equal(t, "u2", byXP[0].UserID)
	assert.Equal(t, "u3", byXP[1].UserID)
	assert.Equal(t, "u1", byXP[2].UserID)

	byMoney, err := s.GetMoneyLeaderboard("g1", 2)
	require.NoError(t, err)
	require.Len(t, byMoney, 2)
	assert.Equal(t, "u1", byMoney[0].UserID)
	assert.Equal(t, "u3", byMoney[1].UserID)
}
