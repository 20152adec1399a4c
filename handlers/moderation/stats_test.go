package moderation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatsStore struct {
	stats map[string]int
	err   error
}

func (s *stubStatsStore) GetModeratorWarningStats(guildID string, since time.Time) (map[string]int, error) {
	return s.stats, s.err
}

func TestBuildModStatsEmbedRanksByCount(t *testing.T) {
	store := &stubStatsStore{stats: map[string]int{"mod-a": 1, "mod-b": 5, "mod-c": 3}}

	embed, err := BuildModStatsEmbed(store, "g1", 7*24*time.Hour)
	require.NoError(t, err)

	assert.Contains(t, embed.Title, "7 days")
	assert.Contains(t, embed.Description, "Total warnings issued: 9")
	assert.Contains(t, embed.Description, "1. <@mod-b>: 5")
	assert.Contains(t, embed.Description, "2. <@mod-c>: 3")
	assert.Contains(t, embed.Description, "3. <@mod-a>: 1")
}

func TestBuildModStatsEmbedEmptyWindow(t *testing.T) {
	store := &stubStatsStore{stats: map[string]int{}}

	embed, err := BuildModStatsEmbed(store, "g1", time.Hour)
	require.NoError(t, err)
	assert.Contains(t, embed.Description, "No warnings were issued")
}

func TestBuildModStatsEmbedStoreError(t *testing.T) {
	store := &stubStatsStore{err: errors.New("db closed")}

	_, err := BuildModStatsEmbed(store, "g1", time.Hour)
	require.Error(t, err)
}
