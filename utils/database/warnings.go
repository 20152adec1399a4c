package database

import (
	"fmt"
	"time"

	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

// AddWarning records a warning and returns the new row ID.
func (s *Store) AddWarning(guildID, userID, moderatorID, reason string) (int64, error) {
	res, err := s.Execute(
		"INSERT INTO warnings (guild_id, user_id, moderator_id, reason, timestamp) VALUES (?, ?, ?, ?, ?)",
		guildID, userID, moderatorID, reason, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert warning for user %s: %w", userID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, nil
}

// GetWarnings returns every warning on record for the user, oldest first.
func (s *Store) GetWarnings(guildID, userID string) ([]model.Warning, error) {
	var warnings []model.Warning
	err := s.FetchAll(&warnings,
		"SELECT id, guild_id, user_id, moderator_id, reason, timestamp FROM warnings WHERE guild_id = ? AND user_id = ? ORDER BY id",
		guildID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get warnings for user %s: %w", userID, err)
	}
	return warnings, nil
}

// CountWarnings returns the number of non-cleared warnings for the user.
func (s *Store) CountWarnings(guildID, userID string) (int, error) {
	var count int
	_, err := s.FetchOne(&count,
		"SELECT COUNT(*) FROM warnings WHERE guild_id = ? AND user_id = ?",
		guildID, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to count warnings for user %s: %w", userID, err)
	}
	return count, nil
}

// GetModeratorWarningStats returns, per moderator, the number of warnings
// they issued in the guild since the given time.
func (s *Store) GetModeratorWarningStats(guildID string, since time.Time) (map[string]int, error) {
	var rows []struct {
		ModeratorID string `db:"moderator_id"`
		Count       int    `db:"count"`
	}
	err := s.FetchAll(&rows,
		"SELECT moderator_id, COUNT(*) AS count FROM warnings WHERE guild_id = ? AND timestamp >= ? GROUP BY moderator_id",
		guildID, since.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get moderator warning stats for guild %s: %w", guildID, err)
	}
	stats := make(map[string]int, len(rows))
	for _, row := range rows {
		stats[row.ModeratorID] = row.Count
	}
	return stats, nil
}

// ClearWarnings deletes all warnings for the user and reports how many rows
// were removed.
func (s *Store) ClearWarnings(guildID, userID string) (int64, error) {
	res, err := s.Execute(
		"DELETE FROM warnings WHERE guild_id = ? AND user_id = ?",
		guildID, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to clear warnings for user %s: %w", userID, err)
	}
	return res.RowsAffected()
}
