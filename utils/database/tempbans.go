package database

import (
	"fmt"

	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

// AddTempBan schedules an unban. A member can only carry one pending unban
// per guild; banning again replaces the previous expiry.
func (s *Store) AddTempBan(guildID, userID string, unbanTimestamp int64) error {
	_, err := s.Execute(
		`INSERT INTO temp_bans (guild_id, user_id, unban_timestamp) VALUES (?, ?, ?)
		 ON CONFLICT(guild_id, user_id) DO UPDATE SET unban_timestamp = excluded.unban_timestamp`,
		guildID, userID, unbanTimestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert temp ban for user %s: %w", userID, err)
	}
	return nil
}

// GetExpiredBans returns every temp ban whose expiry is at or before now.
// The comparison is inclusive: a ban expiring exactly now is due.
func (s *Store) GetExpiredBans(now int64) ([]model.TempBan, error) {
	var bans []model.TempBan
	err := s.FetchAll(&bans,
		"SELECT id, guild_id, user_id, unban_timestamp FROM temp_bans WHERE unban_timestamp <= ? ORDER BY id",
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expired temp bans: %w", err)
	}
	return bans, nil
}

// ClearTempBan drops a member's pending unban, if any. Used when a ban
// is lifted by hand so the sweeper does not chase a ghost.
func (s *Store) ClearTempBan(guildID, userID string) error {
	if _, err := s.Execute("DELETE FROM temp_bans WHERE guild_id = ? AND user_id = ?", guildID, userID); err != nil {
		return fmt.Errorf("failed to clear temp ban for user %s: %w", userID, err)
	}
	return nil
}

// RemoveTempBan deletes a temp ban row by its primary key.
func (s *Store) RemoveTempBan(id int64) error {
	if _, err := s.Execute("DELETE FROM temp_bans WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to remove temp ban %d: %w", id, err)
	}
	return nil
}
