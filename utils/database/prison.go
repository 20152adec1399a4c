package database

import (
	"fmt"
	"time"

	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

// AddPrisoner records a quarantine, overwriting any existing record for the
// member. savedRoles is nil unless the member held administrator
// permissions before imprisonment.
func (s *Store) AddPrisoner(guildID, userID, prisonChannelID, moderatorID, reason string, savedRoles *string) error {
	_, err := s.Execute(
		`INSERT INTO prison (guild_id, user_id, prison_channel_id, moderator_id, reason, timestamp, saved_roles)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(guild_id, user_id) DO UPDATE SET
		 	prison_channel_id = excluded.prison_channel_id,
		 	moderator_id = excluded.moderator_id,
		 	reason = excluded.reason,
		 	timestamp = excluded.timestamp,
		 	saved_roles = excluded.saved_roles`,
		guildID, userID, prisonChannelID, moderatorID, reason,
		time.Now().UTC().Format(time.RFC3339), savedRoles,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert prison record for user %s: %w", userID, err)
	}
	return nil
}

// GetPrisoner returns the member's prison record, or nil when the member is
// not imprisoned.
func (s *Store) GetPrisoner(guildID, userID string) (*model.PrisonRecord, error) {
	var record model.PrisonRecord
	found, err := s.FetchOne(&record,
		"SELECT guild_id, user_id, prison_channel_id, moderator_id, reason, timestamp, saved_roles FROM prison WHERE guild_id = ? AND user_id = ?",
		guildID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get prison record for user %s: %w", userID, err)
	}
	if !found {
		return nil, nil
	}
	return &record, nil
}

// RemovePrisoner deletes the member's prison record.
func (s *Store) RemovePrisoner(guildID, userID string) error {
	if _, err := s.Execute("DELETE FROM prison WHERE guild_id = ? AND user_id = ?", guildID, userID); err != nil {
		return fmt.Errorf("failed to remove prison record for user %s: %w", userID, err)
	}
	return nil
}

// ListPrisoners returns every active quarantine in a guild.
func (s *Store) ListPrisoners(guildID string) ([]model.PrisonRecord, error) {
	var records []model.PrisonRecord
	err := s.FetchAll(&records,
		"SELECT guild_id, user_id, prison_channel_id, moderator_id, reason, timestamp, saved_roles FROM prison WHERE guild_id = ? ORDER BY timestamp",
		guildID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list prisoners for guild %s: %w", guildID, err)
	}
	return records, nil
}
