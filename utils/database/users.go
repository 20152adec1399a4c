package database

import (
	"fmt"

	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

const userSelect = "SELECT id, guild_id, user_id, xp, level, money FROM user_data WHERE guild_id = ? AND user_id = ?"

// GetUserProgress returns the member's XP/level/money row, creating it with
// zero defaults on first access.
func (s *Store) GetUserProgress(guildID, userID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	found, err := s.FetchOne(&progress, userSelect, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user data for %s: %w", userID, err)
	}
	if found {
		return &progress, nil
	}

	if _, err := s.Execute("INSERT OR IGNORE INTO user_data (guild_id, user_id) VALUES (?, ?)", guildID, userID); err != nil {
		return nil, fmt.Errorf("failed to create user data for %s: %w", userID, err)
	}
	if _, err := s.FetchOne(&progress, userSelect, guildID, userID); err != nil {
		return nil, fmt.Errorf("failed to re-read user data for %s: %w", userID, err)
	}
	return &progress, nil
}

// UpdateUserXP stores a new XP total and level for the member.
func (s *Store) UpdateUserXP(guildID, userID string, xp int64, level int) error {
	_, err := s.Execute(
		"UPDATE user_data SET xp = ?, level = ? WHERE guild_id = ? AND user_id = ?",
		xp, level, guildID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update xp for user %s: %w", userID, err)
	}
	return nil
}

// AddMoney adjusts the member's balance by delta, which may be negative.
// The row must exist; callers go through GetUserProgress first.
func (s *Store) AddMoney(guildID, userID string, delta int64) error {
	_, err := s.Execute(
		"UPDATE user_data SET money = money + ? WHERE guild_id = ? AND user_id = ?",
		delta, guildID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust balance for user %s: %w", userID, err)
	}
	return nil
}

// GetXPLeaderboard returns the top members ordered by level, then XP.
func (s *Store) GetXPLeaderboard(guildID string, limit int) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := s.FetchAll(&rows,
		"SELECT id, guild_id, user_id, xp, level, money FROM user_data WHERE guild_id = ? ORDER BY level DESC, xp DESC LIMIT ?",
		guildID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get xp leaderboard for guild %s: %w", guildID, err)
	}
	return rows, nil
}

// GetMoneyLeaderboard returns the top members ordered by balance.
func (s *Store) GetMoneyLeaderboard(guildID string, limit int) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := s.FetchAll(&rows,
		"SELECT id, guild_id, user_id, xp, level, money FROM user_data WHERE guild_id = ? ORDER BY money DESC LIMIT ?",
		guildID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get money leaderboard for guild %s: %w", guildID, err)
	}
	return rows, nil
}
