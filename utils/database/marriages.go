package database

import (
	"fmt"
	"time"

	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

// canonicalPair orders two member IDs so a couple is always stored and
// looked up as the same row. Discord IDs are decimal snowflakes without
// leading zeros, so shorter-then-lexicographic equals numeric order.
func canonicalPair(a, b string) (string, string) {
	if len(a) < len(b) || (len(a) == len(b) && a < b) {
		return a, b
	}
	return b, a
}

// AddMarriage records a marriage between two members.
func (s *Store) AddMarriage(guildID, userA, userB string) error {
	u1, u2 := canonicalPair(userA, userB)
	_, err := s.Execute(
		"INSERT INTO marriages (guild_id, user1_id, user2_id, marriage_timestamp) VALUES (?, ?, ?, ?)",
		guildID, u1, u2, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert marriage %s/%s: %w", u1, u2, err)
	}
	return nil
}

// AreMarried reports whether the two members are married, regardless of
// argument order.
func (s *Store) AreMarried(guildID, userA, userB string) (bool, error) {
	u1, u2 := canonicalPair(userA, userB)
	var one int
	found, err := s.FetchOne(&one,
		"SELECT 1 FROM marriages WHERE guild_id = ? AND user1_id = ? AND user2_id = ?",
		guildID, u1, u2,
	)
	if err != nil {
		return false, fmt.Errorf("failed to look up marriage %s/%s: %w", u1, u2, err)
	}
	return found, nil
}

// GetPartners returns the IDs of every member the user is married to.
func (s *Store) GetPartners(guildID, userID string) ([]string, error) {
	var partners []string
	err := s.FetchAll(&partners,
		`SELECT user2_id AS partner_id FROM marriages WHERE guild_id = ? AND user1_id = ?
		 UNION
		 SELECT user1_id AS partner_id FROM marriages WHERE guild_id = ? AND user2_id = ?`,
		guildID, userID, guildID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get partners for user %s: %w", userID, err)
	}
	return partners, nil
}

// RemoveMarriage divorces one couple.
func (s *Store) RemoveMarriage(guildID, userA, userB string) error {
	u1, u2 := canonicalPair(userA, userB)
	_, err := s.Execute(
		"DELETE FROM marriages WHERE guild_id = ? AND user1_id = ? AND user2_id = ?",
		guildID, u1, u2,
	)
	if err != nil {
		return fmt.Errorf("failed to remove marriage %s/%s: %w", u1, u2, err)
	}
	return nil
}

// RemoveAllMarriages divorces the user from every partner at once.
func (s *Store) RemoveAllMarriages(guildID, userID string) error {
	_, err := s.Execute(
		"DELETE FROM marriages WHERE guild_id = ? AND (user1_id = ? OR user2_id = ?)",
		guildID, userID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove marriages for user %s: %w", userID, err)
	}
	return nil
}

// GetMarriages lists every marriage in a guild, newest first.
func (s *Store) GetMarriages(guildID string) ([]model.Marriage, error) {
	var marriages []model.Marriage
	err := s.FetchAll(&marriages,
		"SELECT id, guild_id, user1_id, user2_id, marriage_timestamp FROM marriages WHERE guild_id = ? ORDER BY id DESC",
		guildID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list marriages for guild %s: %w", guildID, err)
	}
	return marriages, nil
}
