package model

// UserProgress holds a member's XP, level and currency balance for one
// guild. Rows are created lazily with zero defaults on first access.
type UserProgress struct {
	ID      int64  `db:"id" json:"id"`
	GuildID string `db:"guild_id" json:"guild_id"`
	UserID  string `db:"user_id" json:"user_id"`
	XP      int64  `db:"xp" json:"xp"`
	Level   int    `db:"level" json:"level"`
	Money   int64  `db:"money" json:"money"`
}
