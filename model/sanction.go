package model

// Warning is a single moderation warning issued against a guild member.
// Rows are append-only; they are removed only by an explicit bulk clear.
type Warning struct {
	ID          int64  `db:"id" json:"id"`
	GuildID     string `db:"guild_id" json:"guild_id"`
	UserID      string `db:"user_id" json:"user_id"`
	ModeratorID string `db:"moderator_id" json:"moderator_id"`
	Reason      string `db:"reason" json:"reason"`
	Timestamp   string `db:"timestamp" json:"timestamp"` // RFC 3339, UTC
}

// TempBan schedules an automatic unban. At most one row exists per
// (guild, user); re-banning overwrites the previous expiry.
type TempBan struct {
	ID             int64  `db:"id" json:"id"`
	GuildID        string `db:"guild_id" json:"guild_id"`
	UserID         string `db:"user_id" json:"user_id"`
	UnbanTimestamp int64  `db:"unban_timestamp" json:"unban_timestamp"` // unix seconds
}

// SanctionKind identifies the enforcement action chosen for a warning count.
type SanctionKind string

const (
	SanctionNone    SanctionKind = ""
	SanctionTimeout SanctionKind = "timeout"
	SanctionTempBan SanctionKind = "temp_ban"
	SanctionPermBan SanctionKind = "perm_ban"
)
