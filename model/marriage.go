package model

// Marriage links two members of a guild. User1ID is always the smaller of
// the two IDs so a pair maps to exactly one row regardless of who proposed.
type Marriage struct {
	ID                int64  `db:"id" json:"id"`
	GuildID           string `db:"guild_id" json:"guild_id"`
	User1ID           string `db:"user1_id" json:"user1_id"`
	User2ID           string `db:"user2_id" json:"user2_id"`
	MarriageTimestamp string `db:"marriage_timestamp" json:"marriage_timestamp"` // RFC 3339, UTC
}
