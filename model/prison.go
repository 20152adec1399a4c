package model

// PrisonRecord captures a quarantined member. Primary key is
// (guild_id, user_id): a member is either imprisoned once or not at all.
//
// SavedRoles is a JSON array of role IDs and is only populated when the
// member held administrator permissions before imprisonment. It is the sole
// record used to restore the member's exact role set on release.
type PrisonRecord struct {
	GuildID         string  `db:"guild_id" json:"guild_id"`
	UserID          string  `db:"user_id" json:"user_id"`
	PrisonChannelID string  `db:"prison_channel_id" json:"prison_channel_id"`
	ModeratorID     string  `db:"moderator_id" json:"moderator_id"`
	Reason          string  `db:"reason" json:"reason"`
	Timestamp       string  `db:"timestamp" json:"timestamp"` // RFC 3339, UTC
	SavedRoles      *string `db:"saved_roles" json:"-"`
}
