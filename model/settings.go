package model

// GuildSettings is the one-row-per-guild configuration record. The *_config
// columns hold JSON sub-documents; they are parsed into the structured types
// below on read and serialized on write.
type GuildSettings struct {
	GuildID           string  `db:"guild_id"`
	LogChannelID      *string `db:"log_channel_id"`
	SuggestionsConfig *string `db:"suggestions_config"`
	FeedbackChannelID *string `db:"feedback_channel_id"`
	BirthdayChannelID *string `db:"birthday_channel_id"`
	TicketConfig      *string `db:"ticket_config"`
	AutomodConfig     *string `db:"automod_config"`
}

// AutomodConfig holds the warning escalation thresholds for a guild.
// A threshold of 0 disables that tier.
type AutomodConfig struct {
	TimeoutThreshold       int `json:"timeout_threshold"`
	TimeoutDurationMinutes int `json:"timeout_duration_minutes"`
	TempBanThreshold       int `json:"temp_ban_threshold"`
	TempBanDurationDays    int `json:"temp_ban_duration_days"`
	PermBanThreshold       int `json:"perm_ban_threshold"`
}

// SuggestionsConfig routes member suggestions to the configured channels.
type SuggestionsConfig struct {
	SuggestionChannelID string `json:"suggestion_channel"`
	ApprovedChannelID   string `json:"approved_channel"`
	RefusedChannelID    string `json:"refused_channel"`
}

// TicketConfig holds the support ticket category and role for a guild.
type TicketConfig struct {
	TicketCategoryID string `json:"ticket_category_id"`
	SupportRoleID    string `json:"support_role_id"`
}
