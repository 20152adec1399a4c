package database

import (
	"encoding/json"
	"fmt"

	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

// Guild-setting columns that may be upserted. The set is closed so a column
// name can never be assembled from caller input.
const (
	SettingLogChannel      = "log_channel_id"
	SettingSuggestions     = "suggestions_config"
	SettingFeedbackChannel = "feedback_channel_id"
	SettingBirthdayChannel = "birthday_channel_id"
	SettingTickets         = "ticket_config"
	SettingAutomod         = "automod_config"
)

var settingUpserts = map[string]string{
	SettingLogChannel:      "INSERT INTO guild_settings (guild_id, log_channel_id) VALUES (?, ?) ON CONFLICT(guild_id) DO UPDATE SET log_channel_id = excluded.log_channel_id",
	SettingSuggestions:     "INSERT INTO guild_settings (guild_id, suggestions_config) VALUES (?, ?) ON CONFLICT(guild_id) DO UPDATE SET suggestions_config = excluded.suggestions_config",
	SettingFeedbackChannel: "INSERT INTO guild_settings (guild_id, feedback_channel_id) VALUES (?, ?) ON CONFLICT(guild_id) DO UPDATE SET feedback_channel_id = excluded.feedback_channel_id",
	SettingBirthdayChannel: "INSERT INTO guild_settings (guild_id, birthday_channel_id) VALUES (?, ?) ON CONFLICT(guild_id) DO UPDATE SET birthday_channel_id = excluded.birthday_channel_id",
	SettingTickets:         "INSERT INTO guild_settings (guild_id, ticket_config) VALUES (?, ?) ON CONFLICT(guild_id) DO UPDATE SET ticket_config = excluded.ticket_config",
	SettingAutomod:         "INSERT INTO guild_settings (guild_id, automod_config) VALUES (?, ?) ON CONFLICT(guild_id) DO UPDATE SET automod_config = excluded.automod_config",
}

// GetGuildSettings returns the guild's settings row, or nil when the guild
// has never been configured.
func (s *Store) GetGuildSettings(guildID string) (*model.GuildSettings, error) {
	var settings model.GuildSettings
	found, err := s.FetchOne(&settings,
		"SELECT guild_id, log_channel_id, suggestions_config, feedback_channel_id, birthday_channel_id, ticket_config, automod_config FROM guild_settings WHERE guild_id = ?",
		guildID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for guild %s: %w", guildID, err)
	}
	if !found {
		return nil, nil
	}
	return &settings, nil
}

// UpdateGuildSetting upserts one column of the guild's settings row. The
// column must be one of the Setting* constants.
func (s *Store) UpdateGuildSetting(guildID, column, value string) error {
	query, ok := settingUpserts[column]
	if !ok {
		return fmt.Errorf("unknown guild setting column %q", column)
	}
	if _, err := s.Execute(query, guildID, value); err != nil {
		return fmt.Errorf("failed to update %s for guild %s: %w", column, guildID, err)
	}
	return nil
}

// GetAutomodConfig parses the guild's automod JSON sub-document. A guild
// with no configuration gets the zero value, which disables every tier.
func (s *Store) GetAutomodConfig(guildID string) (model.AutomodConfig, error) {
	var config model.AutomodConfig
	settings, err := s.GetGuildSettings(guildID)
	if err != nil {
		return config, err
	}
	if settings == nil || settings.AutomodConfig == nil || *settings.AutomodConfig == "" {
		return config, nil
	}
	if err := json.Unmarshal([]byte(*settings.AutomodConfig), &config); err != nil {
		return config, fmt.Errorf("failed to parse automod config for guild %s: %w", guildID, err)
	}
	return config, nil
}

// SetAutomodConfig serializes and stores the guild's escalation thresholds.
func (s *Store) SetAutomodConfig(guildID string, config model.AutomodConfig) error {
	data, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to serialize automod config: %w", err)
	}
	return s.UpdateGuildSetting(guildID, SettingAutomod, string(data))
}

// GetTicketConfig parses the guild's ticket JSON sub-document.
func (s *Store) GetTicketConfig(guildID string) (model.TicketConfig, error) {
	var config model.TicketConfig
	settings, err := s.GetGuildSettings(guildID)
	if err != nil {
		return config, err
	}
	if settings == nil || settings.TicketConfig == nil || *settings.TicketConfig == "" {
		return config, nil
	}
	if err := json.Unmarshal([]byte(*settings.TicketConfig), &config); err != nil {
		return config, fmt.Errorf("failed to parse ticket config for guild %s: %w", guildID, err)
	}
	return config, nil
}

// SetTicketConfig serializes and stores the guild's ticket configuration.
func (s *Store) SetTicketConfig(guildID string, config model.TicketConfig) error {
	data, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to serialize ticket config: %w", err)
	}
	return s.UpdateGuildSetting(guildID, SettingTickets, string(data))
}

// GetSuggestionsConfig parses the guild's suggestions JSON sub-document.
func (s *Store) GetSuggestionsConfig(guildID string) (model.SuggestionsConfig, error) {
	var config model.SuggestionsConfig
	settings, err := s.GetGuildSettings(guildID)
	if err != nil {
		return config, err
	}
	if settings == nil || settings.SuggestionsConfig == nil || *settings.SuggestionsConfig == "" {
		return config, nil
	}
	if err := json.Unmarshal([]byte(*settings.SuggestionsConfig), &config); err != nil {
		return config, fmt.Errorf("failed to parse suggestions config for guild %s: %w", guildID, err)
	}
	return config, nil
}

// SetSuggestionsConfig serializes and stores the guild's suggestion routing.
func (s *Store) SetSuggestionsConfig(guildID string, config model.SuggestionsConfig) error {
	data, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to serialize suggestions config: %w", err)
	}
	return s.UpdateGuildSetting(guildID, SettingSuggestions, string(data))
}
