package handlers

import (
	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
	"github.com/noasueur88-blip/lounge-senpai-3/utils/database"
)

// HandleServerConfig dispatches the server-config subcommands: view and the
// per-channel setters.
func HandleServerConfig(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}
	sub := options[0]

	column := ""
	switch sub.Name {
	case "view":
		viewServerConfig(s, i, b)
		return
	case "log-channel":
		column = database.SettingLogChannel
	case "feedback-channel":
		column = database.SettingFeedbackChannel
	case "birthday-channel":
		column = database.SettingBirthdayChannel
	default:
		return
	}

	var channelID string
	for _, opt := range sub.Options {
		if opt.Name == "channel" {
			if ch := opt.ChannelValue(s); ch != nil {
				channelID = ch.ID
			}
		}
	}
	if channelID == "" {
		utils.SendErrorResponse(s, i, "Could not resolve the channel.")
		return
	}

	if err := b.Store.UpdateGuildSetting(i.GuildID, column, channelID); err != nil {
		utils.SendErrorResponse(s, i, "Failed to save the setting.")
		return
	}
	utils.SendSimpleResponse(s, i, "Setting saved. Use `/server-config view` to review.")
}

func viewServerConfig(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	settings, err := b.Store.GetGuildSettings(i.GuildID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load the server configuration.")
		return
	}

	channel := func(id *string) string {
		if id == nil || *id == "" {
			return "not set"
		}
		return "<#" + *id + ">"
	}
	var logCh, feedbackCh, birthdayCh *string
	if settings != nil {
		logCh = settings.LogChannelID
		feedbackCh = settings.FeedbackChannelID
		birthdayCh = settings.BirthdayChannelID
	}
	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title: "Server configuration",
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Log channel", Value: channel(logCh)},
			{Name: "Feedback channel", Value: channel(feedbackCh)},
			{Name: "Birthday channel", Value: channel(birthdayCh)},
		},
	})
}
