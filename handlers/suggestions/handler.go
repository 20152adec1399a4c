package suggestions

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

// HandleSuggestionsConfig stores the suggestion routing channels.
func HandleSuggestionsConfig(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	suggestion := opts["channel"].ChannelValue(s)
	if suggestion == nil {
		utils.SendErrorResponse(s, i, "Could not resolve the suggestion channel.")
		return
	}
	cfg := model.SuggestionsConfig{SuggestionChannelID: suggestion.ID}
	if opt, ok := opts["approved_channel"]; ok {
		if ch := opt.ChannelValue(s); ch != nil {
			cfg.ApprovedChannelID = ch.ID
		}
	}
	if opt, ok := opts["refused_channel"]; ok {
		if ch := opt.ChannelValue(s); ch != nil {
			cfg.RefusedChannelID = ch.ID
		}
	}

	if err := b.Store.SetSuggestionsConfig(i.GuildID, cfg); err != nil {
		utils.SendErrorResponse(s, i, "Failed to save the suggestion configuration.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Suggestions will be collected in <#%s>.", suggestion.ID))
}

// HandleSuggest posts the member's suggestion to the configured channel
// with vote reactions.
func HandleSuggest(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cfg, err := b.Store.GetSuggestionsConfig(i.GuildID)
	if err != nil || cfg.SuggestionChannelID == "" {
		utils.SendErrorResponse(s, i, "Suggestions are not configured on this server.")
		return
	}
	text := optionMap(i)["suggestion"].StringValue()
	author := i.Member.User

	msg, err := s.ChannelMessageSendEmbed(cfg.SuggestionChannelID, &discordgo.MessageEmbed{
		Title:       "💡 Suggestion",
		Description: text,
		Color:       0x9B59B6,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    author.Username,
			IconURL: author.AvatarURL("64"),
		},
	})
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to post the suggestion.")
		return
	}
	for _, emoji := range []string{"👍", "👎"} {
		if err := s.MessageReactionAdd(cfg.SuggestionChannelID, msg.ID, emoji); err != nil {
			logging.L().Warnw("failed to seed vote reaction", "message_id", msg.ID, "error", err)
		}
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Your suggestion was posted in <#%s>.", cfg.SuggestionChannelID))
}

// HandleSuggestionVerdict moves a suggestion to the approved or refused
// channel. Subcommands: approve, refuse.
func HandleSuggestionVerdict(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}
	sub := options[0]
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		opts[opt.Name] = opt
	}
	messageID := opts["message_id"].StringValue()
	reason := ""
	if opt, ok := opts["reason"]; ok {
		reason = opt.StringValue()
	}

	cfg, err := b.Store.GetSuggestionsConfig(i.GuildID)
	if err != nil || cfg.SuggestionChannelID == "" {
		utils.SendErrorResponse(s, i, "Suggestions are not configured on this server.")
		return
	}

	destination := cfg.ApprovedChannelID
	verdict := "✅ Approved"
	color := 0x2ECC71
	if sub.Name == "refuse" {
		destination = cfg.RefusedChannelID
		verdict = "❌ Refused"
		color = 0xE74C3C
	}
	if destination == "" {
		utils.SendErrorResponse(s, i, "No destination channel is configured for that verdict.")
		return
	}

	original, err := s.ChannelMessage(cfg.SuggestionChannelID, messageID)
	if err != nil || len(original.Embeds) == 0 {
		utils.SendErrorResponse(s, i, "Could not find that suggestion.")
		return
	}

	moved := *original.Embeds[0]
	moved.Title = verdict
	moved.Color = color
	if reason != "" {
		moved.Fields = append(moved.Fields, &discordgo.MessageEmbedField{Name: "Reason", Value: reason})
	}
	if _, err := s.ChannelMessageSendEmbed(destination, &moved); err != nil {
		utils.SendErrorResponse(s, i, "Failed to post the verdict.")
		return
	}
	if err := s.ChannelMessageDelete(cfg.SuggestionChannelID, messageID); err != nil {
		logging.L().Warnw("verdict posted but original suggestion not removed",
			"message_id", messageID, "error", err)
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Suggestion moved to <#%s>.", destination))
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}
