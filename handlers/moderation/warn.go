package moderation

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/automod"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

// HandleWarn records a warning and applies the escalation tier the new
// warning count lands on.
func HandleWarn(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	reason := opts["reason"].StringValue()
	if target == nil {
		utils.SendErrorResponse(s, i, "Could not resolve the target user.")
		return
	}
	if target.Bot {
		utils.SendErrorResponse(s, i, "Bots cannot be warned.")
		return
	}
	if target.ID == i.Member.User.ID {
		utils.SendErrorResponse(s, i, "You cannot warn yourself.")
		return
	}

	res, err := automod.ProcessWarning(s, b.Store, i.GuildID, target.ID, i.Member.User.ID, reason)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to record the warning.")
		return
	}

	utils.SendPrivateMessage(s, target.ID,
		fmt.Sprintf("You received a warning in **%s**: %s", guildName(s, i.GuildID), reason))

	msg := fmt.Sprintf("⚠️ Warned %s (warning #%d): %s", target.Mention(), res.WarningCount, reason)
	switch res.Sanction {
	case model.SanctionTimeout:
		msg += "\n⏳ They have been timed out."
	case model.SanctionTempBan:
		msg += "\n🔨 They have been temporarily banned."
	case model.SanctionPermBan:
		msg += "\n🔨 They have been permanently banned."
	}
	if res.SanctionErr != nil {
		msg += "\n⚠️ The automatic sanction could not be applied, check my permissions."
	}
	utils.SendPublicResponse(s, i, msg)
	b.LogToGuild(i.GuildID, fmt.Sprintf("⚠️ <@%s> warned <@%s> (warning #%d): %s",
		i.Member.User.ID, target.ID, res.WarningCount, reason))
}

// HandleWarnings lists a member's warnings.
func HandleWarnings(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	if target == nil {
		utils.SendErrorResponse(s, i, "Could not resolve the target user.")
		return
	}

	warnings, err := b.Store.GetWarnings(i.GuildID, target.ID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load warnings.")
		return
	}
	if len(warnings) == 0 {
		utils.SendSimpleResponse(s, i, fmt.Sprintf("%s has no warnings.", target.Username))
		return
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(warnings))
	for idx, w := range warnings {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("#%d — %s", idx+1, w.Timestamp),
			Value: fmt.Sprintf("%s (by <@%s>)", w.Reason, w.ModeratorID),
		})
	}
	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("Warnings for %s (%d)", target.Username, len(warnings)),
		Color:  0xE67E22,
		Fields: fields,
	})
}

// HandleClearWarns removes every warning a member has.
func HandleClearWarns(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	if target == nil {
		utils.SendErrorResponse(s, i, "Could not resolve the target user.")
		return
	}

	removed, err := b.Store.ClearWarnings(i.GuildID, target.ID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to clear warnings.")
		return
	}
	utils.SendPublicResponse(s, i,
		fmt.Sprintf("🧹 Cleared %d warning(s) for %s.", removed, target.Mention()))
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func guildName(s *discordgo.Session, guildID string) string {
	if g, err := s.State.Guild(guildID); err == nil && g.Name != "" {
		return g.Name
	}
	if g, err := s.Guild(guildID); err == nil {
		return g.Name
	}
	return "this server"
}
