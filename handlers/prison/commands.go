package prison

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

// HandleImprison quarantines a member in the given channel.
func HandleImprison(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	channel := opts["channel"].ChannelValue(s)
	reason := "No reason provided."
	if opt, ok := opts["reason"]; ok {
		reason = opt.StringValue()
	}
	if target == nil || channel == nil {
		utils.SendErrorResponse(s, i, "Could not resolve the target user or channel.")
		return
	}
	if target.Bot {
		utils.SendErrorResponse(s, i, "Bots cannot be imprisoned.")
		return
	}
	if target.ID == i.Member.User.ID {
		utils.SendErrorResponse(s, i, "You cannot imprison yourself.")
		return
	}

	// Role creation plus per-channel overwrites can take a while on big
	// guilds, so acknowledge first.
	if err := utils.DeferEphemeral(s, i); err != nil {
		return
	}

	m := NewManager(s, b.Store, s.State.User.ID)
	if err := m.Imprison(i.GuildID, target.ID, channel.ID, i.Member.User.ID, reason); err != nil {
		switch {
		case errors.Is(err, ErrTargetOutranksBot):
			utils.SendFollowUpError(s, i.Interaction, "Their highest role sits above mine, I cannot imprison them.")
		case errors.Is(err, ErrActorOutranked):
			utils.SendFollowUpError(s, i.Interaction, "You need a role above theirs to imprison them.")
		default:
			utils.SendFollowUpError(s, i.Interaction, "Failed to imprison the member.")
		}
		return
	}

	utils.SendPrivateMessage(s, target.ID,
		fmt.Sprintf("You have been confined to <#%s>: %s", channel.ID, reason))
	utils.SendFollowUp(s, i.Interaction,
		fmt.Sprintf("⛓️ %s is now confined to <#%s>.", target.Mention(), channel.ID))
	b.LogToGuild(i.GuildID, fmt.Sprintf("⛓️ <@%s> imprisoned <@%s> in <#%s>: %s",
		i.Member.User.ID, target.ID, channel.ID, reason))
}

// HandleRelease restores an imprisoned member's roles.
func HandleRelease(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	if target == nil {
		utils.SendErrorResponse(s, i, "Could not resolve the target user.")
		return
	}

	m := NewManager(s, b.Store, s.State.User.ID)
	err := m.Release(i.GuildID, target.ID)
	switch {
	case err == nil:
		utils.SendPublicResponse(s, i, fmt.Sprintf("🔓 Released %s.", target.Mention()))
		b.LogToGuild(i.GuildID, fmt.Sprintf("🔓 <@%s> released <@%s>.", i.Member.User.ID, target.ID))
	case errors.Is(err, ErrNotImprisoned):
		utils.SendSimpleResponse(s, i, fmt.Sprintf("%s is not imprisoned.", target.Username))
	case errors.Is(err, ErrCorruptSnapshot):
		utils.SendErrorResponse(s, i, "Their saved roles are unreadable. Restore them by hand, then clear the record.")
	case errors.Is(err, ErrRoleOutranksBot):
		utils.SendErrorResponse(s, i, "One of their saved roles sits above mine, I cannot give it back.")
	default:
		utils.SendErrorResponse(s, i, "Failed to release the member.")
	}
}

// HandlePrisoners lists who is currently imprisoned in the guild.
func HandlePrisoners(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	records, err := b.Store.ListPrisoners(i.GuildID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load the prisoner list.")
		return
	}
	if len(records) == 0 {
		utils.SendSimpleResponse(s, i, "The prison is empty.")
		return
	}

	var sb strings.Builder
	for _, r := range records {
		fmt.Fprintf(&sb, "<@%s> in <#%s> since %s — %s\n", r.UserID, r.PrisonChannelID, r.Timestamp, r.Reason)
	}
	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Prisoners (%d)", len(records)),
		Description: sb.String(),
		Color:       0x95A5A6,
	})
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}
