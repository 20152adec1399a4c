package moderation

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

// HandleBan bans a member, permanently or for a duration like "3d" or
// "12h". Temporary bans are lifted automatically once they expire.
func HandleBan(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	reason := opts["reason"].StringValue()
	if target == nil {
		utils.SendErrorResponse(s, i, "Could not resolve the target user.")
		return
	}
	if target.ID == i.Member.User.ID {
		utils.SendErrorResponse(s, i, "You cannot ban yourself.")
		return
	}
	if !actorOutranksTarget(s, i.GuildID, i.Member, target.ID) {
		utils.SendErrorResponse(s, i, "You cannot ban a member ranked at or above you.")
		return
	}

	deleteDays := 0
	if opt, ok := opts["delete_messages"]; ok {
		deleteDays = int(opt.IntValue())
	}

	var duration time.Duration
	if opt, ok := opts["duration"]; ok {
		var err error
		duration, err = utils.ParseDuration(opt.StringValue())
		if err != nil || duration <= 0 {
			utils.SendErrorResponse(s, i, "Invalid duration. Use forms like `30m`, `12h` or `3d`.")
			return
		}
	}

	utils.SendPrivateMessage(s, target.ID,
		fmt.Sprintf("You have been banned from **%s**: %s", guildName(s, i.GuildID), reason))

	if err := s.GuildBanCreateWithReason(i.GuildID, target.ID, reason, deleteDays); err != nil {
		if utils.IsForbidden(err) {
			utils.SendErrorResponse(s, i, "I am not allowed to ban that member.")
		} else {
			utils.SendErrorResponse(s, i, "Failed to ban the member.")
		}
		return
	}

	if duration > 0 {
		unbanAt := time.Now().Add(duration)
		if err := b.Store.AddTempBan(i.GuildID, target.ID, unbanAt.Unix()); err != nil {
			logging.L().Errorw("ban placed but expiry not recorded",
				"guild_id", i.GuildID, "user_id", target.ID, "error", err)
			utils.SendPublicResponse(s, i, fmt.Sprintf(
				"🔨 Banned %s, but I could not schedule the automatic unban. It must be lifted by hand.", target.Mention()))
			return
		}
		utils.SendPublicResponse(s, i, fmt.Sprintf(
			"🔨 Banned %s for %s: %s", target.Mention(), opts["duration"].StringValue(), reason))
		b.LogToGuild(i.GuildID, fmt.Sprintf("🔨 <@%s> banned <@%s> for %s: %s",
			i.Member.User.ID, target.ID, opts["duration"].StringValue(), reason))
		return
	}
	utils.SendPublicResponse(s, i, fmt.Sprintf("🔨 Banned %s: %s", target.Mention(), reason))
	b.LogToGuild(i.GuildID, fmt.Sprintf("🔨 <@%s> banned <@%s>: %s", i.Member.User.ID, target.ID, reason))
}

// HandleUnban lifts a ban and drops any pending expiry record.
func HandleUnban(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	userID := opts["user_id"].StringValue()

	if err := s.GuildBanDelete(i.GuildID, userID); err != nil {
		if utils.IsNotFound(err) {
			utils.SendErrorResponse(s, i, "That user is not banned.")
		} else {
			utils.SendErrorResponse(s, i, "Failed to lift the ban.")
		}
		return
	}
	if err := b.Store.ClearTempBan(i.GuildID, userID); err != nil {
		logging.L().Warnw("unbanned but failed to drop expiry record",
			"guild_id", i.GuildID, "user_id", userID, "error", err)
	}
	utils.SendPublicResponse(s, i, fmt.Sprintf("🔓 Unbanned <@%s>.", userID))
}

// HandleKick removes a member from the guild.
func HandleKick(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	reason := opts["reason"].StringValue()
	if target == nil {
		utils.SendErrorResponse(s, i, "Could not resolve the target user.")
		return
	}
	if target.ID == i.Member.User.ID {
		utils.SendErrorResponse(s, i, "You cannot kick yourself.")
		return
	}
	if !actorOutranksTarget(s, i.GuildID, i.Member, target.ID) {
		utils.SendErrorResponse(s, i, "You cannot kick a member ranked at or above you.")
		return
	}

	utils.SendPrivateMessage(s, target.ID,
		fmt.Sprintf("You have been kicked from **%s**: %s", guildName(s, i.GuildID), reason))

	if err := s.GuildMemberDeleteWithReason(i.GuildID, target.ID, reason); err != nil {
		if utils.IsForbidden(err) {
			utils.SendErrorResponse(s, i, "I am not allowed to kick that member.")
		} else {
			utils.SendErrorResponse(s, i, "Failed to kick the member.")
		}
		return
	}
	utils.SendPublicResponse(s, i, fmt.Sprintf("👢 Kicked %s: %s", target.Mention(), reason))
	b.LogToGuild(i.GuildID, fmt.Sprintf("👢 <@%s> kicked <@%s>: %s", i.Member.User.ID, target.ID, reason))
}

// actorOutranksTarget checks the role hierarchy between the acting member
// and the target. Lookup failures fall through to Discord's own permission
// enforcement.
func actorOutranksTarget(s *discordgo.Session, guildID string, actor *discordgo.Member, targetID string) bool {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		if guild, err = s.Guild(guildID); err != nil {
			return true
		}
	}
	target, err := s.State.Member(guildID, targetID)
	if err != nil {
		if target, err = s.GuildMember(guildID, targetID); err != nil {
			return true
		}
	}
	return utils.MemberOutranks(guild, actor, target)
}

// HandleClear bulk-deletes between 1 and 100 recent messages in the
// current channel.
func HandleClear(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	amount := int(opts["amount"].IntValue())
	if amount < 1 || amount > 100 {
		utils.SendErrorResponse(s, i, "Amount must be between 1 and 100.")
		return
	}

	messages, err := s.ChannelMessages(i.ChannelID, amount, "", "", "")
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to fetch messages.")
		return
	}
	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	if len(ids) == 0 {
		utils.SendSimpleResponse(s, i, "Nothing to delete.")
		return
	}
	if err := s.ChannelMessagesBulkDelete(i.ChannelID, ids); err != nil {
		utils.SendErrorResponse(s, i, "Failed to delete messages. Messages older than 14 days cannot be bulk-deleted.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("🧹 Deleted %d message(s).", len(ids)))
}
