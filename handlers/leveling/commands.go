package leveling

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

// HandleProfile shows a member's level, XP and balance.
func HandleProfile(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	target := i.Member.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			if u := opt.UserValue(s); u != nil {
				target = u
			}
		}
	}

	progress, err := b.Store.GetUserProgress(i.GuildID, target.ID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load the profile.")
		return
	}
	economy := b.Shop.Guild(i.GuildID).Economy

	next := XPForLevel(progress.Level + 1)
	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Profile of %s", target.Username),
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Level", Value: fmt.Sprintf("%d", progress.Level), Inline: true},
			{Name: "XP", Value: fmt.Sprintf("%d / %d", progress.XP, next), Inline: true},
			{Name: economy.CurrencyName, Value: fmt.Sprintf("%s %d", economy.CurrencyEmoji, progress.Money), Inline: true},
			{Name: "Progress", Value: progressBar(progress.XP, XPForLevel(progress.Level), next)},
		},
	})
}

// progressBar renders XP progress through the current level as ten blocks.
func progressBar(xp, levelFloor, levelCeil int64) string {
	span := levelCeil - levelFloor
	if span <= 0 {
		return strings.Repeat("█", 10)
	}
	filled := int((xp - levelFloor) * 10 / span)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// HandleLeaderboard shows the guild's top members by level or by balance.
func HandleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	category := "levels"
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "category" {
			category = opt.StringValue()
		}
	}

	var (
		rows []model.UserProgress
		err  error
	)
	if category == "money" {
		rows, err = b.Store.GetMoneyLeaderboard(i.GuildID, 10)
	} else {
		rows, err = b.Store.GetXPLeaderboard(i.GuildID, 10)
	}
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load the leaderboard.")
		return
	}
	if len(rows) == 0 {
		utils.SendSimpleResponse(s, i, "Nobody is on the board yet.")
		return
	}

	economy := b.Shop.Guild(i.GuildID).Economy
	var sb strings.Builder
	for idx, row := range rows {
		if category == "money" {
			fmt.Fprintf(&sb, "**%d.** <@%s> — %s %d\n", idx+1, row.UserID, economy.CurrencyEmoji, row.Money)
		} else {
			fmt.Fprintf(&sb, "**%d.** <@%s> — level %d (%d XP)\n", idx+1, row.UserID, row.Level, row.XP)
		}
	}

	title := "🏆 Level leaderboard"
	if category == "money" {
		title = fmt.Sprintf("🏆 %s leaderboard", economy.CurrencyName)
	}
	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       0xF1C40F,
	})
}
