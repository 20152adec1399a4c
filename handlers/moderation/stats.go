package moderation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

const defaultStatsWindow = 7 * 24 * time.Hour

// BuildModStatsEmbed renders the per-moderator warning leaderboard for the
// guild over the given window.
func BuildModStatsEmbed(store statsStore, guildID string, window time.Duration) (*discordgo.MessageEmbed, error) {
	since := time.Now().Add(-window)
	stats, err := store.GetModeratorWarningStats(guildID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get moderator warning stats: %w", err)
	}

	total := 0
	sorted := make([]string, 0, len(stats))
	for moderatorID, count := range stats {
		sorted = append(sorted, moderatorID)
		total += count
	}
	sort.Slice(sorted, func(i, j int) bool {
		return stats[sorted[i]] > stats[sorted[j]]
	})

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("**Total warnings issued: %d**\n\n", total))
	if len(sorted) == 0 {
		builder.WriteString("No warnings were issued in this period.")
	}
	for idx, moderatorID := range sorted {
		builder.WriteString(fmt.Sprintf("%d. <@%s>: %d\n", idx+1, moderatorID, stats[moderatorID]))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Moderation activity — last %s", utils.FormatDuration(window)),
		Description: builder.String(),
		Timestamp:   time.Now().Format(time.RFC3339),
		Color:       0xE67E22,
	}, nil
}

type statsStore interface {
	GetModeratorWarningStats(guildID string, since time.Time) (map[string]int, error)
}

// HandleModStats shows which moderators issued warnings recently.
func HandleModStats(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	window := defaultStatsWindow
	if opt, ok := optionMap(i)["period"]; ok {
		parsed, err := utils.ParseDuration(opt.StringValue())
		if err != nil || parsed <= 0 {
			utils.SendErrorResponse(s, i, "Invalid period, use something like `24h` or `7d`.")
			return
		}
		window = parsed
	}

	embed, err := BuildModStatsEmbed(b.Store, i.GuildID, window)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load moderation statistics.")
		return
	}
	utils.SendEmbedResponse(s, i, embed)
}
