package leveling

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/bwmarrin/discordgo"
	"github.com/patrickmn/go-cache"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/metrics"
)

const (
	xpMin = 15
	xpMax = 25
)

// LevelFromXP maps accumulated XP to a level: floor(sqrt(xp/150)).
func LevelFromXP(xp int64) int {
	if xp < 0 {
		return 0
	}
	return int(math.Sqrt(float64(xp) / 150.0))
}

// XPForLevel is the XP floor of a level, the inverse of LevelFromXP.
func XPForLevel(level int) int64 {
	return int64(level) * int64(level) * 150
}

func randXP() int64 {
	return int64(xpMin + rand.Intn(xpMax-xpMin+1))
}

// HandleMessage grants XP for a guild message, at most once per cooldown
// window per member, and announces level-ups in the channel.
func HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate, b *bot.Bot) {
	if m.GuildID == "" || m.Author == nil || m.Author.Bot {
		return
	}
	metrics.MessagesSeen.Inc()

	key := m.GuildID + ":" + m.Author.ID
	if err := b.XPCooldowns.Add(key, struct{}{}, cache.DefaultExpiration); err != nil {
		return // still on cooldown
	}

	progress, err := b.Store.GetUserProgress(m.GuildID, m.Author.ID)
	if err != nil {
		logging.L().Errorw("failed to load user progress", "guild_id", m.GuildID, "user_id", m.Author.ID, "error", err)
		return
	}

	newXP := progress.XP + randXP()
	newLevel := LevelFromXP(newXP)
	if err := b.Store.UpdateUserXP(m.GuildID, m.Author.ID, newXP, newLevel); err != nil {
		logging.L().Errorw("failed to save user progress", "guild_id", m.GuildID, "user_id", m.Author.ID, "error", err)
		return
	}

	if newLevel > progress.Level {
		_, err := s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("🎉 %s reached level **%d**!", m.Author.Mention(), newLevel))
		if err != nil {
			logging.L().Warnw("failed to announce level-up", "channel_id", m.ChannelID, "error", err)
		}
	}
}
