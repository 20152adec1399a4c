package automod

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"github.com/noasueur88-blip/lounge-senpai-3/logging"
)

const (
	spamTimeoutDuration = 10 * time.Minute
	spamBurst           = 5
)

// SpamGuard rate-limits messages per guild member. A member who exceeds
// the burst gets a short timeout.
type SpamGuard struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewSpamGuard() *SpamGuard {
	return &SpamGuard{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(2 * time.Second),
		burst:    spamBurst,
	}
}

// Allow reports whether the member's message is within the rate limit.
func (g *SpamGuard) Allow(guildID, userID string) bool {
	g.mu.Lock()
	key := guildID + ":" + userID
	limiter, ok := g.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(g.limit, g.burst)
		g.limiters[key] = limiter
	}
	g.mu.Unlock()
	return limiter.Allow()
}

// Prune drops all tracked limiters so the map does not grow without
// bound. Idle members simply get a fresh budget.
func (g *SpamGuard) Prune() {
	g.mu.Lock()
	g.limiters = make(map[string]*rate.Limiter)
	g.mu.Unlock()
}

// HandleMessage checks an incoming guild message and times the author out
// when they are flooding. Bot messages are ignored.
func (g *SpamGuard) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.GuildID == "" || m.Author == nil || m.Author.Bot {
		return
	}
	if g.Allow(m.GuildID, m.Author.ID) {
		return
	}
	until := time.Now().Add(spamTimeoutDuration)
	if err := s.GuildMemberTimeout(m.GuildID, m.Author.ID, &until); err != nil {
		logging.L().Warnw("failed to time out flooding member",
			"guild_id", m.GuildID, "user_id", m.Author.ID, "error", err)
		return
	}
	logging.L().Infow("timed out flooding member", "guild_id", m.GuildID, "user_id", m.Author.ID)
}
