package scanner

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/metrics"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

// DefaultSweepInterval is how often expired temporary bans are checked.
const DefaultSweepInterval = 5 * time.Minute

// BanStore is the slice of the database the sweeper needs.
type BanStore interface {
	GetExpiredBans(now int64) ([]model.TempBan, error)
	RemoveTempBan(id int64) error
}

// Unbanner lifts a guild ban. *discordgo.Session satisfies it.
type Unbanner interface {
	GuildBanDelete(guildID, userID string, options ...discordgo.RequestOption) error
}

// GuildChecker reports whether the process still serves the guild. Bans
// for guilds the bot has left are stale and their rows get dropped.
type GuildChecker func(guildID string) bool

// Sweeper periodically lifts expired temporary bans. A row is deleted only
// after the unban succeeds (or the ban is already gone), so transient
// failures are retried on the next pass.
type Sweeper struct {
	store    BanStore
	session  Unbanner
	known    GuildChecker
	interval time.Duration
	ready    atomic.Bool
}

func NewSweeper(store BanStore, session Unbanner, known GuildChecker, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{store: store, session: session, known: known, interval: interval}
}

// MarkReady allows sweeping to begin. Called once the gateway session is
// ready, so the sweeper never races the initial connection.
func (sw *Sweeper) MarkReady() {
	sw.ready.Store(true)
}

// Start runs the sweep loop until done is closed.
func (sw *Sweeper) Start(done <-chan struct{}, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(sw.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if sw.ready.Load() {
					sw.SweepOnce(time.Now())
				}
			case <-done:
				return
			}
		}
	}()
}

// SweepOnce processes every ban whose expiry is at or before now.
func (sw *Sweeper) SweepOnce(now time.Time) {
	expired, err := sw.store.GetExpiredBans(now.Unix())
	if err != nil {
		logging.L().Errorw("failed to load expired temp bans", "error", err)
		metrics.SweepErrors.Inc()
		return
	}

	for _, ban := range expired {
		sw.processBan(ban)
	}
}

func (sw *Sweeper) processBan(ban model.TempBan) {
	if sw.known != nil && !sw.known(ban.GuildID) {
		// The bot left the guild, nothing to lift there anymore.
		logging.L().Infow("dropping temp ban for unknown guild", "guild_id", ban.GuildID, "user_id", ban.UserID)
		sw.removeRecord(ban)
		return
	}

	err := sw.session.GuildBanDelete(ban.GuildID, ban.UserID)
	switch {
	case err == nil:
		logging.L().Infow("lifted expired temp ban", "guild_id", ban.GuildID, "user_id", ban.UserID)
		metrics.BansLifted.Inc()
	case utils.IsNotFound(err):
		// Ban already removed by hand, or the bot left the guild. Either
		// way there is nothing left to lift.
		logging.L().Infow("temp ban already gone, dropping record", "guild_id", ban.GuildID, "user_id", ban.UserID)
	case utils.IsForbidden(err):
		logging.L().Warnw("missing permission to unban, keeping record for retry",
			"guild_id", ban.GuildID, "user_id", ban.UserID)
		metrics.SweepErrors.Inc()
		return
	default:
		logging.L().Errorw("failed to lift temp ban, keeping record for retry",
			"guild_id", ban.GuildID, "user_id", ban.UserID, "error", err)
		metrics.SweepErrors.Inc()
		return
	}

	sw.removeRecord(ban)
}

func (sw *Sweeper) removeRecord(ban model.TempBan) {
	if err := sw.store.RemoveTempBan(ban.ID); err != nil {
		logging.L().Errorw("failed to delete temp ban record", "id", ban.ID, "error", err)
		metrics.SweepErrors.Inc()
	}
}
