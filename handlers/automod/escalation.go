package automod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/metrics"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

// Sanctioner is the slice of the session needed to apply sanctions.
// *discordgo.Session satisfies it.
type Sanctioner interface {
	GuildBanCreateWithReason(guildID, userID, reason string, days int, options ...discordgo.RequestOption) error
	GuildMemberTimeout(guildID, userID string, until *time.Time, options ...discordgo.RequestOption) error
}

// WarningStore is the slice of the database the escalator needs.
type WarningStore interface {
	AddWarning(guildID, userID, moderatorID, reason string) (int64, error)
	CountWarnings(guildID, userID string) (int, error)
	AddTempBan(guildID, userID string, unbanTimestamp int64) error
	GetAutomodConfig(guildID string) (model.AutomodConfig, error)
}

// Result describes what happened after a warning was recorded.
type Result struct {
	WarningID    int64
	WarningCount int
	Sanction     model.SanctionKind
	// SanctionErr is set when the warning was stored but the platform
	// action failed. The warning always stands.
	SanctionErr error
}

// ProcessWarning records a warning and applies the configured escalation
// tier, if any. Tiers are checked most severe first so a user crossing
// several thresholds at once receives a single sanction, the harshest one.
func ProcessWarning(session Sanctioner, store WarningStore, guildID, userID, moderatorID, reason string) (Result, error) {
	warningID, err := store.AddWarning(guildID, userID, moderatorID, reason)
	if err != nil {
		return Result{}, fmt.Errorf("failed to record warning: %w", err)
	}
	metrics.WarningsIssued.WithLabelValues(guildID).Inc()

	count, err := store.CountWarnings(guildID, userID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count warnings: %w", err)
	}

	cfg, err := store.GetAutomodConfig(guildID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load automod config: %w", err)
	}

	res := Result{WarningID: warningID, WarningCount: count, Sanction: pickSanction(cfg, count)}
	switch res.Sanction {
	case model.SanctionPermBan:
		res.SanctionErr = session.GuildBanCreateWithReason(guildID, userID,
			fmt.Sprintf("Reached %d warnings: %s", count, reason), 0)
	case model.SanctionTempBan:
		res.SanctionErr = applyTempBan(session, store, cfg, guildID, userID, count, reason)
	case model.SanctionTimeout:
		until := time.Now().Add(time.Duration(cfg.TimeoutDurationMinutes) * time.Minute)
		res.SanctionErr = session.GuildMemberTimeout(guildID, userID, &until)
	}

	if res.SanctionErr != nil {
		logging.L().Errorw("sanction failed, warning kept",
			"guild_id", guildID, "user_id", userID, "sanction", res.Sanction, "error", res.SanctionErr)
	} else if res.Sanction != model.SanctionNone {
		metrics.SanctionsApplied.WithLabelValues(guildID, string(res.Sanction)).Inc()
	}
	return res, nil
}

// pickSanction returns the harshest enabled tier whose threshold the
// warning count has reached. A zero threshold disables its tier, and the
// timeout tier additionally needs a positive duration: a zero-length
// timeout would expire the moment it is applied.
func pickSanction(cfg model.AutomodConfig, count int) model.SanctionKind {
	if cfg.PermBanThreshold > 0 && count >= cfg.PermBanThreshold {
		return model.SanctionPermBan
	}
	if cfg.TempBanThreshold > 0 && count >= cfg.TempBanThreshold {
		return model.SanctionTempBan
	}
	if cfg.TimeoutThreshold > 0 && cfg.TimeoutDurationMinutes > 0 && count >= cfg.TimeoutThreshold {
		return model.SanctionTimeout
	}
	return model.SanctionNone
}

func applyTempBan(session Sanctioner, store WarningStore, cfg model.AutomodConfig, guildID, userID string, count int, reason string) error {
	unbanAt := time.Now().Add(time.Duration(cfg.TempBanDurationDays) * 24 * time.Hour)
	err := session.GuildBanCreateWithReason(guildID, userID,
		fmt.Sprintf("Reached %d warnings: %s", count, reason), 0)
	if err != nil {
		return err
	}
	// Record the expiry only after the ban went through, otherwise the
	// sweeper would try to lift a ban that was never placed.
	if err := store.AddTempBan(guildID, userID, unbanAt.Unix()); err != nil {
		return fmt.Errorf("ban placed but expiry not recorded: %w", err)
	}
	return nil
}
