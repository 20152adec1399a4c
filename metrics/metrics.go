package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WarningsIssued counts warnings recorded by moderators, per guild.
	WarningsIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_warnings_issued_total",
		Help: "Number of warnings recorded.",
	}, []string{"guild_id"})

	// SanctionsApplied counts automatic sanctions by kind (timeout, temp_ban, perm_ban).
	SanctionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_sanctions_applied_total",
		Help: "Number of automatic sanctions applied after a warning.",
	}, []string{"guild_id", "kind"})

	// BansLifted counts temporary bans lifted by the expiry sweeper.
	BansLifted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_temp_bans_lifted_total",
		Help: "Number of expired temporary bans lifted by the sweeper.",
	})

	// SweepErrors counts sweeper runs or rows that failed and were retained.
	SweepErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_temp_ban_sweep_errors_total",
		Help: "Number of sweep failures where the ban row was kept for retry.",
	})

	// MessagesSeen counts guild messages processed by the leveling listener.
	MessagesSeen = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_messages_seen_total",
		Help: "Number of guild messages observed for XP accounting.",
	})
)
