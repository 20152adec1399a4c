package bot

import (
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/patrickmn/go-cache"

	"github.com/noasueur88-blip/lounge-senpai-3/handlers/automod"
	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
	"github.com/noasueur88-blip/lounge-senpai-3/scanner"
	"github.com/noasueur88-blip/lounge-senpai-3/shopdata"
	"github.com/noasueur88-blip/lounge-senpai-3/utils/database"
)

// XPCooldown is how long a member must wait between XP-earning messages.
const XPCooldown = 60 * time.Second

// DailyCooldown is how long a member must wait between daily reward claims.
const DailyCooldown = 22 * time.Hour

type Bot struct {
	Session            *discordgo.Session
	Store              *database.Store
	Shop               *shopdata.Repository
	Sweeper            *scanner.Sweeper
	Spam               *automod.SpamGuard
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	RegisteredCommands []*discordgo.ApplicationCommand

	// XPCooldowns and DailyCooldowns key on "guildID:userID". Expiry is
	// handled by the cache janitor, no manual sweep needed.
	XPCooldowns    *cache.Cache
	DailyCooldowns *cache.Cache

	config    atomic.Value // *model.Config
	scheduler *Scheduler
}

func New(cfg *model.Config, store *database.Store, shop *shopdata.Repository) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent

	b := &Bot{
		Session:        dg,
		Store:          store,
		Shop:           shop,
		Spam:           automod.NewSpamGuard(),
		XPCooldowns:    cache.New(XPCooldown, 5*time.Minute),
		DailyCooldowns: cache.New(DailyCooldown, time.Hour),
	}
	b.config.Store(cfg)
	knownGuild := func(guildID string) bool {
		_, err := dg.State.Guild(guildID)
		return err == nil
	}
	b.Sweeper = scanner.NewSweeper(store, dg, knownGuild, cfg.SweepInterval)
	b.scheduler = NewScheduler(b)
	return b, nil
}

func (b *Bot) GetConfig() *model.Config {
	return b.config.Load().(*model.Config)
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

// LogToGuild posts a line to the guild's configured log channel. Guilds
// without one configured are silently skipped.
func (b *Bot) LogToGuild(guildID, message string) {
	settings, err := b.Store.GetGuildSettings(guildID)
	if err != nil {
		logging.L().Warnw("failed to load guild settings for log channel", "guild_id", guildID, "error", err)
		return
	}
	if settings == nil || settings.LogChannelID == nil || *settings.LogChannelID == "" {
		return
	}
	if _, err := b.Session.ChannelMessageSend(*settings.LogChannelID, message); err != nil {
		logging.L().Warnw("failed to post to guild log channel", "guild_id", guildID, "error", err)
	}
}

// RefreshCommands overwrites the application's global slash commands.
func (b *Bot) RefreshCommands(cmds []*discordgo.ApplicationCommand) error {
	registered, err := b.Session.ApplicationCommandBulkOverwrite(b.GetConfig().AppID, "", cmds)
	if err != nil {
		return err
	}
	b.RegisteredCommands = registered
	logging.L().Infow("registered application commands", "count", len(registered))
	return nil
}
