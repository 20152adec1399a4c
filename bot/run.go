package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/commands"
	"github.com/noasueur88-blip/lounge-senpai-3/logging"
)

// Run opens the gateway session, registers commands and blocks until ctx
// is cancelled, then shuts everything down in order.
func (b *Bot) Run(ctx context.Context) error {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logging.L().Infow("gateway ready", "user", r.User.Username, "guilds", len(r.Guilds))
		b.Sweeper.MarkReady()
	})

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("failed to open gateway connection: %w", err)
	}

	if err := b.RefreshCommands(commands.All()); err != nil {
		logging.L().Errorw("failed to register commands", "error", err)
	}

	b.scheduler.Start()
	b.announceStartup()

	<-ctx.Done()

	b.scheduler.Stop()
	if err := b.Session.Close(); err != nil {
		logging.L().Warnw("error closing gateway session", "error", err)
	}
	return nil
}

func (b *Bot) announceStartup() {
	channelID := b.GetConfig().LogChannelID
	if channelID == "" {
		return
	}
	if _, err := b.Session.ChannelMessageSend(channelID, "✅ Bot is up and running."); err != nil {
		logging.L().Warnw("failed to announce startup", "channel_id", channelID, "error", err)
	}
}
