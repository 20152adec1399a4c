package commands

import (
	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/commands/defs"
)

// All returns every application command the bot registers.
func All() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		// moderation
		defs.Warn,
		defs.Warnings,
		defs.ClearWarns,
		defs.Kick,
		defs.Ban,
		defs.Unban,
		defs.Clear,
		defs.ModStats,
		defs.AutomodConfig,
		// prison
		defs.Imprison,
		defs.Release,
		defs.Prisoners,
		// social
		defs.Marry,
		defs.Divorce,
		defs.Partners,
		defs.Profile,
		defs.Leaderboard,
		// economy and shop
		defs.Balance,
		defs.Daily,
		defs.Give,
		defs.Take,
		defs.Shop,
		defs.ShopAdmin,
		// community
		defs.TicketConfig,
		defs.TicketPanel,
		defs.Suggest,
		defs.SuggestionsConfig,
		defs.Suggestion,
		defs.ServerConfig,
		defs.BotInfo,
	}
}
