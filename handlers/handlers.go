package handlers

import (
	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/automod"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/economy"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/leveling"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/marriage"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/moderation"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/prison"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/shop"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/suggestions"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/tickets"
)

// Register wires every gateway event handler onto the session.
func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)

	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleInteractionCreate(s, i, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		leveling.HandleMessage(s, m, b)
		b.Spam.HandleMessage(s, m)
	})
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"warn": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			moderation.HandleWarn(s, i, b)
		},
		"warnings": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			moderation.HandleWarnings(s, i, b)
		},
		"clearwarns": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			moderation.HandleClearWarns(s, i, b)
		},
		"kick": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			moderation.HandleKick(s, i, b)
		},
		"ban": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			moderation.HandleBan(s, i, b)
		},
		"unban": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			moderation.HandleUnban(s, i, b)
		},
		"clear": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			moderation.HandleClear(s, i, b)
		},
		"mod-stats": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			moderation.HandleModStats(s, i, b)
		},
		"automod-config": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			automod.HandleConfig(s, i, b.Store)
		},
		"imprison": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			prison.HandleImprison(s, i, b)
		},
		"release": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			prison.HandleRelease(s, i, b)
		},
		"prisoners": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			prison.HandlePrisoners(s, i, b)
		},
		"marry": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			marriage.HandleMarry(s, i, b)
		},
		"divorce": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			marriage.HandleDivorce(s, i, b)
		},
		"partners": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			marriage.HandlePartners(s, i, b)
		},
		"profile": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			leveling.HandleProfile(s, i, b)
		},
		"leaderboard": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			leveling.HandleLeaderboard(s, i, b)
		},
		"balance": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			economy.HandleBalance(s, i, b)
		},
		"daily": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			economy.HandleDaily(s, i, b)
		},
		"give": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			economy.HandleGive(s, i, b)
		},
		"take": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			economy.HandleTake(s, i, b)
		},
		"shop": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			shop.HandleShop(s, i, b)
		},
		"shop-admin": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			shop.HandleShopAdmin(s, i, b)
		},
		"ticket-config": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			tickets.HandleTicketConfig(s, i, b)
		},
		"ticket-panel": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			tickets.HandleTicketPanel(s, i, b)
		},
		"suggest": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			suggestions.HandleSuggest(s, i, b)
		},
		"suggestions-config": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			suggestions.HandleSuggestionsConfig(s, i, b)
		},
		"suggestion": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			suggestions.HandleSuggestionVerdict(s, i, b)
		},
		"server-config": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleServerConfig(s, i, b)
		},
		"botinfo": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleBotInfo(s, i, b)
		},
	}
}
