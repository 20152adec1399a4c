package handlers

import (
	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/marriage"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/shop"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers/tickets"
)

func handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	// All commands are guild-scoped; component clicks from DMs carry no
	// member either.
	if i.Member == nil || i.Member.User == nil {
		return
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case marriage.IsProposalComponent(customID):
			marriage.HandleProposalComponent(s, i, b)
		case customID == tickets.OpenButtonID:
			tickets.HandleOpenTicket(s, i, b)
		case customID == tickets.CloseButtonID:
			tickets.HandleCloseTicket(s, i, b)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		switch i.ApplicationCommandData().Name {
		case "shop", "shop-admin":
			shop.HandleShopAutocomplete(s, i, b)
		case "divorce":
			marriage.HandleDivorceAutocomplete(s, i, b)
		}
	}
}
