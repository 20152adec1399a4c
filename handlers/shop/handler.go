package shop

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

// HandleShop dispatches the shop subcommands: view and buy.
func HandleShop(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}
	switch options[0].Name {
	case "view":
		handleView(s, i, b)
	case "buy":
		handleBuy(s, i, b, options[0].Options)
	}
}

func handleView(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := b.Shop.Guild(i.GuildID)
	if len(data.Items) == 0 {
		utils.SendSimpleResponse(s, i, "The shop is empty.")
		return
	}

	ids := make([]string, 0, len(data.Items))
	for id := range data.Items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, c int) bool {
		return data.Items[ids[a]].DisplayName < data.Items[ids[c]].DisplayName
	})

	fields := make([]*discordgo.MessageEmbedField, 0, len(ids))
	for _, id := range ids {
		item := data.Items[id]
		var cost []string
		if item.Price > 0 {
			cost = append(cost, fmt.Sprintf("%s %d %s", data.Economy.CurrencyEmoji, item.Price, data.Economy.CurrencyName))
		}
		if item.XPCost > 0 {
			cost = append(cost, fmt.Sprintf("%d XP", item.XPCost))
		}
		if len(cost) == 0 {
			cost = append(cost, "free")
		}
		value := fmt.Sprintf("%s\nCost: %s", item.Description, strings.Join(cost, " + "))
		if item.Quantity >= 0 {
			value += fmt.Sprintf("\nStock: %d", item.Quantity)
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: item.DisplayName, Value: value})
	}
	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title:  "🛒 Shop",
		Color:  0x2ECC71,
		Fields: fields,
	})
}

func handleBuy(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, options []*discordgo.ApplicationCommandInteractionDataOption) {
	var itemID string
	for _, opt := range options {
		if opt.Name == "item" {
			itemID = opt.StringValue()
		}
	}

	item, err := Buy(b.Store, b.Shop, s, i.GuildID, i.Member.User.ID, itemID)
	switch {
	case err == nil:
		utils.SendPublicResponse(s, i, fmt.Sprintf("✅ %s bought **%s**!", i.Member.User.Mention(), item.DisplayName))
	case errors.Is(err, ErrUnknownItem):
		utils.SendErrorResponse(s, i, "That item does not exist.")
	case errors.Is(err, ErrOutOfStock):
		utils.SendErrorResponse(s, i, "That item is out of stock.")
	case errors.Is(err, ErrInsufficientFunds):
		utils.SendErrorResponse(s, i, "You cannot afford that item.")
	case errors.Is(err, ErrInsufficientXP):
		utils.SendErrorResponse(s, i, "You do not have enough XP for that item.")
	default:
		utils.SendErrorResponse(s, i, "The purchase failed.")
	}
}

// HandleShopAutocomplete completes the item option with the items whose
// names match the typed prefix. The focused option sits under a
// subcommand for both /shop buy and /shop-admin remove-item.
func HandleShopAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	typed := strings.ToLower(focusedValue(i.ApplicationCommandData().Options))

	data := b.Shop.Guild(i.GuildID)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 25)
	for id, item := range data.Items {
		if typed != "" && !strings.Contains(strings.ToLower(item.DisplayName), typed) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  item.DisplayName,
			Value: id,
		})
		if len(choices) == 25 {
			break
		}
	}
	sort.Slice(choices, func(a, c int) bool { return choices[a].Name < choices[c].Name })

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		logging.L().Warnw("failed to send autocomplete choices", "error", err)
	}
}

// HandleShopAdmin dispatches the shop-admin subcommands.
func HandleShopAdmin(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}
	sub := options[0]
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		opts[opt.Name] = opt
	}

	switch sub.Name {
	case "add-item":
		addItem(s, i, b, opts)
	case "remove-item":
		removeItem(s, i, b, opts)
	case "set-currency":
		setCurrency(s, i, b, opts)
	}
}

func addItem(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	item := model.ShopItem{
		DisplayName: opts["name"].StringValue(),
		Price:       opts["price"].IntValue(),
		Quantity:    -1,
	}
	if opt, ok := opts["description"]; ok {
		item.Description = opt.StringValue()
	}
	if opt, ok := opts["xp_cost"]; ok {
		item.XPCost = opt.IntValue()
	}
	if opt, ok := opts["xp_gain"]; ok {
		item.XPGain = opt.IntValue()
	}
	if opt, ok := opts["role"]; ok {
		if role := opt.RoleValue(s, i.GuildID); role != nil {
			item.RoleID = role.ID
		}
	}
	if opt, ok := opts["quantity"]; ok {
		item.Quantity = int(opt.IntValue())
	}

	id := uuid.NewString()
	err := b.Shop.UpdateGuild(i.GuildID, func(d *model.GuildShopData) {
		d.Items[id] = item
	})
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to save the item.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Added **%s** to the shop.", item.DisplayName))
}

func removeItem(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	itemID := opts["item"].StringValue()
	data := b.Shop.Guild(i.GuildID)
	item, ok := data.Items[itemID]
	if !ok {
		utils.SendErrorResponse(s, i, "That item does not exist.")
		return
	}

	err := b.Shop.UpdateGuild(i.GuildID, func(d *model.GuildShopData) {
		delete(d.Items, itemID)
	})
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to remove the item.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Removed **%s** from the shop.", item.DisplayName))
}

func setCurrency(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	err := b.Shop.UpdateGuild(i.GuildID, func(d *model.GuildShopData) {
		if opt, ok := opts["name"]; ok {
			d.Economy.CurrencyName = opt.StringValue()
		}
		if opt, ok := opts["emoji"]; ok {
			d.Economy.CurrencyEmoji = opt.StringValue()
		}
		if opt, ok := opts["daily_min"]; ok {
			d.Economy.DailyMin = opt.IntValue()
		}
		if opt, ok := opts["daily_max"]; ok {
			d.Economy.DailyMax = opt.IntValue()
		}
	})
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to update the economy settings.")
		return
	}
	economy := b.Shop.Guild(i.GuildID).Economy
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Currency is now %s **%s** (daily %d–%d).",
		economy.CurrencyEmoji, economy.CurrencyName, economy.DailyMin, economy.DailyMax))
}

func focusedValue(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range options {
		if opt.Focused {
			return opt.StringValue()
		}
		if v := focusedValue(opt.Options); v != "" {
			return v
		}
	}
	return ""
}
