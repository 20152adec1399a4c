package shop

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/handlers/leveling"
	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
	"github.com/noasueur88-blip/lounge-senpai-3/shopdata"
)

var (
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrOutOfStock        = errors.New("item is out of stock")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrInsufficientXP    = errors.New("insufficient XP")
)

// ProgressStore is the slice of the database a purchase needs.
type ProgressStore interface {
	GetUserProgress(guildID, userID string) (*model.UserProgress, error)
	UpdateUserXP(guildID, userID string, xp int64, level int) error
	AddMoney(guildID, userID string, delta int64) error
}

// RoleAdder grants a role after a purchase. *discordgo.Session satisfies it.
type RoleAdder interface {
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
}

// Buy charges the member for the item, decrements stock, grants any role
// or XP the item carries, and returns the purchased item.
func Buy(store ProgressStore, shop *shopdata.Repository, session RoleAdder, guildID, userID, itemID string) (model.ShopItem, error) {
	data := shop.Guild(guildID)
	item, ok := data.Items[itemID]
	if !ok {
		return model.ShopItem{}, ErrUnknownItem
	}
	if item.Quantity == 0 {
		return model.ShopItem{}, ErrOutOfStock
	}

	progress, err := store.GetUserProgress(guildID, userID)
	if err != nil {
		return model.ShopItem{}, fmt.Errorf("failed to load progress: %w", err)
	}
	if progress.Money < item.Price {
		return model.ShopItem{}, ErrInsufficientFunds
	}
	if progress.XP < item.XPCost {
		return model.ShopItem{}, ErrInsufficientXP
	}

	// Charge first; stock is only decremented once the member has paid.
	if item.Price > 0 {
		if err := store.AddMoney(guildID, userID, -item.Price); err != nil {
			return model.ShopItem{}, fmt.Errorf("failed to charge balance: %w", err)
		}
	}
	if item.XPCost > 0 || item.XPGain > 0 {
		newXP := progress.XP - item.XPCost + item.XPGain
		if err := store.UpdateUserXP(guildID, userID, newXP, leveling.LevelFromXP(newXP)); err != nil {
			return model.ShopItem{}, fmt.Errorf("failed to adjust XP: %w", err)
		}
	}

	if item.Quantity > 0 {
		err := shop.UpdateGuild(guildID, func(d *model.GuildShopData) {
			stocked := d.Items[itemID]
			if stocked.Quantity > 0 {
				stocked.Quantity--
				d.Items[itemID] = stocked
			}
		})
		if err != nil {
			logging.L().Errorw("failed to decrement stock", "guild_id", guildID, "item_id", itemID, "error", err)
		}
	}

	if item.RoleID != "" {
		if err := session.GuildMemberRoleAdd(guildID, userID, item.RoleID); err != nil {
			logging.L().Errorw("purchase succeeded but role grant failed",
				"guild_id", guildID, "user_id", userID, "role_id", item.RoleID, "error", err)
		}
	}
	return item, nil
}
