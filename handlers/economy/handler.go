package economy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/patrickmn/go-cache"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

// HandleBalance shows a member's currency balance.
func HandleBalance(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := i.Member.User
	if opt, ok := opts["user"]; ok {
		if u := opt.UserValue(s); u != nil {
			target = u
		}
	}

	progress, err := b.Store.GetUserProgress(i.GuildID, target.ID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load the balance.")
		return
	}
	economy := b.Shop.Guild(i.GuildID).Economy
	utils.SendSimpleResponse(s, i, fmt.Sprintf("%s %s has **%d** %s.",
		economy.CurrencyEmoji, target.Username, progress.Money, economy.CurrencyName))
}

// HandleDaily pays out a random reward, claimable once per cooldown window.
func HandleDaily(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	userID := i.Member.User.ID
	key := i.GuildID + ":" + userID

	if expiry, onCooldown := cooldownRemaining(b, key); onCooldown {
		utils.SendErrorResponse(s, i, fmt.Sprintf("You already claimed your daily reward. Come back in %s.",
			expiry.Round(time.Minute)))
		return
	}

	economy := b.Shop.Guild(i.GuildID).Economy
	reward := economy.DailyMin
	if spread := economy.DailyMax - economy.DailyMin; spread > 0 {
		reward += rand.Int63n(spread + 1)
	}

	if err := b.Store.AddMoney(i.GuildID, userID, reward); err != nil {
		utils.SendErrorResponse(s, i, "Failed to pay out the reward.")
		return
	}
	b.DailyCooldowns.Set(key, time.Now(), cache.DefaultExpiration)

	utils.SendPublicResponse(s, i, fmt.Sprintf("%s You collected your daily **%d** %s!",
		economy.CurrencyEmoji, reward, economy.CurrencyName))
}

func cooldownRemaining(b *bot.Bot, key string) (time.Duration, bool) {
	claimed, expiry, found := b.DailyCooldowns.GetWithExpiration(key)
	if !found || claimed == nil {
		return 0, false
	}
	return time.Until(expiry), true
}

// HandleGive credits a member's balance. Admin only, gated by the command
// definition's default permissions.
func HandleGive(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	adjustBalance(s, i, b, 1)
}

// HandleTake debits a member's balance.
func HandleTake(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	adjustBalance(s, i, b, -1)
}

func adjustBalance(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, sign int64) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	amount := opts["amount"].IntValue()
	if target == nil {
		utils.SendErrorResponse(s, i, "Could not resolve the target user.")
		return
	}
	if amount <= 0 {
		utils.SendErrorResponse(s, i, "Amount must be positive.")
		return
	}
	if sign < 0 {
		// Never drive a balance below zero.
		progress, err := b.Store.GetUserProgress(i.GuildID, target.ID)
		if err != nil {
			utils.SendErrorResponse(s, i, "Failed to load the balance.")
			return
		}
		if amount > progress.Money {
			amount = progress.Money
		}
	}

	if err := b.Store.AddMoney(i.GuildID, target.ID, sign*amount); err != nil {
		utils.SendErrorResponse(s, i, "Failed to adjust the balance.")
		return
	}
	economy := b.Shop.Guild(i.GuildID).Economy
	verb := "Gave"
	preposition := "to"
	if sign < 0 {
		verb = "Took"
		preposition = "from"
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("%s %s **%d** %s %s %s.",
		economy.CurrencyEmoji, verb, amount, economy.CurrencyName, preposition, target.Mention()))
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}
