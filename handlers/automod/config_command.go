package automod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/utils"
	"github.com/noasueur88-blip/lounge-senpai-3/utils/database"
)

// HandleConfig dispatches the automod-config subcommands: view and set.
func HandleConfig(s *discordgo.Session, i *discordgo.InteractionCreate, store *database.Store) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}
	sub := options[0]

	switch sub.Name {
	case "view":
		viewConfig(s, i, store)
	case "set":
		setConfig(s, i, store, sub.Options)
	}
}

func viewConfig(s *discordgo.Session, i *discordgo.InteractionCreate, store *database.Store) {
	cfg, err := store.GetAutomodConfig(i.GuildID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load the automod configuration.")
		return
	}

	describe := func(threshold int, action string) string {
		if threshold <= 0 {
			return "disabled"
		}
		return fmt.Sprintf("%d warnings → %s", threshold, action)
	}
	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title: "Automod escalation",
		Color: 0xE67E22,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Timeout", Value: describe(cfg.TimeoutThreshold, fmt.Sprintf("%d min timeout", cfg.TimeoutDurationMinutes))},
			{Name: "Temporary ban", Value: describe(cfg.TempBanThreshold, fmt.Sprintf("%d day ban", cfg.TempBanDurationDays))},
			{Name: "Permanent ban", Value: describe(cfg.PermBanThreshold, "permanent ban")},
		},
	})
}

func setConfig(s *discordgo.Session, i *discordgo.InteractionCreate, store *database.Store, options []*discordgo.ApplicationCommandInteractionDataOption) {
	cfg, err := store.GetAutomodConfig(i.GuildID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load the automod configuration.")
		return
	}

	for _, opt := range options {
		value := int(opt.IntValue())
		if value < 0 {
			utils.SendErrorResponse(s, i, "Thresholds and durations cannot be negative.")
			return
		}
		switch opt.Name {
		case "timeout_threshold":
			cfg.TimeoutThreshold = value
		case "timeout_minutes":
			cfg.TimeoutDurationMinutes = value
		case "tempban_threshold":
			cfg.TempBanThreshold = value
		case "tempban_days":
			cfg.TempBanDurationDays = value
		case "permban_threshold":
			cfg.PermBanThreshold = value
		}
	}

	if cfg.TimeoutThreshold > 0 && cfg.TimeoutDurationMinutes <= 0 {
		utils.SendErrorResponse(s, i, "The timeout tier needs a duration. Set timeout_minutes as well.")
		return
	}

	if err := store.SetAutomodConfig(i.GuildID, cfg); err != nil {
		utils.SendErrorResponse(s, i, "Failed to save the automod configuration.")
		return
	}
	utils.SendSimpleResponse(s, i, "Automod configuration updated.")
}
