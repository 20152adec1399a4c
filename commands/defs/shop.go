package defs

import "github.com/bwmarrin/discordgo"

var Shop = &discordgo.ApplicationCommand{
	Name:        "shop",
	Description: "Browse or buy from the server shop.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "view",
			Description: "List the items for sale",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "buy",
			Description: "Buy an item",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "item",
					Description:  "Item to buy",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
	},
}

var ShopAdmin = &discordgo.ApplicationCommand{
	Name:                     "shop-admin",
	Description:              "Manage the server shop.",
	DefaultMemberPermissions: perm(discordgo.PermissionAdministrator),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "add-item",
			Description: "Add an item to the shop",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Display name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "price",
					Description: "Currency price",
					Required:    true,
					MinValue:    float64Ptr(0),
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "description",
					Description: "Shown in the shop listing",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "xp_cost",
					Description: "XP charged on purchase",
					MinValue:    float64Ptr(0),
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "xp_gain",
					Description: "XP granted on purchase",
					MinValue:    float64Ptr(0),
				},
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "Role granted on purchase",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "quantity",
					Description: "Stock, -1 for unlimited",
					MinValue:    float64Ptr(-1),
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "remove-item",
			Description: "Remove an item from the shop",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "item",
					Description:  "Item to remove",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "set-currency",
			Description: "Rename the currency or change daily reward bounds",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Currency name",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "emoji",
					Description: "Currency emoji",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "daily_min",
					Description: "Smallest daily reward",
					MinValue:    float64Ptr(0),
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "daily_max",
					Description: "Largest daily reward",
					MinValue:    float64Ptr(0),
				},
			},
		},
	},
}
