package defs

import "github.com/bwmarrin/discordgo"

var Balance = &discordgo.ApplicationCommand{
	Name:        "balance",
	Description: "Show a member's currency balance.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to look up, defaults to you",
		},
	},
}

var Daily = &discordgo.ApplicationCommand{
	Name:        "daily",
	Description: "Collect your daily reward.",
}

var Give = &discordgo.ApplicationCommand{
	Name:                     "give",
	Description:              "Credit currency to a member.",
	DefaultMemberPermissions: perm(discordgo.PermissionAdministrator),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to credit",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: "Amount to add",
			Required:    true,
			MinValue:    float64Ptr(1),
		},
	},
}

var Take = &discordgo.ApplicationCommand{
	Name:                     "take",
	Description:              "Debit currency from a member.",
	DefaultMemberPermissions: perm(discordgo.PermissionAdministrator),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to debit",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: "Amount to remove",
			Required:    true,
			MinValue:    float64Ptr(1),
		},
	},
}
