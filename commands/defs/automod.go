package defs

import "github.com/bwmarrin/discordgo"

var AutomodConfig = &discordgo.ApplicationCommand{
	Name:                     "automod-config",
	Description:              "View or change the warning escalation tiers.",
	DefaultMemberPermissions: perm(discordgo.PermissionAdministrator),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "view",
			Description: "Show the current escalation tiers",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "set",
			Description: "Change escalation tiers. A threshold of 0 disables a tier.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "timeout_threshold",
					Description: "Warnings before a timeout",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "timeout_minutes",
					Description: "Timeout length in minutes",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "tempban_threshold",
					Description: "Warnings before a temporary ban",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "tempban_days",
					Description: "Temporary ban length in days",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "permban_threshold",
					Description: "Warnings before a permanent ban",
				},
			},
		},
	},
}
