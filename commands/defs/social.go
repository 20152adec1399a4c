package defs

import "github.com/bwmarrin/discordgo"

var Marry = &discordgo.ApplicationCommand{
	Name:        "marry",
	Description: "Propose to another member.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The lucky member",
			Required:    true,
		},
	},
}

var Divorce = &discordgo.ApplicationCommand{
	Name:        "divorce",
	Description: "Dissolve a marriage.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "partner",
			Description:  "The partner to divorce, or everyone at once",
			Required:     true,
			Autocomplete: true,
		},
	},
}

var Partners = &discordgo.ApplicationCommand{
	Name:        "partners",
	Description: "See who a member is married to.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to look up, defaults to you",
		},
	},
}

var Profile = &discordgo.ApplicationCommand{
	Name:        "profile",
	Description: "Show a member's level, XP and balance.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to look up, defaults to you",
		},
	},
}

var Leaderboard = &discordgo.ApplicationCommand{
	Name:        "leaderboard",
	Description: "Show the server's top members.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "category",
			Description: "What to rank by",
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Levels", Value: "levels"},
				{Name: "Money", Value: "money"},
			},
		},
	},
}
