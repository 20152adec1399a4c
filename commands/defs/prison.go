package defs

import "github.com/bwmarrin/discordgo"

var Imprison = &discordgo.ApplicationCommand{
	Name:                     "imprison",
	Description:              "Confine a member to a single channel.",
	DefaultMemberPermissions: perm(discordgo.PermissionModerateMembers),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to imprison",
			Required:    true,
		},
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "The channel they will be confined to",
			Required:     true,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the imprisonment",
		},
	},
}

var Release = &discordgo.ApplicationCommand{
	Name:                     "release",
	Description:              "Release an imprisoned member and restore their roles.",
	DefaultMemberPermissions: perm(discordgo.PermissionModerateMembers),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to release",
			Required:    true,
		},
	},
}

var Prisoners = &discordgo.ApplicationCommand{
	Name:                     "prisoners",
	Description:              "List currently imprisoned members.",
	DefaultMemberPermissions: perm(discordgo.PermissionModerateMembers),
}
