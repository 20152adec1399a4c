package defs

import "github.com/bwmarrin/discordgo"

var TicketConfig = &discordgo.ApplicationCommand{
	Name:                     "ticket-config",
	Description:              "Configure where support tickets open.",
	DefaultMemberPermissions: perm(discordgo.PermissionAdministrator),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "category",
			Description:  "Category new tickets open under",
			Required:     true,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory},
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "support_role",
			Description: "Role that can see tickets",
			Required:    true,
		},
	},
}

var TicketPanel = &discordgo.ApplicationCommand{
	Name:                     "ticket-panel",
	Description:              "Post the open-a-ticket panel in this channel.",
	DefaultMemberPermissions: perm(discordgo.PermissionAdministrator),
}

var Suggest = &discordgo.ApplicationCommand{
	Name:        "suggest",
	Description: "Submit a suggestion for the server.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "suggestion",
			Description: "Your suggestion",
			Required:    true,
		},
	},
}

var SuggestionsConfig = &discordgo.ApplicationCommand{
	Name:                     "suggestions-config",
	Description:              "Configure the suggestion channels.",
	DefaultMemberPermissions: perm(discordgo.PermissionAdministrator),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Channel where suggestions are collected",
			Required:     true,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "approved_channel",
			Description:  "Channel approved suggestions move to",
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "refused_channel",
			Description:  "Channel refused suggestions move to",
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
	},
}

var Suggestion = &discordgo.ApplicationCommand{
	Name:                     "suggestion",
	Description:              "Approve or refuse a suggestion.",
	DefaultMemberPermissions: perm(discordgo.PermissionManageMessages),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "approve",
			Description: "Approve a suggestion",
			Options:     verdictOptions(),
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "refuse",
			Description: "Refuse a suggestion",
			Options:     verdictOptions(),
		},
	},
}

func verdictOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message_id",
			Description: "Message ID of the suggestion",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the verdict",
		},
	}
}

var ServerConfig = &discordgo.ApplicationCommand{
	Name:                     "server-config",
	Description:              "View or change the server's channel settings.",
	DefaultMemberPermissions: perm(discordgo.PermissionAdministrator),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "view",
			Description: "Show the current settings",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "log-channel",
			Description: "Set the moderation log channel",
			Options:     channelSettingOptions("Channel moderation actions are logged to"),
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "feedback-channel",
			Description: "Set the feedback channel",
			Options:     channelSettingOptions("Channel member feedback goes to"),
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "birthday-channel",
			Description: "Set the birthday announcements channel",
			Options:     channelSettingOptions("Channel birthday announcements go to"),
		},
	},
}

func channelSettingOptions(description string) []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  description,
			Required:     true,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
	}
}

var BotInfo = &discordgo.ApplicationCommand{
	Name:        "botinfo",
	Description: "Show host and process statistics.",
}
