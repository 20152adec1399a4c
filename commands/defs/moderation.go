package defs

import "github.com/bwmarrin/discordgo"

var Warn = &discordgo.ApplicationCommand{
	Name:                     "warn",
	Description:              "Warn a member. Escalation applies automatically.",
	DefaultMemberPermissions: perm(discordgo.PermissionModerateMembers),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to warn",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the warning",
			Required:    true,
		},
	},
}

var Warnings = &discordgo.ApplicationCommand{
	Name:                     "warnings",
	Description:              "List a member's warnings.",
	DefaultMemberPermissions: perm(discordgo.PermissionModerateMembers),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to inspect",
			Required:    true,
		},
	},
}

var ClearWarns = &discordgo.ApplicationCommand{
	Name:                     "clearwarns",
	Description:              "Remove all warnings from a member.",
	DefaultMemberPermissions: perm(discordgo.PermissionModerateMembers),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to clear",
			Required:    true,
		},
	},
}

var Kick = &discordgo.ApplicationCommand{
	Name:                     "kick",
	Description:              "Kick a member from the server.",
	DefaultMemberPermissions: perm(discordgo.PermissionKickMembers),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to kick",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the kick",
			Required:    true,
		},
	},
}

var Ban = &discordgo.ApplicationCommand{
	Name:                     "ban",
	Description:              "Ban a member, permanently or for a duration.",
	DefaultMemberPermissions: perm(discordgo.PermissionBanMembers),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to ban",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the ban",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duration",
			Description: "Optional duration like 30m, 12h or 3d. Omit for permanent.",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "delete_messages",
			Description: "Also delete the member's messages from the last N days (0-7)",
			Required:    false,
			MinValue:    float64Ptr(0),
			MaxValue:    7,
		},
	},
}

var Unban = &discordgo.ApplicationCommand{
	Name:                     "unban",
	Description:              "Lift a ban by user ID.",
	DefaultMemberPermissions: perm(discordgo.PermissionBanMembers),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "user_id",
			Description: "ID of the banned user",
			Required:    true,
		},
	},
}

var Clear = &discordgo.ApplicationCommand{
	Name:                     "clear",
	Description:              "Bulk-delete recent messages in this channel.",
	DefaultMemberPermissions: perm(discordgo.PermissionManageMessages),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: "How many messages to delete (1-100)",
			Required:    true,
			MinValue:    float64Ptr(1),
			MaxValue:    100,
		},
	},
}

var ModStats = &discordgo.ApplicationCommand{
	Name:                     "mod-stats",
	Description:              "Show which moderators issued warnings recently.",
	DefaultMemberPermissions: perm(discordgo.PermissionModerateMembers),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "period",
			Description: "Time window like 24h or 7d (default 7d)",
			Required:    false,
		},
	},
}

func float64Ptr(f float64) *float64 { return &f }
