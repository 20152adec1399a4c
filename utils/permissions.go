package utils

import "github.com/bwmarrin/discordgo"

// HighestRolePosition returns the position of the member's highest role.
// Members with no roles sit at the @everyone position (-1 here, below any
// assigned role).
func HighestRolePosition(guild *discordgo.Guild, member *discordgo.Member) int {
	highest := -1
	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Position > highest {
				highest = role.Position
			}
		}
	}
	return highest
}

// MemberOutranks reports whether actor's highest role is strictly above
// target's. The guild owner outranks everyone.
func MemberOutranks(guild *discordgo.Guild, actor, target *discordgo.Member) bool {
	if guild.OwnerID == actor.User.ID {
		return true
	}
	return HighestRolePosition(guild, actor) > HighestRolePosition(guild, target)
}

// HasAdministrator reports whether the member holds the administrator
// permission through any of their roles.
func HasAdministrator(guild *discordgo.Guild, member *discordgo.Member) bool {
	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Permissions&discordgo.PermissionAdministrator != 0 {
				return true
			}
		}
	}
	return false
}
