package prison

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

// PrisonerRoleName is the marker role applied to imprisoned members.
const PrisonerRoleName = "Prisoner"

var (
	// ErrNotImprisoned is returned by Release when the member has no
	// prison record. Callers treat it as a no-op, not a failure.
	ErrNotImprisoned = errors.New("member is not imprisoned")

	// ErrCorruptSnapshot is returned when a saved role snapshot cannot
	// be parsed. The record is kept so an operator can inspect it.
	ErrCorruptSnapshot = errors.New("saved role snapshot is corrupt")

	// ErrRoleOutranksBot is returned when restoring would require
	// assigning a role above the bot's highest role.
	ErrRoleOutranksBot = errors.New("saved role outranks the bot")

	// ErrTargetOutranksBot is returned when the target's highest role
	// sits at or above the bot's, so the bot cannot touch their roles.
	ErrTargetOutranksBot = errors.New("target outranks the bot")

	// ErrActorOutranked is returned when the invoking moderator does not
	// sit above the target in the role hierarchy.
	ErrActorOutranked = errors.New("moderator does not outrank the target")
)

// GuildEditor is the slice of the session the prison manager needs.
// *discordgo.Session satisfies it.
type GuildEditor interface {
	Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	GuildRoleCreate(guildID string, data *discordgo.RoleParams, options ...discordgo.RequestOption) (*discordgo.Role, error)
	GuildMemberEdit(guildID, userID string, data *discordgo.GuildMemberParams, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64, options ...discordgo.RequestOption) error
}

// RecordStore is the slice of the database the prison manager needs.
type RecordStore interface {
	AddPrisoner(guildID, userID, prisonChannelID, moderatorID, reason string, savedRoles *string) error
	GetPrisoner(guildID, userID string) (*model.PrisonRecord, error)
	RemovePrisoner(guildID, userID string) error
}

// Manager moves members in and out of quarantine. Administrators get their
// roles snapshotted and stripped, since the prisoner role's channel denials
// cannot contain them; everyone else keeps their roles and gets the
// prisoner role stacked on top.
type Manager struct {
	session GuildEditor
	store   RecordStore
	// BotUserID is the bot's own user ID, used for hierarchy checks.
	BotUserID string
}

func NewManager(session GuildEditor, store RecordStore, botUserID string) *Manager {
	return &Manager{session: session, store: store, BotUserID: botUserID}
}

// Imprison quarantines a member in channelID. Re-imprisoning overwrites
// the existing record but never the original role snapshot. The hierarchy
// is checked up front: the bot and the invoking moderator must both sit
// above the target before anything is touched.
func (m *Manager) Imprison(guildID, userID, channelID, moderatorID, reason string) error {
	guild, err := m.session.Guild(guildID)
	if err != nil {
		return fmt.Errorf("failed to load guild: %w", err)
	}

	member, err := m.session.GuildMember(guildID, userID)
	if err != nil {
		return fmt.Errorf("failed to load member: %w", err)
	}
	if err := m.checkHierarchy(guild, member, moderatorID); err != nil {
		return err
	}

	role, err := m.ensurePrisonerRole(guild)
	if err != nil {
		return err
	}

	// Let the prisoner see their cell. A failed grant is logged and the
	// imprisonment proceeds; the channel may already carry the overwrite.
	if err := m.session.ChannelPermissionSet(channelID, role.ID,
		discordgo.PermissionOverwriteTypeRole, discordgo.PermissionViewChannel, 0); err != nil {
		logging.L().Warnw("failed to grant prison channel access",
			"guild_id", guildID, "channel_id", channelID, "error", err)
	}

	var savedRoles *string
	if existing, err := m.store.GetPrisoner(guildID, userID); err != nil {
		return fmt.Errorf("failed to check existing record: %w", err)
	} else if existing != nil {
		// Already inside. Keep the first snapshot, the member's current
		// roles are just the prisoner role by now.
		savedRoles = existing.SavedRoles
	} else if utils.HasAdministrator(guild, member) {
		// An administrator sees every channel no matter what the
		// prisoner role denies, so their roles must come off. Keep the
		// snapshot to put them back on release.
		data, err := json.Marshal(member.Roles)
		if err != nil {
			return fmt.Errorf("failed to snapshot roles: %w", err)
		}
		snapshot := string(data)
		savedRoles = &snapshot
		roles := []string{role.ID}
		if _, err := m.session.GuildMemberEdit(guildID, userID, &discordgo.GuildMemberParams{Roles: &roles}); err != nil {
			return fmt.Errorf("failed to replace member roles: %w", err)
		}
	} else {
		// The channel denials are enough for a regular member, the
		// prisoner role just stacks on top.
		if err := m.session.GuildMemberRoleAdd(guildID, userID, role.ID); err != nil {
			return fmt.Errorf("failed to add prisoner role: %w", err)
		}
	}

	if err := m.store.AddPrisoner(guildID, userID, channelID, moderatorID, reason, savedRoles); err != nil {
		return fmt.Errorf("failed to record imprisonment: %w", err)
	}
	return nil
}

// Release restores a member's roles from the snapshot and removes the
// record. The record is deleted only once every platform action succeeded.
func (m *Manager) Release(guildID, userID string) error {
	record, err := m.store.GetPrisoner(guildID, userID)
	if err != nil {
		return fmt.Errorf("failed to load prison record: %w", err)
	}
	if record == nil {
		return ErrNotImprisoned
	}

	guild, err := m.session.Guild(guildID)
	if err != nil {
		return fmt.Errorf("failed to load guild: %w", err)
	}

	if record.SavedRoles != nil {
		var saved []string
		if err := json.Unmarshal([]byte(*record.SavedRoles), &saved); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
		// Roles deleted since the snapshot was taken cannot be
		// reassigned, drop them instead of tripping the API.
		restore := saved[:0]
		for _, id := range saved {
			if roleExists(guild, id) {
				restore = append(restore, id)
			}
		}
		if outranking := m.firstOutrankingRole(guild, restore); outranking != "" {
			return fmt.Errorf("%w: role %s", ErrRoleOutranksBot, outranking)
		}
		if _, err := m.session.GuildMemberEdit(guildID, userID, &discordgo.GuildMemberParams{Roles: &restore}); err != nil {
			return fmt.Errorf("failed to restore roles: %w", err)
		}
	} else if role := findRole(guild, PrisonerRoleName); role != nil {
		if err := m.session.GuildMemberRoleRemove(guildID, userID, role.ID); err != nil {
			return fmt.Errorf("failed to remove prisoner role: %w", err)
		}
	}

	if err := m.store.RemovePrisoner(guildID, userID); err != nil {
		return fmt.Errorf("failed to delete prison record: %w", err)
	}
	return nil
}

// checkHierarchy verifies the bot and the invoking moderator both sit above
// the target. When the moderator cannot be resolved the actor check is
// skipped; the API enforces its own hierarchy as a backstop.
func (m *Manager) checkHierarchy(guild *discordgo.Guild, target *discordgo.Member, moderatorID string) error {
	botMember, err := m.session.GuildMember(guild.ID, m.BotUserID)
	if err != nil {
		return fmt.Errorf("failed to load bot member: %w", err)
	}
	if highestPosition(guild, target.Roles) >= highestPosition(guild, botMember.Roles) {
		return ErrTargetOutranksBot
	}
	if actor, err := m.session.GuildMember(guild.ID, moderatorID); err == nil {
		if !utils.MemberOutranks(guild, actor, target) {
			return ErrActorOutranked
		}
	}
	return nil
}

// ensurePrisonerRole finds the marker role or creates it, denying it view
// access on every existing channel.
func (m *Manager) ensurePrisonerRole(guild *discordgo.Guild) (*discordgo.Role, error) {
	if role := findRole(guild, PrisonerRoleName); role != nil {
		return role, nil
	}

	perms := int64(0)
	role, err := m.session.GuildRoleCreate(guild.ID, &discordgo.RoleParams{
		Name:        PrisonerRoleName,
		Permissions: &perms,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create prisoner role: %w", err)
	}

	channels, err := m.session.GuildChannels(guild.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	for _, ch := range channels {
		if err := m.session.ChannelPermissionSet(ch.ID, role.ID,
			discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionViewChannel); err != nil {
			logging.L().Warnw("failed to deny channel for prisoner role",
				"guild_id", guild.ID, "channel_id", ch.ID, "error", err)
		}
	}
	return role, nil
}

func (m *Manager) firstOutrankingRole(guild *discordgo.Guild, roleIDs []string) string {
	botMember, err := m.session.GuildMember(guild.ID, m.BotUserID)
	if err != nil {
		// Cannot verify the hierarchy, refuse the restore.
		return "unknown"
	}
	botTop := highestPosition(guild, botMember.Roles)
	for _, id := range roleIDs {
		for _, role := range guild.Roles {
			if role.ID == id && role.Position >= botTop {
				return id
			}
		}
	}
	return ""
}

func roleExists(guild *discordgo.Guild, id string) bool {
	for _, role := range guild.Roles {
		if role.ID == id {
			return true
		}
	}
	return false
}

func findRole(guild *discordgo.Guild, name string) *discordgo.Role {
	for _, role := range guild.Roles {
		if role.Name == name {
			return role
		}
	}
	return nil
}

func highestPosition(guild *discordgo.Guild, roleIDs []string) int {
	top := 0
	for _, id := range roleIDs {
		for _, role := range guild.Roles {
			if role.ID == id && role.Position > top {
				top = role.Position
			}
		}
	}
	return top
}
