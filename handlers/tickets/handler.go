package tickets

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

const (
	OpenButtonID  = "ticket_open"
	CloseButtonID = "ticket_close"
)

// HandleTicketConfig stores the ticket category and support role.
func HandleTicketConfig(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	category := opts["category"].ChannelValue(s)
	role := opts["support_role"].RoleValue(s, i.GuildID)
	if category == nil || role == nil {
		utils.SendErrorResponse(s, i, "Could not resolve the category or role.")
		return
	}
	if category.Type != discordgo.ChannelTypeGuildCategory {
		utils.SendErrorResponse(s, i, "The ticket channel must be a category.")
		return
	}

	cfg := model.TicketConfig{TicketCategoryID: category.ID, SupportRoleID: role.ID}
	if err := b.Store.SetTicketConfig(i.GuildID, cfg); err != nil {
		utils.SendErrorResponse(s, i, "Failed to save the ticket configuration.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Tickets will open under <#%s> for <@&%s>.", category.ID, role.ID))
}

// HandleTicketPanel posts the public "open a ticket" panel.
func HandleTicketPanel(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cfg, err := b.Store.GetTicketConfig(i.GuildID)
	if err != nil || cfg.TicketCategoryID == "" {
		utils.SendErrorResponse(s, i, "Configure tickets first with /ticket-config.")
		return
	}

	_, err = s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "🎫 Support",
			Description: "Need help? Open a private ticket and the support team will be with you.",
			Color:       0x3498DB,
		}},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Open a ticket", Style: discordgo.PrimaryButton, CustomID: OpenButtonID},
			}},
		},
	})
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to post the panel.")
		return
	}
	utils.SendSimpleResponse(s, i, "Panel posted.")
}

// HandleOpenTicket creates a private channel for the clicking member.
func HandleOpenTicket(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cfg, err := b.Store.GetTicketConfig(i.GuildID)
	if err != nil || cfg.TicketCategoryID == "" {
		utils.SendErrorResponse(s, i, "Tickets are not configured on this server.")
		return
	}
	opener := i.Member.User

	name := "ticket-" + sanitizeChannelName(opener.Username)
	channel, err := s.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: cfg.TicketCategoryID,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			{ID: i.GuildID, Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
			{ID: opener.ID, Type: discordgo.PermissionOverwriteTypeMember, Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages},
			{ID: cfg.SupportRoleID, Type: discordgo.PermissionOverwriteTypeRole, Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages},
		},
	})
	if err != nil {
		logging.L().Errorw("failed to create ticket channel", "guild_id", i.GuildID, "error", err)
		utils.SendErrorResponse(s, i, "Failed to open the ticket.")
		return
	}

	_, err = s.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf("%s opened a ticket. <@&%s> will be with you shortly.", opener.Mention(), cfg.SupportRoleID),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Close ticket", Style: discordgo.DangerButton, CustomID: CloseButtonID},
			}},
		},
	})
	if err != nil {
		logging.L().Warnw("failed to greet in ticket channel", "channel_id", channel.ID, "error", err)
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Your ticket is open: <#%s>", channel.ID))
}

// HandleCloseTicket deletes the ticket channel.
func HandleCloseTicket(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	channel, err := s.Channel(i.ChannelID)
	if err != nil || !strings.HasPrefix(channel.Name, "ticket-") {
		utils.SendErrorResponse(s, i, "This button only works inside a ticket channel.")
		return
	}

	utils.SendPublicResponse(s, i, "Closing the ticket...")
	if _, err := s.ChannelDelete(i.ChannelID); err != nil {
		logging.L().Errorw("failed to delete ticket channel", "channel_id", i.ChannelID, "error", err)
	}
}

// sanitizeChannelName lowercases and strips what Discord rejects in
// channel names.
func sanitizeChannelName(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteRune('-')
		}
	}
	if sb.Len() == 0 {
		return "member"
	}
	return sb.String()
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}
