package marriage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/utils"
)

// ProposalTimeout is how long a proposal's buttons stay valid.
const ProposalTimeout = 3 * time.Minute

// Component custom IDs: marry_accept:<proposer>:<target>:<unix> and
// marry_decline:<proposer>:<target>:<unix>.
const (
	acceptPrefix  = "marry_accept:"
	declinePrefix = "marry_decline:"
)

// HandleMarry posts a proposal with accept and decline buttons.
func HandleMarry(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	proposer := i.Member.User
	if target == nil {
		utils.SendErrorResponse(s, i, "Could not resolve the target user.")
		return
	}
	if target.Bot {
		utils.SendErrorResponse(s, i, "Bots make terrible spouses.")
		return
	}
	if target.ID == proposer.ID {
		utils.SendErrorResponse(s, i, "You cannot marry yourself.")
		return
	}

	married, err := b.Store.AreMarried(i.GuildID, proposer.ID, target.ID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to check the registry.")
		return
	}
	if married {
		utils.SendErrorResponse(s, i, "You two are already married.")
		return
	}

	suffix := fmt.Sprintf("%s:%s:%d", proposer.ID, target.ID, time.Now().Unix())
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("💍 %s, %s is asking for your hand in marriage!", target.Mention(), proposer.Mention()),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "Accept", Style: discordgo.SuccessButton, CustomID: acceptPrefix + suffix},
					discordgo.Button{Label: "Decline", Style: discordgo.DangerButton, CustomID: declinePrefix + suffix},
				}},
			},
		},
	})
	if err != nil {
		logging.L().Errorw("failed to send proposal", "error", err)
	}
}

// IsProposalComponent reports whether the custom ID belongs to a proposal.
func IsProposalComponent(customID string) bool {
	return strings.HasPrefix(customID, acceptPrefix) || strings.HasPrefix(customID, declinePrefix)
}

// HandleProposalComponent resolves an accept or decline click. Only the
// proposed member may answer, and only within the proposal window.
func HandleProposalComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	customID := i.MessageComponentData().CustomID
	accepted := strings.HasPrefix(customID, acceptPrefix)
	suffix := strings.TrimPrefix(strings.TrimPrefix(customID, acceptPrefix), declinePrefix)
	parts := strings.Split(suffix, ":")
	if len(parts) != 3 {
		return
	}
	proposerID, targetID := parts[0], parts[1]
	proposedAt, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return
	}

	clicker := i.Member.User.ID
	if clicker != targetID {
		utils.SendSimpleResponse(s, i, "This proposal is not addressed to you.")
		return
	}
	if time.Since(time.Unix(proposedAt, 0)) > ProposalTimeout {
		closeProposal(s, i, fmt.Sprintf("💔 The proposal from <@%s> expired unanswered.", proposerID))
		return
	}
	if !accepted {
		closeProposal(s, i, fmt.Sprintf("💔 <@%s> declined the proposal from <@%s>.", targetID, proposerID))
		return
	}

	if err := b.Store.AddMarriage(i.GuildID, proposerID, targetID); err != nil {
		// Unique pair constraint: they married through a parallel proposal.
		closeProposal(s, i, "You two are already married.")
		return
	}
	closeProposal(s, i, fmt.Sprintf("💒 <@%s> and <@%s> are now married. Congratulations!", proposerID, targetID))
}

// closeProposal replaces the proposal message, dropping the buttons.
func closeProposal(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		logging.L().Errorw("failed to close proposal", "error", err)
	}
}

// HandleDivorce dissolves a marriage with the given partner, or every
// marriage at once when "all" is chosen.
func HandleDivorce(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	partnerID := opts["partner"].StringValue()
	userID := i.Member.User.ID

	if partnerID == "all" {
		partners, err := b.Store.GetPartners(i.GuildID, userID)
		if err != nil {
			utils.SendErrorResponse(s, i, "Failed to check the registry.")
			return
		}
		if len(partners) == 0 {
			utils.SendErrorResponse(s, i, "You are not married.")
			return
		}
		if err := b.Store.RemoveAllMarriages(i.GuildID, userID); err != nil {
			utils.SendErrorResponse(s, i, "Failed to file the divorce.")
			return
		}
		utils.SendPublicResponse(s, i,
			fmt.Sprintf("💔 %s divorced all %d of their partners.", i.Member.User.Mention(), len(partners)))
		return
	}

	married, err := b.Store.AreMarried(i.GuildID, userID, partnerID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to check the registry.")
		return
	}
	if !married {
		utils.SendErrorResponse(s, i, "You are not married to them.")
		return
	}
	if err := b.Store.RemoveMarriage(i.GuildID, userID, partnerID); err != nil {
		utils.SendErrorResponse(s, i, "Failed to file the divorce.")
		return
	}
	utils.SendPublicResponse(s, i,
		fmt.Sprintf("💔 %s and <@%s> are no longer married.", i.Member.User.Mention(), partnerID))
}

// HandleDivorceAutocomplete suggests the caller's current partners.
func HandleDivorceAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	partners, err := b.Store.GetPartners(i.GuildID, i.Member.User.ID)
	if err != nil {
		logging.L().Warnw("failed to load partners for autocomplete", "error", err)
		return
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(partners)+1)
	if len(partners) > 1 {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name: "Everyone", Value: "all",
		})
	}
	for _, id := range partners {
		name := id
		if m, err := s.State.Member(i.GuildID, id); err == nil && m.User != nil {
			name = m.User.Username
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: id})
		if len(choices) == 25 {
			break
		}
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		logging.L().Warnw("failed to send autocomplete choices", "error", err)
	}
}

// HandlePartners lists who a member is married to.
func HandlePartners(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	target := i.Member.User
	if opt, ok := opts["user"]; ok {
		if u := opt.UserValue(s); u != nil {
			target = u
		}
	}

	partners, err := b.Store.GetPartners(i.GuildID, target.ID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load the registry.")
		return
	}
	if len(partners) == 0 {
		utils.SendSimpleResponse(s, i, fmt.Sprintf("%s is not married.", target.Username))
		return
	}
	mentions := make([]string, 0, len(partners))
	for _, id := range partners {
		mentions = append(mentions, "<@"+id+">")
	}
	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("💞 Partners of %s", target.Username),
		Description: strings.Join(mentions, "\n"),
		Color:       0xE91E63,
	})
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}
