package utils

import (
	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/logging"
)

// SendPrivateMessage sends a direct message to a user. DM failures are
// expected (closed DMs, blocked bot) and only logged.
func SendPrivateMessage(s *discordgo.Session, userID, message string) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		logging.L().Warnw("failed to open DM channel", "user_id", userID, "error", err)
		return
	}
	if _, err := s.ChannelMessageSend(channel.ID, message); err != nil {
		logging.L().Warnw("failed to send DM", "user_id", userID, "error", err)
	}
}
