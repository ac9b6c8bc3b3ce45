package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

// Component custom id prefixes for the staff buttons under a request post
const (
	componentFulfillPrefix = "req_fulfill:"
	componentDenyPrefix    = "req_deny:"
)

// postRequestNotification posts the staff-facing request embed to the bank
// channel, opens a discussion thread on it, and records the message ids on
// the request. Failures are logged but never surfaced to the requester;
// the request itself is already created.
func (b *Bot) postRequestNotification(s *discordgo.Session, guildID string, req domain.Request) {
	if guildID == "" {
		return
	}

	channel, err := b.findBankChannel(s, guildID)
	if err != nil {
		slog.Warn("Bank channel not found, skipping request notification", "error", err)
		return
	}

	embedData := formatRequestEmbed(req)
	embed := createEmbed(embedData.Title, embedData.Description, ColorRequest, FooterBankerStaff)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Status", Value: formatStatusLabel(req.Status), Inline: true},
		{Name: "Requested by", Value: fmt.Sprintf("<@%s>", req.UserID), Inline: true},
	}

	msg, err := s.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Fulfill",
						Style:    discordgo.SuccessButton,
						CustomID: fmt.Sprintf("%s%d", componentFulfillPrefix, req.ID),
					},
					discordgo.Button{
						Label:    "Deny",
						Style:    discordgo.DangerButton,
						CustomID: fmt.Sprintf("%s%d", componentDenyPrefix, req.ID),
					},
				},
			},
		},
	})
	if err != nil {
		slog.Error("Failed to post request notification", "error", err, "requestID", req.ID)
		return
	}

	threadID := ""
	thread, err := s.MessageThreadStartComplex(channel.ID, msg.ID, &discordgo.ThreadStart{
		Name:                fmt.Sprintf("Request #%d — %s", req.ID, req.CharacterName),
		AutoArchiveDuration: 1440,
	})
	if err != nil {
		slog.Warn("Failed to start request thread", "error", err, "requestID", req.ID)
	} else {
		threadID = thread.ID
	}

	if err := b.Client.SetMessageRef(req.ID, msg.ID, threadID); err != nil {
		slog.Warn("Failed to record message reference", "error", err, "requestID", req.ID)
	}
}

// updateRequestMessage rewrites the posted request embed after a staff
// action and strips the buttons once the request is terminal.
func (b *Bot) updateRequestMessage(s *discordgo.Session, channelID string, req domain.Request) {
	if req.MessageID == "" || channelID == "" {
		return
	}

	color := ColorResolved
	if req.Status == domain.RequestDenied {
		color = ColorDenied
	} else if req.Status == domain.RequestPartiallyFulfilled {
		color = ColorRequest
	}

	embedData := formatRequestEmbed(req)
	embed := createEmbed(embedData.Title, embedData.Description, color, FooterBankerStaff)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Status", Value: formatStatusLabel(req.Status), Inline: true},
		{Name: "Requested by", Value: fmt.Sprintf("<@%s>", req.UserID), Inline: true},
	}
	if req.DenialReason != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Reason", Value: req.DenialReason})
	}
	if req.SentItems != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Sent", Value: req.SentItems})
	}
	if req.UnavailableItems != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Unavailable", Value: req.UnavailableItems})
	}

	edit := discordgo.NewMessageEdit(channelID, req.MessageID)
	edit.Embeds = &[]*discordgo.MessageEmbed{embed}
	if req.Status.Terminal() {
		empty := []discordgo.MessageComponent{}
		edit.Components = &empty
	}

	if _, err := s.ChannelMessageEditComplex(edit); err != nil {
		slog.Warn("Failed to update request message", "error", err, "requestID", req.ID)
	}
}
