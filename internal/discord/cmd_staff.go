package discord

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Modal custom id prefix for the deny-with-reason form
const modalDenyPrefix = "deny_modal:"

// Staff commands are restricted to members who can manage messages in the
// bank channel.
var staffPermission int64 = discordgo.PermissionManageMessages

// RequestsCommand returns the staff command listing active requests
func RequestsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "requests",
		Description:              "List active bank requests",
		DefaultMemberPermissions: &staffPermission,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferEphemeral(s, i) {
			return
		}

		requests, err := b.Client.ListRequests()
		if err != nil {
			slog.Error("Failed to list requests", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(requests) == 0 {
			sendEmbed(s, i, createEmbed("Active Requests", "No open requests. 🎉", ColorResolved, FooterBankerStaff))
			return
		}

		var b2 strings.Builder
		for _, req := range requests {
			fmt.Fprintf(&b2, "**#%d** %s — %s, %d line(s)\n",
				req.ID, formatStatusLabel(req.Status), req.CharacterName, len(req.Items))
		}
		sendEmbed(s, i, createEmbed("Active Requests", b2.String(), ColorRequest, FooterBankerStaff))
	}

	return cmd, handler
}

// FulfillCommand returns the staff fulfill command definition and handler
func FulfillCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "fulfill",
		Description:              "Mark a bank request fulfilled",
		DefaultMemberPermissions: &staffPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Request number",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferEphemeral(s, i) {
			return
		}

		id := int(getOptions(i)[0].IntValue())
		staff := getInteractionUser(i)

		resolved, err := b.Client.FulfillRequest(id, staff.Username)
		if err != nil {
			slog.Error("Failed to fulfill request", "error", err, "requestID", id)
			respondFriendlyError(s, i, err.Error())
			return
		}

		b.updateRequestMessage(s, i.ChannelID, resolved)
		sendEmbed(s, i, createEmbed(
			fmt.Sprintf("Request #%d", id),
			fmt.Sprintf("%s by **%s**.", formatStatusLabel(resolved.Status), staff.Username),
			ColorResolved, FooterBankerStaff))
	}

	return cmd, handler
}

// DenyCommand returns the staff deny command definition and handler
func DenyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "deny",
		Description:              "Deny a bank request",
		DefaultMemberPermissions: &staffPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Request number",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Why the request is denied",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "notes",
				Description: "Internal staff notes",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferEphemeral(s, i) {
			return
		}

		opts := optionMap(getOptions(i))
		id := int(opts["id"].IntValue())
		reason := opts["reason"].StringValue()
		notes := ""
		if opt, ok := opts["notes"]; ok {
			notes = opt.StringValue()
		}
		staff := getInteractionUser(i)

		resolved, err := b.Client.DenyRequest(id, staff.Username, reason, notes)
		if err != nil {
			slog.Error("Failed to deny request", "error", err, "requestID", id)
			respondFriendlyError(s, i, err.Error())
			return
		}

		b.updateRequestMessage(s, i.ChannelID, resolved)
		sendEmbed(s, i, createEmbed(
			fmt.Sprintf("Request #%d", id),
			fmt.Sprintf("%s by **%s**.\nReason: %s", formatStatusLabel(resolved.Status), staff.Username, reason),
			ColorDenied, FooterBankerStaff))
	}

	return cmd, handler
}

// PartialCommand returns the staff partial-fulfillment command definition
// and handler. The request stays open for a later fulfill or deny.
func PartialCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "partial",
		Description:              "Record a partial fulfillment; the request stays open",
		DefaultMemberPermissions: &staffPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Request number",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "sent",
				Description: "Items that were sent",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "unavailable",
				Description: "Items that were not available",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "notes",
				Description: "Internal staff notes",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferEphemeral(s, i) {
			return
		}

		opts := optionMap(getOptions(i))
		id := int(opts["id"].IntValue())
		sent := opts["sent"].StringValue()
		unavailable := ""
		if opt, ok := opts["unavailable"]; ok {
			unavailable = opt.StringValue()
		}
		notes := ""
		if opt, ok := opts["notes"]; ok {
			notes = opt.StringValue()
		}
		staff := getInteractionUser(i)

		updated, err := b.Client.PartialRequest(id, staff.Username, sent, unavailable, notes)
		if err != nil {
			slog.Error("Failed to record partial fulfillment", "error", err, "requestID", id)
			respondFriendlyError(s, i, err.Error())
			return
		}

		b.updateRequestMessage(s, i.ChannelID, updated)
		sendEmbed(s, i, createEmbed(
			fmt.Sprintf("Request #%d", id),
			fmt.Sprintf("%s by **%s**. The request stays open.", formatStatusLabel(updated.Status), staff.Username),
			ColorRequest, FooterBankerStaff))
	}

	return cmd, handler
}

// HandleFulfillComponent handles the Fulfill button under a request post
func HandleFulfillComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	id, ok := requestIDFromCustomID(i.MessageComponentData().CustomID, componentFulfillPrefix)
	if !ok {
		return
	}
	staff := getInteractionUser(i)

	resolved, err := b.Client.FulfillRequest(id, staff.Username)
	if err != nil {
		slog.Error("Failed to fulfill request", "error", err, "requestID", id)
		respondEphemeralMessage(s, i, formatFriendlyError(err.Error()))
		return
	}

	b.updateRequestMessage(s, i.ChannelID, resolved)
	respondEphemeralMessage(s, i, fmt.Sprintf("✅ Request #%d fulfilled.", id))
}

// HandleDenyComponent opens the deny-with-reason modal for a request post
func HandleDenyComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	id, ok := requestIDFromCustomID(i.MessageComponentData().CustomID, componentDenyPrefix)
	if !ok {
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: fmt.Sprintf("%s%d", modalDenyPrefix, id),
			Title:    fmt.Sprintf("Deny Request #%d", id),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  "reason",
							Label:     "Reason",
							Style:     discordgo.TextInputShort,
							Required:  true,
							MaxLength: 500,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  "notes",
							Label:     "Staff notes (optional)",
							Style:     discordgo.TextInputParagraph,
							Required:  false,
							MaxLength: 1000,
						},
					},
				},
			},
		},
	})
	if err != nil {
		slog.Error("Failed to open deny modal", "error", err)
	}
}

// HandleDenyModal denies the request with the reason entered in the modal
func HandleDenyModal(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	data := i.ModalSubmitData()
	id, ok := requestIDFromCustomID(data.CustomID, modalDenyPrefix)
	if !ok {
		return
	}

	reason := modalInputValue(data, "reason")
	notes := modalInputValue(data, "notes")
	staff := getInteractionUser(i)

	resolved, err := b.Client.DenyRequest(id, staff.Username, reason, notes)
	if err != nil {
		slog.Error("Failed to deny request", "error", err, "requestID", id)
		respondEphemeralMessage(s, i, formatFriendlyError(err.Error()))
		return
	}

	b.updateRequestMessage(s, i.ChannelID, resolved)
	respondEphemeralMessage(s, i, fmt.Sprintf("❌ Request #%d denied.", id))
}

// requestIDFromCustomID parses the request id out of a prefixed custom id.
func requestIDFromCustomID(customID, prefix string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimPrefix(customID, prefix))
	if err != nil || id < 1 {
		slog.Warn("Malformed component custom id", "customID", customID)
		return 0, false
	}
	return id, true
}
