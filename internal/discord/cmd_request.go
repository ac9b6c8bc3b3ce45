package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Modal custom id for the free-text request form
const modalRequest = "request_modal"

// RequestCommand returns the free-text request command definition and
// handler. It opens a modal so the user can paste a multi-line item list.
func RequestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "request",
		Description: "Request items from the guild bank by name",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: &discordgo.InteractionResponseData{
				CustomID: modalRequest,
				Title:    "Bank Request",
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							discordgo.TextInput{
								CustomID:    "character",
								Label:       "Character name",
								Style:       discordgo.TextInputShort,
								Required:    true,
								MaxLength:   100,
								Placeholder: "Who should receive the items?",
							},
						},
					},
					discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							discordgo.TextInput{
								CustomID:    "items",
								Label:       "Items (one per line)",
								Style:       discordgo.TextInputParagraph,
								Required:    true,
								MaxLength:   4000,
								Placeholder: "Velium Tower Shield 2\nSword of Flame (Enchanted)",
							},
						},
					},
					discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							discordgo.TextInput{
								CustomID:  "notes",
								Label:     "Notes (optional)",
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
			slog.Error("Failed to open request modal", "error", err)
		}
	}

	return cmd, handler
}

// HandleRequestModal submits the pasted item list as a bank request
func HandleRequestModal(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	if !deferEphemeral(s, i) {
		return
	}

	user := getInteractionUser(i)
	data := i.ModalSubmitData()

	character := modalInputValue(data, "character")
	items := modalInputValue(data, "items")
	notes := modalInputValue(data, "notes")

	req, err := b.Client.SubmitRequest(user.ID, character, items, notes)
	if err != nil {
		slog.Error("Failed to submit request", "error", err, "userID", user.ID)
		respondFriendlyError(s, i, err.Error())
		return
	}

	b.postRequestNotification(s, i.GuildID, req)

	embedData := formatRequestEmbed(req)
	var desc strings.Builder
	desc.WriteString(embedData.Description)
	desc.WriteString("\n\nStaff will review your request shortly.")

	sendEmbed(s, i, createEmbed(embedData.Title, desc.String(), ColorRequest, ""))
}

// modalInputValue digs a text input value out of a modal submission.
func modalInputValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			input, ok := comp.(*discordgo.TextInput)
			if ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}
