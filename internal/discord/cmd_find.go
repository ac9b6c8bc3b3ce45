package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Component custom id for the add-to-cart select under search results
const componentCartAdd = "cart_add"

// FindCommand returns the bank search command definition and handler
func FindCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "find",
		Description: "Search the guild bank for items, or spells with 'spell <class>'",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "Item name, or 'spell <class>' (e.g. 'spell necro')",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}

		query := getOptions(i)[0].StringValue()

		items, err := b.Client.Search(query)
		if err != nil {
			slog.Error("Failed to search bank", "error", err, "query", query)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(items) == 0 {
			sendEmbed(s, i, createEmbed("Bank Search", MsgNoResults, ColorSearch, ""))
			return
		}

		embed := createEmbed("Bank Search — "+query, formatSearchResults(items), ColorSearch, "")

		// Select menu so the user can cart a result without retyping it.
		// Discord caps select menus at 25 options, same as the result limit.
		options := make([]discordgo.SelectMenuOption, 0, len(items))
		for _, item := range items {
			options = append(options, discordgo.SelectMenuOption{
				Label: item.Name,
				Value: item.Name,
			})
		}

		components := []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    componentCartAdd,
						Placeholder: "Add an item to your cart",
						Options:     options,
					},
				},
			},
		}

		sendEmbedWithComponents(s, i, embed, components)
	}

	return cmd, handler
}

// HandleCartAddComponent adds the selected search result to the user's cart
func HandleCartAddComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}
	itemName := values[0]

	user := getInteractionUser(i)

	cart, err := b.Client.AddToCart(user.ID, itemName, "", 1)
	if err != nil {
		slog.Error("Failed to add item to cart", "error", err, "item", itemName)
		respondEphemeralMessage(s, i, formatFriendlyError(err.Error()))
		return
	}

	var msg strings.Builder
	msg.WriteString("🛒 Added **" + itemName + "** to your cart.\n\n")
	msg.WriteString(formatCartLines(cart))
	respondEphemeralMessage(s, i, msg.String())
}

// respondEphemeralMessage answers a component interaction with a message
// only the invoking user sees.
func respondEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error("Failed to respond to component interaction", "error", err)
	}
}
