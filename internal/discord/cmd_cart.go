package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// AddCommand returns the explicit add-to-cart command definition and handler.
// Unlike the search select menu this lets the user pick quality and quantity.
func AddCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "add",
		Description: "Add a bank item to your cart",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Exact item name from the bank",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "quality",
				Description: "Item quality (default: raw)",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Raw", Value: "raw"},
					{Name: "Enchanted", Value: "enchanted"},
					{Name: "Legendary", Value: "legendary"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "quantity",
				Description: "Quantity (default: 1)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferEphemeral(s, i) {
			return
		}

		user := getInteractionUser(i)
		opts := optionMap(getOptions(i))

		itemName := opts["item"].StringValue()
		quality := ""
		if opt, ok := opts["quality"]; ok {
			quality = opt.StringValue()
		}
		quantity := 1
		if opt, ok := opts["quantity"]; ok {
			quantity = int(opt.IntValue())
		}

		cart, err := b.Client.AddToCart(user.ID, itemName, quality, quantity)
		if err != nil {
			slog.Error("Failed to add item to cart", "error", err, "item", itemName)
			respondFriendlyError(s, i, err.Error())
			return
		}

		sendEmbed(s, i, createEmbed("🛒 Your Cart", formatCartLines(cart), ColorCart, ""))
	}

	return cmd, handler
}

// CartCommand returns the cart management command definition and handler
func CartCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "cart",
		Description: "View, clear, or submit your bank cart",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "view",
				Description: "Show your cart",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "clear",
				Description: "Empty your cart",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "submit",
				Description: "Submit your cart as a bank request",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "character",
						Description: "Character to deliver the items to",
						Required:    true,
					},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferEphemeral(s, i) {
			return
		}

		user := getInteractionUser(i)
		sub := getOptions(i)[0]

		switch sub.Name {
		case "view":
			cart, err := b.Client.GetCart(user.ID)
			if err != nil {
				slog.Error("Failed to get cart", "error", err, "userID", user.ID)
				respondFriendlyError(s, i, err.Error())
				return
			}
			sendEmbed(s, i, createEmbed("🛒 Your Cart", formatCartLines(cart), ColorCart, ""))

		case "clear":
			if err := b.Client.ClearCart(user.ID); err != nil {
				slog.Error("Failed to clear cart", "error", err, "userID", user.ID)
				respondFriendlyError(s, i, err.Error())
				return
			}
			sendEmbed(s, i, createEmbed("🛒 Your Cart", "Cart cleared.", ColorCart, ""))

		case "submit":
			character := sub.Options[0].StringValue()

			req, err := b.Client.SubmitCart(user.ID, character)
			if err != nil {
				slog.Error("Failed to submit cart", "error", err, "userID", user.ID)
				respondFriendlyError(s, i, err.Error())
				return
			}

			b.postRequestNotification(s, i.GuildID, req)
			sendEmbed(s, i, createEmbed(
				"📦 Request Submitted",
				fmt.Sprintf("%s\n\nYour request is **#%d**. Staff will be in touch.", formatRequestEmbed(req).Description, req.ID),
				ColorRequest, ""))
		}
	}

	return cmd, handler
}
