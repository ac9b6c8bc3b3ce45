package discord

import (
	"github.com/bwmarrin/discordgo"
)

const helpText = `**Finding items**
` + "`/find <query>`" + ` — search the bank by item name
` + "`/find spell <class>`" + ` — list spells for a class (e.g. ` + "`/find spell necro`" + `)

**Building a request**
` + "`/add <item> [quality] [quantity]`" + ` — put an item in your cart
` + "`/cart view`" + ` / ` + "`/cart clear`" + ` — manage your cart
` + "`/cart submit <character>`" + ` — submit your cart as a request
` + "`/request`" + ` — paste a free-form item list instead

**For bank staff**
` + "`/requests`" + `, ` + "`/fulfill`" + `, ` + "`/deny`" + `, ` + "`/partial`" + `, ` + "`/bank`"

// HelpCommand returns the help command definition and handler
func HelpCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "bankhelp",
		Description: "How to use the guild bank bot",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferEphemeral(s, i) {
			return
		}
		sendEmbed(s, i, createEmbed("🏦 Clockwork Banker", helpText, ColorSearch, ""))
	}

	return cmd, handler
}
