package discord

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// Inventory dumps are plain text; anything bigger than this is not one.
const maxDumpSize = 2 << 20

// BankCommand returns the staff bank maintenance command definition and
// handler: index status, refresh, and dump upload/removal.
func BankCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "bank",
		Description:              "Manage the guild bank inventory",
		DefaultMemberPermissions: &staffPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "status",
				Description: "Show the live inventory index counts",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "refresh",
				Description: "Rebuild the inventory index from stored dumps",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "upload",
				Description: "Upload a character inventory dump",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionAttachment,
						Name:        "file",
						Description: "Inventory dump text file",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "Remove a stored inventory dump",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "filename",
						Description: "Dump filename to remove",
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

		sub := getOptions(i)[0]

		switch sub.Name {
		case "status":
			status, err := b.Client.GetIndexStatus()
			if err != nil {
				slog.Error("Failed to get index status", "error", err)
				respondFriendlyError(s, i, err.Error())
				return
			}
			sendEmbed(s, i, createEmbed("🏦 Bank Index", formatIndexStatus(status), ColorSearch, FooterBankerStaff))

		case "refresh":
			status, err := b.Client.RefreshIndex()
			if err != nil {
				slog.Error("Failed to refresh index", "error", err)
				respondFriendlyError(s, i, err.Error())
				return
			}
			sendEmbed(s, i, createEmbed("🏦 Bank Index Rebuilt", formatIndexStatus(status), ColorCart, FooterBankerStaff))

		case "upload":
			attachmentID, ok := sub.Options[0].Value.(string)
			if !ok {
				respondError(s, i, MsgGenericError)
				return
			}
			attachment := i.ApplicationCommandData().Resolved.Attachments[attachmentID]
			if attachment == nil {
				respondError(s, i, MsgGenericError)
				return
			}
			if attachment.Size > maxDumpSize {
				respondError(s, i, "That file is too large to be an inventory dump.")
				return
			}

			content, err := downloadAttachment(attachment.URL)
			if err != nil {
				slog.Error("Failed to download attachment", "error", err, "file", attachment.Filename)
				respondError(s, i, "Couldn't download that file from Discord.")
				return
			}

			if err := b.Client.UploadFile(attachment.Filename, content); err != nil {
				slog.Error("Failed to store inventory dump", "error", err, "file", attachment.Filename)
				respondFriendlyError(s, i, err.Error())
				return
			}

			sendEmbed(s, i, createEmbed("🏦 Dump Stored",
				fmt.Sprintf("Stored **%s** (%d bytes). Run `/bank refresh` to index it.", attachment.Filename, len(content)),
				ColorCart, FooterBankerStaff))

		case "remove":
			filename := sub.Options[0].StringValue()
			if err := b.Client.DeleteFile(filename); err != nil {
				slog.Error("Failed to remove inventory dump", "error", err, "file", filename)
				respondFriendlyError(s, i, err.Error())
				return
			}
			sendEmbed(s, i, createEmbed("🏦 Dump Removed",
				fmt.Sprintf("Removed **%s**. Run `/bank refresh` to rebuild the index.", filename),
				ColorResolved, FooterBankerStaff))
		}
	}

	return cmd, handler
}

func formatIndexStatus(status IndexStatus) string {
	return fmt.Sprintf("Files: **%d**\nItems: **%d**\nSpells: **%d**\nBuilt: %s",
		status.Files, status.Items, status.Spells, status.BuiltAt.Format("2006-01-02 15:04:05 MST"))
}

// downloadAttachment fetches the attachment body from Discord's CDN.
func downloadAttachment(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("attachment fetch returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDumpSize))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
