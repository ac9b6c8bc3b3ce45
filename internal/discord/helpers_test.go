package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "item not found",
			in:   "API error: Item not found",
			want: MsgItemNotFound,
		},
		{
			name: "cart empty",
			in:   "API error: Your cart is empty. Add some items first.",
			want: MsgCartEmpty,
		},
		{
			name: "no items",
			in:   "API error: No items found in your request. Please check item names and try again.",
			want: MsgNoItems,
		},
		{
			name: "request not found",
			in:   "API error: Request not found",
			want: MsgRequestNotFound,
		},
		{
			name: "other errors keep the message",
			in:   "API error: Validation failed",
			want: "❌ Validation failed",
		},
		{
			name: "no prefix",
			in:   "connection refused",
			want: "❌ connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.in))
		})
	}
}

func TestRequestIDFromCustomID(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		id, ok := requestIDFromCustomID("req_fulfill:7", "req_fulfill:")
		assert.True(t, ok)
		assert.Equal(t, 7, id)
	})

	t.Run("non numeric", func(t *testing.T) {
		_, ok := requestIDFromCustomID("req_fulfill:abc", "req_fulfill:")
		assert.False(t, ok)
	})

	t.Run("zero id", func(t *testing.T) {
		_, ok := requestIDFromCustomID("req_fulfill:0", "req_fulfill:")
		assert.False(t, ok)
	})
}

func TestGetInteractionUser(t *testing.T) {
	t.Run("guild interaction uses member", func(t *testing.T) {
		user := &discordgo.User{ID: "123"}
		i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Member: &discordgo.Member{User: user},
		}}
		assert.Equal(t, user, getInteractionUser(i))
	})

	t.Run("dm interaction uses user", func(t *testing.T) {
		user := &discordgo.User{ID: "456"}
		i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{User: user}}
		assert.Equal(t, user, getInteractionUser(i))
	})
}

func TestModalInputValue(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "request_modal",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "character", Value: "Cogsworth"},
				},
			},
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "items", Value: "Water Flask 2"},
				},
			},
		},
	}

	assert.Equal(t, "Cogsworth", modalInputValue(data, "character"))
	assert.Equal(t, "Water Flask 2", modalInputValue(data, "items"))
	assert.Equal(t, "", modalInputValue(data, "missing"))
}

func TestCreateEmbed(t *testing.T) {
	t.Run("default footer", func(t *testing.T) {
		embed := createEmbed("Title", "Description", ColorSearch, "")
		assert.Equal(t, FooterBanker, embed.Footer.Text)
		assert.Equal(t, ColorSearch, embed.Color)
	})

	t.Run("custom footer", func(t *testing.T) {
		embed := createEmbed("Title", "Description", ColorDenied, FooterBankerStaff)
		assert.Equal(t, FooterBankerStaff, embed.Footer.Text)
	})
}
