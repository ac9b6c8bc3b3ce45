package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

func TestFormatItemLine(t *testing.T) {
	t.Run("single quality", func(t *testing.T) {
		line := formatItemLine(domain.Item{Name: "Water Flask", BaseCount: 5})
		assert.Equal(t, "**Water Flask** (R:5)", line)
	})

	t.Run("all qualities", func(t *testing.T) {
		line := formatItemLine(domain.Item{Name: "Sword of Flame", BaseCount: 2, EnchantedCount: 1, LegendaryCount: 3})
		assert.Equal(t, "**Sword of Flame** (R:2 E:1 L:3)", line)
	})

	t.Run("no stock shows name only", func(t *testing.T) {
		line := formatItemLine(domain.Item{Name: "Ghost Item"})
		assert.Equal(t, "**Ghost Item**", line)
	})
}

func TestFormatSearchResults(t *testing.T) {
	out := formatSearchResults([]domain.Item{
		{Name: "Velium Blue Diamond", BaseCount: 4},
		{Name: "Velium Tower Shield", BaseCount: 1},
	})
	assert.Equal(t, "1. **Velium Blue Diamond** (R:4)\n2. **Velium Tower Shield** (R:1)\n", out)
}

func TestFormatRequestLine(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		out := formatRequestLine(domain.RequestLine{
			CartLine: domain.CartLine{Name: "Velium Tower Shield", Quality: domain.QualityRaw, Quantity: 1},
			Status:   domain.LineConfirmed,
		})
		assert.Equal(t, "✅ Velium Tower Shield", out)
	})

	t.Run("confirmed with quantity and quality", func(t *testing.T) {
		out := formatRequestLine(domain.RequestLine{
			CartLine: domain.CartLine{Name: "Sword of Flame", Quality: domain.QualityEnchanted, Quantity: 2},
			Status:   domain.LineConfirmed,
		})
		assert.Equal(t, "✅ Sword of Flame (Enchanted) x2", out)
	})

	t.Run("suggested", func(t *testing.T) {
		out := formatRequestLine(domain.RequestLine{
			CartLine:       domain.CartLine{Name: "Velium Shield", Quality: domain.QualityRaw, Quantity: 1},
			Status:         domain.LineSuggested,
			SuggestedMatch: "Velium Tower Shield",
		})
		assert.Equal(t, "❔ Velium Shield — did you mean **Velium Tower Shield**?", out)
	})

	t.Run("needs verification", func(t *testing.T) {
		out := formatRequestLine(domain.RequestLine{
			CartLine: domain.CartLine{Name: "Rusty Dagger", Quality: domain.QualityRaw, Quantity: 1},
			Status:   domain.LineNeedsVerification,
		})
		assert.Equal(t, "⚠️ Rusty Dagger — not found in bank", out)
	})
}

func TestFormatRequestEmbed(t *testing.T) {
	embed := formatRequestEmbed(domain.Request{
		ID:            7,
		CharacterName: "Cogsworth",
		Notes:         "no rush",
		Items: []domain.RequestLine{
			{CartLine: domain.CartLine{Name: "Water Flask", Quality: domain.QualityRaw, Quantity: 1}, Status: domain.LineConfirmed},
		},
	})

	assert.Equal(t, "Bank Request #7 — Cogsworth", embed.Title)
	assert.Contains(t, embed.Description, "✅ Water Flask")
	assert.Contains(t, embed.Description, "📝 no rush")
}

func TestFormatCartLines(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		assert.Equal(t, "Your cart is empty.", formatCartLines(CartState{}))
	})

	t.Run("lines with totals", func(t *testing.T) {
		out := formatCartLines(CartState{
			Lines: []domain.CartLine{
				{Name: "Water Flask", Quality: domain.QualityRaw, Quantity: 2},
				{Name: "Sword of Flame", Quality: domain.QualityLegendary, Quantity: 1},
			},
			Total: 3,
		})
		assert.Contains(t, out, "• **Water Flask** x2")
		assert.Contains(t, out, "• **Sword of Flame** (Legendary) x1")
		assert.Contains(t, out, "3 item(s) total")
	})
}

func TestFormatStatusLabel(t *testing.T) {
	assert.Equal(t, "⏳ Pending", formatStatusLabel(domain.RequestPending))
	assert.Equal(t, "✅ Fulfilled", formatStatusLabel(domain.RequestFulfilled))
	assert.Equal(t, "❌ Denied", formatStatusLabel(domain.RequestDenied))
	assert.Equal(t, "📦 Partially Fulfilled", formatStatusLabel(domain.RequestPartiallyFulfilled))
}

func TestDisplayClass(t *testing.T) {
	assert.Equal(t, "Necromancer", displayClass("necromancer"))
	assert.Equal(t, "Shadowknight", displayClass("shadowknight"))
}
