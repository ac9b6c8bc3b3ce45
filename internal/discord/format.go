package discord

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

var titleCaser = cases.Title(language.English)

// displayClass renders a class keyword for embeds ("necromancer" -> "Necromancer")
func displayClass(class string) string {
	return titleCaser.String(class)
}

// formatItemLine renders one search result line with its per-quality counts.
// Qualities with a zero count are omitted.
func formatItemLine(item domain.Item) string {
	var parts []string
	if item.BaseCount > 0 {
		parts = append(parts, fmt.Sprintf("R:%d", item.BaseCount))
	}
	if item.EnchantedCount > 0 {
		parts = append(parts, fmt.Sprintf("E:%d", item.EnchantedCount))
	}
	if item.LegendaryCount > 0 {
		parts = append(parts, fmt.Sprintf("L:%d", item.LegendaryCount))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("**%s**", item.Name)
	}
	return fmt.Sprintf("**%s** (%s)", item.Name, strings.Join(parts, " "))
}

// formatSearchResults renders a result list for one embed description.
func formatSearchResults(items []domain.Item) string {
	var b strings.Builder
	for n, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", n+1, formatItemLine(item))
	}
	return b.String()
}

// formatRequestLine renders one request line with its resolution marker.
func formatRequestLine(line domain.RequestLine) string {
	qty := ""
	if line.Quantity > 1 {
		qty = fmt.Sprintf(" x%d", line.Quantity)
	}
	quality := ""
	if line.Quality != domain.QualityRaw {
		quality = fmt.Sprintf(" (%s)", titleCaser.String(string(line.Quality)))
	}

	switch line.Status {
	case domain.LineSuggested:
		return fmt.Sprintf("❔ %s%s%s — did you mean **%s**?", line.Name, quality, qty, line.SuggestedMatch)
	case domain.LineNeedsVerification:
		return fmt.Sprintf("⚠️ %s%s%s — not found in bank", line.Name, quality, qty)
	default:
		return fmt.Sprintf("✅ %s%s%s", line.Name, quality, qty)
	}
}

// formatRequestEmbed builds the staff-facing embed for a submitted request.
func formatRequestEmbed(req domain.Request) *discordEmbedData {
	var b strings.Builder
	for _, line := range req.Items {
		b.WriteString(formatRequestLine(line))
		b.WriteByte('\n')
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "\n📝 %s", req.Notes)
	}

	return &discordEmbedData{
		Title:       fmt.Sprintf("Bank Request #%d — %s", req.ID, req.CharacterName),
		Description: b.String(),
	}
}

// discordEmbedData is the minimal embed content formatRequestEmbed produces;
// callers attach color and footer.
type discordEmbedData struct {
	Title       string
	Description string
}

// formatCartLines renders the cart for an ephemeral response.
func formatCartLines(cart CartState) string {
	if len(cart.Lines) == 0 {
		return "Your cart is empty."
	}

	var b strings.Builder
	for _, line := range cart.Lines {
		quality := ""
		if line.Quality != domain.QualityRaw {
			quality = fmt.Sprintf(" (%s)", titleCaser.String(string(line.Quality)))
		}
		fmt.Fprintf(&b, "• **%s**%s x%d\n", line.Name, quality, line.Quantity)
	}
	fmt.Fprintf(&b, "\n%d item(s) total", cart.Total)
	return b.String()
}

// formatStatusLabel renders a request status for embeds.
func formatStatusLabel(status domain.RequestStatus) string {
	switch status {
	case domain.RequestPending:
		return "⏳ Pending"
	case domain.RequestFulfilled:
		return "✅ Fulfilled"
	case domain.RequestDenied:
		return "❌ Denied"
	case domain.RequestPartiallyFulfilled:
		return "📦 Partially Fulfilled"
	default:
		return string(status)
	}
}
