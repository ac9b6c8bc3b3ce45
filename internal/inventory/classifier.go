package inventory

import (
	"regexp"
	"strings"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

// SpellChecker answers whether an item id belongs to any class's spell
// roster. The classifier takes it as an interface so it can be tested
// without loading real roster data.
type SpellChecker interface {
	IsSpellID(id int) bool
}

var (
	enchantedSuffixRe = regexp.MustCompile(`(?i)\(Enchanted\)$`)
	legendarySuffixRe = regexp.MustCompile(`(?i)\(Legendary\)$`)

	// Source dumps append stray counters to some names.
	trailingDigitsRe = regexp.MustCompile(`\s*\d+$`)
)

// splitQuality strips a trailing quality tag from the name. Absence of both
// tags means raw.
func splitQuality(name string) (string, domain.Quality) {
	if loc := enchantedSuffixRe.FindStringIndex(name); loc != nil {
		return strings.TrimSpace(name[:loc[0]]), domain.QualityEnchanted
	}
	if loc := legendarySuffixRe.FindStringIndex(name); loc != nil {
		return strings.TrimSpace(name[:loc[0]]), domain.QualityLegendary
	}
	return name, domain.QualityRaw
}

// stripTrailingDigits removes a stray trailing counter from the name. If
// stripping would leave nothing, the original name is kept.
func stripTrailingDigits(name string) string {
	stripped := strings.TrimSpace(trailingDigitsRe.ReplaceAllString(name, ""))
	if stripped == "" {
		return name
	}
	return stripped
}

// isSpellByName reports spell status from the name alone. Only the explicit
// spell/song prefixes count; anything else is not a spell by name.
func isSpellByName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "spell:") || strings.HasPrefix(lower, "song:")
}

// Classify turns a parsed line into an item record. The boolean is false
// when the record is an empty-slot placeholder that must not be indexed.
//
// Spell status uses exactly two signals, either sufficient: roster id
// membership, or the explicit name prefix. Keyword guessing is a search
// ranking heuristic only and never reaches this decision.
func Classify(p ParsedLine, spells SpellChecker) (domain.Item, bool) {
	name, quality := splitQuality(p.Name)
	name = stripTrailingDigits(name)

	item := domain.Item{
		ID:       p.ID,
		Name:     name,
		Location: p.Location,
		IsSpell:  spells.IsSpellID(p.ID) || isSpellByName(name),
	}
	item.AddCount(quality, p.Count)

	if item.TotalCount() == 0 && strings.Contains(strings.ToLower(item.Name), "empty") {
		return domain.Item{}, false
	}

	return item, true
}
