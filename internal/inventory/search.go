package inventory

import (
	"regexp"
	"strings"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

// MaxSearchResults caps every interactive search, matching what a result
// embed can present.
const MaxSearchResults = 25

var spellQueryRe = regexp.MustCompile(`^spells?\s+(\w+)(?:\s+(.*))?$`)

// Search answers a free-text query against the index. "spell <class>"
// queries return the class's spell list through the alias table; anything
// else substring-matches non-spell item names. Results are sorted by name
// and capped at MaxSearchResults. Search never mutates the index.
func (idx *Index) Search(query string) []domain.Item {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	if term == "spell" || term == "spells" {
		return idx.searchSpells(domain.ClassAll, "")
	}

	if match := spellQueryRe.FindStringSubmatch(term); match != nil {
		token := match[1]
		extra := strings.TrimSpace(match[2])

		class, ok := domain.ResolveClassAlias(token)
		if !ok {
			// Unknown alias: keep the raw token so the classname heuristic
			// against the neutral bucket still has a chance.
			class = token
		}
		return idx.searchSpells(class, extra)
	}

	return idx.searchItems(term)
}

// searchItems substring-matches the term against every non-spell name key.
func (idx *Index) searchItems(term string) []domain.Item {
	var results []domain.Item
	for _, key := range idx.sortedKeys() {
		item := idx.items[key]
		if item.IsSpell {
			continue
		}
		if strings.Contains(key, term) {
			results = append(results, item)
			if len(results) >= MaxSearchResults {
				break
			}
		}
	}
	return results
}

// searchSpells returns a class's spell list, optionally narrowed by a
// trailing free-text term.
func (idx *Index) searchSpells(class, term string) []domain.Item {
	var results []domain.Item

	if class == domain.ClassAll {
		// Merge every class list plus the neutral bucket, de-duplicated by
		// lowercased name.
		seen := make(map[string]struct{})
		merge := func(spells []domain.Item) {
			for _, spell := range spells {
				key := strings.ToLower(spell.Name)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				results = append(results, spell)
			}
		}
		for _, c := range domain.SpellcastingClasses {
			merge(idx.spellsByClass[c])
		}
		merge(idx.spellsByClass[domain.ClassAll])
	} else {
		results = append(results, idx.spellsByClass[class]...)

		// Unclaimed spells whose name mentions the class still belong in
		// the class view. Heuristic for ranking only; it never decides
		// spell status.
		for _, spell := range idx.spellsByClass[domain.ClassAll] {
			if strings.Contains(strings.ToLower(spell.Name), class) && !containsID(results, spell.ID) {
				results = append(results, spell)
			}
		}
	}

	if term != "" {
		filtered := results[:0]
		for _, spell := range results {
			if strings.Contains(strings.ToLower(spell.Name), term) {
				filtered = append(filtered, spell)
			}
		}
		results = filtered
	}

	sortItemsByName(results)
	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	return results
}

// ResolveName resolves a free-text item name against the index. Exact
// name-key hits are confirmed; otherwise a containment scan in either
// direction yields a suggested match; otherwise the line needs staff
// verification. The scan walks names in sorted order so the suggestion is
// deterministic.
func (idx *Index) ResolveName(name string) (domain.Item, domain.LineStatus) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return domain.Item{}, domain.LineNeedsVerification
	}

	if item, ok := idx.items[lower]; ok {
		return item, domain.LineConfirmed
	}

	for _, key := range idx.sortedKeys() {
		if strings.Contains(key, lower) || strings.Contains(lower, key) {
			return idx.items[key], domain.LineSuggested
		}
	}

	return domain.Item{}, domain.LineNeedsVerification
}
