package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

// File is one raw inventory dump keyed by filename.
type File struct {
	Name    string
	Content string
}

// Index is an immutable snapshot of the classified bank inventory. A build
// produces a complete index which is then published by atomic swap, so
// readers never observe a partially populated one.
type Index struct {
	items         map[string]domain.Item
	itemsByClass  map[string][]domain.Item
	spellsByClass map[string][]domain.Item
	builtAt       time.Time
	fileCount     int
}

// Build constructs an index from raw inventory dumps and a roster. Files
// are processed in the order given, which makes name collisions resolve
// deterministically.
func Build(files []File, roster *Roster) *Index {
	idx := &Index{
		items:         make(map[string]domain.Item),
		itemsByClass:  make(map[string][]domain.Item),
		spellsByClass: make(map[string][]domain.Item),
		builtAt:       time.Now(),
		fileCount:     len(files),
	}

	for _, class := range domain.AllClasses {
		idx.itemsByClass[class] = nil
		idx.spellsByClass[class] = nil
	}
	idx.spellsByClass[domain.ClassAll] = nil

	for _, f := range files {
		for _, line := range ParseFile(f.Content) {
			item, ok := Classify(line, roster)
			if !ok || item.Name == "" || item.ID == 0 {
				continue
			}
			idx.add(item, roster)
		}
	}

	// Spell lists read back sorted by name.
	for class, spells := range idx.spellsByClass {
		sortItemsByName(spells)
		idx.spellsByClass[class] = spells
	}

	return idx
}

// add merges one classified item into the index maps.
func (idx *Index) add(item domain.Item, roster *Roster) {
	key := strings.ToLower(item.Name)

	if existing, ok := idx.items[key]; ok {
		// Quality variants of the same item share a name key; their counts
		// merge into the one record. Identity fields keep the first-seen
		// values so file order decides collisions.
		existing.BaseCount += item.BaseCount
		existing.EnchantedCount += item.EnchantedCount
		existing.LegendaryCount += item.LegendaryCount
		existing.IsSpell = existing.IsSpell || item.IsSpell
		idx.items[key] = existing
	} else {
		idx.items[key] = item
	}

	claimed := false
	for _, class := range roster.ClassesForItem(item.ID) {
		if item.IsSpell && domain.IsSpellcastingClass(class) {
			if !containsID(idx.spellsByClass[class], item.ID) {
				idx.spellsByClass[class] = append(idx.spellsByClass[class], item)
			}
		} else {
			if !containsID(idx.itemsByClass[class], item.ID) {
				idx.itemsByClass[class] = append(idx.itemsByClass[class], item)
			}
		}
		claimed = true
	}

	// Spells no class roster claims land in the neutral bucket.
	if item.IsSpell && !claimed {
		if !containsID(idx.spellsByClass[domain.ClassAll], item.ID) {
			idx.spellsByClass[domain.ClassAll] = append(idx.spellsByClass[domain.ClassAll], item)
		}
	}
}

func containsID(items []domain.Item, id int) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func sortItemsByName(items []domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}

// Item looks up an item by name, case-insensitively.
func (idx *Index) Item(name string) (domain.Item, bool) {
	item, ok := idx.items[strings.ToLower(name)]
	return item, ok
}

// ItemCount returns the number of distinct item names indexed.
func (idx *Index) ItemCount() int {
	return len(idx.items)
}

// SpellCount returns the number of distinct indexed spells.
func (idx *Index) SpellCount() int {
	count := 0
	for _, item := range idx.items {
		if item.IsSpell {
			count++
		}
	}
	return count
}

// SpellsForClass returns the sorted spell list for a canonical class name.
func (idx *Index) SpellsForClass(class string) []domain.Item {
	return idx.spellsByClass[class]
}

// ItemsForClass returns the usable-item list for a canonical class name.
func (idx *Index) ItemsForClass(class string) []domain.Item {
	return idx.itemsByClass[class]
}

// BuiltAt returns when this snapshot was constructed.
func (idx *Index) BuiltAt() time.Time {
	return idx.builtAt
}

// FileCount returns how many dumps fed this snapshot.
func (idx *Index) FileCount() int {
	return idx.fileCount
}

// sortedKeys returns the item name keys in lexicographic order, giving
// deterministic scans over the name-keyed map.
func (idx *Index) sortedKeys() []string {
	keys := make([]string, 0, len(idx.items))
	for k := range idx.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
