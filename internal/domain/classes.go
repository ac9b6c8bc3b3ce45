package domain

import "strings"

// Canonical class names, lowercased. These key the per-class item and spell
// lists in the inventory index.
var AllClasses = []string{
	"bard", "beastlord", "berserker", "cleric", "druid", "enchanter",
	"magician", "monk", "necromancer", "paladin", "ranger", "rogue",
	"shadowknight", "shaman", "warrior", "wizard",
}

// SpellcastingClasses are the classes that have a spell roster. Berserker,
// monk, rogue and warrior never cast and get no spellsByClass bucket of
// their own.
var SpellcastingClasses = []string{
	"bard", "beastlord", "cleric", "druid", "enchanter", "magician",
	"necromancer", "paladin", "ranger", "shaman", "shadowknight", "wizard",
}

// ClassAll is the class-neutral bucket for spells no class roster claims.
const ClassAll = "all"

// classAliases maps informal abbreviations to canonical class names.
// The table is closed: unknown aliases do not resolve.
var classAliases = map[string]string{
	"bard": "bard", "brd": "bard",
	"beastlord": "beastlord", "bst": "beastlord", "beast": "beastlord",
	"berserker": "berserker", "ber": "berserker",
	"cleric": "cleric", "clr": "cleric", "cle": "cleric",
	"druid": "druid", "dru": "druid",
	"enchanter": "enchanter", "enc": "enchanter", "ench": "enchanter",
	"magician": "magician", "mag": "magician", "mage": "magician",
	"monk": "monk", "mnk": "monk",
	"necromancer": "necromancer", "nec": "necromancer", "necro": "necromancer",
	"paladin": "paladin", "pal": "paladin", "pally": "paladin",
	"ranger": "ranger", "rng": "ranger", "ran": "ranger",
	"rogue": "rogue", "rog": "rogue",
	"shadowknight": "shadowknight", "shd": "shadowknight", "sk": "shadowknight",
	"shaman": "shaman", "sha": "shaman", "sham": "shaman",
	"warrior": "warrior", "war": "warrior",
	"wizard": "wizard", "wiz": "wizard",
	ClassAll: ClassAll,
}

// ResolveClassAlias maps an informal class abbreviation to its canonical
// name. Resolution is case-insensitive; ok is false for unknown aliases.
func ResolveClassAlias(alias string) (string, bool) {
	canonical, ok := classAliases[strings.ToLower(strings.TrimSpace(alias))]
	return canonical, ok
}

// IsSpellcastingClass reports whether the canonical class name casts spells.
func IsSpellcastingClass(class string) bool {
	for _, c := range SpellcastingClasses {
		if c == class {
			return true
		}
	}
	return false
}
