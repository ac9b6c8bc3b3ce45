package domain

// Quality is the strength tier of a bank item. Each tier is tracked as an
// independent count on the item record rather than as a separate item.
type Quality string

const (
	QualityRaw       Quality = "raw"
	QualityEnchanted Quality = "enchanted"
	QualityLegendary Quality = "legendary"
)

// ParseQuality converts a string into a Quality, rejecting unknown values.
func ParseQuality(s string) (Quality, bool) {
	switch Quality(s) {
	case QualityRaw, QualityEnchanted, QualityLegendary:
		return Quality(s), true
	}
	return "", false
}

// Item is one entry in the bank inventory index.
// The index key is the lowercased Name; ID is classifier input only and is
// not guaranteed unique across quality variants of the same item.
type Item struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	BaseCount      int    `json:"base_count"`
	EnchantedCount int    `json:"enchanted_count"`
	LegendaryCount int    `json:"legendary_count"`
	Location       string `json:"location"`
	IsSpell        bool   `json:"is_spell"`
}

// TotalCount returns the stock across all quality tiers.
func (i Item) TotalCount() int {
	return i.BaseCount + i.EnchantedCount + i.LegendaryCount
}

// CountFor returns the stock for a single quality tier.
func (i Item) CountFor(q Quality) int {
	switch q {
	case QualityEnchanted:
		return i.EnchantedCount
	case QualityLegendary:
		return i.LegendaryCount
	default:
		return i.BaseCount
	}
}

// AddCount adds stock to a single quality tier.
func (i *Item) AddCount(q Quality, n int) {
	switch q {
	case QualityEnchanted:
		i.EnchantedCount += n
	case QualityLegendary:
		i.LegendaryCount += n
	default:
		i.BaseCount += n
	}
}

// AvailableQualities lists the tiers with stock, lowest first.
func (i Item) AvailableQualities() []Quality {
	var qualities []Quality
	if i.BaseCount > 0 {
		qualities = append(qualities, QualityRaw)
	}
	if i.EnchantedCount > 0 {
		qualities = append(qualities, QualityEnchanted)
	}
	if i.LegendaryCount > 0 {
		qualities = append(qualities, QualityLegendary)
	}
	return qualities
}

// HighestQuality returns the best tier with stock, defaulting to raw.
func (i Item) HighestQuality() Quality {
	switch {
	case i.LegendaryCount > 0:
		return QualityLegendary
	case i.EnchantedCount > 0:
		return QualityEnchanted
	default:
		return QualityRaw
	}
}
