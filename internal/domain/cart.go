package domain

import "strings"

// CartLine is one user-selected entry in a shopping cart. Lines are
// consolidated by (lowercased name, quality); ID is zero for free-text
// lines that were never resolved against the inventory index.
type CartLine struct {
	Name     string  `json:"name"`
	Quality  Quality `json:"quality"`
	Quantity int     `json:"quantity"`
	ID       int     `json:"id,omitempty"`
}

// SameEntry reports whether another line consolidates into this one.
func (l CartLine) SameEntry(other CartLine) bool {
	return strings.EqualFold(l.Name, other.Name) && l.Quality == other.Quality
}

// Cart is one user's current selection.
type Cart struct {
	UserID string     `json:"user_id"`
	Lines  []CartLine `json:"lines"`
}

// TotalQuantity sums the quantities of every line.
func (c Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}
