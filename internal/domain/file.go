package domain

import "time"

// InventoryFile is one raw inventory text dump as persisted, keyed by
// filename. Content is parsed on every index rebuild, never mutated.
type InventoryFile struct {
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
