package repository

import (
	"context"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

// InventoryFiles stores the raw inventory text dumps the index is built
// from, keyed by filename.
type InventoryFiles interface {
	// Upsert stores or replaces one dump.
	Upsert(ctx context.Context, name, content string) error

	// GetAll returns every stored dump ordered by filename.
	GetAll(ctx context.Context) ([]domain.InventoryFile, error)

	// Delete removes one dump by filename.
	Delete(ctx context.Context, name string) error
}
