package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/repository"
)

// FileRepository implements repository.InventoryFiles for PostgreSQL
type FileRepository struct {
	pool *pgxpool.Pool
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(pool *pgxpool.Pool) repository.InventoryFiles {
	return &FileRepository{pool: pool}
}

// Upsert stores or replaces one inventory dump by filename
func (r *FileRepository) Upsert(ctx context.Context, name, content string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO inventory_files (filename, content, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (filename)
		DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()`,
		name, content)
	if err != nil {
		return fmt.Errorf("failed to upsert inventory file %q: %w", name, err)
	}
	return nil
}

// GetAll returns every stored dump ordered by filename so index builds
// process files deterministically
func (r *FileRepository) GetAll(ctx context.Context) ([]domain.InventoryFile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT filename, content, updated_at
		FROM inventory_files
		ORDER BY filename`)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory files: %w", err)
	}
	defer rows.Close()

	var files []domain.InventoryFile
	for rows.Next() {
		var f domain.InventoryFile
		if err := rows.Scan(&f.Name, &f.Content, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inventory file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory files: %w", err)
	}

	return files, nil
}

// Delete removes one dump by filename
func (r *FileRepository) Delete(ctx context.Context, name string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM inventory_files WHERE filename = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete inventory file %q: %w", name, err)
	}
	return nil
}
