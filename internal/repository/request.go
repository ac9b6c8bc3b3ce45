package repository

import (
	"context"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

// Requests archives bank requests for audit. The active set lives in
// memory; only submissions and staff resolutions are written through.
type Requests interface {
	// Archive records the request in its current state.
	Archive(ctx context.Context, req domain.Request) error
}
