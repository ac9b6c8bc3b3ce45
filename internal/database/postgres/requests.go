package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/repository"
)

// RequestRepository implements repository.Requests for PostgreSQL
type RequestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(pool *pgxpool.Pool) repository.Requests {
	return &RequestRepository{pool: pool}
}

// Archive records the request in its current state. The same request id
// is written once per lifecycle transition; the latest write wins.
func (r *RequestRepository) Archive(ctx context.Context, req domain.Request) error {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal request items: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO bank_requests
			(request_id, user_id, character_name, items, notes, status,
			 staff_notes, denial_reason, resolved_by, requested_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (request_id)
		DO UPDATE SET
			items = EXCLUDED.items,
			status = EXCLUDED.status,
			staff_notes = EXCLUDED.staff_notes,
			denial_reason = EXCLUDED.denial_reason,
			resolved_by = EXCLUDED.resolved_by,
			updated_at = NOW()`,
		req.ID, req.UserID, req.CharacterName, items, req.Notes, string(req.Status),
		req.StaffNotes, req.DenialReason, resolvedBy(req), req.RequestedAt)
	if err != nil {
		return fmt.Errorf("failed to archive request #%d: %w", req.ID, err)
	}
	return nil
}

// resolvedBy picks the acting staff identity for the current status.
func resolvedBy(req domain.Request) string {
	switch req.Status {
	case domain.RequestFulfilled:
		return req.FulfilledBy
	case domain.RequestDenied:
		return req.DeniedBy
	case domain.RequestPartiallyFulfilled:
		return req.PartialBy
	default:
		return ""
	}
}
