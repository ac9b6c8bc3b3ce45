package cart

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/event"
	"github.com/thj-dnt/clockwork-banker/internal/logger"
)

// Service is the per-user shopping cart store. Carts exist implicitly:
// the first access creates an empty one, and only submission or an
// explicit clear empties it. No size bound is enforced here; bounds
// belong to the presentation layer.
type Service interface {
	// Add puts a line in the user's cart, consolidating with an existing
	// line of the same name and quality.
	Add(ctx context.Context, userID string, line domain.CartLine) (domain.Cart, error)

	// Get returns the user's cart, creating an empty one on first access.
	Get(ctx context.Context, userID string) domain.Cart

	// Clear empties the user's cart.
	Clear(ctx context.Context, userID string)
}

type service struct {
	mu        sync.RWMutex
	carts     map[string][]domain.CartLine
	publisher event.Bus
}

// NewService creates an empty cart store.
func NewService(publisher event.Bus) Service {
	return &service{
		carts:     make(map[string][]domain.CartLine),
		publisher: publisher,
	}
}

func (s *service) Add(ctx context.Context, userID string, line domain.CartLine) (domain.Cart, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(line.Name) == "" {
		return domain.Cart{}, fmt.Errorf("%w: cart line needs a name", domain.ErrInvalidInput)
	}
	if _, ok := domain.ParseQuality(string(line.Quality)); !ok {
		return domain.Cart{}, fmt.Errorf("%w: unknown quality %q", domain.ErrInvalidInput, line.Quality)
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	s.mu.Lock()
	lines := s.carts[userID]
	merged := false
	for i := range lines {
		if lines[i].SameEntry(line) {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}
	s.carts[userID] = lines
	cart := snapshot(userID, lines)
	s.mu.Unlock()

	log.Debug("Cart line added",
		"userID", userID,
		"item", line.Name,
		"quality", line.Quality,
		"merged", merged)

	if s.publisher != nil {
		s.publisher.Publish(ctx, event.Event{
			Type: event.Type(domain.EventTypeItemCarted),
			Payload: domain.RequestEventPayload{
				UserID:    userID,
				ItemCount: line.Quantity,
				Timestamp: time.Now().Unix(),
			},
		})
	}

	return cart, nil
}

func (s *service) Get(_ context.Context, userID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[userID]; !ok {
		s.carts[userID] = nil
	}
	return snapshot(userID, s.carts[userID])
}

func (s *service) Clear(ctx context.Context, userID string) {
	s.mu.Lock()
	s.carts[userID] = nil
	s.mu.Unlock()

	logger.FromContext(ctx).Debug("Cart cleared", "userID", userID)
}

// snapshot copies the lines so callers cannot mutate the stored cart.
func snapshot(userID string, lines []domain.CartLine) domain.Cart {
	copied := make([]domain.CartLine, len(lines))
	copy(copied, lines)
	return domain.Cart{UserID: userID, Lines: copied}
}
