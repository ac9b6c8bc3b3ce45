package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/event"
	"github.com/thj-dnt/clockwork-banker/internal/logger"
	"github.com/thj-dnt/clockwork-banker/internal/repository"
)

// RosterSource loads classification rosters for a refresh cycle.
type RosterSource interface {
	Load(ctx context.Context) (*Roster, error)
}

// Service owns the published inventory index and its rebuild lifecycle.
// Queries always observe a complete snapshot: a refresh builds the new
// index into fresh maps and publishes it with one atomic pointer swap.
type Service interface {
	// Search answers an interactive item or spell-class query.
	Search(ctx context.Context, query string) []domain.Item

	// Lookup finds one item by exact name, case-insensitively.
	Lookup(ctx context.Context, name string) (domain.Item, bool)

	// ResolveName resolves a free-text request line to an item.
	ResolveName(ctx context.Context, name string) (domain.Item, domain.LineStatus)

	// Refresh reloads dumps and rosters and rebuilds the index.
	Refresh(ctx context.Context) error

	// Snapshot returns the currently published index.
	Snapshot() *Index
}

type service struct {
	files     repository.InventoryFiles
	rosters   RosterSource
	publisher event.Bus

	idx atomic.Pointer[Index]
}

// NewService creates an inventory service starting from an empty index.
func NewService(files repository.InventoryFiles, rosters RosterSource, publisher event.Bus) Service {
	s := &service{
		files:     files,
		rosters:   rosters,
		publisher: publisher,
	}
	s.idx.Store(Build(nil, EmptyRoster()))
	return s
}

func (s *service) Snapshot() *Index {
	return s.idx.Load()
}

func (s *service) Search(ctx context.Context, query string) []domain.Item {
	results := s.Snapshot().Search(query)

	if s.publisher != nil {
		term := strings.ToLower(strings.TrimSpace(query))
		s.publisher.Publish(ctx, event.Event{
			Type: event.Type(domain.EventTypeSearchPerformed),
			Payload: domain.SearchPerformedPayload{
				Query:       query,
				ResultCount: len(results),
				SpellSearch: term == "spell" || term == "spells" || spellQueryRe.MatchString(term),
				Timestamp:   time.Now().Unix(),
			},
		})
	}

	return results
}

func (s *service) Lookup(_ context.Context, name string) (domain.Item, bool) {
	return s.Snapshot().Item(name)
}

func (s *service) ResolveName(_ context.Context, name string) (domain.Item, domain.LineStatus) {
	return s.Snapshot().ResolveName(name)
}

func (s *service) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)

	stored, err := s.files.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load inventory files: %w", err)
	}

	roster, err := s.rosters.Load(ctx)
	if err != nil {
		// An unavailable roster degrades classification, not indexing.
		log.Warn("Roster load failed, rebuilding without class data", "error", err)
		roster = EmptyRoster()
	}

	files := make([]File, 0, len(stored))
	for _, f := range stored {
		files = append(files, File{Name: f.Name, Content: f.Content})
	}

	idx := Build(files, roster)
	s.idx.Store(idx)

	log.Info("Inventory index rebuilt",
		"files", idx.FileCount(),
		"items", idx.ItemCount(),
		"spells", idx.SpellCount())

	if s.publisher != nil {
		s.publisher.Publish(ctx, event.Event{
			Type: event.Type(domain.EventTypeIndexRebuilt),
			Payload: domain.IndexRebuiltPayload{
				Files:     idx.FileCount(),
				Items:     idx.ItemCount(),
				Spells:    idx.SpellCount(),
				Timestamp: time.Now().Unix(),
			},
		})
	}

	return nil
}
