package request

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/thj-dnt/clockwork-banker/internal/cart"
	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/event"
	"github.com/thj-dnt/clockwork-banker/internal/inventory"
	"github.com/thj-dnt/clockwork-banker/internal/logger"
	"github.com/thj-dnt/clockwork-banker/internal/repository"
)

// Submission source labels for events and metrics.
const (
	SourceCart     = "cart"
	SourceFreeText = "freetext"
)

// Service owns the bank request lifecycle: submission, the active set,
// and staff-driven state transitions. Request ids come from one
// process-lifetime counter starting at 1 and are never reused.
//
// Partially fulfilled requests stay in the active set and remain eligible
// for further fulfill, deny, or partial actions until a terminal outcome.
type Service interface {
	// SubmitCart converts the user's cart into a pending request and
	// empties the cart. Every cart line is confirmed by construction.
	SubmitCart(ctx context.Context, userID, characterName string) (domain.Request, error)

	// SubmitFreeText converts a multi-line item text into a pending
	// request, resolving each line against the inventory index.
	SubmitFreeText(ctx context.Context, userID, characterName, itemsText, notes string) (domain.Request, error)

	// Get returns an active request by id.
	Get(ctx context.Context, id int) (domain.Request, error)

	// Active lists the active set ordered by id.
	Active(ctx context.Context) []domain.Request

	// Fulfill marks a request fulfilled and removes it from the active set.
	Fulfill(ctx context.Context, id int, staff string) (domain.Request, error)

	// Deny marks a request denied and removes it from the active set.
	Deny(ctx context.Context, id int, staff, reason, staffNotes string) (domain.Request, error)

	// Partial marks a request partially fulfilled; it stays active. The
	// item lists are stored verbatim, never re-resolved.
	Partial(ctx context.Context, id int, staff, sentItems, unavailableItems, staffNotes string) (domain.Request, error)

	// SetMessageRef records the Discord message and thread ids for a
	// request so staff actions can find them later.
	SetMessageRef(ctx context.Context, id int, messageID, threadID string) error
}

type service struct {
	mu     sync.Mutex
	active map[int]*domain.Request
	nextID int

	carts     cart.Service
	inv       inventory.Service
	archive   repository.Requests
	publisher event.Bus
}

// NewService creates a request service with an empty active set.
func NewService(carts cart.Service, inv inventory.Service, archive repository.Requests, publisher event.Bus) Service {
	return &service{
		active:    make(map[int]*domain.Request),
		nextID:    1,
		carts:     carts,
		inv:       inv,
		archive:   archive,
		publisher: publisher,
	}
}

func (s *service) SubmitCart(ctx context.Context, userID, characterName string) (domain.Request, error) {
	log := logger.FromContext(ctx)

	userCart := s.carts.Get(ctx, userID)
	if len(userCart.Lines) == 0 {
		return domain.Request{}, domain.ErrCartEmpty
	}

	// Cart lines were only ever populated from confirmed index entries.
	items := make([]domain.RequestLine, 0, len(userCart.Lines))
	for _, line := range userCart.Lines {
		items = append(items, domain.RequestLine{CartLine: line, Status: domain.LineConfirmed})
	}

	req := s.create(userID, characterName, items, "")
	s.carts.Clear(ctx, userID)

	log.Info("Cart request submitted",
		"requestID", req.ID,
		"userID", userID,
		"character", characterName,
		"lines", len(items))

	s.recordSubmission(ctx, req, SourceCart)
	return req, nil
}

func (s *service) SubmitFreeText(ctx context.Context, userID, characterName, itemsText, notes string) (domain.Request, error) {
	log := logger.FromContext(ctx)

	var items []domain.RequestLine
	for _, raw := range strings.Split(itemsText, "\n") {
		parsed, ok := parseRequestLine(raw)
		if !ok {
			continue
		}
		items = append(items, s.resolveLine(ctx, parsed))
	}

	if len(items) == 0 {
		return domain.Request{}, domain.ErrNoItems
	}

	req := s.create(userID, characterName, items, notes)

	log.Info("Free-text request submitted",
		"requestID", req.ID,
		"userID", userID,
		"character", characterName,
		"lines", len(items))

	s.recordSubmission(ctx, req, SourceFreeText)
	return req, nil
}

// resolveLine tags one parsed line with its index resolution outcome.
func (s *service) resolveLine(ctx context.Context, parsed requestLine) domain.RequestLine {
	item, status := s.inv.ResolveName(ctx, parsed.Name)

	line := domain.RequestLine{
		CartLine: domain.CartLine{
			Name:     parsed.Name,
			Quality:  parsed.Quality,
			Quantity: parsed.Quantity,
		},
		Status: status,
	}

	switch status {
	case domain.LineConfirmed:
		// Take the canonical name from the index.
		line.Name = item.Name
		line.ID = item.ID
	case domain.LineSuggested:
		line.SuggestedMatch = item.Name
		line.ID = item.ID
	}

	return line
}

// create allocates the next id and installs a pending request in the
// active set.
func (s *service) create(userID, characterName string, items []domain.RequestLine, notes string) domain.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := &domain.Request{
		ID:            s.nextID,
		UserID:        userID,
		CharacterName: characterName,
		Items:         items,
		Notes:         notes,
		RequestedAt:   time.Now(),
		Status:        domain.RequestPending,
	}
	s.nextID++
	s.active[req.ID] = req
	return *req
}

func (s *service) Get(_ context.Context, id int) (domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.active[id]
	if !ok {
		return domain.Request{}, fmt.Errorf("%w: #%d", domain.ErrRequestNotFound, id)
	}
	return *req, nil
}

func (s *service) Active(_ context.Context) []domain.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests := make([]domain.Request, 0, len(s.active))
	for _, req := range s.active {
		requests = append(requests, *req)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	return requests
}

func (s *service) Fulfill(ctx context.Context, id int, staff string) (domain.Request, error) {
	// The in-memory transition happens before any archive I/O so reads
	// during the write never observe a pending request mid-fulfillment.
	s.mu.Lock()
	req, ok := s.active[id]
	if !ok {
		s.mu.Unlock()
		return domain.Request{}, fmt.Errorf("%w: #%d", domain.ErrRequestNotFound, id)
	}
	req.Status = domain.RequestFulfilled
	req.FulfilledBy = staff
	delete(s.active, id)
	resolved := *req
	s.mu.Unlock()

	logger.FromContext(ctx).Info("Request fulfilled", "requestID", id, "staff", staff)
	s.recordResolution(ctx, resolved, domain.EventTypeRequestFulfilled, staff)
	return resolved, nil
}

func (s *service) Deny(ctx context.Context, id int, staff, reason, staffNotes string) (domain.Request, error) {
	s.mu.Lock()
	req, ok := s.active[id]
	if !ok {
		s.mu.Unlock()
		return domain.Request{}, fmt.Errorf("%w: #%d", domain.ErrRequestNotFound, id)
	}
	req.Status = domain.RequestDenied
	req.DeniedBy = staff
	req.DenialReason = reason
	req.StaffNotes = staffNotes
	delete(s.active, id)
	resolved := *req
	s.mu.Unlock()

	logger.FromContext(ctx).Info("Request denied", "requestID", id, "staff", staff, "reason", reason)
	s.recordResolution(ctx, resolved, domain.EventTypeRequestDenied, staff)
	return resolved, nil
}

func (s *service) Partial(ctx context.Context, id int, staff, sentItems, unavailableItems, staffNotes string) (domain.Request, error) {
	s.mu.Lock()
	req, ok := s.active[id]
	if !ok {
		s.mu.Unlock()
		return domain.Request{}, fmt.Errorf("%w: #%d", domain.ErrRequestNotFound, id)
	}
	req.Status = domain.RequestPartiallyFulfilled
	req.PartialBy = staff
	req.SentItems = sentItems
	req.UnavailableItems = unavailableItems
	req.StaffNotes = staffNotes
	updated := *req
	s.mu.Unlock()

	logger.FromContext(ctx).Info("Request partially fulfilled", "requestID", id, "staff", staff)
	s.recordResolution(ctx, updated, domain.EventTypeRequestPartial, staff)
	return updated, nil
}

func (s *service) SetMessageRef(_ context.Context, id int, messageID, threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.active[id]
	if !ok {
		return fmt.Errorf("%w: #%d", domain.ErrRequestNotFound, id)
	}
	req.MessageID = messageID
	req.ThreadID = threadID
	return nil
}

// recordSubmission archives and publishes a new request.
func (s *service) recordSubmission(ctx context.Context, req domain.Request, source string) {
	if s.archive != nil {
		if err := s.archive.Archive(ctx, req); err != nil {
			logger.FromContext(ctx).Warn("Failed to archive request", "requestID", req.ID, "error", err)
		}
	}

	if s.publisher != nil {
		s.publisher.Publish(ctx, event.Event{
			Type: event.Type(domain.EventTypeRequestSubmitted),
			Payload: domain.RequestEventPayload{
				RequestID: req.ID,
				UserID:    req.UserID,
				Source:    source,
				ItemCount: len(req.Items),
				Timestamp: time.Now().Unix(),
			},
		})
	}
}

// recordResolution archives and publishes a staff action outcome.
func (s *service) recordResolution(ctx context.Context, req domain.Request, eventType string, staff string) {
	if s.archive != nil {
		if err := s.archive.Archive(ctx, req); err != nil {
			logger.FromContext(ctx).Warn("Failed to archive request", "requestID", req.ID, "error", err)
		}
	}

	if s.publisher != nil {
		s.publisher.Publish(ctx, event.Event{
			Type: event.Type(eventType),
			Payload: domain.RequestEventPayload{
				RequestID: req.ID,
				UserID:    req.UserID,
				Staff:     staff,
				ItemCount: len(req.Items),
				Timestamp: time.Now().Unix(),
			},
		})
	}
}
