package request

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thj-dnt/clockwork-banker/internal/cart"
	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/event"
	"github.com/thj-dnt/clockwork-banker/internal/inventory"
)

type stubFiles struct {
	files []domain.InventoryFile
}

func (s *stubFiles) Upsert(context.Context, string, string) error { return nil }
func (s *stubFiles) Delete(context.Context, string) error         { return nil }
func (s *stubFiles) GetAll(context.Context) ([]domain.InventoryFile, error) {
	return s.files, nil
}

type stubRosters struct{}

func (stubRosters) Load(context.Context) (*inventory.Roster, error) {
	return inventory.EmptyRoster(), nil
}

type stubArchive struct {
	archived []domain.Request
	err      error
}

func (s *stubArchive) Archive(_ context.Context, req domain.Request) error {
	s.archived = append(s.archived, req)
	return s.err
}

// fixture wires a request service against a small indexed bank.
type fixture struct {
	requests Service
	carts    cart.Service
	archive  *stubArchive
	bus      event.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	files := &stubFiles{files: []domain.InventoryFile{
		{Name: "banker1.txt", Content: "Bank1-Slot1\tVelium Tower Shield\t2001\t5\t1\n" +
			"Bank1-Slot2\tWater Flask\t10010\t5\t1\n"},
	}}

	bus := event.NewBus()
	inv := inventory.NewService(files, stubRosters{}, nil)
	require.NoError(t, inv.Refresh(context.Background()))

	carts := cart.NewService(nil)
	archive := &stubArchive{}

	return &fixture{
		requests: NewService(carts, inv, archive, bus),
		carts:    carts,
		archive:  archive,
		bus:      bus,
	}
}

func (f *fixture) submitCart(t *testing.T, userID string) domain.Request {
	t.Helper()
	ctx := context.Background()

	_, err := f.carts.Add(ctx, userID, domain.CartLine{
		Name: "Velium Tower Shield", Quality: domain.QualityRaw, Quantity: 1, ID: 2001,
	})
	require.NoError(t, err)

	req, err := f.requests.SubmitCart(ctx, userID, "Cogsworth")
	require.NoError(t, err)
	return req
}

func TestSubmitCart(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.requests.SubmitCart(ctx, "user1", "Cogsworth")
		assert.ErrorIs(t, err, domain.ErrCartEmpty)
	})

	t.Run("cart becomes a pending request and empties", func(t *testing.T) {
		f := newFixture(t)
		req := f.submitCart(t, "user1")

		assert.Equal(t, 1, req.ID)
		assert.Equal(t, domain.RequestPending, req.Status)
		assert.Equal(t, "Cogsworth", req.CharacterName)
		require.Len(t, req.Items, 1)
		assert.Equal(t, domain.LineConfirmed, req.Items[0].Status)

		assert.Empty(t, f.carts.Get(ctx, "user1").Lines)
	})

	t.Run("ids are monotonic and never reused", func(t *testing.T) {
		f := newFixture(t)
		assert.Equal(t, 1, f.submitCart(t, "user1").ID)
		assert.Equal(t, 2, f.submitCart(t, "user2").ID)

		_, err := f.requests.Fulfill(ctx, 1, "staff")
		require.NoError(t, err)

		assert.Equal(t, 3, f.submitCart(t, "user3").ID)
	})

	t.Run("archives and publishes submission", func(t *testing.T) {
		f := newFixture(t)
		var got []event.Event
		f.bus.Subscribe(event.Type(domain.EventTypeRequestSubmitted), func(_ context.Context, e event.Event) error {
			got = append(got, e)
			return nil
		})

		req := f.submitCart(t, "user1")

		require.Len(t, f.archive.archived, 1)
		assert.Equal(t, req.ID, f.archive.archived[0].ID)

		require.Len(t, got, 1)
		payload, ok := got[0].Payload.(domain.RequestEventPayload)
		require.True(t, ok)
		assert.Equal(t, SourceCart, payload.Source)
	})

	t.Run("archive failure does not fail submission", func(t *testing.T) {
		f := newFixture(t)
		f.archive.err = errors.New("database down")
		req := f.submitCart(t, "user1")
		assert.Equal(t, 1, req.ID)
	})
}

func TestSubmitFreeText(t *testing.T) {
	ctx := context.Background()

	t.Run("lines resolve against the index", func(t *testing.T) {
		f := newFixture(t)
		req, err := f.requests.SubmitFreeText(ctx, "user1", "Cogsworth",
			"velium tower shield 2\nVelium Tower\nRusty Dagger\n", "asap please")
		require.NoError(t, err)
		require.Len(t, req.Items, 3)

		// Confirmed lines take the canonical index name.
		assert.Equal(t, domain.LineConfirmed, req.Items[0].Status)
		assert.Equal(t, "Velium Tower Shield", req.Items[0].Name)
		assert.Equal(t, 2001, req.Items[0].ID)
		assert.Equal(t, 2, req.Items[0].Quantity)

		assert.Equal(t, domain.LineSuggested, req.Items[1].Status)
		assert.Equal(t, "Velium Tower", req.Items[1].Name)
		assert.Equal(t, "Velium Tower Shield", req.Items[1].SuggestedMatch)

		assert.Equal(t, domain.LineNeedsVerification, req.Items[2].Status)
		assert.Equal(t, "Rusty Dagger", req.Items[2].Name)
		assert.Equal(t, 0, req.Items[2].ID)

		assert.Equal(t, "asap please", req.Notes)
	})

	t.Run("blank text rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.requests.SubmitFreeText(ctx, "user1", "Cogsworth", "\n  \n", "")
		assert.ErrorIs(t, err, domain.ErrNoItems)
	})

	t.Run("publishes freetext source", func(t *testing.T) {
		f := newFixture(t)
		var got []event.Event
		f.bus.Subscribe(event.Type(domain.EventTypeRequestSubmitted), func(_ context.Context, e event.Event) error {
			got = append(got, e)
			return nil
		})

		_, err := f.requests.SubmitFreeText(ctx, "user1", "Cogsworth", "Water Flask", "")
		require.NoError(t, err)

		require.Len(t, got, 1)
		payload := got[0].Payload.(domain.RequestEventPayload)
		assert.Equal(t, SourceFreeText, payload.Source)
	})
}

func TestGetAndActive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first := f.submitCart(t, "user1")
	second := f.submitCart(t, "user2")

	t.Run("get returns an active request", func(t *testing.T) {
		req, err := f.requests.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "user1", req.UserID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.requests.Get(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})

	t.Run("active is ordered by id", func(t *testing.T) {
		active := f.requests.Active(ctx)
		require.Len(t, active, 2)
		assert.Equal(t, first.ID, active[0].ID)
		assert.Equal(t, second.ID, active[1].ID)
	})
}

func TestFulfill(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := f.submitCart(t, "user1")

	resolved, err := f.requests.Fulfill(ctx, req.ID, "staffer")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestFulfilled, resolved.Status)
	assert.Equal(t, "staffer", resolved.FulfilledBy)
	assert.True(t, resolved.Status.Terminal())

	// Terminal outcomes leave the active set.
	_, err = f.requests.Get(ctx, req.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)

	_, err = f.requests.Fulfill(ctx, req.ID, "staffer")
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestDeny(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := f.submitCart(t, "user1")

	resolved, err := f.requests.Deny(ctx, req.ID, "staffer", "out of stock", "check back friday")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestDenied, resolved.Status)
	assert.Equal(t, "staffer", resolved.DeniedBy)
	assert.Equal(t, "out of stock", resolved.DenialReason)
	assert.Equal(t, "check back friday", resolved.StaffNotes)

	_, err = f.requests.Get(ctx, req.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestPartial(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := f.submitCart(t, "user1")

	updated, err := f.requests.Partial(ctx, req.ID, "staffer", "Velium Tower Shield", "Water Flask", "flask restock pending")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestPartiallyFulfilled, updated.Status)
	assert.Equal(t, "staffer", updated.PartialBy)
	assert.Equal(t, "Velium Tower Shield", updated.SentItems)
	assert.Equal(t, "Water Flask", updated.UnavailableItems)
	assert.False(t, updated.Status.Terminal())

	// Still active and eligible for a terminal action.
	got, err := f.requests.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestPartiallyFulfilled, got.Status)

	resolved, err := f.requests.Fulfill(ctx, req.ID, "staffer")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestFulfilled, resolved.Status)
}

func TestSetMessageRef(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := f.submitCart(t, "user1")

	require.NoError(t, f.requests.SetMessageRef(ctx, req.ID, "msg123", "thread456"))

	got, err := f.requests.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, "msg123", got.MessageID)
	assert.Equal(t, "thread456", got.ThreadID)

	assert.ErrorIs(t, f.requests.SetMessageRef(ctx, 42, "m", "t"), domain.ErrRequestNotFound)
}
