package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/event"
)

type stubFiles struct {
	files []domain.InventoryFile
	err   error
}

func (s *stubFiles) Upsert(context.Context, string, string) error { return nil }
func (s *stubFiles) Delete(context.Context, string) error         { return nil }
func (s *stubFiles) GetAll(context.Context) ([]domain.InventoryFile, error) {
	return s.files, s.err
}

type stubRosters struct {
	roster *Roster
	err    error
}

func (s *stubRosters) Load(context.Context) (*Roster, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.roster, nil
}

func TestServiceRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes a fresh index", func(t *testing.T) {
		files := &stubFiles{files: []domain.InventoryFile{
			{Name: "banker1.txt", Content: "Bank1-Slot1\tWater Flask\t10010\t5\t1\n"},
		}}
		svc := NewService(files, &stubRosters{roster: EmptyRoster()}, nil)

		// Starts empty before the first refresh.
		_, ok := svc.Lookup(ctx, "Water Flask")
		assert.False(t, ok)

		require.NoError(t, svc.Refresh(ctx))

		item, ok := svc.Lookup(ctx, "water flask")
		require.True(t, ok)
		assert.Equal(t, 5, item.BaseCount)
		assert.Equal(t, 1, svc.Snapshot().FileCount())
	})

	t.Run("file load failure keeps previous index", func(t *testing.T) {
		files := &stubFiles{files: []domain.InventoryFile{
			{Name: "banker1.txt", Content: "Bank1-Slot1\tWater Flask\t10010\t5\t1\n"},
		}}
		svc := NewService(files, &stubRosters{roster: EmptyRoster()}, nil)
		require.NoError(t, svc.Refresh(ctx))

		files.err = errors.New("connection refused")
		assert.Error(t, svc.Refresh(ctx))

		_, ok := svc.Lookup(ctx, "Water Flask")
		assert.True(t, ok, "previous snapshot should survive a failed refresh")
	})

	t.Run("roster failure degrades to unclassified index", func(t *testing.T) {
		files := &stubFiles{files: []domain.InventoryFile{
			{Name: "banker1.txt", Content: "Bank1-Slot1\tGate\t5001\t1\t1\n"},
		}}
		svc := NewService(files, &stubRosters{err: domain.ErrRosterUnavailable}, nil)

		require.NoError(t, svc.Refresh(ctx))

		item, ok := svc.Lookup(ctx, "Gate")
		require.True(t, ok)
		assert.False(t, item.IsSpell)
	})

	t.Run("emits index rebuilt event", func(t *testing.T) {
		bus := event.NewBus()
		var got []event.Event
		bus.Subscribe(event.Type(domain.EventTypeIndexRebuilt), func(_ context.Context, e event.Event) error {
			got = append(got, e)
			return nil
		})

		files := &stubFiles{files: []domain.InventoryFile{
			{Name: "banker1.txt", Content: "Bank1-Slot1\tWater Flask\t10010\t5\t1\n"},
		}}
		svc := NewService(files, &stubRosters{roster: EmptyRoster()}, bus)
		require.NoError(t, svc.Refresh(ctx))

		require.Len(t, got, 1)
		payload, ok := got[0].Payload.(domain.IndexRebuiltPayload)
		require.True(t, ok)
		assert.Equal(t, 1, payload.Files)
		assert.Equal(t, 1, payload.Items)
	})
}

func TestServiceSearch(t *testing.T) {
	ctx := context.Background()
	files := &stubFiles{files: []domain.InventoryFile{
		{Name: "banker1.txt", Content: "Bank1-Slot1\tWater Flask\t10010\t5\t1\n"},
	}}

	bus := event.NewBus()
	var got []event.Event
	bus.Subscribe(event.Type(domain.EventTypeSearchPerformed), func(_ context.Context, e event.Event) error {
		got = append(got, e)
		return nil
	})

	svc := NewService(files, &stubRosters{roster: EmptyRoster()}, bus)
	require.NoError(t, svc.Refresh(ctx))

	results := svc.Search(ctx, "water")
	require.Len(t, results, 1)

	require.Len(t, got, 1)
	payload, ok := got[0].Payload.(domain.SearchPerformedPayload)
	require.True(t, ok)
	assert.Equal(t, "water", payload.Query)
	assert.Equal(t, 1, payload.ResultCount)
	assert.False(t, payload.SpellSearch)

	svc.Search(ctx, "spell wiz")
	require.Len(t, got, 2)
	payload, ok = got[1].Payload.(domain.SearchPerformedPayload)
	require.True(t, ok)
	assert.True(t, payload.SpellSearch)
}
