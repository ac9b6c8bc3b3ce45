package event

import (
	"context"
	"errors"
	"testing"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus()
	ctx := context.Background()

	var received []Event
	bus.Subscribe("test.event", func(_ context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	bus.Publish(ctx, Event{Type: "test.event", Payload: "hello"})

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if received[0].Payload != "hello" {
		t.Errorf("unexpected payload: %v", received[0].Payload)
	}
}

func TestBusVersionDefaulting(t *testing.T) {
	bus := NewBus()

	var got Event
	bus.Subscribe("test.event", func(_ context.Context, e Event) error {
		got = e
		return nil
	})

	bus.Publish(context.Background(), Event{Type: "test.event"})

	if got.Version != EventSchemaVersion {
		t.Errorf("expected version %q, got %q", EventSchemaVersion, got.Version)
	}
}

func TestBusMultipleSubscribers(t *testing.T) {
	bus := NewBus()

	calls := 0
	handler := func(_ context.Context, _ Event) error {
		calls++
		return nil
	}
	bus.Subscribe("test.event", handler)
	bus.Subscribe("test.event", handler)

	bus.Publish(context.Background(), Event{Type: "test.event"})

	if calls != 2 {
		t.Errorf("expected 2 handler calls, got %d", calls)
	}
}

func TestBusUnrelatedTypeNotDelivered(t *testing.T) {
	bus := NewBus()

	called := false
	bus.Subscribe("test.other", func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	bus.Publish(context.Background(), Event{Type: "test.event"})

	if called {
		t.Error("handler for unrelated type should not be called")
	}
}

func TestBusHandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := NewBus()

	secondCalled := false
	bus.Subscribe("test.event", func(_ context.Context, _ Event) error {
		return errors.New("handler failed")
	})
	bus.Subscribe("test.event", func(_ context.Context, _ Event) error {
		secondCalled = true
		return nil
	})

	bus.Publish(context.Background(), Event{Type: "test.event"})

	if !secondCalled {
		t.Error("second handler should run despite first handler's error")
	}
}
