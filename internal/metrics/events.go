package metrics

import (
	"context"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/event"
)

// EventMetricsCollector subscribes to bank events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types the collector cares about
func (c *EventMetricsCollector) Register(bus event.Bus) {
	bus.Subscribe(event.Type(domain.EventTypeSearchPerformed), c.handleSearch)
	bus.Subscribe(event.Type(domain.EventTypeItemCarted), c.handleItemCarted)
	bus.Subscribe(event.Type(domain.EventTypeRequestSubmitted), c.handleRequestSubmitted)
	bus.Subscribe(event.Type(domain.EventTypeRequestFulfilled), c.handleResolution("fulfilled"))
	bus.Subscribe(event.Type(domain.EventTypeRequestDenied), c.handleResolution("denied"))
	bus.Subscribe(event.Type(domain.EventTypeRequestPartial), c.handleResolution("partial"))
	bus.Subscribe(event.Type(domain.EventTypeIndexRebuilt), c.handleIndexRebuilt)
}

func (c *EventMetricsCollector) handleSearch(_ context.Context, _ event.Event) error {
	SearchesPerformed.Inc()
	return nil
}

func (c *EventMetricsCollector) handleItemCarted(_ context.Context, _ event.Event) error {
	ItemsCarted.Inc()
	return nil
}

func (c *EventMetricsCollector) handleRequestSubmitted(_ context.Context, e event.Event) error {
	source := "unknown"
	if p, ok := e.Payload.(domain.RequestEventPayload); ok && p.Source != "" {
		source = p.Source
	}
	RequestsSubmitted.WithLabelValues(source).Inc()
	return nil
}

func (c *EventMetricsCollector) handleResolution(outcome string) event.Handler {
	return func(_ context.Context, _ event.Event) error {
		RequestsResolved.WithLabelValues(outcome).Inc()
		return nil
	}
}

func (c *EventMetricsCollector) handleIndexRebuilt(_ context.Context, e event.Event) error {
	IndexRebuilds.Inc()
	if p, ok := e.Payload.(domain.IndexRebuiltPayload); ok {
		IndexedItems.Set(float64(p.Items))
		IndexedSpells.Set(float64(p.Spells))
	}
	return nil
}
