// Package event dispatches domain events to registered listeners after the
// state change they describe has been committed.
//
//	d := event.New()
//	d.Listen(event.OrderPlaced, sink.Handle)
//	d.Dispatch(ctx, event.Event{Name: event.OrderPlaced, Key: "order-placed-42", Payload: order})
package event

import (
	"context"
	"sync"
	"time"

	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

const (
	OrderPlaced  = "order.placed"
	OrderUpdated = "order.updated"
	OrderDeleted = "order.deleted"
)

// Event is one domain occurrence.
type Event struct {
	Name       string    `json:"event"`
	Key        string    `json:"key"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Handler receives a dispatched event. A returned error is logged and
// counted; it never reaches the caller of Dispatch.
type Handler func(ctx context.Context, e Event) error

// Dispatcher fans events out to listeners. The zero value is not usable;
// call New. A nil *Dispatcher drops every event.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func New() *Dispatcher {
	return &Dispatcher{handlers: map[string][]Handler{}}
}

// Listen registers h for the named event.
func (d *Dispatcher) Listen(name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], h)
}

// Dispatch runs every listener for e.Name in registration order.
func (d *Dispatcher) Dispatch(ctx context.Context, e Event) {
	if d == nil {
		return
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	d.mu.RLock()
	hs := make([]Handler, len(d.handlers[e.Name]))
	copy(hs, d.handlers[e.Name])
	d.mu.RUnlock()

	for _, h := range hs {
		if err := h(ctx, e); err != nil {
			metrics.EventsPublished.WithLabelValues(e.Name, "error").Inc()
			logger.WithCtx(ctx).Warn("event: listener failed", "event", e.Name, "key", e.Key, "error", err)
			continue
		}
		metrics.EventsPublished.WithLabelValues(e.Name, "ok").Inc()
	}
}

// Flush removes all listeners.
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = map[string][]Handler{}
}
