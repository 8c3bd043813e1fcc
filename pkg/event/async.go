package event

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/workerpool"
)

// Async runs h on pool so a slow sink never holds up the request that
// dispatched the event. The returned Handler only reports whether the event
// was queued; failures inside h are logged and counted with the
// "async_error" result.
func Async(pool *workerpool.Pool, h Handler) Handler {
	return func(ctx context.Context, e Event) error {
		ctx = context.WithoutCancel(ctx)
		err := pool.Submit(func() {
			if err := h(ctx, e); err != nil {
				metrics.EventsPublished.WithLabelValues(e.Name, "async_error").Inc()
				logger.WithCtx(ctx).Warn("event: async listener failed", "event", e.Name, "key", e.Key, "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("event: queue %s: %w", e.Name, err)
		}
		return nil
	}
}
