package alert

import "context"

// Store persists alert subscriptions. Create-only: alerts are consumed by an
// out-of-process notifier, never read back through this service.
type Store interface {
	Create(ctx context.Context, a Alert) (string, error)
	Ping(ctx context.Context) error
}
