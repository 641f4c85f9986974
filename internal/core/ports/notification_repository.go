package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the queued
// customer notification entities drained by the dispatch job.
type NotificationRepository interface {
	// Add enqueues a pending notification.
	Add(ctx context.Context, n *notification.Notification) error

	// Update persists a dispatch state change.
	Update(ctx context.Context, n *notification.Notification) error

	// GetPending retrieves up to limit notifications awaiting dispatch,
	// oldest first.
	GetPending(ctx context.Context, limit int) ([]*notification.Notification, error)
}

// Notifier is the outbound collaborator that actually delivers a customer
// notification (email or similar). Failures are logged and retried on the
// next dispatch tick; they never propagate back into the engine.
type Notifier interface {
	Send(ctx context.Context, n *notification.Notification) error
}
