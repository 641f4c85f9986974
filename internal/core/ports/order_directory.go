package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// OrderDirectory is the read-only collaborator exposing the order records
// owned by the surrounding application. The engine consults it when
// initializing progress and when resolving carrier tracking numbers; it
// never writes through it.
type OrderDirectory interface {
	// OrderExists reports whether an order with the given id exists.
	OrderExists(ctx context.Context, orderID kernel.UUID) (bool, error)

	// AssignedOrDefaultWorkflowID returns the workflow explicitly assigned
	// to the order, falling back to the tenant's default workflow.
	AssignedOrDefaultWorkflowID(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error)

	// OrderIDByTrackingNumber resolves a carrier tracking number to the
	// order it belongs to.
	OrderIDByTrackingNumber(ctx context.Context, trackingNumber string) (kernel.UUID, error)
}
