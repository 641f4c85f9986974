package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/progress"
)

// ProgressRepository defines the persistence contract for progress record
// aggregates. Save is the sole mutation point and the concurrency
// boundary: it performs a conditional write keyed on the record version.
type ProgressRepository interface {
	// Get retrieves the progress record for an order, with its full
	// transition history in order.
	Get(ctx context.Context, orderID kernel.UUID) (*progress.Progress, error)

	// CreateIfAbsent persists a freshly initialized record unless one
	// already exists for the order. Idempotent by contract: a second call
	// for the same order is a no-op returning the existing record, never
	// an error.
	CreateIfAbsent(ctx context.Context, record *progress.Progress) (*progress.Progress, error)

	// Save persists the record's current stage, auto-sync flag, and newly
	// appended history entries, conditional on the stored version still
	// equalling expectedVersion. A lost race yields errs.ErrVersionConflict.
	Save(ctx context.Context, record *progress.Progress, expectedVersion int) error
}
