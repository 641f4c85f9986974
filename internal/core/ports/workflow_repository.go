package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
)

// WorkflowRepository defines the persistence contract for workflow
// definition aggregates. Definitions are read-mostly: written at
// configuration time, fanned out read-only to every progress record.
type WorkflowRepository interface {
	// Add persists a new workflow definition.
	// The definition must be valid and not already exist.
	Add(ctx context.Context, definition *workflow.Definition) error

	// Update persists changes to an existing definition. Removing or
	// reordering a stage a live progress record currently occupies is
	// rejected with workflow.ErrStageInUse.
	Update(ctx context.Context, definition *workflow.Definition) error

	// Get retrieves a workflow definition by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*workflow.Definition, error)

	// GetDefault retrieves the definition applied to orders with no
	// explicit workflow assignment.
	GetDefault(ctx context.Context) (*workflow.Definition, error)
}
