package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/workflow"
)

// UpdateWorkflowCommandHandler replaces an existing workflow definition.
// Stage removals and reorderings that would strand a live progress record
// are rejected by the repository with workflow.ErrStageInUse.
type UpdateWorkflowCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewUpdateWorkflowCommandHandler creates a handler for workflow updates.
func NewUpdateWorkflowCommandHandler(uowFactory WorkflowUoWFactory) UpdateWorkflowCommandHandler {
	return UpdateWorkflowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the stored definition.
func (h UpdateWorkflowCommandHandler) Handle(
	ctx context.Context,
	command UpdateWorkflowCommand,
) (*workflow.Definition, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Existence check up front so a missing workflow surfaces as not
	// found rather than a failed update.
	if _, err := uow.WorkflowRepository().Get(ctx, command.WorkflowID()); err != nil {
		return nil, err
	}

	definition, err := workflow.NewDefinition(
		command.WorkflowID(),
		command.Name(),
		command.Stages(),
		command.IsDefault(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.WorkflowRepository().Update(ctx, definition); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit workflow update: %w", err)
	}

	return definition, nil
}
