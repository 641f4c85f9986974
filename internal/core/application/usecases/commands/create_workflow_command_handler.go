package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
)

// CreateWorkflowCommandHandler registers a new workflow definition.
type CreateWorkflowCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewCreateWorkflowCommandHandler creates a handler for workflow registration.
func NewCreateWorkflowCommandHandler(uowFactory WorkflowUoWFactory) CreateWorkflowCommandHandler {
	return CreateWorkflowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create command and returns the stored definition.
func (h CreateWorkflowCommandHandler) Handle(
	ctx context.Context,
	command CreateWorkflowCommand,
) (*workflow.Definition, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	definition, err := workflow.NewDefinition(
		kernel.NewUUID(),
		command.Name(),
		command.Stages(),
		command.IsDefault(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkflowRepository().Add(ctx, definition); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit workflow creation: %w", err)
	}

	return definition, nil
}
