package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// InitializeProgressCommandHandler creates the progress record for an
// order on the first stage of its assigned or default workflow. The
// creation is idempotent: a second initialize returns the existing record
// untouched, with the same history.
type InitializeProgressCommandHandler struct {
	uowFactory ProgressUoWFactory
	directory  ports.OrderDirectory
}

// NewInitializeProgressCommandHandler creates a handler for progress initialization.
// Requires a ProgressUoWFactory and the order directory collaborator.
func NewInitializeProgressCommandHandler(
	uowFactory ProgressUoWFactory,
	directory ports.OrderDirectory,
) InitializeProgressCommandHandler {
	return InitializeProgressCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the initialize command. Verifies the order exists,
// resolves its workflow, builds a fresh record with the initializing
// SystemInit transition, and persists it via the idempotent
// CreateIfAbsent contract.
func (h InitializeProgressCommandHandler) Handle(
	ctx context.Context,
	command InitializeProgressCommand,
) (*progress.Progress, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	exists, err := h.directory.OrderExists(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", command.OrderID().String())
	}

	workflowID, err := h.directory.AssignedOrDefaultWorkflowID(ctx, command.OrderID())
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

	definition, err := uow.WorkflowRepository().Get(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	record, err := progress.NewProgress(command.OrderID(), definition, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	saved, err := uow.ProgressRepository().CreateIfAbsent(ctx, record)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit progress initialization: %w", err)
	}

	return saved, nil
}
