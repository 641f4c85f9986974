package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AssignWorkflowCommandHandler moves an order onto a different workflow
// definition. The reassignment is only permitted while the order still
// sits on the first stage of its current workflow; any later and the
// history already references stages of the old definition.
//
// Unlike the stage-transition handlers this one cannot share
// transitionExecutor: the mutation swaps the definition the record is
// measured against, and an order without a record yet is created
// directly on the requested workflow.
type AssignWorkflowCommandHandler struct {
	uowFactory ProgressUoWFactory
	directory  ports.OrderDirectory
}

// NewAssignWorkflowCommandHandler creates a handler for workflow assignment.
func NewAssignWorkflowCommandHandler(
	uowFactory ProgressUoWFactory,
	directory ports.OrderDirectory,
) AssignWorkflowCommandHandler {
	return AssignWorkflowCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the assign command. Retries on version conflicts the
// same bounded way stage transitions do.
func (h AssignWorkflowCommandHandler) Handle(
	ctx context.Context,
	command AssignWorkflowCommand,
) (*progress.Progress, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		record, err := h.attempt(ctx, command)
		if errors.Is(err, errs.ErrVersionConflict) {
			continue
		}

		return record, err
	}

	return nil, ErrTransitionConflict
}

func (h AssignWorkflowCommandHandler) attempt(
	ctx context.Context,
	command AssignWorkflowCommand,
) (*progress.Progress, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newDefinition, err := uow.WorkflowRepository().Get(ctx, command.WorkflowID())
	if err != nil {
		return nil, err
	}

	record, err := uow.ProgressRepository().Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return h.createOnWorkflow(ctx, uow, command, newDefinition)
	}
	if err != nil {
		return nil, err
	}

	currentDefinition, err := uow.WorkflowRepository().Get(ctx, record.WorkflowID())
	if err != nil {
		return nil, err
	}

	expectedVersion := record.Version()

	err = record.ReassignWorkflow(currentDefinition, newDefinition, time.Now().UTC())
	if errors.Is(err, progress.ErrNoChange) {
		return record, nil
	}
	if err != nil {
		return nil, err
	}

	if err = uow.ProgressRepository().Save(ctx, record, expectedVersion); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit workflow assignment: %w", err)
	}

	return record, nil
}

// createOnWorkflow handles the order that has no progress record yet:
// assignment then doubles as initialization on the requested workflow.
func (h AssignWorkflowCommandHandler) createOnWorkflow(
	ctx context.Context,
	uow ProgressUoW,
	command AssignWorkflowCommand,
	definition *workflow.Definition,
) (*progress.Progress, error) {
	exists, err := h.directory.OrderExists(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", command.OrderID())
	}

	record, err := progress.NewProgress(command.OrderID(), definition, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	saved, err := uow.ProgressRepository().CreateIfAbsent(ctx, record)
	if err != nil {
		return nil, err
	}

	// A concurrent initialize may have won with a different workflow;
	// surface that as a conflict so the outer loop reassigns it.
	if !saved.WorkflowID().IsEqual(definition.ID()) {
		return nil, errs.NewVersionConflictError("progress", saved.Version())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit workflow assignment: %w", err)
	}

	return saved, nil
}
