package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/domain/services"
)

// SyncExternalEventCommandHandler is the external event reconciler: it
// maps a normalized carrier status to a target stage via the order's
// workflow definition and feeds the move into the transition engine as an
// AutomaticSync transition.
//
// The forward-only rule on the aggregate makes re-delivered and
// out-of-order carrier events natural no-ops, so no deduplication by
// external event id is performed here.
//
// Example:
//
//	handler := NewSyncExternalEventCommandHandler(uowFactory)
//	cmd, _ := NewSyncExternalEventCommand(orderID, workflow.StatusInTransit)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrUnmappedStatus):
//	    // No stage maps this status; acknowledge the carrier and move on
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // Order has no progress record; acknowledge the carrier and log
//	case err != nil:
//	    // Handle failure
//	case !result.Applied:
//	    // Backward or duplicate event absorbed as a no-op
//	}
type SyncExternalEventCommandHandler struct {
	executor   transitionExecutor
	reconciler services.EventReconciler
}

// NewSyncExternalEventCommandHandler creates a handler for carrier event reconciliation.
func NewSyncExternalEventCommandHandler(uowFactory ProgressUoWFactory) SyncExternalEventCommandHandler {
	return SyncExternalEventCommandHandler{
		executor:   transitionExecutor{uowFactory: uowFactory},
		reconciler: services.NewEventReconciler(),
	}
}

// Handle processes one carrier event through the shared transition cycle.
// Returns services.ErrUnmappedStatus when the workflow maps no stage to
// the code; an event absorbed by the forward-only rule returns the
// unchanged record with Applied false.
func (h SyncExternalEventCommandHandler) Handle(
	ctx context.Context,
	command SyncExternalEventCommand,
) (TransitionResult, error) {
	if err := command.Validate(); err != nil {
		return TransitionResult{}, err
	}

	return h.executor.execute(ctx, command.OrderID(),
		func(record *progress.Progress, definition *workflow.Definition, now time.Time) (bool, error) {
			stage, err := h.reconciler.Resolve(definition, command.Code())
			if err != nil {
				return false, err
			}
			return record.ApplySync(definition, stage.ID(), now)
		})
}
