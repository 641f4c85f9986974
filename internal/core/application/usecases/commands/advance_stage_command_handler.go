package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/domain/model/workflow"
)

// AdvanceStageCommandHandler moves an order to the next stage of its
// workflow. The target is re-resolved as "current index + 1" on every
// retry attempt, so an advance that lost a race against a webhook sync
// advances from the new position instead of replaying a stale target.
//
// Example:
//
//	handler := NewAdvanceStageCommandHandler(uowFactory)
//	cmd, _ := NewAdvanceStageCommand(orderID, actorID, "")
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, progress.ErrAlreadyTerminal):
//	    // Order already sits on its final stage
//	case err != nil:
//	    // Handle failure
//	default:
//	    log.Printf("order now at %s", result.Stage.Label())
//	}
type AdvanceStageCommandHandler struct {
	executor transitionExecutor
}

// NewAdvanceStageCommandHandler creates a handler for the advance operation.
func NewAdvanceStageCommandHandler(uowFactory ProgressUoWFactory) AdvanceStageCommandHandler {
	return AdvanceStageCommandHandler{
		executor: transitionExecutor{uowFactory: uowFactory},
	}
}

// Handle processes the advance command through the shared transition
// cycle. Fails with progress.ErrAlreadyTerminal when the order sits on a
// terminal stage and with ErrTransitionConflict after retry exhaustion.
func (h AdvanceStageCommandHandler) Handle(
	ctx context.Context,
	command AdvanceStageCommand,
) (TransitionResult, error) {
	if err := command.Validate(); err != nil {
		return TransitionResult{}, err
	}

	return h.executor.execute(ctx, command.OrderID(),
		func(record *progress.Progress, definition *workflow.Definition, now time.Time) (bool, error) {
			if err := record.Advance(definition, command.ActorID(), command.Notes(), now); err != nil {
				return false, err
			}
			return true, nil
		})
}
