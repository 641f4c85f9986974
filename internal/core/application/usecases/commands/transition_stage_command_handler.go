package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/domain/model/workflow"
)

// TransitionStageCommandHandler applies an arbitrary manual stage move:
// the generic transition, plus the revert and skip operations which are
// the same primitive with the override flag forced on.
//
// A move to the stage the order already occupies is a benign no-op: the
// unchanged record is returned with Applied false and no history entry.
type TransitionStageCommandHandler struct {
	executor transitionExecutor
}

// NewTransitionStageCommandHandler creates a handler for arbitrary manual transitions.
func NewTransitionStageCommandHandler(uowFactory ProgressUoWFactory) TransitionStageCommandHandler {
	return TransitionStageCommandHandler{
		executor: transitionExecutor{uowFactory: uowFactory},
	}
}

// Handle processes the transition command through the shared transition
// cycle. Fails with workflow.ErrUnknownStage for stage ids outside the
// order's workflow and progress.ErrMissingReason for overrides without a
// rationale; neither failure appends history.
func (h TransitionStageCommandHandler) Handle(
	ctx context.Context,
	command TransitionStageCommand,
) (TransitionResult, error) {
	if err := command.Validate(); err != nil {
		return TransitionResult{}, err
	}

	return h.executor.execute(ctx, command.OrderID(),
		func(record *progress.Progress, definition *workflow.Definition, now time.Time) (bool, error) {
			err := record.TransitionTo(
				definition,
				command.StageID(),
				command.ActorID(),
				command.IsOverride(),
				command.Reason(),
				command.Notes(),
				now,
			)
			if err != nil {
				return false, err
			}
			return true, nil
		})
}
