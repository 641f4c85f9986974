package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/domain/model/workflow"
)

// SetAutoSyncCommandHandler toggles the per-order auto-sync flag. The
// toggle is not a transition and appends no history, but it goes through
// the same load/save/version-guard cycle so it linearizes with concurrent
// stage moves.
type SetAutoSyncCommandHandler struct {
	executor transitionExecutor
}

// NewSetAutoSyncCommandHandler creates a handler for the auto-sync toggle.
func NewSetAutoSyncCommandHandler(uowFactory ProgressUoWFactory) SetAutoSyncCommandHandler {
	return SetAutoSyncCommandHandler{
		executor: transitionExecutor{uowFactory: uowFactory},
	}
}

// Handle processes the toggle through the shared conditional-write cycle.
func (h SetAutoSyncCommandHandler) Handle(
	ctx context.Context,
	command SetAutoSyncCommand,
) (TransitionResult, error) {
	if err := command.Validate(); err != nil {
		return TransitionResult{}, err
	}

	return h.executor.execute(ctx, command.OrderID(),
		func(record *progress.Progress, _ *workflow.Definition, _ time.Time) (bool, error) {
			record.SetAutoSync(command.Enabled())
			return true, nil
		})
}
