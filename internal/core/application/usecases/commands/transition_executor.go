package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"
)

// maxTransitionAttempts bounds the optimistic retry loop. Contention on a
// single order is an admin racing a webhook, so a small budget with no
// backoff is enough.
const maxTransitionAttempts = 3

// ErrTransitionConflict is returned when the retry budget is exhausted
// without a successful conditional write. Under normal contention it never
// surfaces.
var ErrTransitionConflict = errors.New("transition conflict: retry budget exhausted")

// TransitionResult carries the outcome of a transition-engine operation:
// the (possibly unchanged) progress record, the stage it sits on, and
// whether a transition was actually applied and saved.
type TransitionResult struct {
	Record  *progress.Progress
	Stage   workflow.Stage
	Applied bool
}

// transitionMutation applies policy to a freshly loaded record. It returns
// whether the record was modified and must be saved. Returning
// progress.ErrNoChange is treated as a benign no-op by the executor.
type transitionMutation func(record *progress.Progress, definition *workflow.Definition, now time.Time) (bool, error)

// transitionExecutor is the funnel every stage move goes through: the
// load / validate / append / save-with-expected-version cycle, retried on
// version conflicts. Embedding handlers supply only the policy closure.
type transitionExecutor struct {
	uowFactory ProgressUoWFactory
}

// execute runs one transition-engine operation against the order's
// progress record. On a version conflict the whole read-validate-write
// cycle restarts against the now-current record, so the policy re-evaluates
// its move; exhausting the budget surfaces ErrTransitionConflict.
//
// When the mutation declines to change the record (forward-only rule,
// NoChange target), the unchanged record is returned with Applied false.
// When the mutation fails, the loaded record still accompanies the error
// so callers can render the current state.
func (e transitionExecutor) execute(
	ctx context.Context,
	orderID kernel.UUID,
	mutate transitionMutation,
) (TransitionResult, error) {
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		result, err := e.attempt(ctx, orderID, mutate)
		if errors.Is(err, errs.ErrVersionConflict) {
			continue
		}
		return result, err
	}
	return TransitionResult{}, ErrTransitionConflict
}

func (e transitionExecutor) attempt(
	ctx context.Context,
	orderID kernel.UUID,
	mutate transitionMutation,
) (TransitionResult, error) {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	record, err := uow.ProgressRepository().Get(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}

	definition, err := uow.WorkflowRepository().Get(ctx, record.WorkflowID())
	if err != nil {
		return TransitionResult{}, err
	}

	expectedVersion := record.Version()
	applied, err := mutate(record, definition, time.Now().UTC())
	if errors.Is(err, progress.ErrNoChange) {
		applied, err = false, nil
	}
	if err != nil {
		result, resultErr := e.result(record, definition, false)
		if resultErr != nil {
			return TransitionResult{}, resultErr
		}
		return result, err
	}

	if !applied {
		return e.result(record, definition, false)
	}

	if err = uow.ProgressRepository().Save(ctx, record, expectedVersion); err != nil {
		return TransitionResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return e.result(record, definition, true)
}

func (e transitionExecutor) result(
	record *progress.Progress,
	definition *workflow.Definition,
	applied bool,
) (TransitionResult, error) {
	stage, err := record.CurrentStage(definition)
	if err != nil {
		return TransitionResult{}, err
	}
	return TransitionResult{Record: record, Stage: stage, Applied: applied}, nil
}
