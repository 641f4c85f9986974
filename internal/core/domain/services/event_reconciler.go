package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/workflow"
)

// ErrUnmappedStatus is returned when the active workflow definition maps no
// stage to a normalized carrier status code. It is a signal, not a failure:
// webhook callers acknowledge the event and move on.
var ErrUnmappedStatus = errors.New("external status has no stage mapping")

// EventReconciler is a domain service that resolves normalized carrier
// tracking events against a workflow definition.
//
// Key responsibilities:
//   - Validating the incoming status code
//   - Scanning the definition's stages for a trigger match
//
// The reconciler performs no deduplication by external event id: the
// aggregate's forward-only auto-sync rule already absorbs duplicate and
// out-of-order deliveries as no-ops.
//
// Example usage:
//
//	reconciler := services.NewEventReconciler()
//	stage, err := reconciler.Resolve(definition, workflow.StatusInTransit)
//	if errors.Is(err, services.ErrUnmappedStatus) {
//	    // No stage maps this status; acknowledge and skip
//	    return
//	}
//	if err != nil {
//	    return
//	}
//	// Feed stage.ID() into the transition engine as an AutomaticSync move
type EventReconciler struct{}

// NewEventReconciler creates a new EventReconciler instance.
func NewEventReconciler() EventReconciler {
	return EventReconciler{}
}

// Resolve returns the stage the given normalized carrier status advances
// an order to under the supplied workflow definition. Returns
// ErrUnmappedStatus when no stage lists the code among its triggers.
func (EventReconciler) Resolve(
	definition *workflow.Definition,
	code workflow.ExternalStatusCode,
) (workflow.Stage, error) {
	if err := definition.Validate(); err != nil {
		return workflow.Stage{}, err
	}
	if err := code.Validate(); err != nil {
		return workflow.Stage{}, err
	}

	stage, ok := definition.StageForExternalStatus(code)
	if !ok {
		return workflow.Stage{}, ErrUnmappedStatus
	}
	return stage, nil
}
