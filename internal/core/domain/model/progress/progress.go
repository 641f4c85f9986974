package progress

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrProgressIsNotConstructed is returned when a Progress instance was not
	// created through the NewProgress or RestoreProgress factory methods.
	ErrProgressIsNotConstructed = errors.New(
		"Progress must be created via NewProgress or RestoreProgress constructor",
	)

	// ErrNoChange is returned when a requested transition targets the stage
	// the order already occupies. It is a signal, not a failure: callers
	// surface the unchanged record.
	ErrNoChange = errors.New("transition target equals the current stage")

	// ErrMissingReason is returned when an override (jump or revert) is
	// requested without a human-supplied reason.
	ErrMissingReason = errors.New("reason is required for override transitions")

	// ErrAlreadyTerminal is returned when advance is requested while the
	// order sits on a terminal or final stage.
	ErrAlreadyTerminal = errors.New("current stage is terminal")

	// ErrWorkflowLocked is returned when a workflow reassignment is requested
	// after the order has moved past the first stage of its workflow.
	ErrWorkflowLocked = errors.New("workflow can no longer be reassigned")
)

// Progress is the aggregate root tracking one order's position in its
// fulfillment workflow. It owns the transition history exclusively and is
// the only shared mutable resource in the engine; concurrent writers are
// linearized by the version token via the store's conditional save.
//
// Progress follows these invariants:
//   - The current stage always equals the destination of the last transition
//   - History is append-only and never empty after construction
//   - Every applied transition increments the version by exactly one
//     (toggling auto-sync also bumps the version, keeping the token
//     authoritative for every write, but appends no history)
//
// The struct uses private fields to ensure encapsulation; all stage moves
// go through the policy methods so the business rules cannot be bypassed.
type Progress struct {
	// orderID identifies the order; exactly one record exists per order
	orderID kernel.UUID

	// workflowID references the workflow definition the order is measured against
	workflowID kernel.UUID

	// currentStageID is the stage the order currently occupies
	currentStageID string

	// autoSyncEnabled gates whether carrier events may move the order
	autoSyncEnabled bool

	// history is the append-only ordered sequence of transitions
	history []Transition

	// version is the optimistic-concurrency token
	version int

	// persistedTransitions counts history entries already saved by the store
	persistedTransitions int

	// isConstructed ensures the record was created via a factory method
	isConstructed bool
}

// NewProgress creates a progress record for an order at the first stage of
// the given workflow, with auto-sync enabled and an initializing
// SystemInit transition as the first history entry.
func NewProgress(orderID kernel.UUID, definition *workflow.Definition, now time.Time) (*Progress, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := definition.Validate(); err != nil {
		return nil, err
	}

	record := &Progress{
		orderID:         orderID,
		workflowID:      definition.ID(),
		autoSyncEnabled: true,
		isConstructed:   true,
	}

	first := definition.First()
	initializing, err := newTransition(nil, first.ID(), SystemInit, false, "", nil, "", now)
	if err != nil {
		return nil, err
	}

	record.history = []Transition{initializing}
	record.currentStageID = first.ID()
	record.version = 1
	return record, nil
}

// RestoreProgress reconstructs a progress record from persistence,
// re-checking the aggregate invariants against the stored data.
func RestoreProgress(
	orderID kernel.UUID,
	workflowID kernel.UUID,
	currentStageID string,
	autoSyncEnabled bool,
	history []Transition,
	version int,
) (*Progress, error) {
	if err := errors.Join(orderID.Validate(), workflowID.Validate()); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("progress history")
	}
	for _, transition := range history {
		if err := transition.Validate(); err != nil {
			return nil, err
		}
	}
	last := history[len(history)-1]
	if last.ToStageID() != currentStageID {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"progress record is invalid",
			fmt.Errorf("current stage %q does not match last transition target %q",
				currentStageID, last.ToStageID()),
		)
	}
	if version < len(history) {
		return nil, errs.NewVersionIsInvalidError(
			"progress version",
			fmt.Errorf("version %d is below the history length %d", version, len(history)),
		)
	}

	record := &Progress{
		orderID:              orderID,
		workflowID:           workflowID,
		currentStageID:       currentStageID,
		autoSyncEnabled:      autoSyncEnabled,
		history:              make([]Transition, len(history)),
		version:              version,
		persistedTransitions: len(history),
		isConstructed:        true,
	}
	copy(record.history, history)
	return record, nil
}

// Validate ensures the Progress instance was properly constructed through a factory method.
func (p *Progress) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProgressIsNotConstructed
	}
	return nil
}

// OrderID returns the order this record belongs to.
func (p *Progress) OrderID() kernel.UUID {
	return p.orderID
}

// WorkflowID returns the workflow definition the order is measured against.
func (p *Progress) WorkflowID() kernel.UUID {
	return p.workflowID
}

// CurrentStageID returns the stage the order currently occupies.
func (p *Progress) CurrentStageID() string {
	return p.currentStageID
}

// AutoSyncEnabled reports whether carrier events may move the order.
func (p *Progress) AutoSyncEnabled() bool {
	return p.autoSyncEnabled
}

// Version returns the optimistic-concurrency token.
func (p *Progress) Version() int {
	return p.version
}

// History returns a copy of the append-only transition sequence.
func (p *Progress) History() []Transition {
	history := make([]Transition, len(p.history))
	copy(history, p.history)
	return history
}

// PendingTransitions returns the history entries appended since the record
// was loaded, i.e. the rows the store still has to insert.
func (p *Progress) PendingTransitions() []Transition {
	pending := make([]Transition, len(p.history)-p.persistedTransitions)
	copy(pending, p.history[p.persistedTransitions:])
	return pending
}

// MarkTransitionsPersisted records that all history entries have been
// saved. Called by the persistence layer after a successful save.
func (p *Progress) MarkTransitionsPersisted() {
	p.persistedTransitions = len(p.history)
}

// CurrentStage resolves the current stage against the workflow definition.
func (p *Progress) CurrentStage(definition *workflow.Definition) (workflow.Stage, error) {
	if err := p.ensureDefinition(definition); err != nil {
		return workflow.Stage{}, err
	}
	return definition.StageByID(p.currentStageID)
}

// CoarseStatus derives the legacy coarse order status from the current
// stage's semantic category. It is a pure projection: the engine never
// stores it, callers write it after a successful transition.
func (p *Progress) CoarseStatus(definition *workflow.Definition) (workflow.StageCategory, error) {
	current, err := p.CurrentStage(definition)
	if err != nil {
		return workflow.UnknownCategory, err
	}
	return current.Category(), nil
}

// Advance moves the order to the stage immediately following the current
// one: the default, non-override path taken by the admin "advance" action.
// Fails with ErrAlreadyTerminal when the current stage is terminal or has
// no successor.
func (p *Progress) Advance(
	definition *workflow.Definition,
	actorID kernel.UUID,
	notes string,
	now time.Time,
) error {
	current, err := p.CurrentStage(definition)
	if err != nil {
		return err
	}
	if current.IsTerminal() {
		return ErrAlreadyTerminal
	}
	next, ok := definition.Next(current)
	if !ok {
		// Last stage without the terminal flag still has nowhere to go.
		return ErrAlreadyTerminal
	}

	return p.append(current.ID(), next.ID(), Manual, false, "", &actorID, notes, now)
}

// TransitionTo applies a manual move to an arbitrary stage of the
// workflow. Forward jumps past the next stage and backward moves (reverts)
// are overrides and require a non-empty reason; a single-step forward move
// is the plain advance path unless the caller explicitly flags it as an
// override. A move to the current stage returns ErrNoChange and leaves the
// record untouched.
func (p *Progress) TransitionTo(
	definition *workflow.Definition,
	targetStageID string,
	actorID kernel.UUID,
	isOverride bool,
	reason string,
	notes string,
	now time.Time,
) error {
	current, err := p.CurrentStage(definition)
	if err != nil {
		return err
	}
	target, err := definition.StageByID(targetStageID)
	if err != nil {
		return err
	}

	switch {
	case target.Index() == current.Index():
		return ErrNoChange
	case target.Index() < current.Index(), target.Index() > current.Index()+1:
		isOverride = true
	}
	if isOverride && reason == "" {
		return ErrMissingReason
	}

	return p.append(current.ID(), target.ID(), Manual, isOverride, reason, &actorID, notes, now)
}

// ApplySync applies a reconciled carrier event. The move is accepted only
// when auto-sync is enabled and the target lies strictly ahead of the
// current stage; a backward or same-stage event is silently ignored — the
// returned bool reports whether a transition was applied. Carriers deliver
// out-of-order and duplicate events, so ignoring is not an error.
func (p *Progress) ApplySync(
	definition *workflow.Definition,
	targetStageID string,
	now time.Time,
) (bool, error) {
	current, err := p.CurrentStage(definition)
	if err != nil {
		return false, err
	}
	target, err := definition.StageByID(targetStageID)
	if err != nil {
		return false, err
	}

	if !p.autoSyncEnabled || target.Index() <= current.Index() {
		return false, nil
	}

	if err := p.append(current.ID(), target.ID(), AutomaticSync, false, "", nil, "", now); err != nil {
		return false, err
	}
	return true, nil
}

// SetAutoSync toggles the auto-sync flag. It is not a transition and
// appends no history, but it bumps the version so the toggle participates
// in the same conditional-write linearization as stage moves.
func (p *Progress) SetAutoSync(enabled bool) {
	p.autoSyncEnabled = enabled
	p.version++
}

// ReassignWorkflow switches the order to a different workflow definition.
// Only valid while the order still sits on the first stage of its current
// workflow; reassigning mid-flight is rejected with ErrWorkflowLocked to
// avoid stage-id collisions across definitions. The switch is recorded as
// a SystemInit transition onto the new workflow's first stage.
func (p *Progress) ReassignWorkflow(
	current *workflow.Definition,
	replacement *workflow.Definition,
	now time.Time,
) error {
	if err := p.ensureDefinition(current); err != nil {
		return err
	}
	if err := replacement.Validate(); err != nil {
		return err
	}
	if p.currentStageID != current.First().ID() {
		return ErrWorkflowLocked
	}
	if replacement.ID().IsEqual(p.workflowID) {
		return ErrNoChange
	}

	first := replacement.First()
	if err := p.append(p.currentStageID, first.ID(), SystemInit, false, "", nil, "", now); err != nil {
		return err
	}
	p.workflowID = replacement.ID()
	return nil
}

// append validates and appends one transition, moving the current stage
// and bumping the version. All policy methods funnel through it.
func (p *Progress) append(
	fromStageID string,
	toStageID string,
	source Source,
	isOverride bool,
	reason string,
	actorID *kernel.UUID,
	notes string,
	now time.Time,
) error {
	from := fromStageID
	transition, err := newTransition(&from, toStageID, source, isOverride, reason, actorID, notes, now)
	if err != nil {
		return err
	}

	p.history = append(p.history, transition)
	p.currentStageID = toStageID
	p.version++
	return nil
}

func (p *Progress) ensureDefinition(definition *workflow.Definition) error {
	if err := definition.Validate(); err != nil {
		return err
	}
	if !definition.ID().IsEqual(p.workflowID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"workflow definition is invalid",
			fmt.Errorf("definition %s does not match the record's workflow %s",
				definition.ID(), p.workflowID),
		)
	}
	return nil
}
