package progress

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrTransitionIsNotConstructed is returned when a Transition instance was
	// not created through a factory method.
	ErrTransitionIsNotConstructed = errors.New(
		"Transition must be created via the Progress aggregate or RestoreTransition",
	)
)

// Transition is an immutable record of one validated stage move. Once
// appended to a progress record's history it is never mutated or deleted.
type Transition struct {
	// fromStageID is the stage the order left; nil only for the initializing transition
	fromStageID *string

	// toStageID is the stage the order moved to
	toStageID string

	// source identifies who or what issued the transition
	source Source

	// isOverride marks moves that did not follow the default advance-by-one path
	isOverride bool

	// reason is the human-supplied rationale; required iff the move is an override
	reason string

	// actorID is the human actor; nil for AutomaticSync and SystemInit
	actorID *kernel.UUID

	// notes is free-form commentary, never required
	notes string

	// occurredAt is when the transition was applied
	occurredAt time.Time

	// isConstructed ensures the transition was created via a factory method
	isConstructed bool
}

// RestoreTransition reconstructs a Transition from persistence, applying
// the same validation the aggregate applies when appending one.
func RestoreTransition(
	fromStageID *string,
	toStageID string,
	source Source,
	isOverride bool,
	reason string,
	actorID *kernel.UUID,
	notes string,
	occurredAt time.Time,
) (Transition, error) {
	return newTransition(fromStageID, toStageID, source, isOverride, reason, actorID, notes, occurredAt)
}

// newTransition builds and validates a transition record. Only the
// aggregate and the persistence layer create transitions.
func newTransition(
	fromStageID *string,
	toStageID string,
	source Source,
	isOverride bool,
	reason string,
	actorID *kernel.UUID,
	notes string,
	occurredAt time.Time,
) (Transition, error) {
	if toStageID == "" {
		return Transition{}, errs.NewValueIsRequiredError("transition target stage")
	}
	if err := source.Validate(); err != nil {
		return Transition{}, err
	}
	if source.RequiresActor() {
		if actorID == nil {
			return Transition{}, errs.NewValueIsRequiredError("transition actor")
		}
		if err := actorID.Validate(); err != nil {
			return Transition{}, err
		}
	} else if actorID != nil {
		return Transition{}, errs.NewValueIsInvalidError("transition actor must be absent for machine-issued transitions")
	}
	if isOverride && reason == "" {
		return Transition{}, ErrMissingReason
	}
	if occurredAt.IsZero() {
		return Transition{}, errs.NewValueIsRequiredError("transition timestamp")
	}

	var from *string
	if fromStageID != nil {
		if *fromStageID == "" {
			return Transition{}, errs.NewValueIsRequiredError("transition origin stage")
		}
		value := *fromStageID
		from = &value
	}

	var actor *kernel.UUID
	if actorID != nil {
		value := *actorID
		actor = &value
	}

	return Transition{
		fromStageID:   from,
		toStageID:     toStageID,
		source:        source,
		isOverride:    isOverride,
		reason:        reason,
		actorID:       actor,
		notes:         notes,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Transition was properly constructed through a factory method.
func (t Transition) Validate() error {
	if !t.isConstructed {
		return ErrTransitionIsNotConstructed
	}
	return nil
}

// FromStageID returns the stage the order left, or nil for the
// initializing transition. The caller receives a copy.
func (t Transition) FromStageID() *string {
	if t.fromStageID == nil {
		return nil
	}
	value := *t.fromStageID
	return &value
}

// ToStageID returns the stage the order moved to.
func (t Transition) ToStageID() string {
	return t.toStageID
}

// Source returns the origin of the transition.
func (t Transition) Source() Source {
	return t.source
}

// IsOverride reports whether the move departed from the default
// advance-by-one path.
func (t Transition) IsOverride() bool {
	return t.isOverride
}

// Reason returns the human-supplied rationale for an override.
func (t Transition) Reason() string {
	return t.reason
}

// ActorID returns the human actor, or nil for machine-issued transitions.
// The caller receives a copy.
func (t Transition) ActorID() *kernel.UUID {
	if t.actorID == nil {
		return nil
	}
	value := *t.actorID
	return &value
}

// Notes returns the free-form commentary attached to the transition.
func (t Transition) Notes() string {
	return t.notes
}

// OccurredAt returns when the transition was applied.
func (t Transition) OccurredAt() time.Time {
	return t.occurredAt
}
