package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrTransitionStageCommandIsNotConstructed = errors.New(
		"TransitionStageCommand must be created via NewTransitionStageCommand constructor",
	)
)

// TransitionStageCommand represents an admin's request to move an order to
// an arbitrary stage of its workflow. Reverts and skips are this command
// with the override flag forced on; the policy on the aggregate decides
// when a reason is mandatory.
type TransitionStageCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	stageID    string
	actorID    kernel.UUID
	isOverride bool
	reason     string
	notes      string

	guard guard.ConstructorGuard
}

// NewTransitionStageCommand creates a command to move an order to the
// given stage. Validates ids and requires a non-empty target stage id;
// reason sufficiency is a policy decision left to the aggregate.
func NewTransitionStageCommand(
	orderID kernel.UUID,
	stageID string,
	actorID kernel.UUID,
	isOverride bool,
	reason string,
	notes string,
) (TransitionStageCommand, error) {
	command := TransitionStageCommand{
		isOverride: isOverride,
		reason:     reason,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStageID(stageID),
		command.setActorID(actorID),
	); err != nil {
		return TransitionStageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionStageCommand) Validate() error {
	return c.guard.Validate(ErrTransitionStageCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c TransitionStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StageID returns the requested target stage.
func (c TransitionStageCommand) StageID() string {
	return c.stageID
}

// ActorID returns the admin issuing the move.
func (c TransitionStageCommand) ActorID() kernel.UUID {
	return c.actorID
}

// IsOverride reports whether the caller explicitly flagged the move as an override.
func (c TransitionStageCommand) IsOverride() bool {
	return c.isOverride
}

// Reason returns the human-supplied rationale, possibly empty.
func (c TransitionStageCommand) Reason() string {
	return c.reason
}

// Notes returns the optional free-form commentary.
func (c TransitionStageCommand) Notes() string {
	return c.notes
}

func (c *TransitionStageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionStageCommand) setStageID(stageID string) error {
	if stageID == "" {
		return errs.NewValueIsRequiredError("target stage id")
	}

	c.stageID = stageID
	return nil
}

func (c *TransitionStageCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
