package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAdvanceStageCommandIsNotConstructed = errors.New(
		"AdvanceStageCommand must be created via NewAdvanceStageCommand constructor",
	)
)

// AdvanceStageCommand represents an admin's request to move an order to
// the stage immediately following its current one: the default,
// non-override path that needs no reason.
type AdvanceStageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

// NewAdvanceStageCommand creates a command to advance an order by one stage.
// Validates that both the order id and the acting admin's id are constructed UUIDs.
func NewAdvanceStageCommand(orderID, actorID kernel.UUID, notes string) (AdvanceStageCommand, error) {
	command := AdvanceStageCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
	); err != nil {
		return AdvanceStageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStageCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the admin issuing the advance.
func (c AdvanceStageCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Notes returns the optional free-form commentary.
func (c AdvanceStageCommand) Notes() string {
	return c.notes
}

func (c *AdvanceStageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceStageCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
