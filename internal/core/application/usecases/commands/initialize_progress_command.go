package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrInitializeProgressCommandIsNotConstructed = errors.New(
		"InitializeProgressCommand must be created via NewInitializeProgressCommand constructor",
	)
)

// InitializeProgressCommand represents a request to create the progress
// record for an order, placing it on the first stage of its assigned or
// default workflow. Initializing twice is a no-op by contract.
//
// Example:
//
//	cmd, err := NewInitializeProgressCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	record, err := handler.Handle(ctx, cmd)
type InitializeProgressCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewInitializeProgressCommand creates a command to initialize an order's
// progress record. Validates that the order id is a constructed UUID.
func NewInitializeProgressCommand(orderID kernel.UUID) (InitializeProgressCommand, error) {
	command := InitializeProgressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return InitializeProgressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c InitializeProgressCommand) Validate() error {
	return c.guard.Validate(ErrInitializeProgressCommandIsNotConstructed)
}

// OrderID returns the order whose progress record should be created.
func (c InitializeProgressCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *InitializeProgressCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
