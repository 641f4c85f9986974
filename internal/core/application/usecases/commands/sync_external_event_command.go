package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSyncExternalEventCommandIsNotConstructed = errors.New(
		"SyncExternalEventCommand must be created via NewSyncExternalEventCommand constructor",
	)
)

// SyncExternalEventCommand represents a normalized carrier tracking event
// to reconcile against an order's workflow. The status code has already
// been normalized at the webhook boundary; raw carrier payloads never
// reach this layer.
type SyncExternalEventCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    workflow.ExternalStatusCode

	guard guard.ConstructorGuard
}

// NewSyncExternalEventCommand creates a command carrying one normalized
// carrier event. Validates the order id and the status code vocabulary.
func NewSyncExternalEventCommand(
	orderID kernel.UUID,
	code workflow.ExternalStatusCode,
) (SyncExternalEventCommand, error) {
	command := SyncExternalEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCode(code),
	); err != nil {
		return SyncExternalEventCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncExternalEventCommand) Validate() error {
	return c.guard.Validate(ErrSyncExternalEventCommandIsNotConstructed)
}

// OrderID returns the order the carrier event is about.
func (c SyncExternalEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Code returns the normalized carrier status code.
func (c SyncExternalEventCommand) Code() workflow.ExternalStatusCode {
	return c.code
}

func (c *SyncExternalEventCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SyncExternalEventCommand) setCode(code workflow.ExternalStatusCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}
