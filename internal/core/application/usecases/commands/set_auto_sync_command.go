package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSetAutoSyncCommandIsNotConstructed = errors.New(
		"SetAutoSyncCommand must be created via NewSetAutoSyncCommand constructor",
	)
)

// SetAutoSyncCommand represents a request to toggle whether carrier
// tracking events may move the order's stage automatically.
type SetAutoSyncCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	enabled bool

	guard guard.ConstructorGuard
}

// NewSetAutoSyncCommand creates a command to toggle the auto-sync flag.
func NewSetAutoSyncCommand(orderID kernel.UUID, enabled bool) (SetAutoSyncCommand, error) {
	command := SetAutoSyncCommand{
		enabled: enabled,
		guard:   guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return SetAutoSyncCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAutoSyncCommand) Validate() error {
	return c.guard.Validate(ErrSetAutoSyncCommandIsNotConstructed)
}

// OrderID returns the order whose flag should change.
func (c SetAutoSyncCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Enabled returns the requested flag value.
func (c SetAutoSyncCommand) Enabled() bool {
	return c.enabled
}

func (c *SetAutoSyncCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
