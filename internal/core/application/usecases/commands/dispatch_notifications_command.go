package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// maxDispatchBatchSize bounds one dispatch run so a backlog cannot hold
// the job past its next tick.
const maxDispatchBatchSize = 100

var (
	ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
		"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
	)
)

// DispatchNotificationsCommand represents a request to drain a batch of
// pending customer notifications. Fired on a schedule by the job manager.
type DispatchNotificationsCommand struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a command to dispatch up to limit
// pending notifications.
func NewDispatchNotificationsCommand(limit int) (DispatchNotificationsCommand, error) {
	command := DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setLimit(limit); err != nil {
		return DispatchNotificationsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

// Limit returns the maximum batch size for one dispatch run.
func (c DispatchNotificationsCommand) Limit() int {
	return c.limit
}

func (c *DispatchNotificationsCommand) setLimit(limit int) error {
	if limit < 1 || limit > maxDispatchBatchSize {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxDispatchBatchSize)
	}

	c.limit = limit
	return nil
}
