package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrEnqueueNotificationCommandIsNotConstructed = errors.New(
		"EnqueueNotificationCommand must be created via NewEnqueueNotificationCommand constructor",
	)
)

// EnqueueNotificationCommand represents a request to queue a customer
// notification about an order reaching a shipped or delivered stage.
type EnqueueNotificationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	stageLabel string
	category   workflow.StageCategory

	guard guard.ConstructorGuard
}

// NewEnqueueNotificationCommand creates a command to queue a customer notification.
func NewEnqueueNotificationCommand(
	orderID kernel.UUID,
	stageLabel string,
	category workflow.StageCategory,
) (EnqueueNotificationCommand, error) {
	command := EnqueueNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStageLabel(stageLabel),
		command.setCategory(category),
	); err != nil {
		return EnqueueNotificationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EnqueueNotificationCommand) Validate() error {
	return c.guard.Validate(ErrEnqueueNotificationCommandIsNotConstructed)
}

// OrderID returns the order the notification is about.
func (c EnqueueNotificationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StageLabel returns the customer-facing label of the reached stage.
func (c EnqueueNotificationCommand) StageLabel() string {
	return c.stageLabel
}

// Category returns the stage category that triggered the notification.
func (c EnqueueNotificationCommand) Category() workflow.StageCategory {
	return c.category
}

func (c *EnqueueNotificationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EnqueueNotificationCommand) setStageLabel(stageLabel string) error {
	if stageLabel == "" {
		return errs.NewValueIsRequiredError("stageLabel")
	}

	c.stageLabel = stageLabel
	return nil
}

func (c *EnqueueNotificationCommand) setCategory(category workflow.StageCategory) error {
	if !notification.Notifiable(category) {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%s stages do not notify customers", category),
		)
	}

	c.category = category
	return nil
}
