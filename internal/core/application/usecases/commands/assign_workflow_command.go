package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAssignWorkflowCommandIsNotConstructed = errors.New(
		"AssignWorkflowCommand must be created via NewAssignWorkflowCommand constructor",
	)
)

// AssignWorkflowCommand represents a request to measure an order's
// progress against a different workflow definition. Only orders still on
// the first stage of their current workflow may be reassigned.
type AssignWorkflowCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	workflowID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWorkflowCommand creates a command to assign a workflow to an order.
func NewAssignWorkflowCommand(orderID, workflowID kernel.UUID) (AssignWorkflowCommand, error) {
	command := AssignWorkflowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setWorkflowID(workflowID),
	); err != nil {
		return AssignWorkflowCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkflowCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkflowCommandIsNotConstructed)
}

// OrderID returns the order to reassign.
func (c AssignWorkflowCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkflowID returns the workflow definition to assign.
func (c AssignWorkflowCommand) WorkflowID() kernel.UUID {
	return c.workflowID
}

func (c *AssignWorkflowCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignWorkflowCommand) setWorkflowID(workflowID kernel.UUID) error {
	if err := workflowID.Validate(); err != nil {
		return err
	}

	c.workflowID = workflowID
	return nil
}
