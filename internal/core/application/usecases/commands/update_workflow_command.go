package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateWorkflowCommandIsNotConstructed = errors.New(
		"UpdateWorkflowCommand must be created via NewUpdateWorkflowCommand constructor",
	)
)

// UpdateWorkflowCommand represents a request to replace an existing
// workflow definition's name and stage list.
type UpdateWorkflowCommand struct { //nolint:recvcheck //using for validation
	workflowID kernel.UUID
	name       string
	stages     []workflow.Stage
	isDefault  bool

	guard guard.ConstructorGuard
}

// NewUpdateWorkflowCommand creates a command to update a workflow definition.
func NewUpdateWorkflowCommand(
	workflowID kernel.UUID,
	name string,
	stages []workflow.Stage,
	isDefault bool,
) (UpdateWorkflowCommand, error) {
	command := UpdateWorkflowCommand{
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkflowID(workflowID),
		command.setName(name),
		command.setStages(stages),
	); err != nil {
		return UpdateWorkflowCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWorkflowCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkflowCommandIsNotConstructed)
}

// WorkflowID returns the definition to update.
func (c UpdateWorkflowCommand) WorkflowID() kernel.UUID {
	return c.workflowID
}

// Name returns the new workflow display name.
func (c UpdateWorkflowCommand) Name() string {
	return c.name
}

// Stages returns the new ordered stage list.
func (c UpdateWorkflowCommand) Stages() []workflow.Stage {
	stages := make([]workflow.Stage, len(c.stages))
	copy(stages, c.stages)
	return stages
}

// IsDefault reports whether the workflow should become the tenant default.
func (c UpdateWorkflowCommand) IsDefault() bool {
	return c.isDefault
}

func (c *UpdateWorkflowCommand) setWorkflowID(workflowID kernel.UUID) error {
	if err := workflowID.Validate(); err != nil {
		return err
	}

	c.workflowID = workflowID
	return nil
}

func (c *UpdateWorkflowCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateWorkflowCommand) setStages(stages []workflow.Stage) error {
	if len(stages) == 0 {
		return errs.NewValueIsRequiredError("stages")
	}

	for _, stage := range stages {
		if err := stage.Validate(); err != nil {
			return err
		}
	}

	c.stages = make([]workflow.Stage, len(stages))
	copy(c.stages, stages)
	return nil
}
