package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateWorkflowCommandIsNotConstructed = errors.New(
		"CreateWorkflowCommand must be created via NewCreateWorkflowCommand constructor",
	)
)

// CreateWorkflowCommand represents a request to register a new workflow
// definition. Stages arrive already constructed; the command only
// validates the envelope, the definition factory enforces the ordering
// and uniqueness rules.
type CreateWorkflowCommand struct { //nolint:recvcheck //using for validation
	name      string
	stages    []workflow.Stage
	isDefault bool

	guard guard.ConstructorGuard
}

// NewCreateWorkflowCommand creates a command to register a workflow definition.
func NewCreateWorkflowCommand(name string, stages []workflow.Stage, isDefault bool) (CreateWorkflowCommand, error) {
	command := CreateWorkflowCommand{
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setStages(stages),
	); err != nil {
		return CreateWorkflowCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkflowCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkflowCommandIsNotConstructed)
}

// Name returns the workflow display name.
func (c CreateWorkflowCommand) Name() string {
	return c.name
}

// Stages returns the ordered stage list.
func (c CreateWorkflowCommand) Stages() []workflow.Stage {
	stages := make([]workflow.Stage, len(c.stages))
	copy(stages, c.stages)
	return stages
}

// IsDefault reports whether the workflow should become the tenant default.
func (c CreateWorkflowCommand) IsDefault() bool {
	return c.isDefault
}

func (c *CreateWorkflowCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateWorkflowCommand) setStages(stages []workflow.Stage) error {
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
