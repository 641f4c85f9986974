package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetWorkflowQueryIsNotConstructed = errors.New(
		"GetWorkflowQuery must be created via NewGetWorkflowQuery constructor",
	)
)

// GetWorkflowQuery retrieves a workflow definition with its full stage list.
type GetWorkflowQuery struct { //nolint:recvcheck //using for validation
	workflowID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkflowQuery creates a query to retrieve a workflow definition.
func NewGetWorkflowQuery(workflowID kernel.UUID) (GetWorkflowQuery, error) {
	if err := workflowID.Validate(); err != nil {
		return GetWorkflowQuery{}, err
	}

	return GetWorkflowQuery{
		workflowID: workflowID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkflowQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkflowQueryIsNotConstructed)
}

// WorkflowID returns the requested definition's identifier.
func (q GetWorkflowQuery) WorkflowID() kernel.UUID {
	return q.workflowID
}

// WorkflowStageView is the projection of one stage in a definition.
type WorkflowStageView struct {
	ID                     string
	Index                  int
	Label                  string
	Category               string
	IsTerminal             bool
	CustomerVisible        bool
	ExternalStatusTriggers []string
}

// GetWorkflowQueryResponse represents a workflow definition with its
// ordered stage list.
type GetWorkflowQueryResponse struct {
	ID        kernel.UUID
	Name      string
	IsDefault bool
	Stages    []WorkflowStageView
}
