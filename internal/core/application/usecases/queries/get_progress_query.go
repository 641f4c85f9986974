// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return view-specific
// projections, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetProgressQueryIsNotConstructed = errors.New(
		"GetProgressQuery must be created via NewGetProgressQuery constructor",
	)
)

// GetProgressQuery retrieves the full progress record of an order for the
// admin view: current stage, flags, version and the complete transition
// history including reasons and actor ids.
type GetProgressQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProgressQuery creates a query to retrieve an order's progress record.
func NewGetProgressQuery(orderID kernel.UUID) (GetProgressQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetProgressQuery{}, err
	}

	return GetProgressQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetProgressQueryIsNotConstructed)
}

// OrderID returns the order whose progress is requested.
func (q GetProgressQuery) OrderID() kernel.UUID {
	return q.orderID
}

// StageView is the admin-facing projection of one workflow stage.
type StageView struct {
	ID              string
	Index           int
	Label           string
	Category        string
	IsTerminal      bool
	CustomerVisible bool
}

// TransitionView is the admin-facing projection of one history entry.
type TransitionView struct {
	FromStageID *string
	ToStageID   string
	Source      string
	IsOverride  bool
	Reason      string
	ActorID     *kernel.UUID
	Notes       string
	OccurredAt  time.Time
}

// GetProgressQueryResponse represents the admin view of an order's
// progress: everything the engine knows, auditors included.
type GetProgressQueryResponse struct {
	OrderID         kernel.UUID
	WorkflowID      kernel.UUID
	WorkflowName    string
	CurrentStage    StageView
	CoarseStatus    string
	AutoSyncEnabled bool
	Version         int
	History         []TransitionView
}
