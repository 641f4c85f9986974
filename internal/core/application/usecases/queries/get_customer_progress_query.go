package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetCustomerProgressQueryIsNotConstructed = errors.New(
		"GetCustomerProgressQuery must be created via NewGetCustomerProgressQuery constructor",
	)
)

// GetCustomerProgressQuery retrieves the customer-facing projection of an
// order's progress. The projection is derived purely from the current
// stage index: it never exposes reasons, actor ids, reverted detours or
// stages hidden from customers.
type GetCustomerProgressQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerProgressQuery creates a query for the customer view.
func NewGetCustomerProgressQuery(orderID kernel.UUID) (GetCustomerProgressQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetCustomerProgressQuery{}, err
	}

	return GetCustomerProgressQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerProgressQueryIsNotConstructed)
}

// OrderID returns the order whose progress is requested.
func (q GetCustomerProgressQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetCustomerProgressQueryResponse represents what a customer sees of an
// order's journey. CompletedStageLabels lists the customer-visible stages
// up to and including the current one, in workflow order; a revert simply
// shortens the list on the next read.
type GetCustomerProgressQueryResponse struct {
	CurrentStageLabel        string
	CompletedStageLabels     []string
	EstimatedStagesRemaining int
	Status                   string
}
