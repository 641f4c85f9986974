package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerProgressQueryHandler builds the customer projection from the
// current stage index and the workflow's customer-visible stages.
type GetCustomerProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerProgressQueryHandler creates a handler for customer progress queries.
func NewGetCustomerProgressQueryHandler(db *gorm.DB) GetCustomerProgressQueryHandler {
	return GetCustomerProgressQueryHandler{db: db}
}

// Handle executes the query and returns the customer view.
// Returns errs.ErrObjectNotFound when the order has no progress record.
func (h GetCustomerProgressQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerProgressQuery,
) (GetCustomerProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerProgressQueryResponse{}, err
	}

	currentIndex, currentLabel, category, workflowID, err := h.readCurrent(ctx, query.OrderID())
	if err != nil {
		return GetCustomerProgressQueryResponse{}, err
	}

	response := GetCustomerProgressQueryResponse{
		CurrentStageLabel:    currentLabel,
		CompletedStageLabels: make([]string, 0),
		Status:               category.String(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT stage_index, label, customer_visible
		FROM workflow_stages
		WHERE workflow_id = ?
		ORDER BY stage_index
	`, workflowID).Rows()
	if err != nil {
		return GetCustomerProgressQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var stageIndex int
		var label string
		var customerVisible bool

		if err = rows.Scan(&stageIndex, &label, &customerVisible); err != nil {
			return GetCustomerProgressQueryResponse{}, err
		}

		switch {
		case stageIndex < currentIndex && customerVisible:
			response.CompletedStageLabels = append(response.CompletedStageLabels, label)
		case stageIndex == currentIndex:
			response.CompletedStageLabels = append(response.CompletedStageLabels, label)
		case stageIndex > currentIndex && customerVisible:
			response.EstimatedStagesRemaining++
		}
	}

	if err = rows.Err(); err != nil {
		return GetCustomerProgressQueryResponse{}, err
	}

	return response, nil
}

func (h GetCustomerProgressQueryHandler) readCurrent(
	ctx context.Context,
	orderID kernel.UUID,
) (int, string, workflow.StageCategory, string, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT s.stage_index, s.label, s.category, r.workflow_id
		FROM progress_records r
		JOIN workflow_stages s
			ON s.workflow_id = r.workflow_id AND s.stage_id = r.current_stage_id
		WHERE r.order_id = ?
	`, orderID.String()).Row()

	var currentIndex, category int
	var label, workflowID string

	err := row.Scan(&currentIndex, &label, &category, &workflowID)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, "", workflow.UnknownCategory, "", errs.NewObjectNotFoundError("orderId", orderID)
	}
	if err != nil {
		return 0, "", workflow.UnknownCategory, "", err
	}

	return currentIndex, label, workflow.StageCategory(category), workflowID, nil
}
