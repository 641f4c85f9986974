package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkflowQueryHandler reads a workflow definition from the database.
type GetWorkflowQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkflowQueryHandler creates a handler for workflow queries.
func NewGetWorkflowQueryHandler(db *gorm.DB) GetWorkflowQueryHandler {
	return GetWorkflowQueryHandler{db: db}
}

// Handle executes the query and returns the definition with its stages.
// Returns errs.ErrObjectNotFound when no definition has the given id.
func (h GetWorkflowQueryHandler) Handle(
	ctx context.Context,
	query GetWorkflowQuery,
) (GetWorkflowQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkflowQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, is_default
		FROM workflows
		WHERE id = ?
	`, query.WorkflowID().String()).Row()

	var response GetWorkflowQueryResponse
	var rawID uuid.UUID

	err := row.Scan(&rawID, &response.Name, &response.IsDefault)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetWorkflowQueryResponse{}, errs.NewObjectNotFoundError("workflowId", query.WorkflowID())
	}
	if err != nil {
		return GetWorkflowQueryResponse{}, err
	}

	workflowID, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return GetWorkflowQueryResponse{}, err
	}
	response.ID = workflowID

	stages, err := h.readStages(ctx, query.WorkflowID())
	if err != nil {
		return GetWorkflowQueryResponse{}, err
	}
	response.Stages = stages

	return response, nil
}

func (h GetWorkflowQueryHandler) readStages(
	ctx context.Context,
	workflowID kernel.UUID,
) ([]WorkflowStageView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT stage_id, stage_index, label, category, is_terminal, customer_visible, triggers
		FROM workflow_stages
		WHERE workflow_id = ?
		ORDER BY stage_index
	`, workflowID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stages := make([]WorkflowStageView, 0)
	for rows.Next() {
		var view WorkflowStageView
		var category int
		var rawTriggers []byte

		err = rows.Scan(
			&view.ID,
			&view.Index,
			&view.Label,
			&category,
			&view.IsTerminal,
			&view.CustomerVisible,
			&rawTriggers,
		)
		if err != nil {
			return nil, err
		}

		view.Category = workflow.StageCategory(category).String()
		view.ExternalStatusTriggers = make([]string, 0)
		if len(rawTriggers) > 0 {
			if err = json.Unmarshal(rawTriggers, &view.ExternalStatusTriggers); err != nil {
				return nil, err
			}
		}

		stages = append(stages, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stages, nil
}
