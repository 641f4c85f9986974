package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProgressQueryHandler reads an order's progress record and full
// transition history from the database.
type GetProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetProgressQueryHandler creates a handler for progress queries.
// Requires a GORM database connection for query execution.
func NewGetProgressQueryHandler(db *gorm.DB) GetProgressQueryHandler {
	return GetProgressQueryHandler{db: db}
}

// Handle executes the query and returns the admin view of the record.
// Returns errs.ErrObjectNotFound when the order has no progress record.
func (h GetProgressQueryHandler) Handle(
	ctx context.Context,
	query GetProgressQuery,
) (GetProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProgressQueryResponse{}, err
	}

	response, err := h.readRecord(ctx, query.OrderID())
	if err != nil {
		return GetProgressQueryResponse{}, err
	}

	history, err := h.readHistory(ctx, query.OrderID())
	if err != nil {
		return GetProgressQueryResponse{}, err
	}
	response.History = history

	return response, nil
}

func (h GetProgressQueryHandler) readRecord(
	ctx context.Context,
	orderID kernel.UUID,
) (GetProgressQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			r.order_id,
			r.workflow_id,
			w.name,
			r.auto_sync_enabled,
			r.version,
			s.stage_id,
			s.stage_index,
			s.label,
			s.category,
			s.is_terminal,
			s.customer_visible
		FROM progress_records r
		JOIN workflows w ON w.id = r.workflow_id
		JOIN workflow_stages s
			ON s.workflow_id = r.workflow_id AND s.stage_id = r.current_stage_id
		WHERE r.order_id = ?
	`, orderID.String()).Row()

	var response GetProgressQueryResponse
	var rawOrderID, rawWorkflowID uuid.UUID
	var category int

	err := row.Scan(
		&rawOrderID,
		&rawWorkflowID,
		&response.WorkflowName,
		&response.AutoSyncEnabled,
		&response.Version,
		&response.CurrentStage.ID,
		&response.CurrentStage.Index,
		&response.CurrentStage.Label,
		&category,
		&response.CurrentStage.IsTerminal,
		&response.CurrentStage.CustomerVisible,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetProgressQueryResponse{}, errs.NewObjectNotFoundError("orderId", orderID)
	}
	if err != nil {
		return GetProgressQueryResponse{}, err
	}

	orderUUID, err := kernel.UUIDFromBytes(rawOrderID[:])
	if err != nil {
		return GetProgressQueryResponse{}, err
	}
	workflowUUID, err := kernel.UUIDFromBytes(rawWorkflowID[:])
	if err != nil {
		return GetProgressQueryResponse{}, err
	}

	response.OrderID = orderUUID
	response.WorkflowID = workflowUUID
	response.CurrentStage.Category = workflow.StageCategory(category).String()
	response.CoarseStatus = workflow.StageCategory(category).String()

	return response, nil
}

func (h GetProgressQueryHandler) readHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]TransitionView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_stage_id,
			to_stage_id,
			source,
			is_override,
			reason,
			actor_id,
			notes,
			occurred_at
		FROM progress_transitions
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]TransitionView, 0)
	for rows.Next() {
		var view TransitionView
		var source int
		var rawActorID *uuid.UUID

		err = rows.Scan(
			&view.FromStageID,
			&view.ToStageID,
			&source,
			&view.IsOverride,
			&view.Reason,
			&rawActorID,
			&view.Notes,
			&view.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		view.Source = progress.Source(source).String()
		if rawActorID != nil {
			actorID, idErr := kernel.UUIDFromBytes(rawActorID[:])
			if idErr != nil {
				return nil, idErr
			}
			view.ActorID = &actorID
		}

		history = append(history, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
