package workflowrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkflowRepository implements WorkflowRepository using GORM.
type GormWorkflowRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkflowRepository creates a new GORM workflow repository.
func NewGormWorkflowRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkflowRepository {
	return &GormWorkflowRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new workflow definition to the database. A definition
// flagged as default displaces the previous default.
func (r *GormWorkflowRepository) Add(ctx context.Context, definition *workflow.Definition) error {
	if err := definition.Validate(); err != nil {
		return err
	}

	dto := fromDomain(definition)
	if dto.IsDefault {
		if err := r.clearDefault(ctx, dto); err != nil {
			return err
		}
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(definition.ID(), definition)
	return nil
}

// Update replaces a workflow definition's name and stage list. The update
// is rejected with workflow.ErrStageInUse when a live progress record
// occupies a stage the new stage list removes or reorders.
func (r *GormWorkflowRepository) Update(ctx context.Context, definition *workflow.Definition) error {
	if err := definition.Validate(); err != nil {
		return err
	}

	existing, err := r.Get(ctx, definition.ID())
	if err != nil {
		return err
	}

	occupied, err := r.occupiedStageIDs(ctx, definition.ID())
	if err != nil {
		return err
	}

	if err = existing.EnsureCompatibleUpdate(definition, occupied); err != nil {
		return err
	}

	dto := fromDomain(definition)
	if dto.IsDefault {
		if err = r.clearDefault(ctx, dto); err != nil {
			return err
		}
	}

	result := r.db.WithContext(ctx).
		Model(&WorkflowDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "is_default": dto.IsDefault})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	// The stage list is replaced whole; compatibility was checked above.
	if err = r.db.WithContext(ctx).
		Where("workflow_id = ?", dto.ID).
		Delete(&StageDTO{}).Error; err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto.Stages).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(definition.ID(), definition)
	return nil
}

// Get retrieves a workflow definition by ID.
func (r *GormWorkflowRepository) Get(ctx context.Context, id kernel.UUID) (*workflow.Definition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkflowDTO
	err := r.db.WithContext(ctx).
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("stage_index")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workflow", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDefault retrieves the definition applied to orders with no explicit
// workflow assignment.
func (r *GormWorkflowRepository) GetDefault(ctx context.Context) (*workflow.Definition, error) {
	var dto WorkflowDTO
	err := r.db.WithContext(ctx).
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("stage_index")
		}).
		First(&dto, "is_default = ?", true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workflow", "default")
		}
		return nil, err
	}

	return toDomain(dto)
}

// occupiedStageIDs returns the distinct stages live progress records
// currently occupy within the workflow.
func (r *GormWorkflowRepository) occupiedStageIDs(ctx context.Context, id kernel.UUID) ([]string, error) {
	var stageIDs []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT current_stage_id
		FROM progress_records
		WHERE workflow_id = ?
	`, id.Bytes()).Scan(&stageIDs).Error
	if err != nil {
		return nil, err
	}
	return stageIDs, nil
}

func (r *GormWorkflowRepository) clearDefault(ctx context.Context, dto WorkflowDTO) error {
	return r.db.WithContext(ctx).
		Model(&WorkflowDTO{}).
		Where("is_default = ? AND id <> ?", true, dto.ID).
		Update("is_default", false).Error
}
