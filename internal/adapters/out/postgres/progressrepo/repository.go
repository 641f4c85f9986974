package progressrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProgressRepository implements ProgressRepository using GORM.
// Save is the concurrency boundary of the whole engine: a conditional
// UPDATE keyed on the version token linearizes concurrent writers without
// any locks.
type GormProgressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProgressRepository creates a new GORM progress repository.
func NewGormProgressRepository(db *gorm.DB, tracker aggregateTracker) *GormProgressRepository {
	return &GormProgressRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the progress record for an order with its full history.
func (r *GormProgressRepository) Get(ctx context.Context, orderID kernel.UUID) (*progress.Progress, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ProgressDTO
	err := r.db.WithContext(ctx).
		Preload("Transitions", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		}).
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("progress", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CreateIfAbsent persists a freshly initialized record unless one already
// exists for the order. Implemented as ON CONFLICT DO NOTHING on the head
// row followed by a re-read, so two racing initializations both succeed
// and observe the same stored record.
func (r *GormProgressRepository) CreateIfAbsent(
	ctx context.Context,
	record *progress.Progress,
) (*progress.Progress, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("Transitions").
		Create(&dto)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Lost the race (or a repeat initialize): hand back what is stored.
		return r.Get(ctx, record.OrderID())
	}

	rows := transitionsFromDomain(record.OrderID(), record.History(), 0)
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}

	record.MarkTransitionsPersisted()
	r.tracker.TrackAggregate(record.OrderID(), record)
	return record, nil
}

// Save persists the head row conditionally on the stored version still
// equalling expectedVersion and appends the newly added history rows.
// A lost race yields errs.ErrVersionConflict; the caller reloads and
// retries.
func (r *GormProgressRepository) Save(
	ctx context.Context,
	record *progress.Progress,
	expectedVersion int,
) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&ProgressDTO{}).
		Where("order_id = ? AND version = ?", dto.OrderID, expectedVersion).
		Updates(map[string]any{
			"workflow_id":       dto.WorkflowID,
			"current_stage_id":  dto.CurrentStageID,
			"auto_sync_enabled": dto.AutoSyncEnabled,
			"version":           dto.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("progress", expectedVersion)
	}

	pending := record.PendingTransitions()
	if len(pending) > 0 {
		firstSeq := len(record.History()) - len(pending)
		rows := transitionsFromDomain(record.OrderID(), pending, firstSeq)
		if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	record.MarkTransitionsPersisted()
	r.tracker.TrackAggregate(record.OrderID(), record)
	return nil
}
