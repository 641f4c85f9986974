package postgres

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the order rows owned by the surrounding application.
// The engine only ever reads this table: existence checks, workflow
// assignment lookups and tracking number resolution.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WorkflowID     *uuid.UUID `gorm:"type:uuid"`
	TrackingNumber *string    `gorm:"index"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// GormOrderDirectory implements the OrderDirectory port against the
// shared store's orders table.
type GormOrderDirectory struct {
	db *gorm.DB
}

// NewGormOrderDirectory creates an order directory backed by GORM.
func NewGormOrderDirectory(db *gorm.DB) *GormOrderDirectory {
	return &GormOrderDirectory{db: db}
}

// OrderExists reports whether an order with the given id exists.
func (d *GormOrderDirectory) OrderExists(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := d.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AssignedOrDefaultWorkflowID returns the workflow explicitly assigned to
// the order, falling back to the default workflow definition.
func (d *GormOrderDirectory) AssignedOrDefaultWorkflowID(
	ctx context.Context,
	orderID kernel.UUID,
) (kernel.UUID, error) {
	if err := orderID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var dto OrderDTO
	err := d.db.WithContext(ctx).First(&dto, "id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return kernel.UUID{}, err
	}

	if dto.WorkflowID != nil {
		return kernel.UUIDFromBytes((*dto.WorkflowID)[:])
	}

	var defaultID uuid.UUID
	err = d.db.WithContext(ctx).Raw(`
		SELECT id FROM workflows WHERE is_default = true
	`).Row().Scan(&defaultID)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("workflow", "default", err)
	}

	return kernel.UUIDFromBytes(defaultID[:])
}

// OrderIDByTrackingNumber resolves a carrier tracking number to its order.
func (d *GormOrderDirectory) OrderIDByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) (kernel.UUID, error) {
	if trackingNumber == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	var dto OrderDTO
	err := d.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(dto.ID[:])
}
