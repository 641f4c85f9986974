// Package notificationrepo provides data transfer objects and mapping
// functions for the queued customer notification entities.
package notificationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for queued customer
// notifications. Indexed by status so the dispatch job can drain pending
// rows cheaply.
type NotificationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	StageLabel string
	Category   int
	Status     int `gorm:"index"`
	CreatedAt  time.Time
	SentAt     *time.Time
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification entity to its database representation.
func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         n.ID().Bytes(),
		OrderID:    n.OrderID().Bytes(),
		StageLabel: n.StageLabel(),
		Category:   int(n.Category()),
		Status:     int(n.Status()),
		CreatedAt:  n.CreatedAt(),
		SentAt:     n.SentAt(),
	}
}

// toDomain converts a database DTO to a notification entity.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		orderID,
		dto.StageLabel,
		workflow.StageCategory(dto.Category),
		notification.Status(dto.Status),
		dto.CreatedAt,
		dto.SentAt,
	)
}
