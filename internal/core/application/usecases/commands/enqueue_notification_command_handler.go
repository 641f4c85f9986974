package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
)

// EnqueueNotificationCommandHandler queues a pending customer
// notification for the dispatch job to drain.
type EnqueueNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewEnqueueNotificationCommandHandler creates a handler for notification enqueueing.
func NewEnqueueNotificationCommandHandler(uowFactory NotificationUoWFactory) EnqueueNotificationCommandHandler {
	return EnqueueNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the enqueue command.
func (h EnqueueNotificationCommandHandler) Handle(ctx context.Context, command EnqueueNotificationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	queued, err := notification.NewNotification(
		kernel.NewUUID(),
		command.OrderID(),
		command.StageLabel(),
		command.Category(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, queued); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit notification enqueue: %w", err)
	}

	return nil
}
