package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"
)

// DispatchNotificationsCommandHandler drains the pending notification
// queue. A failed send is logged and left pending for the next run, it
// never aborts the batch.
type DispatchNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	notifier   ports.Notifier
}

// NewDispatchNotificationsCommandHandler creates a handler for notification dispatch.
func NewDispatchNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	notifier ports.Notifier,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the dispatch command and returns the number of
// notifications delivered.
func (h DispatchNotificationsCommandHandler) Handle(
	ctx context.Context,
	command DispatchNotificationsCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.NotificationRepository().GetPending(ctx, command.Limit())
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, queued := range pending {
		if err = h.notifier.Send(ctx, queued); err != nil {
			slog.Warn("notification send failed, will retry on next run",
				"notificationId", queued.ID().String(),
				"orderId", queued.OrderID().String(),
				"error", err)
			continue
		}

		queued.MarkSent(time.Now().UTC())
		if err = uow.NotificationRepository().Update(ctx, queued); err != nil {
			return dispatched, err
		}

		dispatched++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit notification dispatch: %w", err)
	}

	return dispatched, nil
}
