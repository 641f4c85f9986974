// Package notify contains outbound notification delivery adapters.
package notify

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/notification"
)

// SlogNotifier delivers notifications to the structured log. It stands in
// for a real mail or SMS gateway in environments that have none configured.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that writes deliveries to logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger.With("component", "notifier")}
}

func (n *SlogNotifier) Send(ctx context.Context, msg *notification.Notification) error {
	n.logger.InfoContext(ctx, "Customer notification",
		"orderId", msg.OrderID().String(),
		"stage", msg.StageLabel(),
		"category", msg.Category().String())
	return nil
}
