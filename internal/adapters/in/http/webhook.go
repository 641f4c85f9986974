package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// signatureHeader carries the hex-encoded HMAC-SHA256 of the raw request
// body, keyed with the per-carrier shared secret.
const signatureHeader = "X-Carrier-Signature"

// carrierStatusCodes normalizes the carrier's payload status vocabulary to
// the engine's codes. Unlisted statuses are unmapped; the event is
// acknowledged and dropped.
func carrierStatusCodes() map[string]workflow.ExternalStatusCode {
	return map[string]workflow.ExternalStatusCode{
		"info_received":         workflow.StatusInfoReceived,
		"label_created":         workflow.StatusInfoReceived,
		"picked_up":             workflow.StatusPickedUp,
		"acceptance":            workflow.StatusPickedUp,
		"in_transit":            workflow.StatusInTransit,
		"arrived_at_facility":   workflow.StatusInTransit,
		"departed_facility":     workflow.StatusInTransit,
		"customs_cleared":       workflow.StatusInTransit,
		"out_for_delivery":      workflow.StatusOutForDelivery,
		"delivered":             workflow.StatusDelivered,
		"delivered_to_locker":   workflow.StatusDelivered,
		"returned":              workflow.StatusReturned,
		"returned_to_sender":    workflow.StatusReturned,
		"exception":             workflow.StatusException,
		"delivery_attempt_fail": workflow.StatusException,
	}
}

// CarrierWebhook handles POST /api/v1/webhooks/carrier.
//
// The raw body is authenticated before any parsing; a missing or invalid
// signature is the only rejection the carrier ever sees. After acceptance
// the endpoint always answers 200: unresolvable tracking numbers, missing
// progress records and unmapped statuses are logged and acknowledged so
// the carrier does not retry events the engine deliberately ignores.
func (s *Server) CarrierWebhook(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return badRequest(ctx, "Failed to read request body")
	}

	if !s.verifySignature(body, ctx.Request().Header.Get(signatureHeader)) {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid signature",
		})
	}

	var event servers.CarrierWebhookEvent
	if err = json.Unmarshal(body, &event); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if event.TrackingNumber == "" || event.Status == "" {
		return badRequest(ctx, "trackingNumber and status are required")
	}

	code, ok := carrierStatusCodes()[strings.ToLower(event.Status)]
	if !ok {
		s.logger.Info("carrier status has no mapping, event dropped",
			"trackingNumber", event.TrackingNumber,
			"status", event.Status)
		return ctx.NoContent(http.StatusOK)
	}

	orderID, err := s.directory.OrderIDByTrackingNumber(ctx.Request().Context(), event.TrackingNumber)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			s.logger.Info("tracking number resolves to no order, event dropped",
				"trackingNumber", event.TrackingNumber)
			return ctx.NoContent(http.StatusOK)
		}
		return s.mapError(ctx, err)
	}

	cmd, err := commands.NewSyncExternalEventCommand(orderID, code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.syncHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, services.ErrUnmappedStatus) {
			s.logger.Info("carrier event not applicable, event dropped",
				"orderId", orderID.String(),
				"status", event.Status,
				"reason", err.Error())
			return ctx.NoContent(http.StatusOK)
		}
		return s.mapError(ctx, err)
	}

	s.enqueueNotification(ctx, result)
	return ctx.NoContent(http.StatusOK)
}

// verifySignature checks the hex HMAC-SHA256 of body against the shared
// secret in constant time.
func (s *Server) verifySignature(body []byte, signature string) bool {
	if signature == "" || len(s.webhookSecret) == 0 {
		return false
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, s.webhookSecret)
	mac.Write(body)
	return hmac.Equal(provided, mac.Sum(nil))
}
