// Package notification provides the customer notification entity queued
// after an order reaches a shipped or delivered stage. Dispatch is
// deliberately decoupled from the transition engine: a failed or slow
// email must never roll back or block a stage move.
package notification

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created through a factory method.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewNotification or RestoreNotification constructor",
	)
)

// Status represents the dispatch state of a queued notification.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Pending marks a notification waiting for the dispatch job.
	Pending

	// Sent marks a notification delivered to the mail collaborator.
	Sent
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Sent:
		return "Sent"
	default:
		return "Unknown"
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Pending && s != Sent {
		return errs.NewValueIsInvalidErrorWithCause(
			"notification status is invalid",
			fmt.Errorf("%d is not a valid notification status", s),
		)
	}
	return nil
}

// Notification is one queued customer-facing message about an order
// reaching a notifiable stage.
type Notification struct {
	id            kernel.UUID
	orderID       kernel.UUID
	stageLabel    string
	category      workflow.StageCategory
	status        Status
	createdAt     time.Time
	sentAt        *time.Time
	isConstructed bool
}

// Notifiable reports whether a stage category warrants a customer
// notification. Only shipped and delivered stages do.
func Notifiable(category workflow.StageCategory) bool {
	return category == workflow.CategoryShipped || category == workflow.CategoryDelivered
}

// NewNotification creates a pending notification for an order that
// reached the given stage. Fails for categories that are not notifiable.
func NewNotification(
	id kernel.UUID,
	orderID kernel.UUID,
	stageLabel string,
	category workflow.StageCategory,
	now time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if stageLabel == "" {
		return nil, errs.NewValueIsRequiredError("stage label")
	}
	if !Notifiable(category) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"notification category is invalid",
			fmt.Errorf("%s stages do not notify customers", category),
		)
	}

	return &Notification{
		id:            id,
		orderID:       orderID,
		stageLabel:    stageLabel,
		category:      category,
		status:        Pending,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	orderID kernel.UUID,
	stageLabel string,
	category workflow.StageCategory,
	status Status,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if stageLabel == "" {
		return nil, errs.NewValueIsRequiredError("stage label")
	}

	var sent *time.Time
	if sentAt != nil {
		value := *sentAt
		sent = &value
	}

	return &Notification{
		id:            id,
		orderID:       orderID,
		stageLabel:    stageLabel,
		category:      category,
		status:        status,
		createdAt:     createdAt,
		sentAt:        sent,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// OrderID returns the order the notification is about.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// StageLabel returns the customer-facing label of the reached stage.
func (n *Notification) StageLabel() string {
	return n.stageLabel
}

// Category returns the semantic category that triggered the notification.
func (n *Notification) Category() workflow.StageCategory {
	return n.category
}

// Status returns the dispatch state.
func (n *Notification) Status() Status {
	return n.status
}

// CreatedAt returns when the notification was enqueued.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SentAt returns when the notification was dispatched, or nil while pending.
func (n *Notification) SentAt() *time.Time {
	if n.sentAt == nil {
		return nil
	}
	value := *n.sentAt
	return &value
}

// MarkSent records successful dispatch.
func (n *Notification) MarkSent(now time.Time) {
	n.status = Sent
	n.sentAt = &now
}
