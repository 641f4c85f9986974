package workflow

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

var (
	// ErrStageIsNotConstructed is returned when a Stage instance was not created
	// through the NewStage factory method.
	ErrStageIsNotConstructed = errors.New("Stage must be created via NewStage constructor")
)

// ExternalStatusCode is the normalized carrier tracking status vocabulary.
// Carrier-specific payload statuses are mapped to these codes at the
// webhook boundary; the engine never parses carrier formats itself.
type ExternalStatusCode string

const (
	StatusInfoReceived   ExternalStatusCode = "INFO_RECEIVED"
	StatusPickedUp       ExternalStatusCode = "PICKED_UP"
	StatusInTransit      ExternalStatusCode = "IN_TRANSIT"
	StatusOutForDelivery ExternalStatusCode = "OUT_FOR_DELIVERY"
	StatusDelivered      ExternalStatusCode = "DELIVERED"
	StatusReturned       ExternalStatusCode = "RETURNED"
	StatusException      ExternalStatusCode = "EXCEPTION"
)

// getValidExternalStatusCodes returns the set of recognized status codes.
func getValidExternalStatusCodes() map[ExternalStatusCode]struct{} {
	return map[ExternalStatusCode]struct{}{
		StatusInfoReceived:   {},
		StatusPickedUp:       {},
		StatusInTransit:      {},
		StatusOutForDelivery: {},
		StatusDelivered:      {},
		StatusReturned:       {},
		StatusException:      {},
	}
}

// Validate checks that the code belongs to the recognized vocabulary.
func (c ExternalStatusCode) Validate() error {
	if _, ok := getValidExternalStatusCodes()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"external status code is invalid",
			fmt.Errorf("%q is not a recognized status code", string(c)),
		)
	}
	return nil
}

// ExternalStatusCodeFromString parses a normalized status code from its
// string representation. Returns an error for unrecognized codes.
func ExternalStatusCodeFromString(s string) (ExternalStatusCode, error) {
	code := ExternalStatusCode(s)
	if err := code.Validate(); err != nil {
		return "", err
	}
	return code, nil
}

// StageCategory is the coarse semantic category of a stage. It drives the
// legacy order-status projection and customer notification triggering,
// never the transition rules themselves.
type StageCategory int

const (
	// UnknownCategory represents an invalid or undefined category.
	UnknownCategory StageCategory = iota

	// CategoryPending groups stages before fulfillment work has started.
	CategoryPending

	// CategoryProcessing groups stages where the order is being prepared.
	CategoryProcessing

	// CategoryShipped groups stages where the order is with a carrier.
	CategoryShipped

	// CategoryDelivered groups stages where the order has reached the customer.
	CategoryDelivered

	// CategoryOther groups tenant-specific stages with no legacy equivalent.
	CategoryOther
)

// getCategoryStrings returns a map of StageCategory values to their string representations.
func getCategoryStrings() map[StageCategory]string {
	return map[StageCategory]string{
		UnknownCategory:    "Unknown",
		CategoryPending:    "Pending",
		CategoryProcessing: "Processing",
		CategoryShipped:    "Shipped",
		CategoryDelivered:  "Delivered",
		CategoryOther:      "Other",
	}
}

// getValidCategoryStrings returns a map of only valid StageCategory values.
func getValidCategoryStrings() map[StageCategory]string {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as it's invalid
	return map[StageCategory]string{
		CategoryPending:    "Pending",
		CategoryProcessing: "Processing",
		CategoryShipped:    "Shipped",
		CategoryDelivered:  "Delivered",
		CategoryOther:      "Other",
	}
}

// Validate checks if the StageCategory value is valid.
func (c StageCategory) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage category is invalid",
			fmt.Errorf("%d is not a valid stage category", c),
		)
	}
	return nil
}

// String returns the human-readable name of the category.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (c StageCategory) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// Stage is a value object representing one named position in a workflow's
// linear fulfillment sequence.
//
// Stage follows these invariants:
//   - Must have a non-empty identifier and label
//   - Index must be non-negative; within a definition indexes strictly increase
//   - Category must be a valid StageCategory
//   - External status triggers must be recognized codes without duplicates
//   - Can only be created through the NewStage constructor
type Stage struct {
	// id is the stage identifier, unique within its workflow definition
	id string

	// index defines the stage's position in the total order of the workflow
	index int

	// label is the display name shown to admins and customers
	label string

	// category is the coarse semantic category of the stage
	category StageCategory

	// isTerminal marks the stage as final; no advance is possible past it
	isTerminal bool

	// customerVisible controls whether the stage appears in the customer view
	customerVisible bool

	// triggers lists the external status codes that advance an order to this stage
	triggers []ExternalStatusCode

	// isConstructed ensures the stage was created via NewStage
	isConstructed bool
}

// NewStage creates a new Stage with validation. This is the only way to
// create a valid Stage, ensuring all invariants are maintained.
func NewStage(
	id string,
	index int,
	label string,
	category StageCategory,
	isTerminal bool,
	customerVisible bool,
	triggers []ExternalStatusCode,
) (Stage, error) {
	stage := Stage{
		isTerminal:      isTerminal,
		customerVisible: customerVisible,
		isConstructed:   true,
	}

	if err := errors.Join(
		stage.setID(id),
		stage.setIndex(index),
		stage.setLabel(label),
		stage.setCategory(category),
		stage.setTriggers(triggers),
	); err != nil {
		return Stage{}, err
	}

	return stage, nil
}

// Validate ensures the Stage instance was properly constructed through NewStage.
func (s Stage) Validate() error {
	if !s.isConstructed {
		return ErrStageIsNotConstructed
	}
	return nil
}

// ID returns the stage identifier.
func (s Stage) ID() string {
	return s.id
}

// Index returns the stage's position in the workflow's total order.
func (s Stage) Index() int {
	return s.index
}

// Label returns the display name of the stage.
func (s Stage) Label() string {
	return s.label
}

// Category returns the coarse semantic category of the stage.
func (s Stage) Category() StageCategory {
	return s.category
}

// IsTerminal reports whether the stage is final.
func (s Stage) IsTerminal() bool {
	return s.isTerminal
}

// CustomerVisible reports whether the stage appears in the customer view.
func (s Stage) CustomerVisible() bool {
	return s.customerVisible
}

// ExternalStatusTriggers returns a copy of the stage's trigger codes.
func (s Stage) ExternalStatusTriggers() []ExternalStatusCode {
	triggers := make([]ExternalStatusCode, len(s.triggers))
	copy(triggers, s.triggers)
	return triggers
}

// TriggersOn reports whether the given external status code advances an
// order to this stage.
func (s Stage) TriggersOn(code ExternalStatusCode) bool {
	for _, trigger := range s.triggers {
		if trigger == code {
			return true
		}
	}
	return false
}

// IsEqual compares two stages by their identifiers.
func (s Stage) IsEqual(other Stage) bool {
	return s.id == other.id
}

func (s *Stage) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("stage id")
	}
	s.id = id
	return nil
}

func (s *Stage) setIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage index is invalid",
			fmt.Errorf("%d is not a non-negative index", index),
		)
	}
	s.index = index
	return nil
}

func (s *Stage) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("stage label")
	}
	s.label = label
	return nil
}

func (s *Stage) setCategory(category StageCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	s.category = category
	return nil
}

func (s *Stage) setTriggers(triggers []ExternalStatusCode) error {
	seen := make(map[ExternalStatusCode]struct{}, len(triggers))
	for _, trigger := range triggers {
		if err := trigger.Validate(); err != nil {
			return err
		}
		if _, ok := seen[trigger]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"stage triggers are invalid",
				fmt.Errorf("%q is listed more than once", string(trigger)),
			)
		}
		seen[trigger] = struct{}{}
	}

	s.triggers = make([]ExternalStatusCode, len(triggers))
	copy(s.triggers, triggers)
	return nil
}
