package progress

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Source identifies the origin of a transition. It is recorded on every
// history entry so an auditor can tell human-issued moves from
// machine-issued ones.
//
// Sources:
//
//	Manual        — an admin action; always carries an actor id
//	AutomaticSync — a reconciled carrier tracking event; never carries an actor
//	SystemInit    — the engine itself (record initialization, workflow reassignment)
type Source int

const (
	// UnknownSource represents an invalid or undefined source.
	// This value (0) helps catch uninitialized Source values.
	UnknownSource Source = iota

	// Manual marks a transition issued by a human actor through the admin API.
	Manual

	// AutomaticSync marks a transition issued by the external event reconciler.
	AutomaticSync

	// SystemInit marks a transition written by the engine itself.
	SystemInit
)

// getSourceStrings returns a map of Source values to their string representations.
func getSourceStrings() map[Source]string {
	return map[Source]string{
		UnknownSource: "Unknown",
		Manual:        "Manual",
		AutomaticSync: "AutomaticSync",
		SystemInit:    "SystemInit",
	}
}

// getValidSourceStrings returns a map of only valid Source values.
func getValidSourceStrings() map[Source]string {
	//nolint:exhaustive // UnknownSource is intentionally excluded as it's invalid
	return map[Source]string{
		Manual:        "Manual",
		AutomaticSync: "AutomaticSync",
		SystemInit:    "SystemInit",
	}
}

// Validate checks if the Source value is valid.
func (s Source) Validate() error {
	if _, ok := getValidSourceStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transition source is invalid",
			fmt.Errorf("%d is not a valid transition source", s),
		)
	}
	return nil
}

// String returns the human-readable name of the source.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Source) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// RequiresActor reports whether transitions from this source must carry an
// actor id. Only manual transitions do; machine-issued ones never do.
func (s Source) RequiresActor() bool {
	return s == Manual
}
