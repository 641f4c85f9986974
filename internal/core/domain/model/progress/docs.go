// Package progress provides the progress record aggregate: the live state
// of one order's position in its fulfillment workflow plus the full,
// append-only history of how and why it moved between stages.
//
// The package includes:
//   - Progress: The aggregate root owning the current stage, the auto-sync
//     flag, the transition history, and the optimistic-concurrency version
//   - Transition: An immutable record of one validated stage move
//   - Source: The origin of a transition (manual, automatic sync, system init)
//
// Key business rules:
//   - The current stage always equals the destination of the last transition
//   - History is append-only; records are never mutated or deleted
//   - Every applied transition increments the version by exactly one
//   - Overrides (jumps and reverts) require a human-supplied reason
//   - Automatic sync moves are accepted only forward and only while the
//     auto-sync flag is enabled; anything else is silently ignored
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package progress
