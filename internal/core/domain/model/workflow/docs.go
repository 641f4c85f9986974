// Package workflow provides the workflow definition aggregate for the
// fulfillment system. A workflow definition is the named, ordered list of
// stages an order's progress is measured against.
//
// The package includes:
//   - Definition: The aggregate root holding an ordered sequence of stages
//   - Stage: A value object for one named position in the sequence
//   - StageCategory: The coarse semantic category of a stage
//   - ExternalStatusCode: The normalized carrier tracking status vocabulary
//
// Key business rules:
//   - A definition has at least one stage
//   - Stage identifiers are unique and stage indexes strictly increase
//   - A carrier status code triggers at most one stage per definition
//   - Once referenced by live progress records, a definition may only
//     evolve by appending trailing stages
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package workflow
