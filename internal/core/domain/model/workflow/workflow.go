package workflow

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrDefinitionIsNotConstructed is returned when a Definition instance was
	// not created through the NewDefinition or RestoreDefinition factory methods.
	ErrDefinitionIsNotConstructed = errors.New(
		"Definition must be created via NewDefinition or RestoreDefinition constructor",
	)

	// ErrUnknownStage is returned when a stage identifier does not belong to
	// the workflow definition it was resolved against.
	ErrUnknownStage = errors.New("stage is not part of the workflow")

	// ErrStageInUse is returned when a definition update removes or moves a
	// stage that a live progress record currently occupies.
	ErrStageInUse = errors.New("stage is occupied by a live progress record")
)

// Definition is the aggregate root for a workflow definition: the named,
// ordered list of stages an order's progress is measured against.
//
// Definition follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Must contain at least one stage
//   - Stage identifiers are unique and stage indexes strictly increase
//   - A carrier status code triggers at most one stage
//   - Can only be created through NewDefinition or RestoreDefinition
//
// A definition referenced by live progress records is immutable except for
// appending new trailing stages; compatibility of updates is checked with
// EnsureCompatibleUpdate.
type Definition struct {
	// id is the unique identifier for the definition
	id kernel.UUID

	// name is the tenant-facing name of the workflow
	name string

	// stages is the ordered fulfillment sequence (length >= 1)
	stages []Stage

	// isDefault marks the definition applied to orders with no explicit assignment
	isDefault bool

	// isConstructed ensures the definition was created via a factory method
	isConstructed bool
}

// NewDefinition creates a new workflow Definition with validation. This is
// the only way (besides RestoreDefinition) to create a valid Definition.
func NewDefinition(id kernel.UUID, name string, stages []Stage, isDefault bool) (*Definition, error) {
	definition := &Definition{
		isDefault:     isDefault,
		isConstructed: true,
	}

	if err := errors.Join(
		definition.setID(id),
		definition.setName(name),
		definition.setStages(stages),
	); err != nil {
		return nil, err
	}

	return definition, nil
}

// RestoreDefinition reconstructs a Definition from persistence. It applies
// the same validation as NewDefinition to guarantee stored data still
// satisfies the aggregate invariants.
func RestoreDefinition(id kernel.UUID, name string, stages []Stage, isDefault bool) (*Definition, error) {
	return NewDefinition(id, name, stages, isDefault)
}

// Validate ensures the Definition was properly constructed through a factory method.
func (d *Definition) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDefinitionIsNotConstructed
	}
	return nil
}

// ID returns the definition's unique identifier.
func (d *Definition) ID() kernel.UUID {
	return d.id
}

// Name returns the tenant-facing name of the workflow.
func (d *Definition) Name() string {
	return d.name
}

// IsDefault reports whether this definition applies to orders with no
// explicit workflow assignment.
func (d *Definition) IsDefault() bool {
	return d.isDefault
}

// Stages returns a copy of the ordered stage sequence.
func (d *Definition) Stages() []Stage {
	stages := make([]Stage, len(d.stages))
	copy(stages, d.stages)
	return stages
}

// StageCount returns the number of stages in the definition.
func (d *Definition) StageCount() int {
	return len(d.stages)
}

// First returns the initial stage of the workflow.
func (d *Definition) First() Stage {
	return d.stages[0]
}

// StageByID resolves a stage identifier against the definition.
// Returns ErrUnknownStage if the identifier does not belong to it.
func (d *Definition) StageByID(stageID string) (Stage, error) {
	for _, stage := range d.stages {
		if stage.ID() == stageID {
			return stage, nil
		}
	}
	return Stage{}, fmt.Errorf("%w: %s", ErrUnknownStage, stageID)
}

// Next returns the stage following the given one in the sequence.
// The second return value is false when the given stage is the last.
func (d *Definition) Next(current Stage) (Stage, bool) {
	for i, stage := range d.stages {
		if stage.IsEqual(current) && i+1 < len(d.stages) {
			return d.stages[i+1], true
		}
	}
	return Stage{}, false
}

// StageForExternalStatus scans the stages for one triggered by the given
// normalized carrier status code. The second return value is false when no
// stage maps the code.
func (d *Definition) StageForExternalStatus(code ExternalStatusCode) (Stage, bool) {
	for _, stage := range d.stages {
		if stage.TriggersOn(code) {
			return stage, true
		}
	}
	return Stage{}, false
}

// AppendStage extends the workflow with a new trailing stage. The stage id
// must be unique within the definition and its index must exceed the last
// stage's index. Appending is the only mutation allowed once the
// definition is referenced by progress records.
func (d *Definition) AppendStage(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	last := d.stages[len(d.stages)-1]
	if stage.Index() <= last.Index() {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage index is invalid",
			fmt.Errorf("%d does not exceed the last stage index %d", stage.Index(), last.Index()),
		)
	}

	if _, err := d.StageByID(stage.ID()); err == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage id is invalid",
			fmt.Errorf("%q already exists in the workflow", stage.ID()),
		)
	}

	if err := d.ensureUniqueTriggers(append(d.Stages(), stage)); err != nil {
		return err
	}

	d.stages = append(d.stages, stage)
	return nil
}

// EnsureCompatibleUpdate checks that replacing this definition with the
// updated one does not remove or move any stage a live progress record
// currently occupies. Returns ErrStageInUse on the first violation.
func (d *Definition) EnsureCompatibleUpdate(updated *Definition, occupiedStageIDs []string) error {
	if err := updated.Validate(); err != nil {
		return err
	}

	for _, stageID := range occupiedStageIDs {
		current, err := d.StageByID(stageID)
		if err != nil {
			continue
		}

		replacement, err := updated.StageByID(stageID)
		if err != nil {
			return fmt.Errorf("%w: %s was removed", ErrStageInUse, stageID)
		}
		if replacement.Index() != current.Index() {
			return fmt.Errorf("%w: %s was reordered", ErrStageInUse, stageID)
		}
	}

	return nil
}

func (d *Definition) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Definition) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("workflow name")
	}
	d.name = name
	return nil
}

func (d *Definition) setStages(stages []Stage) error {
	if len(stages) == 0 {
		return errs.NewValueIsRequiredError("workflow stages")
	}

	seenIDs := make(map[string]struct{}, len(stages))
	previousIndex := -1
	for _, stage := range stages {
		if err := stage.Validate(); err != nil {
			return err
		}
		if _, ok := seenIDs[stage.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"workflow stages are invalid",
				fmt.Errorf("stage id %q is not unique", stage.ID()),
			)
		}
		seenIDs[stage.ID()] = struct{}{}

		if stage.Index() <= previousIndex {
			return errs.NewValueIsInvalidErrorWithCause(
				"workflow stages are invalid",
				fmt.Errorf("stage %q index %d is not strictly increasing", stage.ID(), stage.Index()),
			)
		}
		previousIndex = stage.Index()
	}

	if err := d.ensureUniqueTriggers(stages); err != nil {
		return err
	}

	d.stages = make([]Stage, len(stages))
	copy(d.stages, stages)
	return nil
}

func (d *Definition) ensureUniqueTriggers(stages []Stage) error {
	seen := make(map[ExternalStatusCode]string)
	for _, stage := range stages {
		for _, trigger := range stage.ExternalStatusTriggers() {
			if owner, ok := seen[trigger]; ok {
				return errs.NewValueIsInvalidErrorWithCause(
					"workflow stages are invalid",
					fmt.Errorf("status code %q triggers both %q and %q", string(trigger), owner, stage.ID()),
				)
			}
			seen[trigger] = stage.ID()
		}
	}
	return nil
}
