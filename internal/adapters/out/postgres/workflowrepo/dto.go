// Package workflowrepo provides data transfer objects and mapping functions
// for workflow definition persistence. This package implements the repository
// pattern for the workflow aggregate, handling the conversion between domain
// entities and database representations.
package workflowrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// WorkflowDTO represents the database structure for persisting workflow
// definitions. The stage list lives in its own table so live progress
// records can be joined against individual stages.
type WorkflowDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	IsDefault bool       `gorm:"index"`
	Stages    []StageDTO `gorm:"foreignKey:WorkflowID;references:ID"`
}

// TableName specifies the database table name for workflow definitions.
func (WorkflowDTO) TableName() string {
	return "workflows"
}

// StageDTO represents one stage row of a workflow definition.
// The trigger set is stored as a JSON array; it is only ever read back
// whole, never filtered in SQL.
type StageDTO struct {
	WorkflowID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	StageID         string    `gorm:"primaryKey"`
	StageIndex      int
	Label           string
	Category        int
	IsTerminal      bool
	CustomerVisible bool
	Triggers        []string `gorm:"serializer:json"`
}

// TableName specifies the database table name for workflow stages.
func (StageDTO) TableName() string {
	return "workflow_stages"
}

// fromDomain converts a workflow definition aggregate to its database
// representation.
func fromDomain(definition *workflow.Definition) WorkflowDTO {
	stages := definition.Stages()
	stageDTOs := make([]StageDTO, 0, len(stages))
	for _, stage := range stages {
		triggers := stage.ExternalStatusTriggers()
		rawTriggers := make([]string, 0, len(triggers))
		for _, trigger := range triggers {
			rawTriggers = append(rawTriggers, string(trigger))
		}

		stageDTOs = append(stageDTOs, StageDTO{
			WorkflowID:      definition.ID().Bytes(),
			StageID:         stage.ID(),
			StageIndex:      stage.Index(),
			Label:           stage.Label(),
			Category:        int(stage.Category()),
			IsTerminal:      stage.IsTerminal(),
			CustomerVisible: stage.CustomerVisible(),
			Triggers:        rawTriggers,
		})
	}

	return WorkflowDTO{
		ID:        definition.ID().Bytes(),
		Name:      definition.Name(),
		IsDefault: definition.IsDefault(),
		Stages:    stageDTOs,
	}
}

// toDomain converts a database DTO to a workflow definition aggregate.
// Reconstructs every stage through its constructor so stored data is
// re-validated against the aggregate invariants.
func toDomain(dto WorkflowDTO) (*workflow.Definition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stages := make([]workflow.Stage, 0, len(dto.Stages))
	for _, stageDTO := range dto.Stages {
		triggers := make([]workflow.ExternalStatusCode, 0, len(stageDTO.Triggers))
		for _, raw := range stageDTO.Triggers {
			trigger, codeErr := workflow.ExternalStatusCodeFromString(raw)
			if codeErr != nil {
				return nil, codeErr
			}
			triggers = append(triggers, trigger)
		}

		stage, stageErr := workflow.NewStage(
			stageDTO.StageID,
			stageDTO.StageIndex,
			stageDTO.Label,
			workflow.StageCategory(stageDTO.Category),
			stageDTO.IsTerminal,
			stageDTO.CustomerVisible,
			triggers,
		)
		if stageErr != nil {
			return nil, stageErr
		}
		stages = append(stages, stage)
	}

	return workflow.RestoreDefinition(id, dto.Name, stages, dto.IsDefault)
}
