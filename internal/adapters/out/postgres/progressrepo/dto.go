// Package progressrepo provides data transfer objects and mapping functions
// for progress record persistence. The transition history is insert-only:
// saving a record writes the mutable head row conditionally and appends the
// new history rows, it never updates or deletes existing ones.
package progressrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/progress"

	"github.com/google/uuid"
)

// ProgressDTO represents the mutable head row of a progress record: the
// current stage, the auto-sync flag and the version token the conditional
// save is keyed on.
type ProgressDTO struct {
	OrderID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkflowID      uuid.UUID `gorm:"type:uuid;index"`
	CurrentStageID  string
	AutoSyncEnabled bool
	Version         int
	Transitions     []TransitionDTO `gorm:"foreignKey:OrderID;references:OrderID"`
}

// TableName specifies the database table name for progress records.
func (ProgressDTO) TableName() string {
	return "progress_records"
}

// TransitionDTO represents one append-only history row. Seq preserves the
// order transitions were applied in.
type TransitionDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int       `gorm:"primaryKey"`
	FromStageID *string
	ToStageID   string
	Source      int
	IsOverride  bool
	Reason      string
	ActorID     *uuid.UUID `gorm:"type:uuid"`
	Notes       string
	OccurredAt  time.Time
}

// TableName specifies the database table name for transition history rows.
func (TransitionDTO) TableName() string {
	return "progress_transitions"
}

// fromDomain converts a progress aggregate to its head-row representation.
// History rows are mapped separately via transitionsFromDomain.
func fromDomain(record *progress.Progress) ProgressDTO {
	return ProgressDTO{
		OrderID:         record.OrderID().Bytes(),
		WorkflowID:      record.WorkflowID().Bytes(),
		CurrentStageID:  record.CurrentStageID(),
		AutoSyncEnabled: record.AutoSyncEnabled(),
		Version:         record.Version(),
	}
}

// transitionsFromDomain maps transitions to history rows, numbering them
// from firstSeq.
func transitionsFromDomain(orderID kernel.UUID, transitions []progress.Transition, firstSeq int) []TransitionDTO {
	dtos := make([]TransitionDTO, 0, len(transitions))
	for i, transition := range transitions {
		var actorID *uuid.UUID
		if id := transition.ActorID(); id != nil {
			raw := id.Bytes()
			actorID = &raw
		}

		dtos = append(dtos, TransitionDTO{
			OrderID:     orderID.Bytes(),
			Seq:         firstSeq + i,
			FromStageID: transition.FromStageID(),
			ToStageID:   transition.ToStageID(),
			Source:      int(transition.Source()),
			IsOverride:  transition.IsOverride(),
			Reason:      transition.Reason(),
			ActorID:     actorID,
			Notes:       transition.Notes(),
			OccurredAt:  transition.OccurredAt(),
		})
	}
	return dtos
}

// toDomain converts the head row and its history rows back to the
// aggregate, re-validating the invariants against the stored data.
func toDomain(dto ProgressDTO) (*progress.Progress, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	workflowID, err := kernel.UUIDFromBytes(dto.WorkflowID[:])
	if err != nil {
		return nil, err
	}

	history := make([]progress.Transition, 0, len(dto.Transitions))
	for _, row := range dto.Transitions {
		var actorID *kernel.UUID
		if row.ActorID != nil {
			id, actorErr := kernel.UUIDFromBytes((*row.ActorID)[:])
			if actorErr != nil {
				return nil, actorErr
			}
			actorID = &id
		}

		transition, transitionErr := progress.RestoreTransition(
			row.FromStageID,
			row.ToStageID,
			progress.Source(row.Source),
			row.IsOverride,
			row.Reason,
			actorID,
			row.Notes,
			row.OccurredAt,
		)
		if transitionErr != nil {
			return nil, transitionErr
		}
		history = append(history, transition)
	}

	return progress.RestoreProgress(
		orderID,
		workflowID,
		dto.CurrentStageID,
		dto.AutoSyncEnabled,
		history,
		dto.Version,
	)
}
