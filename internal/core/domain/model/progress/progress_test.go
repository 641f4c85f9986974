package progress_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefinition(t *testing.T) *workflow.Definition {
	t.Helper()

	placed, err := workflow.NewStage("placed", 0, "Placed", workflow.CategoryPending, false, true, nil)
	require.NoError(t, err)
	packed, err := workflow.NewStage("packed", 1, "Packed", workflow.CategoryProcessing, false, false, nil)
	require.NoError(t, err)
	shipped, err := workflow.NewStage("shipped", 2, "Shipped", workflow.CategoryShipped, false, true,
		[]workflow.ExternalStatusCode{workflow.StatusPickedUp, workflow.StatusInTransit})
	require.NoError(t, err)
	delivered, err := workflow.NewStage("delivered", 3, "Delivered", workflow.CategoryDelivered, true, true,
		[]workflow.ExternalStatusCode{workflow.StatusDelivered})
	require.NoError(t, err)

	d, err := workflow.NewDefinition(kernel.NewUUID(), "Standard",
		[]workflow.Stage{placed, packed, shipped, delivered}, true)
	require.NoError(t, err)
	return d
}

func newRecord(t *testing.T, definition *workflow.Definition) *progress.Progress {
	t.Helper()

	record, err := progress.NewProgress(kernel.NewUUID(), definition, time.Now().UTC())
	require.NoError(t, err)
	return record
}

func TestNewProgress(t *testing.T) {
	definition := newDefinition(t)

	t.Run("should start at the first stage with auto-sync enabled", func(t *testing.T) {
		orderID := kernel.NewUUID()
		now := time.Now().UTC()

		record, err := progress.NewProgress(orderID, definition, now)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.True(t, record.OrderID().IsEqual(orderID))
		assert.True(t, record.WorkflowID().IsEqual(definition.ID()))
		assert.Equal(t, "placed", record.CurrentStageID())
		assert.True(t, record.AutoSyncEnabled())
		assert.Equal(t, 1, record.Version())
	})

	t.Run("should record an initializing transition", func(t *testing.T) {
		record := newRecord(t, definition)

		history := record.History()
		require.Len(t, history, 1)
		assert.Nil(t, history[0].FromStageID())
		assert.Equal(t, "placed", history[0].ToStageID())
		assert.Equal(t, progress.SystemInit, history[0].Source())
		assert.Nil(t, history[0].ActorID())
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		record, err := progress.NewProgress(invalidID, definition, time.Now().UTC())

		require.Error(t, err)
		assert.Nil(t, record)
	})

	t.Run("should fail with nil definition", func(t *testing.T) {
		record, err := progress.NewProgress(kernel.NewUUID(), nil, time.Now().UTC())

		require.Error(t, err)
		assert.Nil(t, record)
	})
}

func TestProgressAdvance(t *testing.T) {
	definition := newDefinition(t)
	actorID := kernel.NewUUID()

	t.Run("should move to the next stage", func(t *testing.T) {
		record := newRecord(t, definition)
		versionBefore := record.Version()

		err := record.Advance(definition, actorID, "picked by admin", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, "packed", record.CurrentStageID())
		assert.Equal(t, versionBefore+1, record.Version())

		history := record.History()
		require.Len(t, history, 2)
		last := history[len(history)-1]
		assert.Equal(t, "placed", *last.FromStageID())
		assert.Equal(t, "packed", last.ToStageID())
		assert.Equal(t, progress.Manual, last.Source())
		assert.False(t, last.IsOverride())
		assert.True(t, last.ActorID().IsEqual(actorID))
		assert.Equal(t, "picked by admin", last.Notes())
	})

	t.Run("should fail on the terminal stage", func(t *testing.T) {
		record := newRecord(t, definition)
		for range 3 {
			require.NoError(t, record.Advance(definition, actorID, "", time.Now().UTC()))
		}
		require.Equal(t, "delivered", record.CurrentStageID())

		err := record.Advance(definition, actorID, "", time.Now().UTC())

		assert.ErrorIs(t, err, progress.ErrAlreadyTerminal)
		assert.Equal(t, "delivered", record.CurrentStageID())
	})

	t.Run("should fail against a foreign definition", func(t *testing.T) {
		record := newRecord(t, definition)
		other := newDefinition(t)

		err := record.Advance(other, actorID, "", time.Now().UTC())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match the record's workflow")
	})
}

func TestProgressTransitionTo(t *testing.T) {
	definition := newDefinition(t)
	actorID := kernel.NewUUID()

	t.Run("should treat single-step forward move as plain transition", func(t *testing.T) {
		record := newRecord(t, definition)

		err := record.TransitionTo(definition, "packed", actorID, false, "", "", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, "packed", record.CurrentStageID())
		last := record.History()[len(record.History())-1]
		assert.False(t, last.IsOverride())
	})

	t.Run("should require reason for forward skip", func(t *testing.T) {
		record := newRecord(t, definition)

		err := record.TransitionTo(definition, "shipped", actorID, false, "", "", time.Now().UTC())

		assert.ErrorIs(t, err, progress.ErrMissingReason)
		assert.Equal(t, "placed", record.CurrentStageID())
	})

	t.Run("should apply forward skip with reason as override", func(t *testing.T) {
		record := newRecord(t, definition)

		err := record.TransitionTo(definition, "shipped", actorID, false, "packing bypassed", "", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, "shipped", record.CurrentStageID())
		last := record.History()[len(record.History())-1]
		assert.True(t, last.IsOverride())
		assert.Equal(t, "packing bypassed", last.Reason())
	})

	t.Run("should require reason for revert", func(t *testing.T) {
		record := newRecord(t, definition)
		require.NoError(t, record.Advance(definition, actorID, "", time.Now().UTC()))

		err := record.TransitionTo(definition, "placed", actorID, false, "", "", time.Now().UTC())

		assert.ErrorIs(t, err, progress.ErrMissingReason)
	})

	t.Run("should apply revert with reason as override", func(t *testing.T) {
		record := newRecord(t, definition)
		require.NoError(t, record.Advance(definition, actorID, "", time.Now().UTC()))

		err := record.TransitionTo(definition, "placed", actorID, false, "packed in error", "", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, "placed", record.CurrentStageID())
		last := record.History()[len(record.History())-1]
		assert.True(t, last.IsOverride())
		assert.Equal(t, progress.Manual, last.Source())
	})

	t.Run("should report no change for the current stage", func(t *testing.T) {
		record := newRecord(t, definition)
		historyBefore := len(record.History())

		err := record.TransitionTo(definition, "placed", actorID, false, "", "", time.Now().UTC())

		assert.ErrorIs(t, err, progress.ErrNoChange)
		assert.Len(t, record.History(), historyBefore)
	})

	t.Run("should fail for a stage outside the workflow", func(t *testing.T) {
		record := newRecord(t, definition)

		err := record.TransitionTo(definition, "teleported", actorID, false, "", "", time.Now().UTC())

		assert.ErrorIs(t, err, workflow.ErrUnknownStage)
	})

	t.Run("should honor explicit override flag on single-step move", func(t *testing.T) {
		record := newRecord(t, definition)

		err := record.TransitionTo(definition, "packed", actorID, true, "", "", time.Now().UTC())

		assert.ErrorIs(t, err, progress.ErrMissingReason)
	})
}

func TestProgressApplySync(t *testing.T) {
	definition := newDefinition(t)

	t.Run("should apply forward carrier event", func(t *testing.T) {
		record := newRecord(t, definition)

		applied, err := record.ApplySync(definition, "shipped", time.Now().UTC())

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, "shipped", record.CurrentStageID())
		last := record.History()[len(record.History())-1]
		assert.Equal(t, progress.AutomaticSync, last.Source())
		assert.Nil(t, last.ActorID())
	})

	t.Run("should ignore backward carrier event", func(t *testing.T) {
		record := newRecord(t, definition)
		_, err := record.ApplySync(definition, "shipped", time.Now().UTC())
		require.NoError(t, err)
		versionBefore := record.Version()

		applied, err := record.ApplySync(definition, "packed", time.Now().UTC())

		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, "shipped", record.CurrentStageID())
		assert.Equal(t, versionBefore, record.Version())
	})

	t.Run("should ignore duplicate carrier event", func(t *testing.T) {
		record := newRecord(t, definition)
		_, err := record.ApplySync(definition, "shipped", time.Now().UTC())
		require.NoError(t, err)

		applied, err := record.ApplySync(definition, "shipped", time.Now().UTC())

		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("should ignore events while auto-sync is disabled", func(t *testing.T) {
		record := newRecord(t, definition)
		record.SetAutoSync(false)

		applied, err := record.ApplySync(definition, "shipped", time.Now().UTC())

		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, "placed", record.CurrentStageID())
	})
}

func TestProgressSetAutoSync(t *testing.T) {
	definition := newDefinition(t)

	t.Run("should bump version without appending history", func(t *testing.T) {
		record := newRecord(t, definition)
		versionBefore := record.Version()
		historyBefore := len(record.History())

		record.SetAutoSync(false)

		assert.False(t, record.AutoSyncEnabled())
		assert.Equal(t, versionBefore+1, record.Version())
		assert.Len(t, record.History(), historyBefore)
	})
}

func TestProgressReassignWorkflow(t *testing.T) {
	actorID := kernel.NewUUID()

	t.Run("should switch to the replacement workflow", func(t *testing.T) {
		current := newDefinition(t)
		replacement := newDefinition(t)
		record := newRecord(t, current)

		err := record.ReassignWorkflow(current, replacement, time.Now().UTC())

		require.NoError(t, err)
		assert.True(t, record.WorkflowID().IsEqual(replacement.ID()))
		assert.Equal(t, replacement.First().ID(), record.CurrentStageID())
		last := record.History()[len(record.History())-1]
		assert.Equal(t, progress.SystemInit, last.Source())
	})

	t.Run("should fail once the order moved past the first stage", func(t *testing.T) {
		current := newDefinition(t)
		replacement := newDefinition(t)
		record := newRecord(t, current)
		require.NoError(t, record.Advance(current, actorID, "", time.Now().UTC()))

		err := record.ReassignWorkflow(current, replacement, time.Now().UTC())

		assert.ErrorIs(t, err, progress.ErrWorkflowLocked)
	})

	t.Run("should report no change for the same workflow", func(t *testing.T) {
		current := newDefinition(t)
		record := newRecord(t, current)

		err := record.ReassignWorkflow(current, current, time.Now().UTC())

		assert.ErrorIs(t, err, progress.ErrNoChange)
	})
}

func TestProgressInvariants(t *testing.T) {
	definition := newDefinition(t)
	actorID := kernel.NewUUID()

	t.Run("current stage always equals the last transition target", func(t *testing.T) {
		record := newRecord(t, definition)
		require.NoError(t, record.Advance(definition, actorID, "", time.Now().UTC()))
		_, err := record.ApplySync(definition, "shipped", time.Now().UTC())
		require.NoError(t, err)
		require.NoError(t, record.TransitionTo(definition, "placed", actorID, false, "restart", "", time.Now().UTC()))

		history := record.History()
		assert.Equal(t, history[len(history)-1].ToStageID(), record.CurrentStageID())
	})

	t.Run("every applied transition increments the version by one", func(t *testing.T) {
		record := newRecord(t, definition)
		versionBefore := record.Version()

		require.NoError(t, record.Advance(definition, actorID, "", time.Now().UTC()))
		assert.Equal(t, versionBefore+1, record.Version())

		_, err := record.ApplySync(definition, "shipped", time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, versionBefore+2, record.Version())
	})
}

func TestRestoreProgress(t *testing.T) {
	definition := newDefinition(t)

	t.Run("should restore a saved record", func(t *testing.T) {
		orderID := kernel.NewUUID()
		from := "placed"
		actorID := kernel.NewUUID()
		now := time.Now().UTC()

		initial, err := progress.RestoreTransition(nil, "placed", progress.SystemInit, false, "", nil, "", now)
		require.NoError(t, err)
		move, err := progress.RestoreTransition(&from, "packed", progress.Manual, false, "", &actorID, "", now)
		require.NoError(t, err)

		record, err := progress.RestoreProgress(orderID, definition.ID(), "packed", true,
			[]progress.Transition{initial, move}, 3)

		require.NoError(t, err)
		assert.Equal(t, "packed", record.CurrentStageID())
		assert.Equal(t, 3, record.Version())
		assert.Empty(t, record.PendingTransitions())
	})

	t.Run("should fail with empty history", func(t *testing.T) {
		record, err := progress.RestoreProgress(kernel.NewUUID(), definition.ID(), "placed", true, nil, 1)

		require.Error(t, err)
		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "progress history")
	})

	t.Run("should fail when current stage disagrees with the last transition", func(t *testing.T) {
		initial, err := progress.RestoreTransition(nil, "placed", progress.SystemInit, false, "", nil, "", time.Now().UTC())
		require.NoError(t, err)

		record, err := progress.RestoreProgress(kernel.NewUUID(), definition.ID(), "packed", true,
			[]progress.Transition{initial}, 1)

		require.Error(t, err)
		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "does not match last transition target")
	})

	t.Run("should fail when version is below the history length", func(t *testing.T) {
		initial, err := progress.RestoreTransition(nil, "placed", progress.SystemInit, false, "", nil, "", time.Now().UTC())
		require.NoError(t, err)

		record, err := progress.RestoreProgress(kernel.NewUUID(), definition.ID(), "placed", true,
			[]progress.Transition{initial}, 0)

		require.Error(t, err)
		assert.Nil(t, record)
	})
}

func TestProgressPendingTransitions(t *testing.T) {
	definition := newDefinition(t)
	actorID := kernel.NewUUID()

	t.Run("new record has its whole history pending", func(t *testing.T) {
		record := newRecord(t, definition)

		assert.Len(t, record.PendingTransitions(), 1)
	})

	t.Run("marking persisted drains the pending set", func(t *testing.T) {
		record := newRecord(t, definition)
		record.MarkTransitionsPersisted()

		assert.Empty(t, record.PendingTransitions())

		require.NoError(t, record.Advance(definition, actorID, "", time.Now().UTC()))

		pending := record.PendingTransitions()
		require.Len(t, pending, 1)
		assert.Equal(t, "packed", pending[0].ToStageID())
	})
}

func TestProgressCoarseStatus(t *testing.T) {
	definition := newDefinition(t)
	actorID := kernel.NewUUID()

	record := newRecord(t, definition)

	status, err := record.CoarseStatus(definition)
	require.NoError(t, err)
	assert.Equal(t, workflow.CategoryPending, status)

	require.NoError(t, record.TransitionTo(definition, "delivered", actorID, false, "left at door", "", time.Now().UTC()))

	status, err = record.CoarseStatus(definition)
	require.NoError(t, err)
	assert.Equal(t, workflow.CategoryDelivered, status)
}
