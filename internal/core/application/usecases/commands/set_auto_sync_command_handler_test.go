package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetAutoSyncCommandHandler_Handle_Disables(t *testing.T) {
	ctx := t.Context()
	definition := testDefinition(t)
	record := testRecord(t, definition)
	cmd, err := commands.NewSetAutoSyncCommand(record.OrderID(), false)
	require.NoError(t, err)

	progressRepo := new(MockProgressRepository)
	workflowRepo := new(MockWorkflowRepository)
	uow := new(MockProgressUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProgressRepository").Return(progressRepo)
	uow.On("WorkflowRepository").Return(workflowRepo).Once()
	progressRepo.On("Get", mock.Anything, record.OrderID()).Return(record, nil).Once()
	workflowRepo.On("Get", mock.Anything, definition.ID()).Return(definition, nil).Once()
	progressRepo.On("Save", mock.Anything, record, 1).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetAutoSyncCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.False(t, result.Record.AutoSyncEnabled())
	assert.Equal(t, 2, result.Record.Version())
	// The toggle is not a transition: the history is untouched.
	assert.Len(t, result.Record.History(), 1)
	progressRepo.AssertExpectations(t)
}

func TestSetAutoSyncCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SetAutoSyncCommand{} // not constructed properly

	h := commands.NewSetAutoSyncCommandHandler(new(MockProgressUoWFactory))
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
