package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnqueueNotificationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewEnqueueNotificationCommand(orderID, "Shipped", workflow.CategoryShipped)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEnqueueNotificationCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	queued := notificationRepo.Calls[0].Arguments.Get(1).(*notification.Notification)
	assert.True(t, queued.OrderID().IsEqual(orderID))
	assert.Equal(t, "Shipped", queued.StageLabel())
	assert.Equal(t, notification.Pending, queued.Status())
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewEnqueueNotificationCommand_NonNotifiableCategory(t *testing.T) {
	for _, category := range []workflow.StageCategory{
		workflow.CategoryPending,
		workflow.CategoryProcessing,
		workflow.CategoryOther,
	} {
		_, err := commands.NewEnqueueNotificationCommand(kernel.NewUUID(), "Packed", category)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "do not notify customers")
	}
}

func TestEnqueueNotificationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.EnqueueNotificationCommand{} // not constructed properly

	h := commands.NewEnqueueNotificationCommandHandler(new(MockNotificationUoWFactory))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
