package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProgressRepository struct{ mock.Mock }

func (m *MockProgressRepository) Get(ctx context.Context, orderID kernel.UUID) (*progress.Progress, error) {
	args := m.Called(ctx, orderID)
	record, _ := args.Get(0).(*progress.Progress)
	return record, args.Error(1)
}

func (m *MockProgressRepository) CreateIfAbsent(ctx context.Context, record *progress.Progress) (*progress.Progress, error) {
	args := m.Called(ctx, record)
	saved, _ := args.Get(0).(*progress.Progress)
	return saved, args.Error(1)
}

func (m *MockProgressRepository) Save(ctx context.Context, record *progress.Progress, expectedVersion int) error {
	args := m.Called(ctx, record, expectedVersion)
	return args.Error(0)
}

type MockWorkflowRepository struct{ mock.Mock }

func (m *MockWorkflowRepository) Add(ctx context.Context, definition *workflow.Definition) error {
	args := m.Called(ctx, definition)
	return args.Error(0)
}

func (m *MockWorkflowRepository) Update(ctx context.Context, definition *workflow.Definition) error {
	args := m.Called(ctx, definition)
	return args.Error(0)
}

func (m *MockWorkflowRepository) Get(ctx context.Context, id kernel.UUID) (*workflow.Definition, error) {
	args := m.Called(ctx, id)
	definition, _ := args.Get(0).(*workflow.Definition)
	return definition, args.Error(1)
}

func (m *MockWorkflowRepository) GetDefault(ctx context.Context) (*workflow.Definition, error) {
	args := m.Called(ctx)
	definition, _ := args.Get(0).(*workflow.Definition)
	return definition, args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	pending, _ := args.Get(0).([]*notification.Notification)
	return pending, args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockOrderDirectory struct{ mock.Mock }

func (m *MockOrderDirectory) OrderExists(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderDirectory) AssignedOrDefaultWorkflowID(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error) {
	args := m.Called(ctx, orderID)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

func (m *MockOrderDirectory) OrderIDByTrackingNumber(ctx context.Context, trackingNumber string) (kernel.UUID, error) {
	args := m.Called(ctx, trackingNumber)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

type MockProgressUoW struct{ mock.Mock }

func (m *MockProgressUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProgressUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProgressUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProgressUoW) ProgressRepository() ports.ProgressRepository {
	args := m.Called()
	return args.Get(0).(ports.ProgressRepository)
}

func (m *MockProgressUoW) WorkflowRepository() ports.WorkflowRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkflowRepository)
}

type MockProgressUoWFactory struct{ mock.Mock }

func (m *MockProgressUoWFactory) Create() commands.ProgressUoW {
	args := m.Called()
	return args.Get(0).(commands.ProgressUoW)
}

type MockWorkflowUoW struct{ mock.Mock }

func (m *MockWorkflowUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) WorkflowRepository() ports.WorkflowRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkflowRepository)
}

type MockWorkflowUoWFactory struct{ mock.Mock }

func (m *MockWorkflowUoWFactory) Create() commands.WorkflowUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkflowUoW)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

func testDefinition(t *testing.T) *workflow.Definition {
	t.Helper()

	placed, err := workflow.NewStage("placed", 0, "Placed", workflow.CategoryPending, false, true, nil)
	require.NoError(t, err)
	packed, err := workflow.NewStage("packed", 1, "Packed", workflow.CategoryProcessing, false, false, nil)
	require.NoError(t, err)
	shipped, err := workflow.NewStage("shipped", 2, "Shipped", workflow.CategoryShipped, false, true,
		[]workflow.ExternalStatusCode{workflow.StatusInTransit})
	require.NoError(t, err)
	delivered, err := workflow.NewStage("delivered", 3, "Delivered", workflow.CategoryDelivered, true, true,
		[]workflow.ExternalStatusCode{workflow.StatusDelivered})
	require.NoError(t, err)

	d, err := workflow.NewDefinition(kernel.NewUUID(), "Standard",
		[]workflow.Stage{placed, packed, shipped, delivered}, true)
	require.NoError(t, err)
	return d
}

func testRecord(t *testing.T, definition *workflow.Definition) *progress.Progress {
	t.Helper()

	record, err := progress.NewProgress(kernel.NewUUID(), definition, time.Now().UTC())
	require.NoError(t, err)
	record.MarkTransitionsPersisted()
	return record
}
