package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateOrderDirectory() ports.OrderDirectory {
	return postgres.NewGormOrderDirectory(c.gormDB)
}

func (c *CompositionRoot) CreateNotifier() ports.Notifier {
	return notify.NewSlogNotifier(c.logger)
}

func (c *CompositionRoot) CreateInitializeProgressCommandHandler() commands.InitializeProgressCommandHandler {
	return commands.NewInitializeProgressCommandHandler(c.progressUoWFactory(), c.CreateOrderDirectory())
}

func (c *CompositionRoot) CreateAssignWorkflowCommandHandler() commands.AssignWorkflowCommandHandler {
	return commands.NewAssignWorkflowCommandHandler(c.progressUoWFactory(), c.CreateOrderDirectory())
}

func (c *CompositionRoot) CreateAdvanceStageCommandHandler() commands.AdvanceStageCommandHandler {
	return commands.NewAdvanceStageCommandHandler(c.progressUoWFactory())
}

func (c *CompositionRoot) CreateTransitionStageCommandHandler() commands.TransitionStageCommandHandler {
	return commands.NewTransitionStageCommandHandler(c.progressUoWFactory())
}

func (c *CompositionRoot) CreateSetAutoSyncCommandHandler() commands.SetAutoSyncCommandHandler {
	return commands.NewSetAutoSyncCommandHandler(c.progressUoWFactory())
}

func (c *CompositionRoot) CreateSyncExternalEventCommandHandler() commands.SyncExternalEventCommandHandler {
	return commands.NewSyncExternalEventCommandHandler(c.progressUoWFactory())
}

func (c *CompositionRoot) CreateCreateWorkflowCommandHandler() commands.CreateWorkflowCommandHandler {
	return commands.NewCreateWorkflowCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateUpdateWorkflowCommandHandler() commands.UpdateWorkflowCommandHandler {
	return commands.NewUpdateWorkflowCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateEnqueueNotificationCommandHandler() commands.EnqueueNotificationCommandHandler {
	return commands.NewEnqueueNotificationCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	return commands.NewDispatchNotificationsCommandHandler(c.notificationUoWFactory(), c.CreateNotifier())
}

func (c *CompositionRoot) CreateGetProgressQueryHandler() queries.GetProgressQueryHandler {
	return queries.NewGetProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerProgressQueryHandler() queries.GetCustomerProgressQueryHandler {
	return queries.NewGetCustomerProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkflowQueryHandler() queries.GetWorkflowQueryHandler {
	return queries.NewGetWorkflowQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPHandlers() http.Handlers {
	return http.Handlers{
		Initialize:     c.CreateInitializeProgressCommandHandler(),
		AssignWorkflow: c.CreateAssignWorkflowCommandHandler(),
		Advance:        c.CreateAdvanceStageCommandHandler(),
		Transition:     c.CreateTransitionStageCommandHandler(),
		SetAutoSync:    c.CreateSetAutoSyncCommandHandler(),
		Sync:           c.CreateSyncExternalEventCommandHandler(),
		CreateWorkflow: c.CreateCreateWorkflowCommandHandler(),
		UpdateWorkflow: c.CreateUpdateWorkflowCommandHandler(),
		Enqueue:        c.CreateEnqueueNotificationCommandHandler(),

		GetProgress:         c.CreateGetProgressQueryHandler(),
		GetCustomerProgress: c.CreateGetCustomerProgressQueryHandler(),
		GetWorkflow:         c.CreateGetWorkflowQueryHandler(),
	}
}

func (c *CompositionRoot) progressUoWFactory() commands.ProgressUoWFactory {
	return FuncProgressUoWFactory(func() commands.ProgressUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workflowUoWFactory() commands.WorkflowUoWFactory {
	return FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncProgressUoWFactory func() commands.ProgressUoW

func (f FuncProgressUoWFactory) Create() commands.ProgressUoW {
	return f()
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
