// Package http implements the inbound HTTP adapter: the admin and
// customer progress API plus the authenticated carrier webhook receiver.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	initializeHandler     commands.InitializeProgressCommandHandler
	assignWorkflowHandler commands.AssignWorkflowCommandHandler
	advanceHandler        commands.AdvanceStageCommandHandler
	transitionHandler     commands.TransitionStageCommandHandler
	setAutoSyncHandler    commands.SetAutoSyncCommandHandler
	syncHandler           commands.SyncExternalEventCommandHandler
	createWorkflowHandler commands.CreateWorkflowCommandHandler
	updateWorkflowHandler commands.UpdateWorkflowCommandHandler
	enqueueHandler        commands.EnqueueNotificationCommandHandler

	// Query handlers
	getProgressHandler         queries.GetProgressQueryHandler
	getCustomerProgressHandler queries.GetCustomerProgressQueryHandler
	getWorkflowHandler         queries.GetWorkflowQueryHandler

	// Collaborators
	directory     ports.OrderDirectory
	webhookSecret []byte
	logger        *slog.Logger
}

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	Initialize     commands.InitializeProgressCommandHandler
	AssignWorkflow commands.AssignWorkflowCommandHandler
	Advance        commands.AdvanceStageCommandHandler
	Transition     commands.TransitionStageCommandHandler
	SetAutoSync    commands.SetAutoSyncCommandHandler
	Sync           commands.SyncExternalEventCommandHandler
	CreateWorkflow commands.CreateWorkflowCommandHandler
	UpdateWorkflow commands.UpdateWorkflowCommandHandler
	Enqueue        commands.EnqueueNotificationCommandHandler

	GetProgress         queries.GetProgressQueryHandler
	GetCustomerProgress queries.GetCustomerProgressQueryHandler
	GetWorkflow         queries.GetWorkflowQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers, the order directory and the shared webhook secret.
func NewServer(
	handlers Handlers,
	directory ports.OrderDirectory,
	webhookSecret []byte,
	logger *slog.Logger,
) *Server {
	return &Server{
		initializeHandler:          handlers.Initialize,
		assignWorkflowHandler:      handlers.AssignWorkflow,
		advanceHandler:             handlers.Advance,
		transitionHandler:          handlers.Transition,
		setAutoSyncHandler:         handlers.SetAutoSync,
		syncHandler:                handlers.Sync,
		createWorkflowHandler:      handlers.CreateWorkflow,
		updateWorkflowHandler:      handlers.UpdateWorkflow,
		enqueueHandler:             handlers.Enqueue,
		getProgressHandler:         handlers.GetProgress,
		getCustomerProgressHandler: handlers.GetCustomerProgress,
		getWorkflowHandler:         handlers.GetWorkflow,
		directory:                  directory,
		webhookSecret:              webhookSecret,
		logger:                     logger.With("component", "http_server"),
	}
}

// GetProgress handles GET /api/v1/orders/{orderId}/progress.
func (s *Server) GetProgress(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params servers.GetProgressParams,
) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if params.View != nil && *params.View == servers.GetProgressParamsViewCustomer {
		return s.getCustomerProgress(ctx, orderID)
	}

	query, err := queries.NewGetProgressQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	record, err := s.getProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, progressFromQuery(record))
}

func (s *Server) getCustomerProgress(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetCustomerProgressQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	view, err := s.getCustomerProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.CustomerProgress{
		CurrentStageLabel:        view.CurrentStageLabel,
		CompletedStageLabels:     view.CompletedStageLabels,
		EstimatedStagesRemaining: view.EstimatedStagesRemaining,
		Status:                   view.Status,
	})
}

// InitializeProgress handles POST /api/v1/orders/{orderId}/progress.
func (s *Server) InitializeProgress(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewInitializeProgressCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if _, err = s.initializeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return s.respondWithProgress(ctx, orderID, http.StatusCreated)
}

// AssignWorkflow handles POST /api/v1/orders/{orderId}/progress/workflow.
func (s *Server) AssignWorkflow(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AssignWorkflowJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	workflowID, err := kernel.UUIDFromBytes(body.WorkflowId[:])
	if err != nil {
		return badRequest(ctx, "Invalid workflow id")
	}

	cmd, err := commands.NewAssignWorkflowCommand(orderID, workflowID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if _, err = s.assignWorkflowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return s.respondWithProgress(ctx, orderID, http.StatusOK)
}

// AdvanceStage handles POST /api/v1/orders/{orderId}/progress/advance.
func (s *Server) AdvanceStage(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AdvanceStageJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	actorID, err := kernel.UUIDFromBytes(body.ActorId[:])
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewAdvanceStageCommand(orderID, actorID, stringValue(body.Notes))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.advanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	s.enqueueNotification(ctx, result)
	return s.respondWithProgress(ctx, orderID, http.StatusOK)
}

// TransitionStage handles POST /api/v1/orders/{orderId}/progress/transition.
func (s *Server) TransitionStage(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.TransitionStageJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.handleManualTransition(
		ctx,
		orderId,
		body.StageId,
		body.ActorId,
		boolValue(body.IsOverride),
		stringValue(body.Reason),
		stringValue(body.Notes),
	)
}

// RevertStage handles PUT /api/v1/orders/{orderId}/progress/revert.
// A revert is a backward override; the target must precede the current
// stage, which the transition policy enforces by requiring a reason.
func (s *Server) RevertStage(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.RevertStageJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.handleManualTransition(ctx, orderId, body.StageId, body.ActorId, true, body.Reason, stringValue(body.Notes))
}

// SkipStage handles PUT /api/v1/orders/{orderId}/progress/skip.
func (s *Server) SkipStage(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.SkipStageJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.handleManualTransition(ctx, orderId, body.StageId, body.ActorId, true, body.Reason, stringValue(body.Notes))
}

func (s *Server) handleManualTransition(
	ctx echo.Context,
	orderId openapi_types.UUID,
	stageID string,
	actorId openapi_types.UUID,
	isOverride bool,
	reason string,
	notes string,
) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	actorID, err := kernel.UUIDFromBytes(actorId[:])
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewTransitionStageCommand(orderID, stageID, actorID, isOverride, reason, notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	s.enqueueNotification(ctx, result)
	return s.respondWithProgress(ctx, orderID, http.StatusOK)
}

// SetAutoSync handles PUT /api/v1/orders/{orderId}/progress/auto-sync.
func (s *Server) SetAutoSync(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.SetAutoSyncJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewSetAutoSyncCommand(orderID, body.Enabled)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if _, err = s.setAutoSyncHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return s.respondWithProgress(ctx, orderID, http.StatusOK)
}

// SyncExternalEvent handles POST /api/v1/orders/{orderId}/progress/sync.
func (s *Server) SyncExternalEvent(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.SyncExternalEventJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	code, err := workflow.ExternalStatusCodeFromString(string(body.Code))
	if err != nil {
		return badRequest(ctx, "Invalid status code")
	}

	cmd, err := commands.NewSyncExternalEventCommand(orderID, code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.syncHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	s.enqueueNotification(ctx, result)
	return s.respondWithProgress(ctx, orderID, http.StatusOK)
}

// CreateWorkflow handles POST /api/v1/workflows.
func (s *Server) CreateWorkflow(ctx echo.Context) error {
	var body servers.CreateWorkflowJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stages, err := stagesFromRequest(body.Stages)
	if err != nil {
		return badRequest(ctx, "Invalid stage list: "+err.Error())
	}

	cmd, err := commands.NewCreateWorkflowCommand(body.Name, stages, boolValue(body.IsDefault))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	definition, err := s.createWorkflowHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, workflowFromDomain(definition))
}

// GetWorkflow handles GET /api/v1/workflows/{workflowId}.
func (s *Server) GetWorkflow(ctx echo.Context, workflowId openapi_types.UUID) error {
	workflowID, err := kernel.UUIDFromBytes(workflowId[:])
	if err != nil {
		return badRequest(ctx, "Invalid workflow id")
	}

	query, err := queries.NewGetWorkflowQuery(workflowID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	definition, err := s.getWorkflowHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workflowFromQuery(definition))
}

// UpdateWorkflow handles PUT /api/v1/workflows/{workflowId}.
func (s *Server) UpdateWorkflow(ctx echo.Context, workflowId openapi_types.UUID) error {
	var body servers.UpdateWorkflowJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	workflowID, err := kernel.UUIDFromBytes(workflowId[:])
	if err != nil {
		return badRequest(ctx, "Invalid workflow id")
	}

	stages, err := stagesFromRequest(body.Stages)
	if err != nil {
		return badRequest(ctx, "Invalid stage list: "+err.Error())
	}

	cmd, err := commands.NewUpdateWorkflowCommand(workflowID, body.Name, stages, boolValue(body.IsDefault))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	definition, err := s.updateWorkflowHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workflowFromDomain(definition))
}

// respondWithProgress re-reads the record through the projector so every
// mutation answers with the same admin view the GET endpoint serves.
func (s *Server) respondWithProgress(ctx echo.Context, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetProgressQuery(orderID)
	if err != nil {
		return s.mapError(ctx, err)
	}

	record, err := s.getProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(status, progressFromQuery(record))
}

// enqueueNotification queues a customer notification when a transition
// lands on a notifiable stage. Failures are logged, never surfaced: a
// slow or broken mail queue must not fail the transition that already
// committed.
func (s *Server) enqueueNotification(ctx echo.Context, result commands.TransitionResult) {
	if !result.Applied || !notification.Notifiable(result.Stage.Category()) {
		return
	}

	cmd, err := commands.NewEnqueueNotificationCommand(
		result.Record.OrderID(),
		result.Stage.Label(),
		result.Stage.Category(),
	)
	if err != nil {
		s.logger.Warn("failed to build notification", "error", err)
		return
	}

	if err := s.enqueueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		s.logger.Warn("failed to enqueue notification",
			"orderId", result.Record.OrderID().String(),
			"error", err)
	}
}

// mapError translates domain and application errors to HTTP status codes.
func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.Is(err, progress.ErrMissingReason),
		errors.Is(err, workflow.ErrUnknownStage),
		errors.Is(err, services.ErrUnmappedStatus):
		return respond(ctx, http.StatusUnprocessableEntity, err)
	case errors.Is(err, progress.ErrAlreadyTerminal),
		errors.Is(err, progress.ErrWorkflowLocked),
		errors.Is(err, workflow.ErrStageInUse),
		errors.Is(err, commands.ErrTransitionConflict):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)
	default:
		s.logger.Error("request failed", "error", err)
		return respond(ctx, http.StatusInternalServerError, errors.New("internal error"))
	}
}

func respond(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolValue(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
