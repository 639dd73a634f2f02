// Package http provides the echo-based transport for workstation order
// lifecycle operations and read queries. Caller identity arrives in the
// optional X-User-Id / X-User-Role headers and is passed down as an explicit
// Actor parameter; nothing below the transport reads ambient request state.
package http

import (
	"errors"
	"net/http"
	"time"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	startHandler           commands.StartWorkOrderCommandHandler
	completeHandler        commands.CompleteWorkOrderCommandHandler
	haltHandler            commands.HaltWorkOrderCommandHandler
	resumeHandler          commands.ResumeWorkOrderCommandHandler
	waitingForPartsHandler commands.MarkWaitingForPartsCommandHandler

	getWorkOrderHandler             queries.GetWorkOrderQueryHandler
	getControlOrderProgressHandler  queries.GetControlOrderProgressQueryHandler
	getWorkOrderStatusSummaryHandler queries.GetWorkOrderStatusSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	startHandler commands.StartWorkOrderCommandHandler,
	completeHandler commands.CompleteWorkOrderCommandHandler,
	haltHandler commands.HaltWorkOrderCommandHandler,
	resumeHandler commands.ResumeWorkOrderCommandHandler,
	waitingForPartsHandler commands.MarkWaitingForPartsCommandHandler,
	getWorkOrderHandler queries.GetWorkOrderQueryHandler,
	getControlOrderProgressHandler queries.GetControlOrderProgressQueryHandler,
	getWorkOrderStatusSummaryHandler queries.GetWorkOrderStatusSummaryQueryHandler,
) *Server {
	return &Server{
		startHandler:                     startHandler,
		completeHandler:                  completeHandler,
		haltHandler:                      haltHandler,
		resumeHandler:                    resumeHandler,
		waitingForPartsHandler:           waitingForPartsHandler,
		getWorkOrderHandler:              getWorkOrderHandler,
		getControlOrderProgressHandler:   getControlOrderProgressHandler,
		getWorkOrderStatusSummaryHandler: getWorkOrderStatusSummaryHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	orders := e.Group("/api/v1/workstations/:orderType/orders")
	orders.POST("/:id/start", s.StartWorkOrder)
	orders.POST("/:id/complete", s.CompleteWorkOrder)
	orders.POST("/:id/halt", s.HaltWorkOrder)
	orders.POST("/:id/resume", s.ResumeWorkOrder)
	orders.POST("/:id/waiting-for-parts", s.MarkWaitingForParts)
	orders.GET("/:id", s.GetWorkOrder)

	e.GET("/api/v1/workstations/:orderType/control-orders/:id/progress", s.GetControlOrderProgress)
	e.GET("/api/v1/workstations/orders/status-summary", s.GetWorkOrderStatusSummary)
}

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StartWorkOrder handles POST /api/v1/workstations/:orderType/orders/:id/start.
func (s *Server) StartWorkOrder(ctx echo.Context) error {
	orderType, orderID, err := parseOrderParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewStartWorkOrderCommand(orderType, orderID, actorFrom(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.startHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteWorkOrder handles POST /api/v1/workstations/:orderType/orders/:id/complete.
func (s *Server) CompleteWorkOrder(ctx echo.Context) error {
	orderType, orderID, err := parseOrderParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteWorkOrderCommand(orderType, orderID, actorFrom(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.completeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HaltWorkOrder handles POST /api/v1/workstations/:orderType/orders/:id/halt.
func (s *Server) HaltWorkOrder(ctx echo.Context) error {
	orderType, orderID, err := parseOrderParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewHaltWorkOrderCommand(orderType, orderID, actorFrom(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.haltHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResumeWorkOrder handles POST /api/v1/workstations/:orderType/orders/:id/resume.
func (s *Server) ResumeWorkOrder(ctx echo.Context) error {
	orderType, orderID, err := parseOrderParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewResumeWorkOrderCommand(orderType, orderID, actorFrom(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.resumeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkWaitingForPartsRequest is the JSON body of the waiting-for-parts endpoint.
type MarkWaitingForPartsRequest struct {
	SupplyOrderID int64 `json:"supplyOrderId"`
}

// MarkWaitingForParts handles POST /api/v1/workstations/:orderType/orders/:id/waiting-for-parts.
func (s *Server) MarkWaitingForParts(ctx echo.Context) error {
	orderType, orderID, err := parseOrderParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body MarkWaitingForPartsRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewMarkWaitingForPartsCommand(orderType, orderID, body.SupplyOrderID, actorFrom(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.waitingForPartsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// WorkOrderResponse is the JSON view of one work order.
type WorkOrderResponse struct {
	ID             string  `json:"id"`
	OrderNumber    string  `json:"orderNumber"`
	WorkstationID  string  `json:"workstationId"`
	ControlOrderID string  `json:"controlOrderId"`
	Status         string  `json:"status"`
	ItemID         string  `json:"itemId"`
	ItemName       string  `json:"itemName"`
	Quantity       int     `json:"quantity"`
	PlannedStart   *string `json:"plannedStart,omitempty"`
	ActualStart    *string `json:"actualStart,omitempty"`
	ActualFinish   *string `json:"actualFinish,omitempty"`
	SupplyOrderID  *int64  `json:"supplyOrderId,omitempty"`
}

// GetWorkOrder handles GET /api/v1/workstations/:orderType/orders/:id.
func (s *Server) GetWorkOrder(ctx echo.Context) error {
	orderType, orderID, err := parseOrderParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetWorkOrderQuery(orderType, orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	wo, err := s.getWorkOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WorkOrderResponse{
		ID:             wo.ID.String(),
		OrderNumber:    wo.OrderNumber,
		WorkstationID:  wo.WorkstationID,
		ControlOrderID: wo.ControlOrderID.String(),
		Status:         wo.Status,
		ItemID:         wo.ItemID,
		ItemName:       wo.ItemName,
		Quantity:       wo.Quantity,
		PlannedStart:   formatTime(wo.PlannedStart),
		ActualStart:    formatTime(wo.ActualStart),
		ActualFinish:   formatTime(wo.ActualFinish),
		SupplyOrderID:  wo.SupplyOrderID,
	})
}

// ControlOrderProgressResponse is the JSON view of control order progress.
type ControlOrderProgressResponse struct {
	ID              string  `json:"id"`
	OrderNumber     string  `json:"orderNumber"`
	Status          string  `json:"status"`
	ActualFinish    *string `json:"actualFinish,omitempty"`
	TotalOrders     int     `json:"totalOrders"`
	CompletedOrders int     `json:"completedOrders"`
}

// GetControlOrderProgress handles GET /api/v1/workstations/:orderType/control-orders/:id/progress.
func (s *Server) GetControlOrderProgress(ctx echo.Context) error {
	orderType, controlOrderID, err := parseOrderParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetControlOrderProgressQuery(orderType, controlOrderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	progress, err := s.getControlOrderProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ControlOrderProgressResponse{
		ID:              progress.ID.String(),
		OrderNumber:     progress.OrderNumber,
		Status:          progress.Status,
		ActualFinish:    formatTime(progress.ActualFinish),
		TotalOrders:     progress.TotalOrders,
		CompletedOrders: progress.CompletedOrders,
	})
}

// StatusSummaryResponse is one (order type, status) bucket.
type StatusSummaryResponse struct {
	OrderType string `json:"orderType"`
	Status    string `json:"status"`
	Count     int    `json:"count"`
}

// GetWorkOrderStatusSummary handles GET /api/v1/workstations/orders/status-summary.
func (s *Server) GetWorkOrderStatusSummary(ctx echo.Context) error {
	summary, err := s.getWorkOrderStatusSummaryHandler.Handle(
		ctx.Request().Context(), queries.NewGetWorkOrderStatusSummaryQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]StatusSummaryResponse, len(summary))
	for i, bucket := range summary {
		response[i] = StatusSummaryResponse{
			OrderType: bucket.OrderType,
			Status:    bucket.Status,
			Count:     bucket.Count,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// parseOrderParams resolves the :orderType and :id path parameters.
func parseOrderParams(ctx echo.Context) (workorder.OrderType, kernel.UUID, error) {
	orderType, err := workorder.ParseOrderType(ctx.Param("orderType"))
	if err != nil {
		return workorder.TypeUnknown, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return workorder.TypeUnknown, kernel.UUID{}, err
	}

	return orderType, orderID, nil
}

// actorFrom builds the caller identity from the optional identity headers.
func actorFrom(ctx echo.Context) audit.Actor {
	return audit.ActorFromRequest(
		ctx.Request().Header.Get(headerUserID),
		ctx.Request().Header.Get(headerUserRole),
	)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// mapError translates domain errors to HTTP status codes: invalid
// transitions conflict with current state (409), missing aggregates are 404,
// failures of the inventory dependency surface as a bad gateway (502).
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrDependencyFailed):
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
