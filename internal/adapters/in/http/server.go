package http

import (
	"net/http"

	"mota/internal/core/application/usecases/commands"
	"mota/internal/core/application/usecases/queries"
	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	advanceOrderHandler      commands.AdvanceOrderCommandHandler
	reportOrderErrorHandler  commands.ReportOrderErrorCommandHandler
	pauseOrderHandler        commands.PauseOrderCommandHandler
	confirmOrderHandler      commands.ConfirmOrderCommandHandler
	assignParticipantHandler commands.AssignParticipantCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getOrderTimelineHandler  queries.GetOrderTimelineQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getStationQueueHandler   queries.GetStationQueueQueryHandler
	getPipelineBoardHandler  queries.GetPipelineBoardQueryHandler
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	AdvanceOrder      commands.AdvanceOrderCommandHandler
	ReportOrderError  commands.ReportOrderErrorCommandHandler
	PauseOrder        commands.PauseOrderCommandHandler
	ConfirmOrder      commands.ConfirmOrderCommandHandler
	AssignParticipant commands.AssignParticipantCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	GetOrderTimeline  queries.GetOrderTimelineQueryHandler
	GetOrdersByStatus queries.GetOrdersByStatusQueryHandler
	GetStationQueue   queries.GetStationQueueQueryHandler
	GetPipelineBoard  queries.GetPipelineBoardQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		advanceOrderHandler:      h.AdvanceOrder,
		reportOrderErrorHandler:  h.ReportOrderError,
		pauseOrderHandler:        h.PauseOrder,
		confirmOrderHandler:      h.ConfirmOrder,
		assignParticipantHandler: h.AssignParticipant,
		getOrderHandler:          h.GetOrder,
		getOrderTimelineHandler:  h.GetOrderTimeline,
		getOrdersByStatusHandler: h.GetOrdersByStatus,
		getStationQueueHandler:   h.GetStationQueue,
		getPipelineBoardHandler:  h.GetPipelineBoard,
	}
}

var _ ServerInterface = (*Server)(nil)

// ListStatuses handles GET /api/v1/statuses.
func (s *Server) ListStatuses(ctx echo.Context) error {
	statuses := order.AllStatuses()
	response := make([]Status, len(statuses))
	for i, status := range statuses {
		response[i] = toStatus(status)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	fulfillment := order.FulfillmentAny
	if params.Fulfillment != nil {
		parsed, err := order.ParseFulfillment(*params.Fulfillment)
		if err != nil {
			return err
		}
		fulfillment = parsed
	}

	query, err := queries.NewGetOrdersByStatusQuery(order.Status(params.Status), fulfillment)
	if err != nil {
		return err
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	orderID, err := kernel.NewID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(a, orderID)
	if err != nil {
		return err
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, OrderDetails{
		Order:       toOrder(resp.Order),
		Permissions: toPermissions(resp.Permissions),
	})
}

// GetOrderTimeline handles GET /api/v1/orders/{id}/timeline.
func (s *Server) GetOrderTimeline(ctx echo.Context, id int64) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderTimelineQuery(orderID)
	if err != nil {
		return err
	}

	resp, err := s.getOrderTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toTimeline(resp))
}

// AdvanceOrder handles POST /api/v1/orders/{id}/advance.
func (s *Server) AdvanceOrder(ctx echo.Context, id int64) error {
	a, orderID, err := transitionTarget(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderCommand(a, orderID)
	if err != nil {
		return err
	}

	result, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toTransition(result))
}

// ReportOrderError handles POST /api/v1/orders/{id}/report.
func (s *Server) ReportOrderError(ctx echo.Context, id int64) error {
	a, orderID, err := transitionTarget(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReportOrderErrorCommand(a, orderID)
	if err != nil {
		return err
	}

	result, err := s.reportOrderErrorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toTransition(result))
}

// PauseOrder handles POST /api/v1/orders/{id}/pause.
func (s *Server) PauseOrder(ctx echo.Context, id int64) error {
	a, orderID, err := transitionTarget(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPauseOrderCommand(a, orderID)
	if err != nil {
		return err
	}

	result, err := s.pauseOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toTransition(result))
}

// ConfirmOrder handles POST /api/v1/orders/{id}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, id int64) error {
	a, orderID, err := transitionTarget(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfirmOrderCommand(a, orderID)
	if err != nil {
		return err
	}

	result, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toTransition(result))
}

// AssignParticipant handles PUT /api/v1/orders/{id}/participants.
func (s *Server) AssignParticipant(ctx echo.Context, id int64) error {
	a, orderID, err := transitionTarget(ctx, id)
	if err != nil {
		return err
	}

	var body AssignParticipantRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	slot, err := order.ParseSlot(body.Slot)
	if err != nil {
		return err
	}
	userID, err := kernel.NewID(body.UserID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignParticipantCommand(a, orderID, slot, userID)
	if err != nil {
		return err
	}

	updated, err := s.assignParticipantHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// GetQueue handles GET /api/v1/queue - orders the caller may advance now.
func (s *Server) GetQueue(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetStationQueueQuery(a)
	if err != nil {
		return err
	}

	orders, err := s.getStationQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetBoard handles GET /api/v1/board.
func (s *Server) GetBoard(ctx echo.Context) error {
	resp, err := s.getPipelineBoardHandler.Handle(ctx.Request().Context(), queries.NewGetPipelineBoardQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toBoard(resp))
}

func transitionTarget(ctx echo.Context, id int64) (actor.Actor, kernel.ID, error) {
	a, err := actorFrom(ctx)
	if err != nil {
		return actor.Actor{}, kernel.ID{}, err
	}
	orderID, err := kernel.NewID(id)
	if err != nil {
		return actor.Actor{}, kernel.ID{}, err
	}
	return a, orderID, nil
}
