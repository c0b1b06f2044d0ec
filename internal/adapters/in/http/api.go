package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status      int     `form:"status" json:"status"`
	Fulfillment *string `form:"fulfillment,omitempty" json:"fulfillment,omitempty"`
}

// ServerInterface represents all server handlers of the /api/v1 surface.
type ServerInterface interface {
	// (GET /statuses)
	ListStatuses(ctx echo.Context) error
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id int64) error
	// (GET /orders/{id}/timeline)
	GetOrderTimeline(ctx echo.Context, id int64) error
	// (POST /orders/{id}/advance)
	AdvanceOrder(ctx echo.Context, id int64) error
	// (POST /orders/{id}/report)
	ReportOrderError(ctx echo.Context, id int64) error
	// (POST /orders/{id}/pause)
	PauseOrder(ctx echo.Context, id int64) error
	// (POST /orders/{id}/confirm)
	ConfirmOrder(ctx echo.Context, id int64) error
	// (PUT /orders/{id}/participants)
	AssignParticipant(ctx echo.Context, id int64) error
	// (GET /queue)
	GetQueue(ctx echo.Context) error
	// (GET /board)
	GetBoard(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListStatuses(ctx echo.Context) error {
	return w.Handler.ListStatuses(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, true, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "fulfillment", ctx.QueryParams(), &params.Fulfillment)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter fulfillment: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOrderTimeline(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderTimeline(ctx, id)
}

func (w *ServerInterfaceWrapper) AdvanceOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AdvanceOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ReportOrderError(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ReportOrderError(ctx, id)
}

func (w *ServerInterfaceWrapper) PauseOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PauseOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ConfirmOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ConfirmOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) AssignParticipant(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AssignParticipant(ctx, id)
}

func (w *ServerInterfaceWrapper) GetQueue(ctx echo.Context) error {
	return w.Handler.GetQueue(ctx)
}

func (w *ServerInterfaceWrapper) GetBoard(ctx echo.Context) error {
	return w.Handler.GetBoard(ctx)
}

func bindOrderID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL wires every operation below baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/statuses", w.ListStatuses)
	router.GET(baseURL+"/orders", w.ListOrders)
	router.GET(baseURL+"/orders/:id", w.GetOrder)
	router.GET(baseURL+"/orders/:id/timeline", w.GetOrderTimeline)
	router.POST(baseURL+"/orders/:id/advance", w.AdvanceOrder)
	router.POST(baseURL+"/orders/:id/report", w.ReportOrderError)
	router.POST(baseURL+"/orders/:id/pause", w.PauseOrder)
	router.POST(baseURL+"/orders/:id/confirm", w.ConfirmOrder)
	router.PUT(baseURL+"/orders/:id/participants", w.AssignParticipant)
	router.GET(baseURL+"/queue", w.GetQueue)
	router.GET(baseURL+"/board", w.GetBoard)
}
