// Package http exposes the application's use cases over a JSON API.
// Every response uses the `{success, data?, message?}` envelope; protected
// routes sit behind the bearer-token guard in auth.go.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"cakery/internal/core/application/usecases/commands"
	"cakery/internal/core/application/usecases/queries"
	"cakery/internal/core/domain/model/order"
	"cakery/internal/pkg/errs"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	loginHandler             commands.LoginCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getAllOrdersHandler               queries.GetAllOrdersQueryHandler
	getTodayOrdersHandler             queries.GetTodayOrdersQueryHandler
	getTomorrowConfirmedOrdersHandler queries.GetTomorrowConfirmedOrdersQueryHandler
	getOrderByIDHandler               queries.GetOrderByIDQueryHandler
	getMonthlyIncomeHandler           queries.GetMonthlyIncomeQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	loginHandler commands.LoginCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getTodayOrdersHandler queries.GetTodayOrdersQueryHandler,
	getTomorrowConfirmedOrdersHandler queries.GetTomorrowConfirmedOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getMonthlyIncomeHandler queries.GetMonthlyIncomeQueryHandler,
) *Server {
	return &Server{
		loginHandler:                      loginHandler,
		createOrderHandler:                createOrderHandler,
		updateOrderHandler:                updateOrderHandler,
		changeOrderStatusHandler:          changeOrderStatusHandler,
		deleteOrderHandler:                deleteOrderHandler,
		getAllOrdersHandler:               getAllOrdersHandler,
		getTodayOrdersHandler:             getTodayOrdersHandler,
		getTomorrowConfirmedOrdersHandler: getTomorrowConfirmedOrdersHandler,
		getOrderByIDHandler:               getOrderByIDHandler,
		getMonthlyIncomeHandler:           getMonthlyIncomeHandler,
	}
}

// RegisterRoutes mounts the API on the echo instance. Everything under
// /api/orders sits behind the guard, the tomorrow feed included.
func (s *Server) RegisterRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	e.GET("/", s.Root)

	e.POST("/api/auth/login", s.Login)

	orders := e.Group("/api/orders", guard)
	orders.GET("/public/tomorrow", s.GetTomorrowConfirmedOrders)
	orders.GET("", s.GetAllOrders)
	orders.GET("/today", s.GetTodayOrders)
	orders.POST("", s.CreateOrder)
	orders.GET("/income/monthly", s.GetMonthlyIncome)
	orders.GET("/:id", s.GetOrderByID)
	orders.PUT("/:id", s.UpdateOrder)
	orders.PATCH("/:id/status", s.ChangeOrderStatus)
	orders.DELETE("/:id", s.DeleteOrder)
}

// Root handles GET / - a liveness message for anyone poking the service.
func (s *Server) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"message":   "Cakery API is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Login handles POST /api/auth/login - authenticates staff credentials and
// issues a session token.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Username and password are required")
	}

	cmd, err := commands.NewLoginCommand(request.Username, request.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   result.Token,
		User: userProfile{
			ID:       result.UserID,
			Username: result.Username,
			FullName: result.FullName,
		},
	})
}

// GetAllOrders handles GET /api/orders - lists every order, newest delivery
// date first.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: toOrderResponses(orders)})
}

// GetTodayOrders handles GET /api/orders/today - lists today's deliveries in
// delivery-time order.
func (s *Server) GetTodayOrders(ctx echo.Context) error {
	orders, err := s.getTodayOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetTodayOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: toOrderResponses(orders)})
}

// GetTomorrowConfirmedOrders handles GET /api/orders/public/tomorrow - the
// feed the automation service reads for tomorrow's confirmed deliveries.
func (s *Server) GetTomorrowConfirmedOrders(ctx echo.Context) error {
	orders, err := s.getTomorrowConfirmedOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetTomorrowConfirmedOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: toOrderResponses(orders)})
}

// CreateOrder handles POST /api/orders - registers a new order. The order
// always starts pending; a caller-supplied status is ignored by the wire
// shape itself.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	deliveryDate, err := time.Parse(dateLayout, request.DeliveryDate)
	if err != nil {
		return badRequest(ctx, "Invalid delivery date, expected YYYY-MM-DD")
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.RecipientName,
		request.Phone,
		request.Address,
		request.CakeDescription,
		request.DeliveryFee,
		deliveryDate,
		request.DeliveryTime,
		request.CollectionTime,
		request.Notes,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, envelope{
		Success: true,
		Message: "Order created successfully",
		Data:    map[string]int64{"id": id},
	})
}

// GetOrderByID handles GET /api/orders/:id - fetches one order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	orderRow, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: toOrderResponse(orderRow)})
}

// UpdateOrder handles PUT /api/orders/:id - a partial update of the named
// fields. The path id is authoritative; an id inside the body is discarded.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var fields map[string]any
	if err = ctx.Bind(&fields); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	doc, err := order.NewUpdateDocument(fields)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, doc)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Order updated successfully",
	})
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status - moves an order to
// a new lifecycle status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request changeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{
		Success: true,
		Message: fmt.Sprintf("Order status updated to %s", cmd.Status()),
	})
}

// DeleteOrder handles DELETE /api/orders/:id - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Order deleted successfully",
	})
}

// GetMonthlyIncome handles GET /api/orders/income/monthly - income groups
// over delivered orders, optionally filtered by year and month query params.
func (s *Server) GetMonthlyIncome(ctx echo.Context) error {
	year, err := intQueryParam(ctx, "year")
	if err != nil {
		return writeError(ctx, err)
	}
	month, err := intQueryParam(ctx, "month")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetMonthlyIncomeQuery(year, month)
	if err != nil {
		return writeError(ctx, err)
	}

	groups, err := s.getMonthlyIncomeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]monthlyIncomeResponse, len(groups))
	for i, group := range groups {
		response[i] = monthlyIncomeResponse{
			Year:            group.Year,
			Month:           group.Month,
			TotalDeliveries: group.TotalDeliveries,
			TotalIncome:     group.TotalIncome,
		}
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: response})
}

// orderIDParam parses the :id path parameter.
func orderIDParam(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return id, nil
}

// intQueryParam parses an optional integer query parameter, 0 when absent.
func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

// badRequest writes a 400 envelope with a fixed message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Message: message})
}

// writeError maps the failure taxonomy onto status codes and the response
// envelope. Storage faults surface their raw diagnostic with a 500, matching
// the behavior clients already depend on.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidCredentials):
		return ctx.JSON(http.StatusUnauthorized, envelope{Success: false, Message: "Invalid credentials"})
	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusUnauthorized, envelope{Success: false, Message: "Token is not valid"})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, envelope{Success: false, Message: "Order not found"})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, envelope{Success: false, Message: err.Error()})
	}
}
