// Package http exposes the restaurant's use cases as a REST API on echo.
package http

import (
	"errors"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
// Queue-head operations live under /orders/next: the queue is strictly FIFO,
// so the head is the only order a client can act on.
type Server struct {
	// Command handlers
	registerCustomerHandler commands.RegisterCustomerCommandHandler
	removeCustomerHandler   commands.RemoveCustomerCommandHandler
	addMenuItemHandler      commands.AddMenuItemCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	processNextOrderHandler commands.ProcessNextOrderCommandHandler
	advanceOrderHandler     commands.AdvanceOrderStatusCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	setPaymentMethodHandler commands.SetPaymentMethodCommandHandler

	// Query handlers
	searchCustomersHandler queries.SearchCustomersQueryHandler
	getMenuHandler         queries.GetMenuQueryHandler
	listOpenOrdersHandler  queries.ListOpenOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	removeCustomerHandler commands.RemoveCustomerCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	processNextOrderHandler commands.ProcessNextOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	setPaymentMethodHandler commands.SetPaymentMethodCommandHandler,
	searchCustomersHandler queries.SearchCustomersQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	listOpenOrdersHandler queries.ListOpenOrdersQueryHandler,
) *Server {
	return &Server{
		registerCustomerHandler: registerCustomerHandler,
		removeCustomerHandler:   removeCustomerHandler,
		addMenuItemHandler:      addMenuItemHandler,
		placeOrderHandler:       placeOrderHandler,
		processNextOrderHandler: processNextOrderHandler,
		advanceOrderHandler:     advanceOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		setPaymentMethodHandler: setPaymentMethodHandler,
		searchCustomersHandler:  searchCustomersHandler,
		getMenuHandler:          getMenuHandler,
		listOpenOrdersHandler:   listOpenOrdersHandler,
	}
}

// RegisterRoutes wires every API route onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.RegisterCustomer)
	api.DELETE("/customers/:phone", s.RemoveCustomer)
	api.GET("/customers", s.SearchCustomers)

	api.POST("/menu-items", s.AddMenuItem)
	api.GET("/menu", s.GetMenu)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/open", s.ListOpenOrders)
	api.POST("/orders/next/process", s.ProcessNextOrder)
	api.POST("/orders/next/advance", s.AdvanceOrderStatus)
	api.POST("/orders/next/cancel", s.CancelOrder)
	api.POST("/orders/next/payment-method", s.SetPaymentMethod)

	e.GET("/health", s.Health)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var newCustomer NewCustomer
	if err := ctx.Bind(&newCustomer); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterCustomerCommand(newCustomer.Name, newCustomer.Phone, newCustomer.Email)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveCustomer handles DELETE /api/v1/customers/:phone.
// Removes every directory entry with that exact phone; 404 when none match.
func (s *Server) RemoveCustomer(ctx echo.Context) error {
	cmd, err := commands.NewRemoveCustomerCommand(ctx.Param("phone"))
	if err != nil {
		return badRequest(ctx, "Invalid phone: "+err.Error())
	}

	removed, err := s.removeCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}
	if !removed {
		return notFound(ctx, "No customer with that phone")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchCustomers handles GET /api/v1/customers?name=...|phone=...
func (s *Server) SearchCustomers(ctx echo.Context) error {
	query, err := queries.NewSearchCustomersQuery(
		ctx.QueryParam("name"),
		ctx.QueryParam("phone"),
	)
	if err != nil {
		return badRequest(ctx, "Provide exactly one of name or phone")
	}

	matches, err := s.searchCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := make([]Customer, len(matches))
	for i, m := range matches {
		response[i] = Customer{Name: m.Name, Phone: m.Phone, Email: m.Email}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu-items.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var newItem NewMenuItem
	if err := ctx.Bind(&newItem); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoneyFromString(newItem.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewAddMenuItemCommand(newItem.Description, price)
	if err != nil {
		return badRequest(ctx, "Invalid menu item: "+err.Error())
	}

	if err := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	response, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.domainError(ctx, err)
	}

	menuBody := Menu{
		Rendered: response.Rendered,
		Items:    make([]MenuItem, len(response.Items)),
	}
	for i, item := range response.Items {
		menuBody.Items[i] = MenuItem{
			Description: item.Description,
			Price:       item.Price.String(),
		}
	}

	return ctx.JSON(http.StatusOK, menuBody)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cust, err := customer.NewCustomer(newOrder.CustomerName, newOrder.CustomerPhone, newOrder.CustomerEmail)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	lines := make([]commands.OrderLineRequest, len(newOrder.Lines))
	for i, line := range newOrder.Lines {
		lines[i] = commands.OrderLineRequest{
			MenuItemDescription: line.MenuItem,
			Quantity:            line.Quantity,
			Note:                line.Note,
		}
	}

	cmd, err := commands.NewPlaceOrderCommand(cust, newOrder.Address, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// ProcessNextOrder handles POST /api/v1/orders/next/process.
// An empty queue is 404: there is no next order to act on.
func (s *Server) ProcessNextOrder(ctx echo.Context) error {
	processed, err := s.processNextOrderHandler.Handle(
		ctx.Request().Context(),
		commands.NewProcessNextOrderCommand(),
	)
	if err != nil {
		return s.domainError(ctx, err)
	}
	if processed == nil {
		return notFound(ctx, "Order queue is empty")
	}

	return ctx.JSON(http.StatusOK, ProcessedOrder{
		ID:     processed.ID.String(),
		Status: processed.Status.String(),
		Total:  processed.Total.String(),
	})
}

// AdvanceOrderStatus handles POST /api/v1/orders/next/advance.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	status, found, err := s.advanceOrderHandler.Handle(
		ctx.Request().Context(),
		commands.NewAdvanceOrderStatusCommand(),
	)
	if err != nil {
		return s.domainError(ctx, err)
	}
	if !found {
		return notFound(ctx, "Order queue is empty")
	}

	return ctx.JSON(http.StatusOK, StatusChange{Status: status.String()})
}

// CancelOrder handles POST /api/v1/orders/next/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var body CancelOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cancelled, err := s.cancelOrderHandler.Handle(
		ctx.Request().Context(),
		commands.NewCancelOrderCommand(body.Reason),
	)
	if err != nil {
		return s.domainError(ctx, err)
	}
	if !cancelled {
		return notFound(ctx, "Order queue is empty")
	}

	return ctx.NoContent(http.StatusOK)
}

// SetPaymentMethod handles POST /api/v1/orders/next/payment-method.
func (s *Server) SetPaymentMethod(ctx echo.Context) error {
	var body PaymentSelection
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, found, err := s.setPaymentMethodHandler.Handle(
		ctx.Request().Context(),
		commands.NewSetPaymentMethodCommand(body.Method),
	)
	if err != nil {
		return s.domainError(ctx, err)
	}
	if !found {
		return notFound(ctx, "Order queue is empty")
	}

	return ctx.JSON(http.StatusOK, PaymentSelection{Method: method.String()})
}

// ListOpenOrders handles GET /api/v1/orders/open.
func (s *Server) ListOpenOrders(ctx echo.Context) error {
	open, err := s.listOpenOrdersHandler.Handle(
		ctx.Request().Context(),
		queries.NewListOpenOrdersQuery(),
	)
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := make([]OpenOrder, len(open))
	for i, row := range open {
		response[i] = OpenOrder{
			ID:           row.ID.String(),
			CustomerName: row.CustomerName,
			Address:      row.Address,
			Status:       row.Status.String(),
			Total:        row.Total.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// domainError maps domain failures onto HTTP status codes.
func (s *Server) domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, err.Error())
	case errors.Is(err, order.ErrOrderAlreadyDelivered),
		errors.Is(err, order.ErrPaymentIsNotAllowed):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrCancellationReasonIsRequired),
		errors.Is(err, order.ErrPaymentMethodIsInvalid),
		errors.Is(err, order.ErrQuantityIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}
