package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"coldroute/internal/core/application/usecases/commands"
	"coldroute/internal/core/application/usecases/queries"
	"coldroute/internal/core/domain/model/delivery"
	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/core/domain/model/order"
	"coldroute/internal/pkg/errs"
)

// Server exposes the application use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler    commands.CreateCustomerCommandHandler
	createDriverHandler      commands.CreateDriverCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	addOrderLineHandler      commands.AddOrderLineCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createDeliveryHandler    commands.CreateDeliveryCommandHandler

	// Query handlers
	getCustomersHandler      queries.GetCustomersQueryHandler
	getDriversHandler        queries.GetDriversQueryHandler
	getReservationsHandler   queries.GetReservationsQueryHandler
	getReservedCountsHandler queries.GetReservedCountsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
	getDriversHandler queries.GetDriversQueryHandler,
	getReservationsHandler queries.GetReservationsQueryHandler,
	getReservedCountsHandler queries.GetReservedCountsQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:    createCustomerHandler,
		createDriverHandler:      createDriverHandler,
		createOrderHandler:       createOrderHandler,
		addOrderLineHandler:      addOrderLineHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		createDeliveryHandler:    createDeliveryHandler,
		getCustomersHandler:      getCustomersHandler,
		getDriversHandler:        getDriversHandler,
		getReservationsHandler:   getReservationsHandler,
		getReservedCountsHandler: getReservedCountsHandler,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func RegisterRoutes(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/customers", s.CreateCustomer)
	v1.GET("/customers", s.GetCustomers)
	v1.POST("/drivers", s.CreateDriver)
	v1.GET("/drivers", s.GetDrivers)
	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/:orderId/items", s.AddOrderItem)
	v1.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	v1.POST("/deliveries", s.CreateDelivery)
	v1.GET("/inventory/reservations", s.GetReservations)
	v1.GET("/inventory/reserved-counts", s.GetReservedCounts)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(body.Location.Latitude, body.Location.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid customer location: "+err.Error())
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(
		customerID, body.Name, body.Phone, body.Address, location)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if handleErr := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: customerID.Bytes()})
}

// GetCustomers handles GET /api/v1/customers - lists customers, optionally
// filtered by the name query parameter.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetCustomersQuery(ctx.QueryParam("name"))

	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = Customer{
			ID:      c.ID.Bytes(),
			Name:    c.Name,
			Phone:   c.Phone,
			Address: c.Address,
			Location: Location{
				Latitude:  c.Latitude,
				Longitude: c.Longitude,
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, body.FullName, body.Phone, body.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if handleErr := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: driverID.Bytes()})
}

// GetDrivers handles GET /api/v1/drivers - lists every registered driver.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetDriversQuery()

	drivers, err := s.getDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = Driver{
			ID:        d.ID.Bytes(),
			FullName:  d.FullName,
			Phone:     d.Phone,
			Notes:     d.Notes,
			CreatedAt: d.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - opens a draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var customerID *kernel.UUID
	if body.CustomerID != nil {
		id, err := kernel.UUIDFromBytes(body.CustomerID[:])
		if err != nil {
			return badRequest(ctx, "Invalid customer id")
		}
		customerID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, body.ExpectedDeliveryDate, body.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.Bytes()})
}

// AddOrderItem handles POST /api/v1/orders/:orderId/items - appends a line
// to a draft order.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body NewOrderItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lineID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(
		orderID, lineID, body.ProductName, body.Variant, body.Quantity, body.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid order item: "+err.Error())
	}

	if handleErr := s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: lineID.Bytes()})
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status - moves an
// order through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body OrderStatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targetStatus, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, targetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDelivery handles POST /api/v1/deliveries - plans a delivery run. The
// route is composed from the customers' coordinates before persisting.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var driverID *kernel.UUID
	if body.DriverID != nil {
		id, err := kernel.UUIDFromBytes(body.DriverID[:])
		if err != nil {
			return badRequest(ctx, "Invalid driver id")
		}
		driverID = &id
	}

	stops := make([]commands.StopInput, len(body.Stops))
	for i, stop := range body.Stops {
		customerID, err := kernel.UUIDFromBytes(stop.CustomerID[:])
		if err != nil {
			return badRequest(ctx, "Invalid stop customer id")
		}
		stops[i] = commands.StopInput{
			CustomerID:    customerID,
			DeliveryPrice: stop.DeliveryPrice,
			Notes:         stop.Notes,
		}
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, driverID, body.DeliveryDate, stops)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: deliveryID.Bytes()})
}

// GetReservations handles GET /api/v1/inventory/reservations - resolves which
// active orders hold stock against a product/size/warehouse combination.
func (s *Server) GetReservations(ctx echo.Context) error {
	query, err := queries.NewGetReservationsQuery(
		ctx.QueryParam("product_name"),
		ctx.QueryParam("size"),
		ctx.QueryParam("warehouse_id"),
	)
	if err != nil {
		return badRequest(ctx, "Invalid reservation query: "+err.Error())
	}

	reservations, err := s.getReservationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Reservation, len(reservations))
	for i, r := range reservations {
		response[i] = Reservation{
			OrderID:              r.OrderID.Bytes(),
			Status:               r.Status,
			CustomerName:         r.CustomerName,
			ProductName:          r.ProductName,
			Size:                 r.Size,
			Quantity:             r.Quantity,
			CreatedAt:            r.CreatedAt,
			ExpectedDeliveryDate: r.ExpectedDeliveryDate,
			TotalAmount:          r.TotalAmount,
			LowConfidence:        r.LowConfidence,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReservedCounts handles GET /api/v1/inventory/reserved-counts - returns
// aggregated reservation buckets for inventory views.
func (s *Server) GetReservedCounts(ctx echo.Context) error {
	query := queries.NewGetReservedCountsQuery()

	counts, err := s.getReservedCountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ReservedCount, len(counts))
	for i, c := range counts {
		response[i] = ReservedCount{
			WarehouseID: c.WarehouseID,
			ProductName: c.ProductName,
			Size:        c.Size,
			Reserved:    c.Reserved,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps use case failures onto HTTP statuses.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrOrderIsNotEditable),
		errors.Is(err, delivery.ErrDeliveryIsNotEditable),
		errors.Is(err, delivery.ErrStopAlreadyPresent):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
