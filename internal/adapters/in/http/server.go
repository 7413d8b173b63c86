// Package http exposes the application's use cases over a REST API.
// Handlers translate requests into commands and queries, and map the
// application's error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"factoryops/internal/core/application/usecases/commands"
	"factoryops/internal/core/application/usecases/queries"
	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/material"
	"factoryops/internal/core/domain/model/order"
	"factoryops/internal/core/domain/model/shift"
	"factoryops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// employeeHeader carries the authenticated employee's ID. Authentication
// itself happens upstream; the API trusts this header.
const employeeHeader = "X-Employee-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	finishOrderHandler    commands.FinishOrderCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler
	createMaterialHandler commands.CreateMaterialCommandHandler
	adjustStockHandler    commands.AdjustStockCommandHandler
	deleteMaterialHandler commands.DeleteMaterialCommandHandler
	createEmployeeHandler commands.CreateEmployeeCommandHandler
	deleteEmployeeHandler commands.DeleteEmployeeCommandHandler
	startShiftHandler     commands.StartShiftCommandHandler
	endShiftHandler       commands.EndShiftCommandHandler

	// Query handlers
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getOrderByIDHandler    queries.GetOrderByIDQueryHandler
	getAllMaterialsHandler queries.GetAllMaterialsQueryHandler
	getAllEmployeesHandler queries.GetAllEmployeesQueryHandler
	getWorkStatsHandler    queries.GetWorkStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	finishOrderHandler commands.FinishOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createMaterialHandler commands.CreateMaterialCommandHandler,
	adjustStockHandler commands.AdjustStockCommandHandler,
	deleteMaterialHandler commands.DeleteMaterialCommandHandler,
	createEmployeeHandler commands.CreateEmployeeCommandHandler,
	deleteEmployeeHandler commands.DeleteEmployeeCommandHandler,
	startShiftHandler commands.StartShiftCommandHandler,
	endShiftHandler commands.EndShiftCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getAllMaterialsHandler queries.GetAllMaterialsQueryHandler,
	getAllEmployeesHandler queries.GetAllEmployeesQueryHandler,
	getWorkStatsHandler queries.GetWorkStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		acceptOrderHandler:     acceptOrderHandler,
		finishOrderHandler:     finishOrderHandler,
		deleteOrderHandler:     deleteOrderHandler,
		createMaterialHandler:  createMaterialHandler,
		adjustStockHandler:     adjustStockHandler,
		deleteMaterialHandler:  deleteMaterialHandler,
		createEmployeeHandler:  createEmployeeHandler,
		deleteEmployeeHandler:  deleteEmployeeHandler,
		startShiftHandler:      startShiftHandler,
		endShiftHandler:        endShiftHandler,
		getAllOrdersHandler:    getAllOrdersHandler,
		getOrderByIDHandler:    getOrderByIDHandler,
		getAllMaterialsHandler: getAllMaterialsHandler,
		getAllEmployeesHandler: getAllEmployeesHandler,
		getWorkStatsHandler:    getWorkStatsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrderByID)
	api.PATCH("/orders/:orderId/accept", s.AcceptOrder)
	api.PATCH("/orders/:orderId/finish", s.FinishOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)

	api.GET("/materials", s.GetMaterials)
	api.POST("/materials", s.CreateMaterial)
	api.PUT("/materials/:materialId", s.AdjustStock)
	api.DELETE("/materials/:materialId", s.DeleteMaterial)

	api.GET("/employees", s.GetEmployees)
	api.POST("/employees", s.CreateEmployee)
	api.DELETE("/employees/:employeeId", s.DeleteEmployee)

	api.POST("/shifts/start", s.StartShift)
	api.PUT("/shifts/:shiftId/end", s.EndShift)

	api.GET("/work-stats", s.GetWorkStats)
}

// GetOrders handles GET /api/v1/orders - lists all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:           o.ID.String(),
			ProductName:  o.ProductName,
			Quantity:     o.Quantity,
			Status:       o.Status,
			EmployeeName: o.EmployeeName,
		}
		if o.EmployeeID != nil {
			id := o.EmployeeID.String()
			response[i].EmployeeID = &id
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:orderId - order detail with
// requirement lines.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	detail, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := OrderDetail{
		ID:           detail.ID.String(),
		ProductName:  detail.ProductName,
		Quantity:     detail.Quantity,
		Status:       detail.Status,
		EmployeeName: detail.EmployeeName,
		Requirements: make([]RequirementLine, len(detail.Requirements)),
	}
	if detail.EmployeeID != nil {
		id := detail.EmployeeID.String()
		response.EmployeeID = &id
	}
	for i, line := range detail.Requirements {
		response.Requirements[i] = RequirementLine{
			MaterialID:      line.MaterialID.String(),
			MaterialName:    line.MaterialName,
			PerUnitQuantity: line.PerUnitQuantity,
			TotalQuantity:   line.TotalQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - creates a new production order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	requirements := make([]order.Requirement, 0, len(req.Requirements))
	for _, line := range req.Requirements {
		materialID, err := kernel.UUIDFromString(line.MaterialID)
		if err != nil {
			return s.badRequest(ctx, "Invalid material ID: "+line.MaterialID)
		}

		requirement, err := order.NewRequirement(materialID, line.PerUnitQuantity)
		if err != nil {
			return s.badRequest(ctx, err.Error())
		}
		requirements = append(requirements, requirement)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.ProductName, req.Quantity, requirements)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// AcceptOrder handles PATCH /api/v1/orders/:orderId/accept - the acting
// employee takes the order and its materials are reserved.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	employeeID, err := actorID(ctx)
	if err != nil {
		return s.unauthorized(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, employeeID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishOrder handles PATCH /api/v1/orders/:orderId/finish - the assigned
// employee completes the order.
func (s *Server) FinishOrder(ctx echo.Context) error {
	employeeID, err := actorID(ctx)
	if err != nil {
		return s.unauthorized(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewFinishOrderCommand(orderID, employeeID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.finishOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - removes the order,
// releasing reserved stock for accepted orders.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMaterials handles GET /api/v1/materials - lists the material catalog.
func (s *Server) GetMaterials(ctx echo.Context) error {
	query := queries.NewGetAllMaterialsQuery()

	materials, err := s.getAllMaterialsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Material, len(materials))
	for i, m := range materials {
		response[i] = Material{
			ID:        m.ID.String(),
			Name:      m.Name,
			Warehouse: m.Warehouse,
			Location:  m.Location,
			Unit:      m.Unit,
			Quantity:  m.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMaterial handles POST /api/v1/materials - registers a new material.
func (s *Server) CreateMaterial(ctx echo.Context) error {
	var req NewMaterial
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	materialID := kernel.NewUUID()
	cmd, err := commands.NewCreateMaterialCommand(materialID, req.Name, req.Warehouse, req.Location, req.Unit, req.Quantity)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.createMaterialHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: materialID.String()})
}

// AdjustStock handles PUT /api/v1/materials/:materialId - replenishes or
// writes off stock by a signed delta.
func (s *Server) AdjustStock(ctx echo.Context) error {
	materialID, err := kernel.UUIDFromString(ctx.Param("materialId"))
	if err != nil {
		return s.badRequest(ctx, "Invalid material ID")
	}

	var req StockAdjustment
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdjustStockCommand(materialID, req.Delta)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.adjustStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMaterial handles DELETE /api/v1/materials/:materialId.
func (s *Server) DeleteMaterial(ctx echo.Context) error {
	materialID, err := kernel.UUIDFromString(ctx.Param("materialId"))
	if err != nil {
		return s.badRequest(ctx, "Invalid material ID")
	}

	cmd, err := commands.NewDeleteMaterialCommand(materialID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.deleteMaterialHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetEmployees handles GET /api/v1/employees - lists the employee roster.
func (s *Server) GetEmployees(ctx echo.Context) error {
	query := queries.NewGetAllEmployeesQuery()

	employees, err := s.getAllEmployeesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Employee, len(employees))
	for i, e := range employees {
		response[i] = Employee{
			ID:        e.ID.String(),
			FirstName: e.FirstName,
			LastName:  e.LastName,
			Role:      e.Role,
			Status:    e.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	var req NewEmployee
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	employeeID := kernel.NewUUID()
	cmd, err := commands.NewCreateEmployeeCommand(employeeID, req.FirstName, req.LastName, req.Role, req.Status)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.createEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: employeeID.String()})
}

// DeleteEmployee handles DELETE /api/v1/employees/:employeeId.
func (s *Server) DeleteEmployee(ctx echo.Context) error {
	employeeID, err := kernel.UUIDFromString(ctx.Param("employeeId"))
	if err != nil {
		return s.badRequest(ctx, "Invalid employee ID")
	}

	cmd, err := commands.NewDeleteEmployeeCommand(employeeID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.deleteEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartShift handles POST /api/v1/shifts/start - opens a shift for the
// acting employee.
func (s *Server) StartShift(ctx echo.Context) error {
	employeeID, err := actorID(ctx)
	if err != nil {
		return s.unauthorized(ctx, err)
	}

	shiftID := kernel.NewUUID()
	cmd, err := commands.NewStartShiftCommand(shiftID, employeeID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.startShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: shiftID.String()})
}

// EndShift handles PUT /api/v1/shifts/:shiftId/end - closes the acting
// employee's shift.
func (s *Server) EndShift(ctx echo.Context) error {
	employeeID, err := actorID(ctx)
	if err != nil {
		return s.unauthorized(ctx, err)
	}

	shiftID, err := kernel.UUIDFromString(ctx.Param("shiftId"))
	if err != nil {
		return s.badRequest(ctx, "Invalid shift ID")
	}

	cmd, err := commands.NewEndShiftCommand(shiftID, employeeID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.endShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkStats handles GET /api/v1/work-stats - per-employee totals over
// closed shifts.
func (s *Server) GetWorkStats(ctx echo.Context) error {
	query := queries.NewGetWorkStatsQuery()

	stats, err := s.getWorkStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]WorkStats, len(stats))
	for i, stat := range stats {
		response[i] = WorkStats{
			EmployeeID:       stat.EmployeeID.String(),
			FirstName:        stat.FirstName,
			LastName:         stat.LastName,
			Role:             stat.Role,
			TotalWorkedHours: stat.TotalWorked.Hours(),
			ShiftCount:       stat.ShiftCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorID extracts the acting employee's ID from the request header.
// A missing header means the request skipped authentication.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(employeeHeader)
	if raw == "" {
		return kernel.UUID{}, errors.New("missing " + employeeHeader + " header")
	}

	employeeID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errors.New("invalid " + employeeHeader + " header")
	}

	return employeeID, nil
}

func (s *Server) unauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: err.Error(),
	})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application errors onto HTTP status codes. Each failure
// kind has exactly one status code.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrNotAssignedEmployee),
		errors.Is(err, commands.ErrNotShiftOwner):
		status = http.StatusForbidden
	case errors.Is(err, material.ErrInsufficientStock),
		errors.Is(err, order.ErrAlreadyAssigned),
		errors.Is(err, order.ErrAlreadyCompleted),
		errors.Is(err, order.ErrNotYetAccepted),
		errors.Is(err, shift.ErrAlreadyEnded),
		errors.Is(err, commands.ErrEmployeeAlreadyBusy),
		errors.Is(err, commands.ErrShiftAlreadyActive),
		errors.Is(err, commands.ErrMaterialInUse),
		errors.Is(err, commands.ErrEmployeeHasActiveOrder):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
