package cmd

import (
	"log/slog"
	"os"
	"time"

	"factoryops/internal/adapters/in/http"
	"factoryops/internal/adapters/out/postgres"
	"factoryops/internal/core/application/usecases/commands"
	"factoryops/internal/core/application/usecases/queries"
	"factoryops/internal/core/ports"
	"factoryops/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All dependency
// construction happens here; nothing reaches for globals.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	logger     *slog.Logger

	maxShiftDuration time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:            systemClock{},
		logger:           slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		maxShiftDuration: config.MaxShiftDuration,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() commands.FinishOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinishOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMaterialCommandHandler() commands.CreateMaterialCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMaterialCommandHandler(f)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteMaterialCommandHandler() commands.DeleteMaterialCommandHandler {
	var f commands.MaterialUoWFactory = FuncMaterialUoWFactory(func() commands.MaterialUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteMaterialCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEmployeeCommandHandler() commands.CreateEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteEmployeeCommandHandler() commands.DeleteEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateStartShiftCommandHandler() commands.StartShiftCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartShiftCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateEndShiftCommandHandler() commands.EndShiftCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEndShiftCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCloseStaleShiftsCommandHandler() commands.CloseStaleShiftsCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseStaleShiftsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllMaterialsQueryHandler() queries.GetAllMaterialsQueryHandler {
	return queries.NewGetAllMaterialsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllEmployeesQueryHandler() queries.GetAllEmployeesQueryHandler {
	return queries.NewGetAllEmployeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkStatsQueryHandler() queries.GetWorkStatsQueryHandler {
	return queries.NewGetWorkStatsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST server from all handlers.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateFinishOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateCreateMaterialCommandHandler(),
		c.CreateAdjustStockCommandHandler(),
		c.CreateDeleteMaterialCommandHandler(),
		c.CreateCreateEmployeeCommandHandler(),
		c.CreateDeleteEmployeeCommandHandler(),
		c.CreateStartShiftCommandHandler(),
		c.CreateEndShiftCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetAllMaterialsQueryHandler(),
		c.CreateGetAllEmployeesQueryHandler(),
		c.CreateGetWorkStatsQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCloseStaleShiftsCommandHandler(),
		c.maxShiftDuration,
		c.logger,
	)
}

// systemClock implements ports.Clock over the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncMaterialUoWFactory func() commands.MaterialUoW

func (f FuncMaterialUoWFactory) Create() commands.MaterialUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type FuncShiftUoWFactory func() commands.ShiftUoW

func (f FuncShiftUoWFactory) Create() commands.ShiftUoW {
	return f()
}
