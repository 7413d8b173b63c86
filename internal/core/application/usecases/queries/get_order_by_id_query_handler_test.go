package queries_test

import (
	"context"
	"testing"
	"time"

	"factoryops/internal/adapters/out/postgres/employeerepo"
	"factoryops/internal/adapters/out/postgres/materialrepo"
	"factoryops/internal/adapters/out/postgres/orderrepo"
	"factoryops/internal/core/application/usecases/queries"
	"factoryops/internal/core/domain/model/employee"
	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/material"
	"factoryops/internal/core/domain/model/order"
	"factoryops/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderByIDQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderByIDQueryHandler
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&materialrepo.MaterialDTO{},
		&employeerepo.EmployeeDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.RequirementDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderByIDQueryHandler(db)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, materials, employees CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_WithRequirements_ReturnsOrderDetail() {
	ctx := context.Background()

	screw := suite.saveMaterial("Screw M4", 500)
	panel := suite.saveMaterial("Oak Panel", 40)

	screwReq, err := order.NewRequirement(screw.ID(), 8)
	suite.Require().NoError(err)
	panelReq, err := order.NewRequirement(panel.ID(), 2)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), "Bookshelf", 5, []order.Requirement{screwReq, panelReq})
	suite.Require().NoError(err)

	orderRepo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = orderRepo.Add(ctx, o)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderByIDQuery(o.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(result.ID))
	suite.Equal("Bookshelf", result.ProductName)
	suite.Equal(5, result.Quantity)
	suite.Equal("NotStarted", result.Status)
	suite.Nil(result.EmployeeID)

	suite.Require().Len(result.Requirements, 2)
	lines := make(map[string]queries.RequirementLineResponse)
	for _, line := range result.Requirements {
		lines[line.MaterialName] = line
	}

	screwLine, ok := lines["Screw M4"]
	suite.Require().True(ok)
	suite.True(screw.ID().IsEqual(screwLine.MaterialID))
	suite.Equal(8, screwLine.PerUnitQuantity)
	suite.Equal(40, screwLine.TotalQuantity)

	panelLine, ok := lines["Oak Panel"]
	suite.Require().True(ok)
	suite.Equal(2, panelLine.PerUnitQuantity)
	suite.Equal(10, panelLine.TotalQuantity)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_AssignedOrder_IncludesEmployee() {
	ctx := context.Background()

	worker, err := employee.NewEmployee(kernel.NewUUID(), "Janis", "Berzins", "assembler", "active")
	suite.Require().NoError(err)
	employeeRepo := employeerepo.NewGormEmployeeRepository(suite.db, &mockAggregateTracker{})
	err = employeeRepo.Add(ctx, worker)
	suite.Require().NoError(err)

	screw := suite.saveMaterial("Screw M4", 500)
	req, err := order.NewRequirement(screw.ID(), 2)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), "Cabinet", 10, []order.Requirement{req})
	suite.Require().NoError(err)
	err = o.Accept(worker.ID())
	suite.Require().NoError(err)

	orderRepo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = orderRepo.Add(ctx, o)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderByIDQuery(o.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("Accepted", result.Status)
	suite.Require().NotNil(result.EmployeeID)
	suite.True(worker.ID().IsEqual(*result.EmployeeID))
	suite.Equal("Janis Berzins", result.EmployeeName)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderByIDQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderByIDQuery constructor")
}

func (suite *GetOrderByIDQueryHandlerTestSuite) saveMaterial(name string, quantity int) *material.Material {
	m, err := material.NewMaterial(kernel.NewUUID(), name, "Main Warehouse", "A-01", "pcs", quantity)
	suite.Require().NoError(err)

	repo := materialrepo.NewGormMaterialRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), m)
	suite.Require().NoError(err)
	return m
}

func TestGetOrderByIDQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderByIDQueryHandlerTestSuite))
}
