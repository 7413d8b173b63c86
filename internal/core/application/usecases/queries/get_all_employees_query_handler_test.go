package queries_test

import (
	"context"
	"testing"
	"time"

	"factoryops/internal/adapters/out/postgres/employeerepo"
	"factoryops/internal/core/application/usecases/queries"
	"factoryops/internal/core/domain/model/employee"
	"factoryops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllEmployeesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllEmployeesQueryHandler
}

func (suite *GetAllEmployeesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&employeerepo.EmployeeDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllEmployeesQueryHandler(db)
}

func (suite *GetAllEmployeesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllEmployeesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE employees CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllEmployeesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllEmployeesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllEmployeesQueryHandlerTestSuite) TestHandle_WithEmployees_ReturnsAllOrderedByName() {
	anna := suite.saveEmployee("Anna", "Ozola", "assembler", "active")
	janis := suite.saveEmployee("Janis", "Berzins", "carpenter", "active")
	liga := suite.saveEmployee("Liga", "Berzins", "finisher", "inactive")

	query := queries.NewGetAllEmployeesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Janis", result[0].FirstName)
	suite.True(janis.ID().IsEqual(result[0].ID))
	suite.Equal("carpenter", result[0].Role)

	suite.Equal("Liga", result[1].FirstName)
	suite.True(liga.ID().IsEqual(result[1].ID))
	suite.Equal("inactive", result[1].Status)

	suite.Equal("Ozola", result[2].LastName)
	suite.True(anna.ID().IsEqual(result[2].ID))
	suite.Equal("assembler", result[2].Role)
	suite.Equal("active", result[2].Status)
}

func (suite *GetAllEmployeesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllEmployeesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllEmployeesQuery constructor")
}

func (suite *GetAllEmployeesQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.saveEmployee("Anna", "Ozola", "assembler", "active")

	query := queries.NewGetAllEmployeesQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetAllEmployeesQueryHandlerTestSuite) saveEmployee(firstName, lastName, role, status string) *employee.Employee {
	e, err := employee.NewEmployee(kernel.NewUUID(), firstName, lastName, role, status)
	suite.Require().NoError(err)

	repo := employeerepo.NewGormEmployeeRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), e)
	suite.Require().NoError(err)
	return e
}

func TestGetAllEmployeesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllEmployeesQueryHandlerTestSuite))
}
