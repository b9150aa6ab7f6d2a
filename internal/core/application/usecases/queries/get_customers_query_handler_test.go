package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"coldroute/internal/adapters/out/postgres"
	"coldroute/internal/adapters/out/postgres/customerrepo"
	"coldroute/internal/core/application/usecases/queries"
	"coldroute/internal/core/domain/model/customer"
	"coldroute/internal/core/domain/model/kernel"
)

type GetCustomersQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
	handler   queries.GetCustomersQueryHandler
}

func (suite *GetCustomersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
	suite.handler = queries.NewGetCustomersQueryHandler(db)
}

func (suite *GetCustomersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)
}

func (suite *GetCustomersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCustomersQueryHandlerTestSuite) seedCustomer(
	name, phone, address string,
) kernel.UUID {
	ctx := context.Background()

	location, err := kernel.NewGeoPoint(31.2518, 34.7913)
	suite.Require().NoError(err)

	customerID := kernel.NewUUID()
	aggregate, err := customer.NewCustomer(customerID, name, phone, address, location)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	return customerID
}

func (suite *GetCustomersQueryHandlerTestSuite) TestHandle_ListsAllSortedByName() {
	suite.seedCustomer("משה כהן", "050-1111111", "שדרות בן גוריון 12, באר שבע")
	suite.seedCustomer("אבי לוי", "050-2222222", "רחוב הרצל 5, אופקים")

	result, err := suite.handler.Handle(context.Background(), queries.NewGetCustomersQuery(""))
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("אבי לוי", result[0].Name)
	suite.Equal("משה כהן", result[1].Name)
	suite.Equal("050-1111111", result[1].Phone)
	suite.InDelta(31.2518, result[0].Latitude, 0.0001)
	suite.InDelta(34.7913, result[0].Longitude, 0.0001)
}

func (suite *GetCustomersQueryHandlerTestSuite) TestHandle_FiltersByNameFragment() {
	keptID := suite.seedCustomer("משה כהן", "050-1111111", "באר שבע")
	suite.seedCustomer("אבי לוי", "050-2222222", "אופקים")

	result, err := suite.handler.Handle(context.Background(), queries.NewGetCustomersQuery("כהן"))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(keptID, result[0].ID)
}

func (suite *GetCustomersQueryHandlerTestSuite) TestHandle_EmptyDatabase() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetCustomersQuery(""))
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetCustomersQueryHandlerTestSuite) TestHandle_NotConstructedQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetCustomersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetCustomersQueryIsNotConstructed)
}

func TestGetCustomersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomersQueryHandlerTestSuite))
}
