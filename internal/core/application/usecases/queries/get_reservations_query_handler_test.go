package queries_test

import (
	"context"
	"log/slog"
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
	"coldroute/internal/adapters/out/postgres/orderrepo"
	"coldroute/internal/core/application/usecases/queries"
	"coldroute/internal/core/domain/model/customer"
	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/core/domain/model/order"
	"coldroute/internal/core/domain/services"
)

type GetReservationsQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
	handler   queries.GetReservationsQueryHandler
}

func (suite *GetReservationsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
	suite.handler = queries.NewGetReservationsQueryHandler(db, services.NewReservationMatcher(slog.Default()))
}

func (suite *GetReservationsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers, orders, order_lines").Error)
}

func (suite *GetReservationsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedOrder persists an order with a single line and returns its ID.
func (suite *GetReservationsQueryHandlerTestSuite) seedOrder(
	customerID *kernel.UUID, status order.Status, productName, variantRaw string, quantity int, unitPrice float64,
) kernel.UUID {
	ctx := context.Background()

	testOrder, err := order.NewOrder(kernel.NewUUID(), customerID, nil, "")
	suite.Require().NoError(err)

	line, err := order.NewLine(kernel.NewUUID(), productName, variantRaw, quantity, unitPrice)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddLine(line))

	switch status {
	case order.Confirmed:
		suite.Require().NoError(testOrder.Confirm())
	case order.Fulfilled:
		suite.Require().NoError(testOrder.Confirm())
		suite.Require().NoError(testOrder.Fulfill())
	case order.Cancelled:
		suite.Require().NoError(testOrder.Cancel())
	default:
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	return testOrder.ID()
}

func (suite *GetReservationsQueryHandlerTestSuite) seedCustomer(name string) kernel.UUID {
	ctx := context.Background()

	location, err := kernel.NewGeoPoint(31.2518, 34.7913)
	suite.Require().NoError(err)
	c, err := customer.NewCustomer(kernel.NewUUID(), name, "", "", location)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.Commit(ctx))

	return c.ID()
}

func (suite *GetReservationsQueryHandlerTestSuite) TestHandle_MatchesActiveOrderLine() {
	customerID := suite.seedCustomer("מעדניית הדרום")
	orderID := suite.seedOrder(&customerID, order.Draft, "מקפיא A", `{"size":"70x60x180"}`, 2, 1700)

	query, err := queries.NewGetReservationsQuery("מקפיא דגם A", "60x180x70", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(orderID, result[0].OrderID)
	suite.Equal("draft", result[0].Status)
	suite.Equal(2, result[0].Quantity)
	suite.Equal("60x70x180", result[0].Size)
	suite.Require().NotNil(result[0].CustomerName)
	suite.Equal("מעדניית הדרום", *result[0].CustomerName)
	suite.Require().NotNil(result[0].TotalAmount)
	suite.InDelta(3400.0, *result[0].TotalAmount, 0.0001)
	suite.False(result[0].LowConfidence)
}

func (suite *GetReservationsQueryHandlerTestSuite) TestHandle_IgnoresFinishedOrders() {
	suite.seedOrder(nil, order.Fulfilled, "מקפיא A", `{"size":"70x60x180"}`, 2, 1700)
	suite.seedOrder(nil, order.Cancelled, "מקפיא A", `{"size":"70x60x180"}`, 1, 1700)

	query, err := queries.NewGetReservationsQuery("מקפיא דגם A", "60x180x70", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetReservationsQueryHandlerTestSuite) TestHandle_WarehouseScope() {
	suite.seedOrder(nil, order.Confirmed, "מקפיא A", `{"size":"70x60x180","warehouse_id":"wh-1"}`, 3, 1700)
	suite.seedOrder(nil, order.Confirmed, "מקפיא A", `{"size":"70x60x180"}`, 5, 1700)

	query, err := queries.NewGetReservationsQuery("מקפיא דגם A", "60x180x70", "wh-1")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(3, result[0].Quantity)
}

func (suite *GetReservationsQueryHandlerTestSuite) TestHandle_NoMatchingSize() {
	suite.seedOrder(nil, order.Draft, "מקפיא A", `{"size":"50x50x100"}`, 2, 1700)

	query, err := queries.NewGetReservationsQuery("מקפיא דגם A", "60x180x70", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetReservationsQueryHandlerTestSuite) TestHandle_NotConstructedQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetReservationsQuery{})
	suite.Require().Error(err)
}

func TestGetReservationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetReservationsQueryHandlerTestSuite))
}
