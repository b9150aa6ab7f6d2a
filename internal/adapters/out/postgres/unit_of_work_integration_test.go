package postgres_test

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
	"coldroute/internal/adapters/out/postgres/deliveryrepo"
	"coldroute/internal/adapters/out/postgres/driverrepo"
	"coldroute/internal/adapters/out/postgres/orderrepo"
	"coldroute/internal/core/domain/model/customer"
	"coldroute/internal/core/domain/model/delivery"
	"coldroute/internal/core/domain/model/driver"
	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/core/domain/model/order"
	"coldroute/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across all
// repositories using a real PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.StopDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE customers, drivers, orders, order_lines, deliveries, delivery_stops").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCustomer() *customer.Customer {
	location, err := kernel.NewGeoPoint(31.2518, 34.7913)
	suite.Require().NoError(err)

	c, err := customer.NewCustomer(kernel.NewUUID(), "מעדניית הדרום", "050-1234567", "העצמאות 12", location)
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testCustomer := suite.createTestCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, testCustomer))

	customerID := testCustomer.ID()
	testOrder, err := order.NewOrder(kernel.NewUUID(), &customerID, nil, "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	restoredCustomer, err := verify.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.Equal("מעדניית הדרום", restoredCustomer.Name())

	restoredOrder, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(restoredOrder.CustomerID())
	suite.Equal(customerID, *restoredOrder.CustomerID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	testCustomer := suite.createTestCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, testCustomer))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDriverRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testDriver, err := driver.NewDriver(kernel.NewUUID(), "יוסי לוי", "052-7654321", "נהג קבוע")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DriverRepository().Add(ctx, testDriver))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	restored, err := verify.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal("יוסי לוי", restored.FullName())
	suite.Equal("052-7654321", restored.Phone())
	suite.Equal("נהג קבוע", restored.Notes())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDeliveryRoundTrip_KeepsRouteOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	near, err := kernel.NewGeoPoint(31.3142, 34.6187)
	suite.Require().NoError(err)
	far, err := kernel.NewGeoPoint(32.0853, 34.7818)
	suite.Require().NoError(err)

	nearStop, err := delivery.NewStop(kernel.NewUUID(), near, 100, "")
	suite.Require().NoError(err)
	farStop, err := delivery.NewStop(kernel.NewUUID(), far, 250, "עד הצהריים")
	suite.Require().NoError(err)

	run, err := delivery.NewDelivery(kernel.NewUUID(), nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(run.SetRoute([]delivery.RoutedStop{
		{Stop: nearStop, SequenceIndex: 0, DistanceFromDepotKm: 17.9},
		{Stop: farStop, SequenceIndex: 1, DistanceFromDepotKm: 92.4},
	}))

	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, run))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	restored, err := verify.DeliveryRepository().Get(ctx, run.ID())
	suite.Require().NoError(err)
	suite.Require().Len(restored.Stops(), 2)
	suite.Equal(nearStop.CustomerID(), restored.Stops()[0].Stop.CustomerID())
	suite.Equal(farStop.CustomerID(), restored.Stops()[1].Stop.CustomerID())
	suite.Equal("עד הצהריים", restored.Stops()[1].Stop.Notes())
	suite.Equal(delivery.Planned, restored.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
