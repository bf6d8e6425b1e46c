package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence
// behavior, including the conditional status update.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(n int) *order.Order {
	orderNumber, err := kernel.NewOrderNumber(n)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(orderNumber, order.Details{
		Customer:  "Comercial El Roble",
		City:      "Medellín",
		Address:   "Calle 10 #43-12",
		Seller:    "Laura",
		CreatedAt: time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC),
	})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) actor(name string) kernel.Actor {
	actor, err := kernel.NewActor(name)
	suite.Require().NoError(err)
	return actor
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", "1001", testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", "1001", testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)

	suite.Equal(testOrder.OrderNumber(), retrieved.OrderNumber())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(order.Pending, retrieved.LoadedStatus())
	suite.Nil(retrieved.Picker())
	suite.Nil(retrieved.PickStartedAt())
	suite.Equal("Comercial El Roble", retrieved.Details().Customer)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	orderNumber, err := kernel.NewOrderNumber(9999)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, orderNumber)
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransition() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", "1001", mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(loaded.StartPicking(suite.actor("Ana"), now))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Equal(order.Picking, retrieved.Status())
	suite.Require().NotNil(retrieved.Picker())
	suite.Equal("Ana", *retrieved.Picker())
	suite.Require().NotNil(retrieved.PickStartedAt())
	suite.True(retrieved.PickStartedAt().Equal(now))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LostRace_ReturnsStateConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", "1001", mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two operators load the same Pendiente order.
	first, err := suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(first.StartPicking(suite.actor("Ana"), now))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second write hits a row whose status already moved on.
	suite.Require().NoError(second.StartPicking(suite.actor("Luis"), now.Add(time.Second)))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.StateConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// Ana's claim survived.
	retrieved, err := suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Picker())
	suite.Equal("Ana", *retrieved.Picker())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	missing := suite.createTestOrder(4242)
	suite.Require().NoError(missing.StartPicking(suite.actor("Ana"), time.Now()))

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", "1001", mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	exists, err := suite.repository.Exists(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.True(exists)

	absent, err := kernel.NewOrderNumber(9999)
	suite.Require().NoError(err)
	exists, err = suite.repository.Exists(ctx, absent)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FullWorkflowRoundTrips() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", "1001", mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Pick.
	loaded, err := suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	pickStart := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(loaded.StartPicking(suite.actor("Ana"), pickStart))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	loaded, err = suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.FinishPicking(pickStart, pickStart.Add(40*time.Minute), suite.actor("Ana")))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	// Pack.
	loaded, err = suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	packStart := pickStart.Add(time.Hour)
	suite.Require().NoError(loaded.StartPacking(suite.actor("Luis"), packStart))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	loaded, err = suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.FinishPacking(packStart, packStart.Add(20*time.Minute), suite.actor("Luis")))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	// Dispatch review.
	loaded, err = suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.FinalizeReview())
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	final, err := suite.repository.Get(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, final.Status())
	suite.Require().NotNil(final.Picker())
	suite.Equal("Ana", *final.Picker())
	suite.Require().NotNil(final.Packer())
	suite.Equal("Luis", *final.Packer())
	suite.Require().NotNil(final.PickFinishedAt())
	suite.Require().NotNil(final.PackFinishedAt())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
