package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/linerepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/orderline"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DispatchBoardQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListDispatchReadyOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	lineRepo  *linerepo.GormLineRepository
}

func (suite *DispatchBoardQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &linerepo.LineDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListDispatchReadyOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.lineRepo = linerepo.NewGormLineRepository(db, &mockAggregateTracker{})
}

func (suite *DispatchBoardQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *DispatchBoardQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *DispatchBoardQueryHandlerTestSuite) TestEmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewListDispatchReadyOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *DispatchBoardQueryHandlerTestSuite) TestDispatchReadyOrder_CarriesItsLines() {
	suite.addDispatchReadyOrder(1001)
	suite.addLine(10, 1001, 1, "REF-001", 4)
	suite.addLine(11, 1001, 2, "REF-002", 2)
	suite.addDispatchReadyOrder(1002)
	suite.addLine(12, 1002, 1, "REF-003", 6)

	query := queries.NewListDispatchReadyOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(1001, result[0].OrderNumber)
	suite.Require().Len(result[0].Lines, 2)
	suite.Equal("REF-001", result[0].Lines[0].Reference)
	suite.Equal("REF-002", result[0].Lines[1].Reference)
	suite.Equal(1002, result[1].OrderNumber)
	suite.Require().Len(result[1].Lines, 1)
	suite.Require().NotNil(result[0].Packer)
	suite.Equal("Luis", *result[0].Packer)
	suite.NotNil(result[0].PackFinishedAt)
}

func (suite *DispatchBoardQueryHandlerTestSuite) TestOrderWithoutLines_StillListed() {
	suite.addDispatchReadyOrder(1001)
	suite.addDispatchReadyOrder(1002)
	suite.addLine(10, 1002, 1, "REF-001", 4)

	query := queries.NewListDispatchReadyOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(1001, result[0].OrderNumber)
	suite.NotNil(result[0].Lines)
	suite.Empty(result[0].Lines)
	suite.Equal(1002, result[1].OrderNumber)
	suite.Require().Len(result[1].Lines, 1)
}

func (suite *DispatchBoardQueryHandlerTestSuite) TestOtherStatuses_Excluded() {
	orderNumber, err := kernel.NewOrderNumber(1001)
	suite.Require().NoError(err)
	pending, err := order.NewOrder(orderNumber, order.Details{
		Customer:   "Comercial El Roble",
		City:       "Medellín",
		Address:    "Calle 10 # 43-12",
		Seller:     "Marta",
		CreatedAt:  time.Now().UTC(),
		OperatorID: 1,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), pending))

	query := queries.NewListDispatchReadyOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *DispatchBoardQueryHandlerTestSuite) addDispatchReadyOrder(number int) {
	orderNumber, err := kernel.NewOrderNumber(number)
	suite.Require().NoError(err)

	o, err := order.NewOrder(orderNumber, order.Details{
		Customer:   "Comercial El Roble",
		City:       "Medellín",
		Address:    "Calle 10 # 43-12",
		Seller:     "Marta",
		CreatedAt:  time.Now().UTC(),
		OperatorID: 1,
	})
	suite.Require().NoError(err)

	picker, err := kernel.NewActor("Ana")
	suite.Require().NoError(err)
	packer, err := kernel.NewActor("Luis")
	suite.Require().NoError(err)

	now := time.Now().UTC()
	suite.Require().NoError(o.StartPicking(picker, now))
	suite.Require().NoError(o.FinishPicking(now.Add(-20*time.Minute), now, picker))
	suite.Require().NoError(o.StartPacking(packer, now))
	suite.Require().NoError(o.FinishPacking(now.Add(-5*time.Minute), now, packer))

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
}

func (suite *DispatchBoardQueryHandlerTestSuite) addLine(id, orderNum, sequence int, reference string, qty int) {
	lineID, err := kernel.NewLineID(id)
	suite.Require().NoError(err)
	orderNumber, err := kernel.NewOrderNumber(orderNum)
	suite.Require().NoError(err)

	line, err := orderline.NewLine(lineID, orderNumber, sequence, reference, "Caja de tornillos", qty, 12.50)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.lineRepo.Add(context.Background(), line))
}

func TestDispatchBoardQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchBoardQueryHandlerTestSuite))
}
