package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/identity"
	"fulfillment/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	config     Config
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		config:     config,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateIdentityService() *identity.Service {
	factory := postgres.NewGormUnitOfWorkFactory(c.gormDB)
	return identity.NewService(factory, []byte(c.config.JWTSecret))
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.CreateIdentityService(), httpadapter.Handlers{
		StartPicking:         c.CreateStartPickingCommandHandler(),
		FinishPicking:        c.CreateFinishPickingCommandHandler(),
		StartPacking:         c.CreateStartPackingCommandHandler(),
		FinishPacking:        c.CreateFinishPackingCommandHandler(),
		FinalizeReview:       c.CreateFinalizeReviewCommandHandler(),
		SetOrderNote:         c.CreateSetOrderNoteCommandHandler(),
		SetRequestedQuantity: c.CreateSetRequestedQuantityCommandHandler(),
		SetPickedQuantity:    c.CreateSetPickedQuantityCommandHandler(),
		AddPickedQuantity:    c.CreateAddPickedQuantityCommandHandler(),
		SetPackedQuantity:    c.CreateSetPackedQuantityCommandHandler(),
		AssignBox:            c.CreateAssignBoxCommandHandler(),
		CreateTask:           c.CreateCreateTaskCommandHandler(),
		SubmitEvidence:       c.CreateSubmitEvidenceCommandHandler(),
		SetProductImage:      c.CreateSetProductImageCommandHandler(),
		ClearProductImage:    c.CreateClearProductImageCommandHandler(),

		ListOrders:          queries.NewListOrdersQueryHandler(c.gormDB),
		ListPickable:        queries.NewListPickableOrdersQueryHandler(c.gormDB),
		ListPackable:        queries.NewListPackableOrdersQueryHandler(c.gormDB),
		ListDispatchReady:   queries.NewListDispatchReadyOrdersQueryHandler(c.gormDB),
		GetOrder:            queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrderLines:      queries.NewListOrderLinesQueryHandler(c.gormDB),
		ListTaskAssignments: queries.NewListTaskAssignmentsQueryHandler(c.gormDB),
		ListProducts:        queries.NewListProductsQueryHandler(c.gormDB),
		ListLineDetails:     queries.NewListLineDetailsWithImagesQueryHandler(c.gormDB),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(queries.NewListDispatchReadyOrdersQueryHandler(c.gormDB), c.logger)
}

func (c *CompositionRoot) CreateStartPickingCommandHandler() commands.StartPickingCommandHandler {
	return commands.NewStartPickingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFinishPickingCommandHandler() commands.FinishPickingCommandHandler {
	return commands.NewFinishPickingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartPackingCommandHandler() commands.StartPackingCommandHandler {
	return commands.NewStartPackingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFinishPackingCommandHandler() commands.FinishPackingCommandHandler {
	return commands.NewFinishPackingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFinalizeReviewCommandHandler() commands.FinalizeReviewCommandHandler {
	return commands.NewFinalizeReviewCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderNoteCommandHandler() commands.SetOrderNoteCommandHandler {
	return commands.NewSetOrderNoteCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetRequestedQuantityCommandHandler() commands.SetRequestedQuantityCommandHandler {
	return commands.NewSetRequestedQuantityCommandHandler(c.lineUoWFactory())
}

func (c *CompositionRoot) CreateSetPickedQuantityCommandHandler() commands.SetPickedQuantityCommandHandler {
	return commands.NewSetPickedQuantityCommandHandler(c.lineUoWFactory())
}

func (c *CompositionRoot) CreateAddPickedQuantityCommandHandler() commands.AddPickedQuantityCommandHandler {
	return commands.NewAddPickedQuantityCommandHandler(c.lineUoWFactory())
}

func (c *CompositionRoot) CreateSetPackedQuantityCommandHandler() commands.SetPackedQuantityCommandHandler {
	return commands.NewSetPackedQuantityCommandHandler(c.lineUoWFactory())
}

func (c *CompositionRoot) CreateAssignBoxCommandHandler() commands.AssignBoxCommandHandler {
	return commands.NewAssignBoxCommandHandler(c.lineUoWFactory())
}

func (c *CompositionRoot) CreateCreateTaskCommandHandler() commands.CreateTaskCommandHandler {
	return commands.NewCreateTaskCommandHandler(c.taskUoWFactory())
}

func (c *CompositionRoot) CreateSubmitEvidenceCommandHandler() commands.SubmitEvidenceCommandHandler {
	return commands.NewSubmitEvidenceCommandHandler(c.taskUoWFactory())
}

func (c *CompositionRoot) CreateSetProductImageCommandHandler() commands.SetProductImageCommandHandler {
	return commands.NewSetProductImageCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateClearProductImageCommandHandler() commands.ClearProductImageCommandHandler {
	return commands.NewClearProductImageCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) lineUoWFactory() commands.LineUoWFactory {
	return FuncLineUoWFactory(func() commands.LineUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) taskUoWFactory() commands.TaskUoWFactory {
	return FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLineUoWFactory func() commands.LineUoW

func (f FuncLineUoWFactory) Create() commands.LineUoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
