// Package http exposes the fulfillment workflow over a JSON API. All
// routes except registration and login require a bearer token; the order
// detail view additionally requires the Manager role.
package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/identity"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	identityService *identity.Service
	logger          *slog.Logger

	// Command handlers
	startPickingHandler         commands.StartPickingCommandHandler
	finishPickingHandler        commands.FinishPickingCommandHandler
	startPackingHandler         commands.StartPackingCommandHandler
	finishPackingHandler        commands.FinishPackingCommandHandler
	finalizeReviewHandler       commands.FinalizeReviewCommandHandler
	setOrderNoteHandler         commands.SetOrderNoteCommandHandler
	setRequestedQuantityHandler commands.SetRequestedQuantityCommandHandler
	setPickedQuantityHandler    commands.SetPickedQuantityCommandHandler
	addPickedQuantityHandler    commands.AddPickedQuantityCommandHandler
	setPackedQuantityHandler    commands.SetPackedQuantityCommandHandler
	assignBoxHandler            commands.AssignBoxCommandHandler
	createTaskHandler           commands.CreateTaskCommandHandler
	submitEvidenceHandler       commands.SubmitEvidenceCommandHandler
	setProductImageHandler      commands.SetProductImageCommandHandler
	clearProductImageHandler    commands.ClearProductImageCommandHandler

	// Query handlers
	listOrdersHandler          queries.ListOrdersQueryHandler
	listPickableHandler        queries.ListPickableOrdersQueryHandler
	listPackableHandler        queries.ListPackableOrdersQueryHandler
	listDispatchReadyHandler   queries.ListDispatchReadyOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
	listOrderLinesHandler      queries.ListOrderLinesQueryHandler
	listTaskAssignmentsHandler queries.ListTaskAssignmentsQueryHandler
	listProductsHandler        queries.ListProductsQueryHandler
	listLineDetailsHandler     queries.ListLineDetailsWithImagesQueryHandler
}

// Handlers bundles everything the server dispatches to. Grouping them in a
// struct keeps NewServer readable; every field is required.
type Handlers struct {
	StartPicking         commands.StartPickingCommandHandler
	FinishPicking        commands.FinishPickingCommandHandler
	StartPacking         commands.StartPackingCommandHandler
	FinishPacking        commands.FinishPackingCommandHandler
	FinalizeReview       commands.FinalizeReviewCommandHandler
	SetOrderNote         commands.SetOrderNoteCommandHandler
	SetRequestedQuantity commands.SetRequestedQuantityCommandHandler
	SetPickedQuantity    commands.SetPickedQuantityCommandHandler
	AddPickedQuantity    commands.AddPickedQuantityCommandHandler
	SetPackedQuantity    commands.SetPackedQuantityCommandHandler
	AssignBox            commands.AssignBoxCommandHandler
	CreateTask           commands.CreateTaskCommandHandler
	SubmitEvidence       commands.SubmitEvidenceCommandHandler
	SetProductImage      commands.SetProductImageCommandHandler
	ClearProductImage    commands.ClearProductImageCommandHandler

	ListOrders          queries.ListOrdersQueryHandler
	ListPickable        queries.ListPickableOrdersQueryHandler
	ListPackable        queries.ListPackableOrdersQueryHandler
	ListDispatchReady   queries.ListDispatchReadyOrdersQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	ListOrderLines      queries.ListOrderLinesQueryHandler
	ListTaskAssignments queries.ListTaskAssignmentsQueryHandler
	ListProducts        queries.ListProductsQueryHandler
	ListLineDetails     queries.ListLineDetailsWithImagesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(identityService *identity.Service, handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		identityService: identityService,
		logger:          logger.With("component", "http_server"),

		startPickingHandler:         handlers.StartPicking,
		finishPickingHandler:        handlers.FinishPicking,
		startPackingHandler:         handlers.StartPacking,
		finishPackingHandler:        handlers.FinishPacking,
		finalizeReviewHandler:       handlers.FinalizeReview,
		setOrderNoteHandler:         handlers.SetOrderNote,
		setRequestedQuantityHandler: handlers.SetRequestedQuantity,
		setPickedQuantityHandler:    handlers.SetPickedQuantity,
		addPickedQuantityHandler:    handlers.AddPickedQuantity,
		setPackedQuantityHandler:    handlers.SetPackedQuantity,
		assignBoxHandler:            handlers.AssignBox,
		createTaskHandler:           handlers.CreateTask,
		submitEvidenceHandler:       handlers.SubmitEvidence,
		setProductImageHandler:      handlers.SetProductImage,
		clearProductImageHandler:    handlers.ClearProductImage,

		listOrdersHandler:          handlers.ListOrders,
		listPickableHandler:        handlers.ListPickable,
		listPackableHandler:        handlers.ListPackable,
		listDispatchReadyHandler:   handlers.ListDispatchReady,
		getOrderHandler:            handlers.GetOrder,
		listOrderLinesHandler:      handlers.ListOrderLines,
		listTaskAssignmentsHandler: handlers.ListTaskAssignments,
		listProductsHandler:        handlers.ListProducts,
		listLineDetailsHandler:     handlers.ListLineDetails,
	}
}

// RegisterRoutes attaches all routes and middleware to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(RequestLogger(s.logger))

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	e.POST("/auth/register", s.Register)
	e.POST("/auth/login", s.Login)

	api := e.Group("/api/v1", AuthMiddleware(s.identityService))

	api.GET("/orders", s.ListOrders)
	api.GET("/orders/pickable", s.ListPickableOrders)
	api.GET("/orders/packable", s.ListPackableOrders)
	api.GET("/orders/dispatch-ready", s.ListDispatchReadyOrders)
	api.GET("/orders/:orderNumber", s.GetOrder, RequireManager())
	api.GET("/orders/:orderNumber/lines", s.ListOrderLines)
	api.GET("/orders/:orderNumber/lines/details", s.ListLineDetailsWithImages)

	api.POST("/orders/:orderNumber/picking/start", s.StartPicking)
	api.POST("/orders/:orderNumber/picking/finish", s.FinishPicking)
	api.POST("/orders/:orderNumber/packing/start", s.StartPacking)
	api.POST("/orders/:orderNumber/packing/finish", s.FinishPacking)
	api.POST("/orders/:orderNumber/review/finalize", s.FinalizeReview)
	api.PUT("/orders/:orderNumber/picker-note", s.SetPickerNote)
	api.PUT("/orders/:orderNumber/packer-note", s.SetPackerNote)

	api.PUT("/lines/:lineId/requested-quantity", s.SetRequestedQuantity)
	api.PUT("/lines/:lineId/picked-quantity", s.SetPickedQuantity)
	api.POST("/lines/:lineId/picked-quantity/add", s.AddPickedQuantity)
	api.PUT("/lines/:lineId/packed-quantity", s.SetPackedQuantity)
	api.PUT("/lines/:lineId/box", s.AssignBox)

	api.POST("/tasks", s.CreateTask)
	api.POST("/tasks/:taskId/evidence", s.SubmitEvidence)
	api.GET("/operators/:operatorId/assignments", s.ListTaskAssignments)

	api.GET("/products", s.ListProducts)
	api.PUT("/products/:productId/image", s.SetProductImage)
	api.DELETE("/products/:productId/image", s.ClearProductImage)
}

// Register handles POST /auth/register - creates an operator account.
func (s *Server) Register(ctx echo.Context) error {
	var request RegisterRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	account, err := s.identityService.Register(ctx.Request().Context(), identity.RegisterInput{
		Username:  request.Username,
		Password:  request.Password,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		Role:      request.Role,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(account))
}

// Login handles POST /auth/login - exchanges credentials for a token.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	token, account, err := s.identityService.Login(
		ctx.Request().Context(), request.Username, request.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  toUserResponse(account),
	})
}

// ListOrders handles GET /api/v1/orders - the full order dump.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// ListPickableOrders handles GET /api/v1/orders/pickable - the picking board.
func (s *Server) ListPickableOrders(ctx echo.Context) error {
	orders, err := s.listPickableHandler.Handle(
		ctx.Request().Context(), queries.NewListPickableOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// ListPackableOrders handles GET /api/v1/orders/packable - the packing board.
func (s *Server) ListPackableOrders(ctx echo.Context) error {
	orders, err := s.listPackableHandler.Handle(
		ctx.Request().Context(), queries.NewListPackableOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// ListDispatchReadyOrders handles GET /api/v1/orders/dispatch-ready - fully
// packed orders with their lines.
func (s *Server) ListDispatchReadyOrders(ctx echo.Context) error {
	orders, err := s.listDispatchReadyHandler.Handle(
		ctx.Request().Context(), queries.NewListDispatchReadyOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDispatchReadyOrders(orders))
}

// GetOrder handles GET /api/v1/orders/:orderNumber - full order detail.
// Manager-only.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderNumber, ok := orderNumberParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order number")
	}

	query, err := queries.NewGetOrderQuery(orderNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(detail))
}

// ListOrderLines handles GET /api/v1/orders/:orderNumber/lines.
func (s *Server) ListOrderLines(ctx echo.Context) error {
	orderNumber, ok := orderNumberParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order number")
	}

	query, err := queries.NewListOrderLinesQuery(orderNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}

	lines, err := s.listOrderLinesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderLines(lines))
}

// ListLineDetailsWithImages handles GET /api/v1/orders/:orderNumber/lines/details -
// lines joined with catalog products.
func (s *Server) ListLineDetailsWithImages(ctx echo.Context) error {
	orderNumber, ok := orderNumberParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order number")
	}

	query, err := queries.NewListLineDetailsWithImagesQuery(orderNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}

	lines, err := s.listLineDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLineDetailsWithImages(lines))
}

// StartPicking handles POST /api/v1/orders/:orderNumber/picking/start.
func (s *Server) StartPicking(ctx echo.Context) error {
	orderNumber, ok := orderNumberValue(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order number")
	}

	cmd, err := commands.NewStartPickingCommand(orderNumber, actorFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.startPickingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishPicking handles POST /api/v1/orders/:orderNumber/picking/finish.
// The stage timestamps come from the request body.
func (s *Server) FinishPicking(ctx echo.Context) error {
	orderNumber, ok := orderNumberValue(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order number")
	}

	var request FinishStageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFinishPickingCommand(
		orderNumber, request.StartedAt, request.FinishedAt, actorFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.finishPickingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartPacking handles POST /api/v1/orders/:orderNumber/packing/start.
func (s *Server) StartPacking(ctx echo.Context) error {
	orderNumber, ok := orderNumberValue(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order number")
	}

	cmd, err := commands.NewStartPackingCommand(orderNumber, actorFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.startPackingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishPacking handles POST /api/v1/orders/:orderNumber/packing/finish.
func (s *Server) FinishPacking(ctx echo.Context) error {
	orderNumber, ok := orderNumberValue(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order number")
	}

	var request FinishStageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFinishPackingCommand(
		orderNumber, request.StartedAt, request.FinishedAt, actorFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.finishPackingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinalizeReview handles POST /api/v1/orders/:orderNumber/review/finalize.
func (s *Server) FinalizeReview(ctx echo.Context) error {
	orderNumber, ok := orderNumberValue(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order number")
	}

	cmd, err := commands.NewFinalizeReviewCommand(orderNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.finalizeReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPickerNote handles PUT /api/v1/orders/:orderNumber/picker-note.
func (s *Server) SetPickerNote(ctx echo.Context) error {
	return s.setNote(ctx, commands.PickerNote)
}

// SetPackerNote handles PUT /api/v1/orders/:orderNumber/packer-note.
func (s *Server) SetPackerNote(ctx echo.Context) error {
	return s.setNote(ctx, commands.PackerNote)
}

func (s *Server) setNote(ctx echo.Context, kind commands.NoteKind) error {
	orderNumber, ok := orderNumberValue(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order number")
	}

	var request NoteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetOrderNoteCommand(orderNumber, kind, request.Text)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.setOrderNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetRequestedQuantity handles PUT /api/v1/lines/:lineId/requested-quantity.
func (s *Server) SetRequestedQuantity(ctx echo.Context) error {
	lineID, ok := lineIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid line id")
	}

	var request QuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetRequestedQuantityCommand(lineID, request.Quantity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.setRequestedQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPickedQuantity handles PUT /api/v1/lines/:lineId/picked-quantity.
func (s *Server) SetPickedQuantity(ctx echo.Context) error {
	lineID, ok := lineIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid line id")
	}

	var request QuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetPickedQuantityCommand(lineID, request.Quantity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.setPickedQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddPickedQuantity handles POST /api/v1/lines/:lineId/picked-quantity/add -
// increments the picked count as the picker scans items.
func (s *Server) AddPickedQuantity(ctx echo.Context) error {
	lineID, ok := lineIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid line id")
	}

	var request DeltaRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddPickedQuantityCommand(lineID, request.Delta)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.addPickedQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPackedQuantity handles PUT /api/v1/lines/:lineId/packed-quantity.
func (s *Server) SetPackedQuantity(ctx echo.Context) error {
	lineID, ok := lineIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid line id")
	}

	var request QuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetPackedQuantityCommand(lineID, request.Quantity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.setPackedQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignBox handles PUT /api/v1/lines/:lineId/box.
func (s *Server) AssignBox(ctx echo.Context) error {
	lineID, ok := lineIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid line id")
	}

	var request BoxRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignBoxCommand(lineID, request.Label)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.assignBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateTask handles POST /api/v1/tasks - creates a task and its first
// assignment atomically. The creator is the authenticated actor; the
// assignment timestamp is the server clock.
func (s *Server) CreateTask(ctx echo.Context) error {
	var request CreateTaskRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	operatorID, err := kernel.NewOperatorID(request.OperatorID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateTaskCommand(
		request.Name, request.TaskType, request.Frequency,
		actorFrom(ctx).DisplayName(),
		operatorID,
		time.Now().UTC(),
		request.DueAt,
		request.Criteria,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createTaskHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TaskCreated{TaskID: created.ID().Int()})
}

// SubmitEvidence handles POST /api/v1/tasks/:taskId/evidence. The uploader
// is the authenticated actor.
func (s *Server) SubmitEvidence(ctx echo.Context) error {
	taskID, err := kernel.ParseTaskID(ctx.Param("taskId"))
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var request SubmitEvidenceRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitEvidenceCommand(
		taskID,
		actorFrom(ctx).DisplayName(),
		request.Link, request.Notes, request.FileType,
		request.FileSize,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.submitEvidenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ListTaskAssignments handles GET /api/v1/operators/:operatorId/assignments.
// The status query parameter filters by assignment state and defaults to
// pendiente.
func (s *Server) ListTaskAssignments(ctx echo.Context) error {
	operatorID, err := strconv.Atoi(ctx.Param("operatorId"))
	if err != nil {
		return badRequest(ctx, "Invalid operator id")
	}

	status := task.StatusPending
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err = task.ParseAssignmentStatus(raw)
		if err != nil {
			return s.respondError(ctx, err)
		}
	}

	query, err := queries.NewListTaskAssignmentsQuery(operatorID, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	assignments, err := s.listTaskAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTaskAssignments(assignments))
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.listProductsHandler.Handle(
		ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProducts(products))
}

// SetProductImage handles PUT /api/v1/products/:productId/image.
func (s *Server) SetProductImage(ctx echo.Context) error {
	productID, err := kernel.ParseProductID(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var request ProductImageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetProductImageCommand(productID, request.URL)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.setProductImageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearProductImage handles DELETE /api/v1/products/:productId/image.
// Clearing an already-absent image succeeds.
func (s *Server) ClearProductImage(ctx echo.Context) error {
	productID, err := kernel.ParseProductID(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewClearProductImageCommand(productID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.clearProductImageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func orderNumberParam(ctx echo.Context) (int, bool) {
	n, err := strconv.Atoi(ctx.Param("orderNumber"))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func orderNumberValue(ctx echo.Context) (kernel.OrderNumber, bool) {
	n, ok := orderNumberParam(ctx)
	if !ok {
		return 0, false
	}

	orderNumber, err := kernel.NewOrderNumber(n)
	if err != nil {
		return 0, false
	}
	return orderNumber, true
}

func lineIDParam(ctx echo.Context) (kernel.LineID, bool) {
	lineID, err := kernel.ParseLineID(ctx.Param("lineId"))
	if err != nil {
		return 0, false
	}
	return lineID, true
}
