package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/taskrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListTaskAssignmentsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListTaskAssignmentsQueryHandler
	taskRepo  *taskrepo.GormTaskRepository
}

func (suite *ListTaskAssignmentsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&taskrepo.TaskDTO{}, &taskrepo.AssignmentDTO{}, &taskrepo.EvidenceDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListTaskAssignmentsQueryHandler(db)
	suite.taskRepo = taskrepo.NewGormTaskRepository(db, &mockAggregateTracker{})
}

func (suite *ListTaskAssignmentsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListTaskAssignmentsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE tasks, task_assignments, task_evidence CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ListTaskAssignmentsQueryHandlerTestSuite) TestHandle_NoAssignments_ReturnsEmptySlice() {
	query, err := queries.NewListTaskAssignmentsQuery(7, task.StatusPending)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListTaskAssignmentsQueryHandlerTestSuite) TestHandle_PendingWithoutEvidence_NilLatestEvidence() {
	assignment := suite.createTaskWithAssignment("Conteo cíclico", 7)

	query, err := queries.NewListTaskAssignmentsQuery(7, task.StatusPending)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(assignment.ID().Int(), result[0].AssignmentID)
	suite.Equal("Conteo cíclico", result[0].TaskName)
	suite.Equal("pendiente", result[0].Status)
	suite.Nil(result[0].LatestEvidence)
}

func (suite *ListTaskAssignmentsQueryHandlerTestSuite) TestHandle_InProcess_CarriesNewestEvidence() {
	assignment := suite.createTaskWithAssignment("Limpieza de pasillo", 7)

	suite.addEvidence(assignment, "https://files/first.jpg", time.Now().UTC().Add(-time.Hour))
	suite.addEvidence(assignment, "https://files/second.jpg", time.Now().UTC())

	assignment.SubmitEvidence()
	err := suite.taskRepo.UpdateAssignment(context.Background(), assignment)
	suite.Require().NoError(err)

	query, err := queries.NewListTaskAssignmentsQuery(7, task.StatusInProcess)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("en proceso", result[0].Status)
	suite.Require().NotNil(result[0].LatestEvidence)
	suite.Equal("https://files/second.jpg", result[0].LatestEvidence.Link)
	suite.Equal("Ana", result[0].LatestEvidence.UploadedBy)
}

func (suite *ListTaskAssignmentsQueryHandlerTestSuite) TestHandle_FiltersByOperatorAndStatus() {
	suite.createTaskWithAssignment("Tarea de Ana", 7)
	suite.createTaskWithAssignment("Tarea de Luis", 8)

	query, err := queries.NewListTaskAssignmentsQuery(7, task.StatusPending)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Tarea de Ana", result[0].TaskName)

	inProcessQuery, err := queries.NewListTaskAssignmentsQuery(7, task.StatusInProcess)
	suite.Require().NoError(err)

	result, err = suite.handler.Handle(context.Background(), inProcessQuery)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *ListTaskAssignmentsQueryHandlerTestSuite) createTaskWithAssignment(
	name string, operatorID int,
) *task.Assignment {
	ctx := context.Background()

	newTask, err := task.NewTask(name, "aseo", "semanal", "Gerente")
	suite.Require().NoError(err)
	err = suite.taskRepo.AddTask(ctx, newTask)
	suite.Require().NoError(err)

	opID, err := kernel.NewOperatorID(operatorID)
	suite.Require().NoError(err)

	assignment, err := task.NewAssignment(
		0, opID,
		time.Now().UTC(), nil,
		"Pasillo limpio y señalizado",
	)
	suite.Require().NoError(err)
	err = assignment.BindTask(newTask.ID())
	suite.Require().NoError(err)
	err = suite.taskRepo.AddAssignment(ctx, assignment)
	suite.Require().NoError(err)

	return assignment
}

func (suite *ListTaskAssignmentsQueryHandlerTestSuite) addEvidence(
	assignment *task.Assignment, link string, uploadedAt time.Time,
) {
	evidence, err := task.NewEvidence(
		assignment.ID(), "Ana", link, "", "image/jpeg", 2048, uploadedAt,
	)
	suite.Require().NoError(err)

	err = suite.taskRepo.AddEvidence(context.Background(), evidence)
	suite.Require().NoError(err)
}

func TestListTaskAssignmentsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListTaskAssignmentsQueryHandlerTestSuite))
}
