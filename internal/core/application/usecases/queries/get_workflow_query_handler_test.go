package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/workflowrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetWorkflowQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetWorkflowQueryHandler
}

func (suite *GetWorkflowQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&workflowrepo.WorkflowDTO{}, &workflowrepo.StageDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetWorkflowQueryHandler(db)
}

func (suite *GetWorkflowQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetWorkflowQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE workflow_stages, workflows").Error
	suite.Require().NoError(err)
}

func (suite *GetWorkflowQueryHandlerTestSuite) TestHandle_ExistingWorkflow_ReturnsOrderedStages() {
	definition := newTestDefinition(true)
	seedDefinition(suite.Require(), suite.db, definition)

	query, err := queries.NewGetWorkflowQuery(definition.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(result.ID.IsEqual(definition.ID()))
	suite.Equal("Standard Fulfillment", result.Name)
	suite.True(result.IsDefault)

	suite.Require().Len(result.Stages, 4)

	suite.Equal("placed", result.Stages[0].ID)
	suite.Equal(0, result.Stages[0].Index)
	suite.Equal("Order placed", result.Stages[0].Label)
	suite.Equal("Pending", result.Stages[0].Category)
	suite.False(result.Stages[0].IsTerminal)
	suite.True(result.Stages[0].CustomerVisible)
	suite.Empty(result.Stages[0].ExternalStatusTriggers)

	suite.Equal("packed", result.Stages[1].ID)
	suite.False(result.Stages[1].CustomerVisible)

	suite.Equal("shipped", result.Stages[2].ID)
	suite.Equal("Shipped", result.Stages[2].Category)
	suite.Equal([]string{"PICKED_UP", "IN_TRANSIT"}, result.Stages[2].ExternalStatusTriggers)

	suite.Equal("delivered", result.Stages[3].ID)
	suite.True(result.Stages[3].IsTerminal)
	suite.Equal([]string{"DELIVERED"}, result.Stages[3].ExternalStatusTriggers)
}

func (suite *GetWorkflowQueryHandlerTestSuite) TestHandle_MissingWorkflow_ReturnsNotFoundError() {
	query, err := queries.NewGetWorkflowQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetWorkflowQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetWorkflowQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetWorkflowQuery constructor")
}

func TestGetWorkflowQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetWorkflowQueryHandlerTestSuite))
}
