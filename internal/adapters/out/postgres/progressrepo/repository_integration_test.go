package progressrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/progressrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/progress"
	"fulfillment/internal/core/domain/model/workflow"
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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ProgressRepositoryIntegrationTestSuite provides integration tests for
// GormProgressRepository using PostgreSQL containers to verify the
// conditional save and the append-only history.
type ProgressRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *progressrepo.GormProgressRepository
	tracker    *MockAggregateTracker
	definition *workflow.Definition
}

func (suite *ProgressRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&progressrepo.ProgressDTO{},
		&progressrepo.TransitionDTO{},
	))

	suite.definition = suite.createTestDefinition()
}

func (suite *ProgressRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE progress_transitions, progress_records").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = progressrepo.NewGormProgressRepository(suite.db, suite.tracker)
}

func (suite *ProgressRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProgressRepositoryIntegrationTestSuite) TestCreateIfAbsent_NewRecord_PersistsHeadAndHistory() {
	ctx := context.Background()

	record := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", record.OrderID(), record).Once()

	saved, err := suite.repository.CreateIfAbsent(ctx, record)
	suite.Require().NoError(err)
	suite.Same(record, saved)
	suite.Empty(saved.PendingTransitions())

	suite.assertRecordCount(1)
	suite.assertTransitionCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProgressRepositoryIntegrationTestSuite) TestCreateIfAbsent_ExistingRecord_ReturnsStored() {
	ctx := context.Background()

	first := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", first.OrderID(), first).Once()
	_, err := suite.repository.CreateIfAbsent(ctx, first)
	suite.Require().NoError(err)

	// A repeat initialization for the same order builds a fresh aggregate.
	repeat, err := progress.NewProgress(first.OrderID(), suite.definition, time.Now().UTC())
	suite.Require().NoError(err)

	stored, err := suite.repository.CreateIfAbsent(ctx, repeat)
	suite.Require().NoError(err)
	suite.NotSame(repeat, stored)
	suite.True(stored.OrderID().IsEqual(first.OrderID()))
	suite.Equal(first.CurrentStageID(), stored.CurrentStageID())
	suite.Equal(1, stored.Version())

	suite.assertRecordCount(1)
	suite.assertTransitionCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProgressRepositoryIntegrationTestSuite) TestGet_ExistingRecord_ReturnsHistoryInOrder() {
	ctx := context.Background()
	actorID := kernel.NewUUID()

	record := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", record.OrderID(), record).Times(3)

	_, err := suite.repository.CreateIfAbsent(ctx, record)
	suite.Require().NoError(err)

	suite.Require().NoError(record.Advance(suite.definition, actorID, "packed by warehouse", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Save(ctx, record, 1))

	suite.Require().NoError(record.Advance(suite.definition, actorID, "", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Save(ctx, record, 2))

	retrieved, err := suite.repository.Get(ctx, record.OrderID())
	suite.Require().NoError(err)

	suite.Equal("shipped", retrieved.CurrentStageID())
	suite.Equal(3, retrieved.Version())
	suite.True(retrieved.AutoSyncEnabled())
	suite.Empty(retrieved.PendingTransitions())

	history := retrieved.History()
	suite.Require().Len(history, 3)
	suite.Nil(history[0].FromStageID())
	suite.Equal("placed", history[0].ToStageID())
	suite.Equal(progress.SystemInit, history[0].Source())
	suite.Equal("packed", history[1].ToStageID())
	suite.Equal(progress.Manual, history[1].Source())
	suite.Equal("packed by warehouse", history[1].Notes())
	suite.Require().NotNil(history[1].ActorID())
	suite.True(history[1].ActorID().IsEqual(actorID))
	suite.Equal("shipped", history[2].ToStageID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProgressRepositoryIntegrationTestSuite) TestGet_NonExistentRecord_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProgressRepositoryIntegrationTestSuite) TestSave_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()
	actorID := kernel.NewUUID()

	record := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", record.OrderID(), record).Once()
	_, err := suite.repository.CreateIfAbsent(ctx, record)
	suite.Require().NoError(err)

	// Two writers load the same stored version.
	winner, err := suite.repository.Get(ctx, record.OrderID())
	suite.Require().NoError(err)
	loser, err := suite.repository.Get(ctx, record.OrderID())
	suite.Require().NoError(err)

	suite.Require().NoError(winner.Advance(suite.definition, actorID, "", time.Now().UTC()))
	suite.tracker.On("TrackAggregate", winner.OrderID(), winner).Once()
	suite.Require().NoError(suite.repository.Save(ctx, winner, 1))

	suite.Require().NoError(loser.Advance(suite.definition, actorID, "", time.Now().UTC()))
	err = suite.repository.Save(ctx, loser, 1)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)

	// Only the winner's write is visible.
	stored, err := suite.repository.Get(ctx, record.OrderID())
	suite.Require().NoError(err)
	suite.Equal(2, stored.Version())
	suite.Len(stored.History(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProgressRepositoryIntegrationTestSuite) TestSave_AppendsOnlyPendingRows() {
	ctx := context.Background()
	actorID := kernel.NewUUID()

	record := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", record.OrderID(), record).Times(3)
	_, err := suite.repository.CreateIfAbsent(ctx, record)
	suite.Require().NoError(err)

	suite.Require().NoError(record.Advance(suite.definition, actorID, "", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Save(ctx, record, 1))
	suite.assertTransitionCount(2)

	// A save with nothing pending touches only the head row.
	record.SetAutoSync(false)
	suite.Require().NoError(suite.repository.Save(ctx, record, 2))
	suite.assertTransitionCount(2)

	stored, err := suite.repository.Get(ctx, record.OrderID())
	suite.Require().NoError(err)
	suite.Equal(3, stored.Version())
	suite.False(stored.AutoSyncEnabled())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestDefinition builds the in-memory workflow the records run
// against. The definition itself is never persisted here, the progress
// tables reference it by id only.
func (suite *ProgressRepositoryIntegrationTestSuite) createTestDefinition() *workflow.Definition {
	placed, err := workflow.NewStage(
		"placed", 0, "Order placed", workflow.CategoryPending, false, true, nil)
	suite.Require().NoError(err)

	packed, err := workflow.NewStage(
		"packed", 1, "Packed", workflow.CategoryProcessing, false, false, nil)
	suite.Require().NoError(err)

	shipped, err := workflow.NewStage(
		"shipped", 2, "Shipped", workflow.CategoryShipped, false, true,
		[]workflow.ExternalStatusCode{workflow.StatusInTransit})
	suite.Require().NoError(err)

	delivered, err := workflow.NewStage(
		"delivered", 3, "Delivered", workflow.CategoryDelivered, true, true,
		[]workflow.ExternalStatusCode{workflow.StatusDelivered})
	suite.Require().NoError(err)

	definition, err := workflow.NewDefinition(
		kernel.NewUUID(),
		"Standard Fulfillment",
		[]workflow.Stage{placed, packed, shipped, delivered},
		true,
	)
	suite.Require().NoError(err)
	return definition
}

func (suite *ProgressRepositoryIntegrationTestSuite) createTestRecord() *progress.Progress {
	record, err := progress.NewProgress(kernel.NewUUID(), suite.definition, time.Now().UTC())
	suite.Require().NoError(err)
	return record
}

func (suite *ProgressRepositoryIntegrationTestSuite) assertRecordCount(expected int) {
	var count int64
	err := suite.db.Model(&progressrepo.ProgressDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func (suite *ProgressRepositoryIntegrationTestSuite) assertTransitionCount(expected int) {
	var count int64
	err := suite.db.Model(&progressrepo.TransitionDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestProgressRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProgressRepositoryIntegrationTestSuite))
}
