package carrierrepo_test

import (
	"context"
	"testing"
	"time"

	"transport/internal/adapters/out/postgres/carrierrepo"
	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// CarrierRepositoryIntegrationTestSuite verifies carrier persistence
// behavior against a real PostgreSQL container, including the unique plate
// constraint and the conditional status flip.
type CarrierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *carrierrepo.GormCarrierRepository
	tracker    *MockAggregateTracker
}

func (suite *CarrierRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&carrierrepo.CarrierDTO{}))
}

func (suite *CarrierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carriers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = carrierrepo.NewGormCarrierRepository(suite.db, suite.tracker)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CarrierRepositoryIntegrationTestSuite) createTestCarrier(plate string) *carrier.Carrier {
	c, err := carrier.NewCarrier(kernel.NewUUID(), plate, "Mercedes Sprinter",
		carrier.TypeBox, time.Date(2020, 5, 15, 0, 0, 0, 0, time.UTC),
		carrier.StatusAvailable, 35.75)
	suite.Require().NoError(err)
	return c
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestAddAndGet_Roundtrip() {
	ctx := context.Background()
	testCarrier := suite.createTestCarrier("XYZ789")

	suite.Require().NoError(suite.repository.Add(ctx, testCarrier))

	loaded, err := suite.repository.Get(ctx, testCarrier.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(testCarrier))
	suite.Equal("XYZ789", loaded.LicensePlate())
	suite.Equal(carrier.TypeBox, loaded.Type())
	suite.Equal(carrier.StatusAvailable, loaded.Status())
	suite.InDelta(35.75, loaded.Rate(), 0)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestAdd_DuplicatePlate_Conflict() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCarrier("XYZ789")))

	err := suite.repository.Add(ctx, suite.createTestCarrier("XYZ789"))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestUpdate_DuplicatePlate_Conflict() {
	ctx := context.Background()

	first := suite.createTestCarrier("XYZ789")
	second := suite.createTestCarrier("ABC123")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	plate := "XYZ789"
	suite.Require().NoError(second.Apply(carrier.Patch{LicensePlate: &plate}))

	err := suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGet_UnknownID_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	testCarrier := suite.createTestCarrier("XYZ789")
	suite.Require().NoError(suite.repository.Add(ctx, testCarrier))

	suite.Require().NoError(suite.repository.Delete(ctx, testCarrier.ID()))

	_, err := suite.repository.Get(ctx, testCarrier.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().ErrorIs(
		suite.repository.Delete(ctx, testCarrier.ID()), errs.ErrObjectNotFound)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestCompareAndSetStatus_FirstWriterWins() {
	ctx := context.Background()
	testCarrier := suite.createTestCarrier("XYZ789")
	suite.Require().NoError(suite.repository.Add(ctx, testCarrier))

	err := suite.repository.CompareAndSetStatus(ctx, testCarrier.ID(),
		carrier.StatusAvailable, carrier.StatusBusy)
	suite.Require().NoError(err)

	// Second flip from AVAILABLE must lose: the stored status is BUSY now.
	err = suite.repository.CompareAndSetStatus(ctx, testCarrier.ID(),
		carrier.StatusAvailable, carrier.StatusBusy)
	suite.Require().ErrorIs(err, ports.ErrStatusConflict)

	loaded, err := suite.repository.Get(ctx, testCarrier.ID())
	suite.Require().NoError(err)
	suite.Equal(carrier.StatusBusy, loaded.Status())
}

func TestCarrierRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(CarrierRepositoryIntegrationTestSuite))
}
