package queries_test

import (
	"context"
	"testing"
	"time"

	"transport/internal/adapters/out/postgres/carrierrepo"
	"transport/internal/adapters/out/postgres/routerepo"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/route"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetRoutesQueryHandlerTestSuite verifies the route read queries against a
// real PostgreSQL container: filters with inclusive price bounds, ordering,
// the carrier LEFT JOIN on the detail lookup and the overdue cutoff.
type GetRoutesQueryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	listHandler    queries.GetRoutesQueryHandler
	getHandler     queries.GetRouteQueryHandler
	overdueHandler queries.GetOverdueRoutesQueryHandler
}

func (suite *GetRoutesQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&carrierrepo.CarrierDTO{}, &routerepo.RouteDTO{}))

	suite.listHandler = queries.NewGetRoutesQueryHandler(db)
	suite.getHandler = queries.NewGetRouteQueryHandler(db)
	suite.overdueHandler = queries.NewGetOverdueRoutesQueryHandler(db)
}

func (suite *GetRoutesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetRoutesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE routes").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carriers").Error)
}

func (suite *GetRoutesQueryHandlerTestSuite) seedRoute(
	status route.Status, price float64, departure time.Time, carrierID *kernel.UUID,
) *route.Route {
	start, err := kernel.NewGeoPoint(52.2297, 21.0122)
	suite.Require().NoError(err)
	end, err := kernel.NewGeoPoint(52.5200, 13.4050)
	suite.Require().NoError(err)

	var fee *float64
	if carrierID != nil {
		f := 20539.875
		fee = &f
	}

	aggregate, err := route.RestoreRoute(
		kernel.NewUUID(),
		start,
		end,
		574500,
		departure,
		departure.Add(48*time.Hour),
		nil,
		nil,
		carrier.TypeBox,
		price,
		fee,
		status,
		carrierID,
	)
	suite.Require().NoError(err)

	repo := routerepo.NewGormRouteRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetRoutesQueryHandlerTestSuite) seedCarrier(plate string) *carrier.Carrier {
	aggregate, err := carrier.NewCarrier(
		kernel.NewUUID(),
		plate,
		"Mercedes Sprinter",
		carrier.TypeBox,
		time.Date(2020, 5, 15, 0, 0, 0, 0, time.UTC),
		carrier.StatusBusy,
		35.75,
	)
	suite.Require().NoError(err)

	repo := carrierrepo.NewGormCarrierRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetRoutesQueryHandlerTestSuite) setCreatedAt(id kernel.UUID, ts time.Time) {
	err := suite.db.Exec(
		"UPDATE routes SET created_at = ? WHERE id = ?", ts, id.Bytes(),
	).Error
	suite.Require().NoError(err)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewGetRoutesQuery(nil, nil, nil, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Data)
	suite.Zero(result.Total)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_OrdersByStatusThenCreation() {
	departure := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	carrierID := suite.seedCarrier("AAA111").ID()

	completed := suite.seedRoute(route.StatusCompleted, 900, departure, &carrierID)
	oldAwaiting := suite.seedRoute(route.StatusAwaitingDispatch, 1000, departure, nil)
	newAwaiting := suite.seedRoute(route.StatusAwaitingDispatch, 1100, departure, nil)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	// The completed route is the newest row; status still wins the ordering.
	suite.setCreatedAt(completed.ID(), base.Add(2*time.Hour))
	suite.setCreatedAt(oldAwaiting.ID(), base)
	suite.setCreatedAt(newAwaiting.ID(), base.Add(time.Hour))

	query, err := queries.NewGetRoutesQuery(nil, nil, nil, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Data, 3)
	suite.Equal(int64(3), result.Total)
	suite.True(newAwaiting.ID().IsEqual(result.Data[0].ID))
	suite.True(oldAwaiting.ID().IsEqual(result.Data[1].ID))
	suite.True(completed.ID().IsEqual(result.Data[2].ID))
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_PriceBoundsAreInclusive() {
	departure := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	cheap := suite.seedRoute(route.StatusAwaitingDispatch, 100, departure, nil)
	mid := suite.seedRoute(route.StatusAwaitingDispatch, 250, departure, nil)
	suite.seedRoute(route.StatusAwaitingDispatch, 400, departure, nil)

	minPrice, maxPrice := 100.0, 250.0
	query, err := queries.NewGetRoutesQuery(nil, &minPrice, &maxPrice, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Data, 2)
	suite.Equal(int64(2), result.Total)

	got := map[string]bool{}
	for _, row := range result.Data {
		got[row.ID.String()] = true
	}
	suite.True(got[cheap.ID().String()])
	suite.True(got[mid.ID().String()])
}

func (suite *GetRoutesQueryHandlerTestSuite) TestHandle_StatusFilter() {
	departure := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	carrierID := suite.seedCarrier("AAA111").ID()
	suite.seedRoute(route.StatusAwaitingDispatch, 1000, departure, nil)
	inProgress := suite.seedRoute(route.StatusInProgress, 1200, departure, &carrierID)

	status := route.StatusInProgress
	query, err := queries.NewGetRoutesQuery(&status, nil, nil, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Data, 1)
	suite.Equal(int64(1), result.Total)
	suite.True(inProgress.ID().IsEqual(result.Data[0].ID))
	suite.Equal(route.StatusInProgress, result.Data[0].Status)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestGetRoute_IncludesBoundCarrier() {
	departure := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	bound := suite.seedCarrier("AAA111")
	carrierID := bound.ID()
	aggregate := suite.seedRoute(route.StatusInProgress, 1200, departure, &carrierID)

	query, err := queries.NewGetRouteQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(aggregate.ID().IsEqual(result.ID))
	suite.Equal(route.StatusInProgress, result.Status)
	suite.Require().NotNil(result.CarrierFee)
	suite.InDelta(20539.875, *result.CarrierFee, 1e-9)

	suite.Require().NotNil(result.Carrier)
	suite.True(bound.ID().IsEqual(result.Carrier.ID))
	suite.Equal("AAA111", result.Carrier.LicensePlate)
	suite.Equal("Mercedes Sprinter", result.Carrier.Model)
	suite.Equal(carrier.TypeBox, result.Carrier.Type)
	suite.Equal(carrier.StatusBusy, result.Carrier.Status)
	suite.InDelta(35.75, result.Carrier.Rate, 1e-9)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestGetRoute_AwaitingRoute_NilCarrier() {
	departure := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	aggregate := suite.seedRoute(route.StatusAwaitingDispatch, 1200, departure, nil)

	query, err := queries.NewGetRouteQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(aggregate.ID().IsEqual(result.ID))
	suite.Nil(result.Carrier)
	suite.Nil(result.CarrierID)
	suite.Nil(result.CarrierFee)
	suite.Equal("52.2297,21.0122", result.StartPoint.String())
	suite.Equal("52.52,13.405", result.EndPoint.String())
}

func (suite *GetRoutesQueryHandlerTestSuite) TestGetRoute_Unknown_NotFound() {
	query, err := queries.NewGetRouteQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetRoutesQueryHandlerTestSuite) TestGetOverdueRoutes_AwaitingPastDepartureOnly() {
	asOf := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	carrierID := suite.seedCarrier("AAA111").ID()

	older := suite.seedRoute(route.StatusAwaitingDispatch, 1000, asOf.Add(-72*time.Hour), nil)
	newer := suite.seedRoute(route.StatusAwaitingDispatch, 1100, asOf.Add(-24*time.Hour), nil)
	// Future departure and already-dispatched routes are not overdue.
	suite.seedRoute(route.StatusAwaitingDispatch, 1200, asOf.Add(24*time.Hour), nil)
	suite.seedRoute(route.StatusInProgress, 1300, asOf.Add(-48*time.Hour), &carrierID)

	query, err := queries.NewGetOverdueRoutesQuery(asOf)
	suite.Require().NoError(err)

	result, err := suite.overdueHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(older.ID().IsEqual(result[0].ID))
	suite.True(newer.ID().IsEqual(result[1].ID))
}

func TestGetRoutesQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(GetRoutesQueryHandlerTestSuite))
}
