package queries

import (
	"context"
	"database/sql"
	"strings"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/route"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRoutesQueryHandler retrieves route pages from the database.
// Rows come back ordered by status first (awaiting, in progress, completed)
// and most recently created within each status.
type GetRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesQueryHandler creates a handler for route list queries.
func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db}
}

// Handle executes the route list query and returns the requested page
// together with the total number of matching rows.
func (h GetRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetRoutesQuery,
) (GetRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRoutesQueryResponse{}, err
	}

	where, args := routeFilters(query)

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM routes"+where, args...).
		Scan(&total).Error
	if err != nil {
		return GetRoutesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+routeColumns+`
		FROM routes`+where+`
		ORDER BY status ASC, created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.Offset())...).Rows()
	if err != nil {
		return GetRoutesQueryResponse{}, err
	}
	defer rows.Close()

	routes := make([]RouteReadModel, 0, query.Limit())

	for rows.Next() {
		row, scanErr := scanRouteRow(rows.Scan)
		if scanErr != nil {
			return GetRoutesQueryResponse{}, scanErr
		}
		routes = append(routes, row)
	}

	if err = rows.Err(); err != nil {
		return GetRoutesQueryResponse{}, err
	}

	return GetRoutesQueryResponse{Data: routes, Total: total}, nil
}

// routeColumns is the shared projection for route read models; scanRouteRow
// must scan in exactly this order.
const routeColumns = `
			id,
			start_lat,
			start_long,
			end_lat,
			end_long,
			distance_meters,
			departure_date,
			completion_date,
			departure_date_actual,
			completion_date_actual,
			required_carrier_type,
			price,
			carrier_fee,
			status,
			carrier_id,
			created_at,
			updated_at`

// scanRouteRow maps one projected route row into the read model.
func scanRouteRow(scan func(dest ...any) error) (RouteReadModel, error) {
	var row RouteReadModel
	var id uuid.UUID
	var startLat, startLong, endLat, endLong float64
	var departureActual, completionActual sql.NullTime
	var carrierType, status int
	var carrierFee sql.NullFloat64
	var carrierID uuid.NullUUID

	err := scan(
		&id,
		&startLat,
		&startLong,
		&endLat,
		&endLong,
		&row.DistanceMeters,
		&row.DepartureDate,
		&row.CompletionDate,
		&departureActual,
		&completionActual,
		&carrierType,
		&row.Price,
		&carrierFee,
		&status,
		&carrierID,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return RouteReadModel{}, err
	}

	routeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RouteReadModel{}, err
	}
	row.ID = routeID

	start, err := kernel.NewGeoPoint(startLat, startLong)
	if err != nil {
		return RouteReadModel{}, err
	}
	end, err := kernel.NewGeoPoint(endLat, endLong)
	if err != nil {
		return RouteReadModel{}, err
	}
	row.StartPoint = start
	row.EndPoint = end

	if departureActual.Valid {
		actual := departureActual.Time
		row.DepartureDateActual = &actual
	}
	if completionActual.Valid {
		actual := completionActual.Time
		row.CompletionDateActual = &actual
	}
	if carrierFee.Valid {
		fee := carrierFee.Float64
		row.CarrierFee = &fee
	}
	if carrierID.Valid {
		boundID, idErr := kernel.UUIDFromBytes(carrierID.UUID[:])
		if idErr != nil {
			return RouteReadModel{}, idErr
		}
		row.CarrierID = &boundID
	}

	row.RequiredCarrierType = carrier.Type(carrierType)
	row.Status = route.Status(status)
	return row, nil
}

// routeFilters builds the WHERE clause shared by the page and count queries.
func routeFilters(query GetRoutesQuery) (string, []any) {
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if query.Status() != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*query.Status()))
	}
	if query.MinPrice() != nil {
		conditions = append(conditions, "price >= ?")
		args = append(args, *query.MinPrice())
	}
	if query.MaxPrice() != nil {
		conditions = append(conditions, "price <= ?")
		args = append(args, *query.MaxPrice())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
