package queries

import (
	"context"
	"database/sql"
	"errors"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRouteQueryHandler retrieves a single route with its carrier summary.
// The carrier comes from a LEFT JOIN so an awaiting route still resolves,
// just with a nil carrier.
type GetRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteQueryHandler creates a handler for route detail queries.
func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound for an unknown ID.
func (h GetRouteQueryHandler) Handle(
	ctx context.Context,
	query GetRouteQuery,
) (GetRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRouteQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.start_lat,
			r.start_long,
			r.end_lat,
			r.end_long,
			r.distance_meters,
			r.departure_date,
			r.completion_date,
			r.departure_date_actual,
			r.completion_date_actual,
			r.required_carrier_type,
			r.price,
			r.carrier_fee,
			r.status,
			r.carrier_id,
			r.created_at,
			r.updated_at,
			c.id,
			c.license_plate,
			c.model,
			c.carrier_type,
			c.status,
			c.rate
		FROM routes r
		LEFT JOIN carriers c ON c.id = r.carrier_id
		WHERE r.id = ?
	`, query.RouteID().Bytes()).Row()

	var response GetRouteQueryResponse
	var carrierID uuid.NullUUID
	var plate, model sql.NullString
	var carrierType, carrierStatus sql.NullInt64
	var rate sql.NullFloat64

	readModel, err := scanRouteRow(func(dest ...any) error {
		dest = append(dest,
			&carrierID, &plate, &model, &carrierType, &carrierStatus, &rate)
		return row.Scan(dest...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return GetRouteQueryResponse{}, errs.NewObjectNotFoundError("route", query.RouteID().String())
	}
	if err != nil {
		return GetRouteQueryResponse{}, err
	}
	response.RouteReadModel = readModel

	if carrierID.Valid {
		boundID, idErr := kernel.UUIDFromBytes(carrierID.UUID[:])
		if idErr != nil {
			return GetRouteQueryResponse{}, idErr
		}
		response.Carrier = &CarrierSummary{
			ID:           boundID,
			LicensePlate: plate.String,
			Model:        model.String,
			Type:         carrier.Type(carrierType.Int64),
			Status:       carrier.Status(carrierStatus.Int64),
			Rate:         rate.Float64,
		}
	}

	return response, nil
}
