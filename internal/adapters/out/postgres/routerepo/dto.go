// Package routerepo provides data transfer objects and mapping functions
// for route persistence. Implements the repository pattern for the route
// aggregate, including the conditional writes that guard the dispatch and
// completion transitions against concurrent requests.
package routerepo

import (
	"time"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route
// aggregates. Nullable columns mirror the aggregate's lifecycle: carrier
// binding and fee appear at dispatch, actual dates as they are recorded.
type RouteDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartLat             float64
	StartLong            float64
	EndLat               float64
	EndLong              float64
	DistanceMeters       float64
	DepartureDate        time.Time
	CompletionDate       time.Time
	DepartureDateActual  *time.Time
	CompletionDateActual *time.Time
	RequiredCarrierType  int
	Price                float64
	CarrierFee           *float64
	Status               int        `gorm:"index"`
	CarrierID            *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt            time.Time  `gorm:"autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route domain aggregate to its database representation.
func fromDomain(aggregate *route.Route) RouteDTO {
	var carrierID *uuid.UUID
	if id := aggregate.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	return RouteDTO{
		ID:                   aggregate.ID().Bytes(),
		StartLat:             aggregate.StartPoint().Latitude(),
		StartLong:            aggregate.StartPoint().Longitude(),
		EndLat:               aggregate.EndPoint().Latitude(),
		EndLong:              aggregate.EndPoint().Longitude(),
		DistanceMeters:       aggregate.DistanceMeters(),
		DepartureDate:        aggregate.DepartureDate(),
		CompletionDate:       aggregate.CompletionDate(),
		DepartureDateActual:  aggregate.DepartureDateActual(),
		CompletionDateActual: aggregate.CompletionDateActual(),
		RequiredCarrierType:  int(aggregate.RequiredCarrierType()),
		Price:                aggregate.Price(),
		CarrierFee:           aggregate.CarrierFee(),
		Status:               int(aggregate.Status()),
		CarrierID:            carrierID,
	}
}

// toDomain converts a database DTO to a route domain aggregate using
// RestoreRoute, which re-validates the status/carrier pairing.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	start, err := kernel.NewGeoPoint(dto.StartLat, dto.StartLong)
	if err != nil {
		return nil, err
	}
	end, err := kernel.NewGeoPoint(dto.EndLat, dto.EndLong)
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrierID = &cID
	}

	return route.RestoreRoute(
		id,
		start,
		end,
		dto.DistanceMeters,
		dto.DepartureDate,
		dto.CompletionDate,
		dto.DepartureDateActual,
		dto.CompletionDateActual,
		carrier.Type(dto.RequiredCarrierType),
		dto.Price,
		dto.CarrierFee,
		route.Status(dto.Status),
		carrierID,
	)
}
