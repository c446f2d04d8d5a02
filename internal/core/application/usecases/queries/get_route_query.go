package queries

import (
	"errors"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrGetRouteQueryIsNotConstructed = errors.New(
	"GetRouteQuery must be created via NewGetRouteQuery constructor",
)

// GetRouteQuery retrieves a single route by ID, including a summary of the
// carrier serving it when one is bound.
type GetRouteQuery struct {
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteQuery creates a query for one route.
func NewGetRouteQuery(routeID kernel.UUID) (GetRouteQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteQuery{}, err
	}

	return GetRouteQuery{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

// RouteID returns the requested route's identifier.
func (q GetRouteQuery) RouteID() kernel.UUID {
	return q.routeID
}

// CarrierSummary is the carrier projection embedded in a route detail.
type CarrierSummary struct {
	ID           kernel.UUID
	LicensePlate string
	Model        string
	Type         carrier.Type
	Status       carrier.Status
	Rate         float64
}

// GetRouteQueryResponse is the route detail read model. Carrier is nil while
// the route awaits dispatch.
type GetRouteQueryResponse struct {
	RouteReadModel
	Carrier *CarrierSummary
}
