package queries

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrGetCarrierQueryIsNotConstructed = errors.New(
	"GetCarrierQuery must be created via NewGetCarrierQuery constructor",
)

// GetCarrierQuery retrieves a single carrier by ID.
type GetCarrierQuery struct {
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierQuery creates a query for one carrier.
func NewGetCarrierQuery(carrierID kernel.UUID) (GetCarrierQuery, error) {
	if err := carrierID.Validate(); err != nil {
		return GetCarrierQuery{}, err
	}

	return GetCarrierQuery{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierQueryIsNotConstructed)
}

// CarrierID returns the requested carrier's identifier.
func (q GetCarrierQuery) CarrierID() kernel.UUID {
	return q.carrierID
}
