// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence. Implements the repository pattern for the carrier
// aggregate, converting between domain entities and database rows.
package carrierrepo

import (
	"time"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carrier
// aggregates. The license plate carries a unique index: plate uniqueness is
// a storage-level invariant, surfaced to the domain as a conflict error.
type CarrierDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	LicensePlate     string    `gorm:"uniqueIndex"`
	Model            string
	CarrierType      int
	RegistrationDate time.Time
	Status           int `gorm:"index"`
	Rate             float64
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for carrier entities.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier domain aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:               aggregate.ID().Bytes(),
		LicensePlate:     aggregate.LicensePlate(),
		Model:            aggregate.Model(),
		CarrierType:      int(aggregate.Type()),
		RegistrationDate: aggregate.RegistrationDate(),
		Status:           int(aggregate.Status()),
		Rate:             aggregate.Rate(),
	}
}

// toDomain converts a database DTO to a carrier domain aggregate using
// RestoreCarrier, which re-runs the field validation.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(
		id,
		dto.LicensePlate,
		dto.Model,
		carrier.Type(dto.CarrierType),
		dto.RegistrationDate,
		carrier.Status(dto.Status),
		dto.Rate,
	)
}
