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

// GetCarrierQueryHandler retrieves a single carrier row from the database.
type GetCarrierQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierQueryHandler creates a handler for single-carrier queries.
func NewGetCarrierQueryHandler(db *gorm.DB) GetCarrierQueryHandler {
	return GetCarrierQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound for an unknown ID.
func (h GetCarrierQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierQuery,
) (CarrierReadModel, error) {
	if err := query.Validate(); err != nil {
		return CarrierReadModel{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			license_plate,
			model,
			carrier_type,
			registration_date,
			status,
			rate,
			created_at,
			updated_at
		FROM carriers
		WHERE id = ?
	`, query.CarrierID().Bytes()).Row()

	var result CarrierReadModel
	var id uuid.UUID
	var carrierType, status int

	err := row.Scan(
		&id,
		&result.LicensePlate,
		&result.Model,
		&carrierType,
		&result.RegistrationDate,
		&status,
		&result.Rate,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return CarrierReadModel{}, errs.NewObjectNotFoundError("carrier", query.CarrierID().String())
	}
	if err != nil {
		return CarrierReadModel{}, err
	}

	carrierID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CarrierReadModel{}, err
	}
	result.ID = carrierID
	result.Type = carrier.Type(carrierType)
	result.Status = carrier.Status(status)

	return result, nil
}
