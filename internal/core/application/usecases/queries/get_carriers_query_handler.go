package queries

import (
	"context"
	"strings"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCarriersQueryHandler retrieves carrier pages from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
// Rows come back ordered by status first (available before busy) and most
// recently updated within each status.
type GetCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCarriersQueryHandler creates a handler for carrier list queries.
func NewGetCarriersQueryHandler(db *gorm.DB) GetCarriersQueryHandler {
	return GetCarriersQueryHandler{db: db}
}

// Handle executes the carrier list query and returns the requested page
// together with the total number of matching rows.
func (h GetCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetCarriersQuery,
) (GetCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCarriersQueryResponse{}, err
	}

	where, args := carrierFilters(query)

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM carriers"+where, args...).
		Scan(&total).Error
	if err != nil {
		return GetCarriersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		FROM carriers`+where+`
		ORDER BY status ASC, updated_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.Offset())...).Rows()
	if err != nil {
		return GetCarriersQueryResponse{}, err
	}
	defer rows.Close()

	carriers := make([]CarrierReadModel, 0, query.Limit())

	for rows.Next() {
		var row CarrierReadModel
		var id uuid.UUID
		var carrierType, status int

		err = rows.Scan(
			&id,
			&row.LicensePlate,
			&row.Model,
			&carrierType,
			&row.RegistrationDate,
			&status,
			&row.Rate,
			&row.CreatedAt,
			&row.UpdatedAt,
		)
		if err != nil {
			return GetCarriersQueryResponse{}, err
		}

		carrierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCarriersQueryResponse{}, idErr
		}
		row.ID = carrierID
		row.Type = carrier.Type(carrierType)
		row.Status = carrier.Status(status)
		carriers = append(carriers, row)
	}

	if err = rows.Err(); err != nil {
		return GetCarriersQueryResponse{}, err
	}

	return GetCarriersQueryResponse{Data: carriers, Total: total}, nil
}

// carrierFilters builds the WHERE clause shared by the page and count
// queries. Returned as a leading-space string so it can be appended to both.
func carrierFilters(query GetCarriersQuery) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if query.Status() != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*query.Status()))
	}
	if query.Search() != nil {
		conditions = append(conditions, "(model ILIKE ? OR license_plate = ?)")
		args = append(args, "%"+*query.Search()+"%", *query.Search())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
