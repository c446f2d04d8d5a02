// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregates and read optimized models straight from SQL.
package queries

import (
	"errors"
	"time"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var (
	ErrGetCarriersQueryIsNotConstructed = errors.New(
		"GetCarriersQuery must be created via NewGetCarriersQuery constructor",
	)
	ErrPageIsInvalid  = errs.NewValueIsInvalidError("page must be greater than 0")
	ErrLimitIsInvalid = errs.NewValueIsInvalidError("limit must be greater than 0")
)

// GetCarriersQuery retrieves a page of the carrier list. The optional status
// filter narrows by availability; the optional search term matches the model
// (substring, case-insensitive) or the license plate (exact).
type GetCarriersQuery struct {
	status *carrier.Status
	search *string
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetCarriersQuery creates a query for a page of carriers.
// Page numbering starts at 1.
func NewGetCarriersQuery(
	status *carrier.Status, search *string, page, limit int,
) (GetCarriersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetCarriersQuery{}, err
		}
	}
	if page < 1 {
		return GetCarriersQuery{}, ErrPageIsInvalid
	}
	if limit < 1 {
		return GetCarriersQuery{}, ErrLimitIsInvalid
	}

	return GetCarriersQuery{
		status: status,
		search: search,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarriersQueryIsNotConstructed)
}

// Status returns the availability filter, or nil for all statuses.
func (q GetCarriersQuery) Status() *carrier.Status {
	return q.status
}

// Search returns the model/plate search term, or nil.
func (q GetCarriersQuery) Search() *string {
	return q.search
}

// Page returns the 1-based page number.
func (q GetCarriersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetCarriersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip for the requested page.
func (q GetCarriersQuery) Offset() int {
	return (q.page - 1) * q.limit
}

// CarrierReadModel represents one carrier row in the read model.
type CarrierReadModel struct {
	ID               kernel.UUID
	LicensePlate     string
	Model            string
	Type             carrier.Type
	RegistrationDate time.Time
	Status           carrier.Status
	Rate             float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// GetCarriersQueryResponse is a page of carriers plus the total row count
// the filters match, which is what clients page against.
type GetCarriersQueryResponse struct {
	Data  []CarrierReadModel
	Total int64
}
