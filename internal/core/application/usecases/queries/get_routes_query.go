package queries

import (
	"errors"
	"time"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/route"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var (
	ErrGetRoutesQueryIsNotConstructed = errors.New(
		"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
	)
	// ErrPriceRangeInverted rejects a filter whose lower bound exceeds its
	// upper bound: such a range can never match and is a client mistake.
	ErrPriceRangeInverted = errs.NewValueIsInvalidError("minPrice can not be greater than maxPrice")
)

// GetRoutesQuery retrieves a page of the route list. Optional filters narrow
// by lifecycle status and by an inclusive EUR price range.
type GetRoutesQuery struct {
	status   *route.Status
	minPrice *float64
	maxPrice *float64
	page     int
	limit    int

	guard guard.ConstructorGuard
}

// NewGetRoutesQuery creates a query for a page of routes. Both price bounds
// are inclusive; supplying minPrice greater than maxPrice is rejected.
func NewGetRoutesQuery(
	status *route.Status, minPrice, maxPrice *float64, page, limit int,
) (GetRoutesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetRoutesQuery{}, err
		}
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return GetRoutesQuery{}, ErrPriceRangeInverted
	}
	if page < 1 {
		return GetRoutesQuery{}, ErrPageIsInvalid
	}
	if limit < 1 {
		return GetRoutesQuery{}, ErrLimitIsInvalid
	}

	return GetRoutesQuery{
		status:   status,
		minPrice: minPrice,
		maxPrice: maxPrice,
		page:     page,
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}

// Status returns the lifecycle filter, or nil for all statuses.
func (q GetRoutesQuery) Status() *route.Status {
	return q.status
}

// MinPrice returns the inclusive lower price bound, or nil.
func (q GetRoutesQuery) MinPrice() *float64 {
	return q.minPrice
}

// MaxPrice returns the inclusive upper price bound, or nil.
func (q GetRoutesQuery) MaxPrice() *float64 {
	return q.maxPrice
}

// Page returns the 1-based page number.
func (q GetRoutesQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetRoutesQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip for the requested page.
func (q GetRoutesQuery) Offset() int {
	return (q.page - 1) * q.limit
}

// RouteReadModel represents one route row in the read model. CarrierID and
// CarrierFee are nil while the route awaits dispatch; the actual timestamps
// are nil until recorded.
type RouteReadModel struct {
	ID                   kernel.UUID
	StartPoint           kernel.GeoPoint
	EndPoint             kernel.GeoPoint
	DistanceMeters       float64
	DepartureDate        time.Time
	CompletionDate       time.Time
	DepartureDateActual  *time.Time
	CompletionDateActual *time.Time
	RequiredCarrierType  carrier.Type
	Price                float64
	CarrierFee           *float64
	Status               route.Status
	CarrierID            *kernel.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// GetRoutesQueryResponse is a page of routes plus the total row count the
// filters match.
type GetRoutesQueryResponse struct {
	Data  []RouteReadModel
	Total int64
}
