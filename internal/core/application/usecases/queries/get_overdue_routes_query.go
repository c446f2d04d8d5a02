package queries

import (
	"errors"
	"time"

	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var (
	ErrGetOverdueRoutesQueryIsNotConstructed = errors.New(
		"GetOverdueRoutesQuery must be created via NewGetOverdueRoutesQuery constructor",
	)
	ErrAsOfIsRequired = errs.NewValueIsRequiredError("asOf")
)

// GetOverdueRoutesQuery retrieves routes still awaiting dispatch whose
// planned departure has already passed. Used by the overdue-dispatch
// reporter job.
type GetOverdueRoutesQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueRoutesQuery creates a query for routes overdue at the given
// point in time.
func NewGetOverdueRoutesQuery(asOf time.Time) (GetOverdueRoutesQuery, error) {
	if asOf.IsZero() {
		return GetOverdueRoutesQuery{}, ErrAsOfIsRequired
	}

	return GetOverdueRoutesQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueRoutesQueryIsNotConstructed)
}

// AsOf returns the cutoff instant.
func (q GetOverdueRoutesQuery) AsOf() time.Time {
	return q.asOf
}
