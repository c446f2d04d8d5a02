package ports

import (
	"context"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/route"
)

// RouteRepository is the persistence contract for route aggregates.
type RouteRepository interface {
	// Add persists a new route.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route, or errs.ErrObjectNotFound.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route by ID, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// Delete removes a route record, or errs.ErrObjectNotFound.
	Delete(ctx context.Context, id kernel.UUID) error

	// MarkDispatched writes the dispatched state (IN_PROGRESS, carrier
	// binding, fee) conditionally: the stored row must still be
	// AWAITING_DISPATCH with no carrier. Returns ErrStatusConflict when a
	// concurrent dispatch got there first.
	MarkDispatched(ctx context.Context, aggregate *route.Route) error

	// MarkCompleted writes the completed state (COMPLETED plus actual
	// dates) conditionally: the stored row must still be IN_PROGRESS.
	// Returns ErrStatusConflict when the route is no longer in progress.
	MarkCompleted(ctx context.Context, aggregate *route.Route) error
}
