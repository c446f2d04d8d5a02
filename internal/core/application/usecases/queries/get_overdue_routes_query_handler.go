package queries

import (
	"context"

	"transport/internal/core/domain/model/route"

	"gorm.io/gorm"
)

// GetOverdueRoutesQueryHandler retrieves awaiting routes whose planned
// departure lies before the query's cutoff.
type GetOverdueRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueRoutesQueryHandler creates a handler for overdue-route queries.
func NewGetOverdueRoutesQueryHandler(db *gorm.DB) GetOverdueRoutesQueryHandler {
	return GetOverdueRoutesQueryHandler{db: db}
}

// Handle executes the query. Results come back oldest departure first so the
// report leads with the most overdue route.
func (h GetOverdueRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueRoutesQuery,
) ([]RouteReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+routeColumns+`
		FROM routes
		WHERE status = ? AND departure_date < ?
		ORDER BY departure_date ASC
	`, int(route.StatusAwaitingDispatch), query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]RouteReadModel, 0)

	for rows.Next() {
		row, scanErr := scanRouteRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		routes = append(routes, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
