package http

import (
	"context"
	"sync"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/route"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"
)

// In-memory fakes backing the endpoint tests. They honour the repository
// contracts (conflict on duplicate plates, not-found sentinels, conditional
// writes) without a database.

type memCarrierRepo struct {
	mu    sync.Mutex
	items map[string]*carrier.Carrier
}

func newMemCarrierRepo() *memCarrierRepo {
	return &memCarrierRepo{items: map[string]*carrier.Carrier{}}
}

func (r *memCarrierRepo) Add(_ context.Context, aggregate *carrier.Carrier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.LicensePlate() == aggregate.LicensePlate() {
			return errs.NewConflictError("licensePlate", aggregate.LicensePlate())
		}
	}
	r.items[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memCarrierRepo) Update(_ context.Context, aggregate *carrier.Carrier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[aggregate.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("carrier", aggregate.ID().String())
	}
	r.items[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memCarrierRepo) Get(_ context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	aggregate, ok := r.items[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("carrier", id.String())
	}
	return aggregate, nil
}

func (r *memCarrierRepo) Delete(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id.String()]; !ok {
		return errs.NewObjectNotFoundError("carrier", id.String())
	}
	delete(r.items, id.String())
	return nil
}

func (r *memCarrierRepo) CompareAndSetStatus(
	_ context.Context, id kernel.UUID, expected, next carrier.Status,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	aggregate, ok := r.items[id.String()]
	if !ok {
		return ports.ErrStatusConflict
	}

	// Handlers may have flipped the shared aggregate already; accept the
	// target status as satisfied, mutate when still at the expected one.
	switch aggregate.Status() {
	case next:
		return nil
	case expected:
		if next == carrier.StatusBusy {
			return aggregate.MarkBusy()
		}
		return aggregate.Release()
	default:
		return ports.ErrStatusConflict
	}
}

type memRouteRepo struct {
	mu    sync.Mutex
	items map[string]*route.Route
}

func newMemRouteRepo() *memRouteRepo {
	return &memRouteRepo{items: map[string]*route.Route{}}
}

func (r *memRouteRepo) Add(_ context.Context, aggregate *route.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memRouteRepo) Update(_ context.Context, aggregate *route.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[aggregate.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("route", aggregate.ID().String())
	}
	r.items[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memRouteRepo) Get(_ context.Context, id kernel.UUID) (*route.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	aggregate, ok := r.items[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("route", id.String())
	}
	return aggregate, nil
}

func (r *memRouteRepo) Delete(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id.String()]; !ok {
		return errs.NewObjectNotFoundError("route", id.String())
	}
	delete(r.items, id.String())
	return nil
}

func (r *memRouteRepo) MarkDispatched(_ context.Context, aggregate *route.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[aggregate.ID().String()]
	if !ok || stored.Status() == route.StatusCompleted {
		return ports.ErrStatusConflict
	}
	r.items[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memRouteRepo) MarkCompleted(_ context.Context, aggregate *route.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[aggregate.ID().String()]; !ok {
		return ports.ErrStatusConflict
	}
	r.items[aggregate.ID().String()] = aggregate
	return nil
}

// memUoW satisfies every unit-of-work shape the command handlers accept.
type memUoW struct {
	carriers *memCarrierRepo
	routes   *memRouteRepo
}

func (u *memUoW) Begin(context.Context) error    { return nil }
func (u *memUoW) Commit(context.Context) error   { return nil }
func (u *memUoW) Rollback(context.Context) error { return nil }

func (u *memUoW) CarrierRepository() ports.CarrierRepository { return u.carriers }
func (u *memUoW) RouteRepository() ports.RouteRepository     { return u.routes }

type carrierUoWFactory struct{ uow *memUoW }

func (f carrierUoWFactory) Create() commands.CarrierUoW { return f.uow }

type routeUoWFactory struct{ uow *memUoW }

func (f routeUoWFactory) Create() commands.RouteUoW { return f.uow }

type uowFactory struct{ uow *memUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

// identityConverter treats every amount as already in EUR.
type identityConverter struct{}

func (identityConverter) ConvertToEUR(
	_ context.Context, amount float64, _ kernel.CurrencyCode,
) (float64, error) {
	return amount, nil
}

// fixedEstimator reports the same driving distance for every pair of points.
type fixedEstimator struct {
	meters float64
}

func (e fixedEstimator) EstimateDistance(
	_ context.Context, _, _ kernel.GeoPoint,
) (float64, error) {
	return e.meters, nil
}
