package route

import (
	"errors"
	"fmt"
	"time"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

// metersPerKilometre converts the stored distance (meters) to the unit the
// carrier rate is quoted in (EUR per kilometre). The fee formula divides
// before multiplying and must stay exactly distance/1000*rate for numeric
// compatibility with existing records.
const metersPerKilometre = 1000.0

// Domain errors for route operations.
var (
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
	// ErrDatesOutOfOrder is returned when the planned departure is after the planned completion.
	ErrDatesOutOfOrder = errs.NewValueIsInvalidError("departure date can not be greater than completion date")
	// ErrActualDatesOutOfOrder is returned when the actual departure is after the actual completion.
	ErrActualDatesOutOfOrder = errs.NewValueIsInvalidError("actual departure can not be greater than actual completion")
	// ErrCarrierAlreadyAssigned is returned when dispatching a route that already has a carrier.
	ErrCarrierAlreadyAssigned = errs.NewInvalidTransitionError("carrier has been already assigned to this route")
	// ErrDepartureDateActualIsSet is returned when overwriting a stored actual departure.
	ErrDepartureDateActualIsSet = errs.NewInvalidTransitionError("actual departure date is already set")
	// ErrCompletionDateActualIsSet is returned when overwriting a stored actual completion.
	ErrCompletionDateActualIsSet = errs.NewInvalidTransitionError("actual completion date is already set")
	// ErrActualDatesRequired is returned when completing a route without both actual dates resolvable.
	ErrActualDatesRequired = errs.NewValueIsRequiredError("actual departure and completion dates")
)

// Route is the aggregate root for a transport order between two coordinates.
// It owns the lifecycle AWAITING_DISPATCH -> IN_PROGRESS -> COMPLETED, the
// binding to at most one carrier, and the fee derived from distance and the
// carrier's rate.
//
// Invariants:
//   - distance (meters) and price (EUR) are positive
//   - planned departure <= planned completion
//   - the carrier binding is set exactly once, together with the IN_PROGRESS flip
//   - each actual timestamp is set exactly once and actual departure <= actual completion
//   - COMPLETED requires both actual timestamps and is terminal
type Route struct {
	id                   kernel.UUID
	startPoint           kernel.GeoPoint
	endPoint             kernel.GeoPoint
	distanceMeters       float64
	departureDate        time.Time
	completionDate       time.Time
	departureDateActual  *time.Time
	completionDateActual *time.Time
	requiredCarrierType  carrier.Type
	price                float64
	carrierFee           *float64
	status               Status
	carrierID            *kernel.UUID
	guard                guard.ConstructorGuard
}

// NewRoute creates a route in AWAITING_DISPATCH with no carrier. Distance
// comes from the distance estimator and price must already be normalized
// to EUR; neither is ever taken verbatim from a client.
func NewRoute(
	id kernel.UUID,
	startPoint kernel.GeoPoint,
	endPoint kernel.GeoPoint,
	distanceMeters float64,
	departureDate time.Time,
	completionDate time.Time,
	requiredCarrierType carrier.Type,
	price float64,
) (*Route, error) {
	r := &Route{
		status: StatusAwaitingDispatch,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setEndpoints(startPoint, endPoint),
		r.setDistance(distanceMeters),
		r.setPlannedDates(departureDate, completionDate),
		r.setRequiredCarrierType(requiredCarrierType),
		r.setPrice(price),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a route from persisted state, including its
// lifecycle position and carrier binding. The status/carrier pairing is
// validated: IN_PROGRESS and COMPLETED require a bound carrier,
// AWAITING_DISPATCH forbids one.
func RestoreRoute(
	id kernel.UUID,
	startPoint kernel.GeoPoint,
	endPoint kernel.GeoPoint,
	distanceMeters float64,
	departureDate time.Time,
	completionDate time.Time,
	departureDateActual *time.Time,
	completionDateActual *time.Time,
	requiredCarrierType carrier.Type,
	price float64,
	carrierFee *float64,
	status Status,
	carrierID *kernel.UUID,
) (*Route, error) {
	r, err := NewRoute(id, startPoint, endPoint, distanceMeters,
		departureDate, completionDate, requiredCarrierType, price)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = validateCarrierBinding(status, carrierID); err != nil {
		return nil, err
	}
	if carrierID != nil {
		if err = carrierID.Validate(); err != nil {
			return nil, err
		}
	}
	if departureDateActual != nil && completionDateActual != nil &&
		departureDateActual.After(*completionDateActual) {
		return nil, ErrActualDatesOutOfOrder
	}

	r.status = status
	r.carrierID = carrierID
	r.carrierFee = carrierFee
	r.departureDateActual = departureDateActual
	r.completionDateActual = completionDateActual
	return r, nil
}

func validateCarrierBinding(status Status, carrierID *kernel.UUID) error {
	bound := carrierID != nil
	if bound && status == StatusAwaitingDispatch {
		return errs.NewValueIsInvalidError("awaiting route can not have a carrier")
	}
	if !bound && status != StatusAwaitingDispatch {
		return errs.NewValueIsInvalidErrorWithCause("carrierId",
			fmt.Errorf("%s route must have a carrier", status))
	}
	return nil
}

// BasicInfoPatch carries the optional fields of a basic-info edit. Nil keeps
// the stored value. Price, when present, must already be normalized to EUR.
type BasicInfoPatch struct {
	DepartureDate       *time.Time
	CompletionDate      *time.Time
	RequiredCarrierType *carrier.Type
	Price               *float64
}

// UpdateBasicInfo merges a basic-info patch. Only AWAITING_DISPATCH routes
// accept edits; the planned date ordering is re-validated against the merged
// values.
func (r *Route) UpdateBasicInfo(patch BasicInfoPatch) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if r.status != StatusAwaitingDispatch {
		return errs.NewInvalidTransitionErrorWithCause(
			"can not modify route which is in progress or completed",
			fmt.Errorf("status is %s", r.status))
	}

	departure := r.departureDate
	completion := r.completionDate
	if patch.DepartureDate != nil {
		departure = *patch.DepartureDate
	}
	if patch.CompletionDate != nil {
		completion = *patch.CompletionDate
	}
	if err := r.setPlannedDates(departure, completion); err != nil {
		return err
	}

	if patch.RequiredCarrierType != nil {
		if err := r.setRequiredCarrierType(*patch.RequiredCarrierType); err != nil {
			return err
		}
	}
	if patch.Price != nil {
		if err := r.setPrice(*patch.Price); err != nil {
			return err
		}
	}

	return nil
}

// AssignCarrier binds a carrier to the route, computes the carrier fee from
// the carrier's per-kilometre rate and flips the route to IN_PROGRESS. The
// binding happens exactly once; a second call fails with
// ErrCarrierAlreadyAssigned.
func (r *Route) AssignCarrier(carrierID kernel.UUID, ratePerKm float64) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := carrierID.Validate(); err != nil {
		return err
	}
	if r.carrierID != nil {
		return ErrCarrierAlreadyAssigned
	}

	newStatus, err := r.status.Dispatch()
	if err != nil {
		return err
	}

	fee := r.distanceMeters / metersPerKilometre * ratePerKm
	r.status = newStatus
	r.carrierID = &carrierID
	r.carrierFee = &fee
	return nil
}

// StatusUpdate carries a requested lifecycle update: the target status plus
// optionally the actual departure and completion timestamps.
type StatusUpdate struct {
	Target               Status
	DepartureDateActual  *time.Time
	CompletionDateActual *time.Time
}

// ApplyStatusUpdate advances the lifecycle and records actual timestamps.
//
// Rules, in order:
//   - a COMPLETED route accepts nothing further
//   - the target must be reachable per the Status transition table
//   - each actual timestamp is set exactly once, never overwritten
//   - the resolved (stored-or-supplied) actual departure must not exceed the
//     resolved actual completion
//   - transitioning to COMPLETED requires both actuals to be resolvable
//
// The caller releases the bound carrier when the update lands on COMPLETED.
func (r *Route) ApplyStatusUpdate(update StatusUpdate) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if err := r.status.CanTransition(update.Target); err != nil {
		return err
	}

	if update.DepartureDateActual != nil && r.departureDateActual != nil {
		return ErrDepartureDateActualIsSet
	}
	if update.CompletionDateActual != nil && r.completionDateActual != nil {
		return ErrCompletionDateActualIsSet
	}

	departure := r.departureDateActual
	if update.DepartureDateActual != nil {
		departure = update.DepartureDateActual
	}
	completion := r.completionDateActual
	if update.CompletionDateActual != nil {
		completion = update.CompletionDateActual
	}

	if departure != nil && completion != nil && departure.After(*completion) {
		return ErrActualDatesOutOfOrder
	}

	if update.Target == StatusCompleted && (departure == nil || completion == nil) {
		return ErrActualDatesRequired
	}

	r.departureDateActual = departure
	r.completionDateActual = completion
	r.status = update.Target
	return nil
}

// IsEqual compares routes by identity.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// Validate checks the Route was built through NewRoute.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// StartPoint returns the departure coordinates.
func (r *Route) StartPoint() kernel.GeoPoint {
	return r.startPoint
}

// EndPoint returns the destination coordinates.
func (r *Route) EndPoint() kernel.GeoPoint {
	return r.endPoint
}

// DistanceMeters returns the estimated travel distance in meters.
func (r *Route) DistanceMeters() float64 {
	return r.distanceMeters
}

// DepartureDate returns the planned departure.
func (r *Route) DepartureDate() time.Time {
	return r.departureDate
}

// CompletionDate returns the planned completion.
func (r *Route) CompletionDate() time.Time {
	return r.completionDate
}

// DepartureDateActual returns the recorded actual departure, if any.
func (r *Route) DepartureDateActual() *time.Time {
	return r.departureDateActual
}

// CompletionDateActual returns the recorded actual completion, if any.
func (r *Route) CompletionDateActual() *time.Time {
	return r.completionDateActual
}

// RequiredCarrierType returns the carrier capability this route demands.
func (r *Route) RequiredCarrierType() carrier.Type {
	return r.requiredCarrierType
}

// Price returns the route price in EUR.
func (r *Route) Price() float64 {
	return r.price
}

// CarrierFee returns the fee owed to the bound carrier, computed on
// assignment. Nil until a carrier is bound.
func (r *Route) CarrierFee() *float64 {
	return r.carrierFee
}

// Status returns the lifecycle status.
func (r *Route) Status() Status {
	return r.status
}

// CarrierID returns the bound carrier's ID, or nil before dispatch.
func (r *Route) CarrierID() *kernel.UUID {
	return r.carrierID
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setEndpoints(start, end kernel.GeoPoint) error {
	if err := start.Validate(); err != nil {
		return err
	}
	if err := end.Validate(); err != nil {
		return err
	}
	r.startPoint = start
	r.endPoint = end
	return nil
}

func (r *Route) setDistance(meters float64) error {
	if meters <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%v is not greater than 0", meters))
	}
	r.distanceMeters = meters
	return nil
}

func (r *Route) setPlannedDates(departure, completion time.Time) error {
	if departure.IsZero() {
		return errs.NewValueIsRequiredError("departureDate")
	}
	if completion.IsZero() {
		return errs.NewValueIsRequiredError("completionDate")
	}
	if departure.After(completion) {
		return ErrDatesOutOfOrder
	}
	r.departureDate = departure
	r.completionDate = completion
	return nil
}

func (r *Route) setRequiredCarrierType(t carrier.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.requiredCarrierType = t
	return nil
}

func (r *Route) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	r.price = price
	return nil
}
