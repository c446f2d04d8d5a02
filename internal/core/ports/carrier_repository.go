// Package ports defines the contracts between the application core and the
// outside world: repositories, the unit of work, and the external
// collaborators for currency conversion and distance estimation.
package ports

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
)

// ErrStatusConflict is returned by CompareAndSetStatus when the stored status
// no longer matches the expected one, which means a concurrent request won
// the transition.
var ErrStatusConflict = errors.New("status changed concurrently")

// CarrierRepository is the persistence contract for carrier aggregates.
type CarrierRepository interface {
	// Add persists a new carrier. A duplicate license plate is reported as
	// errs.ErrConflict, never as a raw storage error.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier. Duplicate license
	// plates are reported as errs.ErrConflict.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier by ID, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// Delete removes a carrier record, or errs.ErrObjectNotFound.
	Delete(ctx context.Context, id kernel.UUID) error

	// CompareAndSetStatus flips the carrier's status from expected to next
	// in a single conditional write. It returns ErrStatusConflict when the
	// stored status is not the expected one. This is the race guard that
	// makes the AVAILABLE->BUSY flip first-writer-wins.
	CompareAndSetStatus(ctx context.Context, id kernel.UUID, expected, next carrier.Status) error
}
