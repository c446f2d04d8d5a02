package carrierrepo

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierRepository implements CarrierRepository using GORM.
type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierRepository creates a new GORM carrier repository.
func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier to the database. A duplicate license plate comes
// back as errs.ErrConflict.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateDuplicate(err, aggregate.LicensePlate())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing carrier to the database.
func (r *GormCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CarrierDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return translateDuplicate(result.Error, aggregate.LicensePlate())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("carrier", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a carrier by ID.
func (r *GormCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a carrier record.
func (r *GormCarrierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CarrierDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("carrier", id.String())
	}

	return nil
}

// CompareAndSetStatus flips the stored status from expected to next in one
// conditional UPDATE. The row filter on the expected status is what makes
// concurrent flips first-writer-wins: the loser matches zero rows.
func (r *GormCarrierRepository) CompareAndSetStatus(
	ctx context.Context, id kernel.UUID, expected, next carrier.Status,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&CarrierDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(expected)).
		Update("status", int(next))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrStatusConflict
	}

	return nil
}

// translateDuplicate maps the driver's unique-violation error onto the
// domain's conflict error. Requires gorm.Config.TranslateError to be on.
func translateDuplicate(err error, plate string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause("licensePlate", plate, err)
	}
	return err
}
