package ports

import (
	"context"

	"transport/internal/core/domain/model/kernel"
)

// CurrencyConverter normalizes monetary amounts to EUR. Implementations
// must bound the underlying call with a timeout and wrap failures in
// errs.ErrUpstreamFailure; conversion from EUR itself is identity and must
// not leave the process.
type CurrencyConverter interface {
	ConvertToEUR(ctx context.Context, amount float64, code kernel.CurrencyCode) (float64, error)
}

// DistanceEstimator returns the travel distance in meters between two
// coordinates. "No route exists between the points" and transport failures
// both surface as errs.ErrUpstreamFailure.
type DistanceEstimator interface {
	EstimateDistance(ctx context.Context, start, end kernel.GeoPoint) (float64, error)
}
