package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

const (
	latitudeMin  = -90.0
	latitudeMax  = 90.0
	longitudeMin = -180.0
	longitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when using a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or GeoPointFromString")

// GeoPoint is a validated geographic coordinate pair. Route endpoints are
// stored as "lat,long" text, so GeoPoint round-trips through that form.
//
// Example:
//
//	warsaw, err := kernel.GeoPointFromString("52.2297,21.0122")
//	berlin, err := kernel.NewGeoPoint(52.5200, 13.4050)
type GeoPoint struct {
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from numeric coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < latitudeMin || latitude > latitudeMax {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude",
			fmt.Errorf("%v is out of range [%v, %v]", latitude, latitudeMin, latitudeMax))
	}
	if longitude < longitudeMin || longitude > longitudeMax {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude",
			fmt.Errorf("%v is out of range [%v, %v]", longitude, longitudeMin, longitudeMax))
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// GeoPointFromString parses the "lat,long" textual form, the format route
// endpoints are transported and persisted in.
func GeoPointFromString(s string) (GeoPoint, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("coordinates",
			fmt.Errorf("%q is not in lat,long form", s))
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}

	return NewGeoPoint(latitude, longitude)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String renders the canonical "lat,long" form used for persistence and for
// building routing requests.
func (p GeoPoint) String() string {
	return strconv.FormatFloat(p.latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.longitude, 'f', -1, 64)
}

// IsEqual reports whether two points hold identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// Validate returns ErrGeoPointIsNotConstructed for a zero-value GeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
