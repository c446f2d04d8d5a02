// Package kernel provides the shared domain primitives of the transport
// service.
//
// It contains:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - GeoPoint: a validated "lat,long" coordinate pair, stored as text
//   - CurrencyCode: the closed set of currencies accepted on monetary input
//
// All primitives are immutable value objects. Their zero values are invalid
// and detected by Validate, so aggregates can rely on construction having
// gone through the factory functions.
package kernel
