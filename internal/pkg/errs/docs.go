// Package errs provides the standardized error types used across the
// transport service. Every error belongs to one of a small closed set of
// categories so that the HTTP adapter can map failures to response codes
// with errors.Is instead of inspecting messages.
//
// Each category follows the same shape:
//   - a sentinel error variable (e.g. ErrConflict)
//   - a struct type carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Storage-engine details never leak through this package: persistence
// unique-constraint violations are translated to ConflictError at the
// repository boundary, and failed collaborator calls are wrapped in
// UpstreamFailureError by the respective client.
package errs
