package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
// Each typed error below unwraps to exactly one of these.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrObjectNotFound     = errors.New("object not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrValueIsUnprocessed = errors.New("value can not be processed")
	ErrUpstreamFailure    = errors.New("upstream failure")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates a required value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// wrapping the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// wrapping the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing object.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing object
// wrapping the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError indicates a unique-constraint violation, for example a
// duplicate carrier license plate.
type ConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewConflictError creates an error for a uniqueness conflict.
func NewConflictError(paramName string, value any) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value}
}

// NewConflictErrorWithCause creates an error for a uniqueness conflict
// wrapping the underlying storage error.
func NewConflictErrorWithCause(paramName string, value any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s already exists (cause: %s)",
			ErrConflict, sanitize(e.ParamName), sanitize(e.Value), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s %s already exists", ErrConflict, sanitize(e.ParamName), sanitize(e.Value))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidTransitionError indicates an operation that is not legal in the
// entity's current lifecycle state.
type InvalidTransitionError struct {
	ParamName string
	Cause     error
}

// NewInvalidTransitionError creates an error for an illegal lifecycle transition.
func NewInvalidTransitionError(paramName string) *InvalidTransitionError {
	return &InvalidTransitionError{ParamName: paramName}
}

// NewInvalidTransitionErrorWithCause creates an error for an illegal lifecycle
// transition wrapping the underlying cause.
func NewInvalidTransitionErrorWithCause(paramName string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{ParamName: paramName, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidTransition, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidTransition, sanitize(e.ParamName))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnprocessableError indicates a request that is well-formed but can not be
// acted on, for example a rate update without an accompanying currency code.
type UnprocessableError struct {
	ParamName string
	Cause     error
}

// NewUnprocessableError creates an error for an unprocessable request value.
func NewUnprocessableError(paramName string) *UnprocessableError {
	return &UnprocessableError{ParamName: paramName}
}

// NewUnprocessableErrorWithCause creates an error for an unprocessable request
// value wrapping the underlying cause.
func NewUnprocessableErrorWithCause(paramName string, cause error) *UnprocessableError {
	return &UnprocessableError{ParamName: paramName, Cause: cause}
}

func (e *UnprocessableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsUnprocessed, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsUnprocessed, sanitize(e.ParamName))
}

func (e *UnprocessableError) Unwrap() error {
	return ErrValueIsUnprocessed
}

// UpstreamFailureError indicates an external collaborator (currency conversion,
// distance estimation) failed or timed out.
type UpstreamFailureError struct {
	ServiceName string
	Cause       error
}

// NewUpstreamFailureError creates an error for a failed upstream call.
func NewUpstreamFailureError(serviceName string, cause error) *UpstreamFailureError {
	return &UpstreamFailureError{ServiceName: serviceName, Cause: cause}
}

func (e *UpstreamFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUpstreamFailure, sanitize(e.ServiceName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrUpstreamFailure, sanitize(e.ServiceName))
}

func (e *UpstreamFailureError) Unwrap() error {
	return ErrUpstreamFailure
}
