package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found.
// Device-scoped denials use this type as well: a device that belongs to
// another tenant is reported exactly like a device that does not exist, so
// callers cannot enumerate foreign device identifiers.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// UpstreamError represents a failure talking to the monitoring backend.
// StatusCode carries the upstream HTTP status when one was received,
// zero for transport-level failures (timeout, connection refused).
type UpstreamError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s failed: status %d: %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream %s failed: %s", e.Operation, e.Message)
}

// Entity Not Found Errors
var (
	ErrTenantNotFound = &NotFoundError{Entity: "tenant"}
	ErrUserNotFound   = &NotFoundError{Entity: "user"}
	ErrDeviceNotFound = &NotFoundError{Entity: "device"}
)

// Already Exists Errors
var (
	ErrEmailExists     = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrOwnershipExists = &AlreadyExistsError{Entity: "device ownership", Context: "for this tenant and device"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrMissingToken       = &AuthenticationError{Message: "authentication token is required"}
	ErrInvalidToken       = &AuthorizationError{Message: "invalid or expired token"}
	ErrTenantNotInContext = &AuthenticationError{Message: "tenant identity not found in request context"}
)

// Business Logic Errors
var (
	ErrInvalidTimespan = &ValidationError{Field: "timespan", Message: "must be one of hour, day, week, month"}

	// ErrOwnershipNotRecorded marks the acknowledged inconsistency window in
	// device creation: the device exists upstream but the local ownership
	// write failed, so no tenant can see it until reconciled.
	ErrOwnershipNotRecorded = errors.New("device created upstream but ownership record failed")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(operation string, statusCode int, message string) error {
	return &UpstreamError{Operation: operation, StatusCode: statusCode, Message: message}
}
