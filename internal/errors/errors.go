package errors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// NotFoundError represents an error when an entity is not found
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

// InvalidReferenceError represents a cross-project reference, e.g. assigning
// a room to a section that belongs to a different project. It indicates a
// caller bug and is never retried.
type InvalidReferenceError struct {
	Entity  string
	Message string
}

func (e *InvalidReferenceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid %s reference: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("invalid %s reference", e.Entity)
}

// Is enables errors.Is() comparison for InvalidReferenceError
func (e *InvalidReferenceError) Is(target error) bool {
	t, ok := target.(*InvalidReferenceError)
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

// NotEmptyError represents a conflict where an entity still owns dependents
// and cannot be deleted. Count reports how many dependents block the delete
// so the caller can guide the user to move or remove them first.
type NotEmptyError struct {
	Entity string
	Count  int64
}

func (e *NotEmptyError) Error() string {
	return fmt.Sprintf("%s is not empty: %d room(s) still assigned", e.Entity, e.Count)
}

// Is enables errors.Is() comparison for NotEmptyError
func (e *NotEmptyError) Is(target error) bool {
	t, ok := target.(*NotEmptyError)
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

// PartialFailureError reports a multi-record update where an earlier write
// succeeded and a later one failed. The stored order remains a valid total
// order, so the caller may re-fetch and safely re-issue the operation.
type PartialFailureError struct {
	Operation string
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("partial failure during %s: %v", e.Operation, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrProjectNotFound     = &NotFoundError{Entity: "project"}
	ErrSectionNotFound     = &NotFoundError{Entity: "section"}
	ErrRoomNotFound        = &NotFoundError{Entity: "room"}
	ErrContractorNotFound  = &NotFoundError{Entity: "contractor"}
	ErrConceptItemNotFound = &NotFoundError{Entity: "concept item"}
)

// Reference Errors
var (
	ErrSectionWrongProject = &InvalidReferenceError{Entity: "section", Message: "section belongs to a different project"}
)

// Conflict Errors
var (
	ErrContractorAlreadyAssigned = &AlreadyExistsError{Entity: "contractor assignment", Context: "for this project"}
	ErrContractorNotAssigned     = errors.New("contractor is not assigned to this project")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsInvalidReference checks if an error is an InvalidReferenceError
func IsInvalidReference(err error) bool {
	var refErr *InvalidReferenceError
	return errors.As(err, &refErr)
}

// IsValidation checks if an error is a ValidationError or a wrapped
// struct-tag validation failure
func IsValidation(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// IsNotEmpty checks if an error is a NotEmptyError
func IsNotEmpty(err error) bool {
	var notEmptyErr *NotEmptyError
	return errors.As(err, &notEmptyErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsPartialFailure checks if an error is a PartialFailureError
func IsPartialFailure(err error) bool {
	var partialErr *PartialFailureError
	return errors.As(err, &partialErr)
}

// AsNotEmpty extracts a NotEmptyError, exposing the blocking count
func AsNotEmpty(err error) (*NotEmptyError, bool) {
	var notEmptyErr *NotEmptyError
	ok := errors.As(err, &notEmptyErr)
	return notEmptyErr, ok
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewNotEmptyError creates a new NotEmptyError with the blocking count
func NewNotEmptyError(entity string, count int64) error {
	return &NotEmptyError{Entity: entity, Count: count}
}

// NewPartialFailureError wraps the failing half of a multi-record update
func NewPartialFailureError(operation string, err error) error {
	return &PartialFailureError{Operation: operation, Err: err}
}
