package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation is not allowed in the entity's current state.
var ErrConflict = errors.New("operation conflicts with current state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// LockViolationError is returned when a mutation targets a date that falls
// inside a locked accounting period. It always carries the offending module
// and the lock boundary so callers can render a precise message.
type LockViolationError struct {
	Module   string
	LockDate time.Time
	Date     time.Time
}

func (e *LockViolationError) Error() string {
	return fmt.Sprintf("transactions in module %s are locked through %s; date %s falls inside the locked period",
		e.Module, e.LockDate.Format("2006-01-02"), e.Date.Format("2006-01-02"))
}

func (e *LockViolationError) Unwrap() error { return ErrConflict }

// DuplicateLockError is returned when a module already has an active lock.
type DuplicateLockError struct {
	Module string
}

func (e *DuplicateLockError) Error() string {
	return fmt.Sprintf("module %s already has an active transaction lock", e.Module)
}

func (e *DuplicateLockError) Unwrap() error { return ErrDuplicate }

// CurrencyError is returned for unknown currency codes or rates that are not
// usable for conversion.
type CurrencyError struct {
	Code   string
	Reason string
}

func (e *CurrencyError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("currency %s: %s", e.Code, e.Reason)
	}
	return "currency error: " + e.Reason
}

func (e *CurrencyError) Unwrap() error { return ErrValidation }

// SequenceUnavailableError is returned when the atomic document counter could
// not be advanced. The operation must be retried; a number is never defaulted.
type SequenceUnavailableError struct {
	Kind string
	Err  error
}

func (e *SequenceUnavailableError) Error() string {
	return fmt.Sprintf("sequence for %s documents unavailable: %v", e.Kind, e.Err)
}

func (e *SequenceUnavailableError) Unwrap() error { return e.Err }

// ReconciliationMismatchError is returned when an item with a non-zero
// difference is confirmed without an explicit override.
type ReconciliationMismatchError struct {
	ItemID     string
	Difference string
}

func (e *ReconciliationMismatchError) Error() string {
	return fmt.Sprintf("reconciliation item %s has unresolved difference %s; pass override to confirm anyway",
		e.ItemID, e.Difference)
}

func (e *ReconciliationMismatchError) Unwrap() error { return ErrConflict }

// AppError wraps a lower-level failure with an HTTP-ish status code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
