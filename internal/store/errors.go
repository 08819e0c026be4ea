package store

import (
	"errors"
	"fmt"
)

// Errors returned by the store layer. Handlers translate these into HTTP
// status codes; nothing below this package returns an untyped failure.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrParticipantNotFound = errors.New("participant not found")

	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	// ErrDuplicateUser covers a uniqueness race that only surfaces at
	// commit time, where the colliding column is unknown.
	ErrDuplicateUser = errors.New("username or email already exists")
)

// ValidationError reports a malformed request field before anything is
// persisted.
type ValidationError struct {
	Field  string
	Expect string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: expected %s", e.Field, e.Expect)
}

// StorageError wraps a failure reported by the database after validation
// already passed, e.g. a constraint violation discovered at commit time.
// The failed operation is rolled back before this is returned.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: database error: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
