package seeder

import (
	"errors"
	"fmt"

	"github.com/saherflow/dashseed/internal/database"
)

var (
	// ErrPreconditionMissing matches every *PreconditionError.
	ErrPreconditionMissing = errors.New("seed precondition missing")
	// ErrDatabase matches every *DatabaseError.
	ErrDatabase = errors.New("database error")
)

// PreconditionError reports a row that must exist before seeding.
type PreconditionError struct {
	Prerequisite string
	Remedy       string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s not found. Please %s first.", e.Prerequisite, e.Remedy)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPreconditionMissing
}

// DatabaseError wraps a driver error with the step that failed.
type DatabaseError struct {
	Step string
	Code string
	Err  error
}

func newDatabaseError(step string, err error) *DatabaseError {
	return &DatabaseError{Step: step, Code: database.ErrorCode(err), Err: err}
}

func (e *DatabaseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %v (code %s)", e.Step, e.Err, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

func (e *DatabaseError) Is(target error) bool {
	return target == ErrDatabase
}
