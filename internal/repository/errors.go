package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
)

// StorageError is a failure the storage layer has already classified.
// Callers branch on UniqueViolation instead of parsing driver messages.
type StorageError struct {
	UniqueViolation bool
	Constraint      string
	Err             error
}

func (e *StorageError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("storage: %s (constraint %s)", e.Err, e.Constraint)
	}
	return "storage: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrAlreadyExists) hold for unique violations.
func (e *StorageError) Is(target error) bool {
	return e.UniqueViolation && target == ErrAlreadyExists
}

// Classify translates Postgres error codes to *StorageError.
// I only map what I expect to handle explicitly at higher layers; everything else passes through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &StorageError{UniqueViolation: true, Constraint: pgErr.ConstraintName, Err: err}
		case pgerrcode.ForeignKeyViolation:
			return &StorageError{Constraint: pgErr.ConstraintName, Err: fmt.Errorf("%w: %w", ErrConflict, err)}
		}
	}
	return err
}

// IsUniqueViolation reports whether err carries a classified unique violation.
func IsUniqueViolation(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && se.UniqueViolation
}
