package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

const pgUniqueViolation = "23505"

// uniqueFields maps unique constraint names to the column they protect.
var uniqueFields = map[string]string{
	"auth__user_username_key": "username",
	"auth__user_email_key":    "email",
}

// UniqueViolationError reports an insert rejected by a unique constraint.
// Field is empty when the constraint is not a known one.
type UniqueViolationError struct {
	Field      string
	Constraint string
	Err        error
}

func (e *UniqueViolationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unique constraint %q violated", e.Constraint)
	}
	return fmt.Sprintf("%s already exists", e.Field)
}

func (e *UniqueViolationError) Unwrap() error {
	return e.Err
}

// classifyError turns driver errors into the package's error values.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &UniqueViolationError{
			Field:      uniqueFields[pgErr.ConstraintName],
			Constraint: pgErr.ConstraintName,
			Err:        err,
		}
	}

	return err
}
