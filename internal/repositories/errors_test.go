package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	assert.Nil(t, classifyError(nil))
	assert.ErrorIs(t, classifyError(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, classifyError(fmt.Errorf("wrapped: %w", sql.ErrNoRows)), ErrNotFound)
	assert.Equal(t, assert.AnError, classifyError(assert.AnError))

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "auth__user_email_key"}
	err := classifyError(fmt.Errorf("insert: %w", pgErr))

	var uv *UniqueViolationError
	assert.True(t, errors.As(err, &uv))
	assert.Equal(t, "email", uv.Field)
	assert.Equal(t, "email already exists", uv.Error())

	var unwrapped *pgconn.PgError
	assert.True(t, errors.As(err, &unwrapped))

	unknown := classifyError(&pgconn.PgError{Code: "23505", ConstraintName: "foo_key"})
	assert.True(t, errors.As(unknown, &uv))
	assert.Empty(t, uv.Field)
	assert.Contains(t, uv.Error(), "foo_key")

	notUnique := classifyError(&pgconn.PgError{Code: "23503"})
	assert.False(t, errors.As(notUnique, &uv))
}
