package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-threat-intel/internal/models"
	"go.uber.org/zap"
)

const userColumns = `id, username, email, hashed_password, is_active, created_at, modified_at`

type UserReadRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewUserReadRepository(db *sqlx.DB, log *zap.SugaredLogger) *UserReadRepository {
	return &UserReadRepository{db: db, log: log}
}

// GetActiveByEmail returns the active user with the given email or ErrNotFound.
func (r *UserReadRepository) GetActiveByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM auth__user
		WHERE email = $1 AND is_active = TRUE
	`

	var user models.UserDB
	err := WithTx(ctx, r.db, readOnly, func(ctx context.Context) error {
		return sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, email)
	})

	// Log with query in single line
	r.log.Infow("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", user.ID,
		"error", err,
	)

	if err != nil {
		return nil, classifyError(err)
	}

	return &user, nil
}

type UserWriteRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewUserWriteRepository(db *sqlx.DB, log *zap.SugaredLogger) *UserWriteRepository {
	return &UserWriteRepository{db: db, log: log}
}

// Create inserts an active user. Duplicate usernames or emails are reported
// as *UniqueViolationError.
func (r *UserWriteRepository) Create(ctx context.Context, username, email, hashedPassword string) (*models.UserDB, error) {
	query := `
		INSERT INTO auth__user (username, email, hashed_password, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING ` + userColumns + `
	`
	args := []any{username, email}

	var user models.UserDB
	err := WithTx(ctx, r.db, nil, func(ctx context.Context) error {
		return sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, username, email, hashedPassword)
	})

	// Log with query in single line; the hash is never logged
	r.log.Infow("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user.ID,
		"error", err,
	)

	if err != nil {
		return nil, classifyError(err)
	}

	return &user, nil
}
