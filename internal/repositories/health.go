package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type HealthRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewHealthRepository(db *sqlx.DB, log *zap.SugaredLogger) *HealthRepository {
	return &HealthRepository{db: db, log: log}
}

// Ping runs a trivial query to check that the database answers.
func (r *HealthRepository) Ping(ctx context.Context) error {
	query := `SELECT 1`

	var one int
	err := r.db.GetContext(ctx, &one, query)

	r.log.Infow("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"result", one,
		"error", err,
	)

	return err
}
