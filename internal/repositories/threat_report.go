package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-threat-intel/internal/models"
	"go.uber.org/zap"
)

const threatReportColumns = `id, indicator_type, indicator_address, full_name, email, threat_actor,
	industry, tactic, technique, credibility, attack_logs, created_at, modified_at`

type ThreatReportWriteRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewThreatReportWriteRepository(db *sqlx.DB, log *zap.SugaredLogger) *ThreatReportWriteRepository {
	return &ThreatReportWriteRepository{db: db, log: log}
}

// Create persists a new threat report and returns the stored row.
func (r *ThreatReportWriteRepository) Create(ctx context.Context, in *models.ThreatReportInput) (*models.ThreatReportDB, error) {
	query := `
		INSERT INTO threat__threat_report (
			indicator_type, indicator_address, full_name, email, threat_actor,
			industry, tactic, technique, credibility, attack_logs
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + threatReportColumns + `
	`
	args := []any{
		string(in.IndicatorType), in.IndicatorAddress, in.FullName, in.Email, in.ThreatActor,
		in.Industry, in.Tactic, in.Technique, in.Credibility, in.AttackLogs,
	}

	var report models.ThreatReportDB
	err := WithTx(ctx, r.db, nil, func(ctx context.Context) error {
		return sqlx.GetContext(ctx, executor(ctx, r.db), &report, query, args...)
	})

	// Log with query in single line
	r.log.Infow("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", report.ID,
		"error", err,
	)

	if err != nil {
		return nil, classifyError(err)
	}

	return &report, nil
}

type ThreatReportReadRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewThreatReportReadRepository(db *sqlx.DB, log *zap.SugaredLogger) *ThreatReportReadRepository {
	return &ThreatReportReadRepository{db: db, log: log}
}

// GetByID returns the report with the given id or ErrNotFound.
func (r *ThreatReportReadRepository) GetByID(ctx context.Context, id int64) (*models.ThreatReportDB, error) {
	query := `
		SELECT ` + threatReportColumns + `
		FROM threat__threat_report
		WHERE id = $1
	`

	var report models.ThreatReportDB
	err := WithTx(ctx, r.db, readOnly, func(ctx context.Context) error {
		return sqlx.GetContext(ctx, executor(ctx, r.db), &report, query, id)
	})

	// Log with query in single line
	r.log.Infow("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", report.ID,
		"error", err,
	)

	if err != nil {
		return nil, classifyError(err)
	}

	return &report, nil
}
