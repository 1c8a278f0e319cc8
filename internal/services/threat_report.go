package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-threat-intel/internal/models"
	"github.com/sbilibin2017/gw-threat-intel/internal/repositories"
	"go.uber.org/zap"
)

//go:generate mockgen -source=threat_report.go -destination=threat_report_mock.go -package=services

const defaultPublishTimeout = 5 * time.Second

// ThreatReportReader defines read-only operations for threat reports.
type ThreatReportReader interface {
	GetByID(ctx context.Context, id int64) (*models.ThreatReportDB, error)
}

// ThreatReportWriter defines write operations for threat reports.
type ThreatReportWriter interface {
	Create(ctx context.Context, in *models.ThreatReportInput) (*models.ThreatReportDB, error)
}

// ThreatReportPublisher announces newly created threat reports.
type ThreatReportPublisher interface {
	Publish(ctx context.Context, report *models.ThreatReportDB) error
}

// ThreatReportService stores threat reports and notifies subscribers.
type ThreatReportService struct {
	reader         ThreatReportReader
	writer         ThreatReportWriter
	publisher      ThreatReportPublisher
	publishTimeout time.Duration
	log            *zap.SugaredLogger
}

type ThreatReportOpt func(*ThreatReportService)

// WithPublishTimeout bounds how long a notification may take.
func WithPublishTimeout(d time.Duration) ThreatReportOpt {
	return func(s *ThreatReportService) {
		if d > 0 {
			s.publishTimeout = d
		}
	}
}

// NewThreatReportService creates a new ThreatReportService instance.
func NewThreatReportService(
	reader ThreatReportReader,
	writer ThreatReportWriter,
	publisher ThreatReportPublisher,
	log *zap.SugaredLogger,
	opts ...ThreatReportOpt,
) *ThreatReportService {
	s := &ThreatReportService{
		reader:         reader,
		writer:         writer,
		publisher:      publisher,
		publishTimeout: defaultPublishTimeout,
		log:            log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAndNotify stores the report and then publishes it. The report is
// returned even when publishing fails.
func (s *ThreatReportService) CreateAndNotify(ctx context.Context, in *models.ThreatReportInput) (*models.ThreatReportDB, error) {
	report, err := s.writer.Create(ctx, in)
	if err != nil {
		s.log.Errorw("failed to create threat report", "err", err)
		return nil, fmt.Errorf("create threat report: %w", err)
	}

	s.notify(ctx, report)

	return report, nil
}

// Get returns the report with the given id.
func (s *ThreatReportService) Get(ctx context.Context, id int64) (*models.ThreatReportDB, error) {
	report, err := s.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrThreatReportNotFound
		}
		s.log.Errorw("failed to get threat report", "id", id, "err", err)
		return nil, fmt.Errorf("get threat report: %w", err)
	}

	return report, nil
}

// notify publishes report on a context detached from the request, so a
// client disconnect does not abort an already committed notification.
func (s *ThreatReportService) notify(ctx context.Context, report *models.ThreatReportDB) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	defer func() {
		if p := recover(); p != nil {
			s.log.Errorw("threat report notification panicked", "report_id", report.ID, "panic", p)
		}
	}()

	if err := s.publisher.Publish(ctx, report); err != nil {
		s.log.Errorw("failed to publish threat report", "report_id", report.ID, "err", err)
		return
	}

	s.log.Infow("threat report published", "report_id", report.ID)
}
