package facades

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-threat-intel/internal/models"
)

// Publisher announces a threat report on one channel.
type Publisher interface {
	Publish(ctx context.Context, report *models.ThreatReportDB) error
}

// FanoutPublisher publishes to every publisher it holds.
type FanoutPublisher struct {
	publishers []Publisher
}

func NewFanoutPublisher(publishers ...Publisher) *FanoutPublisher {
	return &FanoutPublisher{publishers: publishers}
}

// Publish calls every publisher, even after a failure, and joins their errors.
func (f *FanoutPublisher) Publish(ctx context.Context, report *models.ThreatReportDB) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
