package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-threat-intel/internal/models"
	"github.com/sbilibin2017/gw-threat-intel/internal/repositories"
	"github.com/sbilibin2017/gw-threat-intel/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newInput() *models.ThreatReportInput {
	return &models.ThreatReportInput{
		IndicatorType:    models.ThreatTypeDomain,
		IndicatorAddress: "evil.example",
		FullName:         "Jane Doe",
		Email:            "jane@example.com",
		Credibility:      4,
	}
}

func TestThreatReportService_CreateAndNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	in := newInput()
	stored := &models.ThreatReportDB{ID: 11, IndicatorType: in.IndicatorType, IndicatorAddress: in.IndicatorAddress}

	tests := []struct {
		name       string
		publish    func(ctx context.Context, r *models.ThreatReportDB) error
		wantLogged string
	}{
		{
			name:    "published",
			publish: func(ctx context.Context, r *models.ThreatReportDB) error { return nil },
		},
		{
			name:       "broker unavailable",
			publish:    func(ctx context.Context, r *models.ThreatReportDB) error { return errors.New("connection refused") },
			wantLogged: "failed to publish threat report",
		},
		{
			name:       "publisher panics",
			publish:    func(ctx context.Context, r *models.ThreatReportDB) error { panic("boom") },
			wantLogged: "threat report notification panicked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)

			mockReader := services.NewMockThreatReportReader(ctrl)
			mockWriter := services.NewMockThreatReportWriter(ctrl)
			mockPublisher := services.NewMockThreatReportPublisher(ctrl)

			mockWriter.EXPECT().Create(gomock.Any(), in).Return(stored, nil)
			mockPublisher.EXPECT().Publish(gomock.Any(), stored).DoAndReturn(tt.publish)

			svc := services.NewThreatReportService(mockReader, mockWriter, mockPublisher, zap.New(core).Sugar())

			report, err := svc.CreateAndNotify(context.Background(), in)
			require.NoError(t, err)
			assert.Equal(t, stored, report)

			if tt.wantLogged != "" {
				entries := logs.FilterMessage(tt.wantLogged).All()
				require.Len(t, entries, 1)
				assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
				assert.Equal(t, int64(11), entries[0].ContextMap()["report_id"])
			}
		})
	}
}

func TestThreatReportService_CreateAndNotify_DetachedContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockThreatReportReader(ctrl)
	mockWriter := services.NewMockThreatReportWriter(ctrl)
	mockPublisher := services.NewMockThreatReportPublisher(ctrl)

	stored := &models.ThreatReportDB{ID: 3}
	mockWriter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, nil)
	mockPublisher.EXPECT().Publish(gomock.Any(), stored).DoAndReturn(
		func(ctx context.Context, r *models.ThreatReportDB) error {
			assert.NoError(t, ctx.Err(), "publish context must not inherit request cancellation")
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
			return nil
		})

	svc := services.NewThreatReportService(mockReader, mockWriter, mockPublisher, zap.NewNop().Sugar(),
		services.WithPublishTimeout(time.Second))

	// The writer mock ignores ctx, so a request that is already cancelled
	// still reaches the publisher.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateAndNotify(ctx, newInput())
	assert.NoError(t, err)
}

func TestThreatReportService_CreateAndNotify_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockThreatReportReader(ctrl)
	mockWriter := services.NewMockThreatReportWriter(ctrl)
	mockPublisher := services.NewMockThreatReportPublisher(ctrl)

	dbErr := errors.New("db error")
	mockWriter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, dbErr)
	// No Publish expectation: nothing is announced for a report that was not stored.

	svc := services.NewThreatReportService(mockReader, mockWriter, mockPublisher, zap.NewNop().Sugar())

	report, err := svc.CreateAndNotify(context.Background(), newInput())
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, report)
}

func TestThreatReportService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := errors.New("db error")
	stored := &models.ThreatReportDB{ID: 5}

	tests := []struct {
		name      string
		repoRes   *models.ThreatReportDB
		repoErr   error
		wantErr   error
		wantFound bool
	}{
		{name: "found", repoRes: stored, wantFound: true},
		{name: "not found", repoErr: repositories.ErrNotFound, wantErr: services.ErrThreatReportNotFound},
		{name: "db error", repoErr: dbErr, wantErr: dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockThreatReportReader(ctrl)
			mockReader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(tt.repoRes, tt.repoErr)

			svc := services.NewThreatReportService(mockReader, nil, nil, zap.NewNop().Sugar())
			report, err := svc.Get(context.Background(), 5)

			if tt.wantFound {
				require.NoError(t, err)
				assert.Equal(t, stored, report)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, report)
		})
	}
}
