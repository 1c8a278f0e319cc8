package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

const (
	MessageHealthy             = "Everything is Fine!"
	MessageDatabaseUnavailable = "Database not available"
)

// Pinger checks that the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckResponse reports service health
// swagger:model HealthCheckResponse
type HealthCheckResponse struct {
	Database bool   `json:"database"`
	Message  string `json:"message"`
}

// NewHealthCheckHandler returns an HTTP handler reporting database availability.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthCheckResponse
// @Failure 500 {object} handlers.APIErrorResponse "Database not available"
// @Router /health-check [get]
func NewHealthCheckHandler(db Pinger, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			log.Errorw("database not available", "err", err)
			WriteError(w, http.StatusInternalServerError, StatusFailure, MessageDatabaseUnavailable)
			return
		}

		writeJSON(w, http.StatusOK, HealthCheckResponse{Database: true, Message: MessageHealthy})
	}
}
