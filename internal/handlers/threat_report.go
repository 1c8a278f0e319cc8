package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/sbilibin2017/gw-threat-intel/internal/models"
	"github.com/sbilibin2017/gw-threat-intel/internal/services"
	"go.uber.org/zap"
)

//go:generate mockgen -source=threat_report.go -destination=threat_report_mock.go -package=handlers

const (
	MessageThreatReportCreated   = "Threat report has been created successfully"
	MessageThreatReportRetrieved = "Threat report has been retrieved successfully"
	MessageThreatReportNotFound  = "Threat report not found"
	MessageInvalidThreatReportID = "Threat report id must be an integer"
)

// ThreatReportCreator stores new threat reports.
type ThreatReportCreator interface {
	CreateAndNotify(ctx context.Context, in *models.ThreatReportInput) (*models.ThreatReportDB, error)
}

// ThreatReportGetter looks up threat reports.
type ThreatReportGetter interface {
	Get(ctx context.Context, id int64) (*models.ThreatReportDB, error)
}

// ThreatReportRequest represents the JSON body of a threat report submission
// swagger:model ThreatReportRequest
type ThreatReportRequest struct {
	// Indicator type: ip, email, domain, file, url or user_agent
	// required: true
	IndicatorType string `json:"indicator_type"`

	// May be empty but must be present
	// required: true
	IndicatorAddress *string `json:"indicator_address"`

	// required: true
	FullName string `json:"full_name"`

	// required: true
	Email string `json:"email"`

	ThreatActor *string `json:"threat_actor"`
	Industry    *string `json:"industry"`
	Tactic      *string `json:"tactic"`
	Technique   *string `json:"technique"`

	// required: true
	Credibility *int `json:"credibility"`

	AttackLogs *string `json:"attack_logs"`
}

func threatTypeValues() []interface{} {
	values := make([]interface{}, len(models.ThreatTypes))
	for i, t := range models.ThreatTypes {
		values[i] = string(t)
	}
	return values
}

// Validate checks the request fields.
func (r ThreatReportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IndicatorType, validation.Required, validation.In(threatTypeValues()...)),
		validation.Field(&r.IndicatorAddress, validation.NotNil, validation.Length(0, 255)),
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, validation.Length(1, 255), is.Email),
		validation.Field(&r.ThreatActor, validation.Length(0, 255)),
		validation.Field(&r.Industry, validation.Length(0, 255)),
		validation.Field(&r.Tactic, validation.Length(0, 63)),
		validation.Field(&r.Technique, validation.Length(0, 63)),
		validation.Field(&r.Credibility, validation.NotNil),
	)
}

func (r ThreatReportRequest) toInput() *models.ThreatReportInput {
	return &models.ThreatReportInput{
		IndicatorType:    models.ThreatType(r.IndicatorType),
		IndicatorAddress: *r.IndicatorAddress,
		FullName:         r.FullName,
		Email:            r.Email,
		ThreatActor:      r.ThreatActor,
		Industry:         r.Industry,
		Tactic:           r.Tactic,
		Technique:        r.Technique,
		Credibility:      *r.Credibility,
		AttackLogs:       r.AttackLogs,
	}
}

// NewCreateThreatReportHandler returns an HTTP handler that stores a threat report.
// @Summary Submit a threat report
// @Description Stores a threat report and announces it to subscribers.
// @Tags threats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param threatReportRequest body handlers.ThreatReportRequest true "Threat report"
// @Success 201 {object} handlers.APIResponse "Threat report created"
// @Failure 401 {object} handlers.APIErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.APIErrorResponse "Invalid request"
// @Failure 500 {object} handlers.APIErrorResponse "Internal server error"
// @Router /threats/reports [post]
func NewCreateThreatReportHandler(svc ThreatReportCreator, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ThreatReportRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusUnprocessableEntity, StatusValidationError, MessageInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		report, err := svc.CreateAndNotify(r.Context(), req.toInput())
		if err != nil {
			log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		WriteSuccess(w, http.StatusCreated, StatusCreated, MessageThreatReportCreated, report)
	}
}

// NewGetThreatReportHandler returns an HTTP handler that fetches a threat report by id.
// @Summary Get a threat report
// @Tags threats
// @Produce json
// @Security BearerAuth
// @Param id path int true "Threat report id"
// @Success 200 {object} handlers.APIResponse "Threat report"
// @Failure 401 {object} handlers.APIErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.APIErrorResponse "Not found"
// @Failure 422 {object} handlers.APIErrorResponse "Invalid id"
// @Failure 500 {object} handlers.APIErrorResponse "Internal server error"
// @Router /threats/reports/{id} [get]
func NewGetThreatReportHandler(svc ThreatReportGetter, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			WriteError(w, http.StatusUnprocessableEntity, StatusValidationError, MessageInvalidThreatReportID)
			return
		}

		report, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrThreatReportNotFound):
				WriteError(w, http.StatusNotFound, StatusNotFound, MessageThreatReportNotFound)
			default:
				log.Errorw("internal server error", "err", err)
				writeInternalError(w)
			}
			return
		}

		WriteSuccess(w, http.StatusOK, StatusSuccess, MessageThreatReportRetrieved, report)
	}
}
