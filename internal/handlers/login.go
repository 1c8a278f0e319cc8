package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/sbilibin2017/gw-threat-intel/internal/models"
	"github.com/sbilibin2017/gw-threat-intel/internal/services"
	"go.uber.org/zap"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

const MessageInvalidCredentials = "Invalid email or password"

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.AccessToken, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// Validate checks the request fields.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login user
// @Description Authenticates a user by email and password and returns a signed bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} models.AccessToken "Access token"
// @Failure 401 {object} handlers.APIErrorResponse "Invalid email or password"
// @Failure 422 {object} handlers.APIErrorResponse "Invalid request"
// @Failure 500 {object} handlers.APIErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusUnprocessableEntity, StatusValidationError, MessageInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				WriteError(w, http.StatusUnauthorized, StatusUnauthorized, MessageInvalidCredentials)
			default:
				log.Errorw("internal server error", "err", err)
				writeInternalError(w)
			}
			return
		}

		writeJSON(w, http.StatusOK, token)
	}
}
