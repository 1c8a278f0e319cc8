package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/sbilibin2017/gw-threat-intel/internal/models"
	"github.com/sbilibin2017/gw-threat-intel/internal/password"
	"github.com/sbilibin2017/gw-threat-intel/internal/services"
	"go.uber.org/zap"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

const MessageRegistered = "Registration has been successful"

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

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
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, validation.Length(1, 255), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(1, password.MaxLength)),
	)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an active user account. Username and email must be unique. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.APIResponse "User successfully registered"
// @Failure 409 {object} handlers.APIErrorResponse "Username or email already exists"
// @Failure 422 {object} handlers.APIErrorResponse "Invalid request"
// @Failure 500 {object} handlers.APIErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusUnprocessableEntity, StatusValidationError, MessageInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			var dup *services.DuplicateUserError
			switch {
			case errors.As(err, &dup):
				WriteError(w, http.StatusConflict, StatusConflict,
					fmt.Sprintf("User with this %s already exists", dup.Field))
			case errors.Is(err, password.ErrPasswordTooLong):
				writeValidationError(w, validation.Errors{"password": password.ErrPasswordTooLong})
			default:
				log.Errorw("internal server error", "err", err)
				writeInternalError(w)
			}
			return
		}

		WriteSuccess(w, http.StatusCreated, StatusCreated, MessageRegistered, user)
	}
}
