package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-threat-intel/internal/handlers"
	"github.com/sbilibin2017/gw-threat-intel/internal/jwt"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

const (
	MessageAuthenticationRequired = "Authentication is required to access this resource"
	MessageInvalidAuthScheme      = "Authentication scheme must be Bearer"
	MessageTokenExpired           = "The authentication token has expired"
	MessageTokenInvalid           = "The authentication token is invalid or malformed"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Verify(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type claimsKey struct{}

// ClaimsFromContext returns the claims stored by AuthMiddleware, or nil.
func ClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}

// AuthMiddleware returns a middleware that rejects requests without a valid bearer token.
func AuthMiddleware(tokener Tokener, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				handlers.WriteError(w, http.StatusUnauthorized, handlers.StatusUnauthorized, authFailureMessage(err))
				return
			}

			claims, err := tokener.Verify(ctx, tokenString)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				handlers.WriteError(w, http.StatusUnauthorized, handlers.StatusUnauthorized, authFailureMessage(err))
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, claimsKey{}, claims)))
		})
	}
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrInvalidAuthScheme):
		return MessageInvalidAuthScheme
	case errors.Is(err, jwt.ErrTokenExpired):
		return MessageTokenExpired
	case errors.Is(err, jwt.ErrAuthenticationRequired):
		return MessageAuthenticationRequired
	default:
		return MessageTokenInvalid
	}
}
