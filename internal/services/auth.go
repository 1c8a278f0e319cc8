package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-threat-intel/internal/jwt"
	"github.com/sbilibin2017/gw-threat-intel/internal/models"
	"github.com/sbilibin2017/gw-threat-intel/internal/repositories"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetActiveByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, email, hashedPassword string) (*models.UserDB, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, hash string) (bool, error)
}

// TokenIssuer issues access tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	tokens TokenIssuer
	log    *zap.SugaredLogger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	tokens TokenIssuer,
	log *zap.SugaredLogger,
) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		tokens: tokens,
		log:    log,
	}
}

// Register creates an active user. A taken username or email is reported as
// *DuplicateUserError; the unique constraints decide, there is no pre-check.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDB, error) {
	hashed, err := svc.hasher.Hash(ctx, password)
	if err != nil {
		svc.log.Errorw("failed to hash password", "err", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := svc.writer.Create(ctx, username, email, hashed)
	if err != nil {
		var uv *repositories.UniqueViolationError
		if errors.As(err, &uv) && uv.Field != "" {
			svc.log.Infow("user already exists", "field", uv.Field)
			return nil, &DuplicateUserError{Field: uv.Field}
		}
		svc.log.Errorw("failed to create user", "err", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user by email and returns an access token.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AccessToken, error) {
	user, err := svc.reader.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			svc.log.Infow("login failed", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		svc.log.Errorw("failed to get user", "err", err)
		return nil, fmt.Errorf("get user: %w", err)
	}

	ok, err := svc.hasher.Verify(ctx, password, user.HashedPassword)
	if err != nil {
		svc.log.Errorw("failed to verify password", "user_id", user.ID, "err", err)
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		svc.log.Infow("login failed", "reason", "wrong password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := svc.tokens.Issue(ctx, user.ID)
	if err != nil {
		svc.log.Errorw("failed to issue token", "user_id", user.ID, "err", err)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &models.AccessToken{AccessToken: token, Type: jwt.Scheme}, nil
}
