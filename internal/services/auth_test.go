package services_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-threat-intel/internal/jwt"
	"github.com/sbilibin2017/gw-threat-intel/internal/models"
	"github.com/sbilibin2017/gw-threat-intel/internal/password"
	"github.com/sbilibin2017/gw-threat-intel/internal/repositories"
	"github.com/sbilibin2017/gw-threat-intel/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := errors.New("db error")

	tests := []struct {
		name      string
		hashErr   error
		writerErr error
		wantField string
		wantErr   error
	}{
		{
			name: "successful registration",
		},
		{
			name:      "duplicate username",
			writerErr: &repositories.UniqueViolationError{Field: "username", Constraint: "auth__user_username_key"},
			wantField: "username",
		},
		{
			name:      "duplicate email",
			writerErr: &repositories.UniqueViolationError{Field: "email", Constraint: "auth__user_email_key"},
			wantField: "email",
		},
		{
			name:      "unknown unique constraint propagates",
			writerErr: &repositories.UniqueViolationError{Constraint: "auth__user_other_key", Err: dbErr},
			wantErr:   dbErr,
		},
		{
			name:      "other integrity error propagates",
			writerErr: dbErr,
			wantErr:   dbErr,
		},
		{
			name:    "hash error",
			hashErr: password.ErrPasswordTooLong,
			wantErr: password.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockHasher := services.NewMockPasswordHasher(ctrl)
			mockTokens := services.NewMockTokenIssuer(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockHasher, mockTokens, zap.NewNop().Sugar())

			mockHasher.EXPECT().
				Hash(gomock.Any(), "pass123").
				Return("hashed", tt.hashErr)

			if tt.hashErr == nil {
				var created *models.UserDB
				if tt.writerErr == nil {
					created = &models.UserDB{ID: 1, Username: "alice", Email: "alice@example.com", IsActive: true}
				}
				mockWriter.EXPECT().
					Create(gomock.Any(), "alice", "alice@example.com", "hashed").
					Return(created, tt.writerErr)
			}

			user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123")

			switch {
			case tt.wantField != "":
				var dup *services.DuplicateUserError
				require.ErrorAs(t, err, &dup)
				assert.Equal(t, tt.wantField, dup.Field)
				assert.Equal(t, "user with this "+tt.wantField+" already exists", dup.Error())
				assert.Nil(t, user)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				var dup *services.DuplicateUserError
				assert.False(t, errors.As(err, &dup))
				assert.Nil(t, user)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(1), user.ID)
				assert.True(t, user.IsActive)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Email: "bob@example.com", HashedPassword: "hashed", IsActive: true}
	dbErr := errors.New("db error")

	tests := []struct {
		name      string
		setup     func(r *services.MockUserReader, h *services.MockPasswordHasher, tk *services.MockTokenIssuer)
		wantToken string
		wantErr   error
	}{
		{
			name: "success",
			setup: func(r *services.MockUserReader, h *services.MockPasswordHasher, tk *services.MockTokenIssuer) {
				r.EXPECT().GetActiveByEmail(gomock.Any(), "bob@example.com").Return(user, nil)
				h.EXPECT().Verify(gomock.Any(), "pw", "hashed").Return(true, nil)
				tk.EXPECT().Issue(gomock.Any(), int64(7)).Return("token123", nil)
			},
			wantToken: "token123",
		},
		{
			name: "unknown email",
			setup: func(r *services.MockUserReader, h *services.MockPasswordHasher, tk *services.MockTokenIssuer) {
				r.EXPECT().GetActiveByEmail(gomock.Any(), "bob@example.com").Return(nil, repositories.ErrNotFound)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(r *services.MockUserReader, h *services.MockPasswordHasher, tk *services.MockTokenIssuer) {
				r.EXPECT().GetActiveByEmail(gomock.Any(), "bob@example.com").Return(user, nil)
				h.EXPECT().Verify(gomock.Any(), "pw", "hashed").Return(false, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "reader error",
			setup: func(r *services.MockUserReader, h *services.MockPasswordHasher, tk *services.MockTokenIssuer) {
				r.EXPECT().GetActiveByEmail(gomock.Any(), "bob@example.com").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "malformed stored hash",
			setup: func(r *services.MockUserReader, h *services.MockPasswordHasher, tk *services.MockTokenIssuer) {
				r.EXPECT().GetActiveByEmail(gomock.Any(), "bob@example.com").Return(user, nil)
				h.EXPECT().Verify(gomock.Any(), "pw", "hashed").Return(false, password.ErrMalformedHash)
			},
			wantErr: password.ErrMalformedHash,
		},
		{
			name: "signing error",
			setup: func(r *services.MockUserReader, h *services.MockPasswordHasher, tk *services.MockTokenIssuer) {
				r.EXPECT().GetActiveByEmail(gomock.Any(), "bob@example.com").Return(user, nil)
				h.EXPECT().Verify(gomock.Any(), "pw", "hashed").Return(true, nil)
				tk.EXPECT().Issue(gomock.Any(), int64(7)).Return("", jwt.ErrTokenSigning)
			},
			wantErr: jwt.ErrTokenSigning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockHasher := services.NewMockPasswordHasher(ctrl)
			mockTokens := services.NewMockTokenIssuer(ctrl)
			tt.setup(mockReader, mockHasher, mockTokens)

			svc := services.NewAuthService(mockReader, mockWriter, mockHasher, mockTokens, zap.NewNop().Sugar())
			token, err := svc.Login(context.Background(), "bob@example.com", "pw")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token.AccessToken)
			assert.Equal(t, "Bearer", token.Type)
		})
	}
}

// memoryUsers is an in-memory user store enforcing unique usernames and emails.
type memoryUsers struct {
	mu    sync.Mutex
	next  int64
	users []*models.UserDB
}

func (m *memoryUsers) Create(ctx context.Context, username, email, hashedPassword string) (*models.UserDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return nil, &repositories.UniqueViolationError{Field: "username", Constraint: "auth__user_username_key"}
		}
		if u.Email == email {
			return nil, &repositories.UniqueViolationError{Field: "email", Constraint: "auth__user_email_key"}
		}
	}

	m.next++
	u := &models.UserDB{ID: m.next, Username: username, Email: email, HashedPassword: hashedPassword, IsActive: true}
	m.users = append(m.users, u)
	return u, nil
}

func (m *memoryUsers) GetActiveByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email && u.IsActive {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	tokens, err := jwt.New(jwt.WithPrivateKey(key))
	require.NoError(t, err)
	hasher, err := password.New(password.WithCost(bcrypt.MinCost))
	require.NoError(t, err)

	store := &memoryUsers{}
	svc := services.NewAuthService(store, store, hasher, tokens, zap.NewNop().Sugar())

	user, err := svc.Register(ctx, "alice", "a@x.io", "pw123")
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "pw123", user.HashedPassword)

	token, err := svc.Login(ctx, "a@x.io", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.Type)

	claims, err := tokens.Verify(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "other@x.io", "pw")
		var dup *services.DuplicateUserError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "username", dup.Field)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, "bob", "a@x.io", "pw")
		var dup *services.DuplicateUserError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "email", dup.Field)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, errUnknown := svc.Login(ctx, "nobody@x.io", "pw123")
		_, errWrong := svc.Login(ctx, "a@x.io", "wrong")
		assert.Equal(t, services.ErrInvalidCredentials, errUnknown)
		assert.Equal(t, errUnknown, errWrong)
	})
}
