package jwt

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Scheme is the only accepted Authorization scheme.
const Scheme = "Bearer"

// Defaults applied by New.
const (
	DefaultAlgorithm = "RS256"
	DefaultLifetime  = 15 * time.Minute
	DefaultIssuer    = "gw-threat-intel"
	DefaultAudience  = "all"
)

var (
	ErrTokenSigning           = errors.New("failed to sign token")
	ErrTokenExpired           = errors.New("token has expired")
	ErrTokenInvalid           = errors.New("token is invalid")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidAuthScheme      = errors.New("invalid authentication scheme")
	ErrUnsupportedAlgorithm   = errors.New("unsupported signing algorithm")
	ErrInvalidLifetime        = errors.New("token lifetime must be positive")
	ErrMissingAudience        = errors.New("token audience must not be empty")
)

var signingMethods = map[string]jwt.SigningMethod{
	"RS256": jwt.SigningMethodRS256,
	"RS384": jwt.SigningMethodRS384,
	"RS512": jwt.SigningMethodRS512,
	"PS256": jwt.SigningMethodPS256,
	"PS384": jwt.SigningMethodPS384,
	"PS512": jwt.SigningMethodPS512,
}

// Claims are the claims carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"-"`
}

// JWT issues and verifies RSA signed access tokens.
type JWT struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	algorithm  string
	method     jwt.SigningMethod
	lifetime   time.Duration
	issuer     string
	audience   []string
	now        func() time.Time
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithPrivateKey sets the signing key. The public half is used for
// verification unless WithPublicKey overrides it.
func WithPrivateKey(key *rsa.PrivateKey) Opt {
	return func(j *JWT) {
		j.privateKey = key
	}
}

// WithPublicKey sets the verification key.
func WithPublicKey(key *rsa.PublicKey) Opt {
	return func(j *JWT) {
		j.publicKey = key
	}
}

// WithAlgorithm sets the signing algorithm, e.g. RS256 or PS512.
func WithAlgorithm(alg string) Opt {
	return func(j *JWT) {
		j.algorithm = strings.ToUpper(alg)
	}
}

func WithLifetime(d time.Duration) Opt {
	return func(j *JWT) {
		j.lifetime = d
	}
}

func WithIssuer(iss string) Opt {
	return func(j *JWT) {
		j.issuer = iss
	}
}

func WithAudience(aud ...string) Opt {
	return func(j *JWT) {
		j.audience = aud
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a JWT instance.
func New(opts ...Opt) (*JWT, error) {
	j := &JWT{
		algorithm: DefaultAlgorithm,
		lifetime:  DefaultLifetime,
		issuer:    DefaultIssuer,
		audience:  []string{DefaultAudience},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}

	method, ok := signingMethods[j.algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, j.algorithm)
	}
	j.method = method

	if j.lifetime <= 0 {
		return nil, ErrInvalidLifetime
	}
	if len(j.audience) == 0 || j.audience[0] == "" {
		return nil, ErrMissingAudience
	}
	if j.publicKey == nil && j.privateKey != nil {
		j.publicKey = &j.privateKey.PublicKey
	}

	return j, nil
}

// Issue signs a new access token for userID.
func (j *JWT) Issue(ctx context.Context, userID int64) (string, error) {
	if j.privateKey == nil {
		return "", fmt.Errorf("%w: private key is not configured", ErrTokenSigning)
	}

	now := j.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Audience:  jwt.ClaimStrings(j.audience),
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.lifetime)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(j.method, claims).SignedString(j.privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenSigning, err)
	}

	return signed, nil
}

// Verify checks the signature and registered claims of tokenString.
// Expired tokens yield ErrTokenExpired, every other failure ErrTokenInvalid.
func (j *JWT) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	if j.publicKey == nil {
		return nil, fmt.Errorf("%w: public key is not configured", ErrTokenInvalid)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{j.method.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience[0]),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(j.now),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", ErrTokenInvalid)
	}
	claims.UserID = userID

	return claims, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 {
		return "", ErrAuthenticationRequired
	}
	if !strings.EqualFold(parts[0], Scheme) {
		return "", ErrInvalidAuthScheme
	}

	return parts[1], nil
}
