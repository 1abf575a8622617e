// Package service contains application services for authentication, the
// movie catalog, and rating statistics.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	pkgcrypto "github.com/movievault/movievault/internal/crypto"
	"github.com/movievault/movievault/internal/errs"
	"github.com/movievault/movievault/internal/limiter"
	"github.com/movievault/movievault/internal/model"
	"github.com/movievault/movievault/internal/repository"
)

// DefaultRole is assigned when registration does not name a role.
const DefaultRole = "User"

// TokenParams is the immutable signing configuration shared by issuance
// and validation. Constructed once in main and passed in; never global.
type TokenParams struct {
	Key      []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

// AuthService defines credential and bearer-token operations.
type AuthService interface {
	// Register creates an account and issues its first token.
	Register(ctx context.Context, username, password, role string) (model.Session, error)
	// LoginWithIP applies rate-limiting and authenticates the user.
	LoginWithIP(ctx context.Context, username, password, ip string) (model.Session, error)
	// Validate checks signature, embedded expiry, and the revocation ledger.
	Validate(ctx context.Context, token string) (model.TokenClaims, error)
	// Logout revokes a token. The bool reports whether an active ledger row
	// was flipped; both outcomes are success.
	Logout(ctx context.Context, token string) (bool, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	params TokenParams
	lim    limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, params TokenParams, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tokens: tokens, params: params, lim: lim}
}

// vaultClaims is the signed claim set: registered claims plus the role.
type vaultClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Register creates a new user record and issues a token for it.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password, role string) (model.Session, error) {
	if username == "" || password == "" {
		return model.Session{}, errors.New("empty username/password")
	}
	if role == "" {
		role = DefaultRole
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return model.Session{}, err
	}
	salt, err := pkgcrypto.NewSalt()
	if err != nil {
		return model.Session{}, err
	}
	u := &model.User{
		ID:       uid,
		Username: username,
		PwdHash:  pkgcrypto.HashPassword([]byte(password), salt),
		Salt:     salt,
		Role:     role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return model.Session{}, err
	}
	return s.issue(ctx, username, role)
}

// LoginWithIP authenticates with rate limiting by (username, ip).
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, username, password, ip string) (model.Session, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, username, ipHash)
	if err != nil {
		return model.Session{}, err
	}
	if !allowed {
		return model.Session{}, errs.ErrRateLimited
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), u.Salt, u.PwdHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, username, ipHash); ferr == nil && blocked {
			return model.Session{}, errs.ErrRateLimited
		}
		// unknown user and wrong password are indistinguishable
		return model.Session{}, errs.ErrUnauthorized
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, username, ipHash)

	return s.issue(ctx, username, u.Role)
}

// issue mints a signed HS256 token and persists its ledger row. A token is
// only returned once the ledger write succeeded.
func (s *AuthServiceImpl) issue(ctx context.Context, username, role string) (model.Session, error) {
	now := time.Now()
	exp := now.Add(s.params.TTL)
	jti, err := uuid.NewV4()
	if err != nil {
		return model.Session{}, err
	}
	claims := vaultClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.params.Issuer,
			Audience:  jwt.ClaimStrings{s.params.Audience},
			ID:        jti.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.params.Key)
	if err != nil {
		return model.Session{}, err
	}

	rowID, err := uuid.NewV4()
	if err != nil {
		return model.Session{}, err
	}
	row := &model.IssuedToken{
		ID:        rowID,
		Token:     signed,
		Username:  username,
		ExpiresAt: exp,
		Active:    true,
	}
	if err := s.tokens.Record(ctx, row); err != nil {
		return model.Session{}, fmt.Errorf("record issuance: %w", err)
	}

	return model.Session{Token: signed, Username: username, Role: role, ExpiresAt: exp}, nil
}

// Validate checks the token itself and then the revocation ledger. Both
// must pass: a self-consistent token that was logged out fails here.
func (s *AuthServiceImpl) Validate(ctx context.Context, token string) (model.TokenClaims, error) {
	claims, err := s.parseAndVerify(token, true)
	if err != nil {
		return model.TokenClaims{}, err
	}

	// The ledger is authoritative for revocation and holds its own expiry
	// copy; it is consulted on every validation.
	ok, err := s.tokens.IsActive(ctx, token, time.Now())
	if err != nil {
		return model.TokenClaims{}, err
	}
	if !ok {
		return model.TokenClaims{}, errs.ErrTokenExpiredOrRevoked
	}
	return claims, nil
}

// Logout revokes the token in the ledger. Garbage input fails; revoking a
// token that is already inactive (or expired, or was never recorded)
// succeeds and reports false.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) (bool, error) {
	// Signature check only: an expired token can still be logged out.
	if _, err := s.parseAndVerify(token, false); err != nil {
		return false, errs.ErrTokenInvalid
	}
	return s.tokens.Deactivate(ctx, token)
}

// parseAndVerify verifies the HS256 signature plus issuer/audience, and
// optionally the embedded time claims.
func (s *AuthServiceImpl) parseAndVerify(token string, withTimeClaims bool) (model.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.params.Issuer),
		jwt.WithAudience(s.params.Audience),
	}
	if !withTimeClaims {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	var claims vaultClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.params.Key, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenClaims{}, errs.ErrTokenExpiredOrRevoked
		}
		return model.TokenClaims{}, errs.ErrTokenInvalid
	}
	if !parsed.Valid {
		return model.TokenClaims{}, errs.ErrTokenInvalid
	}

	out := model.TokenClaims{
		Username: claims.Subject,
		Role:     claims.Role,
		TokenID:  claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpireAt = claims.ExpiresAt.Time
	}
	return out, nil
}
