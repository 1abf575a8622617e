package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/movievault/movievault/internal/errs"
	"github.com/movievault/movievault/internal/limiter"
	"github.com/movievault/movievault/internal/model"
	"github.com/movievault/movievault/internal/repository"
)

type fakeUsers struct {
	byName map[string]*model.User

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.byName == nil {
		f.byName = map[string]*model.User{}
	}
	if _, exists := f.byName[u.Username]; exists {
		return errs.ErrAlreadyExists
	}
	cpy := *u
	f.byName[u.Username] = &cpy
	return nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

type fakeTokens struct {
	rows map[string]*model.IssuedToken

	recordErr error
}

var _ repository.TokenRepository = (*fakeTokens)(nil)

func (f *fakeTokens) Record(_ context.Context, t *model.IssuedToken) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	if f.rows == nil {
		f.rows = map[string]*model.IssuedToken{}
	}
	cpy := *t
	f.rows[t.Token] = &cpy
	return nil
}

func (f *fakeTokens) Deactivate(_ context.Context, token string) (bool, error) {
	row, ok := f.rows[token]
	if !ok || !row.Active {
		return false, nil
	}
	row.Active = false
	return true, nil
}

func (f *fakeTokens) IsActive(_ context.Context, token string, now time.Time) (bool, error) {
	row, ok := f.rows[token]
	return ok && row.Active && row.ExpiresAt.After(now), nil
}

type fakeLimiter struct {
	allowOK  bool
	allowErr error

	failBlocked bool

	allowCalls   int
	failureCalls int
	successCalls int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (l *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	l.allowCalls++
	return l.allowOK, 0, l.allowErr
}

func (l *fakeLimiter) Success(context.Context, string, []byte) error {
	l.successCalls++
	return nil
}

func (l *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	l.failureCalls++
	return l.failBlocked, 0, nil
}

func testParams(ttl time.Duration) TokenParams {
	return TokenParams{
		Key:      []byte("test-signing-key"),
		Issuer:   "movievault",
		Audience: "movievault-clients",
		TTL:      ttl,
	}
}

func newTestAuth(ttl time.Duration) (*AuthServiceImpl, *fakeUsers, *fakeTokens) {
	users := &fakeUsers{byName: map[string]*model.User{}}
	tokens := &fakeTokens{rows: map[string]*model.IssuedToken{}}
	s := NewAuthService(users, tokens, testParams(ttl), &fakeLimiter{allowOK: true})
	return s, users, tokens
}

func TestAuth_Register_Basics(t *testing.T) {
	t.Parallel()
	s, _, tokens := newTestAuth(time.Hour)
	ctx := context.Background()

	if _, err := s.Register(ctx, "", "", ""); err == nil {
		t.Fatalf("want validation error on empty username/password")
	}

	sess, err := s.Register(ctx, "alice", "secret1", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if sess.Token == "" || sess.Username != "alice" || sess.Role != DefaultRole {
		t.Fatalf("bad session: %+v", sess)
	}
	if row, ok := tokens.rows[sess.Token]; !ok || !row.Active || row.Username != "alice" {
		t.Fatalf("issuance not recorded in ledger: %+v", row)
	}
}

func TestAuth_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()
	s, _, _ := newTestAuth(time.Hour)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "secret1", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := s.Register(ctx, "alice", "other", "")
	if !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestAuth_Register_CustomRoleCarriedInClaims(t *testing.T) {
	t.Parallel()
	s, _, _ := newTestAuth(time.Hour)
	ctx := context.Background()

	sess, err := s.Register(ctx, "root", "secret1", "Admin")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	claims, err := s.Validate(ctx, sess.Token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Role != "Admin" || claims.Username != "root" {
		t.Fatalf("bad claims: %+v", claims)
	}
}

func TestAuth_Issue_LedgerWriteFailureReturnsNoToken(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{byName: map[string]*model.User{}}
	tokens := &fakeTokens{recordErr: errors.New("db down")}
	s := NewAuthService(users, tokens, testParams(time.Hour), &fakeLimiter{allowOK: true})

	sess, err := s.Register(context.Background(), "alice", "secret1", "")
	if err == nil {
		t.Fatalf("want error when ledger write fails")
	}
	if sess.Token != "" {
		t.Fatalf("token leaked despite failed ledger write")
	}
}

func TestAuth_Login_CorrectThenWrongPassword(t *testing.T) {
	t.Parallel()
	s, _, tokens := newTestAuth(time.Hour)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "secret1", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	before := len(tokens.rows)

	sess, err := s.LoginWithIP(ctx, "alice", "secret1", "10.0.0.1:4444")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := s.Validate(ctx, sess.Token); err != nil {
		t.Fatalf("validate after login: %v", err)
	}

	_, err = s.LoginWithIP(ctx, "alice", "wrong", "10.0.0.1:4444")
	if !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if len(tokens.rows) != before+1 {
		t.Fatalf("failed login must not issue a token")
	}
}

func TestAuth_Login_UnknownUserIndistinguishable(t *testing.T) {
	t.Parallel()
	s, _, _ := newTestAuth(time.Hour)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "secret1", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	errUnknown := func() error {
		_, err := s.LoginWithIP(ctx, "nobody", "secret1", "ip")
		return err
	}()
	errWrongPwd := func() error {
		_, err := s.LoginWithIP(ctx, "alice", "wrong", "ip")
		return err
	}()
	if !errors.Is(errUnknown, errs.ErrUnauthorized) || !errors.Is(errWrongPwd, errs.ErrUnauthorized) {
		t.Fatalf("both cases must be ErrUnauthorized: %v / %v", errUnknown, errWrongPwd)
	}
}

func TestAuth_Login_RateLimited(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{byName: map[string]*model.User{}}
	tokens := &fakeTokens{rows: map[string]*model.IssuedToken{}}
	lim := &fakeLimiter{allowOK: false}
	s := NewAuthService(users, tokens, testParams(time.Hour), lim)

	_, err := s.LoginWithIP(context.Background(), "alice", "secret1", "ip")
	if !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
	if lim.allowCalls != 1 {
		t.Fatalf("limiter not consulted")
	}
}

func TestAuth_Validate_MultipleActiveTokensPerUser(t *testing.T) {
	t.Parallel()
	s, _, _ := newTestAuth(time.Hour)
	ctx := context.Background()

	first, err := s.Register(ctx, "alice", "secret1", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	second, err := s.LoginWithIP(ctx, "alice", "secret1", "ip")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if first.Token == second.Token {
		t.Fatalf("tokens must be unique per issuance")
	}
	for _, tok := range []string{first.Token, second.Token} {
		if _, err := s.Validate(ctx, tok); err != nil {
			t.Fatalf("validate: %v", err)
		}
	}
}

func TestAuth_Logout_RevokesAndIsIdempotent(t *testing.T) {
	t.Parallel()
	s, _, _ := newTestAuth(time.Hour)
	ctx := context.Background()

	sess, err := s.Register(ctx, "alice", "secret1", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	revoked, err := s.Logout(ctx, sess.Token)
	if err != nil || !revoked {
		t.Fatalf("first logout: revoked=%v err=%v", revoked, err)
	}

	// The token still verifies on its own but the ledger says no.
	_, err = s.Validate(ctx, sess.Token)
	if !errors.Is(err, errs.ErrTokenExpiredOrRevoked) {
		t.Fatalf("want ErrTokenExpiredOrRevoked after logout, got %v", err)
	}

	// Second logout is a no-op success.
	revoked, err = s.Logout(ctx, sess.Token)
	if err != nil || revoked {
		t.Fatalf("second logout: revoked=%v err=%v", revoked, err)
	}
}

func TestAuth_Logout_GarbageToken(t *testing.T) {
	t.Parallel()
	s, _, _ := newTestAuth(time.Hour)

	_, err := s.Logout(context.Background(), "not-a-jwt")
	if !errors.Is(err, errs.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}

func TestAuth_Logout_ExpiredTokenStillAccepted(t *testing.T) {
	t.Parallel()
	s, _, _ := newTestAuth(-time.Minute)

	sess, err := s.Register(context.Background(), "alice", "secret1", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	// Expiry is not checked on logout; only the signature is.
	if _, err := s.Logout(context.Background(), sess.Token); err != nil {
		t.Fatalf("logout of expired token: %v", err)
	}
}

func TestAuth_Validate_EmbeddedExpiryElapsed(t *testing.T) {
	t.Parallel()
	s, _, _ := newTestAuth(-time.Minute)

	sess, err := s.Register(context.Background(), "alice", "secret1", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err = s.Validate(context.Background(), sess.Token)
	if !errors.Is(err, errs.ErrTokenExpiredOrRevoked) {
		t.Fatalf("want ErrTokenExpiredOrRevoked for expired token, got %v", err)
	}
}

func TestAuth_Validate_WrongKeyAndGarbage(t *testing.T) {
	t.Parallel()
	s, _, tokens := newTestAuth(time.Hour)
	ctx := context.Background()

	sess, err := s.Register(ctx, "alice", "secret1", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	other := NewAuthService(&fakeUsers{}, tokens, TokenParams{
		Key:      []byte("a-different-key"),
		Issuer:   "movievault",
		Audience: "movievault-clients",
		TTL:      time.Hour,
	}, &fakeLimiter{allowOK: true})

	if _, err := other.Validate(ctx, sess.Token); !errors.Is(err, errs.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid for wrong key, got %v", err)
	}
	if _, err := s.Validate(ctx, "garbage"); !errors.Is(err, errs.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid for garbage, got %v", err)
	}
}

// Full lifecycle: register, good login, bad login, validate, logout,
// validate again.
func TestAuth_Scenario(t *testing.T) {
	t.Parallel()
	s, _, _ := newTestAuth(time.Hour)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "secret1", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	a, err := s.LoginWithIP(ctx, "alice", "secret1", "ip")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := s.LoginWithIP(ctx, "alice", "wrong", "ip"); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	claims, err := s.Validate(ctx, a.Token)
	if err != nil || claims.Username != "alice" {
		t.Fatalf("validate(A): claims=%+v err=%v", claims, err)
	}
	if _, err := s.Logout(ctx, a.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := s.Validate(ctx, a.Token); !errors.Is(err, errs.ErrTokenExpiredOrRevoked) {
		t.Fatalf("validate after logout: %v", err)
	}
}
