package grpcserver

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/movievault/movievault/gen/go/movievault/v1"
	"github.com/movievault/movievault/internal/errs"
	"github.com/movievault/movievault/internal/model"
	"github.com/movievault/movievault/internal/stats"
)

type fakeAuth struct {
	registerErr error
	loginErr    error
	validateErr error
	logoutErr   error
	revoked     bool
	session     model.Session
	claims      model.TokenClaims
}

func (f *fakeAuth) Register(_ context.Context, username, _, role string) (model.Session, error) {
	if f.registerErr != nil {
		return model.Session{}, f.registerErr
	}
	s := f.session
	s.Username = username
	if role != "" {
		s.Role = role
	}
	return s, nil
}

func (f *fakeAuth) LoginWithIP(_ context.Context, username, _, _ string) (model.Session, error) {
	if f.loginErr != nil {
		return model.Session{}, f.loginErr
	}
	s := f.session
	s.Username = username
	return s, nil
}

func (f *fakeAuth) Validate(_ context.Context, _ string) (model.TokenClaims, error) {
	if f.validateErr != nil {
		return model.TokenClaims{}, f.validateErr
	}
	return f.claims, nil
}

func (f *fakeAuth) Logout(_ context.Context, _ string) (bool, error) {
	if f.logoutErr != nil {
		return false, f.logoutErr
	}
	return f.revoked, nil
}

type fakeCatalog struct {
	movies  map[int64]*model.Movie
	ratings []float64
}

func newFakeCatalog(ms ...model.Movie) *fakeCatalog {
	f := &fakeCatalog{movies: map[int64]*model.Movie{}}
	for i := range ms {
		m := ms[i]
		f.movies[m.ID] = &m
		f.ratings = append(f.ratings, m.Rating)
	}
	return f
}

func (f *fakeCatalog) Create(_ context.Context, m model.Movie) (*model.Movie, error) {
	m.ID = int64(len(f.movies) + 1)
	f.movies[m.ID] = &m
	return &m, nil
}

func (f *fakeCatalog) Get(_ context.Context, id int64) (*model.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return m, nil
}

func (f *fakeCatalog) List(_ context.Context, _ model.MovieFilter) ([]model.Movie, error) {
	var out []model.Movie
	for _, m := range f.movies {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeCatalog) Top(_ context.Context, _ int32, _ string) ([]model.Movie, error) {
	return f.List(context.Background(), model.MovieFilter{})
}

func (f *fakeCatalog) Update(_ context.Context, id int64, upd model.MovieUpdate) (*model.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if upd.Rating != nil {
		m.Rating = *upd.Rating
	}
	return m, nil
}

func (f *fakeCatalog) Delete(_ context.Context, id int64) error {
	if _, ok := f.movies[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.movies, id)
	return nil
}

func (f *fakeCatalog) Ratings(_ context.Context) ([]float64, error) {
	return f.ratings, nil
}

// fakeStats serves everything locally and reports the source it was given.
type fakeStats struct {
	source model.StatsSource
}

func (f *fakeStats) Summary(_ context.Context, ratings []float64) (model.RatingSummary, model.StatsSource, error) {
	return stats.Summarize(ratings), f.source, nil
}

func (f *fakeStats) Distribution(_ context.Context, ratings []float64) (model.RatingDistribution, model.StatsSource, error) {
	return stats.Distribute(ratings), f.source, nil
}

func (f *fakeStats) Tier(_ context.Context, rating float64) (model.RatingTier, model.StatsSource, error) {
	return stats.Tier(rating), f.source, nil
}

func (f *fakeStats) Age(_ context.Context, releaseYear int32) (model.MovieAge, model.StatsSource, error) {
	return stats.YearsAgo(releaseYear, int32(time.Now().Year())), f.source, nil
}

func okSession() model.Session {
	return model.Session{
		Token:     "tok-1",
		Username:  "u",
		Role:      "User",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if status.Code(err) != code {
		t.Fatalf("code = %v, want %v (err: %v)", status.Code(err), code, err)
	}
}

func authCtx(token string) context.Context {
	md := metadata.Pairs("authorization", "Bearer "+token)
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestRegister(t *testing.T) {
	t.Parallel()
	srv := New(&fakeAuth{session: okSession()}, newFakeCatalog(), &fakeStats{source: model.StatsSourceLocal})

	resp, err := srv.Register(context.Background(), &pb.RegisterRequest{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.GetToken() == "" || resp.GetUsername() != "alice" || resp.GetRole() != "User" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	_, err = srv.Register(context.Background(), &pb.RegisterRequest{Username: "", Password: "pw"})
	wantCode(t, err, codes.InvalidArgument)

	srv = New(&fakeAuth{registerErr: errs.ErrAlreadyExists}, newFakeCatalog(), &fakeStats{})
	_, err = srv.Register(context.Background(), &pb.RegisterRequest{Username: "alice", Password: "pw"})
	wantCode(t, err, codes.AlreadyExists)
}

func TestLogin_ErrorMapping(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"bad credentials", errs.ErrUnauthorized, codes.Unauthenticated},
		{"rate limited", errs.ErrRateLimited, codes.ResourceExhausted},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := New(&fakeAuth{loginErr: c.err}, newFakeCatalog(), &fakeStats{})
			_, err := srv.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: "p"})
			wantCode(t, err, c.code)
		})
	}
}

func TestLogout(t *testing.T) {
	t.Parallel()
	srv := New(&fakeAuth{revoked: true}, newFakeCatalog(), &fakeStats{})

	resp, err := srv.Logout(context.Background(), &pb.LogoutRequest{Token: "tok"})
	if err != nil || !resp.GetRevoked() {
		t.Fatalf("Logout: resp=%+v err=%v", resp, err)
	}

	// Second revocation reports revoked=false but still succeeds.
	srv = New(&fakeAuth{revoked: false}, newFakeCatalog(), &fakeStats{})
	resp, err = srv.Logout(context.Background(), &pb.LogoutRequest{Token: "tok"})
	if err != nil || resp.GetRevoked() {
		t.Fatalf("repeat Logout: resp=%+v err=%v", resp, err)
	}

	_, err = srv.Logout(context.Background(), &pb.LogoutRequest{})
	wantCode(t, err, codes.InvalidArgument)

	srv = New(&fakeAuth{logoutErr: errs.ErrTokenInvalid}, newFakeCatalog(), &fakeStats{})
	_, err = srv.Logout(context.Background(), &pb.LogoutRequest{Token: "garbage"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestValidate_RejectionIsNotAnError(t *testing.T) {
	t.Parallel()
	for _, e := range []error{errs.ErrTokenInvalid, errs.ErrTokenExpiredOrRevoked} {
		srv := New(&fakeAuth{validateErr: e}, newFakeCatalog(), &fakeStats{})
		resp, err := srv.Validate(context.Background(), &pb.ValidateRequest{Token: "tok"})
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if resp.GetValid() {
			t.Fatalf("want valid=false for %v", e)
		}
	}

	srv := New(&fakeAuth{claims: model.TokenClaims{Username: "alice", Role: "Admin"}}, newFakeCatalog(), &fakeStats{})
	resp, err := srv.Validate(context.Background(), &pb.ValidateRequest{Token: "tok"})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !resp.GetValid() || resp.GetUsername() != "alice" || resp.GetRole() != "Admin" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateMovie_RequiresBearer(t *testing.T) {
	t.Parallel()
	srv := New(&fakeAuth{claims: model.TokenClaims{Username: "u"}}, newFakeCatalog(), &fakeStats{})
	req := &pb.CreateMovieRequest{Title: "Heat", ReleaseYear: 1995, Rating: 8.3}

	_, err := srv.CreateMovie(context.Background(), req)
	wantCode(t, err, codes.Unauthenticated)

	m, err := srv.CreateMovie(authCtx("tok"), req)
	if err != nil {
		t.Fatalf("CreateMovie: %v", err)
	}
	if m.GetId() == 0 || m.GetTitle() != "Heat" {
		t.Fatalf("unexpected movie: %+v", m)
	}

	// A revoked token is rejected even though it parses.
	srv = New(&fakeAuth{validateErr: errs.ErrTokenExpiredOrRevoked}, newFakeCatalog(), &fakeStats{})
	_, err = srv.CreateMovie(authCtx("tok"), req)
	wantCode(t, err, codes.Unauthenticated)
}

func TestGetMovie_NotFound(t *testing.T) {
	t.Parallel()
	srv := New(&fakeAuth{}, newFakeCatalog(), &fakeStats{})
	_, err := srv.GetMovie(context.Background(), &pb.GetMovieRequest{Id: 42})
	wantCode(t, err, codes.NotFound)
}

func TestDeleteMovie(t *testing.T) {
	t.Parallel()
	srv := New(
		&fakeAuth{claims: model.TokenClaims{Username: "u"}},
		newFakeCatalog(model.Movie{ID: 1, Title: "Heat", Rating: 8.3}),
		&fakeStats{},
	)

	if _, err := srv.DeleteMovie(authCtx("tok"), &pb.DeleteMovieRequest{Id: 1}); err != nil {
		t.Fatalf("DeleteMovie: %v", err)
	}
	_, err := srv.DeleteMovie(authCtx("tok"), &pb.DeleteMovieRequest{Id: 1})
	wantCode(t, err, codes.NotFound)
}

func TestCollectionStats(t *testing.T) {
	t.Parallel()
	srv := New(
		&fakeAuth{},
		newFakeCatalog(
			model.Movie{ID: 1, Rating: 9.0},
			model.Movie{ID: 2, Rating: 6.5},
			model.Movie{ID: 3, Rating: 2.0},
		),
		&fakeStats{source: model.StatsSourceRemote},
	)

	resp, err := srv.CollectionStats(context.Background(), &pb.CollectionStatsRequest{})
	if err != nil {
		t.Fatalf("CollectionStats: %v", err)
	}
	if resp.GetCount() != 3 || resp.GetAverage() != 5.83 {
		t.Fatalf("count/average = %d/%v", resp.GetCount(), resp.GetAverage())
	}
	d := resp.GetDistribution()
	if d.GetExcellent() != 1 || d.GetGood() != 1 || d.GetPoor() != 1 {
		t.Fatalf("distribution = %+v", d)
	}
	if resp.GetSource() != "remote" {
		t.Fatalf("source = %q, want remote", resp.GetSource())
	}
}

func TestMovieTier(t *testing.T) {
	t.Parallel()
	srv := New(
		&fakeAuth{},
		newFakeCatalog(model.Movie{ID: 7, Title: "Heat", Rating: 8.3}),
		&fakeStats{source: model.StatsSourceLocal},
	)

	resp, err := srv.MovieTier(context.Background(), &pb.MovieTierRequest{MovieId: 7})
	if err != nil {
		t.Fatalf("MovieTier: %v", err)
	}
	if resp.GetTier() != "Excellent" || resp.GetMovieId() != 7 || resp.GetSource() != "local" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	_, err = srv.MovieTier(context.Background(), &pb.MovieTierRequest{MovieId: 99})
	wantCode(t, err, codes.NotFound)
}

func TestMovieAge(t *testing.T) {
	t.Parallel()
	release := int32(time.Now().Year() - 31)
	srv := New(
		&fakeAuth{},
		newFakeCatalog(model.Movie{ID: 7, Title: "Heat", ReleaseYear: release, Rating: 8.3}),
		&fakeStats{source: model.StatsSourceLocal},
	)

	resp, err := srv.MovieAge(context.Background(), &pb.MovieAgeRequest{MovieId: 7})
	if err != nil {
		t.Fatalf("MovieAge: %v", err)
	}
	if resp.GetMovieId() != 7 || resp.GetReleaseYear() != release {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.GetYearsAgo() != 31 || resp.GetMessage() != "31 years ago" {
		t.Fatalf("years/message = %d/%q", resp.GetYearsAgo(), resp.GetMessage())
	}
	if resp.GetSource() != "local" {
		t.Fatalf("source = %q, want local", resp.GetSource())
	}

	_, err = srv.MovieAge(context.Background(), &pb.MovieAgeRequest{MovieId: 99})
	wantCode(t, err, codes.NotFound)
}

func TestBearerTokenFromMD(t *testing.T) {
	t.Parallel()

	if _, err := bearerTokenFromMD(context.Background()); err == nil {
		t.Fatalf("want error without metadata")
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic abc"))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error for non-bearer scheme")
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error for empty bearer value")
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "bearer tok-lower"))
	tok, err := bearerTokenFromMD(ctx)
	if err != nil || tok != "tok-lower" {
		t.Fatalf("lowercase scheme: tok=%q err=%v", tok, err)
	}

	tok, err = bearerTokenFromMD(authCtx("tok-1"))
	if err != nil || tok != "tok-1" {
		t.Fatalf("tok=%q err=%v", tok, err)
	}
}
