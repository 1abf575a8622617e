// Package grpcserver exposes the MovieVault gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "github.com/movievault/movievault/gen/go/movievault/v1"
	"github.com/movievault/movievault/internal/errs"
	"github.com/movievault/movievault/internal/model"
	"github.com/movievault/movievault/internal/service"
)

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedMovieVaultServer
	auth    service.AuthService
	catalog service.CatalogService
	stats   service.StatsService
}

// New constructs a gRPC server with injected services.
func New(auth service.AuthService, catalog service.CatalogService, stats service.StatsService) *Server {
	return &Server{auth: auth, catalog: catalog, stats: stats}
}

// --- Auth ---

// Register creates a new user account and returns its first token.
func (s *Server) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	if req.GetUsername() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty username/password")
	}
	sess, err := s.auth.Register(ctx, req.GetUsername(), req.GetPassword(), req.GetRole())
	if err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "username taken")
		}
		return nil, status.Errorf(codes.Internal, "register: %v", err)
	}
	return sessionResponse(sess), nil
}

// Login authenticates a user and returns a fresh token.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	sess, err := s.auth.LoginWithIP(ctx, req.GetUsername(), req.GetPassword(), remoteIP(ctx))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			return nil, status.Error(codes.Unauthenticated, "bad credentials")
		case errors.Is(err, errs.ErrRateLimited):
			return nil, status.Error(codes.ResourceExhausted, "rate limited")
		default:
			return nil, status.Errorf(codes.Internal, "login: %v", err)
		}
	}
	return sessionResponse(sess), nil
}

// Logout revokes a token. Revoking an already-revoked token succeeds with
// revoked=false.
func (s *Server) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if req.GetToken() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty token")
	}
	revoked, err := s.auth.Logout(ctx, req.GetToken())
	if err != nil {
		if errors.Is(err, errs.ErrTokenInvalid) {
			return nil, status.Error(codes.InvalidArgument, "malformed token")
		}
		return nil, status.Errorf(codes.Internal, "logout: %v", err)
	}
	return &pb.LogoutResponse{Revoked: revoked}, nil
}

// Validate reports whether a token is currently accepted. Invalid tokens
// are a negative answer, not an error.
func (s *Server) Validate(ctx context.Context, req *pb.ValidateRequest) (*pb.ValidateResponse, error) {
	if req.GetToken() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty token")
	}
	claims, err := s.auth.Validate(ctx, req.GetToken())
	if err != nil {
		if errors.Is(err, errs.ErrTokenInvalid) || errors.Is(err, errs.ErrTokenExpiredOrRevoked) {
			return &pb.ValidateResponse{Valid: false}, nil
		}
		return nil, status.Errorf(codes.Internal, "validate: %v", err)
	}
	return &pb.ValidateResponse{Valid: true, Username: claims.Username, Role: claims.Role}, nil
}

// --- Catalog ---

// CreateMovie stores a new catalog entry. Requires a valid bearer token.
func (s *Server) CreateMovie(ctx context.Context, req *pb.CreateMovieRequest) (*pb.Movie, error) {
	if _, err := s.requireAuth(ctx); err != nil {
		return nil, err
	}
	m, err := s.catalog.Create(ctx, model.Movie{
		Title:       req.GetTitle(),
		Description: req.GetDescription(),
		ReleaseYear: req.GetReleaseYear(),
		Genre:       req.GetGenre(),
		Rating:      req.GetRating(),
	})
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "create movie: %v", err)
	}
	return movieResponse(m), nil
}

// GetMovie returns a catalog entry by id.
func (s *Server) GetMovie(ctx context.Context, req *pb.GetMovieRequest) (*pb.Movie, error) {
	m, err := s.catalog.Get(ctx, req.GetId())
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "movie not found")
		}
		return nil, status.Errorf(codes.Internal, "get movie: %v", err)
	}
	return movieResponse(m), nil
}

// UpdateMovie applies a partial update. Requires a valid bearer token.
func (s *Server) UpdateMovie(ctx context.Context, req *pb.UpdateMovieRequest) (*pb.Movie, error) {
	if _, err := s.requireAuth(ctx); err != nil {
		return nil, err
	}
	m, err := s.catalog.Update(ctx, req.GetId(), model.MovieUpdate{
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		Rating:      req.Rating,
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "movie not found")
		}
		return nil, status.Errorf(codes.InvalidArgument, "update movie: %v", err)
	}
	return movieResponse(m), nil
}

// DeleteMovie removes a catalog entry. Requires a valid bearer token.
func (s *Server) DeleteMovie(ctx context.Context, req *pb.DeleteMovieRequest) (*pb.DeleteMovieResponse, error) {
	if _, err := s.requireAuth(ctx); err != nil {
		return nil, err
	}
	if err := s.catalog.Delete(ctx, req.GetId()); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "movie not found")
		}
		return nil, status.Errorf(codes.Internal, "delete movie: %v", err)
	}
	return &pb.DeleteMovieResponse{}, nil
}

// ListMovies returns catalog entries matching the filter.
func (s *Server) ListMovies(ctx context.Context, req *pb.ListMoviesRequest) (*pb.ListMoviesResponse, error) {
	ms, err := s.catalog.List(ctx, model.MovieFilter{
		Title:       req.GetTitle(),
		Genre:       req.GetGenre(),
		ReleaseYear: req.GetReleaseYear(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list movies: %v", err)
	}
	return &pb.ListMoviesResponse{Movies: movieList(ms)}, nil
}

// TopMovies returns the highest-rated catalog entries.
func (s *Server) TopMovies(ctx context.Context, req *pb.TopMoviesRequest) (*pb.TopMoviesResponse, error) {
	ms, err := s.catalog.Top(ctx, req.GetLimit(), req.GetGenre())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "top movies: %v", err)
	}
	return &pb.TopMoviesResponse{Movies: movieList(ms)}, nil
}

// --- Stats ---

// CollectionStats aggregates every catalog rating, via the stats worker
// when reachable and locally otherwise.
func (s *Server) CollectionStats(ctx context.Context, _ *pb.CollectionStatsRequest) (*pb.CollectionStatsResponse, error) {
	ratings, err := s.catalog.Ratings(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list ratings: %v", err)
	}
	sum, src, err := s.stats.Summary(ctx, ratings)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "summary: %v", err)
	}
	dist, _, err := s.stats.Distribution(ctx, ratings)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "distribution: %v", err)
	}
	return &pb.CollectionStatsResponse{
		Count:   sum.Count,
		Average: sum.Average,
		Highest: sum.Highest,
		Lowest:  sum.Lowest,
		Distribution: &pb.Distribution{
			Excellent: dist.Excellent,
			Good:      dist.Good,
			Average:   dist.Average,
			Poor:      dist.Poor,
		},
		Source: string(src),
	}, nil
}

// MovieTier maps one movie's rating to its quality band.
func (s *Server) MovieTier(ctx context.Context, req *pb.MovieTierRequest) (*pb.MovieTierResponse, error) {
	m, err := s.catalog.Get(ctx, req.GetMovieId())
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "movie not found")
		}
		return nil, status.Errorf(codes.Internal, "get movie: %v", err)
	}
	tier, src, err := s.stats.Tier(ctx, m.Rating)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "tier: %v", err)
	}
	return &pb.MovieTierResponse{
		MovieId:     m.ID,
		Title:       m.Title,
		Rating:      m.Rating,
		Tier:        tier.Tier,
		Description: tier.Description,
		Source:      string(src),
	}, nil
}

// MovieAge says how long ago a movie was released, phrased for display.
func (s *Server) MovieAge(ctx context.Context, req *pb.MovieAgeRequest) (*pb.MovieAgeResponse, error) {
	m, err := s.catalog.Get(ctx, req.GetMovieId())
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "movie not found")
		}
		return nil, status.Errorf(codes.Internal, "get movie: %v", err)
	}
	age, src, err := s.stats.Age(ctx, m.ReleaseYear)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "age: %v", err)
	}
	return &pb.MovieAgeResponse{
		MovieId:     m.ID,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		YearsAgo:    age.Years,
		Message:     age.Message,
		Source:      string(src),
	}, nil
}

// --- helpers ---

// requireAuth extracts the bearer token and runs full validation,
// including the revocation ledger, so a logged-out token is rejected on
// every protected method.
func (s *Server) requireAuth(ctx context.Context) (model.TokenClaims, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return model.TokenClaims{}, status.Error(codes.Unauthenticated, "no bearer token")
	}
	claims, err := s.auth.Validate(ctx, tok)
	if err != nil {
		if errors.Is(err, errs.ErrTokenInvalid) || errors.Is(err, errs.ErrTokenExpiredOrRevoked) {
			return model.TokenClaims{}, status.Error(codes.Unauthenticated, "token rejected")
		}
		return model.TokenClaims{}, status.Errorf(codes.Internal, "validate: %v", err)
	}
	return claims, nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}

func remoteIP(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}

func sessionResponse(sess model.Session) *pb.AuthResponse {
	return &pb.AuthResponse{
		Token:     sess.Token,
		Username:  sess.Username,
		Role:      sess.Role,
		ExpiresAt: sess.ExpiresAt.Unix(),
	}
}

func movieResponse(m *model.Movie) *pb.Movie {
	return &pb.Movie{
		Id:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseYear: m.ReleaseYear,
		Genre:       m.Genre,
		Rating:      m.Rating,
	}
}

func movieList(ms []model.Movie) []*pb.Movie {
	out := make([]*pb.Movie, 0, len(ms))
	for i := range ms {
		out = append(out, movieResponse(&ms[i]))
	}
	return out
}
