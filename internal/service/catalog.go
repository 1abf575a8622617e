package service

import (
	"context"
	"fmt"

	"github.com/movievault/movievault/internal/model"
	"github.com/movievault/movievault/internal/repository"
)

// CatalogService defines movie catalog operations.
type CatalogService interface {
	Create(ctx context.Context, m model.Movie) (*model.Movie, error)
	Get(ctx context.Context, id int64) (*model.Movie, error)
	List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error)
	Top(ctx context.Context, limit int32, genre string) ([]model.Movie, error)
	Update(ctx context.Context, id int64, upd model.MovieUpdate) (*model.Movie, error)
	Delete(ctx context.Context, id int64) error
	// Ratings returns every catalog rating, the input sample for
	// collection statistics.
	Ratings(ctx context.Context) ([]float64, error)
}

type CatalogServiceImpl struct {
	repo repository.MovieRepository
}

// NewCatalogService constructs CatalogService.
func NewCatalogService(repo repository.MovieRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{repo: repo}
}

func validateRating(r float64) error {
	if r < 0 || r > 10 {
		return fmt.Errorf("validation: rating %v out of [0,10]", r)
	}
	return nil
}

// Create validates and stores a new movie.
func (s *CatalogServiceImpl) Create(ctx context.Context, m model.Movie) (*model.Movie, error) {
	if m.Title == "" {
		return nil, fmt.Errorf("validation: empty title")
	}
	if err := validateRating(m.Rating); err != nil {
		return nil, err
	}
	if m.ReleaseYear < 1888 || m.ReleaseYear > 2100 {
		return nil, fmt.Errorf("validation: release year %d", m.ReleaseYear)
	}
	return s.repo.Create(ctx, &m)
}

// Get returns a movie by ID.
func (s *CatalogServiceImpl) Get(ctx context.Context, id int64) (*model.Movie, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns movies matching the filter.
func (s *CatalogServiceImpl) List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error) {
	return s.repo.List(ctx, f)
}

// Top returns the highest-rated movies.
func (s *CatalogServiceImpl) Top(ctx context.Context, limit int32, genre string) ([]model.Movie, error) {
	return s.repo.ListTop(ctx, limit, genre)
}

// Update validates and applies a partial update.
func (s *CatalogServiceImpl) Update(ctx context.Context, id int64, upd model.MovieUpdate) (*model.Movie, error) {
	if upd.Title != nil && *upd.Title == "" {
		return nil, fmt.Errorf("validation: empty title")
	}
	if upd.Rating != nil {
		if err := validateRating(*upd.Rating); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, upd)
}

// Delete removes a movie.
func (s *CatalogServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Ratings returns all catalog ratings.
func (s *CatalogServiceImpl) Ratings(ctx context.Context) ([]float64, error) {
	return s.repo.ListRatings(ctx)
}
