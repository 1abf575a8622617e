package repository

import (
	"context"

	"github.com/movievault/movievault/internal/model"
)

// MovieRepository provides catalog storage.
type MovieRepository interface {
	// Create inserts a movie and returns it with the generated ID.
	Create(ctx context.Context, m *model.Movie) (*model.Movie, error)
	// GetByID loads a movie by ID.
	GetByID(ctx context.Context, id int64) (*model.Movie, error)
	// List returns movies matching the filter, newest first.
	List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error)
	// ListTop returns up to limit movies ordered by rating descending,
	// optionally restricted to a genre.
	ListTop(ctx context.Context, limit int32, genre string) ([]model.Movie, error)
	// Update applies a partial update and returns the updated movie.
	Update(ctx context.Context, id int64, upd model.MovieUpdate) (*model.Movie, error)
	// Delete removes a movie.
	Delete(ctx context.Context, id int64) error
	// ListRatings returns every rating in the catalog, for aggregation.
	ListRatings(ctx context.Context) ([]float64, error)
}
