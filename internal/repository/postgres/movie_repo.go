package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/movievault/movievault/internal/errs"
	"github.com/movievault/movievault/internal/model"
)

// MovieRepo implements MovieRepository using PostgreSQL.
type MovieRepo struct{ db *DB }

// NewMovieRepo constructs a movie repository.
func NewMovieRepo(db *DB) *MovieRepo { return &MovieRepo{db: db} }

const movieCols = `id, title, description, release_year, genre, rating, created_at`

func scanMovie(row pgx.Row) (*model.Movie, error) {
	var m model.Movie
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.ReleaseYear, &m.Genre, &m.Rating, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a movie and returns the stored row.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) (*model.Movie, error) {
	const q = `
INSERT INTO movies (title, description, release_year, genre, rating)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + movieCols
	row := r.db.Pool.QueryRow(ctx, q, m.Title, m.Description, m.ReleaseYear, m.Genre, m.Rating)
	return scanMovie(row)
}

// GetByID selects a movie by ID.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	const q = `SELECT ` + movieCols + ` FROM movies WHERE id=$1`
	m, err := scanMovie(r.db.Pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return m, nil
}

// List selects movies matching the filter, newest first. Empty filter
// fields are not applied.
func (r *MovieRepo) List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error) {
	const q = `
SELECT ` + movieCols + ` FROM movies
WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
  AND ($2 = '' OR genre ILIKE '%' || $2 || '%')
  AND ($3 = 0 OR release_year = $3)
ORDER BY id DESC`
	rows, err := r.db.Pool.Query(ctx, q, f.Title, f.Genre, f.ReleaseYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMovies(rows)
}

// ListTop selects up to limit movies by rating descending.
func (r *MovieRepo) ListTop(ctx context.Context, limit int32, genre string) ([]model.Movie, error) {
	if limit <= 0 {
		limit = 10
	}
	const q = `
SELECT ` + movieCols + ` FROM movies
WHERE ($2 = '' OR genre = $2)
ORDER BY rating DESC, id
LIMIT $1`
	rows, err := r.db.Pool.Query(ctx, q, limit, genre)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMovies(rows)
}

// Update locks the row, applies the patch and writes it back in one
// transaction.
func (r *MovieRepo) Update(ctx context.Context, id int64, upd model.MovieUpdate) (m *model.Movie, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
			m = nil
		}
	}()

	const sel = `SELECT ` + movieCols + ` FROM movies WHERE id=$1 FOR UPDATE`
	m, scanErr := scanMovie(tx.QueryRow(ctx, sel, id))
	if scanErr != nil {
		if errors.Is(scanErr, context.Canceled) {
			return nil, scanErr
		}
		return nil, errs.ErrNotFound
	}

	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Description != nil {
		m.Description = *upd.Description
	}
	if upd.ReleaseYear != nil {
		m.ReleaseYear = *upd.ReleaseYear
	}
	if upd.Genre != nil {
		m.Genre = *upd.Genre
	}
	if upd.Rating != nil {
		m.Rating = *upd.Rating
	}

	const updQ = `
UPDATE movies SET title=$2, description=$3, release_year=$4, genre=$5, rating=$6
WHERE id=$1`
	if _, err = tx.Exec(ctx, updQ, id, m.Title, m.Description, m.ReleaseYear, m.Genre, m.Rating); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a movie row.
func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM movies WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListRatings returns every catalog rating for aggregation.
func (r *MovieRepo) ListRatings(ctx context.Context) ([]float64, error) {
	const q = `SELECT rating FROM movies ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func collectMovies(rows pgx.Rows) ([]model.Movie, error) {
	var out []model.Movie
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.ReleaseYear, &m.Genre, &m.Rating, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
