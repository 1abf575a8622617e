package service

import (
	"context"
	"errors"
	"testing"

	"github.com/movievault/movievault/internal/errs"
	"github.com/movievault/movievault/internal/model"
	"github.com/movievault/movievault/internal/repository"
)

type fakeMovies struct {
	byID   map[int64]*model.Movie
	nextID int64
}

var _ repository.MovieRepository = (*fakeMovies)(nil)

func newFakeMovies() *fakeMovies {
	return &fakeMovies{byID: map[int64]*model.Movie{}, nextID: 1}
}

func (f *fakeMovies) Create(_ context.Context, m *model.Movie) (*model.Movie, error) {
	cpy := *m
	cpy.ID = f.nextID
	f.nextID++
	f.byID[cpy.ID] = &cpy
	out := cpy
	return &out, nil
}

func (f *fakeMovies) GetByID(_ context.Context, id int64) (*model.Movie, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *m
	return &c, nil
}

func (f *fakeMovies) List(_ context.Context, _ model.MovieFilter) ([]model.Movie, error) {
	var out []model.Movie
	for _, m := range f.byID {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMovies) ListTop(_ context.Context, _ int32, _ string) ([]model.Movie, error) {
	return f.List(context.Background(), model.MovieFilter{})
}

func (f *fakeMovies) Update(_ context.Context, id int64, upd model.MovieUpdate) (*model.Movie, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Rating != nil {
		m.Rating = *upd.Rating
	}
	c := *m
	return &c, nil
}

func (f *fakeMovies) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeMovies) ListRatings(_ context.Context) ([]float64, error) {
	var out []float64
	for _, m := range f.byID {
		out = append(out, m.Rating)
	}
	return out, nil
}

func TestCatalog_Create_Validation(t *testing.T) {
	t.Parallel()
	s := NewCatalogService(newFakeMovies())
	ctx := context.Background()

	cases := []model.Movie{
		{Title: "", ReleaseYear: 2000, Rating: 5},
		{Title: "x", ReleaseYear: 2000, Rating: 10.1},
		{Title: "x", ReleaseYear: 2000, Rating: -0.1},
		{Title: "x", ReleaseYear: 1700, Rating: 5},
	}
	for _, c := range cases {
		if _, err := s.Create(ctx, c); err == nil {
			t.Fatalf("want validation error for %+v", c)
		}
	}

	m, err := s.Create(ctx, model.Movie{Title: "Heat", ReleaseYear: 1995, Rating: 8.3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ID == 0 {
		t.Fatalf("missing generated id")
	}
}

func TestCatalog_Update_Validation(t *testing.T) {
	t.Parallel()
	s := NewCatalogService(newFakeMovies())
	ctx := context.Background()

	m, err := s.Create(ctx, model.Movie{Title: "Heat", ReleaseYear: 1995, Rating: 8.3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	empty := ""
	if _, err := s.Update(ctx, m.ID, model.MovieUpdate{Title: &empty}); err == nil {
		t.Fatalf("want validation error on empty title")
	}
	bad := 11.0
	if _, err := s.Update(ctx, m.ID, model.MovieUpdate{Rating: &bad}); err == nil {
		t.Fatalf("want validation error on rating > 10")
	}

	good := 9.0
	upd, err := s.Update(ctx, m.ID, model.MovieUpdate{Rating: &good})
	if err != nil || upd.Rating != 9.0 {
		t.Fatalf("Update: %+v err=%v", upd, err)
	}

	if _, err := s.Update(ctx, 999, model.MovieUpdate{Rating: &good}); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
