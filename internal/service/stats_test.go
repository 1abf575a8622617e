package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/movievault/movievault/internal/errs"
	"github.com/movievault/movievault/internal/model"
	"github.com/movievault/movievault/internal/stats"
)

// fakeStatsClient reproduces the worker by running the shared arithmetic,
// or fails every call when down is set.
type fakeStatsClient struct {
	down  bool
	calls int
}

var _ StatsClient = (*fakeStatsClient)(nil)

func (f *fakeStatsClient) Average(_ context.Context, ratings []float64) (model.RatingSummary, error) {
	f.calls++
	if f.down {
		return model.RatingSummary{}, fmt.Errorf("%w: connection refused", errs.ErrStatsUnavailable)
	}
	return stats.Summarize(ratings), nil
}

func (f *fakeStatsClient) Distribution(_ context.Context, ratings []float64) (model.RatingDistribution, error) {
	f.calls++
	if f.down {
		return model.RatingDistribution{}, fmt.Errorf("%w: connection refused", errs.ErrStatsUnavailable)
	}
	return stats.Distribute(ratings), nil
}

func (f *fakeStatsClient) Tier(_ context.Context, rating float64) (model.RatingTier, error) {
	f.calls++
	if f.down {
		return model.RatingTier{}, fmt.Errorf("%w: connection refused", errs.ErrStatsUnavailable)
	}
	return stats.Tier(rating), nil
}

func (f *fakeStatsClient) YearsAgo(_ context.Context, year int32) (model.MovieAge, error) {
	f.calls++
	if f.down {
		return model.MovieAge{}, fmt.Errorf("%w: connection refused", errs.ErrStatsUnavailable)
	}
	return stats.YearsAgo(year, int32(time.Now().Year())), nil
}

func TestStats_RemotePathTagged(t *testing.T) {
	t.Parallel()
	remote := &fakeStatsClient{}
	s := NewStatsService(remote)

	sum, src, err := s.Summary(context.Background(), []float64{8.0, 6.5})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if src != model.StatsSourceRemote {
		t.Fatalf("want remote attribution, got %q", src)
	}
	if sum.Count != 2 || sum.Average != 7.25 {
		t.Fatalf("bad summary: %+v", sum)
	}
	if remote.calls != 1 {
		t.Fatalf("remote not called")
	}
}

func TestStats_FallbackNeverFailsCaller(t *testing.T) {
	t.Parallel()
	s := NewStatsService(&fakeStatsClient{down: true})
	ctx := context.Background()

	sum, src, err := s.Summary(ctx, []float64{8.0, 6.5})
	if err != nil {
		t.Fatalf("Summary must absorb worker failure: %v", err)
	}
	if src != model.StatsSourceLocal {
		t.Fatalf("want local attribution, got %q", src)
	}
	if sum.Count != 2 {
		t.Fatalf("bad fallback summary: %+v", sum)
	}

	if _, src, err = s.Distribution(ctx, []float64{3.0}); err != nil || src != model.StatsSourceLocal {
		t.Fatalf("Distribution fallback: src=%q err=%v", src, err)
	}
	if _, src, err = s.Tier(ctx, 9.1); err != nil || src != model.StatsSourceLocal {
		t.Fatalf("Tier fallback: src=%q err=%v", src, err)
	}
	if _, src, err = s.Age(ctx, 1995); err != nil || src != model.StatsSourceLocal {
		t.Fatalf("Age fallback: src=%q err=%v", src, err)
	}
}

func TestStats_Age(t *testing.T) {
	t.Parallel()
	remote := &fakeStatsClient{}
	s := NewStatsService(remote)

	year := int32(time.Now().Year())
	age, src, err := s.Age(context.Background(), year-30)
	if err != nil {
		t.Fatalf("Age: %v", err)
	}
	if src != model.StatsSourceRemote || remote.calls != 1 {
		t.Fatalf("want remote attribution, got %q (calls=%d)", src, remote.calls)
	}
	if age.Years != 30 || age.Message != "30 years ago" {
		t.Fatalf("bad age: %+v", age)
	}

	age, _, err = NewStatsService(nil).Age(context.Background(), year)
	if err != nil || age.Years != 0 || age.Message != "This year!" {
		t.Fatalf("current year: %+v err=%v", age, err)
	}
}

// Remote and forced-local runs must agree exactly on the same input.
func TestStats_RemoteAndLocalAgree(t *testing.T) {
	t.Parallel()
	samples := [][]float64{
		nil,
		{},
		{0},
		{10, 0},
		{8.0, 7.99, 6.0, 4.0, 3.9},
		{1.1, 2.2, 3.3, 4.4, 5.5, 6.6, 7.7, 8.8, 9.9},
	}
	up := NewStatsService(&fakeStatsClient{})
	down := NewStatsService(&fakeStatsClient{down: true})
	ctx := context.Background()

	for _, sample := range samples {
		rSum, _, _ := up.Summary(ctx, sample)
		lSum, _, _ := down.Summary(ctx, sample)
		if rSum != lSum {
			t.Fatalf("summary mismatch for %v: remote=%+v local=%+v", sample, rSum, lSum)
		}
		rDist, _, _ := up.Distribution(ctx, sample)
		lDist, _, _ := down.Distribution(ctx, sample)
		if rDist != lDist {
			t.Fatalf("distribution mismatch for %v: remote=%+v local=%+v", sample, rDist, lDist)
		}
	}
}

func TestStats_NilClientShortCircuitsToLocal(t *testing.T) {
	t.Parallel()
	s := NewStatsService(nil)

	sum, src, err := s.Summary(context.Background(), nil)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if src != model.StatsSourceLocal {
		t.Fatalf("want local attribution, got %q", src)
	}
	if sum != (model.RatingSummary{}) {
		t.Fatalf("empty sample must yield the zero summary: %+v", sum)
	}
}
