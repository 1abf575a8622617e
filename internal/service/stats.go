package service

import (
	"context"
	"time"

	"github.com/movievault/movievault/internal/model"
	"github.com/movievault/movievault/internal/stats"
)

// StatsClient is the remote aggregation worker surface. Implementations
// return an error wrapping errs.ErrStatsUnavailable whenever the worker
// could not serve the call.
type StatsClient interface {
	Average(ctx context.Context, ratings []float64) (model.RatingSummary, error)
	Distribution(ctx context.Context, ratings []float64) (model.RatingDistribution, error)
	Tier(ctx context.Context, rating float64) (model.RatingTier, error)
	YearsAgo(ctx context.Context, year int32) (model.MovieAge, error)
}

// StatsService computes rating aggregates, preferring the remote worker
// and falling back to in-process arithmetic. Worker unavailability never
// reaches the caller; only the source attribution changes.
type StatsService interface {
	Summary(ctx context.Context, ratings []float64) (model.RatingSummary, model.StatsSource, error)
	Distribution(ctx context.Context, ratings []float64) (model.RatingDistribution, model.StatsSource, error)
	Tier(ctx context.Context, rating float64) (model.RatingTier, model.StatsSource, error)
	Age(ctx context.Context, releaseYear int32) (model.MovieAge, model.StatsSource, error)
}

type StatsServiceImpl struct {
	remote StatsClient // nil when no worker endpoint is configured
}

// NewStatsService constructs StatsService. remote may be nil, forcing the
// local path.
func NewStatsService(remote StatsClient) *StatsServiceImpl {
	return &StatsServiceImpl{remote: remote}
}

// Summary computes count/average/highest/lowest over the sample. The local
// path runs the same arithmetic as the worker, so results are identical.
func (s *StatsServiceImpl) Summary(ctx context.Context, ratings []float64) (model.RatingSummary, model.StatsSource, error) {
	if s.remote != nil {
		if sum, err := s.remote.Average(ctx, ratings); err == nil {
			return sum, model.StatsSourceRemote, nil
		}
	}
	return stats.Summarize(ratings), model.StatsSourceLocal, nil
}

// Distribution counts ratings per quality band.
func (s *StatsServiceImpl) Distribution(ctx context.Context, ratings []float64) (model.RatingDistribution, model.StatsSource, error) {
	if s.remote != nil {
		if d, err := s.remote.Distribution(ctx, ratings); err == nil {
			return d, model.StatsSourceRemote, nil
		}
	}
	return stats.Distribute(ratings), model.StatsSourceLocal, nil
}

// Tier maps a single rating to its quality band.
func (s *StatsServiceImpl) Tier(ctx context.Context, rating float64) (model.RatingTier, model.StatsSource, error) {
	if s.remote != nil {
		if t, err := s.remote.Tier(ctx, rating); err == nil {
			return t, model.StatsSourceRemote, nil
		}
	}
	return stats.Tier(rating), model.StatsSourceLocal, nil
}

// Age says how long ago the release year was. The remote answer uses the
// worker's clock; the fallback uses ours.
func (s *StatsServiceImpl) Age(ctx context.Context, releaseYear int32) (model.MovieAge, model.StatsSource, error) {
	if s.remote != nil {
		if a, err := s.remote.YearsAgo(ctx, releaseYear); err == nil {
			return a, model.StatsSourceRemote, nil
		}
	}
	return stats.YearsAgo(releaseYear, int32(time.Now().Year())), model.StatsSourceLocal, nil
}
