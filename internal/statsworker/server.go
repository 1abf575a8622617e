// Package statsworker exposes the rating aggregation gRPC service.
package statsworker

import (
	"context"
	"time"

	statspb "github.com/movievault/movievault/gen/go/statsworker/v1"
	"github.com/movievault/movievault/internal/stats"
)

// Server implements statsworker.v1.RatingCalculator. All handlers delegate
// to internal/stats, the same arithmetic the API server uses for its local
// fallback, so both paths agree exactly.
type Server struct {
	statspb.UnimplementedRatingCalculatorServer
}

// New constructs the calculator service.
func New() *Server { return &Server{} }

// CalculateAverage aggregates count/average/highest/lowest. An empty list
// yields all zeros.
func (s *Server) CalculateAverage(_ context.Context, req *statspb.RatingList) (*statspb.AverageResponse, error) {
	sum := stats.Summarize(req.GetRatings())
	return &statspb.AverageResponse{
		Count:   sum.Count,
		Average: sum.Average,
		Highest: sum.Highest,
		Lowest:  sum.Lowest,
	}, nil
}

// CalculateDistribution counts ratings per quality band.
func (s *Server) CalculateDistribution(_ context.Context, req *statspb.RatingList) (*statspb.DistributionResponse, error) {
	d := stats.Distribute(req.GetRatings())
	return &statspb.DistributionResponse{
		Excellent: d.Excellent,
		Good:      d.Good,
		Average:   d.Average,
		Poor:      d.Poor,
	}, nil
}

// RatingTier maps one rating to its quality band.
func (s *Server) RatingTier(_ context.Context, req *statspb.SingleRating) (*statspb.TierResponse, error) {
	t := stats.Tier(req.GetRating())
	return &statspb.TierResponse{Tier: t.Tier, Description: t.Description}, nil
}

// YearServer implements statsworker.v1.YearCalculator against the worker's
// own clock.
type YearServer struct {
	statspb.UnimplementedYearCalculatorServer

	now func() time.Time
}

// NewYearServer constructs the year calculator service.
func NewYearServer() *YearServer { return &YearServer{now: time.Now} }

// CalculateYearsAgo phrases how long ago the given year was. Future years
// yield a negative count.
func (s *YearServer) CalculateYearsAgo(_ context.Context, req *statspb.YearRequest) (*statspb.YearResponse, error) {
	a := stats.YearsAgo(req.GetYear(), int32(s.now().Year()))
	return &statspb.YearResponse{YearsAgo: a.Years, Message: a.Message}, nil
}
