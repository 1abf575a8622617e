// Package statsclient is the gRPC client for the rating aggregation worker.
package statsclient

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	statspb "github.com/movievault/movievault/gen/go/statsworker/v1"
	"github.com/movievault/movievault/internal/errs"
	"github.com/movievault/movievault/internal/model"
)

// Client calls the aggregation worker with a bounded per-call timeout.
// Every transport failure is reported as errs.ErrStatsUnavailable so the
// orchestrator can fall back without inspecting gRPC details.
type Client struct {
	conn    *grpc.ClientConn
	calc    statspb.RatingCalculatorClient
	years   statspb.YearCalculatorClient
	timeout time.Duration
}

// New dials the worker address. The connection is lazy; an unreachable
// worker surfaces per-call, not here.
func New(addr string, timeout time.Duration, opts ...grpc.DialOption) (*Client, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial stats worker: %w", err)
	}
	return &Client{
		conn:    conn,
		calc:    statspb.NewRatingCalculatorClient(conn),
		years:   statspb.NewYearCalculatorClient(conn),
		timeout: timeout,
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error { return c.conn.Close() }

// callCtx derives the bounded per-call context. Cancelling the parent
// cancels the in-flight RPC.
func (c *Client) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// Average computes count/average/highest/lowest remotely.
func (c *Client) Average(ctx context.Context, ratings []float64) (model.RatingSummary, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	resp, err := c.calc.CalculateAverage(ctx, &statspb.RatingList{Ratings: ratings})
	if err != nil {
		return model.RatingSummary{}, fmt.Errorf("%w: %v", errs.ErrStatsUnavailable, err)
	}
	return model.RatingSummary{
		Count:   resp.GetCount(),
		Average: resp.GetAverage(),
		Highest: resp.GetHighest(),
		Lowest:  resp.GetLowest(),
	}, nil
}

// Distribution computes quality-band counts remotely.
func (c *Client) Distribution(ctx context.Context, ratings []float64) (model.RatingDistribution, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	resp, err := c.calc.CalculateDistribution(ctx, &statspb.RatingList{Ratings: ratings})
	if err != nil {
		return model.RatingDistribution{}, fmt.Errorf("%w: %v", errs.ErrStatsUnavailable, err)
	}
	return model.RatingDistribution{
		Excellent: resp.GetExcellent(),
		Good:      resp.GetGood(),
		Average:   resp.GetAverage(),
		Poor:      resp.GetPoor(),
	}, nil
}

// Tier maps a rating to its quality band remotely.
func (c *Client) Tier(ctx context.Context, rating float64) (model.RatingTier, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	resp, err := c.calc.RatingTier(ctx, &statspb.SingleRating{Rating: rating})
	if err != nil {
		return model.RatingTier{}, fmt.Errorf("%w: %v", errs.ErrStatsUnavailable, err)
	}
	return model.RatingTier{Tier: resp.GetTier(), Description: resp.GetDescription()}, nil
}

// YearsAgo asks the worker how long ago a release year was.
func (c *Client) YearsAgo(ctx context.Context, year int32) (model.MovieAge, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	resp, err := c.years.CalculateYearsAgo(ctx, &statspb.YearRequest{Year: year})
	if err != nil {
		return model.MovieAge{}, fmt.Errorf("%w: %v", errs.ErrStatsUnavailable, err)
	}
	return model.MovieAge{Years: resp.GetYearsAgo(), Message: resp.GetMessage()}, nil
}
