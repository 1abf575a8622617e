package stats

import (
	"testing"

	"github.com/movievault/movievault/internal/model"
)

func TestSummarize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		ratings []float64
		want    model.RatingSummary
	}{
		{name: "empty", ratings: nil, want: model.RatingSummary{}},
		{name: "single", ratings: []float64{7.5},
			want: model.RatingSummary{Count: 1, Average: 7.5, Highest: 7.5, Lowest: 7.5}},
		{name: "rounds to two decimals", ratings: []float64{1, 2, 2},
			want: model.RatingSummary{Count: 3, Average: 1.67, Highest: 2, Lowest: 1}},
		{name: "full range", ratings: []float64{0, 10, 5},
			want: model.RatingSummary{Count: 3, Average: 5, Highest: 10, Lowest: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Summarize(tc.ratings); got != tc.want {
				t.Fatalf("Summarize(%v) = %+v, want %+v", tc.ratings, got, tc.want)
			}
		})
	}
}

func TestDistribute_BandBoundaries(t *testing.T) {
	t.Parallel()
	// Lower bounds are closed: 8.0 is excellent, 6.0 good, 4.0 average.
	got := Distribute([]float64{8.0, 7.99, 6.0, 5.99, 4.0, 3.99, 0, 10})
	want := model.RatingDistribution{Excellent: 2, Good: 2, Average: 2, Poor: 2}
	if got != want {
		t.Fatalf("Distribute = %+v, want %+v", got, want)
	}

	if got := Distribute(nil); got != (model.RatingDistribution{}) {
		t.Fatalf("empty input must yield all-zero buckets: %+v", got)
	}
}

func TestTier(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rating float64
		tier   string
	}{
		{10, "Excellent"},
		{8.0, "Excellent"},
		{7.99, "Good"},
		{6.0, "Good"},
		{5.99, "Average"},
		{4.0, "Average"},
		{3.9, "Poor"},
		{0, "Poor"},
	}
	for _, tc := range tests {
		got := Tier(tc.rating)
		if got.Tier != tc.tier {
			t.Fatalf("Tier(%v) = %q, want %q", tc.rating, got.Tier, tc.tier)
		}
		if got.Description == "" {
			t.Fatalf("Tier(%v) missing description", tc.rating)
		}
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want float64 }{
		{1.005, 1.0}, // binary 1.005 sits just below the midpoint
		{1.675, 1.68},
		{-1.675, -1.68},
		{7.25, 7.25},
		{0, 0},
	}
	for _, tc := range tests {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestYearsAgo(t *testing.T) {
	t.Parallel()
	tests := []struct {
		release, current int32
		years            int32
		message          string
	}{
		{2026, 2026, 0, "This year!"},
		{2025, 2026, 1, "Last year"},
		{1995, 2026, 31, "31 years ago"},
		{2030, 2026, -4, "4 years in the future"},
	}
	for _, tc := range tests {
		got := YearsAgo(tc.release, tc.current)
		if got.Years != tc.years || got.Message != tc.message {
			t.Fatalf("YearsAgo(%d, %d) = %+v, want {%d %q}", tc.release, tc.current, got, tc.years, tc.message)
		}
	}
}
