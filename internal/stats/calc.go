// Package stats implements rating aggregation arithmetic. Both the
// aggregation worker and the in-process fallback call these functions, so
// results are identical regardless of which path served a request.
package stats

import (
	"fmt"
	"math"

	"github.com/movievault/movievault/internal/model"
)

// Quality band thresholds. Lower bounds are closed: a rating of exactly 6.0
// is Good, exactly 8.0 is Excellent.
const (
	ExcellentMin = 8.0
	GoodMin      = 6.0
	AverageMin   = 4.0
)

// Tier descriptions keyed by label.
const (
	descExcellent = "Outstanding movie! Highly recommended."
	descGood      = "Good movie, worth watching."
	descAverage   = "Decent movie, might be worth a watch."
	descPoor      = "Below average, proceed with caution."
)

// Summarize computes count, average, highest and lowest over the sample.
// The average is rounded to 2 decimal places. An empty sample yields the
// zero summary.
func Summarize(ratings []float64) model.RatingSummary {
	if len(ratings) == 0 {
		return model.RatingSummary{}
	}
	sum := 0.0
	highest := ratings[0]
	lowest := ratings[0]
	for _, r := range ratings {
		sum += r
		if r > highest {
			highest = r
		}
		if r < lowest {
			lowest = r
		}
	}
	return model.RatingSummary{
		Count:   int32(len(ratings)),
		Average: Round2(sum / float64(len(ratings))),
		Highest: highest,
		Lowest:  lowest,
	}
}

// Distribute counts ratings per quality band.
func Distribute(ratings []float64) model.RatingDistribution {
	var d model.RatingDistribution
	for _, r := range ratings {
		switch {
		case r >= ExcellentMin:
			d.Excellent++
		case r >= GoodMin:
			d.Good++
		case r >= AverageMin:
			d.Average++
		default:
			d.Poor++
		}
	}
	return d
}

// Tier maps a single rating to its quality band.
func Tier(rating float64) model.RatingTier {
	switch {
	case rating >= ExcellentMin:
		return model.RatingTier{Tier: "Excellent", Description: descExcellent}
	case rating >= GoodMin:
		return model.RatingTier{Tier: "Good", Description: descGood}
	case rating >= AverageMin:
		return model.RatingTier{Tier: "Average", Description: descAverage}
	default:
		return model.RatingTier{Tier: "Poor", Description: descPoor}
	}
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// YearsAgo phrases how far currentYear is from releaseYear.
func YearsAgo(releaseYear, currentYear int32) model.MovieAge {
	years := currentYear - releaseYear
	var msg string
	switch {
	case years == 0:
		msg = "This year!"
	case years == 1:
		msg = "Last year"
	case years < 0:
		msg = fmt.Sprintf("%d years in the future", -years)
	default:
		msg = fmt.Sprintf("%d years ago", years)
	}
	return model.MovieAge{Years: years, Message: msg}
}
