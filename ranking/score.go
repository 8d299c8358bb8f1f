package ranking

import (
	"math"
	"time"
)

// =============================================================================
// Composite Score
// =============================================================================

// Score computes the weighted, log-dampened composite score for a metric set.
// Each metric is floored to 1 before the logarithm, so a zero metric
// contributes exactly 0 (log(1) = 0) and the logarithm is always defined.
func Score(metrics MetricSet, weights WeightTable) float64 {
	total := 0.0
	for name, weight := range weights {
		value := metrics[name]
		if value < 1 {
			value = 1
		}
		total += math.Log(value) * weight
	}
	return total
}

// DecayPenalty returns the (non-positive) score adjustment for time elapsed
// since a room's latest broadcast started. A zero latestStart means the room
// has never broadcast and the decay is neutral, not maximally penalized.
func DecayPenalty(latestStart, now time.Time) float64 {
	if latestStart.IsZero() {
		return 0
	}
	hours := now.Sub(latestStart).Hours()
	if hours < 0 {
		hours = 0
	}
	return -hours * DecayRatePerHour
}

// =============================================================================
// Contribution Score
// =============================================================================

// ContributionScore computes a contributor's whole-point score within one
// room. Fractional accumulation is summed across categories before flooring,
// so e.g. 15 likes plus 5 comments still cross a point boundary together.
func ContributionScore(likes, comments, watchSeconds, giftAmount float64) int {
	points := likes/ContributionLikesPerPoint +
		comments/ContributionCommentsPerPoint +
		watchSeconds/ContributionWatchSecondsPerPoint +
		giftAmount/ContributionGiftAmountPerPoint
	return int(math.Floor(points))
}
