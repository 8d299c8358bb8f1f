package ranking

// =============================================================================
// Metric Names
// =============================================================================

// Metric names shared by MetricSet and the weight tables. A metric absent
// from a set counts as zero.
const (
	MetricViews             = "views"
	MetricLikes             = "likes"
	MetricComments          = "comments"
	MetricGiftCount         = "gift_count"
	MetricGiftAmount        = "gift_amount"
	MetricFollowers         = "followers"
	MetricVideos            = "videos"
	MetricWatchCount        = "watch_count"
	MetricSigninCount       = "signin_count"
	MetricLiveCount         = "live_count"
	MetricLiveDurationHours = "live_duration_hours"
	MetricVideoViews        = "video_views"
	MetricRoomViews         = "room_views"
	MetricRoomLikes         = "room_likes"
	MetricRoomComments      = "room_comments"
	MetricWatchDuration     = "watch_duration"
)

// MetricSet maps metric names to non-negative values for one entity.
// Missing metrics read as zero.
type MetricSet map[string]float64

// WeightTable maps metric names to the positive weight applied to the
// log-dampened metric value. One table per entity kind, defined once at
// startup and never mutated.
type WeightTable map[string]float64

// =============================================================================
// Weight Tables
// =============================================================================

// RoomDiscoveryWeights orders the live-room discovery feed.
var RoomDiscoveryWeights = WeightTable{
	MetricViews:      6,
	MetricLikes:      3,
	MetricComments:   2,
	MetricGiftCount:  4,
	MetricGiftAmount: 5,
	MetricFollowers:  1,
}

// UserLeaderboardWeights orders the global user leaderboard (default mode).
var UserLeaderboardWeights = WeightTable{
	MetricFollowers:         4,
	MetricVideos:            3,
	MetricComments:          2,
	MetricWatchCount:        3,
	MetricLikes:             2,
	MetricGiftCount:         5,
	MetricGiftAmount:        4,
	MetricSigninCount:       2,
	MetricLiveCount:         3,
	MetricLiveDurationHours: 2,
}

// UserPopularityWeights orders users in popularity mode.
var UserPopularityWeights = WeightTable{
	MetricFollowers:    3,
	MetricVideoViews:   4,
	MetricRoomViews:    5,
	MetricRoomLikes:    4,
	MetricRoomComments: 3,
	MetricGiftCount:    4,
	MetricGiftAmount:   5,
}

// VideoWeights orders the video listing in default mode.
var VideoWeights = WeightTable{
	MetricViews:     5,
	MetricFollowers: 3,
}

// DecayRatePerHour is the score penalty per hour since a room's latest
// broadcast started. Rooms that never broadcast are not penalized.
const DecayRatePerHour = 0.1

// Contribution value thresholds: each full unit of the respective metric
// contributes one whole point to a contributor's score.
const (
	ContributionLikesPerPoint        = 30
	ContributionCommentsPerPoint     = 10
	ContributionWatchSecondsPerPoint = 900
	ContributionGiftAmountPerPoint   = 100
)
