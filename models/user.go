package models

import (
	"time"

	"live-backend/ranking"
)

// User represents a platform account (viewer and/or anchor).
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index:idx_username" json:"username"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `gorm:"index:idx_user_created" json:"created_at"`
}

// UserSummary is one row of the global user leaderboard: the user's public
// attributes, the raw counters used for scoring, and both computed scores so
// consumers can verify the ordering independently.
type UserSummary struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`

	FollowersCount int64   `json:"followers_count"`
	VideosCount    int64   `json:"videos_count"`
	CommentsCount  int64   `json:"comments_count"`
	WatchCount     int64   `json:"watch_count"`
	LikesCount     int64   `json:"likes_count"`
	GiftCount      int64   `json:"gift_count"`
	GiftAmount     float64 `json:"gift_amount"`
	SigninCount    int64   `json:"signin_count"`
	LiveCount      int64   `json:"live_count"`
	LiveDuration   int64   `json:"live_duration"` // seconds

	RankScore       float64 `json:"rank_score"`
	PopularityScore float64 `json:"popularity_score"`
}

func (u UserSummary) GetRankID() uint   { return u.ID }
func (u UserSummary) GetTier() int      { return 0 }
func (u UserSummary) GetScore() float64 { return u.RankScore }

func (u UserSummary) GetSortValue(field string) float64 {
	switch field {
	case ranking.FieldPopularityScore:
		return u.PopularityScore
	case ranking.MetricFollowers:
		return float64(u.FollowersCount)
	case ranking.FieldCreatedAt:
		return float64(u.CreatedAt.Unix())
	default:
		return 0
	}
}
