package models

import (
	"time"

	"live-backend/ranking"
)

// Video represents a published recording or clip.
type Video struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index:idx_video_user" json:"user_id"`
	LiveRoomID uint      `gorm:"index:idx_video_room" json:"live_room_id"`
	Title      string    `gorm:"index:idx_video_title" json:"title"`
	CoverURL   string    `json:"cover_url"`
	CreatedAt  time.Time `gorm:"index:idx_video_created" json:"created_at"`
}

// VideoSummary is one row of the video listing.
type VideoSummary struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	LiveRoomID uint      `json:"live_room_id"`
	Title      string    `json:"title"`
	CoverURL   string    `json:"cover_url"`
	CreatedAt  time.Time `json:"created_at"`

	ViewsCount     int64 `json:"views_count"`
	FollowersCount int64 `json:"followers_count"`

	RankScore float64 `json:"rank_score"`
}

func (v VideoSummary) GetRankID() uint   { return v.ID }
func (v VideoSummary) GetTier() int      { return 0 }
func (v VideoSummary) GetScore() float64 { return v.RankScore }

func (v VideoSummary) GetSortValue(field string) float64 {
	switch field {
	case ranking.MetricViews:
		return float64(v.ViewsCount)
	case ranking.FieldCreatedAt:
		return float64(v.CreatedAt.Unix())
	default:
		return 0
	}
}
