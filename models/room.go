package models

import (
	"time"

	"live-backend/ranking"
)

// LiveRoom represents a broadcast room owned by one anchor.
type LiveRoom struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"index:idx_room_name" json:"name"`
	Description      string    `json:"description"`
	CoverURL         string    `json:"cover_url"`
	OwnerID          uint      `gorm:"index:idx_room_owner" json:"owner_id"`
	ParentCategoryID uint      `gorm:"index:idx_room_parent_cat" json:"parent_category_id"`
	ChildCategoryID  uint      `gorm:"index:idx_room_child_cat" json:"child_category_id"`
	CreatedAt        time.Time `gorm:"index:idx_room_created" json:"created_at"`
}

// RoomSummary is one row of the discovery feed: room attributes, the raw
// counters used for scoring, live state, and the computed composite score.
type RoomSummary struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	CoverURL         string    `json:"cover_url"`
	OwnerID          uint      `json:"owner_id"`
	ParentCategoryID uint      `json:"parent_category_id"`
	ChildCategoryID  uint      `json:"child_category_id"`
	CreatedAt        time.Time `json:"created_at"`

	IsLive          bool       `json:"is_live"`
	LatestStartTime *time.Time `json:"latest_start_time"`

	ViewsCount     int64   `json:"views_count"`
	LikesCount     int64   `json:"likes_count"`
	CommentsCount  int64   `json:"comments_count"`
	GiftCount      int64   `json:"gift_count"`
	GiftAmount     float64 `json:"gift_amount"`
	FollowersCount int64   `json:"followers_count"`

	RankScore float64 `json:"rank_score"`
}

func (r RoomSummary) GetRankID() uint { return r.ID }

// GetTier puts currently-live rooms above all offline rooms regardless of
// score.
func (r RoomSummary) GetTier() int {
	if r.IsLive {
		return 1
	}
	return 0
}

func (r RoomSummary) GetScore() float64 { return r.RankScore }

func (r RoomSummary) GetSortValue(field string) float64 {
	switch field {
	case ranking.FieldLatestBroadcast:
		if r.LatestStartTime == nil {
			return 0
		}
		return float64(r.LatestStartTime.Unix())
	case ranking.FieldCreatedAt:
		return float64(r.CreatedAt.Unix())
	default:
		return 0
	}
}
