package models

import (
	"time"

	"live-backend/ranking"
)

// RoomMessage is one row of the room event log. The MsgType discriminator
// distinguishes comments, gifts and likes; gift messages carry the gift name
// used to resolve the amount against the gift catalog.
type RoomMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"index:idx_msg_room" json:"room_id"`
	UserID    uint      `gorm:"index:idx_msg_user" json:"user_id"`
	MsgType   int       `gorm:"index:idx_msg_type" json:"msg_type"`
	Content   string    `json:"content"`
	GiftName  string    `json:"gift_name,omitempty"`
	CreatedAt time.Time `gorm:"index:idx_msg_created" json:"created_at"`
}

// MsgType discriminator values, carried over from the message log contract.
const (
	MsgTypeComment = 0
	MsgTypeGift    = 5
	MsgTypeLike    = 6
)

// Gift is a catalog entry mapping a gift name to its currency price.
type Gift struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"uniqueIndex:idx_gift_name" json:"name"`
	Price float64 `json:"price"`
	Icon  string  `json:"icon"`
}

// RoomView records one viewing session of a room, with accumulated watch
// duration in seconds.
type RoomView struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RoomID          uint      `gorm:"index:idx_view_room" json:"room_id"`
	UserID          uint      `gorm:"index:idx_view_user" json:"user_id"`
	DurationSeconds int64     `json:"duration_seconds"`
	CreatedAt       time.Time `gorm:"index:idx_view_created" json:"created_at"`
}

// VideoView records one playback of a video.
type VideoView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VideoID   uint      `gorm:"index:idx_vview_video" json:"video_id"`
	UserID    uint      `gorm:"index:idx_vview_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Follow is a follower -> following edge.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"index:idx_follow_follower" json:"follower_id"`
	FollowingID uint      `gorm:"index:idx_follow_following" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// SigninRecord is one daily sign-in by a user.
type SigninRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_signin_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BroadcastSession is one broadcast of a room. A session with a nil EndedAt
// is still on air.
type BroadcastSession struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	RoomID    uint       `gorm:"index:idx_session_room" json:"room_id"`
	UserID    uint       `gorm:"index:idx_session_user" json:"user_id"`
	StartedAt time.Time  `gorm:"index:idx_session_start" json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}

// ContributorSummary is one row of a per-room contributor leaderboard: the
// user's engagement counters within that room and the floored contribution
// score computed from them.
type ContributorSummary struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`

	GiftCount     int64   `json:"gift_count"`
	GiftAmount    float64 `json:"gift_amount"`
	LikesCount    int64   `json:"likes_count"`
	CommentsCount int64   `json:"comments_count"`
	WatchDuration int64   `json:"watch_duration"` // seconds

	ContributeScore int `json:"contribute_score"`
}

func (c ContributorSummary) GetRankID() uint   { return c.UserID }
func (c ContributorSummary) GetTier() int      { return 0 }
func (c ContributorSummary) GetScore() float64 { return float64(c.ContributeScore) }

func (c ContributorSummary) GetSortValue(field string) float64 {
	switch field {
	case ranking.MetricGiftCount:
		return float64(c.GiftCount)
	case ranking.MetricGiftAmount:
		return c.GiftAmount
	case ranking.MetricLikes:
		return float64(c.LikesCount)
	case ranking.MetricComments:
		return float64(c.CommentsCount)
	case ranking.MetricWatchDuration:
		return float64(c.WatchDuration)
	default:
		return 0
	}
}
