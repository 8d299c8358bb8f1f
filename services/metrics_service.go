package services

import (
	"context"
	"fmt"
	"time"

	"live-backend/models"
	"live-backend/ranking"

	"gorm.io/gorm"
)

// MetricsService resolves the raw activity counters the ranking engine
// scores. All methods are read-only and batched: one grouped query per metric
// family instead of one query per candidate. Entities with no underlying
// activity resolve to zero-valued counters, never an error.
type MetricsService struct {
	db *gorm.DB
}

// NewMetricsService creates a new metrics service instance
func NewMetricsService(db *gorm.DB) *MetricsService {
	return &MetricsService{db: db}
}

// groupCount is one row of a grouped COUNT/SUM aggregate.
type groupCount struct {
	ID uint    `gorm:"column:id"`
	N  float64 `gorm:"column:n"`
}

// =============================================================================
// Room Metrics
// =============================================================================

// RoomStats bundles a room's counters with its broadcast state.
type RoomStats struct {
	Metrics     ranking.MetricSet
	IsLive      bool
	LatestStart time.Time // zero when the room has never broadcast
}

// RoomStatsBatch resolves discovery-feed counters for every given room.
// The window restricts the countable activity logs (views, likes, comments,
// gifts); follower counts and broadcast state are always current.
func (s *MetricsService) RoomStatsBatch(ctx context.Context, rooms []models.LiveRoom, window ranking.Window) (map[uint]*RoomStats, error) {
	stats := make(map[uint]*RoomStats, len(rooms))
	if len(rooms) == 0 {
		return stats, nil
	}

	ids := make([]uint, 0, len(rooms))
	ownerIDs := make([]uint, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
		ownerIDs = append(ownerIDs, room.OwnerID)
		stats[room.ID] = &RoomStats{Metrics: ranking.MetricSet{}}
	}

	cutoff, bounded := window.Cutoff(time.Now())
	windowed := func(q *gorm.DB, column string) *gorm.DB {
		if bounded {
			return q.Where(column+" >= ?", cutoff)
		}
		return q
	}

	views, err := s.groupedCounts(windowed(
		s.db.WithContext(ctx).Model(&models.RoomView{}).
			Select("room_id AS id, COUNT(DISTINCT user_id) AS n").
			Where("room_id IN ?", ids), "created_at").
		Group("room_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to count room views: %w", err)
	}

	likes, err := s.roomMessageCounts(ctx, ids, models.MsgTypeLike, window)
	if err != nil {
		return nil, fmt.Errorf("failed to count room likes: %w", err)
	}
	comments, err := s.roomMessageCounts(ctx, ids, models.MsgTypeComment, window)
	if err != nil {
		return nil, fmt.Errorf("failed to count room comments: %w", err)
	}
	giftCounts, err := s.roomMessageCounts(ctx, ids, models.MsgTypeGift, window)
	if err != nil {
		return nil, fmt.Errorf("failed to count room gifts: %w", err)
	}

	giftAmounts, err := s.groupedCounts(windowed(
		s.db.WithContext(ctx).Model(&models.RoomMessage{}).
			Select("room_messages.room_id AS id, COALESCE(SUM(gifts.price), 0) AS n").
			Joins("JOIN gifts ON gifts.name = room_messages.gift_name").
			Where("room_messages.msg_type = ? AND room_messages.room_id IN ?", models.MsgTypeGift, ids),
		"room_messages.created_at").
		Group("room_messages.room_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to sum room gift amounts: %w", err)
	}

	followers, err := s.followerCounts(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	var sessions []models.BroadcastSession
	if err := s.db.WithContext(ctx).Where("room_id IN ?", ids).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch broadcast sessions: %w", err)
	}

	for _, room := range rooms {
		st := stats[room.ID]
		st.Metrics[ranking.MetricViews] = views[room.ID]
		st.Metrics[ranking.MetricLikes] = likes[room.ID]
		st.Metrics[ranking.MetricComments] = comments[room.ID]
		st.Metrics[ranking.MetricGiftCount] = giftCounts[room.ID]
		st.Metrics[ranking.MetricGiftAmount] = giftAmounts[room.ID]
		st.Metrics[ranking.MetricFollowers] = followers[room.OwnerID]
	}
	for _, session := range sessions {
		st := stats[session.RoomID]
		if st == nil {
			continue
		}
		if session.EndedAt == nil {
			st.IsLive = true
		}
		if session.StartedAt.After(st.LatestStart) {
			st.LatestStart = session.StartedAt
		}
	}

	return stats, nil
}

// =============================================================================
// User Metrics
// =============================================================================

// UserStats bundles a user's leaderboard and popularity counter sets. The
// leaderboard set additionally carries the raw broadcast duration in seconds
// for reporting; only the hour-normalized value is weighted.
type UserStats struct {
	Leaderboard         ranking.MetricSet
	Popularity          ranking.MetricSet
	LiveDurationSeconds float64
}

// UserStatsBatch resolves global leaderboard and popularity counters for
// every given user id.
func (s *MetricsService) UserStatsBatch(ctx context.Context, userIDs []uint) (map[uint]*UserStats, error) {
	stats := make(map[uint]*UserStats, len(userIDs))
	if len(userIDs) == 0 {
		return stats, nil
	}
	for _, id := range userIDs {
		stats[id] = &UserStats{Leaderboard: ranking.MetricSet{}, Popularity: ranking.MetricSet{}}
	}

	followers, err := s.followerCounts(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	videos, err := s.groupedCounts(
		s.db.WithContext(ctx).Model(&models.Video{}).
			Select("user_id AS id, COUNT(*) AS n").
			Where("user_id IN ?", userIDs).
			Group("user_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to count videos: %w", err)
	}

	comments, err := s.userMessageCounts(ctx, userIDs, models.MsgTypeComment)
	if err != nil {
		return nil, fmt.Errorf("failed to count user comments: %w", err)
	}
	likes, err := s.userMessageCounts(ctx, userIDs, models.MsgTypeLike)
	if err != nil {
		return nil, fmt.Errorf("failed to count user likes: %w", err)
	}
	giftCounts, err := s.userMessageCounts(ctx, userIDs, models.MsgTypeGift)
	if err != nil {
		return nil, fmt.Errorf("failed to count user gifts: %w", err)
	}

	giftAmounts, err := s.groupedCounts(
		s.db.WithContext(ctx).Model(&models.RoomMessage{}).
			Select("room_messages.user_id AS id, COALESCE(SUM(gifts.price), 0) AS n").
			Joins("JOIN gifts ON gifts.name = room_messages.gift_name").
			Where("room_messages.msg_type = ? AND room_messages.user_id IN ?", models.MsgTypeGift, userIDs).
			Group("room_messages.user_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to sum user gift amounts: %w", err)
	}

	watchCounts, err := s.groupedCounts(
		s.db.WithContext(ctx).Model(&models.RoomView{}).
			Select("user_id AS id, COUNT(DISTINCT room_id) AS n").
			Where("user_id IN ?", userIDs).
			Group("user_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to count watched rooms: %w", err)
	}

	signins, err := s.groupedCounts(
		s.db.WithContext(ctx).Model(&models.SigninRecord{}).
			Select("user_id AS id, COUNT(*) AS n").
			Where("user_id IN ?", userIDs).
			Group("user_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to count sign-ins: %w", err)
	}

	var sessions []models.BroadcastSession
	if err := s.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch broadcast sessions: %w", err)
	}
	liveCounts := make(map[uint]float64, len(userIDs))
	liveDurations := make(map[uint]float64, len(userIDs))
	for _, session := range sessions {
		liveCounts[session.UserID]++
		if session.EndedAt != nil {
			liveDurations[session.UserID] += session.EndedAt.Sub(session.StartedAt).Seconds()
		}
	}

	videoViews, err := s.groupedCounts(
		s.db.WithContext(ctx).Model(&models.VideoView{}).
			Select("videos.user_id AS id, COUNT(*) AS n").
			Joins("JOIN videos ON videos.id = video_views.video_id").
			Where("videos.user_id IN ?", userIDs).
			Group("videos.user_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to count video views: %w", err)
	}

	roomViews, err := s.groupedCounts(
		s.db.WithContext(ctx).Model(&models.RoomView{}).
			Select("live_rooms.owner_id AS id, COUNT(DISTINCT room_views.user_id) AS n").
			Joins("JOIN live_rooms ON live_rooms.id = room_views.room_id").
			Where("live_rooms.owner_id IN ?", userIDs).
			Group("live_rooms.owner_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to count owned-room views: %w", err)
	}

	roomLikes, err := s.ownedRoomMessageCounts(ctx, userIDs, models.MsgTypeLike)
	if err != nil {
		return nil, fmt.Errorf("failed to count owned-room likes: %w", err)
	}
	roomComments, err := s.ownedRoomMessageCounts(ctx, userIDs, models.MsgTypeComment)
	if err != nil {
		return nil, fmt.Errorf("failed to count owned-room comments: %w", err)
	}

	for _, id := range userIDs {
		st := stats[id]
		st.LiveDurationSeconds = liveDurations[id]
		st.Leaderboard[ranking.MetricFollowers] = followers[id]
		st.Leaderboard[ranking.MetricVideos] = videos[id]
		st.Leaderboard[ranking.MetricComments] = comments[id]
		st.Leaderboard[ranking.MetricWatchCount] = watchCounts[id]
		st.Leaderboard[ranking.MetricLikes] = likes[id]
		st.Leaderboard[ranking.MetricGiftCount] = giftCounts[id]
		st.Leaderboard[ranking.MetricGiftAmount] = giftAmounts[id]
		st.Leaderboard[ranking.MetricSigninCount] = signins[id]
		st.Leaderboard[ranking.MetricLiveCount] = liveCounts[id]
		st.Leaderboard[ranking.MetricLiveDurationHours] = liveDurations[id] / 3600

		st.Popularity[ranking.MetricFollowers] = followers[id]
		st.Popularity[ranking.MetricVideoViews] = videoViews[id]
		st.Popularity[ranking.MetricRoomViews] = roomViews[id]
		st.Popularity[ranking.MetricRoomLikes] = roomLikes[id]
		st.Popularity[ranking.MetricRoomComments] = roomComments[id]
		st.Popularity[ranking.MetricGiftCount] = giftCounts[id]
		st.Popularity[ranking.MetricGiftAmount] = giftAmounts[id]
	}

	return stats, nil
}

// =============================================================================
// Contributor Metrics
// =============================================================================

// ContributorStatsBatch resolves one room's per-user engagement counters,
// restricted to the window.
func (s *MetricsService) ContributorStatsBatch(ctx context.Context, roomID uint, userIDs []uint, window ranking.Window) (map[uint]ranking.MetricSet, error) {
	stats := make(map[uint]ranking.MetricSet, len(userIDs))
	if len(userIDs) == 0 {
		return stats, nil
	}
	for _, id := range userIDs {
		stats[id] = ranking.MetricSet{}
	}

	cutoff, bounded := window.Cutoff(time.Now())
	windowed := func(q *gorm.DB, column string) *gorm.DB {
		if bounded {
			return q.Where(column+" >= ?", cutoff)
		}
		return q
	}

	messageCounts := func(msgType int) (map[uint]float64, error) {
		return s.groupedCounts(windowed(
			s.db.WithContext(ctx).Model(&models.RoomMessage{}).
				Select("user_id AS id, COUNT(*) AS n").
				Where("room_id = ? AND msg_type = ? AND user_id IN ?", roomID, msgType, userIDs),
			"created_at").
			Group("user_id"))
	}

	likes, err := messageCounts(models.MsgTypeLike)
	if err != nil {
		return nil, fmt.Errorf("failed to count contributor likes: %w", err)
	}
	comments, err := messageCounts(models.MsgTypeComment)
	if err != nil {
		return nil, fmt.Errorf("failed to count contributor comments: %w", err)
	}
	giftCounts, err := messageCounts(models.MsgTypeGift)
	if err != nil {
		return nil, fmt.Errorf("failed to count contributor gifts: %w", err)
	}

	giftAmounts, err := s.groupedCounts(windowed(
		s.db.WithContext(ctx).Model(&models.RoomMessage{}).
			Select("room_messages.user_id AS id, COALESCE(SUM(gifts.price), 0) AS n").
			Joins("JOIN gifts ON gifts.name = room_messages.gift_name").
			Where("room_messages.room_id = ? AND room_messages.msg_type = ? AND room_messages.user_id IN ?",
				roomID, models.MsgTypeGift, userIDs),
		"room_messages.created_at").
		Group("room_messages.user_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to sum contributor gift amounts: %w", err)
	}

	watchDurations, err := s.groupedCounts(windowed(
		s.db.WithContext(ctx).Model(&models.RoomView{}).
			Select("user_id AS id, COALESCE(SUM(duration_seconds), 0) AS n").
			Where("room_id = ? AND user_id IN ?", roomID, userIDs),
		"created_at").
		Group("user_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to sum contributor watch durations: %w", err)
	}

	for _, id := range userIDs {
		m := stats[id]
		m[ranking.MetricLikes] = likes[id]
		m[ranking.MetricComments] = comments[id]
		m[ranking.MetricGiftCount] = giftCounts[id]
		m[ranking.MetricGiftAmount] = giftAmounts[id]
		m[ranking.MetricWatchDuration] = watchDurations[id]
	}

	return stats, nil
}

// =============================================================================
// Video Metrics
// =============================================================================

// VideoStatsBatch resolves view and publisher-follower counters for every
// given video.
func (s *MetricsService) VideoStatsBatch(ctx context.Context, videos []models.Video) (map[uint]ranking.MetricSet, error) {
	stats := make(map[uint]ranking.MetricSet, len(videos))
	if len(videos) == 0 {
		return stats, nil
	}

	ids := make([]uint, 0, len(videos))
	ownerIDs := make([]uint, 0, len(videos))
	for _, video := range videos {
		ids = append(ids, video.ID)
		ownerIDs = append(ownerIDs, video.UserID)
		stats[video.ID] = ranking.MetricSet{}
	}

	views, err := s.groupedCounts(
		s.db.WithContext(ctx).Model(&models.VideoView{}).
			Select("video_id AS id, COUNT(*) AS n").
			Where("video_id IN ?", ids).
			Group("video_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to count video views: %w", err)
	}

	followers, err := s.followerCounts(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	for _, video := range videos {
		m := stats[video.ID]
		m[ranking.MetricViews] = views[video.ID]
		m[ranking.MetricFollowers] = followers[video.UserID]
	}

	return stats, nil
}

// =============================================================================
// Shared Query Helpers
// =============================================================================

func (s *MetricsService) groupedCounts(q *gorm.DB) (map[uint]float64, error) {
	var rows []groupCount
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]float64, len(rows))
	for _, row := range rows {
		out[row.ID] = row.N
	}
	return out, nil
}

func (s *MetricsService) roomMessageCounts(ctx context.Context, roomIDs []uint, msgType int, window ranking.Window) (map[uint]float64, error) {
	q := s.db.WithContext(ctx).Model(&models.RoomMessage{}).
		Select("room_id AS id, COUNT(*) AS n").
		Where("room_id IN ? AND msg_type = ?", roomIDs, msgType)
	if cutoff, bounded := window.Cutoff(time.Now()); bounded {
		q = q.Where("created_at >= ?", cutoff)
	}
	return s.groupedCounts(q.Group("room_id"))
}

func (s *MetricsService) userMessageCounts(ctx context.Context, userIDs []uint, msgType int) (map[uint]float64, error) {
	return s.groupedCounts(
		s.db.WithContext(ctx).Model(&models.RoomMessage{}).
			Select("user_id AS id, COUNT(*) AS n").
			Where("user_id IN ? AND msg_type = ?", userIDs, msgType).
			Group("user_id"))
}

func (s *MetricsService) ownedRoomMessageCounts(ctx context.Context, ownerIDs []uint, msgType int) (map[uint]float64, error) {
	return s.groupedCounts(
		s.db.WithContext(ctx).Model(&models.RoomMessage{}).
			Select("live_rooms.owner_id AS id, COUNT(*) AS n").
			Joins("JOIN live_rooms ON live_rooms.id = room_messages.room_id").
			Where("live_rooms.owner_id IN ? AND room_messages.msg_type = ?", ownerIDs, msgType).
			Group("live_rooms.owner_id"))
}

func (s *MetricsService) followerCounts(ctx context.Context, userIDs []uint) (map[uint]float64, error) {
	counts, err := s.groupedCounts(
		s.db.WithContext(ctx).Model(&models.Follow{}).
			Select("following_id AS id, COUNT(*) AS n").
			Where("following_id IN ?", userIDs).
			Group("following_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}
	return counts, nil
}
