package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"live-backend/config"
	"live-backend/models"
	"live-backend/ranking"

	"gorm.io/gorm"
)

// RoomService produces the live-room discovery feed: filter, aggregate,
// score, tier, sort, page. It holds no state of its own; every call reads the
// counters current at query time. Because pagination is offset-based over a
// live-changing candidate set, two sequential page requests are not
// guaranteed to form a gap-free, duplicate-free sequence — an accepted
// weak-consistency trade-off.
type RoomService struct {
	db      *gorm.DB
	cfg     *config.Config
	metrics *MetricsService
	cache   *PageCache
}

// NewRoomService creates a new room service instance. cache may be nil.
func NewRoomService(db *gorm.DB, cfg *config.Config, metrics *MetricsService, cache *PageCache) *RoomService {
	return &RoomService{db: db, cfg: cfg, metrics: metrics, cache: cache}
}

// ListRooms returns one page of the discovery feed. Live rooms always rank
// above offline rooms in the default mode, irrespective of score.
func (s *RoomService) ListRooms(ctx context.Context, req models.ListRoomsRequest) (*models.Page[models.RoomSummary], error) {
	if err := validatePage(req.NowPage, req.PageSize, s.cfg.MaxPageSize); err != nil {
		return nil, err
	}

	cacheKey := roomPageCacheKey(req)
	var cached models.Page[models.RoomSummary]
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	query := s.db.WithContext(ctx).Model(&models.LiveRoom{})
	if req.ParentCategoryID != 0 {
		query = query.Where("parent_category_id = ?", req.ParentCategoryID)
	}
	if req.ChildCategoryID != 0 {
		query = query.Where("child_category_id = ?", req.ChildCategoryID)
	}
	query = applyKeyword(query, req.Keyword, "name", "description")
	query = applyCreatedRange(query, req.RangTimeStart, req.RangTimeEnd)

	var rooms []models.LiveRoom
	if err := query.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch live rooms: %w", err)
	}

	window := ranking.ParseWindow(req.RankType)
	stats, err := s.metrics.RoomStatsBatch(ctx, rooms, window)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]models.RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		st := stats[room.ID]
		summary := models.RoomSummary{
			ID:               room.ID,
			Name:             room.Name,
			Description:      room.Description,
			CoverURL:         room.CoverURL,
			OwnerID:          room.OwnerID,
			ParentCategoryID: room.ParentCategoryID,
			ChildCategoryID:  room.ChildCategoryID,
			CreatedAt:        room.CreatedAt,
			IsLive:           st.IsLive,
			ViewsCount:       int64(st.Metrics[ranking.MetricViews]),
			LikesCount:       int64(st.Metrics[ranking.MetricLikes]),
			CommentsCount:    int64(st.Metrics[ranking.MetricComments]),
			GiftCount:        int64(st.Metrics[ranking.MetricGiftCount]),
			GiftAmount:       st.Metrics[ranking.MetricGiftAmount],
			FollowersCount:   int64(st.Metrics[ranking.MetricFollowers]),
		}
		if !st.LatestStart.IsZero() {
			latest := st.LatestStart
			summary.LatestStartTime = &latest
		}
		summary.RankScore = ranking.Score(st.Metrics, ranking.RoomDiscoveryWeights) +
			ranking.DecayPenalty(st.LatestStart, now)
		summaries = append(summaries, summary)
	}

	spec := ranking.Resolve(req.OrderBy, ranking.KindRoom)
	ranking.SortItems(summaries, spec)

	page := models.NewPage(summaries, req.NowPage, req.PageSize)
	s.cache.Set(ctx, cacheKey, page)
	return page, nil
}

// GetRoom returns one room by id, or ErrRoomNotFound.
func (s *RoomService) GetRoom(ctx context.Context, id uint) (*models.LiveRoom, error) {
	var room models.LiveRoom
	err := s.db.WithContext(ctx).First(&room, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to fetch live room %d: %w", id, err)
	}
	return &room, nil
}

func roomPageCacheKey(req models.ListRoomsRequest) string {
	return fmt.Sprintf("rooms:%d:%d:%s:%s:%s:%d:%d:%d:%d",
		req.ParentCategoryID, req.ChildCategoryID,
		strings.ToLower(req.Keyword), req.OrderBy, req.RankType,
		req.RangTimeStart, req.RangTimeEnd,
		req.NowPage, req.PageSize)
}

// =============================================================================
// Shared Filter Helpers
// =============================================================================

// applyKeyword adds a case-insensitive substring match over the given columns.
func applyKeyword(query *gorm.DB, keyword string, columns ...string) *gorm.DB {
	if keyword == "" {
		return query
	}
	pattern := "%" + strings.ToLower(keyword) + "%"
	conditions := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, column := range columns {
		conditions[i] = "LOWER(" + column + ") LIKE ?"
		args[i] = pattern
	}
	return query.Where(strings.Join(conditions, " OR "), args...)
}

// applyCreatedRange restricts created_at to [start, end] (unix seconds,
// zero means unbounded).
func applyCreatedRange(query *gorm.DB, start, end int64) *gorm.DB {
	if start > 0 {
		query = query.Where("created_at >= ?", time.Unix(start, 0))
	}
	if end > 0 {
		query = query.Where("created_at <= ?", time.Unix(end, 0))
	}
	return query
}
