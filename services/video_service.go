package services

import (
	"context"
	"fmt"

	"live-backend/config"
	"live-backend/models"
	"live-backend/ranking"

	"gorm.io/gorm"
)

// VideoService produces the video listing.
type VideoService struct {
	db      *gorm.DB
	cfg     *config.Config
	metrics *MetricsService
}

// NewVideoService creates a new video service instance
func NewVideoService(db *gorm.DB, cfg *config.Config, metrics *MetricsService) *VideoService {
	return &VideoService{db: db, cfg: cfg, metrics: metrics}
}

// ListVideos returns one page of the video listing. mostPlay orders by view
// count, newPublish by publication time, and the default mode by the video
// composite score.
func (s *VideoService) ListVideos(ctx context.Context, req models.ListVideosRequest) (*models.Page[models.VideoSummary], error) {
	if err := validatePage(req.NowPage, req.PageSize, s.cfg.MaxPageSize); err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Model(&models.Video{})
	if req.UserID != 0 {
		query = query.Where("user_id = ?", req.UserID)
	}
	if req.LiveRoomID != 0 {
		query = query.Where("live_room_id = ?", req.LiveRoomID)
	}
	query = applyKeyword(query, req.Keyword, "title")
	query = applyCreatedRange(query, req.RangTimeStart, req.RangTimeEnd)

	var videos []models.Video
	if err := query.Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}

	stats, err := s.metrics.VideoStatsBatch(ctx, videos)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.VideoSummary, 0, len(videos))
	for _, video := range videos {
		m := stats[video.ID]
		summaries = append(summaries, models.VideoSummary{
			ID:             video.ID,
			UserID:         video.UserID,
			LiveRoomID:     video.LiveRoomID,
			Title:          video.Title,
			CoverURL:       video.CoverURL,
			CreatedAt:      video.CreatedAt,
			ViewsCount:     int64(m[ranking.MetricViews]),
			FollowersCount: int64(m[ranking.MetricFollowers]),
			RankScore:      ranking.Score(m, ranking.VideoWeights),
		})
	}

	spec := ranking.Resolve(req.OrderBy, ranking.KindVideo)
	ranking.SortItems(summaries, spec)

	return models.NewPage(summaries, req.NowPage, req.PageSize), nil
}
