package services

import (
	"context"
	"fmt"

	"live-backend/config"
	"live-backend/models"
	"live-backend/ranking"

	"gorm.io/gorm"
)

// ContributorService produces the per-room, time-windowed contributor
// leaderboard. Candidates are the users with at least one viewing session of
// the room.
type ContributorService struct {
	db      *gorm.DB
	cfg     *config.Config
	metrics *MetricsService
}

// NewContributorService creates a new contributor service instance
func NewContributorService(db *gorm.DB, cfg *config.Config, metrics *MetricsService) *ContributorService {
	return &ContributorService{db: db, cfg: cfg, metrics: metrics}
}

// ListRoomContributors returns one page of a room's contributor leaderboard.
// The room must exist; a missing primary subject is a not-found error, unlike
// a missing candidate mid-aggregation which simply scores zero.
func (s *ContributorService) ListRoomContributors(ctx context.Context, roomID uint, req models.ListContributorsRequest) (*models.Page[models.ContributorSummary], error) {
	if err := validatePage(req.NowPage, req.PageSize, s.cfg.MaxPageSize); err != nil {
		return nil, err
	}

	var roomCount int64
	if err := s.db.WithContext(ctx).Model(&models.LiveRoom{}).Where("id = ?", roomID).Count(&roomCount).Error; err != nil {
		return nil, fmt.Errorf("failed to check live room %d: %w", roomID, err)
	}
	if roomCount == 0 {
		return nil, ErrRoomNotFound
	}

	var candidates []models.User
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id IN (?)", s.db.Model(&models.RoomView{}).
			Select("DISTINCT user_id").
			Where("room_id = ?", roomID)).
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room contributors: %w", err)
	}

	userIDs := make([]uint, 0, len(candidates))
	for _, user := range candidates {
		userIDs = append(userIDs, user.ID)
	}

	window := ranking.ParseWindow(req.RankType)
	stats, err := s.metrics.ContributorStatsBatch(ctx, roomID, userIDs, window)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ContributorSummary, 0, len(candidates))
	for _, user := range candidates {
		m := stats[user.ID]
		summaries = append(summaries, models.ContributorSummary{
			UserID:        user.ID,
			Username:      user.Username,
			Avatar:        user.Avatar,
			GiftCount:     int64(m[ranking.MetricGiftCount]),
			GiftAmount:    m[ranking.MetricGiftAmount],
			LikesCount:    int64(m[ranking.MetricLikes]),
			CommentsCount: int64(m[ranking.MetricComments]),
			WatchDuration: int64(m[ranking.MetricWatchDuration]),
			ContributeScore: ranking.ContributionScore(
				m[ranking.MetricLikes],
				m[ranking.MetricComments],
				m[ranking.MetricWatchDuration],
				m[ranking.MetricGiftAmount],
			),
		})
	}

	spec := ranking.Resolve(req.OrderBy, ranking.KindContributor)
	ranking.SortItems(summaries, spec)

	return models.NewPage(summaries, req.NowPage, req.PageSize), nil
}
