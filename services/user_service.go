package services

import (
	"context"
	"fmt"

	"live-backend/config"
	"live-backend/models"
	"live-backend/ranking"

	"gorm.io/gorm"
)

// UserService produces the global user leaderboard.
type UserService struct {
	db      *gorm.DB
	cfg     *config.Config
	metrics *MetricsService
}

// NewUserService creates a new user service instance
func NewUserService(db *gorm.DB, cfg *config.Config, metrics *MetricsService) *UserService {
	return &UserService{db: db, cfg: cfg, metrics: metrics}
}

// ListUsers returns one page of the user leaderboard. The default mode orders
// by the composite leaderboard score; highToLow/lowToHigh order by follower
// count and popularity by the popularity score.
func (s *UserService) ListUsers(ctx context.Context, req models.ListUsersRequest) (*models.Page[models.UserSummary], error) {
	if err := validatePage(req.NowPage, req.PageSize, s.cfg.MaxPageSize); err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Model(&models.User{})
	query = applyKeyword(query, req.Keyword, "username")
	query = applyCreatedRange(query, req.RangTimeStart, req.RangTimeEnd)

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	userIDs := make([]uint, 0, len(users))
	for _, user := range users {
		userIDs = append(userIDs, user.ID)
	}

	stats, err := s.metrics.UserStatsBatch(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		st := stats[user.ID]
		summaries = append(summaries, models.UserSummary{
			ID:              user.ID,
			Username:        user.Username,
			Avatar:          user.Avatar,
			CreatedAt:       user.CreatedAt,
			FollowersCount:  int64(st.Leaderboard[ranking.MetricFollowers]),
			VideosCount:     int64(st.Leaderboard[ranking.MetricVideos]),
			CommentsCount:   int64(st.Leaderboard[ranking.MetricComments]),
			WatchCount:      int64(st.Leaderboard[ranking.MetricWatchCount]),
			LikesCount:      int64(st.Leaderboard[ranking.MetricLikes]),
			GiftCount:       int64(st.Leaderboard[ranking.MetricGiftCount]),
			GiftAmount:      st.Leaderboard[ranking.MetricGiftAmount],
			SigninCount:     int64(st.Leaderboard[ranking.MetricSigninCount]),
			LiveCount:       int64(st.Leaderboard[ranking.MetricLiveCount]),
			LiveDuration:    int64(st.LiveDurationSeconds),
			RankScore:       ranking.Score(st.Leaderboard, ranking.UserLeaderboardWeights),
			PopularityScore: ranking.Score(st.Popularity, ranking.UserPopularityWeights),
		})
	}

	spec := ranking.Resolve(req.OrderBy, ranking.KindUser)
	ranking.SortItems(summaries, spec)

	return models.NewPage(summaries, req.NowPage, req.PageSize), nil
}
