package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"live-backend/models"

	"gorm.io/gorm"
)

// ActivityService is the write path for the activity logs the ranking engine
// reads: room messages (comments, likes, gifts) and viewing sessions.
type ActivityService struct {
	db *gorm.DB
}

// NewActivityService creates a new activity service instance
func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// RecordMessage appends one comment/like/gift event to a room's log. Gift
// messages must reference a cataloged gift so amounts stay resolvable.
func (s *ActivityService) RecordMessage(ctx context.Context, roomID uint, req models.RecordMessageRequest) error {
	if err := s.checkRoom(ctx, roomID); err != nil {
		return err
	}

	switch req.MsgType {
	case models.MsgTypeComment, models.MsgTypeLike:
	case models.MsgTypeGift:
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Gift{}).Where("name = ?", req.GiftName).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to look up gift %q: %w", req.GiftName, err)
		}
		if count == 0 {
			return fmt.Errorf("unknown gift: %q", req.GiftName)
		}
	default:
		return fmt.Errorf("invalid message type: %d", req.MsgType)
	}

	message := models.RoomMessage{
		RoomID:    roomID,
		UserID:    req.UserID,
		MsgType:   req.MsgType,
		Content:   req.Content,
		GiftName:  req.GiftName,
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&message).Error; err != nil {
		return fmt.Errorf("failed to record message: %w", err)
	}

	log.Printf("Recorded type %d message for room %d by user %d", req.MsgType, roomID, req.UserID)
	return nil
}

// RecordView appends one viewing session to a room's view log.
func (s *ActivityService) RecordView(ctx context.Context, roomID uint, req models.RecordViewRequest) error {
	if err := s.checkRoom(ctx, roomID); err != nil {
		return err
	}
	if req.DurationSeconds < 0 {
		return fmt.Errorf("watch duration must not be negative: %d", req.DurationSeconds)
	}

	view := models.RoomView{
		RoomID:          roomID,
		UserID:          req.UserID,
		DurationSeconds: req.DurationSeconds,
		CreatedAt:       time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&view).Error; err != nil {
		return fmt.Errorf("failed to record room view: %w", err)
	}
	return nil
}

func (s *ActivityService) checkRoom(ctx context.Context, roomID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.LiveRoom{}).Where("id = ?", roomID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check live room %d: %w", roomID, err)
	}
	if count == 0 {
		return ErrRoomNotFound
	}
	return nil
}
