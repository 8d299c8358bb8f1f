package database

import (
	"fmt"
	"log"
	"time"

	"live-backend/config"
	"live-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB(cfg *config.Config) error {
	var err error

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate schemas
	err = DB.AutoMigrate(
		&models.User{},
		&models.LiveRoom{},
		&models.Video{},
		&models.RoomMessage{},
		&models.Gift{},
		&models.RoomView{},
		&models.VideoView{},
		&models.Follow{},
		&models.SigninRecord{},
		&models.BroadcastSession{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database initialized successfully")
	return nil
}

// SeedDemoData populates a small demo dataset so the listings have something
// to rank. Skipped when users already exist.
func SeedDemoData() error {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Printf("Database already contains %d users, skipping demo seed", count)
		return nil
	}

	log.Println("Seeding demo data...")
	now := time.Now()

	gifts := []models.Gift{
		{Name: "rose", Price: 1},
		{Name: "rocket", Price: 100},
		{Name: "crown", Price: 500},
	}
	if err := DB.Create(&gifts).Error; err != nil {
		return fmt.Errorf("failed to seed gifts: %w", err)
	}

	users := make([]models.User, 0, 20)
	for i := 1; i <= 20; i++ {
		users = append(users, models.User{
			Username:  fmt.Sprintf("user_%d", i),
			CreatedAt: now.AddDate(0, 0, -i),
		})
	}
	if err := DB.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	rooms := make([]models.LiveRoom, 0, 5)
	for i := 0; i < 5; i++ {
		rooms = append(rooms, models.LiveRoom{
			Name:        fmt.Sprintf("room_%d", i+1),
			Description: fmt.Sprintf("demo live room %d", i+1),
			OwnerID:     users[i].ID,
			CreatedAt:   now.AddDate(0, 0, -(i + 1)),
		})
	}
	if err := DB.Create(&rooms).Error; err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	// First room is live, the rest have finished sessions of varying age.
	sessions := []models.BroadcastSession{
		{RoomID: rooms[0].ID, UserID: rooms[0].OwnerID, StartedAt: now.Add(-30 * time.Minute)},
	}
	for i := 1; i < 5; i++ {
		start := now.Add(-time.Duration(i*12) * time.Hour)
		end := start.Add(2 * time.Hour)
		sessions = append(sessions, models.BroadcastSession{
			RoomID:    rooms[i].ID,
			UserID:    rooms[i].OwnerID,
			StartedAt: start,
			EndedAt:   &end,
		})
	}
	if err := DB.Create(&sessions).Error; err != nil {
		return fmt.Errorf("failed to seed broadcast sessions: %w", err)
	}

	messages := []models.RoomMessage{}
	views := []models.RoomView{}
	for i, room := range rooms {
		activity := (5 - i) * 10
		for j := 0; j < activity; j++ {
			user := users[j%len(users)]
			age := time.Duration(j%48) * time.Hour
			msgType := models.MsgTypeComment
			giftName := ""
			if j%5 == 0 {
				msgType = models.MsgTypeLike
			}
			if j%7 == 0 {
				msgType = models.MsgTypeGift
				giftName = gifts[j%len(gifts)].Name
			}
			messages = append(messages, models.RoomMessage{
				RoomID:    room.ID,
				UserID:    user.ID,
				MsgType:   msgType,
				GiftName:  giftName,
				CreatedAt: now.Add(-age),
			})
			views = append(views, models.RoomView{
				RoomID:          room.ID,
				UserID:          user.ID,
				DurationSeconds: int64(60 * (j%30 + 1)),
				CreatedAt:       now.Add(-age),
			})
		}
	}
	if err := DB.Create(&messages).Error; err != nil {
		return fmt.Errorf("failed to seed messages: %w", err)
	}
	if err := DB.Create(&views).Error; err != nil {
		return fmt.Errorf("failed to seed room views: %w", err)
	}

	follows := []models.Follow{}
	for i, user := range users {
		follows = append(follows, models.Follow{
			FollowerID:  user.ID,
			FollowingID: users[(i+1)%len(users)].ID,
			CreatedAt:   now.AddDate(0, 0, -i),
		})
	}
	if err := DB.Create(&follows).Error; err != nil {
		return fmt.Errorf("failed to seed follows: %w", err)
	}

	log.Printf("Seeded %d users, %d rooms, %d messages, %d views",
		len(users), len(rooms), len(messages), len(views))
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
