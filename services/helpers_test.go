package services

import (
	"testing"
	"time"

	"live-backend/config"
	"live-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// An in-memory sqlite database exists per connection; keep the pool at
	// one so every query sees the same database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
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
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultPageSize: 10,
		MaxPageSize:     100,
		QueryTimeout:    5 * time.Second,
	}
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, CreatedAt: time.Now().AddDate(0, 0, -1)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func createRoom(t *testing.T, db *gorm.DB, name string, ownerID uint) models.LiveRoom {
	t.Helper()
	room := models.LiveRoom{Name: name, OwnerID: ownerID, CreatedAt: time.Now().AddDate(0, 0, -1)}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room %s: %v", name, err)
	}
	return room
}

func createMessages(t *testing.T, db *gorm.DB, roomID, userID uint, msgType, n int, at time.Time, giftName string) {
	t.Helper()
	messages := make([]models.RoomMessage, 0, n)
	for i := 0; i < n; i++ {
		messages = append(messages, models.RoomMessage{
			RoomID:    roomID,
			UserID:    userID,
			MsgType:   msgType,
			GiftName:  giftName,
			CreatedAt: at,
		})
	}
	if err := db.Create(&messages).Error; err != nil {
		t.Fatalf("failed to create messages: %v", err)
	}
}
