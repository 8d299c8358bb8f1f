package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"live-backend/models"
	"live-backend/ranking"
)

func TestListRoomContributors_ScoreExample(t *testing.T) {
	db := newTestDB(t)
	svc := NewContributorService(db, testConfig(), NewMetricsService(db))

	anchor := createUser(t, db, "anchor")
	fan := createUser(t, db, "superfan")
	room := createRoom(t, db, "room", anchor.ID)

	if err := db.Create(&models.Gift{Name: "rose", Price: 50}).Error; err != nil {
		t.Fatalf("failed to create gift: %v", err)
	}

	now := time.Now()
	// 60 likes, 20 comments, 1800s watched, 150 gifted:
	// floor(60/30 + 20/10 + 1800/900 + 150/100) = floor(2+2+2+1.5) = 7
	createMessages(t, db, room.ID, fan.ID, models.MsgTypeLike, 60, now, "")
	createMessages(t, db, room.ID, fan.ID, models.MsgTypeComment, 20, now, "")
	createMessages(t, db, room.ID, fan.ID, models.MsgTypeGift, 3, now, "rose")
	view := models.RoomView{RoomID: room.ID, UserID: fan.ID, DurationSeconds: 1800, CreatedAt: now}
	if err := db.Create(&view).Error; err != nil {
		t.Fatalf("failed to create view: %v", err)
	}

	page, err := svc.ListRoomContributors(context.Background(), room.ID, models.ListContributorsRequest{
		NowPage: 1, PageSize: 10,
	})
	if err != nil {
		t.Fatalf("ListRoomContributors() error: %v", err)
	}

	if len(page.Items) != 1 {
		t.Fatalf("got %d contributors, expected 1", len(page.Items))
	}
	got := page.Items[0]
	if got.UserID != fan.ID {
		t.Errorf("contributor = user %d, expected %d", got.UserID, fan.ID)
	}
	if got.ContributeScore != 7 {
		t.Errorf("contribute score = %d, expected 7", got.ContributeScore)
	}
	if got.GiftAmount != 150 {
		t.Errorf("gift amount = %v, expected 150", got.GiftAmount)
	}
	if got.WatchDuration != 1800 {
		t.Errorf("watch duration = %v, expected 1800", got.WatchDuration)
	}
}

func TestListRoomContributors_MissingRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewContributorService(db, testConfig(), NewMetricsService(db))

	_, err := svc.ListRoomContributors(context.Background(), 999, models.ListContributorsRequest{
		NowPage: 1, PageSize: 10,
	})
	if !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("ListRoomContributors(missing room) error = %v, expected ErrRoomNotFound", err)
	}
}

func TestListRoomContributors_GiftAmountMode(t *testing.T) {
	db := newTestDB(t)
	svc := NewContributorService(db, testConfig(), NewMetricsService(db))

	anchor := createUser(t, db, "anchor")
	modest := createUser(t, db, "modest")
	whale := createUser(t, db, "whale")
	room := createRoom(t, db, "room", anchor.ID)

	if err := db.Create(&models.Gift{Name: "crown", Price: 500}).Error; err != nil {
		t.Fatalf("failed to create gift: %v", err)
	}

	now := time.Now()
	// The modest user is far more chatty, the whale gifts more.
	createMessages(t, db, room.ID, modest.ID, models.MsgTypeComment, 100, now, "")
	createMessages(t, db, room.ID, modest.ID, models.MsgTypeGift, 1, now, "crown")
	createMessages(t, db, room.ID, whale.ID, models.MsgTypeGift, 4, now, "crown")
	views := []models.RoomView{
		{RoomID: room.ID, UserID: modest.ID, DurationSeconds: 60, CreatedAt: now},
		{RoomID: room.ID, UserID: whale.ID, DurationSeconds: 60, CreatedAt: now},
	}
	if err := db.Create(&views).Error; err != nil {
		t.Fatalf("failed to create views: %v", err)
	}

	page, err := svc.ListRoomContributors(context.Background(), room.ID, models.ListContributorsRequest{
		OrderBy: ranking.ModeGiftAmount, NowPage: 1, PageSize: 10,
	})
	if err != nil {
		t.Fatalf("ListRoomContributors() error: %v", err)
	}

	if len(page.Items) != 2 {
		t.Fatalf("got %d contributors, expected 2", len(page.Items))
	}
	if page.Items[0].UserID != whale.ID {
		t.Errorf("gift amount mode put user %d first, expected the whale", page.Items[0].UserID)
	}
}

func TestListRoomContributors_WindowRestrictsCounters(t *testing.T) {
	db := newTestDB(t)
	svc := NewContributorService(db, testConfig(), NewMetricsService(db))

	anchor := createUser(t, db, "anchor")
	fan := createUser(t, db, "fan")
	room := createRoom(t, db, "room", anchor.ID)

	now := time.Now()
	// Old likes fall outside the daily window; today's comment stays in.
	createMessages(t, db, room.ID, fan.ID, models.MsgTypeLike, 30, now.AddDate(0, 0, -10), "")
	createMessages(t, db, room.ID, fan.ID, models.MsgTypeComment, 10, now, "")
	view := models.RoomView{RoomID: room.ID, UserID: fan.ID, DurationSeconds: 900, CreatedAt: now.AddDate(0, 0, -10)}
	if err := db.Create(&view).Error; err != nil {
		t.Fatalf("failed to create view: %v", err)
	}

	allTime, err := svc.ListRoomContributors(context.Background(), room.ID, models.ListContributorsRequest{
		NowPage: 1, PageSize: 10,
	})
	if err != nil {
		t.Fatalf("ListRoomContributors(all-time) error: %v", err)
	}
	// 30/30 + 10/10 + 900/900 = 3
	if got := allTime.Items[0].ContributeScore; got != 3 {
		t.Errorf("all-time contribute score = %d, expected 3", got)
	}

	daily, err := svc.ListRoomContributors(context.Background(), room.ID, models.ListContributorsRequest{
		RankType: string(ranking.WindowDaily), NowPage: 1, PageSize: 10,
	})
	if err != nil {
		t.Fatalf("ListRoomContributors(daily) error: %v", err)
	}
	// Only the 10 comments fall inside the window: 10/10 = 1.
	if got := daily.Items[0].ContributeScore; got != 1 {
		t.Errorf("daily contribute score = %d, expected 1", got)
	}
}
