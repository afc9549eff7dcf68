package main

import (
	"fmt"
	"strings"

	"vidtube/internal/model"
	"vidtube/pkg/config"
	"vidtube/pkg/database"
	"vidtube/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		fullName string
		email    string
		username string
		password string
	}{
		{"Alice Anderson", "alice@test.com", "Alice", "password123"},
		{"Bob Brown", "bob@test.com", "Bob", "password123"},
		{"Charlie Clark", "charlie@test.com", "Charlie", "password123"},
		{"Diana Davis", "diana@test.com", "Diana", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))
	for _, u := range testUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.username, err)
		}

		user := &model.UserModel{
			ID:        uuid.New().String(),
			Username:  strings.ToLower(u.username),
			Email:     u.email,
			FullName:  u.fullName,
			Password:  string(hashed),
			AvatarURL: fmt.Sprintf("https://picsum.photos/seed/%s/200", strings.ToLower(u.username)),
		}
		if err := db.Where("username = ?", user.Username).FirstOrCreate(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.username, err)
		}

		log.Info("Seeded user %s (%s)", user.Username, user.ID)
		userIDs = append(userIDs, user.ID)
	}

	// Everyone subscribes to alice, alice subscribes to bob.
	for _, subscriberID := range userIDs[1:] {
		sub := &model.SubscriptionModel{
			ID:           uuid.New().String(),
			SubscriberID: subscriberID,
			ChannelID:    userIDs[0],
		}
		if err := db.Where("subscriber_id = ? AND channel_id = ?", sub.SubscriberID, sub.ChannelID).
			FirstOrCreate(sub).Error; err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}
	}
	aliceToBob := &model.SubscriptionModel{
		ID:           uuid.New().String(),
		SubscriberID: userIDs[0],
		ChannelID:    userIDs[1],
	}
	if err := db.Where("subscriber_id = ? AND channel_id = ?", aliceToBob.SubscriberID, aliceToBob.ChannelID).
		FirstOrCreate(aliceToBob).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	video := &model.VideoModel{
		ID:        uuid.New().String(),
		Title:     "Welcome to vidtube",
		VideoFile: "https://cdn.example.com/seed/welcome.mp4",
		OwnerID:   userIDs[0],
	}
	if err := db.Where("title = ? AND owner_id = ?", video.Title, video.OwnerID).
		FirstOrCreate(video).Error; err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	watch := &model.WatchHistoryModel{
		ID:      uuid.New().String(),
		UserID:  userIDs[1],
		VideoID: video.ID,
	}
	if err := db.Where("user_id = ? AND video_id = ?", watch.UserID, watch.VideoID).
		FirstOrCreate(watch).Error; err != nil {
		return fmt.Errorf("failed to create watch event: %w", err)
	}

	return nil
}
