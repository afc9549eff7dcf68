package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WatchHistoryModel is one append-only watch event; a user's history is
// the set of rows ordered by CreatedAt.
type WatchHistoryModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	VideoID   string    `gorm:"type:uuid;not null" json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (WatchHistoryModel) TableName() string {
	return "watch_history"
}

func (w *WatchHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}
