package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Title     string    `json:"title"`
	VideoFile string    `gorm:"type:varchar(500);not null" json:"video_file"`
	OwnerID   string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Views     int       `gorm:"default:0" json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
