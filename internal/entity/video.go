package entity

import "time"

type Video struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	VideoFile string    `json:"video_file"`
	OwnerID   string    `json:"owner_id"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VideoOwner is the minimal owner projection embedded in watch history.
type VideoOwner struct {
	FullName  string `json:"full_name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// WatchEntry is one watch-history item with the owner reference resolved.
type WatchEntry struct {
	ID        string     `json:"id"`
	Title     string     `json:"title,omitempty"`
	VideoFile string     `json:"video_file"`
	Views     int        `json:"views"`
	Owner     VideoOwner `json:"owner"`
	WatchedAt time.Time  `json:"watched_at"`
}
