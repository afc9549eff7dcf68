package entity

import "time"

// Subscription is a directed edge: SubscriberID follows ChannelID.
type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriber_id"`
	ChannelID    string    `json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ChannelProfile is the derived creator-facing view of a user.
type ChannelProfile struct {
	FullName                  string `json:"full_name"`
	Username                  string `json:"username"`
	AvatarURL                 string `json:"avatar_url"`
	CoverImageURL             string `json:"cover_image_url,omitempty"`
	Email                     string `json:"email"`
	SubscribersCount          int64  `json:"subscribers_count"`
	ChannelsSubscribedToCount int64  `json:"channels_subscribed_to_count"`
	IsSubscribed              bool   `json:"is_subscribed"`
}
