package usecase

import (
	"errors"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"
)

// Notifier publishes best-effort notification tasks; a nil Notifier
// disables publishing entirely.
type Notifier interface {
	PublishSubscriptionTask(channelID, subscriberID string) error
}

type ProfileUseCase interface {
	GetChannelProfile(viewerID, username string) (*entity.ChannelProfile, error)
	GetWatchHistory(userID string) ([]*entity.WatchEntry, error)
	Subscribe(subscriberID, channelUsername string) error
	Unsubscribe(subscriberID, channelUsername string) error
}

type profileUseCase struct {
	userRepo  persistent.UserRepository
	videoRepo persistent.VideoRepository
	notifier  Notifier
	logger    *logger.Logger
}

func NewProfileUseCase(
	userRepo persistent.UserRepository,
	videoRepo persistent.VideoRepository,
	notifier Notifier,
	logger *logger.Logger,
) ProfileUseCase {
	return &profileUseCase{
		userRepo:  userRepo,
		videoRepo: videoRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// GetChannelProfile recomputes the subscription aggregates on every call;
// there is no cached view of the social graph.
func (uc *profileUseCase) GetChannelProfile(viewerID, username string) (*entity.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, response.BadRequest("Username is missing")
	}

	channel, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, response.NotFound("Channel does not exist")
		}
		uc.logger.Error("Failed to look up channel %s: %v", username, err)
		return nil, response.Internal("Failed to load channel profile")
	}

	subscribers, err := uc.userRepo.CountSubscribers(channel.ID)
	if err != nil {
		uc.logger.Error("Failed to count subscribers for %s: %v", channel.ID, err)
		return nil, response.Internal("Failed to load channel profile")
	}

	subscribedTo, err := uc.userRepo.CountSubscribedTo(channel.ID)
	if err != nil {
		uc.logger.Error("Failed to count subscriptions for %s: %v", channel.ID, err)
		return nil, response.Internal("Failed to load channel profile")
	}

	isSubscribed, err := uc.userRepo.IsSubscribed(viewerID, channel.ID)
	if err != nil {
		uc.logger.Error("Failed to check subscription for %s -> %s: %v", viewerID, channel.ID, err)
		return nil, response.Internal("Failed to load channel profile")
	}

	return &entity.ChannelProfile{
		FullName:                  channel.FullName,
		Username:                  channel.Username,
		AvatarURL:                 channel.AvatarURL,
		CoverImageURL:             channel.CoverImageURL,
		Email:                     channel.Email,
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
	}, nil
}

func (uc *profileUseCase) GetWatchHistory(userID string) ([]*entity.WatchEntry, error) {
	// An authenticated caller whose record vanished is an explicit 404,
	// not a nil dereference further down.
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, response.NotFound("User does not exist")
		}
		uc.logger.Error("Failed to load user %s: %v", userID, err)
		return nil, response.Internal("Failed to load watch history")
	}

	entries, err := uc.videoRepo.WatchHistory(userID)
	if err != nil {
		uc.logger.Error("Failed to load watch history for %s: %v", userID, err)
		return nil, response.Internal("Failed to load watch history")
	}
	return entries, nil
}

func (uc *profileUseCase) Subscribe(subscriberID, channelUsername string) error {
	channel, err := uc.resolveChannel(channelUsername)
	if err != nil {
		return err
	}

	if channel.ID == subscriberID {
		return response.BadRequest("You cannot subscribe to your own channel")
	}

	if err := uc.userRepo.CreateSubscription(subscriberID, channel.ID); err != nil {
		uc.logger.Error("Failed to create subscription %s -> %s: %v", subscriberID, channel.ID, err)
		return response.Internal("Failed to subscribe")
	}

	if uc.notifier != nil {
		go func() {
			if err := uc.notifier.PublishSubscriptionTask(channel.ID, subscriberID); err != nil {
				uc.logger.Error("Failed to publish subscription notification: %v", err)
			}
		}()
	}

	return nil
}

func (uc *profileUseCase) Unsubscribe(subscriberID, channelUsername string) error {
	channel, err := uc.resolveChannel(channelUsername)
	if err != nil {
		return err
	}

	if err := uc.userRepo.DeleteSubscription(subscriberID, channel.ID); err != nil {
		uc.logger.Error("Failed to delete subscription %s -> %s: %v", subscriberID, channel.ID, err)
		return response.Internal("Failed to unsubscribe")
	}
	return nil
}

func (uc *profileUseCase) resolveChannel(username string) (*entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, response.BadRequest("Username is missing")
	}

	channel, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, response.NotFound("Channel does not exist")
		}
		uc.logger.Error("Failed to look up channel %s: %v", username, err)
		return nil, response.Internal("Failed to look up channel")
	}
	return channel, nil
}
