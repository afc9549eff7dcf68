package usecase

import (
	"net/http"
	"testing"
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProfileFixture(t *testing.T) (*MockUserRepository, *MockVideoRepository, *stubNotifier, ProfileUseCase) {
	t.Helper()
	userRepo := new(MockUserRepository)
	videoRepo := new(MockVideoRepository)
	notifier := &stubNotifier{}
	uc := NewProfileUseCase(userRepo, videoRepo, notifier, logger.New())
	return userRepo, videoRepo, notifier, uc
}

func TestGetChannelProfile_Aggregates(t *testing.T) {
	userRepo, _, _, uc := newProfileFixture(t)
	channel := &entity.User{
		ID:        "channel-1",
		Username:  "alice",
		FullName:  "Alice A",
		Email:     "alice@example.com",
		AvatarURL: "https://media.example.com/a.png",
	}
	userRepo.On("GetByUsername", "alice").Return(channel, nil)
	userRepo.On("CountSubscribers", "channel-1").Return(int64(3), nil)
	userRepo.On("CountSubscribedTo", "channel-1").Return(int64(1), nil)
	userRepo.On("IsSubscribed", "viewer-1", "channel-1").Return(true, nil)

	profile, err := uc.GetChannelProfile("viewer-1", "  Alice  ")

	assert.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, int64(3), profile.SubscribersCount)
	assert.Equal(t, int64(1), profile.ChannelsSubscribedToCount)
	assert.True(t, profile.IsSubscribed)
}

func TestGetChannelProfile_AnonymousViewer(t *testing.T) {
	userRepo, _, _, uc := newProfileFixture(t)
	channel := &entity.User{ID: "channel-1", Username: "alice"}
	userRepo.On("GetByUsername", "alice").Return(channel, nil)
	userRepo.On("CountSubscribers", "channel-1").Return(int64(0), nil)
	userRepo.On("CountSubscribedTo", "channel-1").Return(int64(0), nil)
	userRepo.On("IsSubscribed", "", "channel-1").Return(false, nil)

	profile, err := uc.GetChannelProfile("", "alice")

	assert.NoError(t, err)
	assert.False(t, profile.IsSubscribed)
}

func TestGetChannelProfile_EmptyUsername(t *testing.T) {
	_, _, _, uc := newProfileFixture(t)

	_, err := uc.GetChannelProfile("viewer-1", "   ")

	assert.Equal(t, http.StatusBadRequest, errorCode(t, err))
}

func TestGetChannelProfile_UnknownChannel(t *testing.T) {
	userRepo, _, _, uc := newProfileFixture(t)
	userRepo.On("GetByUsername", "ghost").Return(nil, persistent.ErrNotFound)

	_, err := uc.GetChannelProfile("viewer-1", "ghost")

	assert.Equal(t, http.StatusNotFound, errorCode(t, err))
}

func TestGetWatchHistory_ChronologicalEntries(t *testing.T) {
	userRepo, videoRepo, _, uc := newProfileFixture(t)
	userRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1"}, nil)

	now := time.Now()
	videoRepo.On("WatchHistory", "user-1").Return([]*entity.WatchEntry{
		{ID: "video-1", Title: "first", WatchedAt: now.Add(-time.Hour)},
		{ID: "video-2", Title: "second", WatchedAt: now},
	}, nil)

	entries, err := uc.GetWatchHistory("user-1")

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Title)
	assert.True(t, entries[0].WatchedAt.Before(entries[1].WatchedAt))
}

func TestGetWatchHistory_UnknownUser(t *testing.T) {
	userRepo, videoRepo, _, uc := newProfileFixture(t)
	userRepo.On("GetByID", "ghost").Return(nil, persistent.ErrNotFound)

	_, err := uc.GetWatchHistory("ghost")

	assert.Equal(t, http.StatusNotFound, errorCode(t, err))
	videoRepo.AssertNotCalled(t, "WatchHistory", mock.Anything)
}

func TestSubscribe_Success(t *testing.T) {
	userRepo, _, _, uc := newProfileFixture(t)
	userRepo.On("GetByUsername", "alice").Return(&entity.User{ID: "channel-1", Username: "alice"}, nil)
	userRepo.On("CreateSubscription", "viewer-1", "channel-1").Return(nil)

	err := uc.Subscribe("viewer-1", "alice")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestSubscribe_OwnChannel(t *testing.T) {
	userRepo, _, _, uc := newProfileFixture(t)
	userRepo.On("GetByUsername", "alice").Return(&entity.User{ID: "user-1", Username: "alice"}, nil)

	err := uc.Subscribe("user-1", "alice")

	assert.Equal(t, http.StatusBadRequest, errorCode(t, err))
	userRepo.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything)
}

func TestUnsubscribe_Success(t *testing.T) {
	userRepo, _, _, uc := newProfileFixture(t)
	userRepo.On("GetByUsername", "alice").Return(&entity.User{ID: "channel-1", Username: "alice"}, nil)
	userRepo.On("DeleteSubscription", "viewer-1", "channel-1").Return(nil)

	assert.NoError(t, uc.Unsubscribe("viewer-1", "alice"))
	userRepo.AssertExpectations(t)
}

func TestUnsubscribe_UnknownChannel(t *testing.T) {
	userRepo, _, _, uc := newProfileFixture(t)
	userRepo.On("GetByUsername", "ghost").Return(nil, persistent.ErrNotFound)

	err := uc.Unsubscribe("viewer-1", "ghost")

	assert.Equal(t, http.StatusNotFound, errorCode(t, err))
}
