package usecase

import (
	"sync"

	"vidtube/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	args := m.Called(username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	args := m.Called(username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(userID, token string) error {
	args := m.Called(userID, token)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(userID, passwordHash string) error {
	args := m.Called(userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAccountDetails(userID, fullName, email string) error {
	args := m.Called(userID, fullName, email)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAvatarURL(userID, url string) error {
	args := m.Called(userID, url)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateCoverImageURL(userID, url string) error {
	args := m.Called(userID, url)
	return args.Error(0)
}

func (m *MockUserRepository) CountSubscribers(channelID string) (int64, error) {
	args := m.Called(channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountSubscribedTo(subscriberID string) (int64, error) {
	args := m.Called(subscriberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) IsSubscribed(subscriberID, channelID string) (bool, error) {
	args := m.Called(subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CreateSubscription(subscriberID, channelID string) error {
	args := m.Called(subscriberID, channelID)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteSubscription(subscriberID, channelID string) error {
	args := m.Called(subscriberID, channelID)
	return args.Error(0)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(videoID string) error {
	args := m.Called(videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) AppendWatchEvent(userID, videoID string) error {
	args := m.Called(userID, videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) WatchHistory(userID string) ([]*entity.WatchEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WatchEntry), args.Error(1)
}

// stubUploader returns a fixed URL, or fails when broken is set.
type stubUploader struct {
	url    string
	err    error
	calls  []string
	broken bool
}

func (s *stubUploader) UploadLocalFile(localPath string) (string, error) {
	s.calls = append(s.calls, localPath)
	if s.broken {
		return "", s.err
	}
	return s.url, nil
}

// stubNotifier records publishes under a lock since Subscribe fires
// them from a goroutine.
type stubNotifier struct {
	mu        sync.Mutex
	published [][2]string
}

func (s *stubNotifier) PublishSubscriptionTask(channelID, subscriberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, [2]string{channelID, subscriberID})
	return nil
}
