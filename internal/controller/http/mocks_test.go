package http

import (
	"vidtube/internal/entity"
	"vidtube/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockSessionUseCase struct {
	mock.Mock
}

func (m *MockSessionUseCase) Register(input usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockSessionUseCase) Login(email, username, password string) (*entity.User, *usecase.TokenPair, error) {
	args := m.Called(email, username, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.User), args.Get(1).(*usecase.TokenPair), args.Error(2)
}

func (m *MockSessionUseCase) Logout(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockSessionUseCase) Refresh(incomingToken string) (*usecase.TokenPair, error) {
	args := m.Called(incomingToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TokenPair), args.Error(1)
}

func (m *MockSessionUseCase) ChangePassword(userID, oldPassword, newPassword, confirmPassword string) error {
	args := m.Called(userID, oldPassword, newPassword, confirmPassword)
	return args.Error(0)
}

func (m *MockSessionUseCase) UpdateAccountDetails(userID, fullName, email string) (*entity.User, error) {
	args := m.Called(userID, fullName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockSessionUseCase) UpdateAvatar(userID, localPath string) (*entity.User, error) {
	args := m.Called(userID, localPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockSessionUseCase) UpdateCoverImage(userID, localPath string) (*entity.User, error) {
	args := m.Called(userID, localPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockSessionUseCase) ResolveUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockProfileUseCase struct {
	mock.Mock
}

func (m *MockProfileUseCase) GetChannelProfile(viewerID, username string) (*entity.ChannelProfile, error) {
	args := m.Called(viewerID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockProfileUseCase) GetWatchHistory(userID string) ([]*entity.WatchEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WatchEntry), args.Error(1)
}

func (m *MockProfileUseCase) Subscribe(subscriberID, channelUsername string) error {
	args := m.Called(subscriberID, channelUsername)
	return args.Error(0)
}

func (m *MockProfileUseCase) Unsubscribe(subscriberID, channelUsername string) error {
	args := m.Called(subscriberID, channelUsername)
	return args.Error(0)
}

type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) Upload(ownerID, title, localPath string) (*entity.Video, error) {
	args := m.Called(ownerID, title, localPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) RecordView(userID, videoID string) error {
	args := m.Called(userID, videoID)
	return args.Error(0)
}
