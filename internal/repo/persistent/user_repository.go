package persistent

import (
	"errors"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByUsernameOrEmail(username, email string) (*entity.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	UpdateRefreshToken(userID, token string) error
	UpdatePassword(userID, passwordHash string) error
	UpdateAccountDetails(userID, fullName, email string) error
	UpdateAvatarURL(userID, url string) error
	UpdateCoverImageURL(userID, url string) error

	CountSubscribers(channelID string) (int64, error)
	CountSubscribedTo(subscriberID string) (int64, error)
	IsSubscribed(subscriberID, channelID string) (bool, error)
	CreateSubscription(subscriberID, channelID string) error
	DeleteSubscription(subscriberID, channelID string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.Where("username = ? OR email = ?", username, email).First(&userModel).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateRefreshToken(userID, token string) error {
	return r.updateColumns(userID, map[string]interface{}{"refresh_token": token})
}

func (r *userRepository) UpdatePassword(userID, passwordHash string) error {
	return r.updateColumns(userID, map[string]interface{}{"password": passwordHash})
}

func (r *userRepository) UpdateAccountDetails(userID, fullName, email string) error {
	return r.updateColumns(userID, map[string]interface{}{
		"full_name": fullName,
		"email":     email,
	})
}

func (r *userRepository) UpdateAvatarURL(userID, url string) error {
	return r.updateColumns(userID, map[string]interface{}{"avatar_url": url})
}

func (r *userRepository) UpdateCoverImageURL(userID, url string) error {
	return r.updateColumns(userID, map[string]interface{}{"cover_image_url": url})
}

func (r *userRepository) updateColumns(userID string, columns map[string]interface{}) error {
	result := r.db.Model(&model.UserModel{}).Where("id = ?", userID).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) CountSubscribers(channelID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountSubscribedTo(subscriberID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) IsSubscribed(subscriberID, channelID string) (bool, error) {
	if subscriberID == "" {
		return false, nil
	}
	var count int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) CreateSubscription(subscriberID, channelID string) error {
	var existing model.SubscriptionModel
	err := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&existing).Error
	if err == nil {
		// Edge already present; subscribing twice is a no-op.
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	subscriptionModel := &model.SubscriptionModel{
		ID:           uuid.New().String(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	return r.db.Create(subscriptionModel).Error
}

func (r *userRepository) DeleteSubscription(subscriberID, channelID string) error {
	return r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.SubscriptionModel{}).Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
