package persistent

import (
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	IncrementViews(videoID string) error
	AppendWatchEvent(userID, videoID string) error
	WatchHistory(userID string) ([]*entity.WatchEntry, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) IncrementViews(videoID string) error {
	return r.db.Model(&model.VideoModel{}).
		Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *videoRepository) AppendWatchEvent(userID, videoID string) error {
	event := &model.WatchHistoryModel{
		ID:      uuid.New().String(),
		UserID:  userID,
		VideoID: videoID,
	}
	return r.db.Create(event).Error
}

// watchRow is the flattened join result of watch_history x videos x the
// owning user, projected down to the owner's public profile fields.
type watchRow struct {
	VideoID       string
	Title         string
	VideoFile     string
	Views         int
	OwnerFullName string
	OwnerUsername string
	OwnerAvatar   string
	WatchedAt     time.Time
}

func (r *videoRepository) WatchHistory(userID string) ([]*entity.WatchEntry, error) {
	var rows []watchRow
	err := r.db.Table("watch_history").
		Select(`videos.id AS video_id,
			videos.title AS title,
			videos.video_file AS video_file,
			videos.views AS views,
			users.full_name AS owner_full_name,
			users.username AS owner_username,
			users.avatar_url AS owner_avatar,
			watch_history.created_at AS watched_at`).
		Joins("JOIN videos ON videos.id = watch_history.video_id").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("watch_history.user_id = ?", userID).
		Order("watch_history.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.WatchEntry, len(rows))
	for i, row := range rows {
		entries[i] = &entity.WatchEntry{
			ID:        row.VideoID,
			Title:     row.Title,
			VideoFile: row.VideoFile,
			Views:     row.Views,
			Owner: entity.VideoOwner{
				FullName:  row.OwnerFullName,
				Username:  row.OwnerUsername,
				AvatarURL: row.OwnerAvatar,
			},
			WatchedAt: row.WatchedAt,
		}
	}
	return entries, nil
}
