package usecase

import (
	"errors"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"
)

type VideoUseCase interface {
	Upload(ownerID, title, localPath string) (*entity.Video, error)
	RecordView(userID, videoID string) error
}

type videoUseCase struct {
	videoRepo persistent.VideoRepository
	uploader  Uploader
	logger    *logger.Logger
}

func NewVideoUseCase(videoRepo persistent.VideoRepository, uploader Uploader, logger *logger.Logger) VideoUseCase {
	return &videoUseCase{
		videoRepo: videoRepo,
		uploader:  uploader,
		logger:    logger,
	}
}

func (uc *videoUseCase) Upload(ownerID, title, localPath string) (*entity.Video, error) {
	if localPath == "" {
		return nil, response.BadRequest("Video file is required")
	}

	videoURL, err := uc.uploader.UploadLocalFile(localPath)
	if err != nil || videoURL == "" {
		uc.logger.Error("Failed to upload video: %v", err)
		return nil, response.Internal("Failed to get video URL from media host")
	}

	video := &entity.Video{
		Title:     title,
		VideoFile: videoURL,
		OwnerID:   ownerID,
	}
	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to create video record: %v", err)
		return nil, response.Internal("Failed to save video")
	}

	return video, nil
}

func (uc *videoUseCase) RecordView(userID, videoID string) error {
	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return response.NotFound("Video not found")
		}
		uc.logger.Error("Failed to load video %s: %v", videoID, err)
		return response.Internal("Failed to record view")
	}

	if err := uc.videoRepo.AppendWatchEvent(userID, videoID); err != nil {
		uc.logger.Error("Failed to append watch event: %v", err)
		return response.Internal("Failed to record view")
	}

	if err := uc.videoRepo.IncrementViews(videoID); err != nil {
		uc.logger.Error("Failed to increment views for %s: %v", videoID, err)
	}
	return nil
}
