package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/middleware"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	tempDir      string
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, tempDir string) *VideoHandler {
	return &VideoHandler{videoUseCase: videoUseCase, tempDir: tempDir}
}

// Upload godoc
// @Summary      Upload a video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        video formData file true "Video file"
// @Param        title formData string false "Video title"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Failure      500  {object}  response.ErrorEnvelope
// @Router       /videos/upload [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Fail(c, response.Unauthorized("Unauthorized request"))
		return
	}

	localPath := ""
	if file, err := c.FormFile("video"); err == nil {
		path, cleanup, err := stageUpload(c, file, h.tempDir)
		if err != nil {
			response.Fail(c, response.Internal("Failed to stage video file"))
			return
		}
		defer cleanup()
		localPath = path
	}

	video, err := h.videoUseCase.Upload(user.ID, c.PostForm("title"), localPath)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, video, "Video uploaded successfully")
}

// RecordView godoc
// @Summary      Record that the current user watched a video
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos/{id}/view [post]
func (h *VideoHandler) RecordView(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Fail(c, response.Unauthorized("Unauthorized request"))
		return
	}

	if err := h.videoUseCase.RecordView(user.ID, c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "View recorded successfully")
}
