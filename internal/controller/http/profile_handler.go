package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/middleware"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: profileUseCase}
}

// GetChannelProfile godoc
// @Summary      Get a channel profile with subscription aggregates
// @Tags         channels
// @Produce      json
// @Param        username path string true "Channel username"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /users/channel/{username} [get]
func (h *ProfileHandler) GetChannelProfile(c *gin.Context) {
	// Viewer is optional; anonymous viewers just get isSubscribed=false.
	viewerID := ""
	if user, ok := middleware.CurrentUser(c); ok {
		viewerID = user.ID
	}

	profile, err := h.profileUseCase.GetChannelProfile(viewerID, c.Param("username"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, profile, "Channel profile fetched successfully")
}

// GetWatchHistory godoc
// @Summary      Get the current user's watch history with resolved owners
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /users/watch-history [get]
func (h *ProfileHandler) GetWatchHistory(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Fail(c, response.Unauthorized("Unauthorized request"))
		return
	}

	history, err := h.profileUseCase.GetWatchHistory(user.ID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, history, "Watch history fetched successfully")
}

// Subscribe godoc
// @Summary      Subscribe the current user to a channel
// @Tags         channels
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Channel username"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /channel/{username}/subscribe [post]
func (h *ProfileHandler) Subscribe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Fail(c, response.Unauthorized("Unauthorized request"))
		return
	}

	if err := h.profileUseCase.Subscribe(user.ID, c.Param("username")); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "Subscribed successfully")
}

// Unsubscribe godoc
// @Summary      Unsubscribe the current user from a channel
// @Tags         channels
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Channel username"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /channel/{username}/subscribe [delete]
func (h *ProfileHandler) Unsubscribe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Fail(c, response.Unauthorized("Unauthorized request"))
		return
	}

	if err := h.profileUseCase.Unsubscribe(user.ID, c.Param("username")); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "Unsubscribed successfully")
}
