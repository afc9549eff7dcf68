package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidtube/internal/entity"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newProfileRouter(t *testing.T, profileUC *MockProfileUseCase, authed bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handler := NewProfileHandler(profileUC)

	router := gin.New()
	if authed {
		router.Use(injectUser(testUser()))
	}
	router.GET("/api/v1/users/channel/:username", handler.GetChannelProfile)
	router.GET("/api/v1/users/watch-history", handler.GetWatchHistory)
	router.POST("/api/v1/channel/:username/subscribe", handler.Subscribe)
	router.DELETE("/api/v1/channel/:username/subscribe", handler.Unsubscribe)
	return router
}

func TestGetChannelProfileHandler(t *testing.T) {
	profileUC := new(MockProfileUseCase)
	profileUC.On("GetChannelProfile", "user-1", "bob").Return(&entity.ChannelProfile{
		Username:                  "bob",
		FullName:                  "Bob B",
		SubscribersCount:          3,
		ChannelsSubscribedToCount: 1,
		IsSubscribed:              true,
	}, nil)

	router := newProfileRouter(t, profileUC, true)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/users/channel/bob", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w.Body)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["subscribers_count"])
	assert.Equal(t, true, data["is_subscribed"])
}

func TestGetChannelProfileHandler_Anonymous(t *testing.T) {
	profileUC := new(MockProfileUseCase)
	profileUC.On("GetChannelProfile", "", "bob").Return(&entity.ChannelProfile{
		Username: "bob",
	}, nil)

	router := newProfileRouter(t, profileUC, false)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/users/channel/bob", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	profileUC.AssertExpectations(t)
}

func TestGetChannelProfileHandler_NotFound(t *testing.T) {
	profileUC := new(MockProfileUseCase)
	profileUC.On("GetChannelProfile", "", "ghost").
		Return(nil, response.NotFound("Channel does not exist"))

	router := newProfileRouter(t, profileUC, false)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/users/channel/ghost", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var envelope response.ErrorEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Channel does not exist", envelope.Message)
	assert.NotNil(t, envelope.Errors)
}

func TestGetWatchHistoryHandler(t *testing.T) {
	profileUC := new(MockProfileUseCase)
	profileUC.On("GetWatchHistory", "user-1").Return([]*entity.WatchEntry{
		{
			ID:        "video-1",
			Title:     "first",
			Views:     10,
			Owner:     entity.VideoOwner{Username: "bob", FullName: "Bob B"},
			WatchedAt: time.Now(),
		},
	}, nil)

	router := newProfileRouter(t, profileUC, true)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/users/watch-history", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w.Body)
	entries := envelope["data"].([]interface{})
	assert.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	owner := entry["owner"].(map[string]interface{})
	assert.Equal(t, "bob", owner["username"])
}

func TestGetWatchHistoryHandler_Unauthenticated(t *testing.T) {
	router := newProfileRouter(t, new(MockProfileUseCase), false)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/users/watch-history", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubscribeHandler(t *testing.T) {
	profileUC := new(MockProfileUseCase)
	profileUC.On("Subscribe", "user-1", "bob").Return(nil)

	router := newProfileRouter(t, profileUC, true)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/channel/bob/subscribe", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	profileUC.AssertExpectations(t)
}

func TestSubscribeHandler_OwnChannel(t *testing.T) {
	profileUC := new(MockProfileUseCase)
	profileUC.On("Subscribe", "user-1", "alice").
		Return(response.BadRequest("You cannot subscribe to your own channel"))

	router := newProfileRouter(t, profileUC, true)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/channel/alice/subscribe", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnsubscribeHandler(t *testing.T) {
	profileUC := new(MockProfileUseCase)
	profileUC.On("Unsubscribe", "user-1", "bob").Return(nil)

	router := newProfileRouter(t, profileUC, true)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/v1/channel/bob/subscribe", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	profileUC.AssertExpectations(t)
}
