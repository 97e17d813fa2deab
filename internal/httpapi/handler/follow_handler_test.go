package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jokehub/internal/apperr"
	"jokehub/internal/httpapi/dto"
	"jokehub/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFollowService mocks the FollowService interface
type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, followerID, followeeID int64) error {
	args := m.Called(followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	args := m.Called(followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowService) Followers(ctx context.Context, userID int64) ([]models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowService) Followees(ctx context.Context, userID int64) ([]models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func TestFollow_Success(t *testing.T) {
	mockService := new(MockFollowService)
	h := NewFollowHandler(mockService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api"))

	mockService.On("Follow", int64(1), int64(2)).Return(nil)

	body, _ := json.Marshal(dto.FollowRequest{FollowerID: 1, FolloweeID: 2})
	req, _ := http.NewRequest("POST", "/api/follows", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFollow_SelfFollow(t *testing.T) {
	mockService := new(MockFollowService)
	h := NewFollowHandler(mockService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api"))

	mockService.On("Follow", int64(1), int64(1)).
		Return(apperr.Validation("followee_id", "cannot follow yourself"))

	body, _ := json.Marshal(dto.FollowRequest{FollowerID: 1, FolloweeID: 1})
	req, _ := http.NewRequest("POST", "/api/follows", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestUnfollow_Success(t *testing.T) {
	mockService := new(MockFollowService)
	h := NewFollowHandler(mockService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api"))

	mockService.On("Unfollow", int64(1), int64(2)).Return(nil)

	body, _ := json.Marshal(dto.FollowRequest{FollowerID: 1, FolloweeID: 2})
	req, _ := http.NewRequest("DELETE", "/api/follows", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFollow_MissingBody(t *testing.T) {
	mockService := new(MockFollowService)
	h := NewFollowHandler(mockService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api"))

	req, _ := http.NewRequest("POST", "/api/follows", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Follow")
}
