package services_test

import (
	"fmt"
	"testing"

	"dubtrack/internal/models"
	"dubtrack/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVideoRepository is a mock implementation of repositories.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *models.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByUserID(userID string) ([]models.Video, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Video), args.Error(1)
}

func TestVideoService_CreateVideo(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	service := services.NewVideoService(mockRepo, nil)

	// Status defaults to "pending" and ownership comes from the caller's
	// identity, never from the request body.
	mockRepo.On("Create", mock.AnythingOfType("*models.Video")).Run(func(args mock.Arguments) {
		v := args.Get(0).(*models.Video)
		assert.Equal(t, "user-1", v.UserID)
		assert.Equal(t, "pending", v.Status)
		v.ID = "video-1"
	}).Return(nil).Once()

	video := models.Video{Name: "clip1", TargetLanguage: "es"}
	err := service.CreateVideo("user-1", &video)
	assert.NoError(t, err)
	assert.Equal(t, "video-1", video.ID)
	mockRepo.AssertExpectations(t)

	// An explicit status passes through untouched.
	mockRepo.On("Create", mock.AnythingOfType("*models.Video")).Run(func(args mock.Arguments) {
		assert.Equal(t, "done", args.Get(0).(*models.Video).Status)
	}).Return(nil).Once()

	done := models.Video{Name: "clip2", TargetLanguage: "fr", Status: "done"}
	err = service.CreateVideo("user-1", &done)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Repository failures propagate.
	mockRepo.On("Create", mock.AnythingOfType("*models.Video")).Return(fmt.Errorf("constraint failed")).Once()
	bad := models.Video{}
	err = service.CreateVideo("user-1", &bad)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "constraint failed")
	mockRepo.AssertExpectations(t)
}

func TestVideoService_GetVideosForUser(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	service := services.NewVideoService(mockRepo, nil)

	expected := []models.Video{
		{ID: "video-1", UserID: "user-1", Name: "clip1", TargetLanguage: "es", Status: "pending"},
		{ID: "video-2", UserID: "user-1", Name: "clip2", TargetLanguage: "fr", Status: "done"},
	}

	mockRepo.On("GetByUserID", "user-1").Return(expected, nil).Once()

	videos, err := service.GetVideosForUser("user-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, videos)
	mockRepo.AssertExpectations(t)
}
