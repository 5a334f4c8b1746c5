package services_test

import (
	"testing"

	"dubtrack/internal/models"
	"dubtrack/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAvatarGenerationRepository is a mock implementation of
// repositories.AvatarGenerationRepository
type MockAvatarGenerationRepository struct {
	mock.Mock
}

func (m *MockAvatarGenerationRepository) Create(generation *models.AvatarGeneration) error {
	args := m.Called(generation)
	return args.Error(0)
}

func (m *MockAvatarGenerationRepository) GetByUserID(userID string) ([]models.AvatarGeneration, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AvatarGeneration), args.Error(1)
}

func TestAvatarGenerationService_CreateGeneration(t *testing.T) {
	mockRepo := new(MockAvatarGenerationRepository)
	service := services.NewAvatarGenerationService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.AvatarGeneration")).Run(func(args mock.Arguments) {
		g := args.Get(0).(*models.AvatarGeneration)
		assert.Equal(t, "user-1", g.UserID)
		g.ID = "gen-1"
	}).Return(nil).Once()

	generation := models.AvatarGeneration{AvatarID: "avatar-7", VoiceID: "voice-3", Text: "hello"}
	err := service.CreateGeneration("user-1", &generation)
	assert.NoError(t, err)
	assert.Equal(t, "gen-1", generation.ID)
	mockRepo.AssertExpectations(t)
}

func TestAvatarGenerationService_GetGenerationsForUser(t *testing.T) {
	mockRepo := new(MockAvatarGenerationRepository)
	service := services.NewAvatarGenerationService(mockRepo, nil)

	expected := []models.AvatarGeneration{
		{ID: "gen-1", UserID: "user-1", AvatarID: "avatar-7", VoiceID: "voice-3", Text: "hello"},
	}

	mockRepo.On("GetByUserID", "user-1").Return(expected, nil).Once()

	generations, err := service.GetGenerationsForUser("user-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, generations)
	mockRepo.AssertExpectations(t)
}
