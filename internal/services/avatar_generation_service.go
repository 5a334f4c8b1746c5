package services

import (
	"fmt"
	"log"

	"dubtrack/internal/models"
	"dubtrack/internal/repositories"
	"dubtrack/pkg/rabbitmq"
)

// AvatarGenerationService handles owner-scoped access to avatar
// generation requests.
type AvatarGenerationService struct {
	repo     repositories.AvatarGenerationRepository
	mqClient *rabbitmq.Client // nil disables event publishing
}

// NewAvatarGenerationService creates a new AvatarGenerationService.
func NewAvatarGenerationService(repo repositories.AvatarGenerationRepository, mqClient *rabbitmq.Client) *AvatarGenerationService {
	return &AvatarGenerationService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetGenerationsForUser retrieves all avatar generation requests owned by
// the given user.
func (s *AvatarGenerationService) GetGenerationsForUser(userID string) ([]models.AvatarGeneration, error) {
	return s.repo.GetByUserID(userID)
}

// CreateGeneration stores a new avatar generation request owned by the
// given user and publishes a best-effort avatar_generation.created event.
func (s *AvatarGenerationService) CreateGeneration(userID string, generation *models.AvatarGeneration) error {
	generation.UserID = userID

	if err := s.repo.Create(generation); err != nil {
		return fmt.Errorf("failed to create avatar generation in repository: %w", err)
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishRecordCreated("avatar_generation.created", generation.ID, userID); err != nil {
			log.Printf("Warning: failed to publish avatar generation created event for %s: %v", generation.ID, err)
		}
	}
	return nil
}
