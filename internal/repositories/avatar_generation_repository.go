package repositories

import "dubtrack/internal/models"

// AvatarGenerationRepository defines the interface for avatar generation
// request data access. Same append-only shape as VideoRepository.
type AvatarGenerationRepository interface {
	Create(generation *models.AvatarGeneration) error
	GetByUserID(userID string) ([]models.AvatarGeneration, error)
}
