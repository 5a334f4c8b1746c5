package repositories

import (
	"fmt"

	"dubtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAvatarGenerationRepository is a GORM implementation of
// AvatarGenerationRepository.
type GORMAvatarGenerationRepository struct {
	db *gorm.DB
}

// NewGORMAvatarGenerationRepository creates a new instance of
// GORMAvatarGenerationRepository.
func NewGORMAvatarGenerationRepository(db *gorm.DB) *GORMAvatarGenerationRepository {
	return &GORMAvatarGenerationRepository{
		db: db,
	}
}

// Create inserts a new avatar generation request.
func (r *GORMAvatarGenerationRepository) Create(generation *models.AvatarGeneration) error {
	if generation.ID == "" {
		generation.ID = uuid.New().String()
	}
	if err := r.db.Create(generation).Error; err != nil {
		return fmt.Errorf("failed to create avatar generation: %w", err)
	}
	return nil
}

// GetByUserID retrieves all avatar generation requests owned by the given
// user, in store-default order.
func (r *GORMAvatarGenerationRepository) GetByUserID(userID string) ([]models.AvatarGeneration, error) {
	var generations []models.AvatarGeneration
	if err := r.db.Find(&generations, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get avatar generations for user %s: %w", userID, err)
	}
	return generations, nil
}
