package repositories

import (
	"fmt"

	"dubtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMVideoRepository is a GORM implementation of VideoRepository.
type GORMVideoRepository struct {
	db *gorm.DB
}

// NewGORMVideoRepository creates a new instance of GORMVideoRepository.
func NewGORMVideoRepository(db *gorm.DB) *GORMVideoRepository {
	return &GORMVideoRepository{
		db: db,
	}
}

// Create inserts a new video job. Required columns are enforced by table
// constraints; a violation comes back as a store error, not a validation
// error.
func (r *GORMVideoRepository) Create(video *models.Video) error {
	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	if err := r.db.Create(video).Error; err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

// GetByUserID retrieves all video jobs owned by the given user, in
// store-default order.
func (r *GORMVideoRepository) GetByUserID(userID string) ([]models.Video, error) {
	var videos []models.Video
	if err := r.db.Find(&videos, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get videos for user %s: %w", userID, err)
	}
	return videos, nil
}
