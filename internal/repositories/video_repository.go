package repositories

import "dubtrack/internal/models"

// VideoRepository defines the interface for video job data access. Rows are
// append-only: there is no update or delete in this system's scope.
type VideoRepository interface {
	Create(video *models.Video) error
	GetByUserID(userID string) ([]models.Video, error)
}
