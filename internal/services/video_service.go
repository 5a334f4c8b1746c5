package services

import (
	"fmt"
	"log"

	"dubtrack/internal/models"
	"dubtrack/internal/repositories"
	"dubtrack/pkg/rabbitmq"
)

// VideoService handles owner-scoped access to video jobs.
type VideoService struct {
	repo     repositories.VideoRepository
	mqClient *rabbitmq.Client // nil disables event publishing
}

// NewVideoService creates a new VideoService.
func NewVideoService(repo repositories.VideoRepository, mqClient *rabbitmq.Client) *VideoService {
	return &VideoService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetVideosForUser retrieves all video jobs owned by the given user.
func (s *VideoService) GetVideosForUser(userID string) ([]models.Video, error) {
	return s.repo.GetByUserID(userID)
}

// CreateVideo stores a new video job owned by the given user. Status
// defaults to "pending" when the caller omits it. On success a
// video.created event is published best-effort for the external
// processing system; a publish failure is logged, never surfaced.
func (s *VideoService) CreateVideo(userID string, video *models.Video) error {
	video.UserID = userID
	if video.Status == "" {
		video.Status = "pending"
	}

	if err := s.repo.Create(video); err != nil {
		return fmt.Errorf("failed to create video in repository: %w", err)
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishRecordCreated("video.created", video.ID, userID); err != nil {
			log.Printf("Warning: failed to publish video created event for video %s: %v", video.ID, err)
		}
	}
	return nil
}
