package handlers

import (
	"log"

	"dubtrack/internal/models"
	"dubtrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// VideoHandler handles HTTP requests for video jobs.
type VideoHandler struct {
	service *services.VideoService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(service *services.VideoService) *VideoHandler {
	return &VideoHandler{
		service: service,
	}
}

// RegisterRoutes registers the video routes. The whole group requires a
// bearer token.
func (h *VideoHandler) RegisterRoutes(router fiber.Router) {
	videoRoutes := router.Group("/videos")
	videoRoutes.Get("/", h.HandleListVideos)
	videoRoutes.Post("/", h.HandleCreateVideo)
}

// videoResponse is the projection of a video job returned to clients.
type videoResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	OriginalURL    *string `json:"original_url"`
	ProcessedURL   *string `json:"processed_url"`
	TargetLanguage string  `json:"target_language"`
	Status         string  `json:"status"`
}

// createVideoRequest is the request body for creating a video job. Only
// presence of the JSON keys matters here; required fields are enforced by
// the store's constraints, so a missing one surfaces as an internal error
// rather than a 400.
type createVideoRequest struct {
	Name           string  `json:"name"`
	OriginalURL    *string `json:"original_url"`
	ProcessedURL   *string `json:"processed_url"`
	TargetLanguage string  `json:"target_language"`
	Status         string  `json:"status"`
}

// HandleListVideos returns all video jobs owned by the caller.
func (h *VideoHandler) HandleListVideos(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	videos, err := h.service.GetVideosForUser(userID)
	if err != nil {
		log.Printf("Error listing videos for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp := make([]videoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, videoResponse{
			ID:             v.ID,
			Name:           v.Name,
			OriginalURL:    v.OriginalURL,
			ProcessedURL:   v.ProcessedURL,
			TargetLanguage: v.TargetLanguage,
			Status:         v.Status,
		})
	}

	return c.JSON(fiber.Map{
		"videos": resp,
	})
}

// HandleCreateVideo stores a new video job owned by the caller.
func (h *VideoHandler) HandleCreateVideo(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req createVideoRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create video request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	video := models.Video{
		Name:           req.Name,
		OriginalURL:    req.OriginalURL,
		ProcessedURL:   req.ProcessedURL,
		TargetLanguage: req.TargetLanguage,
		Status:         req.Status,
	}
	if err := h.service.CreateVideo(userID, &video); err != nil {
		log.Printf("Error creating video for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"id":      video.ID,
		"message": "Video created successfully",
	})
}
