package handlers

import (
	"log"

	"dubtrack/internal/models"
	"dubtrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AvatarGenerationHandler handles HTTP requests for avatar generation
// requests.
type AvatarGenerationHandler struct {
	service *services.AvatarGenerationService
}

// NewAvatarGenerationHandler creates a new AvatarGenerationHandler.
func NewAvatarGenerationHandler(service *services.AvatarGenerationService) *AvatarGenerationHandler {
	return &AvatarGenerationHandler{
		service: service,
	}
}

// RegisterRoutes registers the avatar generation routes. The whole group
// requires a bearer token.
func (h *AvatarGenerationHandler) RegisterRoutes(router fiber.Router) {
	genRoutes := router.Group("/avatar-generations")
	genRoutes.Get("/", h.HandleListGenerations)
	genRoutes.Post("/", h.HandleCreateGeneration)
}

// generationResponse is the projection of an avatar generation returned to
// clients.
type generationResponse struct {
	ID       string  `json:"id"`
	AvatarID string  `json:"avatar_id"`
	VoiceID  string  `json:"voice_id"`
	Text     string  `json:"text"`
	VideoURL *string `json:"video_url"`
}

// createGenerationRequest is the request body for creating an avatar
// generation. As with videos, required fields are enforced by the store.
type createGenerationRequest struct {
	AvatarID string  `json:"avatar_id"`
	VoiceID  string  `json:"voice_id"`
	Text     string  `json:"text"`
	VideoURL *string `json:"video_url"`
}

// HandleListGenerations returns all avatar generations owned by the caller.
func (h *AvatarGenerationHandler) HandleListGenerations(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	generations, err := h.service.GetGenerationsForUser(userID)
	if err != nil {
		log.Printf("Error listing avatar generations for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp := make([]generationResponse, 0, len(generations))
	for _, g := range generations {
		resp = append(resp, generationResponse{
			ID:       g.ID,
			AvatarID: g.AvatarID,
			VoiceID:  g.VoiceID,
			Text:     g.Text,
			VideoURL: g.VideoURL,
		})
	}

	return c.JSON(fiber.Map{
		"generations": resp,
	})
}

// HandleCreateGeneration stores a new avatar generation owned by the caller.
func (h *AvatarGenerationHandler) HandleCreateGeneration(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req createGenerationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create avatar generation request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	generation := models.AvatarGeneration{
		AvatarID: req.AvatarID,
		VoiceID:  req.VoiceID,
		Text:     req.Text,
		VideoURL: req.VideoURL,
	}
	if err := h.service.CreateGeneration(userID, &generation); err != nil {
		log.Printf("Error creating avatar generation for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"id":      generation.ID,
		"message": "Avatar generation created successfully",
	})
}
