package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitRating handles POST /api/ratings
func (s *Server) SubmitRating(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		SwapRequestID uint   `json:"swap_request_id"`
		ToUserID      uint   `json:"to_user_id"`
		Score         int    `json:"score"`
		Feedback      string `json:"feedback"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.SwapRequestID == 0 || req.ToUserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("swap_request_id and to_user_id are required"))
	}

	rating, err := s.ratingService.SubmitRating(c.Context(), userID,
		req.SwapRequestID, req.ToUserID, req.Score, req.Feedback)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"rating": rating})
}

// GetUserRatings handles GET /api/ratings/user/:id
func (s *Server) GetUserRatings(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ratings, err := s.ratingService.GetRatingsReceived(c.Context(), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"ratings": ratings,
		"count":   len(ratings),
	})
}

// GetMyRatingsGiven handles GET /api/ratings/mine
func (s *Server) GetMyRatingsGiven(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	ratings, err := s.ratingService.GetRatingsGiven(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"ratings": ratings,
		"count":   len(ratings),
	})
}
