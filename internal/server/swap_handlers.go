package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateSwap handles POST /api/swaps/request
func (s *Server) CreateSwap(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		ToUserID        uint     `json:"to_user_id"`
		Message         string   `json:"message"`
		SkillsOffered   []string `json:"skills_offered"`
		SkillsRequested []string `json:"skills_requested"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ToUserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("to_user_id is required"))
	}

	swap, err := s.swapService.CreateSwap(c.Context(), userID, req.ToUserID,
		req.Message, req.SkillsOffered, req.SkillsRequested)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"swap": swap})
}

// GetMySwaps handles GET /api/swaps/mine
func (s *Server) GetMySwaps(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	swaps, err := s.swapService.ListMySwaps(c.Context(), userID, c.Query("status"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"swaps": swaps,
		"count": len(swaps),
	})
}

// GetSwap handles GET /api/swaps/:id
func (s *Server) GetSwap(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, err := s.swapService.GetSwap(c.Context(), userID, swapID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"swap": swap})
}

// AcceptSwap handles PUT /api/swaps/:id/accept
func (s *Server) AcceptSwap(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, err := s.swapService.AcceptSwap(c.Context(), userID, swapID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"swap": swap})
}

// RejectSwap handles PUT /api/swaps/:id/reject
func (s *Server) RejectSwap(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, err := s.swapService.RejectSwap(c.Context(), userID, swapID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"swap": swap})
}

// CancelSwap handles DELETE /api/swaps/:id
func (s *Server) CancelSwap(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, err := s.swapService.CancelSwap(c.Context(), userID, swapID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"swap": swap})
}

// CompleteSwap handles PUT /api/swaps/:id/complete
func (s *Server) CompleteSwap(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, err := s.swapService.CompleteSwap(c.Context(), userID, swapID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"swap": swap})
}
