package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.Context(), userID, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	// Owners see their full record; everyone else the safe projection.
	if userID == targetID {
		return c.JSON(fiber.Map{"user": user})
	}
	return c.JSON(fiber.Map{"user": user.Summary()})
}

// UpdateMyProfile handles PUT /api/users/profile
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req service.ProfileUpdate
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// AddSkill handles POST /api/users/skills/:list
func (s *Server) AddSkill(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	list := c.Params("list")

	var req struct {
		Skill string `json:"skill"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.AddSkill(c.Context(), userID, list, req.Skill)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// RemoveSkill handles DELETE /api/users/skills/:list/:skill
func (s *Server) RemoveSkill(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	list := c.Params("list")

	skill, err := decodeParam(c, "skill")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid skill"))
	}

	user, err := s.userService.RemoveSkill(c.Context(), userID, list, skill)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// DiscoverUsers handles GET /api/users/discover
func (s *Server) DiscoverUsers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	users, err := s.userService.Discover(c.Context(), userID, c.Query("skill"), c.Query("search"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}
