package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AdminListUsers handles GET /api/admin/users
func (s *Server) AdminListUsers(c *fiber.Ctx) error {
	p := parsePagination(c)

	var banned *bool
	if c.Query("banned") != "" {
		v := c.QueryBool("banned")
		banned = &v
	}

	users, total, err := s.adminService.ListUsers(c.Context(), banned, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"users":       users,
		"total":       total,
		"page":        p.Page,
		"total_pages": totalPages(total, p.Limit),
	})
}

// AdminPromoteUser handles POST /api/admin/users/:id/promote
func (s *Server) AdminPromoteUser(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.adminService.PromoteUser(c.Context(), adminID, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// AdminSetBan handles PUT /api/admin/users/:id/ban
func (s *Server) AdminSetBan(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Banned bool   `json:"banned"`
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var user *models.User
	if req.Banned {
		user, err = s.adminService.BanUser(c.Context(), adminID, targetID, req.Reason)
	} else {
		user, err = s.adminService.UnbanUser(c.Context(), adminID, targetID)
	}
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// AdminSwapStats handles GET /api/admin/stats/swaps
func (s *Server) AdminSwapStats(c *fiber.Ctx) error {
	stats, err := s.adminService.GetStats(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"stats": stats})
}

// AdminListSwaps handles GET /api/admin/swaps
func (s *Server) AdminListSwaps(c *fiber.Ctx) error {
	p := parsePagination(c)

	swaps, total, err := s.adminService.ListSwaps(c.Context(), c.Query("status"), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"swaps":       swaps,
		"total":       total,
		"page":        p.Page,
		"total_pages": totalPages(total, p.Limit),
	})
}

// AdminDeleteSwap handles DELETE /api/admin/swaps/:id
func (s *Server) AdminDeleteSwap(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)
	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.adminService.DeleteSwap(c.Context(), adminID, swapID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Swap request deleted"})
}

// AdminSendAlert handles POST /api/admin/alerts
func (s *Server) AdminSendAlert(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)

	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.adminService.SendAlert(c.Context(), adminID, req.Message); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Alert recorded"})
}

// AdminExport handles GET /api/admin/export/:type
func (s *Server) AdminExport(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)

	payload, err := s.adminService.ExportData(c.Context(), adminID, c.Params("type"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(payload)
}

// AdminLogs handles GET /api/admin/logs
func (s *Server) AdminLogs(c *fiber.Ctx) error {
	p := parsePagination(c)

	logs, total, err := s.adminService.GetLogs(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"logs":        logs,
		"total":       total,
		"page":        p.Page,
		"total_pages": totalPages(total, p.Limit),
	})
}
