package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetOverview returns headline figures.
func (h *Handler) GetOverview(c *fiber.Ctx) error {
	stats, err := h.uc.Overview(c.Context(), actor(c), c.Query("range"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"stats": stats})
}

// GetTaskAnalytics returns status and priority distributions.
func (h *Handler) GetTaskAnalytics(c *fiber.Ctx) error {
	data, err := h.uc.TaskAnalytics(c.Context(), actor(c), c.Query("range"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"data": data})
}

// GetTeamPerformance returns per-member figures.
func (h *Handler) GetTeamPerformance(c *fiber.Ctx) error {
	members, err := h.uc.TeamPerformance(c.Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"members": members})
}

// GetProjects returns per-project progress.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	projects, err := h.uc.ProjectProgress(c.Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"projects": projects})
}
