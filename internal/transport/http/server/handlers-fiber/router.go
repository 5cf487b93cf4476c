package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterHandlers mounts the REST API under /api.
func RegisterHandlers(router fiber.Router, h *Handler) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", h.PostLogin)
	auth.Post("/logout", h.PostLogout)
	auth.Get("/me", h.GetMe)

	api.Get("/tasks", h.GetTasks)
	api.Post("/tasks", h.PostTask)
	api.Patch("/tasks/:id", h.PatchTask)
	api.Delete("/tasks/:id", h.DeleteTask)

	api.Get("/teams/members", h.GetMembers)
	api.Post("/teams/members", h.PostMember)
	api.Put("/teams/members/:id", h.UpdateMember)
	api.Patch("/teams/members/:id", h.UpdateMember)
	api.Delete("/teams/members/:id", h.DeleteMember)

	api.Get("/search", h.GetSearch)

	analytics := api.Group("/analytics")
	analytics.Get("/overview", h.GetOverview)
	analytics.Get("/tasks", h.GetTaskAnalytics)
	analytics.Get("/team-performance", h.GetTeamPerformance)
	analytics.Get("/projects", h.GetProjects)

	api.Post("/reports/generate", h.PostReport)
}
