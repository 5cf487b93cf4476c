package handlers_fiber

import (
	"net/http"

	"teamboard/internal/mapper"
	"teamboard/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetSearch runs the global search.
func (h *Handler) GetSearch(c *fiber.Ctx) error {
	hits, err := h.uc.Search(c.Context(), actor(c), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.SearchResponse{Results: mapper.ToDTOSearchResults(hits)})
}
