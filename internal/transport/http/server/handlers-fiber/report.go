package handlers_fiber

import (
	"fmt"
	"net/http"

	"teamboard/internal/mapper"
	"teamboard/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostReport renders a report and streams it as an attachment.
func (h *Handler) PostReport(c *fiber.Ctx) error {
	var body dto.ReportRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	req, err := mapper.FromReportRequest(body)
	if err != nil {
		return writeError(c, err)
	}

	doc, err := h.uc.GenerateReport(c.Context(), actor(c), req)
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	return c.Status(http.StatusOK).Send(doc.Body)
}
