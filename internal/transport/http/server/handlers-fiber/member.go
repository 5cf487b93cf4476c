package handlers_fiber

import (
	"net/http"

	"teamboard/internal/entities"
	"teamboard/internal/mapper"
	"teamboard/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetMembers lists the roster.
func (h *Handler) GetMembers(c *fiber.Ctx) error {
	f := entities.MemberFilter{
		Search:     c.Query("search"),
		Role:       c.Query("role"),
		Department: c.Query("department"),
		Status:     c.Query("status"),
	}
	members, err := h.uc.ListMembers(c.Context(), actor(c), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MemberListResponse{Members: mapper.ToDTOMembers(members)})
}

// PostMember adds a member.
func (h *Handler) PostMember(c *fiber.Ctx) error {
	var body dto.CreateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	m, err := h.uc.CreateMember(c.Context(), actor(c), mapper.FromCreateMember(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.MemberResponse{Member: mapper.ToDTOMember(*m)})
}

// UpdateMember serves both PUT and PATCH; only supplied fields change.
func (h *Handler) UpdateMember(c *fiber.Ctx) error {
	var body dto.UpdateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	m, err := h.uc.UpdateMember(c.Context(), actor(c), pathID(c), mapper.FromUpdateMember(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MemberResponse{Member: mapper.ToDTOMember(*m)})
}

// DeleteMember removes a member.
func (h *Handler) DeleteMember(c *fiber.Ctx) error {
	if err := h.uc.DeleteMember(c.Context(), actor(c), pathID(c)); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.SuccessResponse{Success: true})
}
