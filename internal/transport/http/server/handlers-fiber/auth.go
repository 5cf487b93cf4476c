package handlers_fiber

import (
	"net/http"
	"time"

	"teamboard/internal/entities"
	"teamboard/internal/mapper"
	"teamboard/internal/transport/http/dto"
	"teamboard/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostLogin issues the session cookie.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	user, err := h.uc.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		return writeError(c, err)
	}
	value, err := middleware.EncodeUser(user)
	if err != nil {
		h.log.Errorw("failed to encode session", "error", err)
		return writeError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.session.TTL.Seconds()),
		HTTPOnly: true,
		Secure:   h.session.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Status(http.StatusOK).JSON(dto.UserResponse{User: mapper.ToDTOUser(user)})
}

// PostLogout clears the session cookie.
func (h *Handler) PostLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.session.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Status(http.StatusOK).JSON(dto.SuccessResponse{Success: true})
}

// GetMe returns the caller identity.
func (h *Handler) GetMe(c *fiber.Ctx) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}
	return c.Status(http.StatusOK).JSON(dto.UserResponse{User: mapper.ToDTOUser(u)})
}
