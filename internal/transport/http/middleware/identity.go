package middleware

import (
	"encoding/json"
	"net/url"
	"strings"

	"teamboard/internal/entities"
	"teamboard/internal/mapper"
	"teamboard/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderUser carries the identity JSON for clients that do not keep cookies.
const HeaderUser = "X-User"

const userKey = "teamboard.user"

// Identity decodes the caller from the session cookie or the X-User header
// and stores it for handlers. Requests without a usable identity continue
// anonymously; the usecase layer rejects them where needed.
func Identity(cookieName string, log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(cookieName)
		if raw == "" {
			raw = c.Get(HeaderUser)
		}
		if raw == "" {
			return c.Next()
		}
		u, err := DecodeUser(raw)
		if err != nil {
			log.Debugw("ignoring malformed identity", "error", err)
			return c.Next()
		}
		c.Locals(userKey, u)
		return c.Next()
	}
}

// EncodeUser serialises u for the session cookie.
func EncodeUser(u entities.User) (string, error) {
	b, err := json.Marshal(mapper.ToDTOUser(u))
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(b)), nil
}

// DecodeUser parses a cookie or header value, URL-encoded or raw JSON.
func DecodeUser(raw string) (entities.User, error) {
	if !strings.HasPrefix(raw, "{") {
		unescaped, err := url.QueryUnescape(raw)
		if err != nil {
			return entities.User{}, err
		}
		raw = unescaped
	}
	var u dto.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return entities.User{}, err
	}
	return mapper.FromDTOUser(u), nil
}

// CurrentUser returns the identity stored by Identity.
func CurrentUser(c *fiber.Ctx) (entities.User, bool) {
	u, ok := c.Locals(userKey).(entities.User)
	return u, ok
}
