package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"teamboard/internal/entities"
	"teamboard/internal/transport/http/dto"
	"teamboard/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrUnauthenticated):
		status = http.StatusUnauthorized
		code = dto.UNAUTHENTICATED
		msg = "authentication required"
	case errors.Is(err, entities.ErrTaskNotFound):
		status = http.StatusNotFound
		code = dto.NOTFOUND
		msg = "task not found"
	case errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
		code = dto.NOTFOUND
		msg = "member not found"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = dto.FORBIDDEN
		msg = err.Error()
	case errors.Is(err, entities.ErrEmailExists):
		status = http.StatusBadRequest
		code = dto.EMAILEXISTS
		msg = "email already exists"
	case errors.Is(err, entities.ErrInvalidAssignee):
		status = http.StatusBadRequest
		code = dto.INVALIDASSIGNEE
		msg = err.Error()
	case errors.Is(err, entities.ErrUnsupportedReport):
		status = http.StatusBadRequest
		code = dto.UNSUPPORTEDREPORT
		msg = err.Error()
	case entities.IsValidation(err):
		status = http.StatusBadRequest
		code = dto.VALIDATIONFAILED
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.VALIDATIONFAILED, "invalid request data"))
}

// actor returns the caller, or the zero user that the usecase layer rejects.
func actor(c *fiber.Ctx) entities.User {
	u, _ := middleware.CurrentUser(c)
	return u
}

// pathID parses the :id parameter. Malformed ids resolve to 0, which never
// matches a record, so they surface as not found.
func pathID(c *fiber.Ctx) int64 {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
