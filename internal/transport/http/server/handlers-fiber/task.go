package handlers_fiber

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"teamboard/internal/entities"
	"teamboard/internal/mapper"
	"teamboard/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetTasks lists the tasks visible to the caller.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	f, err := taskFilter(c)
	if err != nil {
		return writeError(c, err)
	}

	tasks, err := h.uc.ListTasks(c.Context(), actor(c), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.TaskListResponse{Tasks: mapper.ToDTOTasks(tasks)})
}

// PostTask creates a task owned by the caller.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	var body dto.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	in, err := mapper.FromCreateTask(body)
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.CreateTask(c.Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.TaskResponse{Task: mapper.ToDTOTask(*task)})
}

// PatchTask applies a partial update.
func (h *Handler) PatchTask(c *fiber.Ctx) error {
	var body dto.UpdateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	upd, err := mapper.FromUpdateTask(body)
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.UpdateTask(c.Context(), actor(c), pathID(c), upd)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.TaskResponse{Task: mapper.ToDTOTask(*task)})
}

// DeleteTask removes a task.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	if err := h.uc.DeleteTask(c.Context(), actor(c), pathID(c)); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.SuccessResponse{Success: true})
}

func taskFilter(c *fiber.Ctx) (entities.TaskFilter, error) {
	f := entities.TaskFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Assignee: c.Query("assignee"),
		Project:  c.Query("project"),
	}
	if v := strings.TrimSpace(c.Query("dueFrom")); v != "" {
		d, err := entities.ParseDate(v)
		if err != nil {
			return f, err
		}
		f.DueFrom = &d
	}
	if v := strings.TrimSpace(c.Query("dueTo")); v != "" {
		d, err := entities.ParseDate(v)
		if err != nil {
			return f, err
		}
		f.DueTo = &d
	}
	if v := c.Query("overdue"); v != "" {
		overdue, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("%w: overdue must be a boolean", entities.ErrInvalidArgument)
		}
		f.Overdue = overdue
	}
	return f, nil
}
