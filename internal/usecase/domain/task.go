package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"teamboard/internal/access"
	"teamboard/internal/entities"
	"teamboard/internal/filter"
)

// ListTasks returns the tasks the actor may see, narrowed by f.
func (u *Usecase) ListTasks(ctx context.Context, actor entities.User, f entities.TaskFilter) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authenticate(actor); err != nil {
		return nil, err
	}
	tasks, err := u.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Tasks(access.VisibleTasks(actor, tasks), f, u.now()), nil
}

// CreateTask creates a task owned by the actor.
func (u *Usecase) CreateTask(ctx context.Context, actor entities.User, in entities.NewTask) (task *entities.Task, err error) {
	defer func() { u.record("task.create", err) }()

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authenticate(actor); err != nil {
		return nil, err
	}
	if err := validateNewTask(&in); err != nil {
		return nil, err
	}

	assignee, err := u.resolveAssignee(ctx, in.AssigneeID)
	if err != nil {
		return nil, err
	}
	creator, err := u.repo.GetMember(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, entities.ErrMemberNotFound) {
			return nil, fmt.Errorf("%w: creator %d is not a team member", entities.ErrInvalidArgument, actor.ID)
		}
		return nil, err
	}

	now := u.now().UTC()
	res, err := u.repo.CreateTask(ctx, entities.Task{
		Title:        in.Title,
		Description:  in.Description,
		Status:       in.Status,
		Priority:     in.Priority,
		AssigneeID:   assignee.ID,
		AssigneeName: assignee.Name,
		CreatorID:    creator.ID,
		CreatorName:  creator.Name,
		DueDate:      in.DueDate,
		CreatedAt:    now,
		UpdatedAt:    now,
		Project:      in.Project,
		Tags:         in.Tags,
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("task create", "task_id", res.ID, "actor_id", actor.ID, "assignee_id", res.AssigneeID)
	return res, nil
}

// UpdateTask merges upd into the task and refreshes its timestamp.
func (u *Usecase) UpdateTask(ctx context.Context, actor entities.User, id int64, upd entities.TaskUpdate) (task *entities.Task, err error) {
	defer func() { u.record("task.update", err) }()

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authenticate(actor); err != nil {
		return nil, err
	}
	current, err := u.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanEditTask(actor, *current) {
		u.log.Warnw("task update denied", "task_id", id, "actor_id", actor.ID, "role", actor.Role)
		return nil, access.Deny("insufficient permissions to edit task")
	}
	if err := validateTaskUpdate(upd); err != nil {
		return nil, err
	}

	next := *current
	if upd.AssigneeID != nil && *upd.AssigneeID != current.AssigneeID {
		assignee, err := u.resolveAssignee(ctx, *upd.AssigneeID)
		if err != nil {
			return nil, err
		}
		next.AssigneeID = assignee.ID
		next.AssigneeName = assignee.Name
	}
	if upd.Title != nil {
		next.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		next.Description = *upd.Description
	}
	if upd.Status != nil {
		next.Status = *upd.Status
	}
	if upd.Priority != nil {
		next.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		next.DueDate = *upd.DueDate
	}
	if upd.Project != nil {
		next.Project = strings.TrimSpace(*upd.Project)
	}
	if upd.Tags != nil {
		next.Tags = cleanTags(*upd.Tags)
	}
	next.UpdatedAt = u.now().UTC()

	res, err := u.repo.UpdateTask(ctx, next)
	if err != nil {
		return nil, err
	}
	u.log.Infow("task update", "task_id", id, "actor_id", actor.ID)
	return res, nil
}

// DeleteTask removes a task. Only staff and the creator may delete.
func (u *Usecase) DeleteTask(ctx context.Context, actor entities.User, id int64) (err error) {
	defer func() { u.record("task.delete", err) }()

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authenticate(actor); err != nil {
		return err
	}
	current, err := u.repo.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanDeleteTask(actor, *current) {
		u.log.Warnw("task delete denied", "task_id", id, "actor_id", actor.ID, "role", actor.Role)
		return access.Deny("only staff or the task creator can delete a task")
	}
	if err := u.repo.DeleteTask(ctx, id); err != nil {
		return err
	}
	u.log.Infow("task delete", "task_id", id, "actor_id", actor.ID)
	return nil
}

func (u *Usecase) resolveAssignee(ctx context.Context, id int64) (*entities.TeamMember, error) {
	m, err := u.repo.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMemberNotFound) {
			return nil, fmt.Errorf("%w: member %d does not exist", entities.ErrInvalidAssignee, id)
		}
		return nil, err
	}
	return m, nil
}

func validateNewTask(in *entities.NewTask) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Project = strings.TrimSpace(in.Project)
	in.Tags = cleanTags(in.Tags)
	if in.Status == "" {
		in.Status = entities.TaskTodo
	}
	if in.Priority == "" {
		in.Priority = entities.PriorityMedium
	}

	switch {
	case in.Title == "":
		return fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	case !in.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, in.Status)
	case !in.Priority.Valid():
		return fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, in.Priority)
	case in.AssigneeID == 0:
		return fmt.Errorf("%w: assignee is required", entities.ErrInvalidAssignee)
	case in.DueDate.IsZero():
		return fmt.Errorf("%w: dueDate is required", entities.ErrInvalidArgument)
	}
	return nil
}

func validateTaskUpdate(upd entities.TaskUpdate) error {
	switch {
	case upd.Title != nil && strings.TrimSpace(*upd.Title) == "":
		return fmt.Errorf("%w: title must not be empty", entities.ErrInvalidArgument)
	case upd.Status != nil && !upd.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *upd.Status)
	case upd.Priority != nil && !upd.Priority.Valid():
		return fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, *upd.Priority)
	case upd.DueDate != nil && upd.DueDate.IsZero():
		return fmt.Errorf("%w: dueDate must not be empty", entities.ErrInvalidArgument)
	}
	return nil
}

// cleanTags trims tags and drops blanks and repeats, keeping first occurrence order.
func cleanTags(tags []string) []string {
	res := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		res = append(res, t)
	}
	return res
}
