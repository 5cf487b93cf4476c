package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"teamboard/internal/entities"
)

const (
	listTasksQuery  = "SELECT " + taskColumns + " FROM tasks ORDER BY id"
	getTaskQuery    = "SELECT " + taskColumns + " FROM tasks WHERE id=$1"
	insertTaskQuery = `
INSERT INTO tasks(title, description, status, priority, assignee_id, assignee_name, creator_id, creator_name, due_date, created_at, updated_at, project, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + taskColumns
	updateTaskQuery = `
UPDATE tasks
SET title=$2, description=$3, status=$4, priority=$5, assignee_id=$6, assignee_name=$7,
    due_date=$8, updated_at=$9, project=$10, tags=$11
WHERE id=$1
RETURNING ` + taskColumns
	deleteTaskQuery = "DELETE FROM tasks WHERE id=$1"
)

// ListTasks returns all tasks ordered by id.
func (p *Postgres) ListTasks(ctx context.Context) ([]entities.Task, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	rows, err := p.db.Query(ctx, listTasksQuery)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			p.log.Errorw("failed to scan task", "error", err)
			return nil, fmt.Errorf("scan tasks: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// GetTask fetches a task by id.
func (p *Postgres) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	t, err := scanTask(p.db.QueryRow(ctx, getTaskQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// CreateTask inserts a task; the id is assigned by the database.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	t, err := scanTask(p.db.QueryRow(ctx, insertTaskQuery,
		task.Title, task.Description, string(task.Status), string(task.Priority),
		task.AssigneeID, task.AssigneeName, task.CreatorID, task.CreatorName,
		task.DueDate, task.CreatedAt, task.UpdatedAt, task.Project, tags(task.Tags)))
	if err != nil {
		p.log.Errorw("failed to insert task", "error", err, "title", task.Title)
		return nil, fmt.Errorf("insert task: %w", err)
	}

	p.log.Infow("task created", "task_id", t.ID, "creator_id", t.CreatorID)
	return &t, nil
}

// UpdateTask overwrites the mutable columns of a task.
func (p *Postgres) UpdateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	t, err := scanTask(p.db.QueryRow(ctx, updateTaskQuery,
		task.ID, task.Title, task.Description, string(task.Status), string(task.Priority),
		task.AssigneeID, task.AssigneeName, task.DueDate, task.UpdatedAt, task.Project, tags(task.Tags)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		p.log.Errorw("failed to update task", "error", err, "task_id", task.ID)
		return nil, fmt.Errorf("update task: %w", err)
	}

	p.log.Infow("task updated", "task_id", t.ID)
	return &t, nil
}

// DeleteTask removes a task by id.
func (p *Postgres) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	tag, err := p.db.Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTaskNotFound
	}

	p.log.Infow("task deleted", "task_id", id)
	return nil
}

func tags(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
