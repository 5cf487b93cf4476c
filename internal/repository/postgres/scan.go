package postgres

import (
	"github.com/jackc/pgx/v5"

	"teamboard/internal/entities"
)

const (
	taskColumns   = "id, title, description, status, priority, assignee_id, assignee_name, creator_id, creator_name, due_date, created_at, updated_at, project, tags"
	memberColumns = "id, name, email, role, department, phone, join_date, status"
)

func scanTask(row pgx.Row) (entities.Task, error) {
	var (
		t                entities.Task
		status, priority string
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &priority,
		&t.AssigneeID, &t.AssigneeName, &t.CreatorID, &t.CreatorName,
		&t.DueDate, &t.CreatedAt, &t.UpdatedAt, &t.Project, &t.Tags)
	if err != nil {
		return entities.Task{}, err
	}
	t.Status = entities.TaskStatus(status)
	t.Priority = entities.Priority(priority)
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t, nil
}

func scanMember(row pgx.Row) (entities.TeamMember, error) {
	var (
		m            entities.TeamMember
		role, status string
	)
	err := row.Scan(&m.ID, &m.Name, &m.Email, &role, &m.Department, &m.Phone, &m.JoinDate, &status)
	if err != nil {
		return entities.TeamMember{}, err
	}
	m.Role = entities.Role(role)
	m.Status = entities.MemberStatus(status)
	return m, nil
}
