// Package filter narrows task and member collections by a filter specification.
// Results keep the input order.
package filter

import (
	"strconv"
	"strings"
	"time"

	"teamboard/internal/entities"
)

type predicate[T any] func(T) bool

func apply[T any](records []T, preds []predicate[T]) []T {
	if len(preds) == 0 {
		return records
	}
	res := make([]T, 0, len(records))
next:
	for _, r := range records {
		for _, p := range preds {
			if !p(r) {
				continue next
			}
		}
		res = append(res, r)
	}
	return res
}

// normalize returns the lower-cased query, or "" when it is blank.
func normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// constraint returns the trimmed equality value and whether it constrains.
func constraint(v string) (string, bool) {
	v = strings.TrimSpace(v)
	return v, v != "" && v != "all"
}

func containsFold(field, query string) bool {
	return strings.Contains(strings.ToLower(field), query)
}

// Tasks returns tasks matching every active predicate of f, evaluated at now.
func Tasks(records []entities.Task, f entities.TaskFilter, now time.Time) []entities.Task {
	var preds []predicate[entities.Task]

	if q := normalize(f.Search); q != "" {
		preds = append(preds, func(t entities.Task) bool { return taskMatches(t, q) })
	}
	if status, ok := constraint(f.Status); ok {
		preds = append(preds, func(t entities.Task) bool { return string(t.Status) == status })
	}
	if priority, ok := constraint(f.Priority); ok {
		preds = append(preds, func(t entities.Task) bool { return string(t.Priority) == priority })
	}
	if assignee, ok := constraint(f.Assignee); ok {
		preds = append(preds, func(t entities.Task) bool {
			return strconv.FormatInt(t.AssigneeID, 10) == assignee
		})
	}
	if project, ok := constraint(f.Project); ok {
		preds = append(preds, func(t entities.Task) bool { return t.Project == project })
	}
	if f.DueFrom != nil {
		from := *f.DueFrom
		preds = append(preds, func(t entities.Task) bool { return !t.DueDate.Before(from) })
	}
	if f.DueTo != nil {
		to := *f.DueTo
		preds = append(preds, func(t entities.Task) bool { return !t.DueDate.After(to) })
	}
	if f.Overdue {
		preds = append(preds, func(t entities.Task) bool { return t.Overdue(now) })
	}

	return apply(records, preds)
}

func taskMatches(t entities.Task, q string) bool {
	if containsFold(t.Title, q) ||
		containsFold(t.Description, q) ||
		containsFold(t.AssigneeName, q) ||
		containsFold(t.Project, q) {
		return true
	}
	for _, tag := range t.Tags {
		if containsFold(tag, q) {
			return true
		}
	}
	return false
}

// Members returns members matching every active predicate of f.
func Members(records []entities.TeamMember, f entities.MemberFilter) []entities.TeamMember {
	var preds []predicate[entities.TeamMember]

	if q := normalize(f.Search); q != "" {
		preds = append(preds, func(m entities.TeamMember) bool {
			return containsFold(m.Name, q) ||
				containsFold(m.Email, q) ||
				containsFold(m.Department, q) ||
				containsFold(string(m.Role), q)
		})
	}
	if role, ok := constraint(f.Role); ok {
		preds = append(preds, func(m entities.TeamMember) bool { return string(m.Role) == role })
	}
	if dept, ok := constraint(f.Department); ok {
		preds = append(preds, func(m entities.TeamMember) bool { return m.Department == dept })
	}
	if status, ok := constraint(f.Status); ok {
		preds = append(preds, func(m entities.TeamMember) bool { return string(m.Status) == status })
	}

	return apply(records, preds)
}
