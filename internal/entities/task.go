package entities

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates such as due dates.
const DateLayout = "2006-01-02"

// TaskStatus enumerates board columns, left to right.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
)

// TaskStatuses lists statuses in board order.
var TaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskReview, TaskCompleted}

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Priority enumerates task priorities. It carries no numeric weight.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

// Task is a unit of work on the board.
//
// AssigneeName and CreatorName are snapshots taken when the reference was
// set; they are not re-synced when the referenced member is renamed.
type Task struct {
	ID           int64
	Title        string
	Description  string
	Status       TaskStatus
	Priority     Priority
	AssigneeID   int64
	AssigneeName string
	CreatorID    int64
	CreatorName  string
	DueDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Project      string
	Tags         []string
}

// Overdue reports whether the task is past due at now and still open.
func (t Task) Overdue(now time.Time) bool {
	return t.DueDate.Before(now) && t.Status != TaskCompleted
}

// TaskUpdate carries a partial task update; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *Priority
	AssigneeID  *int64
	DueDate     *time.Time
	Project     *string
	Tags        *[]string
}

// Empty reports whether the update changes nothing.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil && u.Priority == nil &&
		u.AssigneeID == nil && u.DueDate == nil && u.Project == nil && u.Tags == nil
}

// ParseDate parses a YYYY-MM-DD date (a full RFC 3339 timestamp is truncated to its date).
func ParseDate(s string) (time.Time, error) {
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidArgument, s)
	}
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// NewTask is the input for task creation. Status defaults to todo.
type NewTask struct {
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	AssigneeID  int64
	DueDate     time.Time
	Project     string
	Tags        []string
}
