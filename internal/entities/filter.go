package entities

import "time"

// TaskFilter selects tasks. Zero values mean "no constraint".
type TaskFilter struct {
	Search   string
	Status   string
	Priority string
	Assignee string
	Project  string
	DueFrom  *time.Time
	DueTo    *time.Time
	Overdue  bool
}

// MemberFilter selects team members. Zero values mean "no constraint".
type MemberFilter struct {
	Search     string
	Role       string
	Department string
	Status     string
}
