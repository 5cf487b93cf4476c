package entities

import "time"

// Overview is the dashboard headline snapshot.
type Overview struct {
	TotalTasks        int     `json:"totalTasks"`
	CompletedTasks    int     `json:"completedTasks"`
	OverdueTasks      int     `json:"overdueTasks"`
	ActiveMembers     int     `json:"activeMembers"`
	CompletionRate    int     `json:"completionRate"`
	AvgCompletionDays float64 `json:"avgCompletionTime"`
}

// Bucket is a named count used by distribution charts.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TaskBreakdown groups tasks by status and priority.
type TaskBreakdown struct {
	StatusDistribution   []Bucket `json:"statusDistribution"`
	PriorityDistribution []Bucket `json:"priorityDistribution"`
}

// MemberPerformance summarises a member's assigned work.
type MemberPerformance struct {
	MemberID        int64  `json:"id"`
	Name            string `json:"name"`
	Role            Role   `json:"role"`
	Department      string `json:"department"`
	TasksTotal      int    `json:"tasksTotal"`
	TasksCompleted  int    `json:"tasksCompleted"`
	TasksInProgress int    `json:"tasksInProgress"`
	Efficiency      int    `json:"efficiency"`
}

// ProjectHealth labels a project's schedule state.
type ProjectHealth string

const (
	ProjectOnTrack ProjectHealth = "on-track"
	ProjectDelayed ProjectHealth = "delayed"
)

// ProjectProgress aggregates tasks sharing a project label.
type ProjectProgress struct {
	Name           string        `json:"name"`
	TotalTasks     int           `json:"totalTasks"`
	CompletedTasks int           `json:"completedTasks"`
	Progress       int           `json:"progress"`
	TeamMembers    int           `json:"teamMembers"`
	DueDate        *time.Time    `json:"dueDate,omitempty"`
	Status         ProjectHealth `json:"status"`
}

// SearchResult is one hit of the global search.
type SearchResult struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Metadata    string `json:"metadata"`
}
