// Package dto holds the JSON shapes exchanged over HTTP.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ErrorCode is a machine-readable error code.
type ErrorCode string

const (
	UNAUTHENTICATED   ErrorCode = "UNAUTHENTICATED"
	NOTFOUND          ErrorCode = "NOT_FOUND"
	FORBIDDEN         ErrorCode = "FORBIDDEN"
	VALIDATIONFAILED  ErrorCode = "VALIDATION_FAILED"
	EMAILEXISTS       ErrorCode = "EMAIL_EXISTS"
	INVALIDASSIGNEE   ErrorCode = "INVALID_ASSIGNEE"
	UNSUPPORTEDREPORT ErrorCode = "UNSUPPORTED_REPORT"
	INTERNAL          ErrorCode = "INTERNAL"
)

// ErrorBody is the error payload.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse wraps every error reply.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// User is the session identity, also stored in the auth cookie.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse wraps a user.
type UserResponse struct {
	User User `json:"user"`
}

// Task is the wire form of a task.
type Task struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	AssigneeID    int64     `json:"assigneeId"`
	AssigneeName  string    `json:"assigneeName"`
	CreatedBy     int64     `json:"createdBy"`
	CreatedByName string    `json:"createdByName"`
	DueDate       string    `json:"dueDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Project       string    `json:"project"`
	Tags          []string  `json:"tags"`
}

// TaskResponse wraps a task.
type TaskResponse struct {
	Task Task `json:"task"`
}

// TaskListResponse wraps a task list.
type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
}

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	AssigneeID  int64    `json:"assigneeId"`
	DueDate     string   `json:"dueDate"`
	Project     string   `json:"project"`
	Tags        []string `json:"tags"`
}

// UpdateTaskRequest is the body of PATCH /api/tasks/:id. Absent fields are kept.
type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Priority    *string   `json:"priority"`
	AssigneeID  *int64    `json:"assigneeId"`
	DueDate     *string   `json:"dueDate"`
	Project     *string   `json:"project"`
	Tags        *[]string `json:"tags"`
}

// Member is the wire form of a team member.
type Member struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Phone      string `json:"phone,omitempty"`
	JoinDate   string `json:"joinDate"`
	Status     string `json:"status"`
}

// MemberResponse wraps a member.
type MemberResponse struct {
	Member Member `json:"member"`
}

// MemberListResponse wraps the roster.
type MemberListResponse struct {
	Members []Member `json:"members"`
}

// CreateMemberRequest is the body of POST /api/teams/members.
type CreateMemberRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

// UpdateMemberRequest is the body of PUT and PATCH /api/teams/members/:id.
type UpdateMemberRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	Status     *string `json:"status"`
}

// SuccessResponse acknowledges a deletion.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// SearchResult is one search hit.
type SearchResult struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Metadata    string `json:"metadata"`
}

// SearchResponse wraps search hits.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// DateRange bounds a report. Either side may be empty.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Selector is a member id sent either as a number or as a string.
type Selector string

// UnmarshalJSON accepts a string, a number or null.
func (s *Selector) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = ""
	case len(b) > 0 && b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Selector(v)
	default:
		n, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("memberId: %w", err)
		}
		*s = Selector(strconv.FormatInt(n, 10))
	}
	return nil
}

// ReportRequest is the body of POST /api/reports/generate.
type ReportRequest struct {
	Type      string     `json:"type"`
	Format    string     `json:"format"`
	DateRange *DateRange `json:"dateRange"`
	MemberID  Selector   `json:"memberId"`
}
