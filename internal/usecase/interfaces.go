package usecase

import (
	"context"

	"teamboard/internal/entities"
)

// AuthUsecaseInterface abstracts session identity operations.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, email, password string) (entities.User, error)
}

// TaskUsecaseInterface abstracts task board operations.
type TaskUsecaseInterface interface {
	ListTasks(ctx context.Context, actor entities.User, f entities.TaskFilter) ([]entities.Task, error)
	CreateTask(ctx context.Context, actor entities.User, in entities.NewTask) (*entities.Task, error)
	UpdateTask(ctx context.Context, actor entities.User, id int64, upd entities.TaskUpdate) (*entities.Task, error)
	DeleteTask(ctx context.Context, actor entities.User, id int64) error
}

// MemberUsecaseInterface abstracts team roster operations.
type MemberUsecaseInterface interface {
	ListMembers(ctx context.Context, actor entities.User, f entities.MemberFilter) ([]entities.TeamMember, error)
	CreateMember(ctx context.Context, actor entities.User, in entities.NewMember) (*entities.TeamMember, error)
	UpdateMember(ctx context.Context, actor entities.User, id int64, upd entities.MemberUpdate) (*entities.TeamMember, error)
	DeleteMember(ctx context.Context, actor entities.User, id int64) error
}

// SearchUsecaseInterface abstracts global search.
type SearchUsecaseInterface interface {
	Search(ctx context.Context, actor entities.User, q string) ([]entities.SearchResult, error)
}

// AnalyticsUsecaseInterface abstracts dashboard analytics.
type AnalyticsUsecaseInterface interface {
	Overview(ctx context.Context, actor entities.User, window string) (entities.Overview, error)
	TaskAnalytics(ctx context.Context, actor entities.User, window string) (entities.TaskBreakdown, error)
	TeamPerformance(ctx context.Context, actor entities.User) ([]entities.MemberPerformance, error)
	ProjectProgress(ctx context.Context, actor entities.User) ([]entities.ProjectProgress, error)
}

// ReportUsecaseInterface abstracts report generation.
type ReportUsecaseInterface interface {
	GenerateReport(ctx context.Context, actor entities.User, req entities.ReportRequest) (entities.Document, error)
}
