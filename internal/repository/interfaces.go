// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"teamboard/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TaskInterface exposes task-related operations.
type TaskInterface interface {
	ListTasks(ctx context.Context) ([]entities.Task, error)
	GetTask(ctx context.Context, id int64) (*entities.Task, error)
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// MemberInterface exposes team-member operations.
type MemberInterface interface {
	ListMembers(ctx context.Context) ([]entities.TeamMember, error)
	GetMember(ctx context.Context, id int64) (*entities.TeamMember, error)
	FindMemberByEmail(ctx context.Context, email string) (*entities.TeamMember, error)
	CreateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error)
	UpdateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error)
	DeleteMember(ctx context.Context, id int64) error
}
