// Package memory implements the repository on in-process slices.
package memory

import (
	"context"
	"slices"
	"sync"

	"teamboard/internal/entities"

	"go.uber.org/zap"
)

// Dataset is the initial content of a Memory store.
type Dataset struct {
	Tasks   []entities.Task
	Members []entities.TeamMember
}

// Memory keeps tasks and members in insertion order. Writes are
// last-write-wins; the mutex only keeps the slices consistent.
type Memory struct {
	log *zap.SugaredLogger

	mu           sync.RWMutex
	tasks        []entities.Task
	members      []entities.TeamMember
	nextTaskID   int64
	nextMemberID int64
}

// New creates a store holding a copy of data.
func New(log *zap.SugaredLogger, data Dataset) *Memory {
	m := &Memory{
		log:          log.Named("repo.memory"),
		nextTaskID:   1,
		nextMemberID: 1,
	}
	for _, t := range data.Tasks {
		m.tasks = append(m.tasks, cloneTask(t))
		m.nextTaskID = max(m.nextTaskID, t.ID+1)
	}
	for _, mb := range data.Members {
		m.members = append(m.members, mb)
		m.nextMemberID = max(m.nextMemberID, mb.ID+1)
	}
	return m
}

// OnStart is a no-op; the store is ready after New.
func (m *Memory) OnStart(_ context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.log.Infow("memory store ready", "tasks", len(m.tasks), "members", len(m.members))
	return nil
}

// OnStop is a no-op.
func (m *Memory) OnStop(_ context.Context) error {
	return nil
}

func cloneTask(t entities.Task) entities.Task {
	t.Tags = slices.Clone(t.Tags)
	return t
}
