package memory

import (
	"context"
	"slices"

	"teamboard/internal/entities"
)

// ListTasks returns all tasks in creation order.
func (m *Memory) ListTasks(_ context.Context) ([]entities.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, cloneTask(t))
	}
	return out, nil
}

// GetTask returns a task by id.
func (m *Memory) GetTask(_ context.Context, id int64) (*entities.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.taskIndex(id)
	if i < 0 {
		return nil, entities.ErrTaskNotFound
	}
	t := cloneTask(m.tasks[i])
	return &t, nil
}

// CreateTask stores a task under the next free id.
func (m *Memory) CreateTask(_ context.Context, task entities.Task) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task.ID = m.nextTaskID
	m.nextTaskID++
	m.tasks = append(m.tasks, cloneTask(task))

	m.log.Infow("task created", "task_id", task.ID, "creator_id", task.CreatorID)
	out := cloneTask(task)
	return &out, nil
}

// UpdateTask replaces the stored task with the same id.
func (m *Memory) UpdateTask(_ context.Context, task entities.Task) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.taskIndex(task.ID)
	if i < 0 {
		return nil, entities.ErrTaskNotFound
	}
	m.tasks[i] = cloneTask(task)

	m.log.Infow("task updated", "task_id", task.ID)
	out := cloneTask(task)
	return &out, nil
}

// DeleteTask removes a task by id.
func (m *Memory) DeleteTask(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.taskIndex(id)
	if i < 0 {
		return entities.ErrTaskNotFound
	}
	m.tasks = slices.Delete(m.tasks, i, i+1)

	m.log.Infow("task deleted", "task_id", id)
	return nil
}

func (m *Memory) taskIndex(id int64) int {
	return slices.IndexFunc(m.tasks, func(t entities.Task) bool { return t.ID == id })
}
