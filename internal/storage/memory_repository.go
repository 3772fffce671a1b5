package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRepository keeps tasks in a slice in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks []Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tasks: make([]Task, 0)}
}

func (r *MemoryRepository) CreateTask(_ context.Context, in Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(in.ID) >= 0 {
		return fmt.Errorf("storage: duplicate task id %d", in.ID)
	}
	r.tasks = append(r.tasks, in)
	return nil
}

func (r *MemoryRepository) GetTask(_ context.Context, id int64) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	return r.tasks[i], nil
}

func (r *MemoryRepository) UpdateTask(_ context.Context, in Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(in.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.tasks[i] = in
	return nil
}

func (r *MemoryRepository) DeleteTask(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

func (r *MemoryRepository) ListTasks(_ context.Context, filter TaskListFilter) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Task, 0, len(r.tasks))
	skipped := 0
	for _, t := range r.tasks {
		if !filter.matches(t) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		out = append(out, t)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *MemoryRepository) Close() error { return nil }

func (r *MemoryRepository) indexOf(id int64) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
