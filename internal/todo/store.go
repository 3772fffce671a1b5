// Package todo holds the task store and the chat log owned by one session.
package todo

import (
	"context"
	"errors"
	"log"

	"github.com/sandeepkv93/taskchat/internal/model"
	"github.com/sandeepkv93/taskchat/internal/storage"
)

// Store is the ordered task list. None of its operations fail from the
// caller's side: blank text and unknown ids are ignored, and repository
// errors are logged.
type Store struct {
	repo   storage.Repository
	ids    *model.IDSource
	logger *log.Logger
}

func NewStore(repo storage.Repository, ids *model.IDSource, logger *log.Logger) *Store {
	if repo == nil {
		repo = storage.NewMemoryRepository()
	}
	if ids == nil {
		ids = model.NewIDSource(nil)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Store{repo: repo, ids: ids, logger: logger}
}

func (s *Store) Add(text string) (model.Task, bool) {
	task, ok := model.NewTask(s.ids.Next(), text, s.ids.Now())
	if !ok {
		return model.Task{}, false
	}
	if err := s.repo.CreateTask(context.Background(), toEntity(task)); err != nil {
		s.logger.Printf("[todo] add task %d failed: %v", task.ID, err)
		return model.Task{}, false
	}
	return task, true
}

func (s *Store) Delete(id int64) {
	err := s.repo.DeleteTask(context.Background(), id)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Printf("[todo] delete task %d failed: %v", id, err)
	}
}

func (s *Store) Toggle(id int64) {
	ctx := context.Background()
	t, err := s.repo.GetTask(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Printf("[todo] toggle task %d failed: %v", id, err)
		}
		return
	}
	t.Completed = !t.Completed
	if err := s.repo.UpdateTask(ctx, t); err != nil {
		s.logger.Printf("[todo] toggle task %d failed: %v", id, err)
	}
}

func (s *Store) CompletedCount() int {
	done := true
	return len(s.list(storage.TaskListFilter{Completed: &done}))
}

// Tasks returns every task in insertion order.
func (s *Store) Tasks() []model.Task {
	return s.list(storage.TaskListFilter{})
}

// Pending returns the incomplete tasks in insertion order.
func (s *Store) Pending() []model.Task {
	done := false
	return s.list(storage.TaskListFilter{Completed: &done})
}

func (s *Store) Len() int {
	return len(s.Tasks())
}

// Stats summarizes the store for the response generators.
func (s *Store) Stats() Stats {
	all := s.Tasks()
	st := Stats{Total: len(all)}
	for _, t := range all {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	return st
}

func (s *Store) Close() error {
	return s.repo.Close()
}

func (s *Store) list(filter storage.TaskListFilter) []model.Task {
	rows, err := s.repo.ListTasks(context.Background(), filter)
	if err != nil {
		s.logger.Printf("[todo] list tasks failed: %v", err)
		return nil
	}
	out := make([]model.Task, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromEntity(r))
	}
	return out
}

func toEntity(t model.Task) storage.Task {
	return storage.Task{ID: t.ID, Text: t.Text, Completed: t.Completed, CreatedAt: t.CreatedAt}
}

func fromEntity(t storage.Task) model.Task {
	return model.Task{ID: t.ID, Text: t.Text, Completed: t.Completed, CreatedAt: t.CreatedAt}
}
