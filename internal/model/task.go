package model

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyText = errors.New("model: task text is required")
	ErrInvalidID = errors.New("model: task id must be positive")
)

type Task struct {
	ID        int64
	Text      string
	Completed bool
	CreatedAt time.Time
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}

// NewTask trims text and returns a pending task. ok is false when nothing
// remains after trimming.
func NewTask(id int64, text string, now time.Time) (Task, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Task{}, false
	}
	return Task{ID: id, Text: trimmed, CreatedAt: now}, true
}
