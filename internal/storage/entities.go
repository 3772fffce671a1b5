package storage

import "time"

type Task struct {
	ID        int64
	Text      string
	Completed bool
	CreatedAt time.Time
}

// TaskListFilter narrows ListTasks. A nil Completed matches every task.
type TaskListFilter struct {
	Completed *bool
	Limit     int
	Offset    int
}

func (f TaskListFilter) matches(t Task) bool {
	return f.Completed == nil || *f.Completed == t.Completed
}
