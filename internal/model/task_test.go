package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{ID: 1, Text: "Buy milk", CreatedAt: now}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsBlankTextAndBadID(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	err := Task{ID: 1, Text: "  ", CreatedAt: now}.Validate()
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got: %v", err)
	}
	err = Task{ID: 0, Text: "x", CreatedAt: now}.Validate()
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got: %v", err)
	}
	err = Task{ID: 1, Text: "x"}.Validate()
	if err == nil || err.Error() != "model: task created_at is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewTaskTrims(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task, ok := NewTask(7, "  Buy milk \n", now)
	if !ok {
		t.Fatal("expected task to be created")
	}
	if task.Text != "Buy milk" || task.Completed || task.ID != 7 {
		t.Fatalf("unexpected task: %+v", task)
	}
	if _, ok := NewTask(8, "   ", now); ok {
		t.Fatal("expected whitespace-only text to be rejected")
	}
}

func TestIDSourceMonotonicWithinSameMillisecond(t *testing.T) {
	fixed := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	ids := NewIDSource(func() time.Time { return fixed })
	a, b, c := ids.Next(), ids.Next(), ids.Next()
	if a != fixed.UnixMilli() {
		t.Fatalf("first id = %d, want %d", a, fixed.UnixMilli())
	}
	if b != a+1 || c != b+1 {
		t.Fatalf("ids not strictly increasing: %d %d %d", a, b, c)
	}
}

func TestIDSourceFollowsClock(t *testing.T) {
	clock := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	ids := NewIDSource(func() time.Time { return clock })
	first := ids.Next()
	clock = clock.Add(5 * time.Second)
	second := ids.Next()
	if second != clock.UnixMilli() || second <= first {
		t.Fatalf("expected id to follow the clock, got %d after %d", second, first)
	}
}
