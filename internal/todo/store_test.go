package todo

import (
	"io"
	"log"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sandeepkv93/taskchat/internal/model"
	"github.com/sandeepkv93/taskchat/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	clock := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	ids := model.NewIDSource(func() time.Time { return clock })
	return NewStore(storage.NewMemoryRepository(), ids, log.New(io.Discard, "", 0))
}

func TestAddTrimsAndDefaultsIncomplete(t *testing.T) {
	s := newTestStore(t)
	task, ok := s.Add("  Buy milk  ")
	if !ok {
		t.Fatal("expected add to succeed")
	}
	tasks := s.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Text != "Buy milk" || tasks[0].Completed || tasks[0].ID != task.ID {
		t.Fatalf("unexpected task: %+v", tasks[0])
	}
}

func TestAddWhitespaceIsNoop(t *testing.T) {
	s := newTestStore(t)
	if _, ok := s.Add("   "); ok {
		t.Fatal("expected whitespace add to be rejected")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	s := newTestStore(t)
	task, _ := s.Add("A")
	s.Toggle(task.ID)
	if !s.Tasks()[0].Completed {
		t.Fatal("expected completed after first toggle")
	}
	s.Toggle(task.ID)
	if s.Tasks()[0].Completed {
		t.Fatal("expected incomplete after second toggle")
	}
}

func TestUnknownIDsAreIgnored(t *testing.T) {
	s := newTestStore(t)
	s.Add("A")
	s.Add("B")
	before := s.Tasks()
	s.Delete(999)
	s.Toggle(999)
	after := s.Tasks()
	if len(after) != len(before) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("task %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestDeleteRemovesOnlyMatch(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.Add("A")
	s.Add("B")
	s.Delete(a.ID)
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "B" {
		t.Fatalf("unexpected tasks after delete: %+v", tasks)
	}
}

func TestCompletedCountMatchesRecords(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	s := newTestStore(t)
	for step := 0; step < 200; step++ {
		tasks := s.Tasks()
		switch op := r.IntN(4); {
		case op == 0 || len(tasks) == 0:
			s.Add("task")
		case op == 1:
			s.Delete(tasks[r.IntN(len(tasks))].ID)
		default:
			s.Toggle(tasks[r.IntN(len(tasks))].ID)
		}
		want := 0
		for _, task := range s.Tasks() {
			if task.Completed {
				want++
			}
		}
		if got := s.CompletedCount(); got != want {
			t.Fatalf("step %d: CompletedCount() = %d, want %d", step, got, want)
		}
	}
}

func TestStoreOverSQLite(t *testing.T) {
	repo, err := storage.OpenMemorySQLite()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	s := NewStore(repo, nil, log.New(io.Discard, "", 0))
	t.Cleanup(func() { _ = s.Close() })

	a, _ := s.Add("A")
	s.Add("B")
	s.Toggle(a.ID)
	if got := s.CompletedCount(); got != 1 {
		t.Fatalf("CompletedCount() = %d, want 1", got)
	}
	pending := s.Pending()
	if len(pending) != 1 || pending[0].Text != "B" {
		t.Fatalf("unexpected pending: %+v", pending)
	}
}

func TestStatsPercentRounds(t *testing.T) {
	cases := []struct {
		stats Stats
		want  int
	}{
		{Stats{}, 0},
		{Stats{Total: 3, Completed: 1}, 33},
		{Stats{Total: 3, Completed: 2}, 67},
		{Stats{Total: 8, Completed: 1}, 13},
		{Stats{Total: 4, Completed: 4}, 100},
	}
	for _, tc := range cases {
		if got := tc.stats.Percent(); got != tc.want {
			t.Fatalf("%+v.Percent() = %d, want %d", tc.stats, got, tc.want)
		}
	}
}
