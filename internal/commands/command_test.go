package commands

import (
	"errors"
	"testing"
)

func TestParseSubDispatchOrder(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"add task: pay rent", TypeAdd},
		{"add a todo buy milk", TypeAdd},
		{"show my tasks", TypeList},
		{"list everything", TypeList},
		// list/show is checked before complete/done
		{"show completed tasks", TypeList},
		{"mark task complete", TypeComplete},
		{"task done", TypeComplete},
		{"delete a task", TypeDelete},
		{"remove todo", TypeDelete},
		// "add" without task/todo is not an add request
		{"add something", TypeHelp},
		{"todo", TypeHelp},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("   ")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty input error, got %v", err)
	}
}

func TestParseAddWithoutTextKeepsType(t *testing.T) {
	cmd, err := Parse("add task")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add != nil {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestExtractTaskText(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"add task: Buy milk", "Buy milk", true},
		{"Add Task Buy Milk", "Buy Milk", true},
		{"add task:Call mom", "Call mom", true},
		{"please add a new todo: water plants", "water plants", true},
		{"add tasks: file taxes", "file taxes", true},
		{`add task "Walk the dog"`, "Walk the dog", true},
		{"add: groceries for the week", "groceries for the week", true},
		{"add buy milk to my todo", "buy milk", true},
		{"add buy milk to my todo list", "buy milk", true},
		{"add task: list", "", false},
		{"add:task", "", false},
		{"add:todo: call mom", "call mom", true},
		{"add, task: buy milk", "buy milk", true},
		{"add, buy milk", "buy milk", true},
		{"add:buy milk", "buy milk", true},
		{"add task", "", false},
		{"add a new task", "", false},
		{"add task:   ", "", false},
		{"addtask nothing", "", false},
		{"no verb here task", "", false},
	}
	for _, tc := range cases {
		got, ok := ExtractTaskText(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ExtractTaskText(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("add task: write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Text != "write docs" {
				t.Fatalf("unexpected text: %q", a.Text)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("show tasks")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}

func TestExecuteAddWithoutArgs(t *testing.T) {
	_, err := Execute(Command{Type: TypeAdd}, Handlers{Add: func(AddArgs) (Result, error) { return Result{}, nil }})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}
