package todo

import "testing"

func TestChatLogSeedsGreetingAndAppends(t *testing.T) {
	c := NewChatLog(nil, "hi there")
	msgs := c.Messages()
	if len(msgs) != 1 || msgs[0].IsUser || msgs[0].Content != "hi there" {
		t.Fatalf("unexpected seed: %+v", msgs)
	}

	c.Append("hello", true)
	c.Append("hey!", false)
	msgs = c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if !msgs[1].IsUser || msgs[2].IsUser {
		t.Fatalf("unexpected authors: %+v", msgs)
	}
	if msgs[2].ID <= msgs[1].ID {
		t.Fatalf("expected increasing ids, got %d then %d", msgs[1].ID, msgs[2].ID)
	}
}

func TestChatLogMessagesIsCopy(t *testing.T) {
	c := NewChatLog(nil, "seed")
	msgs := c.Messages()
	msgs[0].Content = "mutated"
	if c.Messages()[0].Content != "seed" {
		t.Fatal("expected Messages to return a copy")
	}
}
