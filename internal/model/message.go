package model

import "time"

type ChatMessage struct {
	ID        int64
	Content   string
	IsUser    bool
	Timestamp time.Time
}

func (m ChatMessage) Author() string {
	if m.IsUser {
		return "you"
	}
	return "assistant"
}
