package todo

import "github.com/sandeepkv93/taskchat/internal/model"

// ChatLog is append-only. It starts with one assistant greeting.
type ChatLog struct {
	ids      *model.IDSource
	messages []model.ChatMessage
}

func NewChatLog(ids *model.IDSource, greeting string) *ChatLog {
	if ids == nil {
		ids = model.NewIDSource(nil)
	}
	c := &ChatLog{ids: ids}
	if greeting != "" {
		c.Append(greeting, false)
	}
	return c
}

func (c *ChatLog) Append(content string, isUser bool) model.ChatMessage {
	msg := model.ChatMessage{
		ID:        c.ids.Next(),
		Content:   content,
		IsUser:    isUser,
		Timestamp: c.ids.Now(),
	}
	c.messages = append(c.messages, msg)
	return msg
}

func (c *ChatLog) Messages() []model.ChatMessage {
	out := make([]model.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *ChatLog) Len() int {
	return len(c.messages)
}
