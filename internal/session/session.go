// Package session owns one user's task store, chat log and busy flag.
// A Session is not safe for concurrent use: callers mutate it from a single
// loop and only Resolve may run elsewhere.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sandeepkv93/taskchat/internal/assistant"
	"github.com/sandeepkv93/taskchat/internal/model"
	"github.com/sandeepkv93/taskchat/internal/storage"
	"github.com/sandeepkv93/taskchat/internal/todo"
)

var (
	ErrBusy         = errors.New("session: a message is already being answered")
	ErrEmptyMessage = errors.New("session: message is empty")
)

type Options struct {
	Repository storage.Repository
	Completer  assistant.Completer
	Seed       uint64
	Now        func() time.Time
	Logger     *log.Logger
	ChatOpen   bool
}

// Turn is the outcome of Submit. A pending turn needs Resolve and Finish.
type Turn struct {
	Done    bool
	Pending bool
	Prompt  string
	Reply   string
}

type Session struct {
	tasks     *todo.Store
	chat      *todo.ChatLog
	assistant *assistant.Assistant
	busy      bool
	chatOpen  bool
}

func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	ids := model.NewIDSource(opts.Now)
	store := todo.NewStore(opts.Repository, ids, logger)
	return &Session{
		tasks:     store,
		chat:      todo.NewChatLog(ids, assistant.Greeting),
		assistant: assistant.New(store, assistant.NewPicker(opts.Seed), opts.Completer, logger),
		chatOpen:  opts.ChatOpen,
	}
}

// Open builds the repository named by backend ("memory" or "sqlite") and a
// session over it.
func Open(backend string, opts Options) (*Session, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "memory":
		opts.Repository = storage.NewMemoryRepository()
	case "sqlite":
		repo, err := storage.OpenMemorySQLite()
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		opts.Repository = repo
	default:
		return nil, fmt.Errorf("session: unknown store backend %q", backend)
	}
	return New(opts), nil
}

// Submit records a user message. Local intents are answered immediately;
// otherwise the session turns busy until Finish.
func (s *Session) Submit(text string) (Turn, error) {
	if s.busy {
		return Turn{}, ErrBusy
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, ErrEmptyMessage
	}
	s.chat.Append(text, true)
	if reply, ok := s.assistant.Reply(text); ok {
		s.chat.Append(reply, false)
		return Turn{Done: true, Reply: reply}, nil
	}
	s.busy = true
	return Turn{Pending: true, Prompt: text}, nil
}

// Resolve produces the fallback reply for a pending turn. It touches no
// session state other than the assistant's picker.
func (s *Session) Resolve(ctx context.Context, prompt string) string {
	return s.assistant.Fallback(ctx, prompt)
}

func (s *Session) Finish(reply string) {
	s.chat.Append(reply, false)
	s.busy = false
}

// SendMessage runs a whole turn synchronously.
func (s *Session) SendMessage(ctx context.Context, text string) error {
	turn, err := s.Submit(text)
	if err != nil {
		return err
	}
	if turn.Pending {
		s.Finish(s.Resolve(ctx, turn.Prompt))
	}
	return nil
}

func (s *Session) Busy() bool { return s.busy }

func (s *Session) ChatOpen() bool { return s.chatOpen }

func (s *Session) ToggleChatPanel() bool {
	s.chatOpen = !s.chatOpen
	return s.chatOpen
}

func (s *Session) AddTask(text string) (model.Task, bool) { return s.tasks.Add(text) }

func (s *Session) DeleteTask(id int64) { s.tasks.Delete(id) }

func (s *Session) ToggleCompleted(id int64) { s.tasks.Toggle(id) }

func (s *Session) CompletedCount() int { return s.tasks.CompletedCount() }

func (s *Session) Tasks() []model.Task { return s.tasks.Tasks() }

func (s *Session) Stats() todo.Stats { return s.tasks.Stats() }

func (s *Session) Messages() []model.ChatMessage { return s.chat.Messages() }

func (s *Session) Close() error { return s.tasks.Close() }

