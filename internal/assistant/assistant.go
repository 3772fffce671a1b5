// Package assistant turns a chat message into a reply: a local response
// generator chosen by the intent classifier, or the remote fallback.
package assistant

import (
	"context"
	"log"

	"github.com/sandeepkv93/taskchat/internal/intent"
	"github.com/sandeepkv93/taskchat/internal/todo"
)

type Completer interface {
	Configured() bool
	Complete(ctx context.Context, prompt string) (string, error)
}

type Assistant struct {
	store     *todo.Store
	picker    *Picker
	completer Completer
	logger    *log.Logger
}

func New(store *todo.Store, picker *Picker, completer Completer, logger *log.Logger) *Assistant {
	if picker == nil {
		picker = NewPicker(1)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Assistant{store: store, picker: picker, completer: completer, logger: logger}
}

// Reply runs the local generator for message. ok is false when no local
// intent matched and the caller should use Fallback.
func (a *Assistant) Reply(message string) (reply string, ok bool) {
	switch intent.Classify(message) {
	case intent.CategoryTodo:
		return a.handleTodo(message), true
	case intent.CategoryOrganize:
		return a.organize(), true
	case intent.CategoryMotivate:
		return a.motivate(), true
	case intent.CategoryBreakdown:
		return breakdownGuide, true
	case intent.CategoryTime:
		return a.timeManagement(), true
	case intent.CategoryProgress:
		return a.progress(), true
	case intent.CategoryGreeting:
		return a.greet(), true
	case intent.CategoryHelp:
		return helpText, true
	default:
		return "", false
	}
}

// Respond is Reply with the fallback applied inline.
func (a *Assistant) Respond(ctx context.Context, message string) string {
	if reply, ok := a.Reply(message); ok {
		return reply
	}
	return a.Fallback(ctx, message)
}
