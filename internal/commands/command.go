package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/taskchat/internal/intent"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeList     Type = "list"
	TypeComplete Type = "complete"
	TypeDelete   Type = "delete"
	TypeHelp     Type = "help"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

type Command struct {
	Type Type
	Raw  string
	Add  *AddArgs
}

// Parse picks the todo sub-command for a message the classifier already
// routed to the todo handler. When an add request carries no task text the
// returned Command still has Type TypeAdd alongside an invalid_argument error.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	lower := strings.ToLower(raw)

	switch {
	case strings.Contains(lower, "add") && intent.ContainsAny(lower, "task", "todo"):
		return parseAdd(raw)
	case intent.ContainsAny(lower, "list", "show"):
		return Command{Type: TypeList, Raw: raw}, nil
	case intent.ContainsAny(lower, "complete", "done"):
		return Command{Type: TypeComplete, Raw: raw}, nil
	case intent.ContainsAny(lower, "delete", "remove"):
		return Command{Type: TypeDelete, Raw: raw}, nil
	default:
		return Command{Type: TypeHelp, Raw: raw}, nil
	}
}

func parseAdd(raw string) (Command, error) {
	text, ok := ExtractTaskText(raw)
	if !ok {
		return Command{Type: TypeAdd, Raw: raw}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}
