package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	List     func() (Result, error)
	Complete func() (Result, error)
	Delete   func() (Result, error)
	Help     func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		if cmd.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
		}
		return handlers.Add(*cmd.Add)
	case TypeList:
		return call(handlers.List, "list")
	case TypeComplete:
		return call(handlers.Complete, "complete")
	case TypeDelete:
		return call(handlers.Delete, "delete")
	case TypeHelp:
		return call(handlers.Help, "help")
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func call(fn func() (Result, error), name string) (Result, error) {
	if fn == nil {
		return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: name + " handler not configured"}
	}
	return fn()
}
