package commands

import (
	"fmt"
	"strconv"
)

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Done    func(TargetArgs) (Result, error)
	Sub     func(SubArgs) (Result, error)
	Delete  func(TargetArgs) (Result, error)
	Habit   func(TargetArgs) (Result, error)
	View    func(ViewArgs) (Result, error)
	Summary func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Done(*cmd.Target)
	case TypeSub:
		if handlers.Sub == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Sub(*cmd.Sub)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Delete(*cmd.Target)
	case TypeHabit:
		if handlers.Habit == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Habit(*cmd.Target)
	case TypeView:
		if handlers.View == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.View(*cmd.View)
	case TypeSummary:
		if handlers.Summary == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Summary()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}

// Resolve maps ref to an id from ids. A number n selects ids[n-1]; anything
// else must match an id exactly.
func Resolve(ref Ref, ids []string) (string, error) {
	if n, err := strconv.Atoi(string(ref)); err == nil {
		if n < 1 || n > len(ids) {
			return "", &CommandError{Code: ErrCodeNotFound, Message: fmt.Sprintf("no item at position %d", n)}
		}
		return ids[n-1], nil
	}
	for _, id := range ids {
		if id == string(ref) {
			return id, nil
		}
	}
	return "", &CommandError{Code: ErrCodeNotFound, Message: fmt.Sprintf("no item with id %q", string(ref))}
}
