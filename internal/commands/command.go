package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/focusflow/internal/model"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeDone    Type = "done"
	TypeSub     Type = "sub"
	TypeDelete  Type = "delete"
	TypeHabit   Type = "habit"
	TypeView    Type = "view"
	TypeSummary Type = "summary"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
	ErrCodeNotFound        ErrorCode = "not_found"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalid(format string, args ...any) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// AddArgs carries the title plus optional cat:<category> and prio:<priority>
// tokens. Defaults are Personal and Medium.
type AddArgs struct {
	Title    string
	Category model.Category
	Priority model.Priority
}

// Ref names a task, subtask or habit either by 1-based list position or id.
type Ref string

type TargetArgs struct {
	Target Ref
}

type SubArgs struct {
	Task    Ref
	Subtask Ref
}

type ViewArgs struct {
	Name string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Target *TargetArgs
	Sub    *SubArgs
	View   *ViewArgs
}

var viewNames = []string{"dashboard", "tasks", "habits", "goals"}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone, TypeDelete, TypeHabit:
		if len(args) != 1 {
			return Command{}, invalid("%s requires exactly one target", head)
		}
		return Command{Type: Type(head), Raw: input, Target: &TargetArgs{Target: Ref(args[0])}}, nil
	case TypeSub:
		if len(args) != 2 {
			return Command{}, invalid("sub requires a task and a subtask")
		}
		return Command{Type: TypeSub, Raw: input, Sub: &SubArgs{Task: Ref(args[0]), Subtask: Ref(args[1])}}, nil
	case TypeView:
		return parseView(input, args)
	case TypeSummary:
		return Command{Type: TypeSummary, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	out := AddArgs{Category: model.CategoryPersonal, Priority: model.PriorityMedium}
	words := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "cat:"):
			c, err := model.ParseCategory(arg[len("cat:"):])
			if err != nil {
				return Command{}, invalid("%v", err)
			}
			out.Category = c
		case strings.HasPrefix(lower, "prio:"):
			p, err := model.ParsePriority(arg[len("prio:"):])
			if err != nil {
				return Command{}, invalid("%v", err)
			}
			out.Priority = p
		default:
			words = append(words, arg)
		}
	}
	out.Title = strings.TrimSpace(strings.Join(words, " "))
	if out.Title == "" {
		return Command{}, invalid("add requires a title")
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseView(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("view requires one of: %s", strings.Join(viewNames, ", "))
	}
	name := strings.ToLower(args[0])
	for _, v := range viewNames {
		if name == v {
			return Command{Type: TypeView, Raw: raw, View: &ViewArgs{Name: name}}, nil
		}
	}
	return Command{}, invalid("unknown view %q", args[0])
}
