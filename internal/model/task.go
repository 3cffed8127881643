package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date form used for task and habit dates.
const DateLayout = "2006-01-02"

var ErrDuplicateSubtask = errors.New("model: duplicate subtask id")

// DateOf formats t as an ISO calendar date in t's own location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

type Subtask struct {
	ID        string `json:"id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category" validate:"category"`
	Priority    Priority  `json:"priority" validate:"priority"`
	Completed   bool      `json:"completed"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	Subtasks    []Subtask `json:"subtasks" validate:"dive"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, uint8(t.Priority))
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidCategory, uint8(t.Category))
	}
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("model: task %q: %w", t.ID, err)
	}
	seen := make(map[string]bool, len(t.Subtasks))
	for _, s := range t.Subtasks {
		if seen[s.ID] {
			return fmt.Errorf("%w: %q in task %q", ErrDuplicateSubtask, s.ID, t.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// CompletedSubtasks counts the subtasks marked done.
func (t Task) CompletedSubtasks() int {
	n := 0
	for _, s := range t.Subtasks {
		if s.Completed {
			n++
		}
	}
	return n
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	out := t
	out.Subtasks = slices.Clone(t.Subtasks)
	if out.Subtasks == nil {
		out.Subtasks = []Subtask{}
	}
	return out
}
